package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"cmdbot/internal/dispatch"
	pkgdiscord "cmdbot/pkg/discord"
)

// userinfoCommand shows basic information about a user, defaulting to the
// invoker. The target is resolved through the "user" resolver, so mentions
// and raw IDs both work.
func (b *Bot) userinfoCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "userinfo",
		Aliases:     []string{"whois"},
		Description: "Shows information about a user.",
		Usage:       "userinfo [user]",
		Run: func(ctx context.Context, c *dispatch.Context) error {
			user := c.Author
			if arg, ok := c.NextParam(); ok {
				resolved, err := c.Resolve(ctx, arg, "user")
				if err != nil {
					return err
				}
				if resolved == nil {
					text, err := c.Translate(ctx, "userinfo.not_found", nil)
					if err != nil {
						return err
					}
					_, err = c.Reply(ctx, text)
					return err
				}
				user = resolved.(*discordgo.User)
			}

			title, err := c.Translate(ctx, "userinfo.title", nil)
			if err != nil {
				return err
			}
			idLabel, err := c.Translate(ctx, "userinfo.field_id", nil)
			if err != nil {
				return err
			}
			createdLabel, err := c.Translate(ctx, "userinfo.field_created", nil)
			if err != nil {
				return err
			}

			embed := pkgdiscord.BuildUserEmbed(title, idLabel, createdLabel, user)
			_, err = c.ReplyEmbed(ctx, embed)
			return err
		},
	}
}
