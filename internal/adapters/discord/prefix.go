package discord

import (
	"context"

	"cmdbot/internal/dispatch"
)

// prefixCommand shows or changes the guild's command prefix.
func (b *Bot) prefixCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "prefix",
		Description: "Shows or sets the command prefix for this server.",
		Usage:       "prefix [new-prefix]",
		GuildOnly:   true,
		Run: func(ctx context.Context, c *dispatch.Context) error {
			prefix, ok := c.NextParam()
			if !ok {
				current, err := b.settings.Prefix(ctx, c.GuildID())
				if err != nil {
					return err
				}
				text, err := c.Translate(ctx, "prefix.current", map[string]any{"Prefix": current})
				if err != nil {
					return err
				}
				_, err = c.Reply(ctx, text)
				return err
			}

			if err := b.settings.SetPrefix(ctx, c.GuildID(), prefix); err != nil {
				return err
			}
			text, err := c.Translate(ctx, "prefix.updated", map[string]any{"Prefix": prefix})
			if err != nil {
				return err
			}
			_, err = c.Reply(ctx, text)
			return err
		},
	}
}
