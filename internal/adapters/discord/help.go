package discord

import (
	"context"
	"strings"

	"cmdbot/internal/dispatch"
	pkgdiscord "cmdbot/pkg/discord"
)

func (b *Bot) helpCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "help",
		Aliases:     []string{"commands"},
		Description: "Lists commands, or details one command.",
		Usage:       "help [command]",
		Run: func(ctx context.Context, c *dispatch.Context) error {
			if name, ok := c.NextParam(); ok {
				return b.helpForCommand(ctx, c, name)
			}
			return b.helpOverview(ctx, c)
		},
	}
}

func (b *Bot) helpOverview(ctx context.Context, c *dispatch.Context) error {
	title, err := c.Translate(ctx, "help.title", nil)
	if err != nil {
		return err
	}
	prefix, err := b.settings.Prefix(ctx, c.GuildID())
	if err != nil {
		return err
	}
	hint, err := c.Translate(ctx, "help.hint", map[string]any{"Prefix": prefix})
	if err != nil {
		return err
	}

	entries := make([]pkgdiscord.HelpEntry, 0)
	for _, cmd := range b.dispatcher.Commands() {
		entries = append(entries, pkgdiscord.HelpEntry{Name: cmd.Name, Description: cmd.Description})
	}
	_, err = c.ReplyEmbed(ctx, pkgdiscord.BuildHelpEmbed(title, hint, entries))
	return err
}

func (b *Bot) helpForCommand(ctx context.Context, c *dispatch.Context, name string) error {
	cmd := b.dispatcher.Command(name)
	if cmd == nil {
		text, err := c.Translate(ctx, "help.unknown", map[string]any{"Name": name})
		if err != nil {
			return err
		}
		_, err = c.Reply(ctx, text)
		return err
	}

	usageLabel, err := c.Translate(ctx, "help.usage", nil)
	if err != nil {
		return err
	}
	var lines []string
	lines = append(lines, cmd.Description, "", usageLabel+": `"+cmd.Usage+"`")
	if len(cmd.Aliases) > 0 {
		aliasLabel, err := c.Translate(ctx, "help.aliases", nil)
		if err != nil {
			return err
		}
		lines = append(lines, aliasLabel+": "+strings.Join(cmd.Aliases, ", "))
	}
	_, err = c.Reply(ctx, strings.Join(lines, "\n"))
	return err
}
