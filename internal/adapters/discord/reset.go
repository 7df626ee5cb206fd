package discord

import (
	"context"

	"cmdbot/internal/dispatch"
)

// resetCommand drops the guild's stored settings, reverting prefix and
// language to the configured defaults.
func (b *Bot) resetCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "reset",
		Description: "Resets this server's prefix and language to defaults.",
		Usage:       "reset",
		GuildOnly:   true,
		OwnerOnly:   true,
		Run: func(ctx context.Context, c *dispatch.Context) error {
			if err := b.settings.Reset(ctx, c.GuildID()); err != nil {
				return err
			}
			text, err := c.Translate(ctx, "reset.done", nil)
			if err != nil {
				return err
			}
			_, err = c.Reply(ctx, text)
			return err
		},
	}
}
