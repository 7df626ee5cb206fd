package discord

import (
	"context"
	"strings"

	"cmdbot/internal/dispatch"
)

// languageCommand shows or changes the guild's language.
func (b *Bot) languageCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "language",
		Aliases:     []string{"lang"},
		Description: "Shows or sets the language used in this server.",
		Usage:       "language [code]",
		GuildOnly:   true,
		Run: func(ctx context.Context, c *dispatch.Context) error {
			code, ok := c.NextParam()
			if !ok {
				current, err := b.settings.Language(ctx, c.GuildID())
				if err != nil {
					return err
				}
				text, err := c.Translate(ctx, "language.current", map[string]any{"Code": current})
				if err != nil {
					return err
				}
				_, err = c.Reply(ctx, text)
				return err
			}

			code = strings.ToLower(code)
			if b.languages.Get(code) == nil {
				text, err := c.Translate(ctx, "language.unknown", map[string]any{
					"Code":      code,
					"Available": strings.Join(b.languages.Codes(), ", "),
				})
				if err != nil {
					return err
				}
				_, err = c.Reply(ctx, text)
				return err
			}

			if err := b.settings.SetLanguage(ctx, c.GuildID(), code); err != nil {
				return err
			}
			// Render the confirmation in the language that was just set.
			lang := b.languages.Get(code)
			_, err := c.Reply(ctx, lang.Translate("language.updated", map[string]any{"Code": code}))
			return err
		},
	}
}
