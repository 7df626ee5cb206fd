package discord

import (
	"context"
	"strings"

	"cmdbot/internal/dispatch"
)

// echoCommand repeats the given text. --upper shouts it.
func (b *Bot) echoCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "echo",
		Aliases:     []string{"say"},
		Description: "Repeats the given text.",
		Usage:       "echo <text> [--upper]",
		Run: func(ctx context.Context, c *dispatch.Context) error {
			text := strings.Join(c.RestParams(), " ")
			if text == "" {
				return nil
			}
			if _, ok := c.Flag("upper"); ok {
				text = strings.ToUpper(text)
			}
			_, err := c.Reply(ctx, text)
			return err
		},
	}
}
