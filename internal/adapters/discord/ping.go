package discord

import (
	"context"
	"time"

	"cmdbot/internal/dispatch"
)

// pingCommand replies with a placeholder and then edits the same message with
// the measured round trip, relying on the context's edit-mode routing.
func (b *Bot) pingCommand() *dispatch.Command {
	return &dispatch.Command{
		Name:        "ping",
		Description: "Measures the round-trip time to Discord.",
		Usage:       "ping",
		Run: func(ctx context.Context, c *dispatch.Context) error {
			text, err := c.Translate(ctx, "ping.pinging", nil)
			if err != nil {
				return err
			}
			start := time.Now()
			if _, err := c.Reply(ctx, text); err != nil {
				return err
			}
			latency := time.Since(start).Round(time.Millisecond)
			pong, err := c.Translate(ctx, "ping.pong", map[string]any{"Latency": latency.String()})
			if err != nil {
				return err
			}
			_, err = c.Reply(ctx, pong)
			return err
		},
	}
}
