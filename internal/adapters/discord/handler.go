package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"cmdbot/internal/domain"
)

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx := context.Background()
	err := b.dispatcher.Dispatch(ctx, session{s}, m)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnknownCommand):
		// Unknown commands stay silent; anything after the prefix that is
		// not registered is most likely not meant for the bot.
	case errors.Is(err, domain.ErrGuildOnly):
		b.replyError(ctx, s, m, "errors.guild_only")
	case errors.Is(err, domain.ErrOwnerOnly):
		b.replyError(ctx, s, m, "errors.owner_only")
	default:
		log.Printf("bot: command failed (guild=%s, author=%s): %v", m.GuildID, m.Author.ID, err)
		b.replyError(ctx, s, m, "errors.internal")
	}
}

// replyError sends a translated error notice to the message channel. It is
// deliberately best-effort: a failure to deliver the notice is only logged.
func (b *Bot) replyError(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, key string) {
	text := b.translate(ctx, m.GuildID, key, map[string]any{"Prefix": b.config.DefaultPrefix})
	if _, err := s.ChannelMessageSend(m.ChannelID, text, discordgo.WithContext(ctx)); err != nil {
		log.Printf("bot: failed to send error notice: %v", err)
	}
}

// translate renders key in the guild's configured language, falling back to
// the default language, then to the key itself.
func (b *Bot) translate(ctx context.Context, guildID, key string, data map[string]any) string {
	lang := b.languages.Default()
	if code, err := b.settings.Language(ctx, guildID); err == nil {
		if l := b.languages.Get(code); l != nil {
			lang = l
		}
	}
	return lang.Translate(key, data)
}
