package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"cmdbot/internal/config"
	"cmdbot/internal/dispatch"
	"cmdbot/internal/ports/input"
	"cmdbot/internal/ports/output"
)

// Bot is the Discord adapter: it owns the gateway session and feeds incoming
// messages to the command dispatcher.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	dispatcher *dispatch.Dispatcher
	settings   input.SettingsUseCase
	languages  output.Languages
}

// session adapts *discordgo.Session to the dispatch.Session contract.
type session struct {
	*discordgo.Session
}

func (s session) BotUser() *discordgo.User {
	if s.State == nil {
		return nil
	}
	return s.State.User
}

// NewBot creates a Bot and wires ports: settings (use case) and languages
// feed the dispatcher's prefix/language callbacks, built-in commands are
// registered, and the message handler is attached.
func NewBot(cfg *config.Config, settings input.SettingsUseCase, languages output.Languages) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	dispatcher := dispatch.New(dispatch.Options{
		OwnerID: cfg.OwnerID,
		GetPrefix: func(ctx context.Context, c *dispatch.Context) (string, error) {
			return settings.Prefix(ctx, c.GuildID())
		},
		GetLanguage: func(ctx context.Context, c *dispatch.Context) (string, error) {
			return settings.Language(ctx, c.GuildID())
		},
	}, languages)

	bot := &Bot{
		session:    s,
		config:     cfg,
		dispatcher: dispatcher,
		settings:   settings,
		languages:  languages,
	}
	bot.registerCommands()

	s.AddHandler(bot.handleMessage)
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return bot, nil
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	log.Printf("bot: logged in as %s, default prefix %q", b.session.State.User.String(), b.config.DefaultPrefix)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
