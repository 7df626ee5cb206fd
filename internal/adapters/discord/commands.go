package discord

import (
	"cmdbot/internal/dispatch"
)

func (b *Bot) registerCommands() {
	for _, cmd := range []*dispatch.Command{
		b.pingCommand(),
		b.echoCommand(),
		b.helpCommand(),
		b.languageCommand(),
		b.prefixCommand(),
		b.resetCommand(),
		b.userinfoCommand(),
	} {
		b.dispatcher.Register(cmd)
	}
}
