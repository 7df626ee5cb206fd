package domain

import "errors"

// Domain errors.
var (
	ErrUnknownResolverType  = errors.New("unknown resolver type")
	ErrNoLanguageHandler    = errors.New("no language handler available")
	ErrNoPriorResponse      = errors.New("no prior response to edit")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrGuildOnly            = errors.New("command can only be used in a guild")
	ErrOwnerOnly            = errors.New("command is restricted to the bot owner")
	ErrGuildSettingsMissing = errors.New("guild settings not found")
)
