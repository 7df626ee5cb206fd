package input

import "context"

// SettingsUseCase exposes per-guild configuration with defaults applied.
type SettingsUseCase interface {
	Language(ctx context.Context, guildID string) (string, error)
	SetLanguage(ctx context.Context, guildID, code string) error
	Prefix(ctx context.Context, guildID string) (string, error)
	SetPrefix(ctx context.Context, guildID, prefix string) error
	Reset(ctx context.Context, guildID string) error
}
