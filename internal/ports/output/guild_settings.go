package output

import (
	"context"

	"cmdbot/internal/domain/entities"
)

type GuildSettingsRepository interface {
	Get(ctx context.Context, guildID string) (*entities.GuildSettings, error)
	Upsert(ctx context.Context, settings *entities.GuildSettings) error
	Delete(ctx context.Context, guildID string) error
}
