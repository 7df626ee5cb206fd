package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cmdbot/internal/domain"
	"cmdbot/internal/domain/entities"
	"cmdbot/internal/ports/output"
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

type GuildSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewGuildSettingsRepository(pool *pgxpool.Pool) *GuildSettingsRepository {
	return &GuildSettingsRepository{pool: pool}
}

func (r *GuildSettingsRepository) Get(ctx context.Context, guildID string) (*entities.GuildSettings, error) {
	const query = `
		SELECT guild_id, language, prefix, updated_at
		FROM guild_settings
		WHERE guild_id = $1`

	var s entities.GuildSettings
	err := r.pool.QueryRow(ctx, query, guildID).Scan(&s.GuildID, &s.Language, &s.Prefix, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGuildSettingsMissing
	}
	if err != nil {
		return nil, fmt.Errorf("get guild settings: %w", err)
	}
	return &s, nil
}

func (r *GuildSettingsRepository) Upsert(ctx context.Context, settings *entities.GuildSettings) error {
	const query = `
		INSERT INTO guild_settings (guild_id, language, prefix, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (guild_id) DO UPDATE
		SET language = EXCLUDED.language,
		    prefix = EXCLUDED.prefix,
		    updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, settings.GuildID, settings.Language, settings.Prefix); err != nil {
		return fmt.Errorf("upsert guild settings: %w", err)
	}
	return nil
}

func (r *GuildSettingsRepository) Delete(ctx context.Context, guildID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM guild_settings WHERE guild_id = $1`, guildID); err != nil {
		return fmt.Errorf("delete guild settings: %w", err)
	}
	return nil
}
