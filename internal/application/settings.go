package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cmdbot/internal/domain"
	"cmdbot/internal/domain/entities"
	"cmdbot/internal/ports/output"
)

type SettingsService struct {
	repo            output.GuildSettingsRepository
	defaultLanguage string
	defaultPrefix   string
}

func NewSettingsService(repo output.GuildSettingsRepository, defaultLanguage, defaultPrefix string) *SettingsService {
	return &SettingsService{
		repo:            repo,
		defaultLanguage: defaultLanguage,
		defaultPrefix:   defaultPrefix,
	}
}

// Language returns the configured language for guildID, falling back to the
// default when the guild has no stored settings. Direct messages (empty
// guildID) always use the default.
func (s *SettingsService) Language(ctx context.Context, guildID string) (string, error) {
	settings, err := s.get(ctx, guildID)
	if err != nil {
		return "", err
	}
	if settings == nil || settings.Language == "" {
		return s.defaultLanguage, nil
	}
	return settings.Language, nil
}

func (s *SettingsService) SetLanguage(ctx context.Context, guildID, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("set language: empty code")
	}
	settings, err := s.get(ctx, guildID)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &entities.GuildSettings{GuildID: guildID}
	}
	settings.Language = code
	settings.UpdatedAt = time.Now()
	return s.repo.Upsert(ctx, settings)
}

// Prefix returns the command prefix for guildID, falling back to the default.
func (s *SettingsService) Prefix(ctx context.Context, guildID string) (string, error) {
	settings, err := s.get(ctx, guildID)
	if err != nil {
		return "", err
	}
	if settings == nil || settings.Prefix == "" {
		return s.defaultPrefix, nil
	}
	return settings.Prefix, nil
}

func (s *SettingsService) SetPrefix(ctx context.Context, guildID, prefix string) error {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return fmt.Errorf("set prefix: empty prefix")
	}
	settings, err := s.get(ctx, guildID)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &entities.GuildSettings{GuildID: guildID}
	}
	settings.Prefix = prefix
	settings.UpdatedAt = time.Now()
	return s.repo.Upsert(ctx, settings)
}

// Reset removes the stored settings so the guild reverts to defaults.
func (s *SettingsService) Reset(ctx context.Context, guildID string) error {
	if guildID == "" {
		return nil
	}
	return s.repo.Delete(ctx, guildID)
}

func (s *SettingsService) get(ctx context.Context, guildID string) (*entities.GuildSettings, error) {
	if guildID == "" {
		return nil, nil
	}
	settings, err := s.repo.Get(ctx, guildID)
	if errors.Is(err, domain.ErrGuildSettingsMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
