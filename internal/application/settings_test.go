package application

import (
	"context"
	"testing"

	"cmdbot/internal/domain"
	"cmdbot/internal/domain/entities"
)

type memoryRepo struct {
	rows map[string]*entities.GuildSettings
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[string]*entities.GuildSettings{}}
}

func (r *memoryRepo) Get(_ context.Context, guildID string) (*entities.GuildSettings, error) {
	s, ok := r.rows[guildID]
	if !ok {
		return nil, domain.ErrGuildSettingsMissing
	}
	cp := *s
	return &cp, nil
}

func (r *memoryRepo) Upsert(_ context.Context, settings *entities.GuildSettings) error {
	cp := *settings
	r.rows[settings.GuildID] = &cp
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, guildID string) error {
	delete(r.rows, guildID)
	return nil
}

func TestLanguageDefaults(t *testing.T) {
	svc := NewSettingsService(newMemoryRepo(), "en", "!")
	ctx := context.Background()

	got, err := svc.Language(ctx, "G1")
	if err != nil {
		t.Fatalf("Language: %v", err)
	}
	if got != "en" {
		t.Errorf("unknown guild: want default en, got %q", got)
	}

	// DMs carry no guild and always use the default.
	got, err = svc.Language(ctx, "")
	if err != nil || got != "en" {
		t.Errorf("DM language: got (%q, %v)", got, err)
	}
}

func TestSetLanguageRoundTrip(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewSettingsService(repo, "en", "!")
	ctx := context.Background()

	if err := svc.SetLanguage(ctx, "G1", " FR "); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	got, err := svc.Language(ctx, "G1")
	if err != nil {
		t.Fatalf("Language: %v", err)
	}
	if got != "fr" {
		t.Errorf("want normalized fr, got %q", got)
	}

	// Changing the language keeps an existing prefix.
	if err := svc.SetPrefix(ctx, "G1", "?"); err != nil {
		t.Fatalf("SetPrefix: %v", err)
	}
	if err := svc.SetLanguage(ctx, "G1", "en"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	prefix, err := svc.Prefix(ctx, "G1")
	if err != nil || prefix != "?" {
		t.Errorf("prefix after language change: got (%q, %v)", prefix, err)
	}
}

func TestSetLanguageRejectsEmpty(t *testing.T) {
	svc := NewSettingsService(newMemoryRepo(), "en", "!")
	if err := svc.SetLanguage(context.Background(), "G1", "  "); err == nil {
		t.Error("want error for empty code")
	}
}

func TestPrefixDefaultsAndUpdate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewSettingsService(repo, "en", "!")
	ctx := context.Background()

	got, err := svc.Prefix(ctx, "G1")
	if err != nil || got != "!" {
		t.Errorf("default prefix: got (%q, %v)", got, err)
	}

	if err := svc.SetPrefix(ctx, "G1", "$"); err != nil {
		t.Fatalf("SetPrefix: %v", err)
	}
	got, err = svc.Prefix(ctx, "G1")
	if err != nil || got != "$" {
		t.Errorf("updated prefix: got (%q, %v)", got, err)
	}
}

func TestResetRevertsToDefaults(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewSettingsService(repo, "en", "!")
	ctx := context.Background()

	if err := svc.SetLanguage(ctx, "G1", "fr"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if err := svc.Reset(ctx, "G1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err := svc.Language(ctx, "G1")
	if err != nil || got != "en" {
		t.Errorf("language after reset: got (%q, %v)", got, err)
	}
}
