package entities

import "time"

// GuildSettings holds the per-guild command configuration.
type GuildSettings struct {
	GuildID   string
	Language  string
	Prefix    string
	UpdatedAt time.Time
}
