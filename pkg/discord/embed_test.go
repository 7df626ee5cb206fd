package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestBuildHelpEmbed(t *testing.T) {
	embed := BuildHelpEmbed("Commands", "hint text", []HelpEntry{
		{Name: "ping", Description: "Measures latency."},
		{Name: "echo", Description: "Repeats text."},
	})
	if embed.Title != "Commands" {
		t.Errorf("title: got %q", embed.Title)
	}
	if embed.Footer == nil || embed.Footer.Text != "hint text" {
		t.Errorf("footer: got %+v", embed.Footer)
	}
	for _, name := range []string{"ping", "echo"} {
		if !strings.Contains(embed.Description, name) {
			t.Errorf("description missing %q: %q", name, embed.Description)
		}
	}
}

func TestBuildUserEmbed(t *testing.T) {
	user := &discordgo.User{ID: "175928847299117063", Username: "alice"}
	embed := BuildUserEmbed("User info", "ID", "Created", user)

	if embed.Author == nil || !strings.Contains(embed.Author.Name, "alice") {
		t.Errorf("author: got %+v", embed.Author)
	}
	if len(embed.Fields) != 2 {
		t.Fatalf("fields: got %d", len(embed.Fields))
	}
	if embed.Fields[0].Value != user.ID {
		t.Errorf("id field: got %q", embed.Fields[0].Value)
	}
	if !strings.HasPrefix(embed.Fields[1].Value, "2016-04-30") {
		t.Errorf("created field: got %q", embed.Fields[1].Value)
	}
}

func TestBuildUserEmbedInvalidSnowflake(t *testing.T) {
	user := &discordgo.User{ID: "not-a-snowflake", Username: "ghost"}
	embed := BuildUserEmbed("User info", "ID", "Created", user)
	if len(embed.Fields) != 1 {
		t.Errorf("invalid snowflake should omit the created field, got %d fields", len(embed.Fields))
	}
}
