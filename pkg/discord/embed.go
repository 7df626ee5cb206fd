package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x5865F2

// HelpEntry is one row of the command overview.
type HelpEntry struct {
	Name        string
	Description string
}

// BuildHelpEmbed builds the command overview embed: one line per command,
// with the usage hint as footer.
func BuildHelpEmbed(title, hint string, entries []HelpEntry) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("**%s** — %s\n", e.Name, e.Description))
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: b.String(),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: hint},
	}
}

// BuildUserEmbed builds the userinfo embed with the account's ID and
// creation date derived from the snowflake.
func BuildUserEmbed(title, idLabel, createdLabel string, user *discordgo.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    user.String(),
			IconURL: user.AvatarURL("128"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: idLabel, Value: user.ID, Inline: true},
		},
	}
	if created := SnowflakeTime(user.ID); !created.IsZero() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   createdLabel,
			Value:  created.UTC().Format("2006-01-02 15:04"),
			Inline: true,
		})
	}
	return embed
}
