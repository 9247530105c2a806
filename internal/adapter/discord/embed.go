package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/report"
)

// toEmbed maps a rendered report message onto a Discord embed.
func toEmbed(msg report.Message) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(msg.Sections))
	for _, section := range msg.Sections {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   section.Name,
			Value:  section.Value,
			Inline: section.Inline,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Description,
		Color:       msg.Color,
		Fields:      fields,
	}

	if msg.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Footer}
	}
	if !msg.Timestamp.IsZero() {
		embed.Timestamp = msg.Timestamp.Format(time.RFC3339)
	}

	return embed
}
