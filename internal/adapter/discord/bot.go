// Package discord adapts the Discord gateway to the application service:
// it feeds incoming guild messages into the ingest pipeline, answers the
// slash commands, and publishes the scheduled daily report.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/app"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/domain"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/report"
)

type Bot struct {
	session         *discordgo.Session
	app             *app.Service
	guildID         string
	reportChannelID string
}

func New(token string, appSvc *app.Service, guildID, reportChannelID string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:         session,
		app:             appSvc,
		guildID:         guildID,
		reportChannelID: reportChannelID,
	}

	session.AddHandler(b.handleMessageCreate)
	session.AddHandler(b.handleInteraction)

	return b, nil
}

// Start opens the gateway connection and registers the slash commands on the
// configured guild.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	slog.Info("Discord gateway connected",
		"bot", b.session.State.User.Username, "guild", b.guildID)

	if err := b.registerCommands(); err != nil {
		// Sentiment tracking still works without commands; log and continue,
		// as the original deployment did.
		slog.Error("Failed to register slash commands", "error", err)
	}

	return nil
}

func (b *Bot) Stop() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

// handleMessageCreate runs every delivered guild message through the ingest
// pipeline. Admission decisions and store failures are handled inside the
// service; the gateway loop never stops on either.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	msg := domain.InboundMessage{
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot,
		Username:    m.Author.Username,
		ChannelID:   m.ChannelID,
		ChannelName: b.channelName(s, m.ChannelID),
		Content:     m.Content,
	}

	_, _ = b.app.Ingest(context.Background(), msg)
}

func (b *Bot) channelName(s *discordgo.Session, channelID string) string {
	if channel, err := s.State.Channel(channelID); err == nil && channel.Name != "" {
		return channel.Name
	}
	if channel, err := s.Channel(channelID); err == nil && channel.Name != "" {
		return channel.Name
	}
	return "unknown"
}

// Publish implements app.ReportSink: it sends the rendered report to the
// configured report channel.
func (b *Bot) Publish(_ context.Context, msg report.Message) error {
	if b.reportChannelID == "" {
		return fmt.Errorf("no report channel configured")
	}

	if _, err := b.session.ChannelMessageSendEmbed(b.reportChannelID, toEmbed(msg)); err != nil {
		return fmt.Errorf("failed to send report embed: %w", err)
	}
	return nil
}
