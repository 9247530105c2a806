package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/report"
)

const (
	commandSentiment = "sentiment"
	commandChannels  = "channels"
	commandReport    = "report"

	defaultSummaryDays = 7
	defaultChannelDays = 1
)

const (
	replyNoData      = "📭 No sentiment data found for that period yet."
	replyNoChannels  = "📭 No channel data available yet."
	replyError       = "⚠️ An error occurred running that command."
	replyUnavailable = "⚠️ Sentiment data is unavailable right now, try again later."
	replyReportSent  = "✅ Report sent!"
)

func daysOption(description string) *discordgo.ApplicationCommandOption {
	minDays := float64(1)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "days",
		Description: description,
		Required:    false,
		MinValue:    &minDays,
		MaxValue:    30,
	}
}

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        commandSentiment,
			Description: "View community sentiment summary",
			Options: []*discordgo.ApplicationCommandOption{
				daysOption("How many days to look back (default: 7)"),
			},
		},
		{
			Name:        commandChannels,
			Description: "View sentiment breakdown by channel",
			Options: []*discordgo.ApplicationCommandOption{
				daysOption("How many days to look back (default: 1)"),
			},
		},
		{
			Name:        commandReport,
			Description: "Manually trigger today's full sentiment report",
		},
	}

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, commands)
	if err != nil {
		return err
	}

	slog.Info("Slash commands registered", "guild", b.guildID, "count", len(commands))
	return nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	ctx := context.Background()

	switch data.Name {
	case commandSentiment:
		b.handleSentimentCommand(ctx, s, i, data)
	case commandChannels:
		b.handleChannelsCommand(ctx, s, i, data)
	case commandReport:
		b.handleReportCommand(ctx, s, i)
	}
}

func (b *Bot) handleSentimentCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if err := deferReply(s, i, false); err != nil {
		slog.Error("Failed to defer /sentiment reply", "error", err)
		return
	}

	r, err := b.app.SummaryReport(ctx, daysArg(data, defaultSummaryDays))
	if err != nil {
		slog.Error("Summary report failed", "error", err)
		editReplyText(s, i, replyUnavailable)
		return
	}
	if r.MessageCount == 0 {
		editReplyText(s, i, replyNoData)
		return
	}

	editReplyEmbed(s, i, toEmbed(report.Render(*r)))
}

func (b *Bot) handleChannelsCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if err := deferReply(s, i, false); err != nil {
		slog.Error("Failed to defer /channels reply", "error", err)
		return
	}

	r, err := b.app.ChannelReport(ctx, daysArg(data, defaultChannelDays))
	if err != nil {
		slog.Error("Channel report failed", "error", err)
		editReplyText(s, i, replyUnavailable)
		return
	}
	if len(r.ChannelLines) == 0 {
		editReplyText(s, i, replyNoChannels)
		return
	}

	editReplyEmbed(s, i, toEmbed(report.Render(*r)))
}

func (b *Bot) handleReportCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := deferReply(s, i, true); err != nil {
		slog.Error("Failed to defer /report reply", "error", err)
		return
	}

	r, err := b.app.FullDailyReport(ctx)
	if err != nil {
		slog.Error("Full daily report failed", "error", err)
		editReplyText(s, i, replyUnavailable)
		return
	}

	// The report lands in the channel the command was issued from; the
	// ephemeral confirmation only the requester sees.
	if _, err := s.ChannelMessageSendEmbed(i.ChannelID, toEmbed(report.Render(*r))); err != nil {
		slog.Error("Failed to send report embed", "error", err)
		editReplyText(s, i, replyError)
		return
	}

	editReplyText(s, i, replyReportSent)
}

func daysArg(data discordgo.ApplicationCommandInteractionData, fallback int) int {
	for _, opt := range data.Options {
		if opt.Name == "days" {
			return int(opt.IntValue())
		}
	}
	return fallback
}

func deferReply(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		response.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	return s.InteractionRespond(i.Interaction, response)
}

func editReplyText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		slog.Error("Failed to edit interaction reply", "error", err)
	}
}

func editReplyEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		slog.Error("Failed to edit interaction reply", "error", err)
	}
}
