package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/adapter/discord"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/app"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/config"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/database"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/logging"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/scheduler"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/sentiment"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/server"
)

func setupConfig() *config.Config {
	// Only load a .env file outside production deployments.
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port,
		"guild", cfg.GuildID, "ignored_channels", len(cfg.IgnoredChannels))

	pool := setupDB(cfg)
	defer pool.Close()

	eventRepo := database.NewEventRepo(pool, clock)
	analyzer := sentiment.NewAnalyzer(sentiment.DefaultLexicon())
	appSvc := app.NewService(eventRepo, analyzer, clock, cfg.IgnoredChannels)

	bot, err := discord.New(cfg.DiscordToken, appSvc, cfg.GuildID, cfg.ReportChannelID)
	if err != nil {
		slog.Error("Failed to create discord bot", "error", err)
		os.Exit(1)
	}
	if cfg.ReportChannelID != "" {
		appSvc.SetSink(bot)
	} else {
		slog.Warn("REPORT_CHANNEL_ID not set, scheduled reports will be skipped")
	}

	// Invalid cadence is a fatal misconfiguration, caught before anything
	// else starts.
	sched, err := scheduler.New(cfg.ReportCron, appSvc.RunScheduledReport)
	if err != nil {
		slog.Error("Failed to create report scheduler", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg.Port, []server.HealthCheck{
		{Name: "postgres", Check: pool.Ping},
	})

	if err := bot.Start(); err != nil {
		slog.Error("Failed to start discord bot", "error", err)
		os.Exit(1)
	}
	sched.Start()

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Keep-alive server stopped", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	slog.Info("Shutdown signal received, cleaning up...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	sched.Stop()

	if err := bot.Stop(); err != nil {
		slog.Error("Discord shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
