package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"journal-ripples/config"
	_ "journal-ripples/docs" // Swagger docs
	"journal-ripples/internal/httpserver"
	"journal-ripples/internal/planner"
	"journal-ripples/internal/planner/publisher"
	"journal-ripples/internal/webhook"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/gcalendar"
	"journal-ripples/pkg/lexicon"
	"journal-ripples/pkg/log"
	"journal-ripples/pkg/sqlitedb"
)

// @title       Journal Ripples API
// @description Action suggestions extracted from journal entries, with review and materialization into tasks, appointments and important events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Journal Ripples...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlitedb.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. Entry analysis
	lex, err := lexicon.LoadFile(cfg.Automation.LexiconPath)
	if err != nil {
		logger.Error(ctx, "Failed to load lexicon: ", err)
		return
	}
	compiled, err := lex.Compile()
	if err != nil {
		logger.Error(ctx, "Failed to compile lexicon: ", err)
		return
	}

	dates, err := datemath.NewParser(cfg.Automation.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Automation.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar publisher (optional)
	var calendarPublisher planner.Publisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarPublisher = publisher.NewCalendar(client, cfg.GoogleCalendar.CalendarID, dates.Location(), logger)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(ctx, logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		DB:            db,
		Lexicon:       compiled,
		Dates:         dates,
		DirectUpserts: cfg.Automation.DirectUpserts,
		Publisher:     calendarPublisher,

		WebhookEnabled: cfg.Webhook.Enabled,
		WebhookSecurity: webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			RedeliveryTTL:   cfg.Webhook.RedeliveryTTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
