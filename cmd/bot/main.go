package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invitegate/internal/config"
	"invitegate/internal/database"
	"invitegate/internal/handler"
	"invitegate/internal/health"
	"invitegate/internal/repository/sqlstore"
	"invitegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger, the level is adjusted once config is loaded
	logConfig := zap.NewProductionConfig()
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting invite gate bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("Invalid log level", zap.String("level", cfg.LogLevel), zap.Error(err))
	}
	logConfig.Level.SetLevel(level.Level())

	logger.Info("Configuration loaded successfully",
		zap.String("db_driver", cfg.Database.Driver),
		zap.Duration("invite_ttl", cfg.InviteTTL),
	)

	// Connect to database with retries
	db, err := database.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	store := sqlstore.New(db)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Handler failed", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize services, the bot itself is the Telegram API client
	adminService := service.NewAdminService(store, bot, cfg.GroupID, logger)
	if err := adminService.SeedSuperAdmin(cfg.SuperAdmin); err != nil {
		logger.Fatal("Failed to seed super admin", zap.Error(err))
	}

	services := handler.Services{
		Users:      service.NewUserService(store),
		Invites:    service.NewInviteService(store, bot, cfg.GroupID, cfg.ChannelID, cfg.InviteTTL, logger),
		Admins:     adminService,
		Stats:      service.NewStatsService(store, logger),
		Broadcasts: service.NewBroadcastService(store, bot, cfg.Broadcast.Workers, cfg.Broadcast.PerSecond, logger),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize handler
	h := handler.NewHandler(ctx, bot, services, logger)
	h.RegisterHandlers()

	if err := bot.SetCommands(handler.Commands()); err != nil {
		logger.Warn("Failed to publish command menu", zap.Error(err))
	}

	logger.Info("Handlers registered")

	// Start health server if an address is configured
	var healthServer *health.Server
	if addr := cfg.HTTPAddress(); addr != "" {
		healthServer = health.NewServer(addr, store, logger)
		go func() {
			if err := healthServer.Start(); err != nil {
				logger.Error("Health server failed", zap.Error(err))
			}
		}()
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown, running broadcasts observe the cancelled context
	cancel()
	bot.Stop()

	if healthServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop health server", zap.Error(err))
		}
	}

	logger.Info("Bot stopped gracefully")
}
