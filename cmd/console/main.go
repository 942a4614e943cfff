package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/app"
	"github.com/Freeeeeet/hotel_console/internal/config"
	"github.com/Freeeeeet/hotel_console/internal/controller"
	"github.com/Freeeeeet/hotel_console/internal/repository"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Console stopped with error", zap.Error(err))
	}
	logger.Info("Console stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting hotel console", zap.String("environment", cfg.Environment))

	// Хранилище сессий
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	if err := migrate(ctx, pool, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	sessions := repository.NewSessionRepository(pool)

	// Клиент REST API гостиницы
	api := apiclient.New(cfg.APIBaseURL, http.DefaultClient, logger.Named("api"))
	if cfg.RedisEnabled() {
		if rdb := app.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger); rdb != nil {
			defer rdb.Close()
			api = api.WithLookupCache(apiclient.NewLookupCache(rdb, cfg.LookupCacheTTL, "", logger.Named("lookup_cache")))
		}
	}
	logger.Info("Hotel API client ready",
		zap.String("base_url", api.BaseURL()),
		zap.Bool("lookup_cache", api.LookupCacheEnabled()))

	authService := service.NewAuthService(sessions, api, cfg.SessionTTL, logger.Named("auth"))

	sweeper := app.NewSessionSweeper(sessions, cfg.SessionSweepInterval, logger.Named("session_sweeper"))
	sweeper.Start(ctx)
	defer sweeper.Stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, authService, cfg.NotificationTTL, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично для работы
		logger.Warn("Bot commands were not set", zap.Error(err))
	}

	return botController.Start(ctx)
}

// migrate применяет миграции таблицы сессий до запуска бота
func migrate(ctx context.Context, pool *pgxpool.Pool, path string, logger *zap.Logger) error {
	migrator, err := app.NewMigrator(pool, path, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Run(ctx)
}
