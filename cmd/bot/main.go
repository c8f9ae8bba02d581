package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/mariykapirojok/dem/internal/bot"
	"github.com/mariykapirojok/dem/internal/config"
	"github.com/mariykapirojok/dem/internal/dialog"
	"github.com/mariykapirojok/dem/internal/domain/calc"
	"github.com/mariykapirojok/dem/internal/domain/materials"
	"github.com/mariykapirojok/dem/internal/domain/products"
	"github.com/mariykapirojok/dem/internal/infra/db"
	httpx "github.com/mariykapirojok/dem/internal/infra/http"
	"github.com/mariykapirojok/dem/internal/infra/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	log.Info("telegram authorized", "username", api.Self.UserName)

	statesRepo := dialog.NewRepo(pool)
	productsRepo := products.NewRepo(pool)
	materialsRepo := materials.NewRepo(pool)
	calcSvc := calc.NewService(calc.NewRepo(pool))

	b := bot.New(api, log, statesRepo, cfg.Telegram.AdminChatID, productsRepo, materialsRepo, calcSvc)
	go func() {
		if err := b.Run(ctx, 30); err != nil && ctx.Err() == nil {
			log.Error("bot stopped", "err", err)
		}
	}()
	log.Info("bot started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
