package logger

import (
	"log/slog"
	"os"
)

// New возвращает JSON-логгер сервиса с атрибутом service.
func New(env string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelFor(env)})
	return slog.New(h).With("service", "decor-bot")
}

func levelFor(env string) slog.Level {
	if env == "dev" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
