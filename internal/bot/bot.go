package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mariykapirojok/dem/internal/dialog"
	"github.com/mariykapirojok/dem/internal/domain/calc"
	"github.com/mariykapirojok/dem/internal/domain/materials"
	"github.com/mariykapirojok/dem/internal/domain/products"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	log       *slog.Logger
	states    *dialog.Repo
	adminChat int64
	products  *products.Repo
	materials *materials.Repo
	calc      *calc.Service
}

func New(api *tgbotapi.BotAPI, log *slog.Logger,
	statesRepo *dialog.Repo, adminChatID int64,
	productsRepo *products.Repo, materialsRepo *materials.Repo,
	calcSvc *calc.Service) *Bot {

	return &Bot{
		api: api, log: log, states: statesRepo,
		adminChat: adminChatID,
		products:  productsRepo, materials: materialsRepo,
		calc: calcSvc,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}
