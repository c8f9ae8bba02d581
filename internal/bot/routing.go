package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mariykapirojok/dem/internal/dialog"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		_ = b.states.Reset(ctx, chatID)
		m := tgbotapi.NewMessage(chatID, "Здравствуйте! Это учёт продукции «Наш декор». Выберите действие в меню ниже.")
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)
	case "cancel":
		_ = b.states.Reset(ctx, chatID)
		b.send(tgbotapi.NewMessage(chatID, "Действие отменено."))
	default:
		b.send(tgbotapi.NewMessage(chatID, "Неизвестная команда. Используйте меню ниже."))
	}
}

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	switch msg.Text {
	case btnProducts:
		b.showProductList(ctx, chatID, 0)
		return
	case btnCalcMat:
		b.startRequirementFlow(ctx, chatID)
		return
	case btnCalcCost:
		b.startCostFlow(ctx, chatID)
		return
	case btnExportExcel:
		b.exportProducts(ctx, chatID)
		return
	}

	b.handleStateInput(ctx, msg)
}

// handleStateInput обрабатывает текстовый ввод в зависимости от шага диалога.
func (b *Bot) handleStateInput(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	st, err := b.states.Get(ctx, chatID)
	if err != nil || st == nil {
		return
	}

	switch st.State {
	case dialog.StateProdName:
		b.onProductName(ctx, chatID, st, msg.Text)
	case dialog.StateProdArticle:
		b.onProductArticle(ctx, chatID, st, msg.Text)
	case dialog.StateProdPrice:
		b.onProductPrice(ctx, chatID, st, msg.Text)
	case dialog.StateProdWidth:
		b.onProductWidth(ctx, chatID, st, msg.Text)
	case dialog.StateProdMatQty:
		b.onBomQty(ctx, chatID, st, msg.Text)

	case dialog.StateReqAmount:
		b.onReqAmount(ctx, chatID, st, msg.Text)
	case dialog.StateReqWidth:
		b.onReqWidth(ctx, chatID, st, msg.Text)
	case dialog.StateReqTolerance:
		b.onReqTolerance(ctx, chatID, st, msg.Text)
	case dialog.StateReqStock:
		b.onReqStock(ctx, chatID, st, msg.Text)

	case dialog.StateCostQty:
		b.onCostQty(ctx, chatID, st, msg.Text)

	default:
		b.send(tgbotapi.NewMessage(chatID, "Выберите действие в меню ниже."))
	}
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	cb := upd.CallbackQuery
	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	data := cb.Data
	_ = b.answerCallback(cb, "", false)

	st, err := b.states.Get(ctx, chatID)
	if err != nil || st == nil {
		return
	}

	switch {
	case data == "nav:cancel":
		_ = b.states.Reset(ctx, chatID)
		b.editTextAndClear(chatID, msgID, "Действие отменено.")

	case data == "prod:list":
		b.showProductList(ctx, chatID, msgID)
	case data == "prod:add":
		b.startProductForm(ctx, chatID, msgID, 0)

	case strings.HasPrefix(data, "prod:del:yes:"):
		if !isAdminChat(b.adminChat, chatID) {
			b.send(tgbotapi.NewMessage(chatID, "Удаление доступно только администратору."))
			return
		}
		if id, ok := parseID(data, "prod:del:yes:"); ok {
			b.deleteProduct(ctx, chatID, msgID, id)
		}
	case strings.HasPrefix(data, "prod:del:"):
		if !isAdminChat(b.adminChat, chatID) {
			b.send(tgbotapi.NewMessage(chatID, "Удаление доступно только администратору."))
			return
		}
		if id, ok := parseID(data, "prod:del:"); ok {
			b.confirmDeleteProduct(ctx, chatID, msgID, id)
		}
	case strings.HasPrefix(data, "prod:edit:"):
		if id, ok := parseID(data, "prod:edit:"); ok {
			b.startProductForm(ctx, chatID, msgID, id)
		}
	case strings.HasPrefix(data, "prod:mats:"):
		if id, ok := parseID(data, "prod:mats:"); ok {
			b.showProductMaterials(ctx, chatID, msgID, id)
		}
	case strings.HasPrefix(data, "prod:open:"):
		if id, ok := parseID(data, "prod:open:"); ok {
			b.showProductCard(ctx, chatID, msgID, id)
		}

	case strings.HasPrefix(data, "ptype:"):
		id, ok := parseID(data, "ptype:")
		if !ok {
			return
		}
		// один и тот же префикс в форме продукта и в расчёте материала
		switch st.State {
		case dialog.StateProdPickType:
			b.onProductTypePicked(ctx, chatID, msgID, st, id)
		case dialog.StateReqPickType:
			b.onReqTypePicked(ctx, chatID, msgID, st, id)
		}

	case strings.HasPrefix(data, "bom:add:"):
		if id, ok := parseID(data, "bom:add:"); ok {
			b.startBomAdd(ctx, chatID, msgID, id)
		}
	case strings.HasPrefix(data, "bom:del:"):
		if !isAdminChat(b.adminChat, chatID) {
			b.send(tgbotapi.NewMessage(chatID, "Удаление доступно только администратору."))
			return
		}
		if prodID, matID, ok := parsePair(data, "bom:del:"); ok {
			b.onBomDelete(ctx, chatID, msgID, prodID, matID)
		}

	case strings.HasPrefix(data, "mat:"):
		id, ok := parseID(data, "mat:")
		if !ok {
			return
		}
		// тот же префикс в расчёте материала и в спецификации продукта
		switch st.State {
		case dialog.StateReqPickMaterial:
			b.onReqMaterialPicked(ctx, chatID, msgID, st, id)
		case dialog.StateProdMatPick:
			b.onBomMaterialPicked(ctx, chatID, msgID, st, id)
		}

	case strings.HasPrefix(data, "cost:prod:"):
		if st.State != dialog.StateCostPickProduct {
			return
		}
		if id, ok := parseID(data, "cost:prod:"); ok {
			b.onCostProductPicked(ctx, chatID, msgID, st, id)
		}
	}
}
