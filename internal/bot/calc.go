package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mariykapirojok/dem/internal/dialog"
	"github.com/mariykapirojok/dem/internal/domain/calc"
	"github.com/mariykapirojok/dem/internal/infra/metrics"
)

/* Расчёт потребности в материале */

func (b *Bot) startRequirementFlow(ctx context.Context, chatID int64) {
	types, err := b.products.ListTypes(ctx)
	if err != nil || len(types) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Справочник типов продукции пуст."))
		return
	}
	m := tgbotapi.NewMessage(chatID, "Расчёт материала. Выберите тип продукции:")
	m.ReplyMarkup = productTypesKeyboard(types)
	b.send(m)
	_ = b.states.Set(ctx, chatID, dialog.StateReqPickType, dialog.Payload{})
}

func (b *Bot) onReqTypePicked(ctx context.Context, chatID int64, editMsgID int, st *dialog.Item, typeID int64) {
	mats, err := b.materials.List(ctx)
	if err != nil || len(mats) == 0 {
		b.editTextAndClear(chatID, editMsgID, "Справочник материалов пуст.")
		return
	}
	st.Payload["ptype_id"] = float64(typeID)
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, "Выберите материал:", materialsKeyboard(mats)))
	_ = b.states.Set(ctx, chatID, dialog.StateReqPickMaterial, st.Payload)
}

func (b *Bot) onReqMaterialPicked(ctx context.Context, chatID int64, editMsgID int, st *dialog.Item, materialID int64) {
	st.Payload["mat_id"] = float64(materialID)
	b.editTextAndClear(chatID, editMsgID, "Введите количество продукции (шт):")
	_ = b.states.Set(ctx, chatID, dialog.StateReqAmount, st.Payload)
}

func (b *Bot) onReqAmount(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	amount, err := parseInt(text)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Некорректное число. Введите количество продукции (шт):"))
		return
	}
	st.Payload["amount"] = float64(amount)
	b.send(tgbotapi.NewMessage(chatID, "Введите ширину рулона (м):"))
	_ = b.states.Set(ctx, chatID, dialog.StateReqWidth, st.Payload)
}

func (b *Bot) onReqWidth(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	w, err := parseFloat(text)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Некорректное число. Введите ширину рулона (м):"))
		return
	}
	st.Payload["p1"] = w
	b.send(tgbotapi.NewMessage(chatID, "Введите допустимый коэффициент:"))
	_ = b.states.Set(ctx, chatID, dialog.StateReqTolerance, st.Payload)
}

func (b *Bot) onReqTolerance(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	tol, err := parseFloat(text)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Некорректное число. Введите допустимый коэффициент:"))
		return
	}
	st.Payload["p2"] = tol

	// подсказываем текущий остаток из справочника
	hint := "Введите остаток материала на складе (0 — если не учитывать):"
	if matID, ok := dialog.GetInt64(st.Payload, "mat_id"); ok {
		if m, err := b.materials.GetByID(ctx, matID); err == nil && m != nil {
			hint = fmt.Sprintf("Сейчас на складе: %.2f. Введите остаток для расчёта (0 — если не учитывать):", m.StockQty)
		}
	}
	b.send(tgbotapi.NewMessage(chatID, hint))
	_ = b.states.Set(ctx, chatID, dialog.StateReqStock, st.Payload)
}

func (b *Bot) onReqStock(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	stock, err := parseFloat(text)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Некорректное число. Введите остаток материала на складе:"))
		return
	}

	ptypeID, _ := dialog.GetInt64(st.Payload, "ptype_id")
	matID, _ := dialog.GetInt64(st.Payload, "mat_id")
	amount, _ := dialog.GetInt64(st.Payload, "amount")
	p1, _ := dialog.GetFloat(st.Payload, "p1")
	p2, _ := dialog.GetFloat(st.Payload, "p2")

	res, err := b.calc.MaterialRequirement(ctx, calc.RequirementInput{
		ProductTypeID: ptypeID,
		MaterialID:    matID,
		Amount:        int(amount),
		RollWidth:     p1,
		Tolerance:     p2,
		StockQty:      stock,
	})
	metrics.CalcTotal.WithLabelValues("requirement", calc.Outcome(err)).Inc()

	var reply string
	if err != nil {
		reply = calc.Message(err)
	} else {
		reply = fmt.Sprintf("%s\nНеобходимо закупить: %d ед. материала.", calc.MsgRequirementOK, res)
	}
	b.send(tgbotapi.NewMessage(chatID, reply))
	_ = b.states.Reset(ctx, chatID)
}

/* Расчёт стоимости партии */

func (b *Bot) startCostFlow(ctx context.Context, chatID int64) {
	list, err := b.products.List(ctx)
	if err != nil || len(list) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Продукция пока не заведена."))
		return
	}
	m := tgbotapi.NewMessage(chatID, "Расчёт стоимости. Выберите продукт:")
	m.ReplyMarkup = costProductsKeyboard(list)
	b.send(m)
	_ = b.states.Set(ctx, chatID, dialog.StateCostPickProduct, dialog.Payload{})
}

func (b *Bot) onCostProductPicked(ctx context.Context, chatID int64, editMsgID int, st *dialog.Item, productID int64) {
	st.Payload["prod_id"] = float64(productID)
	b.editTextAndClear(chatID, editMsgID, "Введите количество единиц продукции:")
	_ = b.states.Set(ctx, chatID, dialog.StateCostQty, st.Payload)
}

func (b *Bot) onCostQty(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	qty, err := parseInt(text)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Некорректное число. Введите количество единиц продукции:"))
		return
	}

	prodID, _ := dialog.GetInt64(st.Payload, "prod_id")
	cost, err := b.calc.ProductCost(ctx, prodID, qty)
	metrics.CalcTotal.WithLabelValues("cost", calc.Outcome(err)).Inc()

	var reply string
	if err != nil {
		reply = calc.Message(err)
	} else {
		reply = fmt.Sprintf("%s\nСтоимость партии: %.2f ₽.", calc.MsgCostOK, cost)
	}
	b.send(tgbotapi.NewMessage(chatID, reply))
	_ = b.states.Reset(ctx, chatID)
}
