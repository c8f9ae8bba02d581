package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mariykapirojok/dem/internal/domain/materials"
	"github.com/mariykapirojok/dem/internal/domain/products"
)

const (
	btnProducts    = "Продукция"
	btnCalcMat     = "Расчёт материала"
	btnCalcCost    = "Расчёт стоимости"
	btnExportExcel = "Выгрузка в Excel"
)

// mainReplyKeyboard Нижняя панель оператора
func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnProducts)},
			{tgbotapi.NewKeyboardButton(btnCalcMat), tgbotapi.NewKeyboardButton(btnCalcCost)},
			{tgbotapi.NewKeyboardButton(btnExportExcel)},
		},
	}
}

func cancelRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Отменить", "nav:cancel"),
	)
}

func productListKeyboard(list []products.Product) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+2)
	for _, p := range list {
		label := fmt.Sprintf("%s (арт. %s)", p.Name, p.Article)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("prod:open:%d", p.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Добавить", "prod:add"),
	))
	rows = append(rows, cancelRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func productCardKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Материалы", fmt.Sprintf("prod:mats:%d", id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Редактировать", fmt.Sprintf("prod:edit:%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Удалить", fmt.Sprintf("prod:del:%d", id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ К списку", "prod:list"),
		),
	)
}

func deleteConfirmKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да, удалить", fmt.Sprintf("prod:del:yes:%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("Отмена", fmt.Sprintf("prod:open:%d", id)),
		),
	)
}

func productMaterialsKeyboard(productID int64, rows []materials.BOMRow) tgbotapi.InlineKeyboardMarkup {
	out := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows)+2)
	for _, r := range rows {
		out = append(out, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 %s", r.Name),
				fmt.Sprintf("bom:del:%d:%d", productID, r.MaterialID),
			),
		))
	}
	out = append(out, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Добавить материал", fmt.Sprintf("bom:add:%d", productID)),
	))
	out = append(out, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ К карточке", fmt.Sprintf("prod:open:%d", productID)),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: out}
}

func productTypesKeyboard(types []products.ProductType) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(types)+1)
	for _, t := range types {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Name, fmt.Sprintf("ptype:%d", t.ID)),
		))
	}
	rows = append(rows, cancelRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func materialsKeyboard(list []materials.Material) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+1)
	for _, m := range list {
		label := fmt.Sprintf("%s (%s)", m.Name, m.TypeName)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("mat:%d", m.ID)),
		))
	}
	rows = append(rows, cancelRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func costProductsKeyboard(list []products.Product) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+1)
	for _, p := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Name, fmt.Sprintf("cost:prod:%d", p.ID)),
		))
	}
	rows = append(rows, cancelRow())
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
