package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mariykapirojok/dem/internal/dialog"
)

/* Редактирование спецификации продукта */

func (b *Bot) startBomAdd(ctx context.Context, chatID int64, editMsgID int, productID int64) {
	mats, err := b.materials.List(ctx)
	if err != nil || len(mats) == 0 {
		b.editTextAndClear(chatID, editMsgID, "Справочник материалов пуст.")
		return
	}
	payload := dialog.Payload{"product_id": float64(productID)}
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, "Выберите материал для спецификации:", materialsKeyboard(mats)))
	_ = b.states.Set(ctx, chatID, dialog.StateProdMatPick, payload)
}

func (b *Bot) onBomMaterialPicked(ctx context.Context, chatID int64, editMsgID int, st *dialog.Item, materialID int64) {
	st.Payload["mat_id"] = float64(materialID)
	b.editTextAndClear(chatID, editMsgID, "Введите норму расхода материала на единицу продукции:")
	_ = b.states.Set(ctx, chatID, dialog.StateProdMatQty, st.Payload)
}

func (b *Bot) onBomQty(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	qty, err := parseFloat(text)
	if err != nil || qty <= 0 {
		b.send(tgbotapi.NewMessage(chatID, "Некорректная норма. Введите положительное число:"))
		return
	}

	productID, _ := dialog.GetInt64(st.Payload, "product_id")
	materialID, _ := dialog.GetInt64(st.Payload, "mat_id")
	if err := b.materials.UpsertLink(ctx, productID, materialID, qty); err != nil {
		b.log.Error("bom upsert failed", "err", err, "product_id", productID, "material_id", materialID)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить спецификацию."))
		return
	}
	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Спецификация обновлена: норма %.2f на ед.", qty)))
	b.showProductMaterials(ctx, chatID, 0, productID)
}

func (b *Bot) onBomDelete(ctx context.Context, chatID int64, editMsgID int, productID, materialID int64) {
	if err := b.materials.DeleteLink(ctx, productID, materialID); err != nil {
		b.log.Error("bom delete failed", "err", err, "product_id", productID, "material_id", materialID)
		b.editTextAndClear(chatID, editMsgID, "Не удалось удалить материал из спецификации.")
		return
	}
	b.showProductMaterials(ctx, chatID, editMsgID, productID)
}
