package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mariykapirojok/dem/internal/dialog"
)

// showProductList показывает список продукции. editMsgID > 0 — правим
// существующее сообщение, иначе шлём новое.
func (b *Bot) showProductList(ctx context.Context, chatID int64, editMsgID int) {
	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("products list failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось загрузить список продукции."))
		return
	}

	text := fmt.Sprintf("Продукция (%d). Выберите позицию:", len(list))
	if len(list) == 0 {
		text = "Продукция пока не заведена. Добавьте первую позицию:"
	}
	kb := productListKeyboard(list)

	if editMsgID > 0 {
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, text, kb))
	} else {
		m := tgbotapi.NewMessage(chatID, text)
		m.ReplyMarkup = kb
		b.send(m)
	}
	_ = b.states.Set(ctx, chatID, dialog.StateProdList, dialog.Payload{})
}

func (b *Bot) showProductCard(ctx context.Context, chatID int64, editMsgID int, id int64) {
	p, err := b.products.GetByID(ctx, id)
	if err != nil || p == nil {
		b.editTextAndClear(chatID, editMsgID, "Продукт не найден.")
		return
	}

	text := fmt.Sprintf(
		"«%s»\nТип: %s\nАртикул: %s\nМин. цена для партнёра: %.2f ₽\nШирина рулона: %.2f м",
		p.Name, p.TypeName, p.Article, p.MinPartnerPrice, p.RollWidth,
	)
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, text, productCardKeyboard(id)))
	_ = b.states.Set(ctx, chatID, dialog.StateProdCard, dialog.Payload{"product_id": float64(id)})
}

// showProductMaterials — спецификация продукта; пустой список — нормальная
// ситуация, не ошибка. editMsgID > 0 — правим сообщение, иначе шлём новое.
func (b *Bot) showProductMaterials(ctx context.Context, chatID int64, editMsgID int, id int64) {
	p, err := b.products.GetByID(ctx, id)
	if err != nil || p == nil {
		b.editTextAndClear(chatID, editMsgID, "Продукт не найден.")
		return
	}

	rows, err := b.materials.ListForProduct(ctx, id)
	if err != nil {
		b.log.Error("bom list failed", "err", err, "product_id", id)
		b.editTextAndClear(chatID, editMsgID, "Не удалось загрузить материалы продукта.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Материалы «%s»:\n", p.Name)
	if len(rows) == 0 {
		sb.WriteString("— спецификация не заполнена")
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "• %s — %.2f ₽ × %.2f на ед.\n", r.Name, r.UnitPrice, r.RequiredQty)
	}

	kb := productMaterialsKeyboard(id, rows)
	if editMsgID > 0 {
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, sb.String(), kb))
	} else {
		m := tgbotapi.NewMessage(chatID, sb.String())
		m.ReplyMarkup = kb
		b.send(m)
	}
	_ = b.states.Set(ctx, chatID, dialog.StateProdMaterials, dialog.Payload{"product_id": float64(id)})
}

/* Добавление/редактирование */

// startProductForm запускает форму. editID == 0 — добавление нового продукта.
func (b *Bot) startProductForm(ctx context.Context, chatID int64, editMsgID int, editID int64) {
	types, err := b.products.ListTypes(ctx)
	if err != nil || len(types) == 0 {
		b.editTextAndClear(chatID, editMsgID, "Справочник типов продукции пуст.")
		return
	}

	payload := dialog.Payload{}
	title := "Новый продукт. Выберите тип продукции:"
	if editID > 0 {
		payload["edit_id"] = float64(editID)
		title = "Редактирование. Выберите тип продукции:"
	}
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, title, productTypesKeyboard(types)))
	_ = b.states.Set(ctx, chatID, dialog.StateProdPickType, payload)
}

func (b *Bot) onProductTypePicked(ctx context.Context, chatID int64, editMsgID int, st *dialog.Item, typeID int64) {
	st.Payload["type_id"] = float64(typeID)
	b.editTextAndClear(chatID, editMsgID, "Введите название продукта:")
	_ = b.states.Set(ctx, chatID, dialog.StateProdName, st.Payload)
}

func (b *Bot) onProductName(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	name := strings.TrimSpace(text)
	if name == "" {
		b.send(tgbotapi.NewMessage(chatID, "Название не может быть пустым. Введите название продукта:"))
		return
	}
	st.Payload["name"] = name
	b.send(tgbotapi.NewMessage(chatID, "Введите артикул:"))
	_ = b.states.Set(ctx, chatID, dialog.StateProdArticle, st.Payload)
}

func (b *Bot) onProductArticle(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	st.Payload["article"] = strings.TrimSpace(text)
	b.send(tgbotapi.NewMessage(chatID, "Введите минимальную цену для партнёра (₽):"))
	_ = b.states.Set(ctx, chatID, dialog.StateProdPrice, st.Payload)
}

func (b *Bot) onProductPrice(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	price, err := parseFloat(text)
	if err != nil || price < 0 {
		b.send(tgbotapi.NewMessage(chatID, "Некорректная цена. Введите неотрицательное число:"))
		return
	}
	st.Payload["price"] = price
	b.send(tgbotapi.NewMessage(chatID, "Введите ширину рулона (м):"))
	_ = b.states.Set(ctx, chatID, dialog.StateProdWidth, st.Payload)
}

func (b *Bot) onProductWidth(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	width, err := parseFloat(text)
	if err != nil || width <= 0 {
		b.send(tgbotapi.NewMessage(chatID, "Некорректная ширина. Введите положительное число:"))
		return
	}

	typeID, _ := dialog.GetInt64(st.Payload, "type_id")
	name, _ := dialog.GetString(st.Payload, "name")
	article, _ := dialog.GetString(st.Payload, "article")
	price, _ := dialog.GetFloat(st.Payload, "price")

	editID, editing := dialog.GetInt64(st.Payload, "edit_id")
	if editing {
		p, err := b.products.Update(ctx, editID, typeID, name, article, price, width)
		if err != nil || p == nil {
			b.log.Error("product update failed", "err", err, "product_id", editID)
			b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить изменения."))
			return
		}
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Продукт «%s» обновлён.", p.Name)))
	} else {
		p, err := b.products.Create(ctx, typeID, name, article, price, width)
		if err != nil {
			b.log.Error("product create failed", "err", err)
			b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить продукт."))
			return
		}
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Продукт «%s» добавлен.", p.Name)))
	}
	_ = b.states.Reset(ctx, chatID)
	b.showProductList(ctx, chatID, 0)
}

/* Удаление */

func (b *Bot) confirmDeleteProduct(ctx context.Context, chatID int64, editMsgID int, id int64) {
	p, err := b.products.GetByID(ctx, id)
	if err != nil || p == nil {
		b.editTextAndClear(chatID, editMsgID, "Продукт не найден.")
		return
	}
	text := fmt.Sprintf("Удалить «%s» (арт. %s)? Спецификация будет удалена вместе с продуктом.", p.Name, p.Article)
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, editMsgID, text, deleteConfirmKeyboard(id)))
	_ = b.states.Set(ctx, chatID, dialog.StateProdDeleteConfirm, dialog.Payload{"product_id": float64(id)})
}

func (b *Bot) deleteProduct(ctx context.Context, chatID int64, editMsgID int, id int64) {
	if err := b.products.Delete(ctx, id); err != nil {
		b.log.Error("product delete failed", "err", err, "product_id", id)
		b.editTextAndClear(chatID, editMsgID, "Не удалось удалить продукт.")
		return
	}
	b.showProductList(ctx, chatID, editMsgID)
}
