package bot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/mariykapirojok/dem/internal/domain/materials"
	"github.com/mariykapirojok/dem/internal/domain/products"
)

const refSheetName = "Справочники"

// buildProductsWorkbook собирает книгу: лист продукции со спецификациями и
// лист справочников (типы продукции и типы материалов).
func buildProductsWorkbook(
	list []products.Product,
	bom map[int64][]materials.BOMRow,
	prodTypes []products.ProductType,
	matTypes []materials.MaterialType,
) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"product_id",
		"Тип продукции",
		"Название",
		"Артикул",
		"Мин. цена (₽)",
		"Ширина (м)",
		"Материалы",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("заголовок: %w", err)
	}

	row := 2
	for _, p := range list {
		matsText := ""
		for i, r := range bom[p.ID] {
			if i > 0 {
				matsText += "; "
			}
			matsText += fmt.Sprintf("%s × %.2f", r.Name, r.RequiredQty)
		}

		excelRow := []interface{}{
			p.ID,
			p.TypeName,
			p.Name,
			p.Article,
			p.MinPartnerPrice,
			p.RollWidth,
			matsText,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("ячейки: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("строка %d: %w", row, err)
		}
		row++
	}

	if _, err := f.NewSheet(refSheetName); err != nil {
		return nil, fmt.Errorf("лист справочников: %w", err)
	}

	ptHeader := []interface{}{"Тип продукции", "Коэффициент"}
	if err := f.SetSheetRow(refSheetName, "A1", &ptHeader); err != nil {
		return nil, fmt.Errorf("заголовок типов продукции: %w", err)
	}
	for i, t := range prodTypes {
		r := []interface{}{t.Name, t.Coefficient}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("ячейки: %w", err)
		}
		if err := f.SetSheetRow(refSheetName, cell, &r); err != nil {
			return nil, fmt.Errorf("тип продукции %q: %w", t.Name, err)
		}
	}

	mtHeader := []interface{}{"Тип материала", "Доля брака"}
	if err := f.SetSheetRow(refSheetName, "D1", &mtHeader); err != nil {
		return nil, fmt.Errorf("заголовок типов материалов: %w", err)
	}
	for i, t := range matTypes {
		r := []interface{}{t.Name, t.DefectRate}
		cell, err := excelize.CoordinatesToCellName(4, i+2)
		if err != nil {
			return nil, fmt.Errorf("ячейки: %w", err)
		}
		if err := f.SetSheetRow(refSheetName, cell, &r); err != nil {
			return nil, fmt.Errorf("тип материала %q: %w", t.Name, err)
		}
	}

	return f, nil
}

// exportProducts выгружает продукцию со спецификациями и справочники в .xlsx
// и отправляет файл в чат.
func (b *Bot) exportProducts(ctx context.Context, chatID int64) {
	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("products list failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось загрузить список продукции."))
		return
	}

	bom := make(map[int64][]materials.BOMRow, len(list))
	for _, p := range list {
		rows, err := b.materials.ListForProduct(ctx, p.ID)
		if err != nil {
			b.log.Error("bom list failed", "err", err, "product_id", p.ID)
			continue
		}
		bom[p.ID] = rows
	}

	prodTypes, err := b.products.ListTypes(ctx)
	if err != nil {
		b.log.Error("product types list failed", "err", err)
	}
	matTypes, err := b.materials.ListTypes(ctx)
	if err != nil {
		b.log.Error("material types list failed", "err", err)
	}

	f, err := buildProductsWorkbook(list, bom, prodTypes, matTypes)
	if err != nil {
		b.log.Error("workbook build failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Ошибка формирования файла."))
		return
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Ошибка сохранения файла."))
		return
	}

	name := fmt.Sprintf("products_%s.xlsx", time.Now().Format("2006-01-02"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: buf.Bytes()})
	doc.Caption = fmt.Sprintf("Продукция: %d позиций", len(list))
	b.send(doc)
}
