package bot

import (
	"testing"

	"github.com/mariykapirojok/dem/internal/domain/materials"
	"github.com/mariykapirojok/dem/internal/domain/products"
)

func TestBuildProductsWorkbook(t *testing.T) {
	list := []products.Product{
		{ID: 1, TypeName: "Фотообои", Name: "Фотообои «Горный пейзаж»", Article: "1028272", MinPartnerPrice: 1640.00, RollWidth: 1.35},
		{ID: 2, TypeName: "Обои декоративные", Name: "Обои бумажные «Полоска»", Article: "1549922", MinPartnerPrice: 690.00, RollWidth: 1.06},
	}
	bom := map[int64][]materials.BOMRow{
		1: {
			{MaterialID: 5, Name: "Бумага основа 1.05 м", UnitPrice: 320.50, RequiredQty: 12.2},
			{MaterialID: 6, Name: "Флизелин армирующий", UnitPrice: 560.75, RequiredQty: 1.5},
		},
	}
	prodTypes := []products.ProductType{{ID: 1, Name: "Фотообои", Coefficient: 2.0}}
	matTypes := []materials.MaterialType{{Name: "Бумага", DefectRate: 0.003}}

	f, err := buildProductsWorkbook(list, bom, prodTypes, matTypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	cell := func(sheet, ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s): %v", sheet, ref, err)
		}
		return v
	}

	if got := cell(sheet, "A1"); got != "product_id" {
		t.Fatalf("A1 = %q", got)
	}
	if got := cell(sheet, "C2"); got != "Фотообои «Горный пейзаж»" {
		t.Fatalf("C2 = %q", got)
	}
	if got := cell(sheet, "G2"); got != "Бумага основа 1.05 м × 12.20; Флизелин армирующий × 1.50" {
		t.Fatalf("G2 = %q", got)
	}
	// у второго продукта спецификации нет — колонка материалов пустая
	if got := cell(sheet, "G3"); got != "" {
		t.Fatalf("G3 = %q, want empty", got)
	}

	// лист справочников: типы продукции и типы материалов
	if got := cell(refSheetName, "A1"); got != "Тип продукции" {
		t.Fatalf("справочники A1 = %q", got)
	}
	if got := cell(refSheetName, "A2"); got != "Фотообои" {
		t.Fatalf("справочники A2 = %q", got)
	}
	if got := cell(refSheetName, "B2"); got != "2" {
		t.Fatalf("справочники B2 = %q", got)
	}
	if got := cell(refSheetName, "D1"); got != "Тип материала" {
		t.Fatalf("справочники D1 = %q", got)
	}
	if got := cell(refSheetName, "D2"); got != "Бумага" {
		t.Fatalf("справочники D2 = %q", got)
	}
	if got := cell(refSheetName, "E2"); got != "0.003" {
		t.Fatalf("справочники E2 = %q", got)
	}
}
