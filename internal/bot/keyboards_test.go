package bot

import (
	"testing"

	"github.com/mariykapirojok/dem/internal/domain/materials"
)

func TestProductMaterialsKeyboard(t *testing.T) {
	rows := []materials.BOMRow{
		{MaterialID: 3, Name: "Винил вспененный", UnitPrice: 480.00, RequiredQty: 2.5},
		{MaterialID: 4, Name: "ПВХ гранулят белый", UnitPrice: 211.20, RequiredQty: 4.8},
	}
	kb := productMaterialsKeyboard(7, rows)

	// по кнопке удаления на каждую строку + «добавить» + «к карточке»
	if got := len(kb.InlineKeyboard); got != 4 {
		t.Fatalf("rows = %d, want 4", got)
	}
	if got := *kb.InlineKeyboard[0][0].CallbackData; got != "bom:del:7:3" {
		t.Fatalf("delete data = %q", got)
	}
	if got := *kb.InlineKeyboard[1][0].CallbackData; got != "bom:del:7:4" {
		t.Fatalf("delete data = %q", got)
	}
	if got := *kb.InlineKeyboard[2][0].CallbackData; got != "bom:add:7" {
		t.Fatalf("add data = %q", got)
	}
	if got := *kb.InlineKeyboard[3][0].CallbackData; got != "prod:open:7" {
		t.Fatalf("back data = %q", got)
	}
}

func TestCancelRow(t *testing.T) {
	row := cancelRow()
	if len(row) != 1 {
		t.Fatalf("buttons = %d, want 1", len(row))
	}
	if got := *row[0].CallbackData; got != "nav:cancel" {
		t.Fatalf("data = %q", got)
	}
}
