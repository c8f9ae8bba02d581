package materials

import "time"

type MaterialType struct {
	Name       string
	DefectRate float64 // доля брака, 0.05 = 5%
}

type Material struct {
	ID        int64
	Name      string
	TypeName  string // ссылка на material_types.type_name
	UnitPrice float64
	StockQty  float64
	CreatedAt time.Time
}

// BOMRow — строка спецификации продукта для отображения оператору.
type BOMRow struct {
	MaterialID  int64
	Name        string
	UnitPrice   float64
	RequiredQty float64
}
