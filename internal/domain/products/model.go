package products

import "time"

type ProductType struct {
	ID          int64
	Name        string
	Coefficient float64 // множитель расхода материала
}

type Product struct {
	ID              int64
	TypeID          int64
	TypeName        string // имя типа (для отображения)
	Name            string
	Article         string
	MinPartnerPrice float64 // ₽ за единицу
	RollWidth       float64 // м
	CreatedAt       time.Time
}
