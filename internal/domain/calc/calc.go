package calc

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductPricing — цена и ширина из карточки продукта. RollWidth в формуле
// стоимости не участвует, но остаётся частью записи.
type ProductPricing struct {
	MinPartnerPrice float64
	RollWidth       float64
}

// BOMItem — строка спецификации продукта: цена материала и норма расхода
// на единицу продукции.
type BOMItem struct {
	UnitPrice   float64
	RequiredQty float64
}

// Store — справочные данные для расчётов. Все методы — точечные чтения,
// повторов при сбое нет: ошибка хранилища сразу возвращается наверх.
type Store interface {
	// ProductTypeCoefficient возвращает коэффициент типа продукции.
	ProductTypeCoefficient(ctx context.Context, productTypeID int64) (float64, bool, error)
	// MaterialDefectRate возвращает долю брака материала (join на тип материала).
	MaterialDefectRate(ctx context.Context, materialID int64) (float64, bool, error)
	// ProductPricing возвращает (nil, nil), если продукта нет.
	ProductPricing(ctx context.Context, productID int64) (*ProductPricing, error)
	// ProductMaterials возвращает спецификацию продукта; пустой список —
	// нормальное состояние, а не ошибка.
	ProductMaterials(ctx context.Context, productID int64) ([]BOMItem, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// RequirementInput — аргументы расчёта потребности в материале.
type RequirementInput struct {
	ProductTypeID int64
	MaterialID    int64
	Amount        int     // количество продукции
	RollWidth     float64 // ширина рулона
	Tolerance     float64 // допустимый коэффициент
	StockQty      float64 // материал на складе (0, если не задан)
}

// MaterialRequirement рассчитывает, сколько материала нужно докупить для
// выпуска Amount единиц продукции с учётом брака и остатка на складе.
// Дробный материал не закупается, поэтому результат усекается вниз.
func (s *Service) MaterialRequirement(ctx context.Context, in RequirementInput) (int64, error) {
	if in.Amount <= 0 || in.RollWidth <= 0 || in.Tolerance <= 0 || in.StockQty < 0 {
		return -1, ErrBadParams
	}

	coeff, ok, err := s.store.ProductTypeCoefficient(ctx, in.ProductTypeID)
	if err != nil {
		return -1, &StoreError{Err: err}
	}
	if !ok {
		return -1, ErrProductTypeNotFound
	}

	defectRate, ok, err := s.store.MaterialDefectRate(ctx, in.MaterialID)
	if err != nil {
		return -1, &StoreError{Err: err}
	}
	if !ok {
		return -1, ErrMaterialNotFound
	}

	baseConsumption := in.RollWidth * in.Tolerance * coeff
	defectAdjustment := 1 + defectRate
	totalNeeded := baseConsumption * float64(in.Amount) * defectAdjustment

	netNeeded := totalNeeded - in.StockQty
	if netNeeded < 0 {
		netNeeded = 0
	}
	return int64(netNeeded), nil
}

// ProductCost рассчитывает стоимость партии: максимум из минимальной
// партнёрской цены и стоимости материалов по спецификации, с округлением
// до копеек.
func (s *Service) ProductCost(ctx context.Context, productID int64, quantity int) (float64, error) {
	if quantity <= 0 {
		return -1, ErrBadQuantity
	}

	p, err := s.store.ProductPricing(ctx, productID)
	if err != nil {
		return -1, &StoreError{Err: err}
	}
	if p == nil {
		return -1, ErrProductNotFound
	}

	items, err := s.store.ProductMaterials(ctx, productID)
	if err != nil {
		return -1, &StoreError{Err: err}
	}

	qty := decimal.NewFromInt(int64(quantity))
	materialCost := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.UnitPrice).
			Mul(decimal.NewFromFloat(it.RequiredQty)).
			Mul(qty)
		materialCost = materialCost.Add(line)
	}

	// Партнёр не платит меньше договорного минимума
	floor := decimal.NewFromFloat(p.MinPartnerPrice).Mul(qty)
	final := materialCost
	if floor.GreaterThan(final) {
		final = floor
	}
	res, _ := final.Round(2).Float64()
	return res, nil
}
