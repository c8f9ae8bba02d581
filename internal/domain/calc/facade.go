package calc

import (
	"context"
	"errors"
	"fmt"
)

// Сообщения операторского контракта: любой интерфейс (бот, CLI, веб-форма)
// показывает их как есть.
const (
	MsgRequirementOK = "Расчёт выполнен успешно."
	MsgCostOK        = "Стоимость рассчитана успешно."

	msgBadParams           = "Ошибка: Параметры должны быть положительными."
	msgBadQuantity         = "Ошибка: Количество должно быть положительным."
	msgProductTypeNotFound = "Ошибка: Тип продукции не найден."
	msgMaterialNotFound    = "Ошибка: Материал не найден."
	msgProductNotFound     = "Ошибка: Продукт не найден."
)

// Message переводит ошибку расчёта в текст для оператора.
func Message(err error) string {
	var se *StoreError
	switch {
	case errors.Is(err, ErrBadParams):
		return msgBadParams
	case errors.Is(err, ErrBadQuantity):
		return msgBadQuantity
	case errors.Is(err, ErrProductTypeNotFound):
		return msgProductTypeNotFound
	case errors.Is(err, ErrMaterialNotFound):
		return msgMaterialNotFound
	case errors.Is(err, ErrProductNotFound):
		return msgProductNotFound
	case errors.As(err, &se):
		return fmt.Sprintf("Ошибка базы данных: %v", se.Err)
	default:
		return fmt.Sprintf("Ошибка: %v", err)
	}
}

// Outcome — метка исхода для метрик.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsValidation(err):
		return "validation"
	case IsNotFound(err):
		return "not_found"
	default:
		return "store_error"
	}
}

// ComputeMaterialRequirement — контракт со значением-сентинелом: -1 и текст
// ошибки при любом сбое. Отрицательный результат никогда не является
// количеством материала.
func (s *Service) ComputeMaterialRequirement(ctx context.Context, productTypeID, materialID int64, amount int, rollWidth, tolerance, stockQty float64) (int64, string) {
	res, err := s.MaterialRequirement(ctx, RequirementInput{
		ProductTypeID: productTypeID,
		MaterialID:    materialID,
		Amount:        amount,
		RollWidth:     rollWidth,
		Tolerance:     tolerance,
		StockQty:      stockQty,
	})
	if err != nil {
		return -1, Message(err)
	}
	return res, MsgRequirementOK
}

// ComputeProductCost — то же соглашение для стоимости: -1.0 и текст ошибки.
func (s *Service) ComputeProductCost(ctx context.Context, productID int64, quantity int) (float64, string) {
	res, err := s.ProductCost(ctx, productID, quantity)
	if err != nil {
		return -1.0, Message(err)
	}
	return res, MsgCostOK
}
