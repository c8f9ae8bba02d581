package calc

import (
	"errors"
	"fmt"
)

// Ошибки валидации входных параметров: фиксируются до обращения к хранилищу.
var (
	ErrBadParams   = errors.New("параметры должны быть положительными")
	ErrBadQuantity = errors.New("количество должно быть положительным")
)

// Ошибки отсутствия справочных данных, по одной на сущность.
var (
	ErrProductTypeNotFound = errors.New("тип продукции не найден")
	ErrMaterialNotFound    = errors.New("материал не найден")
	ErrProductNotFound     = errors.New("продукт не найден")
)

// StoreError оборачивает сбой внешнего хранилища, сохраняя исходное сообщение
// для диагностики.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("ошибка базы данных: %v", e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation сообщает, что ошибка вызвана некорректными входными параметрами.
func IsValidation(err error) bool {
	return errors.Is(err, ErrBadParams) || errors.Is(err, ErrBadQuantity)
}

// IsNotFound сообщает, что не нашлась одна из справочных сущностей.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductTypeNotFound) ||
		errors.Is(err, ErrMaterialNotFound) ||
		errors.Is(err, ErrProductNotFound)
}
