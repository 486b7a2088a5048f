package domain

import "time"

// StockStatus — грубая классификация остатка для витрины.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// lowStockThreshold — порог, ниже которого остаток считается заканчивающимся.
const lowStockThreshold = 10

// StockStatusFrom классифицирует числовой остаток.
func StockStatusFrom(qty int32) StockStatus {
	switch {
	case qty <= 0:
		return StockStatusOutOfStock
	case qty <= lowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// Stock — складская запись: сколько единиц товара сейчас доступно к продаже.
// Остаток никогда не уходит в минус: списание, которое сделало бы его
// отрицательным, отклоняется целиком.
type Stock struct {
	ProductID string
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEnough — чистый предикат достаточности остатка. Используется для
// предварительных проверок; авторитетная проверка остаётся за Decrease,
// так как параллельные заказы могут успеть списать остаток между вызовами.
func (s *Stock) HasEnough(qty Quantity) bool {
	return s.Quantity >= qty.Value()
}

// Decrease списывает qty единиц или возвращает ErrInsufficientStock,
// если остатка не хватает. Остаток не обнуляется частично.
func (s *Stock) Decrease(qty Quantity) error {
	if s.Quantity < qty.Value() {
		return ErrInsufficientStock
	}
	s.Quantity -= qty.Value()
	return nil
}

// Increase пополняет остаток (возврат резерва или завоз товара).
func (s *Stock) Increase(qty Quantity) {
	s.Quantity += qty.Value()
}

// Status возвращает классификацию текущего остатка.
func (s *Stock) Status() StockStatus {
	return StockStatusFrom(s.Quantity)
}
