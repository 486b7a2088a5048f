package domain

import (
	"context"
	"time"
)

// Catalog — читающий порт каталога для ядра размещения заказа.
type Catalog interface {
	// GetActiveProduct возвращает активный товар. Отсутствующий товар даёт
	// ErrProductNotFound, мягко удалённый — ErrProductUnavailable.
	GetActiveProduct(ctx context.Context, productID string) (Product, error)
}

// StockLedger — единственный владелец складских остатков.
type StockLedger interface {
	// GetByProduct возвращает складскую запись или ErrStockNotFound.
	GetByProduct(ctx context.Context, productID string) (Stock, error)
	// HasEnough — предварительная проверка без побочных эффектов.
	// Авторитетной остаётся защита внутри Decrease.
	HasEnough(ctx context.Context, productID string, qty Quantity) (bool, error)
	// Decrease списывает остаток или возвращает ErrInsufficientStock.
	Decrease(ctx context.Context, productID string, qty Quantity) error
	// Increase пополняет остаток; для корректного qty всегда успешен.
	Increase(ctx context.Context, productID string, qty Quantity) error
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(key string) (IdempotencyRecord, error)
	MarkDone(key string, responseBody []byte, statusCode int) error
	MarkFailed(key string, responseBody []byte, statusCode int) error
	DeleteExpired(before time.Time, limit int) (int, error)
}
