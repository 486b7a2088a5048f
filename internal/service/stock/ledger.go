package stock

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// Ledger — единственный владелец складских остатков. Все списания и
// пополнения идут через него; авторитетная защита от ухода в минус
// находится в StockRepository.Decrease.
type Ledger struct {
	stocks domain.StockRepository
	logger *log.Entry
}

// NewLedger создаёт ledger поверх репозитория складских записей.
func NewLedger(stocks domain.StockRepository, logger *log.Entry) *Ledger {
	if logger == nil {
		logger = log.New().WithField("component", "stock-ledger")
	}
	return &Ledger{
		stocks: stocks,
		logger: logger,
	}
}

// Register заводит складскую запись нового товара.
func (l *Ledger) Register(ctx context.Context, productID string, qty int32) (domain.Stock, error) {
	if productID == "" {
		return domain.Stock{}, domain.ErrProductIDRequired
	}
	if qty < 0 {
		return domain.Stock{}, domain.ErrInvalidQuantity
	}

	now := time.Now().UTC()
	stock := domain.Stock{
		ProductID: productID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := l.stocks.Create(ctx, stock); err != nil {
		return domain.Stock{}, err
	}

	l.logger.WithFields(log.Fields{
		"product_id": productID,
		"quantity":   qty,
	}).Info("stock record registered")

	return stock, nil
}

// GetByProduct возвращает складскую запись или ErrStockNotFound.
func (l *Ledger) GetByProduct(ctx context.Context, productID string) (domain.Stock, error) {
	return l.stocks.GetByProduct(ctx, productID)
}

// HasEnough — чистый предикат без побочных эффектов. Не заменяет защиту
// внутри Decrease: между проверкой и списанием остаток может измениться
// конкурентным заказом.
func (l *Ledger) HasEnough(ctx context.Context, productID string, qty domain.Quantity) (bool, error) {
	stock, err := l.stocks.GetByProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	return stock.HasEnough(qty), nil
}

// Decrease списывает qty единиц товара. ErrInsufficientStock возвращается
// с указанием товара; остаток при отказе не меняется.
func (l *Ledger) Decrease(ctx context.Context, productID string, qty domain.Quantity) error {
	if err := l.stocks.Decrease(ctx, productID, qty); err != nil {
		if domain.IsInsufficientStock(err) {
			l.logger.WithFields(log.Fields{
				"product_id": productID,
				"requested":  qty.Value(),
			}).Warn("stock decrease rejected")
		}
		return err
	}
	return nil
}

// Increase пополняет остаток товара (компенсация или завоз).
func (l *Ledger) Increase(ctx context.Context, productID string, qty domain.Quantity) error {
	return l.stocks.Increase(ctx, productID, qty)
}

var _ domain.StockLedger = (*Ledger)(nil)
