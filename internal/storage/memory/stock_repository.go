package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// stockRepositoryInMemory — реализация StockRepository поверх общего Store.
// Все мутации идут под мьютексом хранилища, поэтому конкурентные списания
// одного товара сериализуются и остаток не может уйти в минус.
type stockRepositoryInMemory struct {
	store *Store
}

// NewStockRepository возвращает in-memory репозиторий складских записей.
func NewStockRepository(store *Store) domain.StockRepository {
	return &stockRepositoryInMemory{store: store}
}

// Create заводит складскую запись, если её ещё нет.
func (r *stockRepositoryInMemory) Create(ctx context.Context, stock domain.Stock) error {
	defer r.store.acquire(ctx)()

	if _, exists := r.store.stocks[stock.ProductID]; exists {
		return domain.ErrStockAlreadyExists
	}
	r.store.stocks[stock.ProductID] = stock
	return nil
}

// GetByProduct возвращает запись или ErrStockNotFound.
func (r *stockRepositoryInMemory) GetByProduct(ctx context.Context, productID string) (domain.Stock, error) {
	defer r.store.acquire(ctx)()

	stock, ok := r.store.stocks[productID]
	if !ok {
		return domain.Stock{}, domain.ErrStockNotFound
	}
	return stock, nil
}

// Decrease списывает qty единиц под защитой доменного инварианта.
func (r *stockRepositoryInMemory) Decrease(ctx context.Context, productID string, qty domain.Quantity) error {
	defer r.store.acquire(ctx)()

	stock, ok := r.store.stocks[productID]
	if !ok {
		return domain.ErrStockNotFound
	}
	if err := stock.Decrease(qty); err != nil {
		return fmt.Errorf("%w: product %s (available %d, requested %d)",
			err, productID, stock.Quantity, qty.Value())
	}
	stock.UpdatedAt = time.Now().UTC()
	r.store.stocks[productID] = stock
	return nil
}

// Increase пополняет остаток.
func (r *stockRepositoryInMemory) Increase(ctx context.Context, productID string, qty domain.Quantity) error {
	defer r.store.acquire(ctx)()

	stock, ok := r.store.stocks[productID]
	if !ok {
		return domain.ErrStockNotFound
	}
	stock.Increase(qty)
	stock.UpdatedAt = time.Now().UTC()
	r.store.stocks[productID] = stock
	return nil
}

var _ domain.StockRepository = (*stockRepositoryInMemory)(nil)
