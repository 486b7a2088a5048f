package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// orderRepositoryInMemory — реализация OrderRepository поверх общего Store.
type orderRepositoryInMemory struct {
	store *Store
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepositoryInMemory{store: store}
}

// Create сохраняет заказ вместе с позициями, если ID ещё не занят.
func (r *orderRepositoryInMemory) Create(ctx context.Context, order domain.Order) error {
	defer r.store.acquire(ctx)()

	if _, exists := r.store.orders[order.ID]; exists {
		return domain.ErrOrderAlreadyExists
	}
	r.store.orders[order.ID] = cloneOrder(order)
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(ctx context.Context, id string) (domain.Order, error) {
	defer r.store.acquire(ctx)()

	order, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// ListByMember возвращает заказы покупателя, новые первыми, ограничивая выборку limit (если >0).
func (r *orderRepositoryInMemory) ListByMember(ctx context.Context, memberID string, limit int) ([]domain.Order, error) {
	defer r.store.acquire(ctx)()

	result := make([]domain.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		if order.MemberID != memberID {
			continue
		}
		result = append(result, cloneOrder(order))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
