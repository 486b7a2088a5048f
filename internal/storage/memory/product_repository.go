package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// productRepositoryInMemory — реализация ProductRepository поверх общего Store.
type productRepositoryInMemory struct {
	store *Store
}

// NewProductRepository возвращает in-memory репозиторий каталога.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepositoryInMemory{store: store}
}

// Create сохраняет новый товар, если ID ещё не занят.
func (r *productRepositoryInMemory) Create(ctx context.Context, product domain.Product) error {
	defer r.store.acquire(ctx)()

	if _, exists := r.store.products[product.ID]; exists {
		return domain.ErrProductAlreadyExists
	}
	r.store.products[product.ID] = product
	return nil
}

// Get возвращает товар (включая мягко удалённые) или ErrProductNotFound.
func (r *productRepositoryInMemory) Get(ctx context.Context, id string) (domain.Product, error) {
	defer r.store.acquire(ctx)()

	product, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// List возвращает активные товары, новые первыми, ограничивая выборку limit (если >0).
func (r *productRepositoryInMemory) List(ctx context.Context, limit int) ([]domain.Product, error) {
	defer r.store.acquire(ctx)()

	result := make([]domain.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		if !product.Active() {
			continue
		}
		result = append(result, product)
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

// Save перезаписывает существующий товар.
func (r *productRepositoryInMemory) Save(ctx context.Context, product domain.Product) error {
	defer r.store.acquire(ctx)()

	if _, ok := r.store.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.store.products[product.ID] = product
	return nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
