package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

type stockRepository struct {
	db *sql.DB
}

// NewStockRepository создаёт PostgreSQL-реализацию StockRepository.
func NewStockRepository(store *Store) domain.StockRepository {
	return &stockRepository{db: store.DB()}
}

func (r *stockRepository) Create(ctx context.Context, stock domain.Stock) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx, `
		INSERT INTO stock (product_id, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4)
	`,
		stock.ProductID, stock.Quantity, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStockAlreadyExists
		}
		return fmt.Errorf("insert stock: %w", err)
	}

	return nil
}

func (r *stockRepository) GetByProduct(ctx context.Context, productID string) (domain.Stock, error) {
	q := queryerFrom(ctx, r.db)

	var stock domain.Stock
	err := q.QueryRowContext(ctx, `
		SELECT product_id, quantity, created_at, updated_at
		FROM stock
		WHERE product_id = $1
	`, productID).Scan(&stock.ProductID, &stock.Quantity, &stock.CreatedAt, &stock.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Stock{}, domain.ErrStockNotFound
		}
		return domain.Stock{}, fmt.Errorf("select stock: %w", err)
	}

	return stock, nil
}

// Decrease списывает остаток одним условным UPDATE: защита от ухода в минус
// живёт в самом предикате WHERE, а не в проверке перед записью, поэтому
// конкурентные списания не могут обогнать друг друга.
func (r *stockRepository) Decrease(ctx context.Context, productID string, qty domain.Quantity) error {
	q := queryerFrom(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE stock
		SET quantity = quantity - $2,
		    updated_at = $3
		WHERE product_id = $1
		  AND quantity >= $2
	`, productID, qty.Value(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("decrease stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		stock, getErr := r.GetByProduct(ctx, productID)
		if getErr != nil {
			return getErr
		}
		return fmt.Errorf("%w: product %s (available %d, requested %d)",
			domain.ErrInsufficientStock, productID, stock.Quantity, qty.Value())
	}

	return nil
}

func (r *stockRepository) Increase(ctx context.Context, productID string, qty domain.Quantity) error {
	q := queryerFrom(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE stock
		SET quantity = quantity + $2,
		    updated_at = $3
		WHERE product_id = $1
	`, productID, qty.Value(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("increase stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrStockNotFound
	}

	return nil
}

var _ domain.StockRepository = (*stockRepository)(nil)
