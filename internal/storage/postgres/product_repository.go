package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price_minor, created_at, updated_at, deleted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		product.ID, product.Name, product.Description, product.Price.Minor(),
		product.CreatedAt, product.UpdatedAt, product.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	q := queryerFrom(ctx, r.db)

	var (
		product    domain.Product
		priceMinor int64
		deletedAt  sql.NullTime
	)

	err := q.QueryRowContext(ctx, `
		SELECT id, name, description, price_minor, created_at, updated_at, deleted_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&product.ID, &product.Name, &product.Description, &priceMinor,
		&product.CreatedAt, &product.UpdatedAt, &deletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}

	if product.Price, err = domain.NewMoney(priceMinor); err != nil {
		return domain.Product{}, fmt.Errorf("product %s price: %w", id, err)
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		product.DeletedAt = &t
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context, limit int) ([]domain.Product, error) {
	q := queryerFrom(ctx, r.db)

	query := `
		SELECT id, name, description, price_minor, created_at, updated_at
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = q.QueryContext(ctx, query+" LIMIT $1", limit)
	} else {
		rows, err = q.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var (
			product    domain.Product
			priceMinor int64
		)
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &priceMinor,
			&product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		if product.Price, err = domain.NewMoney(priceMinor); err != nil {
			return nil, fmt.Errorf("product %s price: %w", product.ID, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Save(ctx context.Context, product domain.Product) error {
	q := queryerFrom(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE products
		SET name = $1,
		    description = $2,
		    price_minor = $3,
		    updated_at = $4,
		    deleted_at = $5
		WHERE id = $6
	`,
		product.Name, product.Description, product.Price.Minor(),
		product.UpdatedAt, product.DeletedAt, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
