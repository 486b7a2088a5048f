package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx, `
		INSERT INTO orders (id, member_id, status, total_minor, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		order.ID, order.MemberID, string(order.Status), order.Total.Minor(), order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderAlreadyExists
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range order.Lines {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO order_lines (id, order_id, product_id, product_name, price_minor, qty, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`,
			line.ID, order.ID, line.ProductID, line.ProductName,
			line.Price.Minor(), line.Qty.Value(), line.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	q := queryerFrom(ctx, r.db)

	var (
		order      domain.Order
		status     string
		totalMinor int64
	)

	err := q.QueryRowContext(ctx, `
		SELECT id, member_id, status, total_minor, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.MemberID, &status, &totalMinor, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	order.Total, err = domain.NewMoney(totalMinor)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s total: %w", id, err)
	}

	lines, err := r.loadLines(ctx, q, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Lines = lines

	return order, nil
}

func (r *orderRepository) ListByMember(ctx context.Context, memberID string, limit int) ([]domain.Order, error) {
	q := queryerFrom(ctx, r.db)

	query := `
		SELECT id, member_id, status, total_minor, created_at
		FROM orders
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = q.QueryContext(ctx, query+" LIMIT $2", memberID, limit)
	} else {
		rows, err = q.QueryContext(ctx, query, memberID)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order      domain.Order
			status     string
			totalMinor int64
		)
		if err := rows.Scan(&order.ID, &order.MemberID, &status, &totalMinor, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		order.Status = domain.OrderStatus(status)
		order.Total, err = domain.NewMoney(totalMinor)
		if err != nil {
			return nil, fmt.Errorf("order %s total: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		lines, err := r.loadLines(ctx, q, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

func (r *orderRepository) loadLines(ctx context.Context, q querier, orderID string) ([]domain.OrderLine, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, product_id, product_name, price_minor, qty, created_at
		FROM order_lines
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		var (
			line       domain.OrderLine
			priceMinor int64
			qty        int32
		)
		if err := rows.Scan(&line.ID, &line.ProductID, &line.ProductName, &priceMinor, &qty, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		if line.Price, err = domain.NewMoney(priceMinor); err != nil {
			return nil, fmt.Errorf("order line %s price: %w", line.ID, err)
		}
		if line.Qty, err = domain.NewQuantity(qty); err != nil {
			return nil, fmt.Errorf("order line %s qty: %w", line.ID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return lines, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
