package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// querier — общий срез *sql.DB и *sql.Tx: репозитории пишут запросы один раз
// и выполняют их как напрямую, так и внутри открытой транзакции.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// WithinTx выполняет fn в одной транзакции БД. Все операции репозиториев,
// выполненные с полученным контекстом, попадают в эту транзакцию и
// фиксируются либо откатываются вместе. Вложенный вызов присоединяется
// к уже открытой транзакции.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("postgres store is not initialized")
	}
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback tx after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// queryerFrom возвращает транзакцию из контекста, если она открыта,
// иначе само подключение.
func queryerFrom(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

var _ domain.TxManager = (*Store)(nil)
