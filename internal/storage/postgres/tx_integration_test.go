package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestWithinTx_PostgresCommit(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	stocks := NewStockRepository(store)
	orders := NewOrderRepository(store)

	seedStockForIntegrationTest(t, store, "product-1", 10)

	order := sampleOrder("tx-order-1", "member-1", time.Now().UTC().Round(time.Microsecond))
	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := stocks.Decrease(ctx, "product-1", domain.MustQuantity(2)); err != nil {
			return err
		}
		return orders.Create(ctx, order)
	})
	if err != nil {
		t.Fatalf("WithinTx commit: %v", err)
	}

	got, err := orders.Get(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("get committed order: %v", err)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("unexpected lines count: %d", len(got.Lines))
	}

	stock, err := stocks.GetByProduct(context.Background(), "product-1")
	if err != nil {
		t.Fatalf("get stock: %v", err)
	}
	if stock.Quantity != 8 {
		t.Fatalf("expected stock 8 after commit, got %d", stock.Quantity)
	}
}

func TestWithinTx_PostgresRollback(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	stocks := NewStockRepository(store)
	orders := NewOrderRepository(store)

	seedStockForIntegrationTest(t, store, "product-1", 10)

	boom := errors.New("boom")
	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := stocks.Decrease(ctx, "product-1", domain.MustQuantity(5)); err != nil {
			return err
		}
		if err := orders.Create(ctx, sampleOrder("tx-order-rb", "member-1", time.Now().UTC())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// Ни заказ, ни списание не должны пережить откат.
	if _, err := orders.Get(context.Background(), "tx-order-rb"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound after rollback, got %v", err)
	}
	stock, err := stocks.GetByProduct(context.Background(), "product-1")
	if err != nil {
		t.Fatalf("get stock: %v", err)
	}
	if stock.Quantity != 10 {
		t.Fatalf("expected stock 10 after rollback, got %d", stock.Quantity)
	}
}

func TestWithinTx_PostgresNestedJoins(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	stocks := NewStockRepository(store)

	seedStockForIntegrationTest(t, store, "product-1", 10)

	boom := errors.New("boom")
	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := stocks.Decrease(ctx, "product-1", domain.MustQuantity(1)); err != nil {
			return err
		}
		// Вложенный вызов присоединяется к внешней транзакции,
		// поэтому откатывается вместе с ней.
		return store.WithinTx(ctx, func(ctx context.Context) error {
			if err := stocks.Decrease(ctx, "product-1", domain.MustQuantity(1)); err != nil {
				return err
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	stock, err := stocks.GetByProduct(context.Background(), "product-1")
	if err != nil {
		t.Fatalf("get stock: %v", err)
	}
	if stock.Quantity != 10 {
		t.Fatalf("expected stock 10 after nested rollback, got %d", stock.Quantity)
	}
}
