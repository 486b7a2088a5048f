package stock_test

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/stock"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
)

func loggerForTests() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return logger.WithField("component", "test")
}

func newLedger(t *testing.T) *stock.Ledger {
	t.Helper()
	return stock.NewLedger(memory.NewStockRepository(memory.NewStore()), loggerForTests())
}

func TestLedgerRegisterAndGet(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	created, err := ledger.Register(ctx, "product-1", 10)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Quantity != 10 {
		t.Fatalf("expected 10, got %d", created.Quantity)
	}

	got, err := ledger.GetByProduct(ctx, "product-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status() != domain.StockStatusLowStock {
		t.Fatalf("expected low_stock for 10, got %s", got.Status())
	}
}

func TestLedgerRegister_Validation(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	if _, err := ledger.Register(ctx, "", 10); !errors.Is(err, domain.ErrProductIDRequired) {
		t.Fatalf("expected ErrProductIDRequired, got %v", err)
	}
	if _, err := ledger.Register(ctx, "product-1", -1); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	// Нулевой начальный остаток допустим: товар заведён, но ещё не завезён.
	if _, err := ledger.Register(ctx, "product-1", 0); err != nil {
		t.Fatalf("zero initial stock must be allowed: %v", err)
	}
}

func TestLedgerGet_Missing(t *testing.T) {
	ledger := newLedger(t)

	if _, err := ledger.GetByProduct(context.Background(), "ghost"); !errors.Is(err, domain.ErrStockNotFound) {
		t.Fatalf("expected ErrStockNotFound, got %v", err)
	}
}

func TestLedgerHasEnough(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	if _, err := ledger.Register(ctx, "product-1", 5); err != nil {
		t.Fatalf("register: %v", err)
	}

	enough, err := ledger.HasEnough(ctx, "product-1", domain.MustQuantity(5))
	if err != nil || !enough {
		t.Fatalf("expected enough for 5, got %v %v", enough, err)
	}
	enough, err = ledger.HasEnough(ctx, "product-1", domain.MustQuantity(6))
	if err != nil || enough {
		t.Fatalf("expected not enough for 6, got %v %v", enough, err)
	}
}

func TestLedgerDecreaseIncrease(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	if _, err := ledger.Register(ctx, "product-1", 10); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := ledger.Decrease(ctx, "product-1", domain.MustQuantity(7)); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if err := ledger.Decrease(ctx, "product-1", domain.MustQuantity(7)); !domain.IsInsufficientStock(err) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if err := ledger.Increase(ctx, "product-1", domain.MustQuantity(4)); err != nil {
		t.Fatalf("increase: %v", err)
	}

	got, err := ledger.GetByProduct(ctx, "product-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 7 {
		t.Fatalf("expected 7, got %d", got.Quantity)
	}
}
