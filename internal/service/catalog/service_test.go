package catalog_test

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	"github.com/vladislavdragonenkov/commerce/internal/service/stock"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
)

func loggerForTests() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return logger.WithField("component", "test")
}

type fixture struct {
	catalog *catalog.Service
	ledger  *stock.Ledger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	ledger := stock.NewLedger(memory.NewStockRepository(store), loggerForTests())
	svc := catalog.NewService(memory.NewProductRepository(store), ledger, loggerForTests())
	return &fixture{catalog: svc, ledger: ledger}
}

func TestRegisterCreatesProductAndStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.catalog.Register(ctx, "Premium Shirt", "limited edition", domain.MustMoney(129000), 10)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if product.ID == "" {
		t.Fatal("expected generated product id")
	}
	if !product.Active() {
		t.Fatal("freshly registered product must be active")
	}

	stockRec, err := f.ledger.GetByProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("stock lookup: %v", err)
	}
	if stockRec.Quantity != 10 {
		t.Fatalf("expected initial stock 10, got %d", stockRec.Quantity)
	}
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.Register(ctx, "", "", domain.MustMoney(100), 1); !errors.Is(err, domain.ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
	if _, err := f.catalog.Register(ctx, "Shirt", "", domain.MustMoney(100), -1); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestGetActiveProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.catalog.Register(ctx, "Shirt", "", domain.MustMoney(100), 5)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := f.catalog.GetActiveProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if got.Name != "Shirt" {
		t.Fatalf("unexpected product: %+v", got)
	}

	if _, err := f.catalog.GetActiveProduct(ctx, "ghost"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetActiveProduct_SoftDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.catalog.Register(ctx, "Shirt", "", domain.MustMoney(100), 5)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := f.catalog.Delete(ctx, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.catalog.GetActiveProduct(ctx, product.ID); !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}

	// Админский контур мягко удалённый товар по-прежнему видит.
	got, err := f.catalog.GetProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if got.DeletedAt == nil {
		t.Fatal("expected DeletedAt to be set")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.catalog.Register(ctx, "Shirt", "", domain.MustMoney(100), 5)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := f.catalog.Delete(ctx, product.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	before, _ := f.catalog.GetProduct(ctx, product.ID)
	if err := f.catalog.Delete(ctx, product.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	after, _ := f.catalog.GetProduct(ctx, product.ID)
	if !before.DeletedAt.Equal(*after.DeletedAt) {
		t.Fatal("repeated delete must not move the deletion timestamp")
	}

	if err := f.catalog.Delete(ctx, "ghost"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateDoesNotAffectPlacedSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.catalog.Register(ctx, "Shirt", "", domain.MustMoney(129000), 5)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := f.catalog.Update(ctx, product.ID, "Shirt v2", "restyled", domain.MustMoney(159000))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Shirt v2" || updated.Price.Minor() != 159000 {
		t.Fatalf("unexpected updated product: %+v", updated)
	}
	if !updated.UpdatedAt.After(product.UpdatedAt) && !updated.UpdatedAt.Equal(product.UpdatedAt) {
		t.Fatal("UpdatedAt must move forward")
	}

	if _, err := f.catalog.Update(ctx, product.ID, "", "", domain.MustMoney(1)); !errors.Is(err, domain.ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		if _, err := f.catalog.Register(ctx, name, "", domain.MustMoney(100), 1); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	products, err := f.catalog.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}
