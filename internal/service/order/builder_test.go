package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/order"
)

// stubCatalog отдаёт товары из фиксированной карты и считает обращения.
type stubCatalog struct {
	products map[string]domain.Product
	calls    []string
}

func (s *stubCatalog) GetActiveProduct(_ context.Context, productID string) (domain.Product, error) {
	s.calls = append(s.calls, productID)
	product, ok := s.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if !product.Active() {
		return domain.Product{}, domain.ErrProductUnavailable
	}
	return product, nil
}

func activeProduct(id, name string, priceMinor int64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: domain.MustMoney(priceMinor),
	}
}

func TestBuilderBuild(t *testing.T) {
	cat := &stubCatalog{products: map[string]domain.Product{
		"product-1": activeProduct("product-1", "sneakers", 129000),
		"product-2": activeProduct("product-2", "boots", 159000),
	}}
	builder := order.NewBuilder(cat)

	built, err := builder.Build(context.Background(), "member-1", []domain.OrderItemCommand{
		{ProductID: "product-1", Qty: 2},
		{ProductID: "product-2", Qty: 1},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if built.Total.Minor() != 417000 {
		t.Fatalf("expected total 417000, got %d", built.Total.Minor())
	}
	if built.Status != domain.OrderStatusCreated {
		t.Fatalf("expected created status, got %s", built.Status)
	}
	if len(built.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(built.Lines))
	}
	if built.Lines[0].ProductName != "sneakers" || built.Lines[1].ProductName != "boots" {
		t.Fatalf("unexpected snapshots: %+v", built.Lines)
	}
	if errs := built.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("built order violates invariants: %v", errs)
	}
}

func TestBuilderBuild_PreservesCommandOrder(t *testing.T) {
	cat := &stubCatalog{products: map[string]domain.Product{
		"a": activeProduct("a", "first", 100),
		"b": activeProduct("b", "second", 200),
		"c": activeProduct("c", "third", 300),
	}}
	builder := order.NewBuilder(cat)

	built, err := builder.Build(context.Background(), "member-1", []domain.OrderItemCommand{
		{ProductID: "c", Qty: 1},
		{ProductID: "a", Qty: 1},
		{ProductID: "b", Qty: 1},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{"c", "a", "b"}
	for i, line := range built.Lines {
		if line.ProductID != want[i] {
			t.Fatalf("line %d: expected %s, got %s", i, want[i], line.ProductID)
		}
	}
	for i, call := range cat.calls {
		if call != want[i] {
			t.Fatalf("catalog call %d: expected %s, got %s", i, want[i], call)
		}
	}
}

func TestBuilderBuild_UnknownProduct(t *testing.T) {
	cat := &stubCatalog{products: map[string]domain.Product{}}
	builder := order.NewBuilder(cat)

	_, err := builder.Build(context.Background(), "member-1", []domain.OrderItemCommand{
		{ProductID: "ghost", Qty: 1},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestBuilderBuild_DeletedProduct(t *testing.T) {
	deleted := activeProduct("product-1", "sneakers", 129000)
	now := time.Now().UTC()
	deleted.DeletedAt = &now

	cat := &stubCatalog{products: map[string]domain.Product{"product-1": deleted}}
	builder := order.NewBuilder(cat)

	_, err := builder.Build(context.Background(), "member-1", []domain.OrderItemCommand{
		{ProductID: "product-1", Qty: 1},
	})
	if !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
}

func TestBuilderBuild_InvalidQuantityBeforeCatalog(t *testing.T) {
	cat := &stubCatalog{products: map[string]domain.Product{
		"product-1": activeProduct("product-1", "sneakers", 129000),
	}}
	builder := order.NewBuilder(cat)

	_, err := builder.Build(context.Background(), "member-1", []domain.OrderItemCommand{
		{ProductID: "product-1", Qty: 0},
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	// Количества проверяются до обращений к каталогу.
	if len(cat.calls) != 0 {
		t.Fatalf("catalog must not be touched, got calls: %v", cat.calls)
	}
}

func TestBuilderBuild_EmptyInput(t *testing.T) {
	builder := order.NewBuilder(&stubCatalog{})

	if _, err := builder.Build(context.Background(), "", nil); !errors.Is(err, domain.ErrMemberRequired) {
		t.Fatalf("expected ErrMemberRequired, got %v", err)
	}
	if _, err := builder.Build(context.Background(), "member-1", nil); !errors.Is(err, domain.ErrItemsRequired) {
		t.Fatalf("expected ErrItemsRequired, got %v", err)
	}
}
