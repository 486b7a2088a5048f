package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestProductRepository_PostgresCreateGetListAndSave(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	product1 := sampleProduct("product-1", "Premium Shirt", 129000, now.Add(-2*time.Minute))
	product2 := sampleProduct("product-2", "Premium Pants", 159000, now.Add(-time.Minute))

	if err := repo.Create(ctx, product1); err != nil {
		t.Fatalf("create product1: %v", err)
	}
	if err := repo.Create(ctx, product2); err != nil {
		t.Fatalf("create product2: %v", err)
	}
	if err := repo.Create(ctx, product1); !errors.Is(err, domain.ErrProductAlreadyExists) {
		t.Fatalf("expected ErrProductAlreadyExists, got %v", err)
	}

	got, err := repo.Get(ctx, product1.ID)
	if err != nil {
		t.Fatalf("get product1: %v", err)
	}
	if got.Name != product1.Name || !got.Price.Equals(product1.Price) {
		t.Fatalf("unexpected product payload: %+v", got)
	}
	if got.DeletedAt != nil {
		t.Fatal("fresh product must not carry DeletedAt")
	}

	listed, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list with limit: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != product2.ID {
		t.Fatalf("unexpected list result with limit: %+v", listed)
	}

	got.Name = "Premium Shirt v2"
	got.Price = domain.MustMoney(139000)
	got.UpdatedAt = now
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save product: %v", err)
	}

	updated, err := repo.Get(ctx, product1.ID)
	if err != nil {
		t.Fatalf("get updated product: %v", err)
	}
	if updated.Name != "Premium Shirt v2" || updated.Price.Minor() != 139000 {
		t.Fatalf("unexpected product after save: %+v", updated)
	}
}

func TestProductRepository_PostgresSoftDelete(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	product := sampleProduct("product-del", "Soon Gone", 90000, now)

	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create product: %v", err)
	}

	deletedAt := now.Add(time.Minute)
	product.DeletedAt = &deletedAt
	product.UpdatedAt = deletedAt
	if err := repo.Save(ctx, product); err != nil {
		t.Fatalf("save soft-deleted product: %v", err)
	}

	// Get видит мягко удалённый товар, List его прячет.
	got, err := repo.Get(ctx, product.ID)
	if err != nil {
		t.Fatalf("get soft-deleted product: %v", err)
	}
	if got.DeletedAt == nil || !got.DeletedAt.Equal(deletedAt) {
		t.Fatalf("unexpected DeletedAt: %+v", got.DeletedAt)
	}

	listed, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range listed {
		if p.ID == product.ID {
			t.Fatal("soft-deleted product must not be listed")
		}
	}
}

func TestProductRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing-product"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	ghost := sampleProduct("missing-product", "Ghost", 100, time.Now().UTC())
	if err := repo.Save(ctx, ghost); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on save missing, got %v", err)
	}
}

func sampleProduct(id, name string, priceMinor int64, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      name,
		Price:     domain.MustMoney(priceMinor),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
