package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func memoryRuntimeDeps(t *testing.T) *runtimeDependencies {
	t.Helper()

	deps, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverMemory,
	}, log.WithField("test", "dependencies"))
	if err != nil {
		t.Fatalf("initRuntimeDependencies failed: %v", err)
	}
	return deps
}

func TestNewServices(t *testing.T) {
	svc := newServices(memoryRuntimeDeps(t), log.WithField("test", "services"))

	if svc == nil {
		t.Fatal("newServices should not return nil")
	}
	if svc.ledger == nil {
		t.Error("ledger should not be nil")
	}
	if svc.catalog == nil {
		t.Error("catalog should not be nil")
	}
	if svc.workflow == nil {
		t.Error("workflow should not be nil")
	}
	if svc.logger == nil {
		t.Error("logger should not be nil")
	}
}

func TestNewServices_WithNilLogger(t *testing.T) {
	svc := newServices(memoryRuntimeDeps(t), nil)

	if svc == nil {
		t.Fatal("newServices should not return nil")
	}
	if svc.logger == nil {
		t.Error("logger should be initialized even when nil is passed")
	}
}

func TestNewServices_EndToEndPlacement(t *testing.T) {
	svc := newServices(memoryRuntimeDeps(t), log.WithField("test", "placement"))
	ctx := context.Background()

	product, err := svc.catalog.Register(ctx, "Premium Shirt", "limited edition", domain.MustMoney(129000), 10)
	if err != nil {
		t.Fatalf("catalog.Register failed: %v", err)
	}

	placed, err := svc.workflow.PlaceOrder(ctx, "member-1", []domain.OrderItemCommand{
		{ProductID: product.ID, Qty: 2},
	})
	if err != nil {
		t.Fatalf("workflow.PlaceOrder failed: %v", err)
	}
	if placed.Total.Minor() != 258000 {
		t.Fatalf("expected order total 258000, got %d", placed.Total.Minor())
	}

	remaining, err := svc.ledger.GetByProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("ledger.GetByProduct failed: %v", err)
	}
	if remaining.Quantity != 8 {
		t.Fatalf("expected remaining stock 8, got %d", remaining.Quantity)
	}
}

func TestNewServices_IndependentInstances(t *testing.T) {
	svc1 := newServices(memoryRuntimeDeps(t), nil)
	svc2 := newServices(memoryRuntimeDeps(t), nil)

	if svc1 == svc2 {
		t.Error("newServices should create independent instances")
	}
	if svc1.workflow == svc2.workflow {
		t.Error("workflow instances should be independent")
	}
}
