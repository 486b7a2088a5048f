package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestOrderRepository_PostgresCreateGetAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	order1 := sampleOrder("order-1", "member-1", now.Add(-2*time.Minute))
	order2 := sampleOrder("order-2", "member-1", now.Add(-time.Minute))

	if err := repo.Create(ctx, order1); err != nil {
		t.Fatalf("create order1: %v", err)
	}
	if err := repo.Create(ctx, order2); err != nil {
		t.Fatalf("create order2: %v", err)
	}

	got, err := repo.Get(ctx, order1.ID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.ID != order1.ID || got.MemberID != order1.MemberID || got.Status != order1.Status {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if !got.Total.Equals(order1.Total) {
		t.Fatalf("unexpected total: got=%d want=%d", got.Total.Minor(), order1.Total.Minor())
	}
	if len(got.Lines) != len(order1.Lines) {
		t.Fatalf("unexpected lines count: got=%d want=%d", len(got.Lines), len(order1.Lines))
	}
	if got.Lines[0].ProductName != order1.Lines[0].ProductName {
		t.Fatalf("unexpected line snapshot: %+v", got.Lines[0])
	}

	listed, err := repo.ListByMember(ctx, "member-1", 1)
	if err != nil {
		t.Fatalf("list by member with limit: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != order2.ID {
		t.Fatalf("unexpected list result with limit: %+v", listed)
	}

	all, err := repo.ListByMember(ctx, "member-1", 0)
	if err != nil {
		t.Fatalf("list by member without limit: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
	if len(all[0].Lines) == 0 {
		t.Fatal("listed orders must carry their lines")
	}
}

func TestOrderRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	base := sampleOrder("order-errors", "member-2", now)

	if _, err := repo.Get(ctx, "missing-order"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if err := repo.Create(ctx, base); err != nil {
		t.Fatalf("create base order: %v", err)
	}
	if err := repo.Create(ctx, base); !errors.Is(err, domain.ErrOrderAlreadyExists) {
		t.Fatalf("expected ErrOrderAlreadyExists on duplicate create, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation for code 23505")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected unique violation for non-unique code")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be unique violation")
	}
}

func sampleOrder(id, memberID string, createdAt time.Time) domain.Order {
	lines := []domain.OrderLine{
		{
			ID:          id + "-line-1",
			ProductID:   "product-1",
			ProductName: "Premium Shirt",
			Price:       domain.MustMoney(129000),
			Qty:         domain.MustQuantity(2),
			CreatedAt:   createdAt,
		},
		{
			ID:          id + "-line-2",
			ProductID:   "product-2",
			ProductName: "Premium Pants",
			Price:       domain.MustMoney(159000),
			Qty:         domain.MustQuantity(1),
			CreatedAt:   createdAt.Add(time.Millisecond),
		},
	}

	return domain.Order{
		ID:        id,
		MemberID:  memberID,
		Status:    domain.OrderStatusCreated,
		Total:     domain.MustMoney(417000),
		Lines:     lines,
		CreatedAt: createdAt,
	}
}
