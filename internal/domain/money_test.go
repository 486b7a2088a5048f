package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestNewMoney_RejectsNegative(t *testing.T) {
	if _, err := domain.NewMoney(-1); !errors.Is(err, domain.ErrAmountNegative) {
		t.Fatalf("expected ErrAmountNegative, got %v", err)
	}
}

func TestNewMoney_Ok(t *testing.T) {
	m, err := domain.NewMoney(129000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Minor() != 129000 {
		t.Fatalf("expected 129000, got %d", m.Minor())
	}
}

func TestMoneyAdd(t *testing.T) {
	a := domain.MustMoney(129000)
	b := domain.MustMoney(159000)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Minor() != 288000 {
		t.Fatalf("expected 288000, got %d", sum.Minor())
	}
}

func TestMoneyAdd_Overflow(t *testing.T) {
	a := domain.MustMoney(math.MaxInt64)
	b := domain.MustMoney(1)

	if _, err := a.Add(b); !errors.Is(err, domain.ErrAmountOverflow) {
		t.Fatalf("expected ErrAmountOverflow, got %v", err)
	}
}

func TestMoneyMultiply(t *testing.T) {
	price := domain.MustMoney(129000)

	total, err := price.Multiply(domain.MustQuantity(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total.Minor() != 258000 {
		t.Fatalf("expected 258000, got %d", total.Minor())
	}
}

func TestMoneyMultiply_Overflow(t *testing.T) {
	price := domain.MustMoney(math.MaxInt64 / 2)

	if _, err := price.Multiply(domain.MustQuantity(3)); !errors.Is(err, domain.ErrAmountOverflow) {
		t.Fatalf("expected ErrAmountOverflow, got %v", err)
	}
}

func TestMoneyEquals(t *testing.T) {
	if !domain.MustMoney(100).Equals(domain.MustMoney(100)) {
		t.Fatal("equal amounts must compare equal")
	}
	if domain.MustMoney(100).Equals(domain.MustMoney(101)) {
		t.Fatal("different amounts must not compare equal")
	}
}
