package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// helper для создания базового заказа с одной позицией.
func makeOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:       "order-1",
		MemberID: "member-1",
		Status:   domain.OrderStatusCreated,
		Total:    domain.MustMoney(258000),
		Lines: []domain.OrderLine{
			{
				ID:          "line-1",
				ProductID:   "product-1",
				ProductName: "sneakers",
				Price:       domain.MustMoney(129000),
				Qty:         domain.MustQuantity(2),
				CreatedAt:   now,
			},
		},
		CreatedAt: now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
		want error
	}{
		{
			name: "no member",
			mut: func(o *domain.Order) {
				o.MemberID = ""
			},
			want: domain.ErrMemberRequired,
		},
		{
			name: "no lines",
			mut: func(o *domain.Order) {
				o.Lines = nil
			},
			want: domain.ErrItemsRequired,
		},
		{
			name: "total mismatch",
			mut: func(o *domain.Order) {
				o.Total = domain.MustMoney(1)
			},
			want: domain.ErrAmountMismatch,
		},
		{
			name: "line without product",
			mut: func(o *domain.Order) {
				o.Lines[0].ProductID = ""
			},
			want: domain.ErrProductIDRequired,
		},
		{
			name: "line without name snapshot",
			mut: func(o *domain.Order) {
				o.Lines[0].ProductName = ""
			},
			want: domain.ErrProductNameRequired,
		},
		{
			name: "zero-value quantity",
			mut: func(o *domain.Order) {
				o.Lines[0].Qty = domain.Quantity{}
			},
			want: domain.ErrInvalidQuantity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			errs := order.ValidateInvariants()
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			for _, err := range errs {
				if errors.Is(err, tc.want) {
					return
				}
			}
			t.Fatalf("expected %v among %v", tc.want, errs)
		})
	}
}

func TestOrderLineSubtotal(t *testing.T) {
	line := domain.OrderLine{
		Price: domain.MustMoney(159000),
		Qty:   domain.MustQuantity(3),
	}

	subtotal, err := line.Subtotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subtotal.Minor() != 477000 {
		t.Fatalf("expected 477000, got %d", subtotal.Minor())
	}
}
