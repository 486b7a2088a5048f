package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestNewQuantity(t *testing.T) {
	cases := []struct {
		name    string
		value   int32
		wantErr bool
	}{
		{name: "one is minimal valid", value: 1},
		{name: "regular value", value: 42},
		{name: "zero rejected", value: 0, wantErr: true},
		{name: "negative rejected", value: -5, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := domain.NewQuantity(tc.value)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidQuantity) {
					t.Fatalf("expected ErrInvalidQuantity, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Value() != tc.value {
				t.Fatalf("expected %d, got %d", tc.value, q.Value())
			}
		})
	}
}
