package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// Builder превращает список команд в несохранённый заказ: проверяет все
// товары в каталоге, снимает снапшоты имени и цены, считает итог.
// Складские остатки Builder не трогает — это зона ответственности Workflow.
type Builder struct {
	catalog domain.Catalog
}

// NewBuilder создаёт builder поверх читающего порта каталога.
func NewBuilder(catalog domain.Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build валидирует команды против каталога в порядке вызывающей стороны и
// возвращает заказ со статусом created, готовый к сохранению. Любой
// отсутствующий или неактивный товар отклоняет весь список до каких-либо
// побочных эффектов.
func (b *Builder) Build(ctx context.Context, memberID string, commands []domain.OrderItemCommand) (domain.Order, error) {
	if memberID == "" {
		return domain.Order{}, domain.ErrMemberRequired
	}
	if len(commands) == 0 {
		return domain.Order{}, domain.ErrItemsRequired
	}

	quantities := make([]domain.Quantity, 0, len(commands))
	for _, cmd := range commands {
		qty, err := domain.NewQuantity(cmd.Qty)
		if err != nil {
			return domain.Order{}, fmt.Errorf("product %s: %w", cmd.ProductID, err)
		}
		quantities = append(quantities, qty)
	}

	now := time.Now().UTC()
	total := domain.MoneyZero
	lines := make([]domain.OrderLine, 0, len(commands))

	for i, cmd := range commands {
		product, err := b.catalog.GetActiveProduct(ctx, cmd.ProductID)
		if err != nil {
			return domain.Order{}, err
		}

		subtotal, err := product.Price.Multiply(quantities[i])
		if err != nil {
			return domain.Order{}, fmt.Errorf("product %s: %w", cmd.ProductID, err)
		}
		sum, err := total.Add(subtotal)
		if err != nil {
			return domain.Order{}, err
		}
		total = sum

		// Снапшот имени и цены: последующие изменения каталога
		// не затрагивают уже размещённый заказ.
		lines = append(lines, domain.OrderLine{
			ID:          uuid.NewString(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Qty:         quantities[i],
			CreatedAt:   now,
		})
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Status:    domain.OrderStatusCreated,
		Total:     total,
		Lines:     lines,
		CreatedAt: now,
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("order invariants violated: %w", errs[0])
	}

	return order, nil
}
