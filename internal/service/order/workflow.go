package order

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/metrics"
)

// Workflow — единственный компонент, которому разрешено одновременно мутировать
// склад и сохранять заказ. Вся последовательность идёт внутри одной атомарной
// единицы работы (domain.TxManager): либо фиксируются все списания и запись
// заказа, либо ничего. Частично применённых состояний снаружи не видно.
type Workflow struct {
	orders  domain.OrderRepository
	ledger  domain.StockLedger
	builder *Builder
	tx      domain.TxManager
	logger  *log.Entry
	metrics *metrics.OrderMetrics
}

// NewWorkflow создаёт рабочий экземпляр workflow размещения заказа.
func NewWorkflow(
	orders domain.OrderRepository,
	ledger domain.StockLedger,
	builder *Builder,
	tx domain.TxManager,
	logger *log.Entry,
) *Workflow {
	if logger == nil {
		logger = log.New().WithField("component", "order-workflow")
	}
	return &Workflow{
		orders:  orders,
		ledger:  ledger,
		builder: builder,
		tx:      tx,
		logger:  logger,
		metrics: metrics.NewOrderMetrics(),
	}
}

// NewWorkflowWithoutMetrics создаёт workflow без метрик (для тестов).
func NewWorkflowWithoutMetrics(
	orders domain.OrderRepository,
	ledger domain.StockLedger,
	builder *Builder,
	tx domain.TxManager,
	logger *log.Entry,
) *Workflow {
	w := NewWorkflow(orders, ledger, builder, tx, logger)
	w.metrics = nil
	return w
}

// PlaceOrder размещает заказ покупателя.
//
// Последовательность: валидация ввода (до каких-либо обращений к каталогу и
// складу) → в одной транзакции: проверка всех товаров и построение снапшотов,
// списание остатков в порядке команд, запись заказа с позициями. Любая ошибка
// откатывает транзакцию целиком: остатки возвращаются к значениям до вызова,
// заказ не сохраняется, ошибка уходит вызывающей стороне без изменений.
func (w *Workflow) PlaceOrder(ctx context.Context, memberID string, commands []domain.OrderItemCommand) (domain.Order, error) {
	start := time.Now()
	if w.metrics != nil {
		w.metrics.RecordPlacementStarted()
	}
	defer func() {
		if w.metrics != nil {
			w.metrics.RecordPlacementDuration(time.Since(start))
		}
	}()

	if err := validateCommands(memberID, commands); err != nil {
		return domain.Order{}, w.reject(memberID, err)
	}

	var placed domain.Order
	err := w.tx.WithinTx(ctx, func(txCtx context.Context) error {
		// Фаза 1: каталог. Все позиции проверяются и снапшотятся до того,
		// как тронут хотя бы один складской остаток.
		order, err := w.builder.Build(txCtx, memberID, commands)
		if err != nil {
			return err
		}

		// Фаза 2: склад. Списания идут в порядке команд; отказ на любой
		// позиции откатывает списания предыдущих через общую транзакцию.
		for _, line := range order.Lines {
			if err := w.ledger.Decrease(txCtx, line.ProductID, line.Qty); err != nil {
				return err
			}
		}

		// Фаза 3: заказ и позиции сохраняются одной записью.
		if err := w.orders.Create(txCtx, order); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return domain.Order{}, w.reject(memberID, err)
	}

	w.logger.WithFields(log.Fields{
		"order_id":    placed.ID,
		"member_id":   placed.MemberID,
		"lines":       len(placed.Lines),
		"total_minor": placed.Total.Minor(),
	}).Info("order placed")
	if w.metrics != nil {
		w.metrics.RecordPlacementCompleted(len(placed.Lines))
	}

	return placed, nil
}

// GetOrder возвращает заказ с позициями.
func (w *Workflow) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	return w.orders.Get(ctx, orderID)
}

// ListOrders возвращает заказы покупателя, новые первыми.
func (w *Workflow) ListOrders(ctx context.Context, memberID string, limit int) ([]domain.Order, error) {
	if memberID == "" {
		return nil, domain.ErrMemberRequired
	}
	return w.orders.ListByMember(ctx, memberID, limit)
}

// validateCommands отклоняет некорректный ввод до обращений к каталогу и складу.
func validateCommands(memberID string, commands []domain.OrderItemCommand) error {
	if memberID == "" {
		return domain.ErrMemberRequired
	}
	if len(commands) == 0 {
		return domain.ErrItemsRequired
	}
	for _, cmd := range commands {
		if cmd.ProductID == "" {
			return domain.ErrProductIDRequired
		}
		if _, err := domain.NewQuantity(cmd.Qty); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workflow) reject(memberID string, err error) error {
	entry := w.logger.WithError(err).WithField("member_id", memberID)
	if domain.IsClientFault(err) {
		entry.Warn("order placement rejected")
	} else {
		entry.Error("order placement failed")
	}
	if w.metrics != nil {
		w.metrics.RecordPlacementRejected(rejectReason(err))
	}
	return err
}

func rejectReason(err error) string {
	switch {
	case domain.IsInsufficientStock(err):
		return "insufficient_stock"
	case domain.IsProductRejected(err):
		return "product_rejected"
	case domain.IsClientFault(err):
		return "invalid_input"
	default:
		return "persistence"
	}
}
