package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// Store — общее in-memory хранилище каталога, склада и заказов для локальной
// разработки и тестов. Один мьютекс на всё хранилище позволяет реализовать
// честную атомарную единицу работы: WithinTx снимает снапшот состояния и
// восстанавливает его при ошибке, поэтому частичных списаний снаружи не видно.
type Store struct {
	mu       sync.Mutex
	orders   map[string]domain.Order
	products map[string]domain.Product
	stocks   map[string]domain.Stock
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{
		orders:   make(map[string]domain.Order),
		products: make(map[string]domain.Product),
		stocks:   make(map[string]domain.Stock),
	}
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(bool)
	return ok
}

// WithinTx выполняет fn под общим мьютексом. При ошибке состояние хранилища
// откатывается к снапшоту, снятому перед началом. Вложенный вызов
// присоединяется к уже открытой транзакции.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// acquire берёт мьютекс хранилища, если операция выполняется вне транзакции.
// Внутри WithinTx мьютекс уже удерживается.
func (s *Store) acquire(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type storeSnapshot struct {
	orders   map[string]domain.Order
	products map[string]domain.Product
	stocks   map[string]domain.Stock
}

func (s *Store) snapshot() storeSnapshot {
	snap := storeSnapshot{
		orders:   make(map[string]domain.Order, len(s.orders)),
		products: make(map[string]domain.Product, len(s.products)),
		stocks:   make(map[string]domain.Stock, len(s.stocks)),
	}
	for id, order := range s.orders {
		snap.orders[id] = cloneOrder(order)
	}
	for id, product := range s.products {
		snap.products[id] = product
	}
	for id, stock := range s.stocks {
		snap.stocks[id] = stock
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.orders = snap.orders
	s.products = snap.products
	s.stocks = snap.stocks
}

// cloneOrder копирует заказ вместе со слайсом позиций, чтобы избежать
// непредсказуемых мутаций извне.
func cloneOrder(order domain.Order) domain.Order {
	if len(order.Lines) == 0 {
		return order
	}
	lines := make([]domain.OrderLine, len(order.Lines))
	copy(lines, order.Lines)
	order.Lines = lines
	return order
}

var _ domain.TxManager = (*Store)(nil)
