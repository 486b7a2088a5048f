package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// Service — каталог товаров. Для ядра размещения заказа он является
// читающим коллаборатором (domain.Catalog); мутации каталога нужны
// админскому контуру и регистрации товаров.
type Service struct {
	products domain.ProductRepository
	ledger   StockRegistrar
	logger   *log.Entry
}

// StockRegistrar — минимальный срез stock-ledger, нужный каталогу:
// при регистрации товара заводится его складская запись.
type StockRegistrar interface {
	Register(ctx context.Context, productID string, qty int32) (domain.Stock, error)
}

// NewService создаёт каталог поверх репозитория товаров.
func NewService(products domain.ProductRepository, ledger StockRegistrar, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &Service{
		products: products,
		ledger:   ledger,
		logger:   logger,
	}
}

// Register заводит товар и его начальный складской остаток.
func (s *Service) Register(ctx context.Context, name, description string, price domain.Money, initialStock int32) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, domain.ErrProductNameRequired
	}
	if initialStock < 0 {
		return domain.Product{}, domain.ErrInvalidQuantity
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if errs := product.Validate(); len(errs) > 0 {
		return domain.Product{}, errs[0]
	}

	if err := s.products.Create(ctx, product); err != nil {
		return domain.Product{}, err
	}
	if s.ledger != nil {
		if _, err := s.ledger.Register(ctx, product.ID, initialStock); err != nil {
			return domain.Product{}, fmt.Errorf("register stock for product %s: %w", product.ID, err)
		}
	}

	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("product registered")

	return product, nil
}

// GetActiveProduct возвращает активный товар. Отсутствующий даёт
// ErrProductNotFound, мягко удалённый — ErrProductUnavailable.
func (s *Service) GetActiveProduct(ctx context.Context, productID string) (domain.Product, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if !product.Active() {
		return domain.Product{}, fmt.Errorf("product %s: %w", productID, domain.ErrProductUnavailable)
	}
	return product, nil
}

// GetProduct возвращает товар без фильтра активности (админский контур).
func (s *Service) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	return s.products.Get(ctx, productID)
}

// List возвращает активные товары, новые первыми.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.products.List(ctx, limit)
}

// Update меняет имя, описание и цену товара.
func (s *Service) Update(ctx context.Context, productID, name, description string, price domain.Money) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, domain.ErrProductNameRequired
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	product.Name = name
	product.Description = description
	product.Price = price
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Save(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// Delete мягко удаляет товар: существующие заказы не трогаем,
// новые заказы на него становятся невозможны.
func (s *Service) Delete(ctx context.Context, productID string) error {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return err
	}
	if !product.Active() {
		return nil
	}

	now := time.Now().UTC()
	product.DeletedAt = &now
	product.UpdatedAt = now

	if err := s.products.Save(ctx, product); err != nil {
		return err
	}

	s.logger.WithField("product_id", productID).Info("product soft-deleted")
	return nil
}

var _ domain.Catalog = (*Service)(nil)
