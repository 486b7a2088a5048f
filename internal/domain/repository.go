package domain

import "context"

// TxManager запускает fn внутри одной атомарной единицы работы.
// Все операции репозиториев, выполненные с полученным контекстом, фиксируются
// или откатываются вместе. Вложенный вызов присоединяется к уже открытой
// транзакции.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет заказ вместе с позициями одной записью.
	// Возвращает ErrOrderAlreadyExists, если ID уже занят.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ с позициями или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// ListByMember возвращает заказы покупателя, новые первыми,
	// с опциональным ограничением на количество.
	ListByMember(ctx context.Context, memberID string, limit int) ([]Order, error)
}

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	// Create сохраняет новый товар. Возвращает ErrProductAlreadyExists при конфликте ID.
	Create(ctx context.Context, product Product) error
	// Get возвращает товар (включая мягко удалённые) или ErrProductNotFound.
	Get(ctx context.Context, id string) (Product, error)
	// List возвращает активные товары, новые первыми, с опциональным лимитом.
	List(ctx context.Context, limit int) ([]Product, error)
	// Save перезаписывает существующий товар или возвращает ErrProductNotFound.
	Save(ctx context.Context, product Product) error
}

// StockRepository описывает требования к хранилищу складских записей.
type StockRepository interface {
	// Create заводит складскую запись товара. Возвращает ErrStockAlreadyExists,
	// если запись уже есть.
	Create(ctx context.Context, stock Stock) error
	// GetByProduct возвращает запись или ErrStockNotFound.
	GetByProduct(ctx context.Context, productID string) (Stock, error)
	// Decrease атомарно списывает qty единиц. Возвращает ErrInsufficientStock,
	// если остатка не хватает, и ErrStockNotFound, если записи нет. Повторные
	// вызовы внутри одной транзакции видят эффект предыдущих.
	Decrease(ctx context.Context, productID string, qty Quantity) error
	// Increase атомарно пополняет остаток (компенсация или завоз).
	Increase(ctx context.Context, productID string, qty Quantity) error
}
