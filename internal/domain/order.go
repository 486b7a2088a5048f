package domain

import "time"

// OrderStatus описывает состояние заказа. В текущей модели заказ создаётся
// единожды и после создания не мутирует.
type OrderStatus string

const (
	// OrderStatusCreated — заказ размещён: остатки списаны, снапшоты цен зафиксированы.
	OrderStatusCreated OrderStatus = "created"
)

// OrderLine — одна позиция заказа. Имя и цена товара скопированы в момент
// размещения и не зависят от последующих изменений каталога.
type OrderLine struct {
	// ID позиции нужен для однозначной идентификации и аудита.
	ID string
	// ProductID — ссылка на исходный товар каталога.
	ProductID string
	// ProductName — имя товара на момент размещения заказа.
	ProductName string
	// Price — цена за единицу на момент размещения заказа.
	Price Money
	// Qty — количество единиц товара, всегда >= 1.
	Qty Quantity
	// CreatedAt фиксирует момент добавления позиции в заказ.
	CreatedAt time.Time
}

// Subtotal возвращает стоимость позиции: цена * количество.
// Сумма всегда пересчитывается из полей, а не хранится отдельно.
func (l OrderLine) Subtotal() (Money, error) {
	return l.Price.Multiply(l.Qty)
}

// Order агрегирует размещённый заказ и его позиции.
type Order struct {
	ID        string
	MemberID  string
	Status    OrderStatus
	Total     Money
	Lines     []OrderLine
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.MemberID == "" {
		errs = append(errs, ErrMemberRequired)
	}
	if len(o.Lines) == 0 {
		errs = append(errs, ErrItemsRequired)
	}

	// Сверяем сумму заказа с суммой позиций: qty * price.
	calc := MoneyZero
	for _, line := range o.Lines {
		if line.ProductID == "" {
			errs = append(errs, ErrProductIDRequired)
		}
		if line.ProductName == "" {
			errs = append(errs, ErrProductNameRequired)
		}
		if line.Qty.Value() < 1 {
			errs = append(errs, ErrInvalidQuantity)
			continue
		}
		subtotal, err := line.Subtotal()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sum, err := calc.Add(subtotal)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		calc = sum
	}
	if !calc.Equals(o.Total) {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}

// OrderItemCommand — транзиентный ввод одной позиции при размещении заказа.
// Не сохраняется и живёт только в рамках одного вызова PlaceOrder.
type OrderItemCommand struct {
	ProductID string
	Qty       int32
}
