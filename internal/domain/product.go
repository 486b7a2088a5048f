package domain

import "time"

// Product описывает товар каталога. Каталог для ядра размещения заказа
// доступен только на чтение; мутации идут через catalog-сервис.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	// DeletedAt != nil означает мягкое удаление: товар существует в истории,
	// но недоступен для новых заказов.
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active сообщает, доступен ли товар для новых заказов.
func (p *Product) Active() bool {
	return p.DeletedAt == nil
}

// Validate проверяет, корректно ли заполнены ключевые поля товара.
func (p *Product) Validate() []error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, ErrProductIDRequired)
	}
	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}

	return errs
}
