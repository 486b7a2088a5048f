package domain

import "fmt"

// Quantity — количество единиц товара в позиции заказа или на складе.
// Валидное количество всегда >= 1; нулевое и отрицательное отклоняются конструктором.
type Quantity struct {
	value int32
}

// NewQuantity создаёт количество и отклоняет значения меньше единицы.
func NewQuantity(value int32) (Quantity, error) {
	if value < 1 {
		return Quantity{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, value)
	}
	return Quantity{value: value}, nil
}

// MustQuantity — конструктор для заведомо корректных значений (тесты).
// Паникует на некорректном количестве.
func MustQuantity(value int32) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(err)
	}
	return q
}

// Value возвращает числовое значение количества.
func (q Quantity) Value() int32 {
	return q.value
}
