package domain

import "fmt"

// Money — денежная сумма в минимальных единицах валюты (например, копейки или воны).
// Конструируется только через NewMoney, поэтому отрицательное значение невозможно
// получить иначе как ошибкой на этапе создания.
type Money struct {
	minor int64
}

// MoneyZero — нулевая сумма, удобна как стартовое значение аккумулятора.
var MoneyZero = Money{}

// NewMoney создаёт сумму и отклоняет отрицательные значения.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrAmountNegative, minor)
	}
	return Money{minor: minor}, nil
}

// MustMoney — вспомогательный конструктор для заведомо корректных значений (тесты, константы).
// Паникует на отрицательной сумме.
func MustMoney(minor int64) Money {
	m, err := NewMoney(minor)
	if err != nil {
		panic(err)
	}
	return m
}

// Minor возвращает сумму в минимальных единицах.
func (m Money) Minor() int64 {
	return m.minor
}

// Add складывает две суммы с контролем переполнения int64.
func (m Money) Add(other Money) (Money, error) {
	sum := m.minor + other.minor
	if sum < m.minor {
		return Money{}, fmt.Errorf("%w: %d + %d", ErrAmountOverflow, m.minor, other.minor)
	}
	return Money{minor: sum}, nil
}

// Multiply умножает сумму на количество с контролем переполнения.
func (m Money) Multiply(qty Quantity) (Money, error) {
	q := int64(qty.Value())
	if q != 0 && m.minor > 0 && m.minor > maxInt64/q {
		return Money{}, fmt.Errorf("%w: %d * %d", ErrAmountOverflow, m.minor, q)
	}
	return Money{minor: m.minor * q}, nil
}

// Equals сравнивает две суммы.
func (m Money) Equals(other Money) bool {
	return m.minor == other.minor
}

const maxInt64 = int64(^uint64(0) >> 1)
