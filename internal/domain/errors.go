package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора покупателя.
	ErrMemberRequired = errors.New("member_id is required")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка при некорректном количестве товара (< 1).
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// Ошибка отрицательной денежной суммы.
	ErrAmountNegative = errors.New("amount must be non-negative")
	// Ошибка переполнения при арифметике с денежной суммой.
	ErrAmountOverflow = errors.New("amount arithmetic overflow")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order total does not match line subtotals")
	// Ошибка отсутствующего имени товара в снапшоте позиции.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отсутствующего идентификатора товара.
	ErrProductIDRequired = errors.New("product_id is required")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductUnavailable возвращается для мягко удалённого (неактивного) товара.
	ErrProductUnavailable = errors.New("product unavailable")
	// ErrStockNotFound возвращается, если для товара не заведена складская запись.
	ErrStockNotFound = errors.New("stock record not found")
	// ErrInsufficientStock — на складе меньше единиц, чем запрошено.
	// Уменьшение остатка отклоняется целиком, остаток не обнуляется.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockAlreadyExists возвращается при повторном создании складской записи.
	ErrStockAlreadyExists = errors.New("stock record already exists")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists возвращается при конфликте идентификаторов заказов.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrProductAlreadyExists возвращается при конфликте идентификаторов товаров.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrIdempotencyKeyRequired — пустой ключ идемпотентности.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// ErrIdempotencyRequestHashRequired — пустой hash запроса.
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	// ErrIdempotencyKeyAlreadyExists — ключ уже зарегистрирован.
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	// ErrIdempotencyHashMismatch — ключ переиспользован с другим телом запроса.
	ErrIdempotencyHashMismatch = errors.New("idempotency request hash mismatch")
	// ErrIdempotencyKeyNotFound — запись по ключу отсутствует.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
)

// IsInsufficientStock проверяет, является ли ошибка нехваткой остатка.
func IsInsufficientStock(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsProductRejected объединяет отказы по товару: не найден или недоступен.
func IsProductRejected(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrProductUnavailable)
}

// IsClientFault сообщает, вызвана ли ошибка входными данными вызывающей стороны.
// Такие ошибки бессмысленно повторять с тем же запросом.
func IsClientFault(err error) bool {
	return IsProductRejected(err) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrItemsRequired) ||
		errors.Is(err, ErrMemberRequired)
}
