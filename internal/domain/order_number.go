package domain

import (
	"fmt"
	"strings"
)

// OrderNumberBrand - фиксированный префикс человекочитаемых номеров заказов.
const OrderNumberBrand = "AJ"

// OrderNumberPrefix возвращает префикс номеров заказа для года, например "AJ-2025-".
func OrderNumberPrefix(year int) string {
	return fmt.Sprintf("%s-%d-", OrderNumberBrand, year)
}

// FormatOrderNumber собирает номер вида AJ-2025-0007.
// Последовательность дополняется нулями до 4 знаков; при переполнении (10000+)
// номер просто становится длиннее.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("%s%04d", OrderNumberPrefix(year), seq)
}

// NormalizeOrderNumber приводит введённый номер к каноническому виду для поиска.
func NormalizeOrderNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
