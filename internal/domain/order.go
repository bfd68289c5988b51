package domain

import (
	"math"
	"strings"
	"time"
)

// MaxItemQuantity - верхняя граница количества в позиции: столбец quantity и поле gRPC 32-битные.
const MaxItemQuantity = math.MaxInt32

// OrderStatus описывает жизненный цикл оптового заказа.
type OrderStatus string

const (
	// OrderStatusPending - заказ принят, но ещё не взят в работу.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusInProgress - заказ комплектуется.
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusPaymentPending - ожидается оплата (начальный статус по умолчанию).
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	// OrderStatusPaid - оплата получена.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusClosed - заказ доставлен и закрыт.
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCancelled - заказ отменён. Номер заказа при этом не освобождается.
	OrderStatusCancelled OrderStatus = "cancelled"
)

var allOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusPaymentPending,
	OrderStatusPaid,
	OrderStatusClosed,
	OrderStatusCancelled,
}

// AllOrderStatuses возвращает полный список допустимых статусов в каноническом порядке.
func AllOrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(allOrderStatuses))
	copy(out, allOrderStatuses)
	return out
}

// Valid проверяет, что статус входит в перечисление.
func (s OrderStatus) Valid() bool {
	for _, status := range allOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// InitialStatus выбирает стартовый статус заказа: разрешён только явный `paid`,
// всё остальное (включая пустое значение) приводится к payment_pending.
func InitialStatus(requested OrderStatus) OrderStatus {
	if requested == OrderStatusPaid {
		return OrderStatusPaid
	}
	return OrderStatusPaymentPending
}

// OrderItem - одна товарная позиция заказа.
type OrderItem struct {
	ProductID   string
	ProductName string
	GroupName   string
	Pack        string
	// Price - отображаемая строка цены из каталога (например, "$42.50 / ctn").
	Price string
	// CustomPrice - цена за единицу, которую администратор может переопределить.
	CustomPrice float64
	Quantity    int
	LineTotal   float64
}

// Order - оптовый заказ, принадлежащий одному владельцу.
type Order struct {
	ID              string
	OrderNumber     string
	OrderName       string
	OwnerID         string
	Status          OrderStatus
	Items           []OrderItem
	Subtotal        float64
	Notes           string
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone возвращает копию заказа с независимым срезом позиций.
func (o Order) Clone() Order {
	dst := o
	if o.Items != nil {
		dst.Items = make([]OrderItem, len(o.Items))
		copy(dst.Items, o.Items)
	}
	return dst
}

// ComputeLineTotals пересчитывает line_total каждой позиции как custom_price × quantity.
// Subtotal при этом не трогаем: он хранится в том виде, в каком пришёл от клиента.
func (o *Order) ComputeLineTotals() {
	for i := range o.Items {
		o.Items[i].LineTotal = o.Items[i].CustomPrice * float64(o.Items[i].Quantity)
	}
}

// StatusList форматирует список статусов через запятую.
func StatusList(statuses []OrderStatus) string {
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
