package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/service/orders"
)

// Ограничения транспортного уровня. Бизнес-проверки (обязательные поля,
// допустимые статусы) выполняет сервис заказов.
type orderItemPayload struct {
	ProductID   string  `json:"product_id" validate:"max=128"`
	ProductName string  `json:"product_name" validate:"max=256"`
	GroupName   string  `json:"group_name" validate:"max=128"`
	Pack        string  `json:"pack" validate:"max=64"`
	Price       string  `json:"price" validate:"max=64"`
	CustomPrice float64 `json:"custom_price"`
	Quantity    int     `json:"quantity" validate:"lte=2147483647"`
	LineTotal   float64 `json:"line_total"`
}

type createOrderPayload struct {
	OrderName       string             `json:"order_name" validate:"max=256"`
	Items           []orderItemPayload `json:"items" validate:"max=500,dive"`
	Subtotal        float64            `json:"subtotal"`
	Notes           string             `json:"notes" validate:"max=4000"`
	DeliveryAddress string             `json:"delivery_address" validate:"max=1024"`
	Status          string             `json:"status" validate:"max=32"`
}

func (p createOrderPayload) toInput() orders.CreateInput {
	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			GroupName:   item.GroupName,
			Pack:        item.Pack,
			Price:       item.Price,
			CustomPrice: item.CustomPrice,
			Quantity:    item.Quantity,
		})
	}
	return orders.CreateInput{
		OrderName:       p.OrderName,
		Items:           items,
		Subtotal:        p.Subtotal,
		Notes:           p.Notes,
		DeliveryAddress: p.DeliveryAddress,
		Status:          p.Status,
	}
}

type updateStatusPayload struct {
	Status string `json:"status" validate:"max=32"`
}

type orderView struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"order_number"`
	OrderName       string             `json:"order_name"`
	OwnerID         string             `json:"owner_id"`
	Status          string             `json:"status"`
	Items           []orderItemPayload `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	Notes           string             `json:"notes"`
	DeliveryAddress string             `json:"delivery_address"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func newOrderView(order domain.Order) orderView {
	items := make([]orderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemPayload{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			GroupName:   item.GroupName,
			Pack:        item.Pack,
			Price:       item.Price,
			CustomPrice: item.CustomPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}
	return orderView{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		OrderName:       order.OrderName,
		OwnerID:         order.OwnerID,
		Status:          string(order.Status),
		Items:           items,
		Subtotal:        order.Subtotal,
		Notes:           order.Notes,
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func newOrderViews(list []domain.Order) []orderView {
	views := make([]orderView, 0, len(list))
	for _, order := range list {
		views = append(views, newOrderView(order))
	}
	return views
}

type timelineView struct {
	Kind       string    `json:"kind"`
	From       string    `json:"from_status,omitempty"`
	To         string    `json:"to_status"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newTimelineViews(events []domain.TimelineEvent) []timelineView {
	views := make([]timelineView, 0, len(events))
	for _, event := range events {
		views = append(views, timelineView{
			Kind:       string(event.Kind),
			From:       string(event.From),
			To:         string(event.To),
			Note:       event.Note,
			OccurredAt: event.OccurredAt,
		})
	}
	return views
}
