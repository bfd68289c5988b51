package grpcsvc

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/auth"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/service/orders"
	ordersv1 "github.com/vladislavdragonenkov/wholesale-orders/proto/orders/v1"
)

// Orders - операции сервиса заказов, которые нужны gRPC-слою.
type Orders interface {
	Create(ctx context.Context, ownerID string, in orders.CreateInput) (orders.Result, error)
	List(ctx context.Context, ownerID string) ([]domain.Order, error)
	Get(ctx context.Context, ownerID, id string) (domain.Order, error)
	LookupByNumber(ctx context.Context, ownerID, orderNumber string) (domain.Order, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) (orders.Result, error)
	Cancel(ctx context.Context, ownerID, id string) (orders.Result, error)
	Timeline(ctx context.Context, ownerID, id string) ([]domain.TimelineEvent, error)
}

// OrderService реализует gRPC API поверх сервиса заказов.
// Владелец берётся из контекста, куда его кладёт auth-interceptor.
type OrderService struct {
	ordersv1.UnimplementedOrderServiceServer

	orders Orders
	logger *log.Entry
}

// NewOrderService конструирует gRPC-адаптер.
func NewOrderService(svc Orders, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.WithField("component", "grpc-order-service")
	}
	return &OrderService{
		orders: svc,
		logger: logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.CreateOrderResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	res, err := s.orders.Create(ctx, owner, orders.CreateInput{
		OrderName:       req.OrderName,
		Items:           fromProtoItems(req.Items),
		Subtotal:        req.Subtotal,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
		Status:          req.Status,
	})
	if err != nil {
		return nil, s.toStatus(err, "CreateOrder")
	}

	return &ordersv1.CreateOrderResponse{Order: toProtoOrder(res.Order), Message: res.Message}, nil
}

func (s *OrderService) ListOrders(ctx context.Context, _ *ordersv1.ListOrdersRequest) (*ordersv1.ListOrdersResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.orders.List(ctx, owner)
	if err != nil {
		return nil, s.toStatus(err, "ListOrders")
	}

	result := make([]*ordersv1.Order, 0, len(list))
	for _, order := range list {
		result = append(result, toProtoOrder(order))
	}
	return &ordersv1.ListOrdersResponse{Orders: result}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, req *ordersv1.GetOrderRequest) (*ordersv1.GetOrderResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Get(ctx, owner, req.GetOrderId())
	if err != nil {
		return nil, s.toStatus(err, "GetOrder")
	}
	return &ordersv1.GetOrderResponse{Order: toProtoOrder(order)}, nil
}

func (s *OrderService) LookupOrder(ctx context.Context, req *ordersv1.LookupOrderRequest) (*ordersv1.LookupOrderResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.LookupByNumber(ctx, owner, req.GetOrderNumber())
	if err != nil {
		return nil, s.toStatus(err, "LookupOrder")
	}
	return &ordersv1.LookupOrderResponse{Order: toProtoOrder(order)}, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, req *ordersv1.UpdateOrderStatusRequest) (*ordersv1.UpdateOrderStatusResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.orders.UpdateStatus(ctx, owner, req.GetOrderId(), req.GetStatus())
	if err != nil {
		return nil, s.toStatus(err, "UpdateOrderStatus")
	}
	return &ordersv1.UpdateOrderStatusResponse{Order: toProtoOrder(res.Order), Message: res.Message}, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, req *ordersv1.CancelOrderRequest) (*ordersv1.CancelOrderResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.orders.Cancel(ctx, owner, req.GetOrderId())
	if err != nil {
		return nil, s.toStatus(err, "CancelOrder")
	}
	return &ordersv1.CancelOrderResponse{Order: toProtoOrder(res.Order), Message: res.Message}, nil
}

func (s *OrderService) GetOrderTimeline(ctx context.Context, req *ordersv1.GetOrderTimelineRequest) (*ordersv1.GetOrderTimelineResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.orders.Timeline(ctx, owner, req.GetOrderId())
	if err != nil {
		return nil, s.toStatus(err, "GetOrderTimeline")
	}

	result := make([]*ordersv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &ordersv1.TimelineEvent{
			Kind:       string(event.Kind),
			FromStatus: string(event.From),
			ToStatus:   string(event.To),
			Note:       event.Note,
			OccurredAt: formatTime(event.OccurredAt),
		})
	}
	return &ordersv1.GetOrderTimelineResponse{Events: result}, nil
}

func ownerFrom(ctx context.Context) (string, error) {
	owner, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return owner, nil
}

// toStatus переводит доменную ошибку в gRPC-статус. Текст storage_error отдаётся как есть.
func (s *OrderService) toStatus(err error, operation string) error {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return status.Error(codes.InvalidArgument, domain.MessageOf(err))
	case domain.KindNotFound:
		return status.Error(codes.NotFound, domain.MsgOrderNotFound)
	default:
		s.logger.WithError(err).WithField("operation", operation).Error("order operation failed")
		return status.Error(codes.Internal, domain.MessageOf(err))
	}
}

func fromProtoItems(items []*ordersv1.OrderItem) []domain.OrderItem {
	if len(items) == 0 {
		return nil
	}
	result := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		result = append(result, domain.OrderItem{
			ProductID:   item.ProductId,
			ProductName: item.ProductName,
			GroupName:   item.GroupName,
			Pack:        item.Pack,
			Price:       item.Price,
			CustomPrice: item.CustomPrice,
			Quantity:    int(item.Quantity),
		})
	}
	return result
}

func toProtoOrder(order domain.Order) *ordersv1.Order {
	items := make([]*ordersv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &ordersv1.OrderItem{
			ProductId:   item.ProductID,
			ProductName: item.ProductName,
			GroupName:   item.GroupName,
			Pack:        item.Pack,
			Price:       item.Price,
			CustomPrice: item.CustomPrice,
			Quantity:    int32(item.Quantity),
			LineTotal:   item.LineTotal,
		})
	}

	return &ordersv1.Order{
		Id:              order.ID,
		OrderNumber:     order.OrderNumber,
		OrderName:       order.OrderName,
		OwnerId:         order.OwnerID,
		Status:          string(order.Status),
		Items:           items,
		Subtotal:        order.Subtotal,
		Notes:           order.Notes,
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       formatTime(order.CreatedAt),
		UpdatedAt:       formatTime(order.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
