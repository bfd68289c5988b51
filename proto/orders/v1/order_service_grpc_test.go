package ordersv1

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// echoServer возвращает в ответе поля запроса.
type echoServer struct {
	UnimplementedOrderServiceServer
}

func (echoServer) CreateOrder(_ context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	return &CreateOrderResponse{Order: &Order{Id: "order-1", OrderName: req.GetOrderName()}}, nil
}

func (echoServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return &ListOrdersResponse{Orders: []*Order{{Id: "order-1"}, {Id: "order-2"}}}, nil
}

func (echoServer) GetOrder(_ context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	return &GetOrderResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func (echoServer) LookupOrder(_ context.Context, req *LookupOrderRequest) (*LookupOrderResponse, error) {
	return &LookupOrderResponse{Order: &Order{OrderNumber: req.GetOrderNumber()}}, nil
}

func (echoServer) UpdateOrderStatus(_ context.Context, req *UpdateOrderStatusRequest) (*UpdateOrderStatusResponse, error) {
	return &UpdateOrderStatusResponse{Order: &Order{Id: req.GetOrderId(), Status: req.GetStatus()}}, nil
}

func (echoServer) GetOrderTimeline(_ context.Context, req *GetOrderTimelineRequest) (*GetOrderTimelineResponse, error) {
	return &GetOrderTimelineResponse{Events: []*TimelineEvent{{Kind: "created", ToStatus: "pending", Note: req.GetOrderId()}}}, nil
}

// CancelOrder не реализован: запрос должен дойти до UnimplementedOrderServiceServer.

func dialBufconn(t *testing.T, srv OrderServiceServer) OrderServiceClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterOrderServiceServer(server, srv)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewOrderServiceClient(conn)
}

func TestOrderServiceClient_RoundTrip(t *testing.T) {
	client := dialBufconn(t, echoServer{})
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, &CreateOrderRequest{OrderName: "Овощи на неделю"})
	require.NoError(t, err)
	assert.Equal(t, "Овощи на неделю", created.GetOrder().GetOrderName())

	listed, err := client.ListOrders(ctx, &ListOrdersRequest{})
	require.NoError(t, err)
	assert.Len(t, listed.GetOrders(), 2)

	got, err := client.GetOrder(ctx, &GetOrderRequest{OrderId: "order-7"})
	require.NoError(t, err)
	assert.Equal(t, "order-7", got.GetOrder().GetId())

	found, err := client.LookupOrder(ctx, &LookupOrderRequest{OrderNumber: "AJ-2025-0007"})
	require.NoError(t, err)
	assert.Equal(t, "AJ-2025-0007", found.GetOrder().GetOrderNumber())

	updated, err := client.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{OrderId: "order-7", Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.GetOrder().GetStatus())

	timeline, err := client.GetOrderTimeline(ctx, &GetOrderTimelineRequest{OrderId: "order-7"})
	require.NoError(t, err)
	require.Len(t, timeline.GetEvents(), 1)
	assert.Equal(t, "order-7", timeline.GetEvents()[0].GetNote())
	assert.Empty(t, timeline.GetEvents()[0].GetFromStatus())

	_, err = client.CancelOrder(ctx, &CancelOrderRequest{OrderId: "order-7"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestUnimplementedOrderServiceServer(t *testing.T) {
	var srv UnimplementedOrderServiceServer
	ctx := context.Background()

	calls := map[string]func() error{
		"CreateOrder":       func() error { _, err := srv.CreateOrder(ctx, &CreateOrderRequest{}); return err },
		"ListOrders":        func() error { _, err := srv.ListOrders(ctx, &ListOrdersRequest{}); return err },
		"GetOrder":          func() error { _, err := srv.GetOrder(ctx, &GetOrderRequest{}); return err },
		"LookupOrder":       func() error { _, err := srv.LookupOrder(ctx, &LookupOrderRequest{}); return err },
		"UpdateOrderStatus": func() error { _, err := srv.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{}); return err },
		"CancelOrder":       func() error { _, err := srv.CancelOrder(ctx, &CancelOrderRequest{}); return err },
		"GetOrderTimeline":  func() error { _, err := srv.GetOrderTimeline(ctx, &GetOrderTimelineRequest{}); return err },
	}
	for name, call := range calls {
		assert.Equal(t, codes.Unimplemented, status.Code(call()), name)
	}
}

func TestOrderServiceDesc(t *testing.T) {
	assert.Equal(t, "orders.v1.OrderService", OrderService_ServiceDesc.ServiceName)

	names := make([]string, 0, len(OrderService_ServiceDesc.Methods))
	for _, m := range OrderService_ServiceDesc.Methods {
		require.NotNil(t, m.Handler, m.MethodName)
		names = append(names, m.MethodName)
	}
	assert.ElementsMatch(t, []string{
		"CreateOrder", "ListOrders", "GetOrder", "LookupOrder",
		"UpdateOrderStatus", "CancelOrder", "GetOrderTimeline",
	}, names)
}

// Reflection находит сервис по Metadata из ServiceDesc.
func TestOrderServiceDescriptor_Registered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath(OrderService_ServiceDesc.Metadata.(string))
	require.NoError(t, err)
	assert.Equal(t, protoreflect.FullName("orders.v1"), fd.Package())

	desc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(OrderService_ServiceDesc.ServiceName))
	require.NoError(t, err)
	sd, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, len(OrderService_ServiceDesc.Methods), sd.Methods().Len())
	for _, m := range OrderService_ServiceDesc.Methods {
		assert.NotNil(t, sd.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}

	cancel := sd.Methods().ByName("CancelOrder")
	require.NotNil(t, cancel)
	assert.Equal(t, (&CancelOrderRequest{}).ProtoReflect().Descriptor().FullName(), cancel.Input().FullName())
	assert.Equal(t, protoreflect.FullName("orders.v1.CancelOrderResponse"), cancel.Output().FullName())
}

func TestTimelineEventFieldNumbers(t *testing.T) {
	fields := (&TimelineEvent{}).ProtoReflect().Descriptor().Fields()
	want := map[protoreflect.Name]protoreflect.FieldNumber{
		"kind":        1,
		"from_status": 2,
		"to_status":   3,
		"note":        4,
		"occurred_at": 5,
	}
	require.Equal(t, len(want), fields.Len())
	for name, number := range want {
		fd := fields.ByName(name)
		require.NotNil(t, fd, name)
		assert.Equal(t, number, fd.Number(), name)
	}
}

func testOrder() *Order {
	return &Order{
		Id:          "order-1",
		OrderNumber: "AJ-2025-0001",
		OrderName:   "Овощи на неделю",
		OwnerId:     "owner-1",
		Status:      "payment_pending",
		Items: []*OrderItem{{
			ProductId:   "p-1",
			ProductName: "Картофель",
			Pack:        "10 кг",
			Price:       "450",
			CustomPrice: 420,
			Quantity:    3,
			LineTotal:   1260,
		}},
		Subtotal:  1260,
		CreatedAt: "2025-01-10T09:00:00Z",
		UpdatedAt: "2025-01-10T09:00:00Z",
	}
}

func TestOrder_ProtoMarshal(t *testing.T) {
	order := testOrder()

	data, err := proto.Marshal(order)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded := &Order{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	assert.True(t, proto.Equal(order, decoded))
	require.Len(t, decoded.GetItems(), 1)
	assert.Equal(t, 1260.0, decoded.GetItems()[0].GetLineTotal())
	assert.Equal(t, "2025-01-10T09:00:00Z", decoded.GetUpdatedAt())
}

// gRPC по умолчанию кодирует сообщения кодеком "proto".
func TestOrder_GRPCProtoCodec(t *testing.T) {
	codec := encoding.GetCodecV2(grpcproto.Name)
	require.NotNil(t, codec)

	order := testOrder()
	data, err := codec.Marshal(order)
	require.NoError(t, err)
	defer data.Free()

	decoded := &Order{}
	require.NoError(t, codec.Unmarshal(data, decoded))
	assert.True(t, proto.Equal(order, decoded))

	_, err = codec.Marshal(struct{ Name string }{Name: "not a message"})
	assert.Error(t, err)
}

func TestNilMessageGetters(t *testing.T) {
	var resp *CancelOrderResponse
	assert.Nil(t, resp.GetOrder())
	assert.Empty(t, resp.GetMessage())
	assert.Empty(t, resp.GetOrder().GetItems())
	assert.Zero(t, resp.GetOrder().GetSubtotal())
}
