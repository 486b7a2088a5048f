package grpcsvc_test

import (
	"context"
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/commerce/internal/service/grpc"
	"github.com/vladislavdragonenkov/commerce/internal/service/order"
	"github.com/vladislavdragonenkov/commerce/internal/service/stock"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

const bufSize = 1024 * 1024

func idemCtx(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", key)
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.PanicLevel)
	return logger.WithField("component", "test")
}

func newTestServer() (*grpc.ClientConn, func(), error) {
	listener := bufconn.Listen(bufSize)
	logger := loggerForTests()

	store := memory.NewStore()
	ledger := stock.NewLedger(memory.NewStockRepository(store), logger)
	catalogSvc := catalog.NewService(memory.NewProductRepository(store), ledger, logger)
	workflow := order.NewWorkflowWithoutMetrics(
		memory.NewOrderRepository(store),
		ledger,
		order.NewBuilder(catalogSvc),
		store,
		logger,
	)
	service := grpcsvc.NewCommerceService(workflow, catalogSvc, ledger, memory.NewIdempotencyRepository(), logger)

	server := grpc.NewServer()
	commercev1.RegisterCommerceServiceServer(server, service)

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		server.Stop()
		return nil, func() {}, err
	}

	cleanup := func() {
		_ = conn.Close()
		server.Stop()
	}

	return conn, cleanup, nil
}

func registerProduct(t *testing.T, client commercev1.CommerceServiceClient, name string, priceMinor int64, initialStock int32) *commercev1.Product {
	t.Helper()

	resp, err := client.RegisterProduct(idemCtx("register-"+name), &commercev1.RegisterProductRequest{
		Name:         name,
		Price:        &commercev1.Money{AmountMinor: priceMinor},
		InitialStock: initialStock,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Product)
	return resp.Product
}

func TestCommerceService_PlaceAndGetOrder(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Premium Shirt", 129000, 10)

	placed, err := client.PlaceOrder(idemCtx("place-1"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items: []*commercev1.OrderLineInput{
			{ProductId: product.Id, Qty: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, placed.Order)
	require.Equal(t, commercev1.OrderStatus_ORDER_STATUS_CREATED, placed.Order.Status)
	require.Equal(t, int64(258000), placed.Order.Total.AmountMinor)
	require.Len(t, placed.Order.Lines, 1)
	require.Equal(t, "Premium Shirt", placed.Order.Lines[0].ProductName)

	got, err := client.GetOrder(context.Background(), &commercev1.GetOrderRequest{OrderId: placed.Order.Id})
	require.NoError(t, err)
	require.Equal(t, placed.Order.Id, got.Order.Id)

	stockResp, err := client.GetStock(context.Background(), &commercev1.GetStockRequest{ProductId: product.Id})
	require.NoError(t, err)
	require.Equal(t, int32(8), stockResp.Stock.Quantity)
	require.Equal(t, commercev1.StockStatus_STOCK_STATUS_LOW_STOCK, stockResp.Stock.Status)
}

func TestCommerceService_PlaceOrder_InsufficientStockKeepsEverything(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	shirt := registerProduct(t, client, "Shirt", 129000, 10)
	pants := registerProduct(t, client, "Pants", 159000, 1)

	_, err = client.PlaceOrder(idemCtx("place-insufficient"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items: []*commercev1.OrderLineInput{
			{ProductId: shirt.Id, Qty: 3},
			{ProductId: pants.Id, Qty: 2},
		},
	})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	// Отказ по второй позиции не должен тронуть остаток первой.
	stockResp, err := client.GetStock(context.Background(), &commercev1.GetStockRequest{ProductId: shirt.Id})
	require.NoError(t, err)
	require.Equal(t, int32(10), stockResp.Stock.Quantity)

	orders, err := client.ListOrders(context.Background(), &commercev1.ListOrdersRequest{MemberId: "member-1"})
	require.NoError(t, err)
	require.Empty(t, orders.Orders)
}

func TestCommerceService_PlaceOrder_ValidationErrors(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 100, 5)

	cases := []struct {
		name string
		req  *commercev1.PlaceOrderRequest
	}{
		{"missing member", &commercev1.PlaceOrderRequest{Items: []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 1}}}},
		{"empty items", &commercev1.PlaceOrderRequest{MemberId: "member-1"}},
		{"zero qty", &commercev1.PlaceOrderRequest{MemberId: "member-1", Items: []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 0}}}},
		{"negative qty", &commercev1.PlaceOrderRequest{MemberId: "member-1", Items: []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: -1}}}},
	}

	for i, tc := range cases {
		_, err := client.PlaceOrder(idemCtx("place-invalid-"+tc.name), tc.req)
		require.Error(t, err, "case %d (%s)", i, tc.name)
		require.Equal(t, codes.InvalidArgument, status.Code(err), "case %d (%s)", i, tc.name)
	}
}

func TestCommerceService_PlaceOrder_UnknownAndDeletedProduct(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)

	_, err = client.PlaceOrder(idemCtx("place-unknown"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: "ghost", Qty: 1}},
	})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))

	product := registerProduct(t, client, "Gone", 100, 5)
	_, err = client.DeleteProduct(idemCtx("delete-gone"), &commercev1.DeleteProductRequest{ProductId: product.Id})
	require.NoError(t, err)

	_, err = client.PlaceOrder(idemCtx("place-deleted"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 1}},
	})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestCommerceService_PlaceOrder_RequiresIdempotencyKey(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 100, 5)

	_, err = client.PlaceOrder(context.Background(), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 1}},
	})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "idempotency-key")
}

func TestCommerceService_PlaceOrder_IdempotentReplay(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 129000, 10)

	req := &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 2}},
	}

	first, err := client.PlaceOrder(idemCtx("replay-key"), req)
	require.NoError(t, err)

	second, err := client.PlaceOrder(idemCtx("replay-key"), req)
	require.NoError(t, err)
	require.Equal(t, first.Order.Id, second.Order.Id)

	// Повтор не списывает остаток второй раз.
	stockResp, err := client.GetStock(context.Background(), &commercev1.GetStockRequest{ProductId: product.Id})
	require.NoError(t, err)
	require.Equal(t, int32(8), stockResp.Stock.Quantity)
}

func TestCommerceService_PlaceOrder_IdempotencyHashMismatch(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 129000, 10)

	_, err = client.PlaceOrder(idemCtx("mismatch-key"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 1}},
	})
	require.NoError(t, err)

	_, err = client.PlaceOrder(idemCtx("mismatch-key"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 2}},
	})
	require.Error(t, err)
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestCommerceService_CatalogLifecycle(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 129000, 10)

	updated, err := client.UpdateProduct(idemCtx("update-shirt"), &commercev1.UpdateProductRequest{
		ProductId:   product.Id,
		Name:        "Shirt v2",
		Description: "restyled",
		Price:       &commercev1.Money{AmountMinor: 159000},
	})
	require.NoError(t, err)
	require.Equal(t, "Shirt v2", updated.Product.Name)
	require.Equal(t, int64(159000), updated.Product.Price.AmountMinor)

	listed, err := client.ListProducts(context.Background(), &commercev1.ListProductsRequest{})
	require.NoError(t, err)
	require.Len(t, listed.Products, 1)

	_, err = client.DeleteProduct(idemCtx("delete-shirt"), &commercev1.DeleteProductRequest{ProductId: product.Id})
	require.NoError(t, err)

	got, err := client.GetProduct(context.Background(), &commercev1.GetProductRequest{ProductId: product.Id})
	require.NoError(t, err)
	require.True(t, got.Product.Deleted)

	listed, err = client.ListProducts(context.Background(), &commercev1.ListProductsRequest{})
	require.NoError(t, err)
	require.Empty(t, listed.Products)

	_, err = client.GetProduct(context.Background(), &commercev1.GetProductRequest{ProductId: "ghost"})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestCommerceService_SnapshotSurvivesCatalogChanges(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Premium Shirt", 129000, 10)

	placed, err := client.PlaceOrder(idemCtx("snapshot-order"), &commercev1.PlaceOrderRequest{
		MemberId: "member-1",
		Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 1}},
	})
	require.NoError(t, err)

	_, err = client.UpdateProduct(idemCtx("snapshot-update"), &commercev1.UpdateProductRequest{
		ProductId: product.Id,
		Name:      "Renamed",
		Price:     &commercev1.Money{AmountMinor: 999000},
	})
	require.NoError(t, err)
	_, err = client.DeleteProduct(idemCtx("snapshot-delete"), &commercev1.DeleteProductRequest{ProductId: product.Id})
	require.NoError(t, err)

	got, err := client.GetOrder(context.Background(), &commercev1.GetOrderRequest{OrderId: placed.Order.Id})
	require.NoError(t, err)
	require.Equal(t, "Premium Shirt", got.Order.Lines[0].ProductName)
	require.Equal(t, int64(129000), got.Order.Lines[0].Price.AmountMinor)
	require.Equal(t, int64(129000), got.Order.Total.AmountMinor)
}

func TestCommerceService_RestockAndStockStatus(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 100, 0)

	stockResp, err := client.GetStock(context.Background(), &commercev1.GetStockRequest{ProductId: product.Id})
	require.NoError(t, err)
	require.Equal(t, commercev1.StockStatus_STOCK_STATUS_OUT_OF_STOCK, stockResp.Stock.Status)

	restocked, err := client.Restock(idemCtx("restock-1"), &commercev1.RestockRequest{ProductId: product.Id, Qty: 25})
	require.NoError(t, err)
	require.Equal(t, int32(25), restocked.Stock.Quantity)
	require.Equal(t, commercev1.StockStatus_STOCK_STATUS_IN_STOCK, restocked.Stock.Status)

	_, err = client.Restock(idemCtx("restock-missing"), &commercev1.RestockRequest{ProductId: "ghost", Qty: 1})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Restock(idemCtx("restock-zero"), &commercev1.RestockRequest{ProductId: product.Id, Qty: 0})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCommerceService_ListOrdersLimitAndOrdering(t *testing.T) {
	conn, cleanup, err := newTestServer()
	require.NoError(t, err)
	defer cleanup()

	client := commercev1.NewCommerceServiceClient(conn)
	product := registerProduct(t, client, "Shirt", 100, 100)

	var lastID string
	for _, key := range []string{"a", "b", "c"} {
		placed, err := client.PlaceOrder(idemCtx("order-"+key), &commercev1.PlaceOrderRequest{
			MemberId: "member-1",
			Items:    []*commercev1.OrderLineInput{{ProductId: product.Id, Qty: 1}},
		})
		require.NoError(t, err)
		lastID = placed.Order.Id
	}

	listed, err := client.ListOrders(context.Background(), &commercev1.ListOrdersRequest{MemberId: "member-1", PageSize: 2})
	require.NoError(t, err)
	require.Len(t, listed.Orders, 2)
	require.Equal(t, lastID, listed.Orders[0].Id)

	_, err = client.ListOrders(context.Background(), &commercev1.ListOrdersRequest{})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetOrder(context.Background(), &commercev1.GetOrderRequest{OrderId: "missing"})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}
