package grpcsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

func testService(t *testing.T) *CommerceService {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewCommerceService(nil, nil, nil, nil, logger.WithField("component", "test"))
}

func TestNewCommerceService_NilLogger(t *testing.T) {
	service := NewCommerceService(nil, nil, nil, nil, nil)
	if service.logger == nil {
		t.Fatal("expected fallback logger")
	}
}

func TestMapDomainError(t *testing.T) {
	service := testService(t)

	cases := []struct {
		err  error
		code codes.Code
	}{
		{domain.ErrOrderNotFound, codes.NotFound},
		{domain.ErrProductNotFound, codes.NotFound},
		{domain.ErrStockNotFound, codes.NotFound},
		{fmt.Errorf("product x: %w", domain.ErrProductUnavailable), codes.FailedPrecondition},
		{fmt.Errorf("%w: product x", domain.ErrInsufficientStock), codes.FailedPrecondition},
		{domain.ErrOrderAlreadyExists, codes.AlreadyExists},
		{domain.ErrProductAlreadyExists, codes.AlreadyExists},
		{domain.ErrStockAlreadyExists, codes.AlreadyExists},
		{domain.ErrMemberRequired, codes.InvalidArgument},
		{domain.ErrItemsRequired, codes.InvalidArgument},
		{domain.ErrInvalidQuantity, codes.InvalidArgument},
		{domain.ErrAmountNegative, codes.InvalidArgument},
		{domain.ErrProductNameRequired, codes.InvalidArgument},
		{errors.New("boom"), codes.Internal},
	}

	for i, tc := range cases {
		got := service.mapDomainError(tc.err, "TestOp")
		if status.Code(got) != tc.code {
			t.Fatalf("case %d: expected %s for %v, got %s", i, tc.code, tc.err, status.Code(got))
		}
	}

	// Готовый gRPC-статус проходит без перекодирования.
	original := status.Error(codes.Aborted, "already mapped")
	if got := service.mapDomainError(original, "TestOp"); !errors.Is(got, original) && status.Code(got) != codes.Aborted {
		t.Fatalf("expected status error to pass through, got %v", got)
	}
}

func TestReadIdempotencyKey(t *testing.T) {
	if _, err := readIdempotencyKey(context.Background()); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument without metadata, got %v", err)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, "  key-1  "))
	key, err := readIdempotencyKey(ctx)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if key != "key-1" {
		t.Fatalf("expected trimmed key, got %q", key)
	}

	outCtx := metadata.AppendToOutgoingContext(context.Background(), idempotencyKeyHeader, "key-2")
	key, err = readIdempotencyKey(outCtx)
	if err != nil {
		t.Fatalf("read outgoing key: %v", err)
	}
	if key != "key-2" {
		t.Fatalf("expected outgoing key, got %q", key)
	}
}

func TestBuildIdempotencyRequestHash(t *testing.T) {
	req := &commercev1.PlaceOrderRequest{MemberId: "member-1"}

	h1, err := buildIdempotencyRequestHash("/m", req)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := buildIdempotencyRequestHash("/m", &commercev1.PlaceOrderRequest{MemberId: "member-1"})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 != h2 {
		t.Fatal("equal requests must hash equally")
	}

	h3, err := buildIdempotencyRequestHash("/m", &commercev1.PlaceOrderRequest{MemberId: "member-2"})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h3 {
		t.Fatal("different requests must hash differently")
	}

	h4, err := buildIdempotencyRequestHash("/other", req)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h4 {
		t.Fatal("method must participate in the hash")
	}

	if _, err := buildIdempotencyRequestHash("/m", nil); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestGrpcCodeFromInt32(t *testing.T) {
	if code, ok := grpcCodeFromInt32(int32(codes.NotFound)); !ok || code != codes.NotFound {
		t.Fatalf("unexpected result: %v %v", code, ok)
	}
	if _, ok := grpcCodeFromInt32(-1); ok {
		t.Fatal("negative value must not map to a code")
	}
	if _, ok := grpcCodeFromInt32(int32(codes.Unauthenticated) + 1); ok {
		t.Fatal("out-of-range value must not map to a code")
	}
}

func TestDecodeIdempotencyFailure_Branches(t *testing.T) {
	payload, err := json.Marshal(idempotencyErrorPayload{Code: int32(codes.FailedPrecondition), Message: "insufficient stock"})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	got := decodeIdempotencyFailure(domain.IdempotencyRecord{ResponseBody: payload})
	if status.Code(got) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %s", status.Code(got))
	}
	if status.Convert(got).Message() != "insufficient stock" {
		t.Fatalf("unexpected message: %s", status.Convert(got).Message())
	}

	got = decodeIdempotencyFailure(domain.IdempotencyRecord{ResponseBody: []byte("not json"), StatusCode: int(codes.NotFound)})
	if status.Code(got) != codes.NotFound {
		t.Fatalf("expected NotFound from status code fallback, got %s", status.Code(got))
	}

	got = decodeIdempotencyFailure(domain.IdempotencyRecord{})
	if status.Code(got) != codes.Internal {
		t.Fatalf("expected Internal for empty record, got %s", status.Code(got))
	}
}

func TestProtoConverters(t *testing.T) {
	now := time.Now().UTC()
	placed := domain.Order{
		ID:       "order-1",
		MemberID: "member-1",
		Status:   domain.OrderStatusCreated,
		Total:    domain.MustMoney(258000),
		Lines: []domain.OrderLine{
			{
				ID:          "line-1",
				ProductID:   "product-1",
				ProductName: "Premium Shirt",
				Price:       domain.MustMoney(129000),
				Qty:         domain.MustQuantity(2),
				CreatedAt:   now,
			},
		},
		CreatedAt: now,
	}

	pb := toProtoOrder(placed)
	if pb.Id != "order-1" || pb.Status != commercev1.OrderStatus_ORDER_STATUS_CREATED {
		t.Fatalf("unexpected order: %+v", pb)
	}
	if pb.Total.AmountMinor != 258000 || len(pb.Lines) != 1 {
		t.Fatalf("unexpected order payload: %+v", pb)
	}
	if pb.Lines[0].ProductName != "Premium Shirt" || pb.Lines[0].Qty != 2 {
		t.Fatalf("unexpected line: %+v", pb.Lines[0])
	}

	deletedAt := now
	product := domain.Product{
		ID:        "product-1",
		Name:      "Shirt",
		Price:     domain.MustMoney(100),
		CreatedAt: now,
		UpdatedAt: now,
		DeletedAt: &deletedAt,
	}
	if got := toProtoProduct(product); !got.Deleted {
		t.Fatal("expected Deleted flag for soft-deleted product")
	}

	stockPB := toProtoStock(domain.Stock{ProductID: "product-1", Quantity: 3})
	if stockPB.Status != commercev1.StockStatus_STOCK_STATUS_LOW_STOCK {
		t.Fatalf("unexpected stock status: %s", stockPB.Status)
	}
	stockPB = toProtoStock(domain.Stock{ProductID: "product-1", Quantity: 0})
	if stockPB.Status != commercev1.StockStatus_STOCK_STATUS_OUT_OF_STOCK {
		t.Fatalf("unexpected stock status: %s", stockPB.Status)
	}

	if toProtoOrderStatus(domain.OrderStatus("weird")) != commercev1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		t.Fatal("unknown status must map to unspecified")
	}
}

func TestMoneyFromProto(t *testing.T) {
	if _, err := moneyFromProto(nil); err == nil {
		t.Fatal("expected error for nil money")
	}
	if _, err := moneyFromProto(&commercev1.Money{AmountMinor: -1}); !errors.Is(err, domain.ErrAmountNegative) {
		t.Fatalf("expected ErrAmountNegative, got %v", err)
	}
	money, err := moneyFromProto(&commercev1.Money{AmountMinor: 129000})
	if err != nil || money.Minor() != 129000 {
		t.Fatalf("unexpected money: %v %v", money, err)
	}
}
