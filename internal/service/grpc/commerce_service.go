package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	"github.com/vladislavdragonenkov/commerce/internal/service/order"
	"github.com/vladislavdragonenkov/commerce/internal/service/stock"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

// CommerceService реализует gRPC API поверх оркестратора заказов,
// каталога и складского ledger.
type CommerceService struct {
	commercev1.UnimplementedCommerceServiceServer

	orders   *order.Workflow
	catalog  *catalog.Service
	ledger   *stock.Ledger
	idemRepo domain.IdempotencyRepository
	logger   *log.Entry
}

const (
	grpcMethodPlaceOrder      = "/commerce.v1.CommerceService/PlaceOrder"
	grpcMethodRegisterProduct = "/commerce.v1.CommerceService/RegisterProduct"
	grpcMethodUpdateProduct   = "/commerce.v1.CommerceService/UpdateProduct"
	grpcMethodDeleteProduct   = "/commerce.v1.CommerceService/DeleteProduct"
	grpcMethodRestock         = "/commerce.v1.CommerceService/Restock"

	defaultListLimit = 100
)

// NewCommerceService конструирует сервис с зависимостями.
func NewCommerceService(
	orders *order.Workflow,
	catalogSvc *catalog.Service,
	ledger *stock.Ledger,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *CommerceService {
	if logger == nil {
		logger = log.New().WithField("component", "commerce-service")
	}
	return &CommerceService{
		orders:   orders,
		catalog:  catalogSvc,
		ledger:   ledger,
		idemRepo: idemRepo,
		logger:   logger,
	}
}

// PlaceOrder размещает заказ: проверяет товары, списывает остатки и
// атомарно сохраняет заказ со снапшотами цен.
func (s *CommerceService) PlaceOrder(ctx context.Context, req *commercev1.PlaceOrderRequest) (*commercev1.PlaceOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodPlaceOrder,
		req,
		func() *commercev1.PlaceOrderResponse { return &commercev1.PlaceOrderResponse{} },
		func(ctx context.Context) (*commercev1.PlaceOrderResponse, error) {
			return s.placeOrderInternal(ctx, req)
		},
	)
}

func (s *CommerceService) placeOrderInternal(ctx context.Context, req *commercev1.PlaceOrderRequest) (*commercev1.PlaceOrderResponse, error) {
	commands := make([]domain.OrderItemCommand, 0, len(req.Items))
	for idx, item := range req.Items {
		if item == nil {
			return nil, status.Errorf(codes.InvalidArgument, "items[%d] is nil", idx)
		}
		commands = append(commands, domain.OrderItemCommand{
			ProductID: item.ProductId,
			Qty:       item.Qty,
		})
	}

	placed, err := s.orders.PlaceOrder(ctx, req.MemberId, commands)
	if err != nil {
		return nil, s.mapDomainError(err, "PlaceOrder")
	}

	return &commercev1.PlaceOrderResponse{Order: toProtoOrder(placed)}, nil
}

// GetOrder возвращает заказ с позициями.
func (s *CommerceService) GetOrder(ctx context.Context, req *commercev1.GetOrderRequest) (*commercev1.GetOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	placed, err := s.orders.GetOrder(ctx, req.OrderId)
	if err != nil {
		return nil, s.mapDomainError(err, "GetOrder")
	}

	return &commercev1.GetOrderResponse{Order: toProtoOrder(placed)}, nil
}

// ListOrders возвращает заказы покупателя, новые первыми.
func (s *CommerceService) ListOrders(ctx context.Context, req *commercev1.ListOrdersRequest) (*commercev1.ListOrdersResponse, error) {
	if req == nil || req.MemberId == "" {
		return nil, status.Error(codes.InvalidArgument, "member_id is required")
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListLimit
	}

	orders, err := s.orders.ListOrders(ctx, req.MemberId, limit)
	if err != nil {
		return nil, s.mapDomainError(err, "ListOrders")
	}

	result := make([]*commercev1.Order, 0, len(orders))
	for _, placed := range orders {
		result = append(result, toProtoOrder(placed))
	}

	return &commercev1.ListOrdersResponse{Orders: result}, nil
}

// RegisterProduct заводит товар и его начальный складской остаток.
func (s *CommerceService) RegisterProduct(ctx context.Context, req *commercev1.RegisterProductRequest) (*commercev1.RegisterProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodRegisterProduct,
		req,
		func() *commercev1.RegisterProductResponse { return &commercev1.RegisterProductResponse{} },
		func(ctx context.Context) (*commercev1.RegisterProductResponse, error) {
			return s.registerProductInternal(ctx, req)
		},
	)
}

func (s *CommerceService) registerProductInternal(ctx context.Context, req *commercev1.RegisterProductRequest) (*commercev1.RegisterProductResponse, error) {
	price, err := moneyFromProto(req.Price)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	product, err := s.catalog.Register(ctx, req.Name, req.Description, price, req.InitialStock)
	if err != nil {
		return nil, s.mapDomainError(err, "RegisterProduct")
	}

	stockRec, err := s.ledger.GetByProduct(ctx, product.ID)
	if err != nil {
		return nil, s.mapDomainError(err, "RegisterProduct")
	}

	return &commercev1.RegisterProductResponse{
		Product: toProtoProduct(product),
		Stock:   toProtoStock(stockRec),
	}, nil
}

// GetProduct возвращает товар каталога, включая мягко удалённые.
func (s *CommerceService) GetProduct(ctx context.Context, req *commercev1.GetProductRequest) (*commercev1.GetProductResponse, error) {
	if req == nil || req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductId)
	if err != nil {
		return nil, s.mapDomainError(err, "GetProduct")
	}

	return &commercev1.GetProductResponse{Product: toProtoProduct(product)}, nil
}

// ListProducts возвращает активные товары, новые первыми.
func (s *CommerceService) ListProducts(ctx context.Context, req *commercev1.ListProductsRequest) (*commercev1.ListProductsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListLimit
	}

	products, err := s.catalog.List(ctx, limit)
	if err != nil {
		return nil, s.mapDomainError(err, "ListProducts")
	}

	result := make([]*commercev1.Product, 0, len(products))
	for _, product := range products {
		result = append(result, toProtoProduct(product))
	}

	return &commercev1.ListProductsResponse{Products: result}, nil
}

// UpdateProduct меняет имя, описание и цену товара. Снапшоты в уже
// размещённых заказах не затрагиваются.
func (s *CommerceService) UpdateProduct(ctx context.Context, req *commercev1.UpdateProductRequest) (*commercev1.UpdateProductResponse, error) {
	if req == nil || req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodUpdateProduct,
		req,
		func() *commercev1.UpdateProductResponse { return &commercev1.UpdateProductResponse{} },
		func(ctx context.Context) (*commercev1.UpdateProductResponse, error) {
			price, err := moneyFromProto(req.Price)
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}

			product, err := s.catalog.Update(ctx, req.ProductId, req.Name, req.Description, price)
			if err != nil {
				return nil, s.mapDomainError(err, "UpdateProduct")
			}
			return &commercev1.UpdateProductResponse{Product: toProtoProduct(product)}, nil
		},
	)
}

// DeleteProduct мягко удаляет товар: новые заказы на него невозможны.
func (s *CommerceService) DeleteProduct(ctx context.Context, req *commercev1.DeleteProductRequest) (*commercev1.DeleteProductResponse, error) {
	if req == nil || req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodDeleteProduct,
		req,
		func() *commercev1.DeleteProductResponse { return &commercev1.DeleteProductResponse{} },
		func(ctx context.Context) (*commercev1.DeleteProductResponse, error) {
			if err := s.catalog.Delete(ctx, req.ProductId); err != nil {
				return nil, s.mapDomainError(err, "DeleteProduct")
			}
			return &commercev1.DeleteProductResponse{}, nil
		},
	)
}

// GetStock возвращает остаток товара с вычисленным статусом доступности.
func (s *CommerceService) GetStock(ctx context.Context, req *commercev1.GetStockRequest) (*commercev1.GetStockResponse, error) {
	if req == nil || req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	stockRec, err := s.ledger.GetByProduct(ctx, req.ProductId)
	if err != nil {
		return nil, s.mapDomainError(err, "GetStock")
	}

	return &commercev1.GetStockResponse{Stock: toProtoStock(stockRec)}, nil
}

// Restock пополняет остаток товара.
func (s *CommerceService) Restock(ctx context.Context, req *commercev1.RestockRequest) (*commercev1.RestockResponse, error) {
	if req == nil || req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodRestock,
		req,
		func() *commercev1.RestockResponse { return &commercev1.RestockResponse{} },
		func(ctx context.Context) (*commercev1.RestockResponse, error) {
			qty, err := domain.NewQuantity(req.Qty)
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}
			if err := s.ledger.Increase(ctx, req.ProductId, qty); err != nil {
				return nil, s.mapDomainError(err, "Restock")
			}

			stockRec, err := s.ledger.GetByProduct(ctx, req.ProductId)
			if err != nil {
				return nil, s.mapDomainError(err, "Restock")
			}
			return &commercev1.RestockResponse{Stock: toProtoStock(stockRec)}, nil
		},
	)
}

func (s *CommerceService) mapDomainError(err error, operation string) error {
	// Уже gRPC-статус: не перекодируем.
	var statusErr interface{ GRPCStatus() *status.Status }
	if errors.As(err, &statusErr) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrStockNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrOrderAlreadyExists),
		errors.Is(err, domain.ErrProductAlreadyExists),
		errors.Is(err, domain.ErrStockAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case domain.IsClientFault(err),
		errors.Is(err, domain.ErrAmountNegative),
		errors.Is(err, domain.ErrAmountOverflow),
		errors.Is(err, domain.ErrProductNameRequired),
		errors.Is(err, domain.ErrProductIDRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.WithError(err).WithField("operation", operation).Error("internal failure")
		return status.Error(codes.Internal, "internal failure")
	}
}

const (
	idempotencyKeyHeader = "idempotency-key"
	idempotencyTTL       = 24 * time.Hour
)

type idempotencyErrorPayload struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func withIdempotency[T proto.Message](
	s *CommerceService,
	ctx context.Context,
	method string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T

	if s.idemRepo == nil {
		return handler(ctx)
	}

	idemKey, err := readIdempotencyKey(ctx)
	if err != nil {
		return zero, err
	}

	reqHash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(idemKey, reqHash, time.Now().UTC().Add(idempotencyTTL))
	if err != nil {
		return replayIdempotency(s, err, record, newResp)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		s.cacheIdempotencyFailure(idemKey, runErr)
		return resp, runErr
	}

	if cacheErr := s.cacheIdempotencySuccess(idemKey, resp); cacheErr != nil {
		s.logger.WithError(cacheErr).WithField("idempotency_key", idemKey).Warn("failed to store idempotent success response")
	}

	return resp, nil
}

func replayIdempotency[T proto.Message](
	s *CommerceService,
	createErr error,
	record domain.IdempotencyRecord,
	newResp func() T,
) (T, error) {
	var zero T

	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return zero, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			if len(record.ResponseBody) == 0 {
				return zero, status.Error(codes.Internal, "idempotency cache is empty")
			}
			resp := newResp()
			if err := protojson.Unmarshal(record.ResponseBody, resp); err != nil {
				s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached idempotency response")
				return zero, status.Error(codes.Internal, "failed to decode cached idempotency response")
			}
			return resp, nil
		case domain.IdempotencyStatusProcessing:
			return zero, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		case domain.IdempotencyStatusFailed:
			return zero, decodeIdempotencyFailure(record)
		default:
			return zero, status.Error(codes.Internal, "unknown idempotency record status")
		}
	default:
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}
}

func (s *CommerceService) cacheIdempotencySuccess(key string, resp proto.Message) error {
	if resp == nil {
		return s.idemRepo.MarkDone(key, nil, int(codes.OK))
	}

	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return s.idemRepo.MarkDone(key, data, int(codes.OK))
}

func (s *CommerceService) cacheIdempotencyFailure(key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}

	payload, err := json.Marshal(idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode idempotency failure payload")
		payload = nil
	}

	if err := s.idemRepo.MarkFailed(key, payload, int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency failure response")
	}
}

func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	if len(record.ResponseBody) > 0 {
		var payload idempotencyErrorPayload
		if err := json.Unmarshal(record.ResponseBody, &payload); err == nil {
			if code, ok := grpcCodeFromInt32(payload.Code); ok {
				if code == codes.OK {
					code = codes.Internal
				}
				if payload.Message == "" {
					payload.Message = "previous request with the same idempotency key failed"
				}
				return status.Error(code, payload.Message)
			}
		}
	}

	if record.StatusCode > 0 {
		if code, ok := grpcCodeFromInt32(int32(record.StatusCode)); ok && code != codes.OK {
			return status.Error(code, "previous request with the same idempotency key failed")
		}
	}

	return status.Error(codes.Internal, "previous request with the same idempotency key failed")
}

func grpcCodeFromInt32(value int32) (codes.Code, bool) {
	if value < int32(codes.OK) || value > int32(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func readIdempotencyKey(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	return "", status.Error(codes.InvalidArgument, "idempotency-key metadata is required")
}

func buildIdempotencyRequestHash(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func moneyFromProto(m *commercev1.Money) (domain.Money, error) {
	if m == nil {
		return domain.Money{}, fmt.Errorf("price is required")
	}
	return domain.NewMoney(m.AmountMinor)
}

func toProtoOrder(placed domain.Order) *commercev1.Order {
	lines := make([]*commercev1.OrderLine, 0, len(placed.Lines))
	for _, line := range placed.Lines {
		lines = append(lines, &commercev1.OrderLine{
			Id:            line.ID,
			ProductId:     line.ProductID,
			ProductName:   line.ProductName,
			Price:         &commercev1.Money{AmountMinor: line.Price.Minor()},
			Qty:           line.Qty.Value(),
			CreatedAtUnix: line.CreatedAt.Unix(),
		})
	}

	return &commercev1.Order{
		Id:            placed.ID,
		MemberId:      placed.MemberID,
		Status:        toProtoOrderStatus(placed.Status),
		Total:         &commercev1.Money{AmountMinor: placed.Total.Minor()},
		Lines:         lines,
		CreatedAtUnix: placed.CreatedAt.Unix(),
	}
}

func toProtoOrderStatus(status domain.OrderStatus) commercev1.OrderStatus {
	switch status {
	case domain.OrderStatusCreated:
		return commercev1.OrderStatus_ORDER_STATUS_CREATED
	default:
		return commercev1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func toProtoProduct(product domain.Product) *commercev1.Product {
	return &commercev1.Product{
		Id:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         &commercev1.Money{AmountMinor: product.Price.Minor()},
		Deleted:       product.DeletedAt != nil,
		CreatedAtUnix: product.CreatedAt.Unix(),
		UpdatedAtUnix: product.UpdatedAt.Unix(),
	}
}

func toProtoStock(stockRec domain.Stock) *commercev1.Stock {
	return &commercev1.Stock{
		ProductId: stockRec.ProductID,
		Quantity:  stockRec.Quantity,
		Status:    toProtoStockStatus(stockRec.Status()),
	}
}

func toProtoStockStatus(status domain.StockStatus) commercev1.StockStatus {
	switch status {
	case domain.StockStatusInStock:
		return commercev1.StockStatus_STOCK_STATUS_IN_STOCK
	case domain.StockStatusLowStock:
		return commercev1.StockStatus_STOCK_STATUS_LOW_STOCK
	case domain.StockStatusOutOfStock:
		return commercev1.StockStatus_STOCK_STATUS_OUT_OF_STOCK
	default:
		return commercev1.StockStatus_STOCK_STATUS_UNSPECIFIED
	}
}
