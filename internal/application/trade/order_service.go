// Package trade contains the application service for orders.
package trade

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/trade"
)

// OrderLineInput is one product reference with a quantity
type OrderLineInput struct {
	ProductID int64
	Quantity  int
}

// OrderService handles order operations
type OrderService struct {
	orders   trade.OrderRepository
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orders trade.OrderRepository, products catalog.ProductRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// AddOrder creates an order with its lines. Every referenced product must
// exist in the catalog before anything is written; the order header and its
// lines are then persisted atomically.
func (s *OrderService) AddOrder(ctx context.Context, userID int64, status trade.OrderStatus, lines []OrderLineInput) (*trade.Order, error) {
	if len(lines) == 0 {
		return nil, trade.ErrNoProducts
	}

	for _, line := range lines {
		exists, err := s.products.ExistsByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, trade.NewUnknownProductError(line.ProductID)
		}
	}

	orderLines := make([]trade.OrderLine, len(lines))
	for i, line := range lines {
		orderLines[i] = trade.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	order, err := trade.NewOrder(userID, status, orderLines)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("lines", len(order.Lines)),
	)
	return order, nil
}

// AddLine appends a product to an existing order. Both the order and the
// product must exist.
func (s *OrderService) AddLine(ctx context.Context, orderID, productID int64, quantity int) (*trade.OrderLine, error) {
	orderExists, err := s.orders.ExistsByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !orderExists {
		return nil, trade.ErrOrderNotFound
	}

	productExists, err := s.products.ExistsByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, trade.ErrLineProductMissed
	}

	line := &trade.OrderLine{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.orders.AddLine(ctx, line); err != nil {
		return nil, err
	}

	s.logger.Info("Order line added",
		zap.Int64("order_id", orderID),
		zap.Int64("product_id", productID),
	)
	return line, nil
}

// IndexByUserID lists a user's orders with lines populated
func (s *OrderService) IndexByUserID(ctx context.Context, userID int64) ([]trade.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}
