package trade

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/trade"
)

// MockOrderRepository is a testify mock of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil {
		order.ID = 1
		for i := range order.Lines {
			order.Lines[i].ID = int64(i + 1)
			order.Lines[i].OrderID = order.ID
		}
	}
	return args.Error(0)
}

func (m *MockOrderRepository) AddLine(ctx context.Context, line *trade.OrderLine) error {
	args := m.Called(ctx, line)
	if args.Error(0) == nil {
		line.ID = 10
	}
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID int64) ([]trade.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ trade.OrderRepository = (*MockOrderRepository)(nil)

// MockProductRepository is a testify mock of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) ExistsByAttributes(ctx context.Context, name string, price decimal.Decimal, category string) (bool, error) {
	args := m.Called(ctx, name, price, category)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

func TestOrderService_AddOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates order with lines", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		products.On("ExistsByID", ctx, int64(1)).Return(true, nil)
		products.On("ExistsByID", ctx, int64(2)).Return(true, nil)
		orders.On("Create", ctx, mock.AnythingOfType("*trade.Order")).Return(nil)

		svc := NewOrderService(orders, products, zap.NewNop())
		order, err := svc.AddOrder(ctx, 7, trade.StatusPending, []OrderLineInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 45},
		})
		require.NoError(t, err)

		assert.EqualValues(t, 1, order.ID)
		assert.EqualValues(t, 7, order.UserID)
		require.Len(t, order.Lines, 2)
		assert.Equal(t, order.ID, order.Lines[0].OrderID)
		orders.AssertExpectations(t)
	})

	t.Run("rejects unknown product before writing", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		products.On("ExistsByID", ctx, int64(1)).Return(true, nil)
		products.On("ExistsByID", ctx, int64(42)).Return(false, nil)

		svc := NewOrderService(orders, products, zap.NewNop())
		order, err := svc.AddOrder(ctx, 7, trade.StatusPending, []OrderLineInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 42, Quantity: 1},
		})

		assert.Nil(t, order)
		require.Error(t, err)
		assert.Equal(t, "Product id 42 is not found in products", err.Error())
		orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty line list", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)

		svc := NewOrderService(orders, products, zap.NewNop())
		order, err := svc.AddOrder(ctx, 7, trade.StatusPending, nil)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, trade.ErrNoProducts)
		assert.Equal(t, "Products are undefined", err.Error())
	})
}

func TestOrderService_AddLine(t *testing.T) {
	ctx := context.Background()

	t.Run("appends line", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		orders.On("ExistsByID", ctx, int64(3)).Return(true, nil)
		products.On("ExistsByID", ctx, int64(2)).Return(true, nil)
		orders.On("AddLine", ctx, mock.AnythingOfType("*trade.OrderLine")).Return(nil)

		svc := NewOrderService(orders, products, zap.NewNop())
		line, err := svc.AddLine(ctx, 3, 2, 45)
		require.NoError(t, err)

		assert.EqualValues(t, 10, line.ID)
		assert.EqualValues(t, 3, line.OrderID)
		assert.EqualValues(t, 2, line.ProductID)
		assert.Equal(t, 45, line.Quantity)
	})

	t.Run("unknown order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		orders.On("ExistsByID", ctx, int64(99)).Return(false, nil)

		svc := NewOrderService(orders, products, zap.NewNop())
		line, err := svc.AddLine(ctx, 99, 2, 1)

		assert.Nil(t, line)
		assert.ErrorIs(t, err, trade.ErrOrderNotFound)
		assert.Equal(t, "Order id is not found", err.Error())
	})

	t.Run("unknown product", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		orders.On("ExistsByID", ctx, int64(3)).Return(true, nil)
		products.On("ExistsByID", ctx, int64(77)).Return(false, nil)

		svc := NewOrderService(orders, products, zap.NewNop())
		line, err := svc.AddLine(ctx, 3, 77, 1)

		assert.Nil(t, line)
		assert.ErrorIs(t, err, trade.ErrLineProductMissed)
		assert.Equal(t, "Product id is not found", err.Error())
	})
}

func TestOrderService_IndexByUserID(t *testing.T) {
	ctx := context.Background()
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	orders.On("FindByUserID", ctx, int64(7)).Return([]trade.Order{
		{ID: 1, UserID: 7, Status: trade.StatusPending, Lines: []trade.OrderLine{{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2}}},
	}, nil)

	svc := NewOrderService(orders, products, zap.NewNop())
	result, err := svc.IndexByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].Lines, 1)
}
