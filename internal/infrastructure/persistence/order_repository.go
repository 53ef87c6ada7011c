package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GORM-based order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order header and all lines in a single transaction.
// Either the whole order lands or none of it does.
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		header := models.OrderModelFromDomain(order)
		if err := tx.Create(header).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		order.ID = header.ID

		lineModels := make([]models.OrderLineModel, len(order.Lines))
		for i := range order.Lines {
			order.Lines[i].OrderID = header.ID
			lineModels[i] = *models.OrderLineModelFromDomain(&order.Lines[i])
		}
		if err := tx.Create(&lineModels).Error; err != nil {
			return fmt.Errorf("failed to create order lines: %w", err)
		}
		for i := range lineModels {
			order.Lines[i].ID = lineModels[i].ID
		}
		return nil
	})
}

// AddLine appends a single line to an existing order and sets the generated id
func (r *GormOrderRepository) AddLine(ctx context.Context, line *trade.OrderLine) error {
	model := models.OrderLineModelFromDomain(line)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add order line: %w", err)
	}
	line.ID = model.ID
	return nil
}

// FindByUserID returns the user's orders with lines populated in insertion order
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID int64) ([]trade.Order, error) {
	var headers []models.OrderModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&headers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]trade.Order, len(headers))
	for i := range headers {
		order := headers[i].ToDomain()

		var lineModels []models.OrderLineModel
		err := r.db.WithContext(ctx).
			Where("order_id = ?", headers[i].ID).
			Order("id").
			Find(&lineModels).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load order lines: %w", err)
		}

		order.Lines = make([]trade.OrderLine, len(lineModels))
		for j := range lineModels {
			order.Lines[j] = lineModels[j].ToDomain()
		}
		orders[i] = *order
	}
	return orders, nil
}

// ExistsByID checks whether an order with the given id exists
func (r *GormOrderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return count > 0, nil
}

// Reset truncates the order tables and restarts their id sequences
func (r *GormOrderRepository) Reset(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("TRUNCATE TABLE orders_products, orders RESTART IDENTITY CASCADE").Error; err != nil {
		return fmt.Errorf("failed to reset order tables: %w", err)
	}
	return nil
}
