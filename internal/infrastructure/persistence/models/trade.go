package models

import "github.com/storefront/backend/internal/domain/trade"

// OrderModel is the persistence model for order headers
type OrderModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	UserID int64  `gorm:"column:user_id;not null;index"`
	Status string `gorm:"column:status;type:varchar(20);not null"`
}

// TableName specifies the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model to a domain order without lines
func (m *OrderModel) ToDomain() *trade.Order {
	return &trade.Order{
		ID:     m.ID,
		UserID: m.UserID,
		Status: trade.OrderStatus(m.Status),
	}
}

// OrderModelFromDomain converts a domain order header to its persistence model
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	return &OrderModel{
		ID:     o.ID,
		UserID: o.UserID,
		Status: string(o.Status),
	}
}

// OrderLineModel is the persistence model for order lines
type OrderLineModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"column:order_id;not null;index"`
	ProductID int64 `gorm:"column:product_id;not null"`
	Qty       int   `gorm:"column:qty;not null"`
}

// TableName specifies the table name for OrderLineModel
func (OrderLineModel) TableName() string {
	return "orders_products"
}

// ToDomain converts the model to a domain order line
func (m *OrderLineModel) ToDomain() trade.OrderLine {
	return trade.OrderLine{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Qty,
	}
}

// OrderLineModelFromDomain converts a domain order line to its persistence model
func OrderLineModelFromDomain(l *trade.OrderLine) *OrderLineModel {
	return &OrderLineModel{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		Qty:       l.Quantity,
	}
}
