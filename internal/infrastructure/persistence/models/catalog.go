package models

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for products
type ProductModel struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"column:name;type:varchar(200);not null;uniqueIndex:idx_products_identity,priority:1"`
	Price    decimal.Decimal `gorm:"column:price;type:numeric(18,4);not null;uniqueIndex:idx_products_identity,priority:2"`
	Category string          `gorm:"column:category;type:varchar(100);not null;uniqueIndex:idx_products_identity,priority:3"`
}

// TableName specifies the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Category: m.Category,
	}
}

// ProductModelFromDomain converts a domain product to its persistence model
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
}
