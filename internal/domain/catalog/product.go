package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

var (
	ErrDuplicateProduct  = shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists.")
	ErrProductIDNotFound = shared.NewDomainError("PRODUCT_ID_NOT_FOUND", "Product associated with this id is not found")
)

// Product is a catalog entry. Two products are considered the same when
// name, price and category all match.
type Product struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Category string
}

// NewProduct validates the attributes and returns an unsaved product
func NewProduct(name string, price decimal.Decimal, category string) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price must be positive")
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}

	return &Product{
		Name:     name,
		Price:    price,
		Category: category,
	}, nil
}
