package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByAttributes(ctx context.Context, name string, price decimal.Decimal, category string) (bool, error)
	// Reset truncates the products table and restarts its id sequence.
	Reset(ctx context.Context) error
}
