package trade

import (
	"fmt"

	"github.com/storefront/backend/internal/domain/shared"
)

var (
	ErrOrderNotFound     = shared.NewDomainError("ORDER_NOT_FOUND", "Order id is not found")
	ErrLineProductMissed = shared.NewDomainError("LINE_PRODUCT_NOT_FOUND", "Product id is not found")
	ErrNoProducts        = shared.NewDomainError("NO_PRODUCTS", "Products are undefined")
)

// NewUnknownProductError reports a product id referenced by an order line
// that does not exist in the catalog.
func NewUnknownProductError(productID int64) *shared.DomainError {
	return shared.NewDomainError(
		"UNKNOWN_PRODUCT",
		fmt.Sprintf("Product id %d is not found in products", productID),
	)
}

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusComplete OrderStatus = "complete"
)

// IsValid reports whether the status is one of the known states
func (s OrderStatus) IsValid() bool {
	return s == StatusPending || s == StatusComplete
}

// OrderLine links one product with a quantity to an order
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}

// Order is a purchase made by a user. Lines carry the ordered products;
// an order is never created without at least one line.
type Order struct {
	ID     int64
	UserID int64
	Status OrderStatus
	Lines  []OrderLine
}

// NewOrder returns an unsaved order for the given user
func NewOrder(userID int64, status OrderStatus, lines []OrderLine) (*Order, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Invalid order status: %s", status))
	}
	if len(lines) == 0 {
		return nil, ErrNoProducts
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Order line quantity must be at least 1")
		}
	}

	return &Order{
		UserID: userID,
		Status: status,
		Lines:  lines,
	}, nil
}
