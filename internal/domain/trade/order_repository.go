package trade

import "context"

// OrderRepository defines the persistence interface for orders and their lines
type OrderRepository interface {
	// Create persists the order header and all of its lines atomically.
	Create(ctx context.Context, order *Order) error
	// AddLine appends a single line to an existing order.
	AddLine(ctx context.Context, line *OrderLine) error
	// FindByUserID returns the user's orders with their lines populated,
	// lines in insertion order.
	FindByUserID(ctx context.Context, userID int64) ([]Order, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// Reset truncates the orders and order line tables and restarts their
	// id sequences.
	Reset(ctx context.Context) error
}
