// Package dto defines the wire-level request and response shapes.
package dto

// ErrorResponse is the single-message error body
type ErrorResponse struct {
	ErrorMsg string `json:"errorMsg"`
}

// TokenResponse carries a signed JWT
type TokenResponse struct {
	Token string `json:"token"`
}

// FieldError is one validation failure. Value is a pointer so that a rule on
// an absent top-level field omits the key entirely, while a present-but-wrong
// value (including an explicit null) is echoed back.
type FieldError struct {
	Value    *any   `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// ValidationErrorResponse is the body returned when request validation fails
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// UserResponse is a user without credential fields
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ProductResponse is a catalog product
type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// OrderLineResponse is one ordered product inside an order body
type OrderLineResponse struct {
	ID  int64 `json:"id"`
	Qty int   `json:"qty"`
}

// OrderResponse is an order with its products
type OrderResponse struct {
	ID       int64               `json:"id"`
	UserID   int64               `json:"userId"`
	Status   string              `json:"status"`
	Products []OrderLineResponse `json:"products"`
}

// OrderLineCreatedResponse is the body returned when a product is appended
// to an existing order
type OrderLineCreatedResponse struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"orderId"`
	ProductID  int64 `json:"productId"`
	ProductQty int   `json:"productQty"`
}
