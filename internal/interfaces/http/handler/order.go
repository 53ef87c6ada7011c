package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	tradeapp "github.com/storefront/backend/internal/application/trade"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order creation and retrieval
type OrderHandler struct {
	BaseHandler
	orders      *tradeapp.OrderService
	requireAuth gin.HandlerFunc
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *tradeapp.OrderService, requireAuth gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{
		orders:      orders,
		requireAuth: requireAuth,
	}
}

type addOrderRequest struct {
	Status   string `json:"status"`
	Products []struct {
		ID  any `json:"id"`
		Qty any `json:"qty"`
	} `json:"products"`
}

type addLineRequest struct {
	ProductID  any `json:"productId"`
	OrderID    any `json:"orderId"`
	ProductQty any `json:"productQty"`
}

// RegisterRoutes registers order routes; all of them require a token
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders-by-user/:id", h.requireAuth, middleware.ValidateRequest(
		middleware.PathParam("id", "Please provide a valid user id", middleware.IsInt(1)),
	), h.IndexByUser)
	rg.POST("/orders/products", h.requireAuth, middleware.ValidateRequest(addLineRules()...), h.AddProduct)
	rg.POST("/orders", h.requireAuth, middleware.ValidateRequest(addOrderRules()...), h.Create)
}

func addLineRules() []middleware.Rule {
	return []middleware.Rule{
		middleware.Body("productId", "Please provide a valid product id", middleware.IsInt(1)),
		middleware.Body("orderId", "Please provide a valid order id", middleware.IsInt(1)),
		middleware.Body("productQty", "Please provide a valid product quantity (larger than 0)", middleware.IsInt(1)),
	}
}

func addOrderRules() []middleware.Rule {
	return []middleware.Rule{
		middleware.Body("status", "Please provide a valid status value (pending, complete)", middleware.IsOneOf("pending", "complete")),
		middleware.Body("products", "Please provide a list of products with at least 1 product", middleware.IsArray(1)),
		middleware.Body("products.*.qty", "Please provide a valid products quantity (bigger than 0)", middleware.IsInt(1)),
		middleware.Body("products.*.id", "Please provide a valid product id", middleware.IsInt(1)),
	}
}

// IndexByUser lists all orders of a user with their lines
func (h *OrderHandler) IndexByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}

	orders, err := h.orders.IndexByUserID(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusOK, dto.ErrorResponse{ErrorMsg: "This user has no orders"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, orderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// AddProduct appends a line to an existing order
func (h *OrderHandler) AddProduct(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}

	line, err := h.orders.AddLine(
		c.Request.Context(),
		intValue(req.OrderID),
		intValue(req.ProductID),
		int(intValue(req.ProductQty)),
	)
	if err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderLineCreatedResponse{
		ID:         line.ID,
		OrderID:    line.OrderID,
		ProductID:  line.ProductID,
		ProductQty: line.Quantity,
	})
}

// Create creates an order for the authenticated user with its initial lines
func (h *OrderHandler) Create(c *gin.Context) {
	claims := middleware.TokenClaims(c)
	if claims == nil {
		h.ErrorMsg(c, http.StatusUnauthorized, "Token doesn't exist in the auth headers")
		return
	}

	var req addOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}
	if req.Products == nil {
		h.ErrorMsg(c, http.StatusBadRequest, "Products are undefined")
		return
	}

	lines := make([]tradeapp.OrderLineInput, 0, len(req.Products))
	for _, product := range req.Products {
		lines = append(lines, tradeapp.OrderLineInput{
			ProductID: intValue(product.ID),
			Quantity:  int(intValue(product.Qty)),
		})
	}

	order, err := h.orders.AddOrder(c.Request.Context(), claims.User.ID, trade.OrderStatus(req.Status), lines)
	if err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

func orderResponse(order *trade.Order) dto.OrderResponse {
	products := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		products = append(products, dto.OrderLineResponse{
			ID:  line.ProductID,
			Qty: line.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:       order.ID,
		UserID:   order.UserID,
		Status:   string(order.Status),
		Products: products,
	}
}

// intValue coerces a validated JSON field to an integer. Validation runs
// before binding, so values here are numeric or numeric strings.
func intValue(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}
