package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles catalog product endpoints
type ProductHandler struct {
	BaseHandler
	products    *catalogapp.ProductService
	requireAuth gin.HandlerFunc
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalogapp.ProductService, requireAuth gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{
		products:    products,
		requireAuth: requireAuth,
	}
}

type createProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// RegisterRoutes registers product routes. Reads are public; creation
// requires a token.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/products", h.requireAuth, middleware.ValidateRequest(productRules()...), h.Create)
	rg.GET("/products", h.Index)
	rg.GET("/products/:id", h.Show)
}

func productRules() []middleware.Rule {
	return []middleware.Rule{
		middleware.Body("name", "Please provide a valid name for the product", middleware.IsString(1)),
		middleware.Body("price", "Please provide a valid price for the product", middleware.IsNumber(1)),
		middleware.Body("category", "Please provide a valid category for the product", middleware.IsString(1)),
	}
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), catalogapp.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		h.Error(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, productResponse(product))
}

// Index lists the whole catalog
func (h *ProductHandler) Index(c *gin.Context) {
	products, err := h.products.Index(c.Request.Context())
	if err != nil {
		h.Error(c, http.StatusNotFound, err)
		return
	}
	if len(products) == 0 {
		h.ErrorMsg(c, http.StatusNotFound, "No products found")
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		response = append(response, productResponse(&products[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Show returns a single product by id
func (h *ProductHandler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusNotFound, err)
		return
	}
	if id <= 0 {
		h.ErrorMsg(c, http.StatusNotFound, "Please provide non-negative product id")
		return
	}

	product, err := h.products.Show(c.Request.Context(), int64(id))
	if err != nil {
		h.Error(c, http.StatusNotFound, err)
		return
	}

	c.JSON(http.StatusOK, productResponse(product))
}

func productResponse(product *catalog.Product) dto.ProductResponse {
	price, _ := product.Price.Float64()
	return dto.ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Price:    price,
		Category: product.Category,
	}
}
