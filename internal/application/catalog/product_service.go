// Package catalog contains the application service for the product catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CreateProductInput carries the fields for a new product
type CreateProductInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

// ProductService handles product catalog operations
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// Create adds a product to the catalog. A product with the same name, price
// and category is treated as a duplicate.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*catalog.Product, error) {
	exists, err := s.products.ExistsByAttributes(ctx, input.Name, input.Price, input.Category)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, catalog.ErrDuplicateProduct
	}

	product, err := catalog.NewProduct(input.Name, input.Price, input.Category)
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
	)
	return product, nil
}

// Show retrieves a single product by id
func (s *ProductService) Show(ctx context.Context, id int64) (*catalog.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, catalog.ErrProductIDNotFound
		}
		return nil, err
	}
	return product, nil
}

// Index lists every product
func (s *ProductService) Index(ctx context.Context) ([]catalog.Product, error) {
	return s.products.FindAll(ctx)
}
