// internal/domain/product/service.go
package product

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
)

// Service handles catalog business logic
type Service struct {
	repo   *Repository
	config *config.Config
}

// NewService creates a new catalog service
func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
	}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

// UpdateProductRequest represents product update data
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	IsActive    *bool            `json:"is_active"`
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	return s.repo.Get(id)
}

// GetProducts retrieves all products, optionally filtered by category or
// free-text search
func (s *Service) GetProducts(category, search string) []Product {
	switch {
	case search != "":
		return s.repo.Search(search)
	case category != "":
		return s.repo.ListByCategory(category)
	default:
		return s.repo.List()
	}
}

// CreateProduct validates and stores a new product
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	p := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		IsActive:    true,
	}

	stored, err := s.repo.Save(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	return stored, nil
}

// UpdateProduct applies a partial update to an existing product
func (s *Service) UpdateProduct(id uint, req *UpdateProductRequest) (*Product, error) {
	p, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	stored, err := s.repo.Save(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update product %d", id)
	}
	return stored, nil
}

// DeleteProduct removes a product from the catalog
func (s *Service) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}
