package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/candlewick/storefront/core"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ProductService is conventional paginated CRUD over the product store.
type ProductService struct {
	db     core.ProductStorage
	logger *slog.Logger
}

func NewProductService(db core.ProductStorage, logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{db: db, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input core.CreateProductInput) (*core.Product, error) {
	if input.Name == "" {
		return nil, core.ErrNameRequired
	}
	if input.Price <= 0 {
		return nil, core.ErrInvalidPrice
	}

	product := &core.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Tags:        input.Tags,
	}

	if err := s.db.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created", "product_id", product.ID)
	return product, nil
}

// List returns one page of products, newest first. Page defaults to 1,
// limit to 10 and is capped at 100.
func (s *ProductService) List(ctx context.Context, opts core.ListOptions) (*core.ProductPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultPageLimit
	}
	if opts.Limit > maxPageLimit {
		opts.Limit = maxPageLimit
	}

	products, total, err := s.db.ListProducts(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []*core.Product{}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit

	return &core.ProductPage{
		Data: products,
		Meta: core.PageMeta{
			Total:       total,
			Page:        opts.Page,
			Limit:       opts.Limit,
			TotalPages:  totalPages,
			HasNextPage: opts.Page < totalPages,
			HasPrevPage: opts.Page > 1,
		},
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*core.Product, error) {
	return s.db.GetProductByID(ctx, id)
}

// Update merges the non-nil fields into the stored product.
func (s *ProductService) Update(ctx context.Context, id string, input core.UpdateProductInput) (*core.Product, error) {
	product, err := s.db.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, core.ErrNameRequired
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, core.ErrInvalidPrice
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}

	if err := s.db.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.db.DeleteProduct(ctx, id)
}
