package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/catalog"
	"github.com/warungpos/backend/internal/domain/shared"
)

// ProductService handles catalog product operations
type ProductService struct {
	repo catalog.Repository
}

// NewProductService creates a new ProductService
func NewProductService(repo catalog.Repository) *ProductService {
	return &ProductService{repo: repo}
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Category, req.Unit, req.Price, req.IsPackage)
	if err != nil {
		return nil, err
	}
	if req.Image != "" {
		product.SetImage(req.Image)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with optional category filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != nil {
		domainFilter.Filters["category"] = *filter.Category
	}

	products, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update changes a product's fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.UpdatePrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, shared.NewValidationError("Product category cannot be empty")
		}
		product.Category = *req.Category
		product.UpdatedAt = time.Now()
	}
	if req.Unit != nil {
		if *req.Unit == "" {
			return nil, shared.NewValidationError("Product unit cannot be empty")
		}
		product.Unit = *req.Unit
		product.UpdatedAt = time.Now()
	}
	if req.Image != nil {
		product.SetImage(*req.Image)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
