package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/catalog"
	"github.com/warungpos/backend/internal/domain/inventory"
)

// RecipeService maintains product recipes. The deduction protocol only
// reads recipes; all writes go through here.
type RecipeService struct {
	recipes  inventory.RecipeRepository
	products catalog.Repository
	items    inventory.ItemRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	recipes inventory.RecipeRepository,
	products catalog.Repository,
	items inventory.ItemRepository,
) *RecipeService {
	return &RecipeService{
		recipes:  recipes,
		products: products,
		items:    items,
	}
}

// Create links a product to an inventory item. Both ends must exist.
func (s *RecipeService) Create(ctx context.Context, req CreateRecipeComponentRequest) (*RecipeComponentResponse, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, req.InventoryItemID); err != nil {
		return nil, err
	}

	component, err := inventory.NewRecipeComponent(req.ProductID, req.InventoryItemID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.recipes.Create(ctx, component); err != nil {
		return nil, err
	}

	resp := ToRecipeComponentResponse(component)
	return &resp, nil
}

// ListByProduct retrieves the recipe components of one product
func (s *RecipeService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]RecipeComponentResponse, error) {
	components, err := s.recipes.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ToRecipeComponentResponses(components), nil
}

// Delete removes a recipe component
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		return err
	}
	return s.recipes.Delete(ctx, id)
}
