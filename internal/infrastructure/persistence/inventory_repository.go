package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/domain/shared"
)

// GormInventoryItemRepository implements inventory.ItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// Create persists a new inventory item
func (r *GormInventoryItemRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID finds an inventory item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Inventory item not found")
		}
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate finds an inventory item and acquires a row lock.
// Must be called inside a transaction; deductions for competing orders
// serialize on this lock.
func (r *GormInventoryItemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Inventory item not found")
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds inventory items matching the filter
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Count counts inventory items matching the filter
func (r *GormInventoryItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists changes to an inventory item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an inventory item
func (r *GormInventoryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Inventory item not found")
	}
	return nil
}

func (r *GormInventoryItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("name ASC")
	}

	return query
}

func (r *GormInventoryItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "low_stock":
			if enabled, ok := value.(bool); ok && enabled {
				query = query.Where("current_stock < min_threshold")
			}
		}
	}
	return query
}

// GormRecipeRepository implements inventory.RecipeRepository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create persists a new recipe component
func (r *GormRecipeRepository) Create(ctx context.Context, rc *inventory.RecipeComponent) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

// FindByID finds a recipe component by its ID
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.RecipeComponent, error) {
	var rc inventory.RecipeComponent
	if err := r.db.WithContext(ctx).First(&rc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Recipe component not found")
		}
		return nil, err
	}
	return &rc, nil
}

// FindByProduct finds all recipe components for a product
func (r *GormRecipeRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.RecipeComponent, error) {
	var components []inventory.RecipeComponent
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

// FindAll returns all recipe components
func (r *GormRecipeRepository) FindAll(ctx context.Context) ([]inventory.RecipeComponent, error) {
	var components []inventory.RecipeComponent
	if err := r.db.WithContext(ctx).
		Order("product_id ASC, created_at ASC").
		Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

// Save persists changes to a recipe component
func (r *GormRecipeRepository) Save(ctx context.Context, rc *inventory.RecipeComponent) error {
	return r.db.WithContext(ctx).Save(rc).Error
}

// Delete removes a recipe component
func (r *GormRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.RecipeComponent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Recipe component not found")
	}
	return nil
}

// GormStockMovementRepository implements inventory.MovementRepository using GORM
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends a stock movement record
func (r *GormStockMovementRepository) Create(ctx context.Context, m *inventory.StockMovement) error {
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// FindByOrder finds movements of a given kind recorded for an order
func (r *GormStockMovementRepository) FindByOrder(ctx context.Context, orderID uuid.UUID, kind inventory.MovementKind) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind = ?", orderID, kind).
		Order("occurred_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
