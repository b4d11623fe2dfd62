package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// Product is a sellable catalog entry. Order items reference products
// but freeze their own price, so later edits here never rewrite past
// orders.
type Product struct {
	shared.BaseAggregateRoot
	Name      string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category  string          `gorm:"type:varchar(50);not null;index"`
	Unit      string          `gorm:"type:varchar(20);not null"`
	IsPackage bool            `gorm:"not null;default:false"`
	Image     string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, category, unit string, price decimal.Decimal, isPackage bool) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if category == "" {
		return nil, shared.NewValidationError("Product category cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewValidationError("Product unit cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Product price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Price:             price,
		Category:          category,
		Unit:              unit,
		IsPackage:         isPackage,
	}, nil
}

// UpdatePrice changes the catalog price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("Product price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// Rename changes the display name
func (p *Product) Rename(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// SetImage sets the image path
func (p *Product) SetImage(image string) {
	p.Image = image
	p.UpdatedAt = time.Now()
}
