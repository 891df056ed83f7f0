package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyLBP Currency = "LBP"
)

type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

type Brand struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string    `json:"name" gorm:"not null"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;not null"`
	Logo            *string   `json:"logo"`
	Description     *string   `json:"description"`
	Website         *string   `json:"website"`
	CountryOfOrigin *string   `json:"countryOfOrigin"`
	IsActive        bool      `json:"isActive" gorm:"not null;default:true"`
	SortOrder       int       `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Category struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	ParentID    *uuid.UUID `json:"parentId" gorm:"type:uuid;index"`
	SortOrder   int        `json:"sortOrder" gorm:"not null;default:0"`
	IsActive    bool       `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CategoryNode is a category with its children, for the public tree view.
type CategoryNode struct {
	Category
	ProductCount int64           `json:"productCount"`
	Children     []*CategoryNode `json:"children"`
}

// ProductImage and ProductSpecification are stored as jsonb arrays on the
// product row rather than joined tables; they are written and read as a
// unit with the product.
type ProductImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	SortOrder int    `json:"sortOrder"`
	IsPrimary bool   `json:"isPrimary"`
}

type ProductSpecification struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
	Group string `json:"group,omitempty"`
}

type Product struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SKU               string         `json:"sku" gorm:"uniqueIndex;not null"`
	Name              string         `json:"name" gorm:"not null"`
	Slug              string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description       *string        `json:"description"`
	ShortDescription  *string        `json:"shortDescription"`
	BrandID           *uuid.UUID     `json:"brandId" gorm:"type:uuid;index"`
	CategoryID        *uuid.UUID     `json:"categoryId" gorm:"type:uuid;index"`
	Price             float64        `json:"price" gorm:"not null"`
	CompareAtPrice    *float64       `json:"compareAtPrice"`
	Currency          Currency       `json:"currency" gorm:"not null;default:'USD'"`
	StockQuantity     int            `json:"stockQuantity" gorm:"not null;default:0"`
	LowStockThreshold int            `json:"lowStockThreshold" gorm:"not null;default:5"`
	StockStatus       StockStatus    `json:"stockStatus" gorm:"not null;default:'out_of_stock'"`
	Images            datatypes.JSON `json:"images" gorm:"type:jsonb;default:'[]'"`
	Specifications    datatypes.JSON `json:"specifications" gorm:"type:jsonb;default:'[]'"`
	Tags              datatypes.JSON `json:"tags" gorm:"type:jsonb;default:'[]'"`
	IsActive          bool           `json:"isActive" gorm:"not null;default:true"`
	IsFeatured        bool           `json:"isFeatured" gorm:"not null;default:false"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`

	Brand    *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// CalculateStockStatus derives the stock status from quantity and threshold.
func CalculateStockStatus(quantity, lowStockThreshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= lowStockThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}

type ProductFilter struct {
	Search      string
	BrandID     *uuid.UUID
	CategoryIDs []uuid.UUID
	StockStatus *StockStatus
	Featured    *bool
	ActiveOnly  bool
}

type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type PaginatedProducts struct {
	Items      []*Product `json:"items"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	TotalPages int        `json:"totalPages"`
}
