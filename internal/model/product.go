package model

import (
	"time"
)

// Product represents the product master data
type Product struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	SKU            string    `json:"sku" gorm:"type:varchar(50);uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"type:varchar(200);index;not null"`
	Description    string    `json:"description" gorm:"type:varchar(1000)"`
	PurchasePrice  float64   `json:"purchase_price" gorm:"not null"`
	SalePrice      float64   `json:"sale_price" gorm:"not null"`
	// Schema defaults (quantity 0, reorder level 10, active true) are
	// filled by the create operation, not by column default tags: a gorm
	// default makes the INSERT omit zero-valued fields, which would turn
	// an explicit reorder_level 0 or is_active false back into the
	// default.
	QuantityOnHand int       `json:"quantity_on_hand" gorm:"not null"`
	ReorderLevel   int       `json:"reorder_level" gorm:"not null"`
	Location       string    `json:"location" gorm:"type:varchar(100)"`
	ImageURL       string    `json:"image_url" gorm:"type:varchar(2048)"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	CategoryID     *uint     `json:"category_id" gorm:"index"`
	SupplierID     *uint     `json:"supplier_id" gorm:"index"`
	Category       *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Supplier       *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductRequest defines the structure for product creation requests.
// Pointer fields distinguish an omitted value from an explicit zero so the
// schema defaults (quantity 0, reorder level 10, active true) apply only
// when the field is absent.
type ProductRequest struct {
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PurchasePrice  float64 `json:"purchase_price"`
	SalePrice      float64 `json:"sale_price"`
	QuantityOnHand *int    `json:"quantity_on_hand"`
	ReorderLevel   *int    `json:"reorder_level"`
	Location       string  `json:"location"`
	ImageURL       string  `json:"image_url"`
	IsActive       *bool   `json:"is_active"`
	CategoryID     *uint   `json:"category_id"`
	SupplierID     *uint   `json:"supplier_id"`
}

// ProductPatch carries the fields of a partial product update. Nil pointers
// mean "leave untouched". CategoryID and SupplierID use Optional because an
// explicit null clears the association, which is different from omitting
// the field.
type ProductPatch struct {
	SKU            *string        `json:"sku"`
	Name           *string        `json:"name"`
	Description    *string        `json:"description"`
	PurchasePrice  *float64       `json:"purchase_price"`
	SalePrice      *float64       `json:"sale_price"`
	QuantityOnHand *int           `json:"quantity_on_hand"`
	ReorderLevel   *int           `json:"reorder_level"`
	Location       *string        `json:"location"`
	ImageURL       *string        `json:"image_url"`
	IsActive       *bool          `json:"is_active"`
	CategoryID     Optional[uint] `json:"category_id"`
	SupplierID     Optional[uint] `json:"supplier_id"`
}

// ProductFilter holds the optional, conjunctive list filters plus the page
// window. Zero values impose no constraint.
type ProductFilter struct {
	Name       string
	SKU        string
	CategoryID *uint
	SupplierID *uint
	Skip       int
	Limit      int
}
