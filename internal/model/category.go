package model

// Category represents a product category
type Category struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:varchar(500)"`
}

// CategoryRequest defines the structure for category creation requests
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryPatch carries the fields of a partial category update. A nil
// pointer means the field was absent from the request and must be left
// untouched.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
