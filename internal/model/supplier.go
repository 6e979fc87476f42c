package model

// Supplier represents a product supplier
type Supplier struct {
	ID            uint   `json:"id" gorm:"primarykey"`
	Name          string `json:"name" gorm:"type:varchar(150);index;not null"`
	ContactPerson string `json:"contact_person" gorm:"type:varchar(100)"`
	Email         string `json:"email" gorm:"type:varchar(255);index"`
	PhoneNumber   string `json:"phone_number" gorm:"type:varchar(20)"`
	Address       string `json:"address" gorm:"type:varchar(255)"`
}

// SupplierRequest defines the structure for supplier creation requests
type SupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
}

// SupplierPatch carries the fields of a partial supplier update. A nil
// pointer means the field was absent from the request.
type SupplierPatch struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	PhoneNumber   *string `json:"phone_number"`
	Address       *string `json:"address"`
}
