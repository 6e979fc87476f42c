package service

import (
	"regexp"
	"unicode/utf8"

	"inventory-service/internal/model"
)

// emailPattern matches well-formed addresses; same shape the suppliers API
// has always accepted.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// Field constraints are checked here, before any storage access, so a bad
// payload never costs a query.

func checkLength(entity, field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return validationErr(entity, field, "%s %s must be between %d and %d characters", entity, field, min, max)
	}
	return nil
}

func checkMaxLength(entity, field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return validationErr(entity, field, "%s %s must be at most %d characters", entity, field, max)
	}
	return nil
}

func checkEmail(entity, value string) error {
	if value != "" && !emailPattern.MatchString(value) {
		return validationErr(entity, "email", "%s email %q is not a well-formed address", entity, value)
	}
	return nil
}

func validateCategoryRequest(req *model.CategoryRequest) error {
	if err := checkLength("category", "name", req.Name, 2, 100); err != nil {
		return err
	}
	return checkMaxLength("category", "description", req.Description, 500)
}

func validateCategoryPatch(patch *model.CategoryPatch) error {
	if patch.Name != nil {
		if err := checkLength("category", "name", *patch.Name, 2, 100); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		return checkMaxLength("category", "description", *patch.Description, 500)
	}
	return nil
}

func validateSupplierRequest(req *model.SupplierRequest) error {
	if err := checkLength("supplier", "name", req.Name, 2, 150); err != nil {
		return err
	}
	if err := checkMaxLength("supplier", "contact_person", req.ContactPerson, 100); err != nil {
		return err
	}
	if err := checkEmail("supplier", req.Email); err != nil {
		return err
	}
	if err := checkMaxLength("supplier", "phone_number", req.PhoneNumber, 20); err != nil {
		return err
	}
	return checkMaxLength("supplier", "address", req.Address, 255)
}

func validateSupplierPatch(patch *model.SupplierPatch) error {
	if patch.Name != nil {
		if err := checkLength("supplier", "name", *patch.Name, 2, 150); err != nil {
			return err
		}
	}
	if patch.ContactPerson != nil {
		if err := checkMaxLength("supplier", "contact_person", *patch.ContactPerson, 100); err != nil {
			return err
		}
	}
	if patch.Email != nil {
		if err := checkEmail("supplier", *patch.Email); err != nil {
			return err
		}
	}
	if patch.PhoneNumber != nil {
		if err := checkMaxLength("supplier", "phone_number", *patch.PhoneNumber, 20); err != nil {
			return err
		}
	}
	if patch.Address != nil {
		return checkMaxLength("supplier", "address", *patch.Address, 255)
	}
	return nil
}

func validateProductRequest(req *model.ProductRequest) error {
	if err := checkLength("product", "sku", req.SKU, 3, 50); err != nil {
		return err
	}
	if err := checkLength("product", "name", req.Name, 3, 200); err != nil {
		return err
	}
	if err := checkMaxLength("product", "description", req.Description, 1000); err != nil {
		return err
	}
	if req.PurchasePrice <= 0 {
		return validationErr("product", "purchase_price", "product purchase_price must be greater than 0")
	}
	if req.SalePrice <= 0 {
		return validationErr("product", "sale_price", "product sale_price must be greater than 0")
	}
	if req.QuantityOnHand != nil && *req.QuantityOnHand < 0 {
		return validationErr("product", "quantity_on_hand", "product quantity_on_hand must not be negative")
	}
	if req.ReorderLevel != nil && *req.ReorderLevel < 0 {
		return validationErr("product", "reorder_level", "product reorder_level must not be negative")
	}
	if err := checkMaxLength("product", "location", req.Location, 100); err != nil {
		return err
	}
	return checkMaxLength("product", "image_url", req.ImageURL, 2048)
}

func validateProductPatch(patch *model.ProductPatch) error {
	if patch.SKU != nil {
		if err := checkLength("product", "sku", *patch.SKU, 3, 50); err != nil {
			return err
		}
	}
	if patch.Name != nil {
		if err := checkLength("product", "name", *patch.Name, 3, 200); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := checkMaxLength("product", "description", *patch.Description, 1000); err != nil {
			return err
		}
	}
	if patch.PurchasePrice != nil && *patch.PurchasePrice <= 0 {
		return validationErr("product", "purchase_price", "product purchase_price must be greater than 0")
	}
	if patch.SalePrice != nil && *patch.SalePrice <= 0 {
		return validationErr("product", "sale_price", "product sale_price must be greater than 0")
	}
	if patch.QuantityOnHand != nil && *patch.QuantityOnHand < 0 {
		return validationErr("product", "quantity_on_hand", "product quantity_on_hand must not be negative")
	}
	if patch.ReorderLevel != nil && *patch.ReorderLevel < 0 {
		return validationErr("product", "reorder_level", "product reorder_level must not be negative")
	}
	if patch.Location != nil {
		if err := checkMaxLength("product", "location", *patch.Location, 100); err != nil {
			return err
		}
	}
	if patch.ImageURL != nil {
		return checkMaxLength("product", "image_url", *patch.ImageURL, 2048)
	}
	return nil
}
