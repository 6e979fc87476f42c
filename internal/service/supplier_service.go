package service

import (
	"context"
	"errors"
	"time"

	"inventory-service/internal/model"
	"inventory-service/prometheus"

	"gorm.io/gorm"
)

// SupplierService owns supplier email uniqueness (only when an email is
// present) and the delete guard against referencing products.
type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// Create persists a new supplier. A non-empty email must not collide with
// another supplier; absent emails never conflict.
func (s *SupplierService) Create(ctx context.Context, req model.SupplierRequest) (*model.Supplier, error) {
	if err := validateSupplierRequest(&req); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Email != "" {
			var count int64
			if err := tx.Model(&model.Supplier{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
				return storageErr("supplier", err)
			}
			if count > 0 {
				return conflictErr("supplier", "email", "supplier with email %q already exists", req.Email)
			}
		}
		if err := tx.Create(supplier).Error; err != nil {
			return storageErr("supplier", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// List returns a page of suppliers in insertion order.
func (s *SupplierService) List(ctx context.Context, skip, limit int) ([]model.Supplier, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())
	var suppliers []model.Supplier
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&suppliers).Error
	if err != nil {
		return nil, storageErr("supplier", err)
	}
	return suppliers, nil
}

// Get returns the supplier with the given id.
func (s *SupplierService) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())
	var supplier model.Supplier
	if err := s.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("supplier", "supplier with ID %d not found", id)
		}
		return nil, storageErr("supplier", err)
	}
	return &supplier, nil
}

// Update applies the fields present in the patch. Email uniqueness is
// re-checked only when the patch carries a non-empty email that differs
// from the stored one.
func (s *SupplierService) Update(ctx context.Context, id uint, patch model.SupplierPatch) (*model.Supplier, error) {
	if err := validateSupplierPatch(&patch); err != nil {
		return nil, err
	}

	var supplier model.Supplier
	defer prometheus.TrackDBOperation("update")(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&supplier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("supplier", "supplier with ID %d not found", id)
			}
			return storageErr("supplier", err)
		}

		if patch.Email != nil && *patch.Email != "" && *patch.Email != supplier.Email {
			var count int64
			if err := tx.Model(&model.Supplier{}).Where("email = ? AND id != ?", *patch.Email, id).Count(&count).Error; err != nil {
				return storageErr("supplier", err)
			}
			if count > 0 {
				return conflictErr("supplier", "email", "supplier with email %q already exists", *patch.Email)
			}
		}

		if patch.Name != nil {
			supplier.Name = *patch.Name
		}
		if patch.ContactPerson != nil {
			supplier.ContactPerson = *patch.ContactPerson
		}
		if patch.Email != nil {
			supplier.Email = *patch.Email
		}
		if patch.PhoneNumber != nil {
			supplier.PhoneNumber = *patch.PhoneNumber
		}
		if patch.Address != nil {
			supplier.Address = *patch.Address
		}

		if err := tx.Save(&supplier).Error; err != nil {
			return storageErr("supplier", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Delete removes the supplier unless products still reference it.
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var supplier model.Supplier
		if err := tx.First(&supplier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("supplier", "supplier with ID %d not found", id)
			}
			return storageErr("supplier", err)
		}

		var count int64
		if err := tx.Model(&model.Product{}).Where("supplier_id = ?", id).Count(&count).Error; err != nil {
			return storageErr("supplier", err)
		}
		if count > 0 {
			return conflictErr("supplier", "", "cannot delete supplier %q as it has associated products", supplier.Name)
		}

		if err := tx.Delete(&supplier).Error; err != nil {
			return storageErr("supplier", err)
		}
		return nil
	})
}

// exists is the read-only lookup ProductService uses for foreign-key
// checks; tx scopes it to the caller's transaction.
func (s *SupplierService) exists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&model.Supplier{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
