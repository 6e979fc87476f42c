package service

import (
	"context"
	"errors"
	"time"

	"inventory-service/internal/model"
	"inventory-service/prometheus"

	"gorm.io/gorm"
)

// CategoryService owns category name uniqueness and the delete guard
// against referencing products.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create persists a new category after checking that the name is unique.
func (s *CategoryService) Create(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	if err := validateCategoryRequest(&req); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
			return storageErr("category", err)
		}
		if count > 0 {
			return conflictErr("category", "name", "category with name %q already exists", req.Name)
		}
		if err := tx.Create(category).Error; err != nil {
			// The unique index is the backstop when two creates race past
			// the pre-check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr("category", "name", "category with name %q already exists", req.Name)
			}
			return storageErr("category", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// List returns a page of categories in insertion order.
func (s *CategoryService) List(ctx context.Context, skip, limit int) ([]model.Category, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())
	var categories []model.Category
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&categories).Error
	if err != nil {
		return nil, storageErr("category", err)
	}
	return categories, nil
}

// Get returns the category with the given id.
func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())
	var category model.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("category", "category with ID %d not found", id)
		}
		return nil, storageErr("category", err)
	}
	return &category, nil
}

// Update applies the fields present in the patch. A changed name is
// re-checked for uniqueness before anything is written.
func (s *CategoryService) Update(ctx context.Context, id uint, patch model.CategoryPatch) (*model.Category, error) {
	if err := validateCategoryPatch(&patch); err != nil {
		return nil, err
	}

	var category model.Category
	defer prometheus.TrackDBOperation("update")(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("category", "category with ID %d not found", id)
			}
			return storageErr("category", err)
		}

		if patch.Name != nil && *patch.Name != category.Name {
			var count int64
			if err := tx.Model(&model.Category{}).Where("name = ? AND id != ?", *patch.Name, id).Count(&count).Error; err != nil {
				return storageErr("category", err)
			}
			if count > 0 {
				return conflictErr("category", "name", "category with name %q already exists", *patch.Name)
			}
		}

		if patch.Name != nil {
			category.Name = *patch.Name
		}
		if patch.Description != nil {
			category.Description = *patch.Description
		}

		if err := tx.Save(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr("category", "name", "category with name %q already exists", category.Name)
			}
			return storageErr("category", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes the category unless products still reference it.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("category", "category with ID %d not found", id)
			}
			return storageErr("category", err)
		}

		var count int64
		if err := tx.Model(&model.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return storageErr("category", err)
		}
		if count > 0 {
			return conflictErr("category", "", "cannot delete category %q as it has associated products", category.Name)
		}

		if err := tx.Delete(&category).Error; err != nil {
			return storageErr("category", err)
		}
		return nil
	})
}

// exists is the read-only lookup ProductService uses for foreign-key
// checks; tx scopes it to the caller's transaction.
func (s *CategoryService) exists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
