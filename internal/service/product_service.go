package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"inventory-service/internal/model"
	"inventory-service/prometheus"

	"gorm.io/gorm"
)

// DefaultReorderLevel is applied when a creation request omits the field.
const DefaultReorderLevel = 10

// ProductService owns SKU uniqueness, numeric constraints and the
// foreign-key checks against categories and suppliers. It is the only
// service that depends on the other two, and only for read-only lookups.
type ProductService struct {
	db         *gorm.DB
	categories *CategoryService
	suppliers  *SupplierService
}

func NewProductService(db *gorm.DB, categories *CategoryService, suppliers *SupplierService) *ProductService {
	return &ProductService{db: db, categories: categories, suppliers: suppliers}
}

// Create persists a new product. Checks run in a fixed order so failures
// are deterministic: SKU conflict, then category existence, then supplier
// existence. Omitted optional fields get the schema defaults.
func (s *ProductService) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(&req); err != nil {
		return nil, err
	}

	product := &model.Product{
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		ReorderLevel:  DefaultReorderLevel,
		IsActive:      true,
		CategoryID:    req.CategoryID,
		SupplierID:    req.SupplierID,
	}
	if req.QuantityOnHand != nil {
		product.QuantityOnHand = *req.QuantityOnHand
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Product{}).Where("sku = ?", req.SKU).Count(&count).Error; err != nil {
			return storageErr("product", err)
		}
		if count > 0 {
			return conflictErr("product", "sku", "product with SKU %q already exists", req.SKU)
		}

		if req.CategoryID != nil {
			ok, err := s.categories.exists(tx, *req.CategoryID)
			if err != nil {
				return storageErr("product", err)
			}
			if !ok {
				return notFoundErr("category", "category with ID %d not found", *req.CategoryID)
			}
		}
		if req.SupplierID != nil {
			ok, err := s.suppliers.exists(tx, *req.SupplierID)
			if err != nil {
				return storageErr("product", err)
			}
			if !ok {
				return notFoundErr("supplier", "supplier with ID %d not found", *req.SupplierID)
			}
		}

		if err := tx.Create(product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr("product", "sku", "product with SKU %q already exists", req.SKU)
			}
			return storageErr("product", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// List returns a page of products. All filters are optional and combined
// with AND: name is a case-insensitive substring match, sku an exact match,
// category and supplier exact id matches.
func (s *ProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())
	query := s.db.WithContext(ctx).Model(&model.Product{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.SKU != "" {
		query = query.Where("sku = ?", filter.SKU)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}

	var products []model.Product
	err := query.
		Preload("Category").
		Preload("Supplier").
		Order("id").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, storageErr("product", err)
	}
	return products, nil
}

// Get returns the product with the given id, with its category and
// supplier loaded.
func (s *ProductService) Get(ctx context.Context, id uint) (*model.Product, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())
	var product model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("product", "product with ID %d not found", id)
		}
		return nil, storageErr("product", err)
	}
	return &product, nil
}

// Update applies the fields present in the patch, in the same check order
// as Create. An explicit null category_id or supplier_id clears the
// association; an absent field leaves it untouched.
func (s *ProductService) Update(ctx context.Context, id uint, patch model.ProductPatch) (*model.Product, error) {
	if err := validateProductPatch(&patch); err != nil {
		return nil, err
	}

	var product model.Product
	defer prometheus.TrackDBOperation("update")(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("product", "product with ID %d not found", id)
			}
			return storageErr("product", err)
		}

		if patch.SKU != nil && *patch.SKU != product.SKU {
			var count int64
			if err := tx.Model(&model.Product{}).Where("sku = ? AND id != ?", *patch.SKU, id).Count(&count).Error; err != nil {
				return storageErr("product", err)
			}
			if count > 0 {
				return conflictErr("product", "sku", "product with SKU %q already exists", *patch.SKU)
			}
		}

		if patch.CategoryID.Set && patch.CategoryID.Valid {
			ok, err := s.categories.exists(tx, patch.CategoryID.Value)
			if err != nil {
				return storageErr("product", err)
			}
			if !ok {
				return notFoundErr("category", "category with ID %d not found", patch.CategoryID.Value)
			}
		}
		if patch.SupplierID.Set && patch.SupplierID.Valid {
			ok, err := s.suppliers.exists(tx, patch.SupplierID.Value)
			if err != nil {
				return storageErr("product", err)
			}
			if !ok {
				return notFoundErr("supplier", "supplier with ID %d not found", patch.SupplierID.Value)
			}
		}

		if patch.SKU != nil {
			product.SKU = *patch.SKU
		}
		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.PurchasePrice != nil {
			product.PurchasePrice = *patch.PurchasePrice
		}
		if patch.SalePrice != nil {
			product.SalePrice = *patch.SalePrice
		}
		if patch.QuantityOnHand != nil {
			product.QuantityOnHand = *patch.QuantityOnHand
		}
		if patch.ReorderLevel != nil {
			product.ReorderLevel = *patch.ReorderLevel
		}
		if patch.Location != nil {
			product.Location = *patch.Location
		}
		if patch.ImageURL != nil {
			product.ImageURL = *patch.ImageURL
		}
		if patch.IsActive != nil {
			product.IsActive = *patch.IsActive
		}
		if patch.CategoryID.Set {
			if patch.CategoryID.Valid {
				v := patch.CategoryID.Value
				product.CategoryID = &v
			} else {
				product.CategoryID = nil
			}
		}
		if patch.SupplierID.Set {
			if patch.SupplierID.Valid {
				v := patch.SupplierID.Value
				product.SupplierID = &v
			} else {
				product.SupplierID = nil
			}
		}
		if err := tx.Save(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr("product", "sku", "product with SKU %q already exists", product.SKU)
			}
			return storageErr("product", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product. Products have no dependents, so deletion is
// unconditional once the row is found.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("product", "product with ID %d not found", id)
			}
			return storageErr("product", err)
		}
		if err := tx.Delete(&product).Error; err != nil {
			return storageErr("product", err)
		}
		return nil
	})
}
