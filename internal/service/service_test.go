package service

import (
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the same schema and
// error translation the service sees in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pool connection would open a second, empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Supplier{}, &model.Product{}))
	return db
}

func newServices(t *testing.T) (*CategoryService, *SupplierService, *ProductService) {
	t.Helper()
	db := newTestDB(t)
	categories := NewCategoryService(db)
	suppliers := NewSupplierService(db)
	products := NewProductService(db, categories, suppliers)
	return categories, suppliers, products
}

func ptr[T any](v T) *T {
	return &v
}

// productRequest returns a minimal valid creation request.
func productRequest(sku, name string) model.ProductRequest {
	return model.ProductRequest{
		SKU:           sku,
		Name:          name,
		PurchasePrice: 5.0,
		SalePrice:     9.99,
	}
}
