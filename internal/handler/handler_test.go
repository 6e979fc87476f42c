package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-service/internal/model"
	"inventory-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestAPI wires the full route table against an in-memory database.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Supplier{}, &model.Product{}))

	categories := service.NewCategoryService(db)
	suppliers := service.NewSupplierService(db)
	products := service.NewProductService(db, categories, suppliers)

	categoryHandler := NewCategoryHandler(categories)
	supplierHandler := NewSupplierHandler(suppliers)
	productHandler := NewProductHandler(products)

	e := echo.New()
	api := e.Group("/api/v1")

	productAPI := api.Group("/products")
	productAPI.GET("", productHandler.List)
	productAPI.GET("/:id", productHandler.Get)
	productAPI.POST("", productHandler.Create)
	productAPI.PUT("/:id", productHandler.Update)
	productAPI.DELETE("/:id", productHandler.Delete)

	categoryAPI := api.Group("/categories")
	categoryAPI.GET("", categoryHandler.List)
	categoryAPI.GET("/:id", categoryHandler.Get)
	categoryAPI.POST("", categoryHandler.Create)
	categoryAPI.PUT("/:id", categoryHandler.Update)
	categoryAPI.DELETE("/:id", categoryHandler.Delete)

	supplierAPI := api.Group("/suppliers")
	supplierAPI.GET("", supplierHandler.List)
	supplierAPI.GET("/:id", supplierHandler.Get)
	supplierAPI.POST("", supplierHandler.Create)
	supplierAPI.PUT("/:id", supplierHandler.Update)
	supplierAPI.DELETE("/:id", supplierHandler.Delete)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCategoryEndpoints(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", `{"name": "Tools"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	// Duplicate name maps to 409.
	rec = doJSON(e, http.MethodPost, "/api/v1/categories", `{"name": "Tools"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Constraint violation maps to 400.
	rec = doJSON(e, http.MethodPost, "/api/v1/categories", `{"name": "X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown id maps to 404, malformed id to 400.
	rec = doJSON(e, http.MethodGet, "/api/v1/categories/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/v1/categories/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Successful delete returns no content.
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", created.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProductEndpoints(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", `{"name": "Tools"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var category model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))

	body := fmt.Sprintf(`{"sku": "T-001", "name": "Hammer", "purchase_price": 5.0, "sale_price": 9.99, "category_id": %d}`, category.ID)
	rec = doJSON(e, http.MethodPost, "/api/v1/products", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, 0, product.QuantityOnHand)
	assert.Equal(t, 10, product.ReorderLevel)
	assert.True(t, product.IsActive)

	// SKU collision maps to 409.
	rec = doJSON(e, http.MethodPost, "/api/v1/products", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Guarded category delete maps to 409 with the reason in the body.
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "has associated products")

	// An explicit null clears the association through the JSON boundary.
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", product.ID), `{"category_id": null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Nil(t, updated.CategoryID)

	// With the reference gone the category delete goes through.
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Unknown foreign key on create maps to 404.
	rec = doJSON(e, http.MethodPost, "/api/v1/products",
		`{"sku": "T-002", "name": "Wrench", "purchase_price": 1, "sale_price": 2, "category_id": 999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", product.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSupplierEndpoints(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/suppliers", `{"name": "Acme", "email": "sales@acme.example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/suppliers", `{"name": "Globex", "email": "sales@acme.example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/suppliers", `{"name": "Globex", "email": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/suppliers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestProductListQueryParams(t *testing.T) {
	e := newTestAPI(t)

	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"sku": "T-%03d", "name": "Hammer %d", "purchase_price": 1, "sale_price": 2}`, i, i)
		rec := doJSON(e, http.MethodPost, "/api/v1/products", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/api/v1/products?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "T-002", listed[0].SKU)

	rec = doJSON(e, http.MethodGet, "/api/v1/products?sku=T-003", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Hammer 3", listed[0].Name)
}
