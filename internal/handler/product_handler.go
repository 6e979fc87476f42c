package handler

import (
	"net/http"
	"strconv"

	"inventory-service/internal/model"
	"inventory-service/internal/service"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler exposes the product operations over HTTP.
type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List retrieves products with optional filtering and pagination
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("list")

	filter := model.ProductFilter{
		Name: c.QueryParam("name"),
		SKU:  c.QueryParam("sku"),
	}
	filter.Skip, filter.Limit = parsePage(c)
	if v := c.QueryParam("category_id"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			filter.CategoryID = &id
		} else {
			log.Warn("Invalid category_id parameter", zap.String("value", v), zap.Error(err))
		}
	}
	if v := c.QueryParam("supplier_id"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			filter.SupplierID = &id
		} else {
			log.Warn("Invalid supplier_id parameter", zap.String("value", v), zap.Error(err))
		}
	}

	products, err := h.products.List(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// Get retrieves a single product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("get")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Product not found", zap.Uint("product_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Product retrieved successfully",
		zap.Uint("product_id", product.ID),
		zap.String("product_sku", product.SKU))
	return c.JSON(http.StatusOK, product)
}

// Create adds a new product
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")
	prometheus.RecordProductOperation("create")

	var req model.ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Product creation request",
		zap.String("name", req.Name),
		zap.String("sku", req.SKU))

	product, err := h.products.Create(c.Request().Context(), req)
	if err != nil {
		log.Warn("Failed to create product",
			zap.String("name", req.Name),
			zap.String("sku", req.SKU),
			zap.Error(err))
		return errorJSON(c, err)
	}

	prometheus.UpdateProductInventory(
		strconv.FormatUint(uint64(product.ID), 10),
		product.SKU,
		float64(product.QuantityOnHand))

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusCreated, product)
}

// Update applies a partial update to an existing product
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("update")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	var patch model.ProductPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product, err := h.products.Update(c.Request().Context(), id, patch)
	if err != nil {
		log.Warn("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	prometheus.UpdateProductInventory(
		strconv.FormatUint(uint64(product.ID), 10),
		product.SKU,
		float64(product.QuantityOnHand))

	log.Info("Product updated successfully",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("delete")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		log.Warn("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.NoContent(http.StatusNoContent)
}
