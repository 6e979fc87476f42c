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

// CategoryHandler exposes the category operations over HTTP.
type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List retrieves a page of categories
func (h *CategoryHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCategoryOperation("list")

	skip, limit := parsePage(c)
	categories, err := h.categories.List(c.Request().Context(), skip, limit)
	if err != nil {
		log.Error("Failed to list categories", zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Categories retrieved successfully", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

// Get retrieves a single category by ID
func (h *CategoryHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCategoryOperation("get")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid category ID"})
	}

	category, err := h.categories.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Category not found", zap.Uint("category_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// Create adds a new category
func (h *CategoryHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new category")
	prometheus.RecordCategoryOperation("create")

	var req model.CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	category, err := h.categories.Create(c.Request().Context(), req)
	if err != nil {
		log.Warn("Failed to create category", zap.String("name", req.Name), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Category created successfully",
		zap.String("category_id", strconv.FormatUint(uint64(category.ID), 10)),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

// Update applies a partial update to an existing category
func (h *CategoryHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCategoryOperation("update")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid category ID"})
	}

	var patch model.CategoryPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	category, err := h.categories.Update(c.Request().Context(), id, patch)
	if err != nil {
		log.Warn("Failed to update category", zap.Uint("category_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Category updated successfully",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusOK, category)
}

// Delete removes a category when no products reference it
func (h *CategoryHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCategoryOperation("delete")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid category ID"})
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		log.Warn("Failed to delete category", zap.Uint("category_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Category deleted successfully", zap.Uint("category_id", id))
	return c.NoContent(http.StatusNoContent)
}
