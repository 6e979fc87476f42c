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

// SupplierHandler exposes the supplier operations over HTTP.
type SupplierHandler struct {
	suppliers *service.SupplierService
}

func NewSupplierHandler(suppliers *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// List retrieves a page of suppliers
func (h *SupplierHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("list")

	skip, limit := parsePage(c)
	suppliers, err := h.suppliers.List(c.Request().Context(), skip, limit)
	if err != nil {
		log.Error("Failed to list suppliers", zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Suppliers retrieved successfully", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}

// Get retrieves a single supplier by ID
func (h *SupplierHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("get")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	supplier, err := h.suppliers.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Supplier not found", zap.Uint("supplier_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, supplier)
}

// Create adds a new supplier
func (h *SupplierHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new supplier")
	prometheus.RecordSupplierOperation("create")

	var req model.SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	supplier, err := h.suppliers.Create(c.Request().Context(), req)
	if err != nil {
		log.Warn("Failed to create supplier", zap.String("name", req.Name), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Supplier created successfully",
		zap.String("supplier_id", strconv.FormatUint(uint64(supplier.ID), 10)),
		zap.String("name", supplier.Name))
	return c.JSON(http.StatusCreated, supplier)
}

// Update applies a partial update to an existing supplier
func (h *SupplierHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("update")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	var patch model.SupplierPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	supplier, err := h.suppliers.Update(c.Request().Context(), id, patch)
	if err != nil {
		log.Warn("Failed to update supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Supplier updated successfully",
		zap.Uint("supplier_id", supplier.ID),
		zap.String("name", supplier.Name))
	return c.JSON(http.StatusOK, supplier)
}

// Delete removes a supplier when no products reference it
func (h *SupplierHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("delete")

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}

	if err := h.suppliers.Delete(c.Request().Context(), id); err != nil {
		log.Warn("Failed to delete supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return errorJSON(c, err)
	}

	log.Info("Supplier deleted successfully", zap.Uint("supplier_id", id))
	return c.NoContent(http.StatusNoContent)
}
