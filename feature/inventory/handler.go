package inventory

import (
	"errors"

	"inventory-manager/core/listing"
	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard and inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/dashboard", h.HandleDashboard)

	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Get("/schema", h.HandleSchema)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// StatusFor maps a service error to an HTTP status code.
func StatusFor(err error) int {
	var validation *models.ValidationError
	var field *listing.FieldError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validation):
		return fiber.StatusBadRequest
	case errors.As(err, &field):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail logs err at a level matching its status and writes the JSON error body.
func Fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err), zap.Int("status", status))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// ParseID reads the positive numeric id path parameter.
func ParseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, models.Invalid("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}

// HandleDashboard returns the inventory summary.
// @Summary Dashboard
// @Description Totals, supplier count, low-stock products and the most recent products.
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} inventory.Dashboard "Dashboard"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	d, err := h.service.Dashboard(c.Context())
	if err != nil {
		return Fail(c, l, "Dashboard failed", err)
	}
	return c.JSON(d)
}

// HandleList returns the sorted, optionally filtered product list.
// @Summary List Products
// @Description List products sorted by a field, optionally filtered by an exact match on another field.
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Param sort query string false "Sort field (sku, name, category, supplier, quantity, reorder_level, unit_price)" default(name)
// @Param search_field query string false "Search field" default(name)
// @Param search_query query string false "Exact value to search for (case-insensitive)"
// @Success 200 {array} models.Product "Products"
// @Failure 422 {object} map[string]string "Unknown field or unresolvable value"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return Fail(c, l, "Invalid query", models.Invalid("%s", err.Error()))
	}

	products, err := h.service.List(c.Context(), q)
	if err != nil {
		return Fail(c, l, "Product listing failed", err)
	}
	return c.JSON(products)
}

// HandleSchema reports columns missing from the inventory tables.
// @Summary Check Schema
// @Description Compare the database tables with the columns the application expects.
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} inventory.SchemaReport "Schema report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema(c.Context())
	if err != nil {
		return Fail(c, l, "Schema check failed", err)
	}
	return c.JSON(report)
}

// HandleGet returns a single product.
// @Summary Get Product
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product "Product"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Not found"
// @Router /inventory/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := ParseID(c)
	if err != nil {
		return Fail(c, l, "Invalid product id", err)
	}
	p, err := h.service.Get(c.Context(), id)
	if err != nil {
		return Fail(c, l, "Product lookup failed", err)
	}
	return c.JSON(p)
}

// HandleCreate adds a product.
// @Summary Create Product
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param product body models.ProductInput true "Product"
// @Success 201 {object} models.Product "Created"
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return Fail(c, l, "Invalid product body", models.Invalid("%s", err.Error()))
	}
	p, err := h.service.Create(c.Context(), in)
	if err != nil {
		return Fail(c, l, "Product create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleUpdate replaces a product.
// @Summary Update Product
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.ProductInput true "Product"
// @Success 200 {object} models.Product "Updated"
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 404 {object} map[string]string "Not found"
// @Router /inventory/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := ParseID(c)
	if err != nil {
		return Fail(c, l, "Invalid product id", err)
	}
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return Fail(c, l, "Invalid product body", models.Invalid("%s", err.Error()))
	}
	p, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return Fail(c, l, "Product update failed", err)
	}
	return c.JSON(p)
}

// HandleDelete removes a product.
// @Summary Delete Product
// @Tags inventory
// @Security ApiKeyAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := ParseID(c)
	if err != nil {
		return Fail(c, l, "Invalid product id", err)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return Fail(c, l, "Product delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
