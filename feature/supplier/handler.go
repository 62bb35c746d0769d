package supplier

import (
	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for suppliers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the supplier routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/suppliers")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the sorted, optionally filtered supplier list.
// @Summary List Suppliers
// @Description List suppliers sorted by name or contact person, optionally filtered by an exact match.
// @Tags suppliers
// @Security ApiKeyAuth
// @Produce json
// @Param sort query string false "Sort field (name, contact_person)" default(name)
// @Param search_field query string false "Search field" default(name)
// @Param search_query query string false "Exact value to search for (case-insensitive)"
// @Success 200 {array} models.Supplier "Suppliers"
// @Failure 422 {object} map[string]string "Unknown or unsupported field"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /suppliers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var q inventory.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return inventory.Fail(c, l, "Invalid query", models.Invalid("%s", err.Error()))
	}

	suppliers, err := h.service.List(c.Context(), q)
	if err != nil {
		return inventory.Fail(c, l, "Supplier listing failed", err)
	}
	return c.JSON(suppliers)
}

// HandleGet returns a single supplier.
// @Summary Get Supplier
// @Tags suppliers
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} models.Supplier "Supplier"
// @Failure 404 {object} map[string]string "Not found"
// @Router /suppliers/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := inventory.ParseID(c)
	if err != nil {
		return inventory.Fail(c, l, "Invalid supplier id", err)
	}
	sup, err := h.service.Get(c.Context(), id)
	if err != nil {
		return inventory.Fail(c, l, "Supplier lookup failed", err)
	}
	return c.JSON(sup)
}

// HandleCreate adds a supplier.
// @Summary Create Supplier
// @Tags suppliers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param supplier body models.SupplierInput true "Supplier"
// @Success 201 {object} models.Supplier "Created"
// @Failure 400 {object} map[string]string "Validation failed"
// @Router /suppliers [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in models.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return inventory.Fail(c, l, "Invalid supplier body", models.Invalid("%s", err.Error()))
	}
	sup, err := h.service.Create(c.Context(), in)
	if err != nil {
		return inventory.Fail(c, l, "Supplier create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sup)
}

// HandleUpdate replaces a supplier.
// @Summary Update Supplier
// @Tags suppliers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param supplier body models.SupplierInput true "Supplier"
// @Success 200 {object} models.Supplier "Updated"
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 404 {object} map[string]string "Not found"
// @Router /suppliers/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := inventory.ParseID(c)
	if err != nil {
		return inventory.Fail(c, l, "Invalid supplier id", err)
	}
	var in models.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return inventory.Fail(c, l, "Invalid supplier body", models.Invalid("%s", err.Error()))
	}
	sup, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return inventory.Fail(c, l, "Supplier update failed", err)
	}
	return c.JSON(sup)
}

// HandleDelete removes a supplier. Its products remain without a supplier.
// @Summary Delete Supplier
// @Tags suppliers
// @Security ApiKeyAuth
// @Param id path int true "Supplier ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /suppliers/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := inventory.ParseID(c)
	if err != nil {
		return inventory.Fail(c, l, "Invalid supplier id", err)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return inventory.Fail(c, l, "Supplier delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
