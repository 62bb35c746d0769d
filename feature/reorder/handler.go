package reorder

import (
	"strconv"

	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for reorder reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reorder routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reorder")
	group.Get("/", h.HandleReport)
	group.Get("/suggestions", h.HandleSuggestions)
	group.Get("/alerts", h.HandleListAlerts)
	group.Post("/alerts", h.HandleRecordAlerts)
	group.Post("/export", h.HandleExport)
	group.Get("/exports", h.HandleListExports)
	group.Get("/exports/:name", h.HandleGetExport)
	group.Delete("/exports/:name", h.HandleDeleteExport)
}

// parseOverrides reads the optional z and lead_time query parameters.
func parseOverrides(c *fiber.Ctx) (Overrides, error) {
	var o Overrides
	for param, dst := range map[string]**float64{"z": &o.ServiceLevel, "lead_time": &o.LeadTime} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return o, models.Invalid("%s must be a number, got %q", param, raw)
		}
		*dst = &v
	}
	return o, nil
}

// HandleReport returns the ranked reorder candidates.
// @Summary Reorder Candidates
// @Description Products at or below their reorder point, most urgent first. Products without demand data fall back to their reorder level and come last.
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Param z query number false "Service level factor" default(1.65)
// @Param lead_time query number false "Lead time in days for products without their own" default(7)
// @Success 200 {object} reorder.Report "Report"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reorder [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	o, err := parseOverrides(c)
	if err != nil {
		return inventory.Fail(c, l, "Invalid reorder parameters", err)
	}
	report, err := h.service.Report(c.Context(), o)
	if err != nil {
		return inventory.Fail(c, l, "Reorder report failed", err)
	}
	return c.JSON(report)
}

// HandleSuggestions returns heuristic figures for every product.
// @Summary Reorder Suggestions
// @Description Safety stock and reorder point for every product, estimating demand from stock on hand where it is unknown.
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} reorder.SuggestionEntry "Suggestions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reorder/suggestions [get]
func (h *Handler) HandleSuggestions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Suggestions(c.Context())
	if err != nil {
		return inventory.Fail(c, l, "Reorder suggestions failed", err)
	}
	return c.JSON(out)
}

// HandleRecordAlerts stores an alert for every current candidate.
// @Summary Record Reorder Alerts
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Param z query number false "Service level factor"
// @Param lead_time query number false "Default lead time in days"
// @Success 201 {array} models.ReorderAlert "Stored alerts"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reorder/alerts [post]
func (h *Handler) HandleRecordAlerts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	o, err := parseOverrides(c)
	if err != nil {
		return inventory.Fail(c, l, "Invalid reorder parameters", err)
	}
	alerts, err := h.service.RecordAlerts(c.Context(), o)
	if err != nil {
		return inventory.Fail(c, l, "Recording reorder alerts failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(alerts)
}

// HandleListAlerts returns stored alerts, newest first.
// @Summary List Reorder Alerts
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Maximum number of alerts" default(50)
// @Success 200 {array} models.ReorderAlert "Alerts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reorder/alerts [get]
func (h *Handler) HandleListAlerts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	alerts, err := h.service.Alerts(c.Context(), c.QueryInt("limit", DefaultAlertLimit))
	if err != nil {
		return inventory.Fail(c, l, "Listing reorder alerts failed", err)
	}
	return c.JSON(alerts)
}

// HandleExport writes the current report to object storage.
// @Summary Export Reorder Report
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Param z query number false "Service level factor"
// @Param lead_time query number false "Default lead time in days"
// @Success 201 {object} reorder.ExportResult "Export"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reorder/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	o, err := parseOverrides(c)
	if err != nil {
		return inventory.Fail(c, l, "Invalid reorder parameters", err)
	}
	res, err := h.service.Export(c.Context(), o)
	if err != nil {
		return inventory.Fail(c, l, "Reorder export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleListExports lists exported reports.
// @Summary List Reorder Exports
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} reorder.ExportInfo "Exports"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reorder/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	exports, err := h.service.Exports(c.Context())
	if err != nil {
		return inventory.Fail(c, l, "Listing reorder exports failed", err)
	}
	return c.JSON(exports)
}

// HandleGetExport returns a stored report.
// @Summary Get Reorder Export
// @Tags reorder
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Export name (e.g. '20260101T120000.000Z.json')"
// @Success 200 {object} reorder.Report "Report"
// @Failure 404 {object} map[string]string "Not found"
// @Router /reorder/exports/{name} [get]
func (h *Handler) HandleGetExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.OpenExport(c.Context(), c.Params("name"))
	if err != nil {
		return inventory.Fail(c, l, "Reading reorder export failed", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandleDeleteExport removes a stored report.
// @Summary Delete Reorder Export
// @Tags reorder
// @Security ApiKeyAuth
// @Param name path string true "Export name"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid name"
// @Router /reorder/exports/{name} [delete]
func (h *Handler) HandleDeleteExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteExport(c.Context(), c.Params("name")); err != nil {
		return inventory.Fail(c, l, "Deleting reorder export failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
