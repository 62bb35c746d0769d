package integrity

import (
	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/data", h.HandleDataCheck)
}

// HandleIntegrityCheck runs every check without fixing anything.
// @Summary Run All Integrity Checks
// @Description Performs the storage, schema and data checks. A check that fails to run is listed under errors and does not stop the others.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} Summary "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running all integrity checks")

	summary := h.service.RunAll(c.Context())
	if !summary.Healthy {
		l.Warn("Integrity problems found", zap.Any("errors", summary.Errors))
	}
	return c.JSON(summary)
}

// HandleStorageCheck checks and optionally fixes the bucket layout.
// @Summary Check Storage
// @Description Checks that the bucket and its report folders exist. With fix=true the bucket and missing folders are created.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.OK() {
		return c.JSON(fiber.Map{"status": "ok", "report": report})
	}
	l.Warn("Storage layout incomplete",
		zap.Bool("bucket_exists", report.BucketExists), zap.Strings("missing", report.Missing))
	if !fix {
		return c.JSON(fiber.Map{"status": "checked", "report": report})
	}

	l.Info("Attempting to fix storage layout")
	if err := h.service.FixStorage(c.Context(), report); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fix storage",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "fixed", "report": report})
}

// HandleSchemaCheck compares the database with the models.
// @Summary Check Schema
// @Description Validates that every table has the model's columns and that explicitly typed columns match.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatches found", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleDataCheck checks and optionally repairs the inventory rows.
// @Summary Check Data
// @Description Finds products referencing missing suppliers, alerts of deleted products and negative values. With fix=true orphans are repaired.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Param fix query boolean false "Detach orphan products and delete orphan alerts"
// @Success 200 {object} map[string]interface{} "Data Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/data [get]
func (h *Handler) HandleDataCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckData(c.Context())
	if err != nil {
		l.Error("Data check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.OK() {
		return c.JSON(fiber.Map{"status": "ok", "report": report})
	}
	l.Warn("Data problems detected",
		zap.Int("orphan_products", len(report.OrphanProducts)),
		zap.Int("orphan_alerts", len(report.OrphanAlerts)),
		zap.Int("negative_stock", len(report.NegativeStock)),
		zap.Int("invalid_demand", len(report.InvalidDemand)),
	)
	if !fix || !report.Fixable() {
		return c.JSON(fiber.Map{"status": "checked", "report": report})
	}

	l.Info("Attempting to fix data")
	fixed, err := h.service.FixData(c.Context(), report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fix data",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "fixed", "report": fixed})
}
