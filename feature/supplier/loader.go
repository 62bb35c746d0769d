package supplier

import (
	"inventory-manager/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature mounts the supplier CRUD routes.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new Supplier feature.
func NewFeature(db *gorm.DB, cache *snapshot.Store, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(db, cache, logger))}
}

func (f *Feature) Name() string {
	return "supplier"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
