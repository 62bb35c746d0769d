package integrity

import (
	"inventory-manager/core/snapshot"
	"inventory-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature exposes the storage, schema and data checks over HTTP.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the checks against the report bucket and the database.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cache *snapshot.Store) *Feature {
	svc := NewService(client, bucket, logger, db, cache)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

func (f *Feature) Name() string {
	return "integrity"
}

func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
