package prices

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new prices feature. The feed may be nil when only
// the query endpoints are needed; db must be a connected price database.
func NewFeature(feed Feed, db *gorm.DB, logger *zap.Logger, currency string) *Feature {
	svc := NewService(feed, db, logger, currency)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service returns the underlying price service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "prices"
}

// IsEnabled checks if the feature is enabled. The feature only loads when
// a database connection is present.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load migrates the snapshot schema and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
