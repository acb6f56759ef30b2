package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the history endpoints into the server.
type Feature struct {
	service *Service
}

// NewFeature builds the history feature. It is disabled when db is nil.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{}
	if db != nil {
		f.service = NewService(db, logger)
	}
	return f
}

// Service returns the underlying service, or nil when disabled.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the feature name.
func (f *Feature) Name() string { return "history" }

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool { return f.service != nil }

// Load registers the feature's routes.
func (f *Feature) Load(router fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(router)
	return nil
}
