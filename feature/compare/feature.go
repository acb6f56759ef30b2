package compare

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	core "ddrconf/core/compare"
	"ddrconf/core/storage"
	"ddrconf/core/timing"
)

// Feature wires the comparison endpoints into the server.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature builds the comparison feature on top of object storage.
// The feature is disabled when no storage client is available.
func NewFeature(opts core.Options, log *zap.Logger, client storage.Client, bucket, left, right string, ttl time.Duration) *Feature {
	f := &Feature{enabled: client != nil}
	if !f.enabled {
		return f
	}
	src := &timing.ObjectSource{Client: client, Bucket: bucket}
	service := NewService(opts, log)
	cache := newTimingCache(src, ttl)
	f.handler = NewHandler(service, cache, client, bucket, left, right)
	return f
}

// Name returns the feature name.
func (f *Feature) Name() string { return "compare" }

// IsEnabled reports whether the feature can serve requests.
func (f *Feature) IsEnabled() bool { return f.enabled }

// Load registers the feature's routes.
func (f *Feature) Load(router fiber.Router) error {
	f.handler.RegisterRoutes(router)
	return nil
}
