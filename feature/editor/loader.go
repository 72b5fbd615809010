package editor

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	janitor *Janitor
}

// NewFeature creates a new editor feature.
func NewFeature(cfg Config, allowEdit bool, floors FloorSource, persister Persister, logger *zap.Logger) (*Feature, error) {
	svc := NewService(cfg, floors, persister, logger)
	janitor, err := NewJanitor(svc, cfg.JanitorSpec, logger)
	if err != nil {
		_ = svc.Shutdown(context.Background())
		return nil, err
	}
	return &Feature{
		service: svc,
		handler: NewHandler(svc, allowEdit),
		janitor: janitor,
	}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "editor"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes and starts the idle session sweep.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.janitor.Start()
	return nil
}

// Service exposes the session service.
func (f *Feature) Service() *Service {
	return f.service
}

// Close stops the sweep, ends every session and drains pending writes.
func (f *Feature) Close(ctx context.Context) error {
	f.janitor.Stop()
	return f.service.Shutdown(ctx)
}
