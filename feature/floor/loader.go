package floor

import (
	"fmt"

	"floorplan/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	service *Service
	handler *Handler
}

// NewFeature creates a new floor feature.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, allowEdit bool, logger *zap.Logger) *Feature {
	repo := NewRepository(db)
	svc := NewService(repo, client, bucket, logger)
	return &Feature{
		repo:    repo,
		service: svc,
		handler: NewHandler(svc, allowEdit),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "floor"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the floor tables, verifies them and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	if err := f.repo.Verify(); err != nil {
		return fmt.Errorf("floor schema check failed: %w", err)
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the floor service to the features built on it.
func (f *Feature) Service() *Service {
	return f.service
}
