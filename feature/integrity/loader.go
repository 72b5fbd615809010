package integrity

import (
	"floorplan/core/storage"
	"floorplan/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface for integrity checks.
type Feature struct {
	service *Service
}

// NewFeature creates the integrity feature. renderPrefix is the folder
// published renders are written under.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, floors checks.FloorSource, renderPrefix string) *Feature {
	folders := []string{"floors"}
	if renderPrefix != "" {
		folders = append(folders, renderPrefix)
	}
	return &Feature{service: NewService(client, bucket, logger, db, floors, folders)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
