package integrity

import (
	"context"

	"floorplan/core/storage"
	"floorplan/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	db      *gorm.DB
	floors  checks.FloorSource
	folders []string
}

// NewService creates a new integrity service. folders are the storage prefixes
// the structure check expects; nil uses checks.RequiredFolders.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, floors checks.FloorSource, folders []string) *Service {
	if folders == nil {
		folders = checks.RequiredFolders
	}
	return &Service{
		client:  client,
		bucket:  bucket,
		logger:  logger,
		db:      db,
		floors:  floors,
		folders: folders,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the floor tables with the row models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckFloors validates every stored floor.
func (s *Service) CheckFloors(ctx context.Context) ([]checks.FloorReport, error) {
	return checks.CheckFloors(ctx, s.floors, s.client, s.bucket)
}
