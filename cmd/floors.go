package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"floorplan/core/config"
	"floorplan/core/database"
	"floorplan/core/storage"
	"floorplan/feature/floor"
	"floorplan/feature/floor/models"

	"go.uber.org/zap"
)

// openFloors connects the database and storage and returns the floor service
// the CLI commands share.
func openFloors(cfg *config.Config, l *zap.Logger) (*floor.Service, storage.Client, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := floor.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate floor schema: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	return floor.NewService(repo, client, cfg.Storage.Bucket, l), client, nil
}

// readFloorFile loads a floor document from a JSON file.
func readFloorFile(path string) (models.Floor, error) {
	var f models.Floor
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read floor file: %w", err)
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse floor file %s: %w", path, err)
	}
	return f, nil
}

// writeFloorFile stores a floor document as indented JSON.
func writeFloorFile(path string, f models.Floor) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode floor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write floor file: %w", err)
	}
	return nil
}
