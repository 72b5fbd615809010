package checks

import (
	"context"
	"fmt"

	"floorplan/core/storage"
	"floorplan/feature/floor/models"

	"github.com/minio/minio-go/v7"
)

// FloorSource lists and loads stored floors.
type FloorSource interface {
	ListFloors(ctx context.Context) ([]models.FloorSummary, error)
	GetFloor(ctx context.Context, id string) (*models.Floor, error)
}

// FloorReport lists what is wrong with one floor.
type FloorReport struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Problems []string `json:"problems"`
}

// CheckFloor validates every element of a floor.
func CheckFloor(f models.Floor) []string {
	var problems []string
	for _, id := range f.DuplicateIDs() {
		problems = append(problems, fmt.Sprintf("duplicate element id %s", id))
	}
	for _, t := range f.Tables {
		if err := t.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("table %s: %v", t.ID, err))
		}
	}
	for _, p := range f.PointsOfInterest {
		if err := p.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("point of interest %s: %v", p.ID, err))
		}
	}
	for _, w := range f.Walls {
		if err := w.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("wall %s: %v", w.ID, err))
		}
	}
	return problems
}

// CheckFloors validates all stored floors and, when client is set, that their
// background images exist. Only floors with problems are returned.
func CheckFloors(ctx context.Context, floors FloorSource, client storage.Client, bucket string) ([]FloorReport, error) {
	summaries, err := floors.ListFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}

	reports := []FloorReport{}
	for _, s := range summaries {
		f, err := floors.GetFloor(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load floor %s: %w", s.ID, err)
		}

		problems := CheckFloor(*f)
		if client != nil && f.BackgroundImage != "" && !objectExists(ctx, client, bucket, f.BackgroundImage) {
			problems = append(problems, fmt.Sprintf("background %s is missing from storage", f.BackgroundImage))
		}
		if len(problems) > 0 {
			reports = append(reports, FloorReport{ID: f.ID, Name: f.Name, Problems: problems})
		}
	}
	return reports, nil
}

func objectExists(ctx context.Context, client storage.Client, bucket, key string) bool {
	opts := minio.ListObjectsOptions{Prefix: key, MaxKeys: 1}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		return obj.Err == nil && obj.Key == key
	}
	return false
}
