package checks

import (
	"context"
	"errors"
	"testing"

	"floorplan/core/storage/mocks"
	"floorplan/feature/floor/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubFloors struct {
	floors map[string]models.Floor
	err    error
}

func (s stubFloors) ListFloors(ctx context.Context) ([]models.FloorSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.FloorSummary, 0, len(s.floors))
	for _, f := range s.floors {
		out = append(out, models.FloorSummary{ID: f.ID, Name: f.Name})
	}
	return out, nil
}

func (s stubFloors) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	f, ok := s.floors[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &f, nil
}

func validTable(id string) models.Table {
	return models.Table{
		ID:        id,
		Placement: models.Placement{XAxis: 10, YAxis: 10, Width: 80, Height: 80},
		Status:    models.StatusAvailable,
		TableType: models.TableCircle,
	}
}

func TestCheckFloor(t *testing.T) {
	f := models.Floor{
		ID:     "main",
		Tables: []models.Table{validTable("a"), validTable("a")},
		Walls:  []models.Wall{{ID: "w1", Thickness: 0, Style: models.WallSolid}},
	}

	problems := CheckFloor(f)
	assert.Contains(t, problems, "duplicate element id a")
	require.Len(t, problems, 2)
	assert.Contains(t, problems[1], "wall w1")

	assert.Empty(t, CheckFloor(models.Floor{ID: "ok", Tables: []models.Table{validTable("t1")}}))
}

func TestCheckFloors(t *testing.T) {
	floors := stubFloors{floors: map[string]models.Floor{
		"clean": {ID: "clean", Tables: []models.Table{validTable("t1")}},
		"bg":    {ID: "bg", BackgroundImage: "floors/bg/background.png"},
	}}

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "floorplan", mock.Anything).Return(closedChannel())

	reports, err := CheckFloors(context.Background(), floors, mockClient, "floorplan")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "bg", reports[0].ID)
	assert.Contains(t, reports[0].Problems[0], "missing from storage")
}

func TestCheckFloors_BackgroundPresent(t *testing.T) {
	floors := stubFloors{floors: map[string]models.Floor{
		"bg": {ID: "bg", BackgroundImage: "floors/bg/background.png"},
	}}

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "floorplan", mock.Anything).
		Return(closedChannel(minio.ObjectInfo{Key: "floors/bg/background.png"}))

	reports, err := CheckFloors(context.Background(), floors, mockClient, "floorplan")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestCheckFloors_ListError(t *testing.T) {
	_, err := CheckFloors(context.Background(), stubFloors{err: errors.New("db down")}, nil, "floorplan")
	assert.ErrorContains(t, err, "db down")
}
