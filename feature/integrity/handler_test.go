package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"floorplan/core/storage/mocks"
	"floorplan/feature/floor/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, floors memFloors) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), setupTestDB(t), floors, nil)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func decodeBody(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyChannel())

	status, body := decodeBody(t, app, "/integrity/structure")
	assert.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyChannel())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	status, body := decodeBody(t, app, "/integrity/structure?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleStructureCheck_BucketMissing(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	status, body := decodeBody(t, app, "/integrity/structure")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "does not exist")
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	status, body := decodeBody(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "sqlite", body["driver"])
}

func TestHandleFloorsCheck(t *testing.T) {
	floors := memFloors{{
		ID: "main",
		Tables: []models.Table{
			{ID: "t1", Placement: models.Placement{Width: 80, Height: 80}, Status: models.StatusAvailable, TableType: models.TableBox},
		},
		PointsOfInterest: []models.PointOfInterest{
			{ID: "t1", Placement: models.Placement{Width: 80, Height: 80}, Type: models.POIPlant},
		},
	}}
	app, _ := setupTestApp(t, floors)

	status, body := decodeBody(t, app, "/integrity/floors")
	assert.Equal(t, 200, status)
	problems := body["problems"].([]any)
	require.Len(t, problems, 1)
	assert.Equal(t, "main", problems[0].(map[string]any)["id"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyChannel())

	status, body := decodeBody(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "structure")
	assert.Contains(t, body, "schema")
	assert.Contains(t, body, "floors")
}
