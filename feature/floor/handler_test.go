package floor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"floorplan/core/database"
	"floorplan/core/storage/mocks"
	"floorplan/feature/editor"
	"floorplan/feature/floor"
	"floorplan/feature/floor/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The floor service is the store behind editing sessions.
var (
	_ editor.FloorSource = (*floor.Service)(nil)
	_ editor.Persister   = (*floor.Service)(nil)
)

func setupApp(t *testing.T, allowEdit bool) (*fiber.App, *mocks.Client) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	client := new(mocks.Client)
	feature := floor.NewFeature(db, client, "floorplan", allowEdit, zap.NewNop())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, client
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func createFloor(t *testing.T, app *fiber.App) models.Floor {
	status, body := doJSON(t, app, "POST", "/floors", models.CreateFloorRequest{Name: "Ground"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	var f models.Floor
	require.NoError(t, json.Unmarshal(body, &f))
	return f
}

func TestHandler_FloorLifecycle(t *testing.T) {
	app, _ := setupApp(t, true)
	f := createFloor(t, app)

	status, body := doJSON(t, app, "POST", "/floors/"+f.ID+"/tables", models.AddTableRequest{ID: "t1", TableNumber: 1, TableType: models.TableCircle})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, _ = doJSON(t, app, "POST", "/floors/"+f.ID+"/tables", models.AddTableRequest{ID: "t1"})
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = doJSON(t, app, "POST", "/floors/"+f.ID+"/pois", models.AddPOIRequest{ID: "p1", Type: models.POIBar})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	walls := []models.Wall{{ID: "w1", EndX: 50, Thickness: 4, Color: "#333333", Style: models.WallSolid}}
	status, _ = doJSON(t, app, "POST", "/floors/"+f.ID+"/walls", walls)
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, "PATCH", "/floors/"+f.ID, models.UpdateFloorRequest{Name: "First floor"})
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body = doJSON(t, app, "GET", "/floors/"+f.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var got models.Floor
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "First floor", got.Name)
	assert.Len(t, got.Tables, 1)
	assert.Len(t, got.PointsOfInterest, 1)
	assert.Len(t, got.Walls, 1)

	status, body = doJSON(t, app, "POST", "/floors/"+f.ID+"/walls/undo", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"id":"w1"`)

	status, _ = doJSON(t, app, "POST", "/floors/"+f.ID+"/walls/undo", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, "DELETE", "/floors/"+f.ID+"/pois/p1", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body = doJSON(t, app, "GET", "/floors", nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []models.FloorSummary
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Tables)
	assert.Equal(t, 0, list[0].Points)

	status, _ = doJSON(t, app, "DELETE", "/floors/"+f.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = doJSON(t, app, "GET", "/floors/"+f.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_BadRequests(t *testing.T) {
	app, _ := setupApp(t, true)
	f := createFloor(t, app)

	status, _ := doJSON(t, app, "POST", "/floors", models.CreateFloorRequest{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/floors/"+f.ID+"/walls", map[string]string{"not": "an array"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "PATCH", "/floors/"+f.ID+"/tables/missing", models.TablePatch{})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_BookingMode(t *testing.T) {
	app, _ := setupApp(t, false)

	status, _ := doJSON(t, app, "POST", "/floors", models.CreateFloorRequest{Name: "Ground"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doJSON(t, app, "GET", "/floors", nil)
	assert.Equal(t, fiber.StatusOK, status)

	capacity := 8
	status, _ = doJSON(t, app, "PATCH", "/floors/f1/tables/t1", models.TablePatch{Capacity: &capacity})
	assert.Equal(t, fiber.StatusForbidden, status)

	// A status-only patch passes the mode check and reaches the store.
	reserved := models.StatusReserved
	status, _ = doJSON(t, app, "PATCH", "/floors/f1/tables/t1", models.TablePatch{Status: &reserved})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_Background(t *testing.T) {
	app, client := setupApp(t, true)
	f := createFloor(t, app)
	key := "floors/" + f.ID + "/background.png"

	client.On("PutObject", mock.Anything, "floorplan", key, mock.Anything, int64(4), minio.PutObjectOptions{ContentType: "image/png"}).
		Return(minio.UploadInfo{}, nil)
	client.On("GetObject", mock.Anything, "floorplan", key, minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader("\x89PNG")), nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="plan.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("PUT", "/floors/"+f.ID+"/background", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/floors/"+f.ID+"/background", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "\x89PNG", string(data))

	client.AssertExpectations(t)
}

func TestFeature_ServesEditorSessions(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	feature := floor.NewFeature(db, nil, "floorplan", true, zap.NewNop())
	require.NoError(t, feature.Load(fiber.New()))

	ctx := context.Background()
	f, err := feature.Service().CreateFloor(ctx, models.CreateFloorRequest{
		Name:   "Ground",
		Tables: []models.Table{{ID: "t1", Placement: models.Placement{XAxis: 50, YAxis: 50}}},
	})
	require.NoError(t, err)

	svc := editor.NewService(editor.Config{}, feature.Service(), feature.Service(), zap.NewNop())
	defer svc.Shutdown(ctx)

	snap, err := svc.Open(ctx, f.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "t1", snap.Floor.Tables[0].ID)

	plan, _, err := svc.Reconcile(ctx, snap.ID, "", true)
	require.NoError(t, err)
	assert.True(t, plan.Summary.InSync())
}
