package editor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"floorplan/feature/editor"
	"floorplan/feature/floor/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory floor store.
type memStore struct {
	mu      sync.Mutex
	floor   models.Floor
	updates int
}

func (m *memStore) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != m.floor.ID {
		return nil, fmt.Errorf("floor %s: %w", id, models.ErrNotFound)
	}
	f := m.floor.Clone()
	return &f, nil
}

func (m *memStore) UpdatePlacement(ctx context.Context, floorID string, kind models.ElementKind, id string, p models.Placement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	return nil
}

func (m *memStore) DeleteElement(ctx context.Context, floorID string, kind models.ElementKind, id string) error {
	return nil
}

func (m *memStore) AddWalls(ctx context.Context, floorID string, walls []models.Wall) error {
	return nil
}

func (m *memStore) ReplaceElements(ctx context.Context, floor models.Floor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floor = floor
	return nil
}

func setupApp(t *testing.T, allowEdit bool) (*fiber.App, *editor.Feature) {
	t.Helper()
	store := &memStore{floor: testFloor()}
	feature, err := editor.NewFeature(editor.Config{JanitorSpec: "@every 1h"}, allowEdit, store, store, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = feature.Close(context.Background()) })

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, feature
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHandler_SessionLifecycle(t *testing.T) {
	app, feature := setupApp(t, true)

	status, body := doJSON(t, app, "POST", "/editor/sessions", `{"floorId":"floor-1"}`)
	require.Equal(t, fiber.StatusCreated, status)
	id := body["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, feature.Service().Count())

	events := `[
		{"type":"pointer_down","target":{"id":"t1"},"clientX":500,"clientY":250,"rect":{"width":1000,"height":500}},
		{"type":"pointer_move","clientX":750,"clientY":250,"rect":{"width":1000,"height":500}},
		{"type":"pointer_up","rect":{"width":1000,"height":500}}
	]`
	status, body = doJSON(t, app, "POST", "/editor/sessions/"+id+"/events", events)
	require.Equal(t, fiber.StatusOK, status)

	intents := body["intents"].([]any)
	assert.Len(t, intents, 6)
	state := body["state"].(map[string]any)
	assert.Equal(t, "idle", state["mode"])
	assert.Equal(t, "t1", state["selectedId"])

	status, body = doJSON(t, app, "GET", "/editor/sessions/"+id, "")
	require.Equal(t, fiber.StatusOK, status)
	floor := body["floor"].(map[string]any)
	table := floor["tables"].([]any)[0].(map[string]any)
	assert.Equal(t, 75.0, table["xAxis"])

	status, _ = doJSON(t, app, "DELETE", "/editor/sessions/"+id, "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "GET", "/editor/sessions/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_OpenErrors(t *testing.T) {
	app, _ := setupApp(t, true)

	status, body := doJSON(t, app, "POST", "/editor/sessions", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "floorId is required", body["error"])

	status, _ = doJSON(t, app, "POST", "/editor/sessions", `{"floorId":"unknown"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_BadEvents(t *testing.T) {
	app, _ := setupApp(t, true)
	_, body := doJSON(t, app, "POST", "/editor/sessions", `{"floorId":"floor-1"}`)
	id := body["id"].(string)

	status, _ := doJSON(t, app, "POST", "/editor/sessions/"+id+"/events", `{"type":"rotate"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = doJSON(t, app, "POST", "/editor/sessions/"+id+"/events", `[{"type":"explode"}]`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "unknown event type")

	status, _ = doJSON(t, app, "POST", "/editor/sessions/missing/events", `[]`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_Reconcile(t *testing.T) {
	app, _ := setupApp(t, true)
	_, body := doJSON(t, app, "POST", "/editor/sessions", `{"floorId":"floor-1"}`)
	id := body["id"].(string)

	status, body := doJSON(t, app, "GET", "/editor/sessions/"+id+"/reconcile", "")
	require.Equal(t, fiber.StatusOK, status)
	plan := body["plan"].(map[string]any)
	summary := plan["summary"].(map[string]any)
	assert.Equal(t, 4.0, summary["total_items"])
	assert.Equal(t, 0.0, summary["mismatches"])

	status, _ = doJSON(t, app, "GET", "/editor/sessions/"+id+"/reconcile?strategy=persist", "")
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)

	status, _ = doJSON(t, app, "POST", "/editor/sessions/"+id+"/reconcile?strategy=merge", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = doJSON(t, app, "POST", "/editor/sessions/"+id+"/reconcile?strategy=revert&dry_run=true", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["dry_run"])
}

func TestHandler_BookingMode(t *testing.T) {
	app, _ := setupApp(t, false)
	_, body := doJSON(t, app, "POST", "/editor/sessions", `{"floorId":"floor-1"}`)
	id := body["id"].(string)
	state := body["state"].(map[string]any)
	assert.Equal(t, false, state["allowEdit"])

	status, body := doJSON(t, app, "POST", "/editor/sessions/"+id+"/events", `[{"type":"rotate","id":"t1"}]`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["intents"])

	status, _ = doJSON(t, app, "POST", "/editor/sessions/"+id+"/reconcile?strategy=persist", "")
	assert.Equal(t, fiber.StatusForbidden, status)
}
