package loader_test

import (
	"context"
	"errors"
	"testing"

	"floorplan/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name     string
	enabled  bool
	loadErr  error
	closeErr error
	events   *[]string
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }

func (f *fakeFeature) Load(app fiber.Router) error {
	*f.events = append(*f.events, "load:"+f.name)
	return f.loadErr
}

func (f *fakeFeature) Close(ctx context.Context) error {
	*f.events = append(*f.events, "close:"+f.name)
	return f.closeErr
}

func TestManager_LoadAndClose(t *testing.T) {
	var events []string
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "floor", enabled: true, events: &events})
	mgr.Register(&fakeFeature{name: "disabled", enabled: false, events: &events})
	mgr.Register(&fakeFeature{name: "editor", enabled: true, events: &events})

	require.NoError(t, mgr.LoadAll(fiber.New()))
	require.NoError(t, mgr.CloseAll(context.Background()))

	assert.Equal(t, []string{"load:floor", "load:editor", "close:editor", "close:floor"}, events)
	assert.Len(t, mgr.Features(), 3)
}

func TestManager_LoadFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "floor", enabled: true, events: &events})
	mgr.Register(&fakeFeature{name: "render", enabled: true, loadErr: boom, events: &events})
	mgr.Register(&fakeFeature{name: "editor", enabled: true, events: &events})

	err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "render")

	// Only features that loaded are closed.
	require.NoError(t, mgr.CloseAll(context.Background()))
	assert.Equal(t, []string{"load:floor", "load:render", "close:floor"}, events)
}

func TestManager_CloseErrorsJoined(t *testing.T) {
	var events []string
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "a", enabled: true, closeErr: errors.New("a failed"), events: &events})
	mgr.Register(&fakeFeature{name: "b", enabled: true, closeErr: errors.New("b failed"), events: &events})
	require.NoError(t, mgr.LoadAll(fiber.New()))

	err := mgr.CloseAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a failed")
	assert.Contains(t, err.Error(), "b failed")
}
