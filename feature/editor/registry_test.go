package editor_test

import (
	"testing"
	"time"

	"floorplan/feature/editor"
	"floorplan/feature/floor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := editor.NewRegistry(testFloor())

	assert.Equal(t, models.KindTable, reg.KindOf("t1"))
	assert.Equal(t, models.KindPOI, reg.KindOf("p1"))
	assert.Equal(t, models.KindWall, reg.KindOf("w1"))
	assert.Equal(t, models.KindNone, reg.KindOf("nope"))
	assert.Equal(t, models.KindNone, reg.KindOf(""))

	p, ok := reg.Placement("p1")
	require.True(t, ok)
	assert.Equal(t, 120.0, p.Width)

	_, ok = reg.Placement("w1")
	assert.False(t, ok, "walls have no placement")

	w, ok := reg.Wall("w1")
	require.True(t, ok)
	assert.Equal(t, 10.0, w.EndX)

	_, ok = reg.Table("p1")
	assert.False(t, ok)
}

func TestRegistry_MutationsStayLocal(t *testing.T) {
	floor := testFloor()
	reg := editor.NewRegistry(floor)

	assert.True(t, reg.SetPosition("t1", 5, 6))
	assert.True(t, reg.SetSize("t1", 70, 80))
	assert.True(t, reg.SetRotation("t1", 90))
	assert.False(t, reg.SetPosition("w1", 1, 1))
	assert.False(t, reg.SetSize("nope", 1, 1))

	table, _ := reg.Table("t1")
	assert.Equal(t, models.Placement{XAxis: 5, YAxis: 6, Width: 70, Height: 80, Rotation: 90}, table.Placement)
	assert.Equal(t, 50.0, floor.Tables[0].XAxis, "caller's floor is untouched")

	out := reg.Floor()
	out.Tables[0].XAxis = 99
	table, _ = reg.Table("t1")
	assert.Equal(t, 5.0, table.XAxis, "returned floor is a copy")
}

func TestRegistry_RemoveReindexes(t *testing.T) {
	reg := editor.NewRegistry(testFloor())

	assert.Equal(t, models.KindTable, reg.Remove("t1"))
	assert.Equal(t, models.KindNone, reg.Remove("t1"))

	table, ok := reg.Table("t2")
	require.True(t, ok)
	assert.Equal(t, 2, table.TableNumber)

	reg.AddWalls([]models.Wall{{ID: "w2"}, {ID: "w3"}})
	assert.Equal(t, models.KindWall, reg.KindOf("w3"))
	assert.Equal(t, models.KindWall, reg.Remove("w1"))
	w, ok := reg.Wall("w3")
	require.True(t, ok)
	assert.Equal(t, "w3", w.ID)
	assert.Len(t, reg.Floor().Walls, 2)
}

func TestConfig_Settings(t *testing.T) {
	s := editor.Config{}.Settings()
	assert.Equal(t, editor.DefaultSettings(), s)

	cfg := editor.Config{GridSize: 5, DoubleClickMS: 500, MinWidth: 10, MinHeight: 12}
	s = cfg.Settings()
	assert.Equal(t, 5.0, s.GridSize)
	assert.Equal(t, 500*time.Millisecond, s.DoubleClickWindow)
	assert.Equal(t, 10.0, s.MinWidth)
	assert.Equal(t, 12.0, s.MinHeight)

	assert.Equal(t, editor.WallSettings{Thickness: 4, Color: "#333333", Style: models.WallSolid}, editor.Config{WallStyle: "zigzag"}.WallDefaults())
	assert.Equal(t, models.WallDashed, editor.Config{WallStyle: "dashed"}.WallDefaults().Style)

	assert.Equal(t, 30*time.Minute, editor.Config{}.SessionTTL())
	assert.Equal(t, 2*time.Minute, editor.Config{SessionTTLMinutes: 2}.SessionTTL())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "idle", editor.ModeIdle.String())
	assert.Equal(t, "dragging", editor.ModeDragging.String())
	assert.Equal(t, "resizing", editor.ModeResizing.String())
	assert.Equal(t, "wall_drawing", editor.ModeWallDrawing.String())
	assert.Equal(t, "unknown", editor.Mode(42).String())
}
