package editor_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"floorplan/core/geometry"
	"floorplan/core/viewport"
	"floorplan/feature/editor"
	"floorplan/feature/floor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas = viewport.Rect{Left: 0, Top: 0, Width: 1000, Height: 500}

func testFloor() models.Floor {
	return models.Floor{
		ID:   "floor-1",
		Name: "Main hall",
		Tables: []models.Table{
			{ID: "t1", Placement: models.Placement{XAxis: 50, YAxis: 50, Width: 60, Height: 40}, TableNumber: 1, Capacity: 4, Status: models.StatusAvailable, TableType: models.TableBox},
			{ID: "t2", Placement: models.Placement{XAxis: 20, YAxis: 20, Width: 60, Height: 60}, TableNumber: 2, Capacity: 2, Status: models.StatusAvailable, TableType: models.TableCircle},
		},
		PointsOfInterest: []models.PointOfInterest{
			{ID: "p1", Placement: models.Placement{XAxis: 10, YAxis: 10, Width: 120, Height: 40}, Type: models.POIBar, Name: "Bar"},
		},
		Walls: []models.Wall{
			{ID: "w1", StartX: 0, StartY: 0, EndX: 10, EndY: 0, Thickness: 4, Color: "#333333", Style: models.WallSolid},
		},
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("wall-%d", n)
	}
}

func newEngine(opts ...editor.Option) *editor.Engine {
	opts = append([]editor.Option{editor.WithIDGenerator(sequentialIDs())}, opts...)
	return editor.NewEngine(testFloor(), opts...)
}

func down(id string, x, y float64) editor.PointerDown {
	return editor.PointerDown{Target: editor.Target{ID: id}, Client: geometry.Point{X: x, Y: y}, Rect: canvas}
}

func move(x, y float64) editor.PointerMove {
	return editor.PointerMove{Client: geometry.Point{X: x, Y: y}, Rect: canvas}
}

func up() editor.PointerUp {
	return editor.PointerUp{Rect: canvas}
}

func click(x, y float64, at time.Time, mods editor.Modifiers) editor.PointerDown {
	return editor.PointerDown{Client: geometry.Point{X: x, Y: y}, Rect: canvas, At: at, Modifiers: mods}
}

func effectsOf[T editor.Effect](effects []editor.Effect) []T {
	var out []T
	for _, e := range effects {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	reg := editor.NewRegistry(testFloor())
	env := editor.Env{Elements: reg, Settings: editor.DefaultSettings(), NewID: sequentialIDs()}

	s := editor.NewState(true, editor.WallSettings{Thickness: 4, Color: "#333333", Style: models.WallSolid})
	s, _ = editor.Transition(s, editor.SetDrawingMode{Mode: editor.DrawWall}, env)
	s, _ = editor.Transition(s, click(100, 50, time.Unix(0, 0), editor.Modifiers{}), env)
	require.Len(t, s.WallPoints, 1)

	next, _ := editor.Transition(s, click(500, 50, time.Unix(10, 0), editor.Modifiers{}), env)

	assert.Len(t, s.WallPoints, 1)
	assert.Len(t, next.WallPoints, 2)
}

func TestDrag_ClampScenario(t *testing.T) {
	e := newEngine()

	effects := e.Dispatch(down("t1", 510, 260))
	assert.Equal(t, editor.ModeDragging, e.State().Mode)
	assert.Contains(t, effects, editor.Effect(editor.SelectionChanged{ID: "t1"}))
	assert.Contains(t, effects, editor.Effect(editor.ActiveTabChanged{Tab: editor.TabTables}))
	assert.Contains(t, effects, editor.Effect(editor.PointerListeners{Attached: true}))
	assert.Equal(t, geometry.Point{X: 10, Y: 10}, e.State().DragOffset)

	effects = e.Dispatch(move(1110, 260))
	moves := effectsOf[editor.PositionChanged](effects)
	require.Len(t, moves, 1)
	assert.InDelta(t, 94, moves[0].X, 1e-9)
	assert.InDelta(t, 50, moves[0].Y, 1e-9)

	table, ok := e.Registry().Table("t1")
	require.True(t, ok)
	assert.InDelta(t, 94, table.XAxis, 1e-9)

	effects = e.Dispatch(up())
	persisted := effectsOf[editor.PersistElement](effects)
	require.Len(t, persisted, 1)
	assert.Equal(t, "t1", persisted[0].ID)
	assert.Equal(t, models.KindTable, persisted[0].Kind)
	assert.InDelta(t, 94, persisted[0].Placement.XAxis, 1e-9)
	assert.Contains(t, effects, editor.Effect(editor.PointerListeners{Attached: false}))
	assert.Equal(t, editor.ModeIdle, e.State().Mode)
	assert.Empty(t, e.State().ActiveID)
}

func TestDrag_StaysInsideRotatedBounds(t *testing.T) {
	for _, rotation := range []float64{0, 30, 45, 90, 135, 180, 270} {
		t.Run(fmt.Sprintf("rotation %v", rotation), func(t *testing.T) {
			floor := testFloor()
			floor.Tables[0].Rotation = rotation
			e := editor.NewEngine(floor)

			rad := rotation * math.Pi / 180
			wPct, hPct := 60/canvas.Width*100, 40/canvas.Height*100
			maxX := 100 - (wPct*math.Abs(math.Cos(rad)) + hPct*math.Abs(math.Sin(rad)))
			maxY := 100 - (wPct*math.Abs(math.Sin(rad)) + hPct*math.Abs(math.Cos(rad)))

			e.Dispatch(down("t1", 500, 250))
			for _, x := range []float64{-500, -1, 0, 250, 999, 1000, 5000} {
				for _, y := range []float64{-500, 0, 125, 499, 2000} {
					effects := e.Dispatch(move(x, y))
					moves := effectsOf[editor.PositionChanged](effects)
					require.Len(t, moves, 1)
					assert.GreaterOrEqual(t, moves[0].X, 0.0)
					assert.LessOrEqual(t, moves[0].X, maxX+1e-9)
					assert.GreaterOrEqual(t, moves[0].Y, 0.0)
					assert.LessOrEqual(t, moves[0].Y, maxY+1e-9)
				}
			}
			e.Dispatch(up())
		})
	}
}

func TestDrag_RotatedClampUsesAxisPercentages(t *testing.T) {
	floor := testFloor()
	floor.Tables[0].Rotation = 90
	e := editor.NewEngine(floor)

	e.Dispatch(down("t1", 500, 250))
	moves := effectsOf[editor.PositionChanged](e.Dispatch(move(5000, 5000)))
	require.Len(t, moves, 1)

	// 60x40 on 1000x500 is 6% by 8%; rotated by 90 the x extent is the 8%.
	assert.InDelta(t, 92.0, moves[0].X, 1e-9)
	assert.InDelta(t, 94.0, moves[0].Y, 1e-9)
}

func TestDrag_LookupMissSkipsFrame(t *testing.T) {
	e := newEngine()
	e.Dispatch(down("t1", 510, 260))

	e.Dispatch(editor.Delete{ID: "t1"})
	assert.Empty(t, e.Dispatch(move(600, 260)))

	effects := e.Dispatch(up())
	assert.Empty(t, effectsOf[editor.PersistElement](effects))
	assert.Equal(t, []editor.Effect{editor.PointerListeners{Attached: false}}, effects)
	assert.Equal(t, editor.ModeIdle, e.State().Mode)
}

func TestResize_Handles(t *testing.T) {
	tests := []struct {
		handle editor.Handle
		dx, dy float64
		want   editor.Size
	}{
		{editor.HandleSE, 20, 10, editor.Size{Width: 80, Height: 50}},
		{editor.HandleSW, 20, 10, editor.Size{Width: 40, Height: 50}},
		{editor.HandleNE, 20, 10, editor.Size{Width: 80, Height: 30}},
		{editor.HandleNW, -20, -10, editor.Size{Width: 80, Height: 50}},
		{editor.HandleNW, 50, 50, editor.Size{Width: 30, Height: 20}},
		{editor.HandleSE, -100, -100, editor.Size{Width: 30, Height: 20}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %v,%v", tt.handle, tt.dx, tt.dy), func(t *testing.T) {
			e := newEngine()
			start := down("t1", 560, 270)
			start.Target.Handle = tt.handle
			e.Dispatch(start)
			assert.Equal(t, editor.ModeResizing, e.State().Mode)

			effects := e.Dispatch(move(560+tt.dx, 270+tt.dy))
			sizes := effectsOf[editor.SizeChanged](effects)
			require.Len(t, sizes, 1)
			assert.Equal(t, tt.want, editor.Size{Width: sizes[0].Width, Height: sizes[0].Height})

			effects = e.Dispatch(up())
			persisted := effectsOf[editor.PersistElement](effects)
			require.Len(t, persisted, 1)
			assert.Equal(t, tt.want.Width, persisted[0].Placement.Width)
			assert.Equal(t, tt.want.Height, persisted[0].Placement.Height)
			assert.Equal(t, 50.0, persisted[0].Placement.XAxis)
		})
	}
}

func TestRotate_WrapsAfterFourTurns(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.Select{ID: "p1"})

	var rotations []float64
	for i := 0; i < 4; i++ {
		effects := e.Dispatch(editor.Rotate{})
		rotated := effectsOf[editor.ElementRotated](effects)
		require.Len(t, rotated, 1)
		rotations = append(rotations, rotated[0].Rotation)
		require.Len(t, effectsOf[editor.PersistElement](effects), 1)
	}

	assert.Equal(t, []float64{90, 180, 270, 0}, rotations)
	poi, _ := e.Registry().PointOfInterest("p1")
	assert.Equal(t, 0.0, poi.Rotation)
}

func TestRotate_TableCallsBothCallbacks(t *testing.T) {
	var element, table []string
	e := newEngine(editor.WithHost(editor.HostFuncs{
		RotateElement: func(id string) { element = append(element, id) },
		RotateTable:   func(id string) { table = append(table, id) },
	}))

	e.Dispatch(editor.Rotate{ID: "t1"})
	e.Dispatch(editor.Rotate{ID: "p1"})
	e.Dispatch(editor.Rotate{ID: "w1"})

	assert.Equal(t, []string{"t1", "p1"}, element)
	assert.Equal(t, []string{"t1"}, table)
}

func TestSelection_SingleSelectedID(t *testing.T) {
	var selected []string
	var tabs []editor.Tab
	e := newEngine(editor.WithHost(editor.HostFuncs{
		Select:    func(id string) { selected = append(selected, id) },
		ActiveTab: func(tab editor.Tab) { tabs = append(tabs, tab) },
	}))

	e.Dispatch(down("t1", 510, 260))
	e.Dispatch(up())
	e.Dispatch(down("p1", 110, 60))
	e.Dispatch(up())
	assert.Equal(t, "p1", e.State().SelectedID)

	e.Dispatch(down("w1", 10, 0))
	assert.Equal(t, "w1", e.State().SelectedID)
	assert.Equal(t, editor.ModeIdle, e.State().Mode)

	e.Dispatch(down("", 900, 400))
	assert.Empty(t, e.State().SelectedID)

	// Re-clicking the canvas changes nothing and fires nothing.
	assert.Empty(t, e.Dispatch(down("", 900, 400)))

	assert.Equal(t, []string{"t1", "p1", "w1", ""}, selected)
	assert.Equal(t, []editor.Tab{editor.TabTables, editor.TabPOIs}, tabs)
}

func TestDelete_ClearsSelectionAndHover(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.PointerEnter{Target: editor.Target{ID: "w1"}})
	e.Dispatch(down("w1", 10, 0))
	require.Equal(t, "w1", e.State().HoveredWallID)

	effects := e.Dispatch(editor.Delete{})
	assert.Equal(t, []editor.Effect{
		editor.ElementDeleted{ID: "w1", Kind: models.KindWall},
		editor.SelectionChanged{},
		editor.HoverChanged{},
	}, effects)

	assert.Empty(t, e.State().SelectedID)
	assert.Empty(t, e.State().HoveredWallID)
	assert.Empty(t, e.Floor().Walls)

	assert.Empty(t, e.Dispatch(editor.Delete{}))
}

func TestDelete_OtherElementKeepsSelection(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.Select{ID: "t1"})
	require.Equal(t, "t1", e.State().SelectedID)

	effects := e.Dispatch(editor.Delete{ID: "p1"})
	assert.Equal(t, []editor.Effect{editor.ElementDeleted{ID: "p1", Kind: models.KindPOI}}, effects)
	assert.Equal(t, "t1", e.State().SelectedID)
	assert.Empty(t, e.Floor().PointsOfInterest)
}

func TestHover_OnlyWallsOutsideWallMode(t *testing.T) {
	e := newEngine()

	assert.Empty(t, e.Dispatch(editor.PointerEnter{Target: editor.Target{ID: "t1"}}))
	assert.Equal(t, []editor.Effect{editor.HoverChanged{WallID: "w1"}}, e.Dispatch(editor.PointerEnter{Target: editor.Target{ID: "w1"}}))
	assert.Empty(t, e.Dispatch(editor.PointerLeave{Target: editor.Target{ID: "t1"}}))

	effects := e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	assert.Contains(t, effects, editor.Effect(editor.HoverChanged{}))
	assert.Empty(t, e.State().HoveredWallID)

	assert.Empty(t, e.Dispatch(editor.PointerEnter{Target: editor.Target{ID: "w1"}}))
}

func TestWall_SessionBuildsSegments(t *testing.T) {
	e := newEngine(editor.WithWallSettings(editor.WallSettings{Thickness: 6, Color: "#ff0000", Style: models.WallDashed}))
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	assert.Equal(t, editor.ModeWallDrawing, e.State().Mode)

	t0 := time.Unix(1000, 0)
	e.Dispatch(click(100, 50, t0, editor.Modifiers{}))
	e.Dispatch(click(500, 50, t0.Add(time.Second), editor.Modifiers{}))
	e.Dispatch(click(500, 250, t0.Add(2*time.Second), editor.Modifiers{}))

	effects := e.Dispatch(editor.FinishWall{})
	added := effectsOf[editor.WallsAdded](effects)
	require.Len(t, added, 1)
	walls := added[0].Walls
	require.Len(t, walls, 2)

	assert.Equal(t, "wall-1", walls[0].ID)
	assert.InDelta(t, 10, walls[0].StartX, 1e-9)
	assert.InDelta(t, 10, walls[0].StartY, 1e-9)
	assert.InDelta(t, 50, walls[0].EndX, 1e-9)
	assert.InDelta(t, 10, walls[0].EndY, 1e-9)

	assert.Equal(t, walls[0].EndX, walls[1].StartX)
	assert.Equal(t, walls[0].EndY, walls[1].StartY)
	assert.InDelta(t, 50, walls[1].EndX, 1e-9)
	assert.InDelta(t, 50, walls[1].EndY, 1e-9)

	for _, w := range walls {
		assert.Equal(t, 6.0, w.Thickness)
		assert.Equal(t, "#ff0000", w.Color)
		assert.Equal(t, models.WallDashed, w.Style)
	}

	assert.Len(t, e.Floor().Walls, 3)
	assert.Empty(t, e.State().WallPoints)
	assert.Equal(t, editor.DrawWall, e.State().DrawingMode)
}

func TestWall_NPointsYieldNMinusOneWalls(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("%d points", n), func(t *testing.T) {
			e := newEngine()
			e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

			t0 := time.Unix(1000, 0)
			for i := 0; i < n; i++ {
				e.Dispatch(click(float64(100+i*100), float64(50+i*40), t0.Add(time.Duration(i)*time.Second), editor.Modifiers{}))
			}
			effects := e.Dispatch(editor.FinishWall{})

			added := effectsOf[editor.WallsAdded](effects)
			if n < 2 {
				assert.Empty(t, added)
				return
			}
			require.Len(t, added, 1)
			assert.Len(t, added[0].Walls, n-1)
		})
	}
}

func TestWall_DoubleClickFinishes(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

	t0 := time.Unix(1000, 0)
	e.Dispatch(click(100, 50, t0, editor.Modifiers{}))
	e.Dispatch(click(500, 50, t0.Add(time.Second), editor.Modifiers{}))
	effects := e.Dispatch(click(500, 50, t0.Add(time.Second+100*time.Millisecond), editor.Modifiers{}))

	added := effectsOf[editor.WallsAdded](effects)
	require.Len(t, added, 1)
	assert.Len(t, added[0].Walls, 1)
	assert.Empty(t, e.State().WallPoints)
	assert.True(t, e.State().LastClick.IsZero())
}

func TestWall_SlowClicksAddPoints(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

	t0 := time.Unix(1000, 0)
	e.Dispatch(click(100, 50, t0, editor.Modifiers{}))
	effects := e.Dispatch(click(500, 50, t0.Add(301*time.Millisecond), editor.Modifiers{}))

	assert.Empty(t, effects)
	assert.Len(t, e.State().WallPoints, 2)
}

func TestWall_DoubleClickWithSinglePointDiscards(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

	t0 := time.Unix(1000, 0)
	e.Dispatch(click(100, 50, t0, editor.Modifiers{}))
	effects := e.Dispatch(click(100, 50, t0.Add(50*time.Millisecond), editor.Modifiers{}))

	assert.Empty(t, effects)
	assert.Empty(t, e.State().WallPoints)
	assert.Len(t, e.Floor().Walls, 1)
}

func TestWall_SnappingModifiers(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

	t0 := time.Unix(1000, 0)
	e.Dispatch(click(103, 52, t0, editor.Modifiers{Grid: true}))
	require.Len(t, e.State().WallPoints, 1)
	assert.InDelta(t, 10, e.State().WallPoints[0].X, 1e-9)
	assert.InDelta(t, 10, e.State().WallPoints[0].Y, 1e-9)

	e.Dispatch(click(500, 60, t0.Add(time.Second), editor.Modifiers{AngleLock: true}))
	require.Len(t, e.State().WallPoints, 2)
	second := e.State().WallPoints[1]
	assert.InDelta(t, 10, second.Y, 1e-9)
	assert.InDelta(t, geometry.Distance(geometry.Point{X: 10, Y: 10}, geometry.Point{X: 50, Y: 12}), second.X-10, 1e-9)
}

func TestWall_PreviewFollowsPointer(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

	e.Dispatch(move(300, 100))
	assert.Nil(t, e.State().Preview, "no preview before the first point")

	e.Dispatch(click(100, 50, time.Unix(1000, 0), editor.Modifiers{}))
	assert.Empty(t, e.Dispatch(move(300, 100)))
	require.NotNil(t, e.State().Preview)
	assert.InDelta(t, 30, e.State().Preview.X, 1e-9)
	assert.InDelta(t, 20, e.State().Preview.Y, 1e-9)
	assert.Len(t, e.State().WallPoints, 1)
}

func TestWall_KeysOnlyInWallMode(t *testing.T) {
	e := newEngine()
	assert.Empty(t, e.Dispatch(editor.KeyDown{Key: "Enter"}))

	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	t0 := time.Unix(1000, 0)
	e.Dispatch(click(100, 50, t0, editor.Modifiers{}))
	e.Dispatch(click(500, 50, t0.Add(time.Second), editor.Modifiers{}))

	e.Dispatch(editor.KeyDown{Key: "Escape"})
	assert.Empty(t, e.State().WallPoints)

	e.Dispatch(click(100, 50, t0.Add(2*time.Second), editor.Modifiers{}))
	e.Dispatch(click(500, 50, t0.Add(3*time.Second), editor.Modifiers{}))
	effects := e.Dispatch(editor.KeyDown{Key: "Enter"})
	assert.Len(t, effectsOf[editor.WallsAdded](effects), 1)
}

func TestWall_CancelDiscardsPoints(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	t0 := time.Unix(1000, 0)
	e.Dispatch(click(100, 50, t0, editor.Modifiers{}))
	e.Dispatch(click(500, 50, t0.Add(time.Second), editor.Modifiers{}))

	assert.Empty(t, e.Dispatch(editor.CancelWall{}))
	assert.Empty(t, e.Dispatch(editor.FinishWall{}))
	assert.Len(t, e.Floor().Walls, 1)
}

func TestWall_ModeDisablesDrag(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})

	effects := e.Dispatch(down("t1", 510, 260))
	assert.Empty(t, effects)
	assert.Equal(t, editor.ModeWallDrawing, e.State().Mode)
	assert.Len(t, e.State().WallPoints, 1)
}

func TestSetDrawingMode_CommitsGesture(t *testing.T) {
	e := newEngine()
	e.Dispatch(down("t1", 510, 260))
	e.Dispatch(move(610, 260))

	effects := e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	assert.Len(t, effectsOf[editor.PersistElement](effects), 1)
	assert.Contains(t, effects, editor.Effect(editor.PointerListeners{Attached: false}))
	assert.Contains(t, effects, editor.Effect(editor.KeyListeners{Attached: true}))
	assert.Equal(t, editor.ModeWallDrawing, e.State().Mode)

	effects = e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawSelect})
	assert.Equal(t, []editor.Effect{editor.KeyListeners{Attached: false}}, effects)
	assert.Equal(t, editor.ModeIdle, e.State().Mode)
}

func TestBookingMode_SelectOnly(t *testing.T) {
	e := newEngine(editor.WithAllowEdit(false))

	effects := e.Dispatch(down("t1", 510, 260))
	assert.Equal(t, []editor.Effect{
		editor.SelectionChanged{ID: "t1"},
		editor.ActiveTabChanged{Tab: editor.TabTables},
	}, effects)
	assert.Equal(t, editor.ModeIdle, e.State().Mode)
	assert.Empty(t, e.Dispatch(move(900, 260)))

	assert.Empty(t, e.Dispatch(editor.Rotate{}))
	assert.Empty(t, e.Dispatch(editor.Delete{}))
	assert.Empty(t, e.Dispatch(editor.UndoWall{}))
	assert.Empty(t, e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall}))
	assert.Equal(t, editor.DrawSelect, e.State().DrawingMode)
	assert.Equal(t, testFloor(), e.Floor())
}

func TestListeners_Balanced(t *testing.T) {
	var pointer, keys int
	e := newEngine(editor.WithHost(editor.HostFuncs{
		PointerAttach: func() { pointer++ },
		PointerDetach: func() { pointer-- },
		KeyAttach:     func() { keys++ },
		KeyDetach:     func() { keys-- },
	}))

	e.Dispatch(down("t1", 510, 260))
	assert.Equal(t, 1, pointer)
	e.Dispatch(up())
	assert.Equal(t, 0, pointer)

	e.Dispatch(down("p1", 110, 60))
	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	assert.Equal(t, 0, pointer)
	assert.Equal(t, 1, keys)

	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawSelect})
	e.Dispatch(down("t1", 510, 260))
	assert.Equal(t, 1, pointer)

	effects := e.Close()
	assert.Len(t, effectsOf[editor.PersistElement](effects), 1)
	assert.Equal(t, 0, pointer)
	assert.Equal(t, 0, keys)

	e.Dispatch(editor.SetDrawingMode{Mode: editor.DrawWall})
	e.Close()
	assert.Equal(t, 0, keys)
	assert.False(t, e.State().KeyListening)
	assert.False(t, e.State().PointerListening)
}

func TestUndoWall_Forwarded(t *testing.T) {
	calls := 0
	e := newEngine(editor.WithHost(editor.HostFuncs{UndoWall: func() { calls++ }}))

	assert.Equal(t, []editor.Effect{editor.WallUndoRequested{}}, e.Dispatch(editor.UndoWall{}))
	assert.Equal(t, 1, calls)
}

func TestPopWall(t *testing.T) {
	e := newEngine()
	e.Dispatch(down("w1", 10, 0))

	wall, effects, ok := e.PopWall()
	require.True(t, ok)
	assert.Equal(t, "w1", wall.ID)
	assert.Equal(t, []editor.Effect{editor.SelectionChanged{}}, effects)
	assert.Empty(t, e.Floor().Walls)

	_, _, ok = e.PopWall()
	assert.False(t, ok)
}

func TestWallStyleSetters(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.SetWallStyle{Style: models.WallDotted})
	e.Dispatch(editor.SetWallThickness{Thickness: 8})
	e.Dispatch(editor.SetWallColor{Color: "#123456"})
	e.Dispatch(editor.SetWallStyle{Style: "wavy"})
	e.Dispatch(editor.SetWallThickness{Thickness: -1})

	assert.Equal(t, editor.WallSettings{Thickness: 8, Color: "#123456", Style: models.WallDotted}, e.State().Wall)
}

func TestLoad_DropsStaleSelection(t *testing.T) {
	e := newEngine()
	e.Dispatch(editor.Select{ID: "p1"})

	floor := testFloor()
	floor.PointsOfInterest = nil
	e.Load(floor)

	assert.Empty(t, e.State().SelectedID)
	assert.Equal(t, models.KindNone, e.Registry().KindOf("p1"))
}
