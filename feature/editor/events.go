package editor

import (
	"time"

	"floorplan/core/geometry"
	"floorplan/core/viewport"
	"floorplan/feature/floor/models"
)

// Event is an input consumed by the state machine.
type Event interface {
	EventName() string
}

// Target identifies what the pointer hit. An empty ID means the bare canvas.
type Target struct {
	ID     string `json:"id,omitempty"`
	Handle Handle `json:"handle,omitempty"`
}

// PointerDown is a press on the canvas. Rect is the container rectangle
// measured at the time of the event.
type PointerDown struct {
	Target    Target
	Client    geometry.Point
	Rect      viewport.Rect
	Modifiers Modifiers
	At        time.Time
}

// PointerMove is a pointer motion.
type PointerMove struct {
	Client    geometry.Point
	Rect      viewport.Rect
	Modifiers Modifiers
}

// PointerUp is a release anywhere on the input surface.
type PointerUp struct {
	Client geometry.Point
	Rect   viewport.Rect
}

// PointerEnter fires when the pointer enters an element.
type PointerEnter struct{ Target Target }

// PointerLeave fires when the pointer leaves an element or the canvas.
type PointerLeave struct{ Target Target }

// KeyDown is a key press. Only Enter and Escape are meaningful.
type KeyDown struct{ Key string }

// Rotate turns an element by a quarter turn. An empty ID targets the selection.
type Rotate struct{ ID string }

// Delete removes an element. An empty ID targets the selection.
type Delete struct{ ID string }

// Select selects an element by id, or clears the selection when ID is empty.
type Select struct{ ID string }

// FinishWall commits the wall being drawn.
type FinishWall struct{}

// CancelWall discards the wall being drawn.
type CancelWall struct{}

// UndoWall forwards the toolbar undo action to the host.
type UndoWall struct{}

// SetDrawingMode switches between selection and wall drawing.
type SetDrawingMode struct{ Mode DrawingMode }

// SetWallStyle changes the stroke style of the next walls.
type SetWallStyle struct{ Style models.WallStyle }

// SetWallThickness changes the thickness of the next walls.
type SetWallThickness struct{ Thickness float64 }

// SetWallColor changes the color of the next walls.
type SetWallColor struct{ Color string }

// Teardown ends the session and releases every listener.
type Teardown struct{}

const (
	EventPointerDown      = "pointer_down"
	EventPointerMove      = "pointer_move"
	EventPointerUp        = "pointer_up"
	EventPointerEnter     = "pointer_enter"
	EventPointerLeave     = "pointer_leave"
	EventKeyDown          = "key_down"
	EventRotate           = "rotate"
	EventDelete           = "delete"
	EventSelect           = "select"
	EventFinishWall       = "finish_wall"
	EventCancelWall       = "cancel_wall"
	EventUndoWall         = "undo_wall"
	EventSetDrawingMode   = "set_drawing_mode"
	EventSetWallStyle     = "set_wall_style"
	EventSetWallThickness = "set_wall_thickness"
	EventSetWallColor     = "set_wall_color"
	EventTeardown         = "teardown"
)

func (PointerDown) EventName() string      { return EventPointerDown }
func (PointerMove) EventName() string      { return EventPointerMove }
func (PointerUp) EventName() string        { return EventPointerUp }
func (PointerEnter) EventName() string     { return EventPointerEnter }
func (PointerLeave) EventName() string     { return EventPointerLeave }
func (KeyDown) EventName() string          { return EventKeyDown }
func (Rotate) EventName() string           { return EventRotate }
func (Delete) EventName() string           { return EventDelete }
func (Select) EventName() string           { return EventSelect }
func (FinishWall) EventName() string       { return EventFinishWall }
func (CancelWall) EventName() string       { return EventCancelWall }
func (UndoWall) EventName() string         { return EventUndoWall }
func (SetDrawingMode) EventName() string   { return EventSetDrawingMode }
func (SetWallStyle) EventName() string     { return EventSetWallStyle }
func (SetWallThickness) EventName() string { return EventSetWallThickness }
func (SetWallColor) EventName() string     { return EventSetWallColor }
func (Teardown) EventName() string         { return EventTeardown }
