package editor

import (
	"slices"
	"time"

	"floorplan/core/geometry"
	"floorplan/feature/floor/models"
)

// Mode is the interaction mode of the canvas. Exactly one is active at a time.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModeWallDrawing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeWallDrawing:
		return "wall_drawing"
	}
	return "unknown"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// DrawingMode is the toolbar switch between element selection and wall drawing.
type DrawingMode string

const (
	DrawSelect DrawingMode = "select"
	DrawWall   DrawingMode = "wall"
)

// Valid reports whether d is a known drawing mode.
func (d DrawingMode) Valid() bool {
	return d == DrawSelect || d == DrawWall
}

// Handle names the corner resize handle being dragged.
type Handle string

const (
	HandleNone Handle = ""
	HandleSE   Handle = "se"
	HandleSW   Handle = "sw"
	HandleNE   Handle = "ne"
	HandleNW   Handle = "nw"
)

// Valid reports whether h is one of the four corner handles.
func (h Handle) Valid() bool {
	switch h {
	case HandleSE, HandleSW, HandleNE, HandleNW:
		return true
	}
	return false
}

// Tab is the side panel the host should show for the current selection.
type Tab string

const (
	TabTables Tab = "tables"
	TabPOIs   Tab = "pois"
)

// Size is a width and height in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Modifiers are the keyboard modifiers held during a pointer event.
type Modifiers struct {
	// Grid snaps wall points to the grid.
	Grid bool `json:"grid"`
	// AngleLock snaps wall segments to the nearest allowed angle.
	AngleLock bool `json:"angleLock"`
}

// WallSettings style the walls produced by a drawing session.
type WallSettings struct {
	Thickness float64          `json:"thickness"`
	Color     string           `json:"color"`
	Style     models.WallStyle `json:"style"`
}

// State is the complete interaction context of one canvas. It is a value:
// Transition never mutates its input.
type State struct {
	Mode        Mode        `json:"mode"`
	DrawingMode DrawingMode `json:"drawingMode"`
	AllowEdit   bool        `json:"allowEdit"`

	// ActiveID is the element being dragged or resized.
	ActiveID string `json:"activeId,omitempty"`
	// DragOffset is the pointer position relative to the element's top-left, in pixels.
	DragOffset     geometry.Point   `json:"dragOffset"`
	Handle         Handle           `json:"handle,omitempty"`
	InitialSize    Size             `json:"initialSize"`
	InitialPointer geometry.Point   `json:"initialPointer"`
	Working        models.Placement `json:"working"`

	WallPoints []geometry.Point `json:"wallPoints"`
	Preview    *geometry.Point  `json:"preview,omitempty"`
	LastClick  time.Time        `json:"-"`
	Wall       WallSettings     `json:"wall"`

	SelectedID    string `json:"selectedId,omitempty"`
	HoveredWallID string `json:"hoveredWallId,omitempty"`

	PointerListening bool `json:"pointerListening"`
	KeyListening     bool `json:"keyListening"`
}

// NewState returns an idle select-mode state.
func NewState(allowEdit bool, wall WallSettings) State {
	return State{
		Mode:        ModeIdle,
		DrawingMode: DrawSelect,
		AllowEdit:   allowEdit,
		Wall:        wall,
	}
}

func (s State) clone() State {
	s.WallPoints = slices.Clone(s.WallPoints)
	if s.Preview != nil {
		p := *s.Preview
		s.Preview = &p
	}
	return s
}

// Gesturing reports whether a drag or resize is in progress.
func (s State) Gesturing() bool {
	return s.Mode == ModeDragging || s.Mode == ModeResizing
}

// restMode is the mode to fall back to once a gesture ends.
func (s State) restMode() Mode {
	if s.DrawingMode == DrawWall {
		return ModeWallDrawing
	}
	return ModeIdle
}

func (s *State) clearGesture() {
	s.ActiveID = ""
	s.DragOffset = geometry.Point{}
	s.Handle = HandleNone
	s.InitialSize = Size{}
	s.InitialPointer = geometry.Point{}
	s.Working = models.Placement{}
}

func (s *State) clearWallSession() {
	s.WallPoints = nil
	s.Preview = nil
	s.LastClick = time.Time{}
}
