package editor

import "floorplan/feature/floor/models"

// Effect is an outcome of a transition that the engine applies locally
// and forwards to the host.
type Effect interface {
	EffectName() string
}

// PositionChanged moves a table or point of interest. Emitted on every drag frame.
type PositionChanged struct {
	ID string  `json:"id"`
	X  float64 `json:"xAxis"`
	Y  float64 `json:"yAxis"`
}

// SizeChanged resizes a table or point of interest.
type SizeChanged struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ElementRotated sets the rotation of a table or point of interest.
type ElementRotated struct {
	ID       string             `json:"id"`
	Kind     models.ElementKind `json:"kind"`
	Rotation float64            `json:"rotation"`
}

// PersistElement asks the host to store the final geometry of an element.
type PersistElement struct {
	ID        string             `json:"id"`
	Kind      models.ElementKind `json:"kind"`
	Placement models.Placement   `json:"placement"`
}

// SelectionChanged reports the new selected id. Empty means nothing is selected.
type SelectionChanged struct {
	ID string `json:"id"`
}

// ActiveTabChanged hints which side panel matches the selection.
type ActiveTabChanged struct {
	Tab Tab `json:"tab"`
}

// ElementDeleted removes an element of any kind.
type ElementDeleted struct {
	ID   string             `json:"id"`
	Kind models.ElementKind `json:"kind"`
}

// WallsAdded carries the segments of one finished drawing session.
type WallsAdded struct {
	Walls []models.Wall `json:"walls"`
}

// WallUndoRequested forwards the toolbar undo action.
type WallUndoRequested struct{}

// HoverChanged reports the hovered wall. Empty means none.
type HoverChanged struct {
	WallID string `json:"wallId"`
}

// PointerListeners attaches or detaches the global move/up listeners.
type PointerListeners struct {
	Attached bool `json:"attached"`
}

// KeyListeners attaches or detaches the wall finish/cancel key listeners.
type KeyListeners struct {
	Attached bool `json:"attached"`
}

const (
	EffectPositionChanged   = "position_changed"
	EffectSizeChanged       = "size_changed"
	EffectElementRotated    = "element_rotated"
	EffectPersistElement    = "persist_element"
	EffectSelectionChanged  = "selection_changed"
	EffectActiveTabChanged  = "active_tab_changed"
	EffectElementDeleted    = "element_deleted"
	EffectWallsAdded        = "walls_added"
	EffectWallUndoRequested = "wall_undo_requested"
	EffectHoverChanged      = "hover_changed"
	EffectPointerListeners  = "pointer_listeners"
	EffectKeyListeners      = "key_listeners"
)

func (PositionChanged) EffectName() string   { return EffectPositionChanged }
func (SizeChanged) EffectName() string       { return EffectSizeChanged }
func (ElementRotated) EffectName() string    { return EffectElementRotated }
func (PersistElement) EffectName() string    { return EffectPersistElement }
func (SelectionChanged) EffectName() string  { return EffectSelectionChanged }
func (ActiveTabChanged) EffectName() string  { return EffectActiveTabChanged }
func (ElementDeleted) EffectName() string    { return EffectElementDeleted }
func (WallsAdded) EffectName() string        { return EffectWallsAdded }
func (WallUndoRequested) EffectName() string { return EffectWallUndoRequested }
func (HoverChanged) EffectName() string      { return EffectHoverChanged }
func (PointerListeners) EffectName() string  { return EffectPointerListeners }
func (KeyListeners) EffectName() string      { return EffectKeyListeners }
