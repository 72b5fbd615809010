package editor

import (
	"floorplan/feature/floor/models"

	"github.com/google/uuid"
)

// Lookup resolves element ids against the active floor.
type Lookup interface {
	KindOf(id string) models.ElementKind
	Placement(id string) (models.Placement, bool)
}

// Env is the read-only context a transition runs against.
type Env struct {
	Elements Lookup
	Settings Settings
	// NewID mints wall ids. Defaults to random UUIDs.
	NewID func() string
}

func (env Env) newID() string {
	if env.NewID != nil {
		return env.NewID()
	}
	return uuid.NewString()
}

// Transition computes the state that follows ev and the effects it produces.
// It is pure: s is not modified and no I/O happens.
func Transition(s State, ev Event, env Env) (State, []Effect) {
	next := s.clone()
	var effects []Effect

	switch e := ev.(type) {
	case PointerDown:
		effects = next.pointerDown(e, env)
	case PointerMove:
		effects = next.pointerMove(e, env)
	case PointerUp:
		effects = next.endGesture(env)
	case PointerEnter:
		effects = next.hoverEnter(e, env)
	case PointerLeave:
		effects = next.hoverLeave(e)
	case KeyDown:
		effects = next.keyDown(e, env)
	case Rotate:
		effects = next.rotate(e.ID, env)
	case Delete:
		effects = next.delete(e.ID, env)
	case Select:
		effects = next.selectElement(e.ID, env.Elements.KindOf(e.ID))
	case FinishWall:
		effects = next.finishWall(env)
	case CancelWall:
		next.clearWallSession()
	case UndoWall:
		if next.AllowEdit {
			effects = []Effect{WallUndoRequested{}}
		}
	case SetDrawingMode:
		effects = next.setDrawingMode(e.Mode, env)
	case SetWallStyle:
		if e.Style.Valid() {
			next.Wall.Style = e.Style
		}
	case SetWallThickness:
		if e.Thickness > 0 {
			next.Wall.Thickness = e.Thickness
		}
	case SetWallColor:
		if e.Color != "" {
			next.Wall.Color = e.Color
		}
	case Teardown:
		effects = next.teardown(env)
	}

	return next, effects
}

func (s *State) pointerDown(e PointerDown, env Env) []Effect {
	if s.Gesturing() {
		return nil
	}
	if s.DrawingMode == DrawWall {
		if !s.AllowEdit {
			return nil
		}
		return s.wallClick(e, env)
	}

	kind := env.Elements.KindOf(e.Target.ID)
	switch {
	case kind == models.KindWall:
		return s.selectElement(e.Target.ID, kind)
	case kind.Placeable():
		effects := s.selectElement(e.Target.ID, kind)
		if !s.AllowEdit {
			return effects
		}
		return append(effects, s.beginGesture(e, env)...)
	default:
		return s.selectElement("", models.KindNone)
	}
}

func (s *State) keyDown(e KeyDown, env Env) []Effect {
	if !s.KeyListening {
		return nil
	}
	switch e.Key {
	case "Enter":
		return s.finishWall(env)
	case "Escape":
		s.clearWallSession()
	}
	return nil
}

func (s *State) setDrawingMode(mode DrawingMode, env Env) []Effect {
	if !mode.Valid() || mode == s.DrawingMode {
		return nil
	}
	if mode == DrawWall && !s.AllowEdit {
		return nil
	}

	effects := s.endGesture(env)
	s.DrawingMode = mode

	if mode == DrawWall {
		s.Mode = ModeWallDrawing
		if s.HoveredWallID != "" {
			s.HoveredWallID = ""
			effects = append(effects, HoverChanged{})
		}
		if !s.KeyListening {
			s.KeyListening = true
			effects = append(effects, KeyListeners{Attached: true})
		}
		return effects
	}

	s.Mode = ModeIdle
	s.clearWallSession()
	if s.KeyListening {
		s.KeyListening = false
		effects = append(effects, KeyListeners{Attached: false})
	}
	return effects
}

func (s *State) teardown(env Env) []Effect {
	effects := s.endGesture(env)
	s.clearWallSession()
	if s.KeyListening {
		s.KeyListening = false
		effects = append(effects, KeyListeners{Attached: false})
	}
	s.Mode = ModeIdle
	s.DrawingMode = DrawSelect
	return effects
}
