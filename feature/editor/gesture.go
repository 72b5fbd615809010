package editor

import (
	"math"

	"floorplan/core/geometry"
	"floorplan/core/viewport"
)

func (s *State) beginGesture(e PointerDown, env Env) []Effect {
	p, ok := env.Elements.Placement(e.Target.ID)
	if !ok {
		return nil
	}

	s.ActiveID = e.Target.ID
	s.Working = p
	if e.Target.Handle.Valid() {
		s.Mode = ModeResizing
		s.Handle = e.Target.Handle
		s.InitialSize = Size{Width: p.Width, Height: p.Height}
		s.InitialPointer = e.Client
	} else {
		s.Mode = ModeDragging
		origin := viewport.ToClient(e.Rect, geometry.Point{X: p.XAxis, Y: p.YAxis})
		s.DragOffset = e.Client.Sub(origin)
	}

	s.PointerListening = true
	return []Effect{PointerListeners{Attached: true}}
}

func (s *State) pointerMove(e PointerMove, env Env) []Effect {
	switch s.Mode {
	case ModeDragging:
		return s.drag(e, env)
	case ModeResizing:
		return s.resize(e, env)
	case ModeWallDrawing:
		if len(s.WallPoints) > 0 {
			p := s.wallCandidate(viewport.ToPercent(e.Rect, e.Client), e.Modifiers, env.Settings)
			s.Preview = &p
		}
	}
	return nil
}

func (s *State) drag(e PointerMove, env Env) []Effect {
	p, ok := env.Elements.Placement(s.ActiveID)
	if !ok {
		return nil
	}

	pos := viewport.ToPercent(e.Rect, e.Client.Sub(s.DragOffset))
	// Width and height are converted to percent against their own axis
	// before rotating, so the extent mixes both axes of the container.
	extX, extY := geometry.RotatedExtent(
		viewport.WidthPercent(e.Rect, p.Width),
		viewport.HeightPercent(e.Rect, p.Height),
		p.Rotation,
	)
	maxX := 100 - extX
	maxY := 100 - extY

	x := geometry.Clamp(pos.X, 0, maxX)
	y := geometry.Clamp(pos.Y, 0, maxY)

	s.Working = p
	s.Working.XAxis, s.Working.YAxis = x, y
	return []Effect{PositionChanged{ID: s.ActiveID, X: x, Y: y}}
}

func (s *State) resize(e PointerMove, env Env) []Effect {
	p, ok := env.Elements.Placement(s.ActiveID)
	if !ok {
		return nil
	}

	dx := e.Client.X - s.InitialPointer.X
	dy := e.Client.Y - s.InitialPointer.Y

	w, h := s.InitialSize.Width, s.InitialSize.Height
	switch s.Handle {
	case HandleSE:
		w, h = w+dx, h+dy
	case HandleSW:
		w, h = w-dx, h+dy
	case HandleNE:
		w, h = w+dx, h-dy
	case HandleNW:
		w, h = w-dx, h-dy
	}
	w = math.Max(w, env.Settings.MinWidth)
	h = math.Max(h, env.Settings.MinHeight)

	s.Working = p
	s.Working.Width, s.Working.Height = w, h
	return []Effect{SizeChanged{ID: s.ActiveID, Width: w, Height: h}}
}

// endGesture commits a drag or resize and releases the pointer listeners.
// Nothing is persisted when the element vanished mid-gesture.
func (s *State) endGesture(env Env) []Effect {
	if !s.Gesturing() {
		return nil
	}

	var effects []Effect
	if kind := env.Elements.KindOf(s.ActiveID); kind.Placeable() {
		effects = append(effects, PersistElement{ID: s.ActiveID, Kind: kind, Placement: s.Working})
	}
	if s.PointerListening {
		s.PointerListening = false
		effects = append(effects, PointerListeners{Attached: false})
	}

	s.clearGesture()
	s.Mode = s.restMode()
	return effects
}

func (s *State) rotate(id string, env Env) []Effect {
	if !s.AllowEdit {
		return nil
	}
	if id == "" {
		id = s.SelectedID
	}
	kind := env.Elements.KindOf(id)
	if !kind.Placeable() {
		return nil
	}
	p, ok := env.Elements.Placement(id)
	if !ok {
		return nil
	}

	p.Rotation = geometry.WrapRotation(p.Rotation + 90)
	if s.Gesturing() && s.ActiveID == id {
		s.Working.Rotation = p.Rotation
	}
	return []Effect{
		ElementRotated{ID: id, Kind: kind, Rotation: p.Rotation},
		PersistElement{ID: id, Kind: kind, Placement: p},
	}
}
