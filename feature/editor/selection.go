package editor

import "floorplan/feature/floor/models"

// selectElement makes id the only selected element. Effects fire only when
// the selection actually changes.
func (s *State) selectElement(id string, kind models.ElementKind) []Effect {
	if kind == models.KindNone {
		id = ""
	}
	if s.SelectedID == id {
		return nil
	}
	s.SelectedID = id

	effects := []Effect{SelectionChanged{ID: id}}
	switch kind {
	case models.KindTable:
		effects = append(effects, ActiveTabChanged{Tab: TabTables})
	case models.KindPOI:
		effects = append(effects, ActiveTabChanged{Tab: TabPOIs})
	}
	return effects
}

func (s *State) delete(id string, env Env) []Effect {
	if !s.AllowEdit {
		return nil
	}
	if id == "" {
		id = s.SelectedID
	}
	kind := env.Elements.KindOf(id)
	if kind == models.KindNone {
		return nil
	}

	effects := []Effect{ElementDeleted{ID: id, Kind: kind}}
	if s.SelectedID == id {
		s.SelectedID = ""
		effects = append(effects, SelectionChanged{})
	}
	if s.HoveredWallID == id {
		s.HoveredWallID = ""
		effects = append(effects, HoverChanged{})
	}
	return effects
}

func (s *State) hoverEnter(e PointerEnter, env Env) []Effect {
	if s.DrawingMode == DrawWall {
		return nil
	}
	if env.Elements.KindOf(e.Target.ID) != models.KindWall || s.HoveredWallID == e.Target.ID {
		return nil
	}
	s.HoveredWallID = e.Target.ID
	return []Effect{HoverChanged{WallID: e.Target.ID}}
}

func (s *State) hoverLeave(e PointerLeave) []Effect {
	if s.HoveredWallID == "" {
		return nil
	}
	if e.Target.ID != "" && e.Target.ID != s.HoveredWallID {
		return nil
	}
	s.HoveredWallID = ""
	return []Effect{HoverChanged{}}
}
