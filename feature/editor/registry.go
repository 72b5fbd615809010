package editor

import (
	"floorplan/feature/floor/models"
)

type slot struct {
	kind  models.ElementKind
	index int
}

// Registry is the in-memory working copy of the active floor. It answers id
// lookups for hit resolution and applies the mutations the engine proposes.
//
// The host owns the canonical floor; the registry only mirrors it for the
// duration of an editing session.
type Registry struct {
	floor models.Floor
	index map[string]slot
}

// NewRegistry creates a registry over a copy of floor.
func NewRegistry(floor models.Floor) *Registry {
	r := &Registry{}
	r.Replace(floor)
	return r
}

// Replace swaps in a new floor snapshot.
func (r *Registry) Replace(floor models.Floor) {
	r.floor = floor.Clone()
	r.reindex()
}

func (r *Registry) reindex() {
	r.index = make(map[string]slot, len(r.floor.Tables)+len(r.floor.PointsOfInterest)+len(r.floor.Walls))
	for i, w := range r.floor.Walls {
		r.index[w.ID] = slot{kind: models.KindWall, index: i}
	}
	for i, p := range r.floor.PointsOfInterest {
		r.index[p.ID] = slot{kind: models.KindPOI, index: i}
	}
	for i, t := range r.floor.Tables {
		r.index[t.ID] = slot{kind: models.KindTable, index: i}
	}
}

// Floor returns a copy of the current working floor.
func (r *Registry) Floor() models.Floor {
	return r.floor.Clone()
}

// FloorID returns the id of the floor being edited.
func (r *Registry) FloorID() string {
	return r.floor.ID
}

// KindOf reports which collection id belongs to, or KindNone.
func (r *Registry) KindOf(id string) models.ElementKind {
	if id == "" {
		return models.KindNone
	}
	return r.index[id].kind
}

// Placement returns the geometry of a table or point of interest.
func (r *Registry) Placement(id string) (models.Placement, bool) {
	s, ok := r.index[id]
	if !ok {
		return models.Placement{}, false
	}
	switch s.kind {
	case models.KindTable:
		return r.floor.Tables[s.index].Placement, true
	case models.KindPOI:
		return r.floor.PointsOfInterest[s.index].Placement, true
	}
	return models.Placement{}, false
}

// Table returns the table with the given id.
func (r *Registry) Table(id string) (models.Table, bool) {
	s, ok := r.index[id]
	if !ok || s.kind != models.KindTable {
		return models.Table{}, false
	}
	return r.floor.Tables[s.index], true
}

// PointOfInterest returns the point of interest with the given id.
func (r *Registry) PointOfInterest(id string) (models.PointOfInterest, bool) {
	s, ok := r.index[id]
	if !ok || s.kind != models.KindPOI {
		return models.PointOfInterest{}, false
	}
	return r.floor.PointsOfInterest[s.index], true
}

// Wall returns the wall with the given id.
func (r *Registry) Wall(id string) (models.Wall, bool) {
	s, ok := r.index[id]
	if !ok || s.kind != models.KindWall {
		return models.Wall{}, false
	}
	return r.floor.Walls[s.index], true
}

func (r *Registry) placement(id string) *models.Placement {
	s, ok := r.index[id]
	if !ok {
		return nil
	}
	switch s.kind {
	case models.KindTable:
		return &r.floor.Tables[s.index].Placement
	case models.KindPOI:
		return &r.floor.PointsOfInterest[s.index].Placement
	}
	return nil
}

// SetPosition moves a table or point of interest. It reports whether the
// element was found.
func (r *Registry) SetPosition(id string, x, y float64) bool {
	p := r.placement(id)
	if p == nil {
		return false
	}
	p.XAxis, p.YAxis = x, y
	return true
}

// SetSize resizes a table or point of interest.
func (r *Registry) SetSize(id string, width, height float64) bool {
	p := r.placement(id)
	if p == nil {
		return false
	}
	p.Width, p.Height = width, height
	return true
}

// SetRotation rotates a table or point of interest.
func (r *Registry) SetRotation(id string, rotation float64) bool {
	p := r.placement(id)
	if p == nil {
		return false
	}
	p.Rotation = rotation
	return true
}

// Remove deletes the element with the given id from whichever collection
// holds it and returns that collection's kind.
func (r *Registry) Remove(id string) models.ElementKind {
	s, ok := r.index[id]
	if !ok {
		return models.KindNone
	}
	switch s.kind {
	case models.KindTable:
		r.floor.Tables = append(r.floor.Tables[:s.index], r.floor.Tables[s.index+1:]...)
	case models.KindPOI:
		r.floor.PointsOfInterest = append(r.floor.PointsOfInterest[:s.index], r.floor.PointsOfInterest[s.index+1:]...)
	case models.KindWall:
		r.floor.Walls = append(r.floor.Walls[:s.index], r.floor.Walls[s.index+1:]...)
	}
	r.reindex()
	return s.kind
}

// AddWalls appends a batch of walls.
func (r *Registry) AddWalls(walls []models.Wall) {
	r.floor.Walls = append(r.floor.Walls, walls...)
	r.reindex()
}
