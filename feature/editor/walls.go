package editor

import (
	"floorplan/core/geometry"
	"floorplan/core/viewport"
	"floorplan/feature/floor/models"
)

// wallCandidate applies the held modifiers to a raw point: grid first,
// then angle relative to the last committed point.
func (s *State) wallCandidate(p geometry.Point, mods Modifiers, settings Settings) geometry.Point {
	if mods.Grid {
		p = geometry.SnapPointToGrid(p, settings.GridSize)
	}
	if mods.AngleLock && len(s.WallPoints) > 0 {
		p = geometry.SnapToAngle(s.WallPoints[len(s.WallPoints)-1], p, settings.SnapAngles)
	}
	return p
}

func (s *State) wallClick(e PointerDown, env Env) []Effect {
	if len(s.WallPoints) > 0 && !s.LastClick.IsZero() && !e.At.IsZero() {
		if gap := e.At.Sub(s.LastClick); gap >= 0 && gap < env.Settings.DoubleClickWindow {
			return s.finishWall(env)
		}
	}

	p := s.wallCandidate(viewport.ToPercent(e.Rect, e.Client), e.Modifiers, env.Settings)
	s.WallPoints = append(s.WallPoints, p)
	s.Preview = nil
	s.LastClick = e.At
	return nil
}

// finishWall turns the accumulated points into one wall per consecutive
// pair. Fewer than two points end the session without walls.
func (s *State) finishWall(env Env) []Effect {
	points := s.WallPoints
	s.clearWallSession()
	if len(points) < 2 {
		return nil
	}
	return []Effect{WallsAdded{Walls: BuildWalls(points, s.Wall, env.newID)}}
}

// BuildWalls converts a polyline into independent wall segments that share
// the given styling.
func BuildWalls(points []geometry.Point, style WallSettings, newID func() string) []models.Wall {
	if len(points) < 2 {
		return nil
	}
	walls := make([]models.Wall, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		walls = append(walls, models.Wall{
			ID:        newID(),
			StartX:    points[i].X,
			StartY:    points[i].Y,
			EndX:      points[i+1].X,
			EndY:      points[i+1].Y,
			Thickness: style.Thickness,
			Color:     style.Color,
			Style:     style.Style,
		})
	}
	return walls
}
