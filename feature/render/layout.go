package render

import (
	"strconv"

	"floorplan/core/geometry"
	"floorplan/core/viewport"
	"floorplan/feature/floor/models"
)

// Colors used by both renderers.
var (
	statusColors = map[models.TableStatus]string{
		models.StatusAvailable: "#4caf50",
		models.StatusReserved:  "#ff9800",
		models.StatusOccupied:  "#f44336",
	}
	poiColor        = "#90a4ae"
	outlineColor    = "#263238"
	backgroundColor = "#ffffff"
)

func tableColor(s models.TableStatus) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#9e9e9e"
}

// box is an element in canvas pixels. X and Y are the top-left corner before
// rotation; rotation is about the center.
type box struct {
	ID       string
	X, Y     float64
	W, H     float64
	Rotation float64
	Fill     string
	Round    bool
	Label    string
}

func (b box) center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// segment is a wall in canvas pixels.
type segment struct {
	ID        string
	X1, Y1    float64
	X2, Y2    float64
	Thickness float64
	Color     string
	Style     models.WallStyle
}

// dash returns the stroke pattern of a wall style scaled by thickness.
func (s segment) dash() []float64 {
	t := max(s.Thickness, 1)
	switch s.Style {
	case models.WallDashed:
		return []float64{4 * t, 2 * t}
	case models.WallDotted:
		return []float64{t, t}
	}
	return nil
}

// scene is a floor laid out on a canvas.
type scene struct {
	Width, Height int
	Walls         []segment
	Boxes         []box
}

// layout converts percentage coordinates to canvas pixels through the same
// transform the editor uses.
func layout(f models.Floor, width, height int) scene {
	rect := viewport.Rect{Width: float64(width), Height: float64(height)}
	sc := scene{Width: width, Height: height}

	for _, w := range f.Walls {
		start := viewport.ToOffset(rect, geometry.Point{X: w.StartX, Y: w.StartY})
		end := viewport.ToOffset(rect, geometry.Point{X: w.EndX, Y: w.EndY})
		color := w.Color
		if color == "" {
			color = outlineColor
		}
		sc.Walls = append(sc.Walls, segment{
			ID: w.ID, X1: start.X, Y1: start.Y, X2: end.X, Y2: end.Y,
			Thickness: w.Thickness, Color: color, Style: w.Style,
		})
	}

	for _, p := range f.PointsOfInterest {
		origin := viewport.ToOffset(rect, geometry.Point{X: p.XAxis, Y: p.YAxis})
		label := p.Name
		if label == "" {
			label = string(p.Type)
		}
		sc.Boxes = append(sc.Boxes, box{
			ID: p.ID, X: origin.X, Y: origin.Y, W: p.Width, H: p.Height,
			Rotation: p.Rotation, Fill: poiColor, Label: label,
		})
	}

	for _, t := range f.Tables {
		origin := viewport.ToOffset(rect, geometry.Point{X: t.XAxis, Y: t.YAxis})
		label := t.ID
		if t.TableNumber > 0 {
			label = strconv.Itoa(t.TableNumber)
		}
		sc.Boxes = append(sc.Boxes, box{
			ID: t.ID, X: origin.X, Y: origin.Y, W: t.Width, H: t.Height,
			Rotation: t.Rotation, Fill: tableColor(t.Status),
			Round: t.TableType == models.TableCircle, Label: label,
		})
	}
	return sc
}
