package viewport

import "floorplan/core/geometry"

// Rect is the on-screen rectangle of the canvas container, in client pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalized returns r with non-positive dimensions replaced by 1.
func (r Rect) Normalized() Rect {
	if r.Width <= 0 {
		r.Width = 1
	}
	if r.Height <= 0 {
		r.Height = 1
	}
	return r
}

// ToPercent converts a client position into percentage coordinates of r.
func ToPercent(r Rect, client geometry.Point) geometry.Point {
	r = r.Normalized()
	return geometry.Point{
		X: (client.X - r.Left) / r.Width * 100,
		Y: (client.Y - r.Top) / r.Height * 100,
	}
}

// ToClient converts percentage coordinates of r back into a client position.
func ToClient(r Rect, pct geometry.Point) geometry.Point {
	r = r.Normalized()
	return geometry.Point{
		X: r.Left + pct.X/100*r.Width,
		Y: r.Top + pct.Y/100*r.Height,
	}
}

// ToOffset converts percentage coordinates into a pixel offset from the
// container's top-left corner, the form renderers position elements with.
func ToOffset(r Rect, pct geometry.Point) geometry.Point {
	r = r.Normalized()
	return geometry.Point{X: pct.X / 100 * r.Width, Y: pct.Y / 100 * r.Height}
}

// WidthPercent expresses a horizontal pixel length as a percentage of r.
func WidthPercent(r Rect, px float64) float64 {
	return px / r.Normalized().Width * 100
}

// HeightPercent expresses a vertical pixel length as a percentage of r.
func HeightPercent(r Rect, px float64) float64 {
	return px / r.Normalized().Height * 100
}
