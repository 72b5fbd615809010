package geometry

import "math"

// RotatedExtent returns the width and height of the axis-aligned box that
// encloses a width×height rectangle rotated by deg degrees.
func RotatedExtent(width, height, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	return width*c + height*s, width*s + height*c
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins, so an
// element larger than the canvas is pinned to the origin.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// WrapRotation normalizes deg into [0, 360).
func WrapRotation(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	return r
}
