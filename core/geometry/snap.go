package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultGridSize is the grid pitch, in percent, used by the precise-grid modifier.
const DefaultGridSize = 2.5

// DefaultSnapAngles are the directions, in degrees, used by the angle-lock modifier.
var DefaultSnapAngles = []float64{0, 45, 90, 135, 180}

// SnapToGrid rounds value to the nearest multiple of gridSize.
// A non-positive gridSize leaves value untouched.
func SnapToGrid(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Round(value/gridSize) * gridSize
}

// SnapPointToGrid snaps both coordinates of p.
func SnapPointToGrid(p Point, gridSize float64) Point {
	return Point{X: SnapToGrid(p.X, gridSize), Y: SnapToGrid(p.Y, gridSize)}
}

// SnapToAngle moves end so that the segment start→end points along the angle
// in snapAngles closest to its current direction. The segment length is kept.
//
// Directions are measured with atan2 and lie in (-180, 180]. Candidates are
// compared by absolute difference; on a tie the first candidate wins.
// Coincident points return start, since there is no direction to snap.
func SnapToAngle(start, end Point, snapAngles []float64) Point {
	if len(snapAngles) == 0 {
		return end
	}

	delta := r2.Sub(end.vec(), start.vec())
	dist := r2.Norm(delta)
	if dist == 0 {
		return start
	}

	angle := math.Atan2(delta.Y, delta.X) * 180 / math.Pi

	best := snapAngles[0]
	bestDiff := math.Abs(angle - best)
	for _, a := range snapAngles[1:] {
		if d := math.Abs(angle - a); d < bestDiff {
			best, bestDiff = a, d
		}
	}

	rad := best * math.Pi / 180
	dir := r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
	return fromVec(r2.Add(start.vec(), r2.Scale(dist, dir)))
}
