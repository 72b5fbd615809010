package geometry_test

import (
	"math"
	"testing"

	"floorplan/core/geometry"

	"github.com/stretchr/testify/assert"
)

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		grid  float64
		want  float64
	}{
		{"Exact", 5, 2.5, 5},
		{"RoundDown", 6.2, 2.5, 5},
		{"RoundUp", 6.3, 2.5, 7.5},
		{"Negative", -1.3, 2.5, -2.5},
		{"CustomGrid", 13, 10, 10},
		{"ZeroGrid", 3.3, 0, 3.3},
		{"NegativeGrid", 3.3, -1, 3.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, geometry.SnapToGrid(tt.value, tt.grid), 1e-9)
		})
	}
}

func TestSnapToGrid_Idempotent(t *testing.T) {
	for _, g := range []float64{0.5, 1, 2.5, 3.3, 10} {
		for v := -50.0; v <= 150; v += 0.37 {
			once := geometry.SnapToGrid(v, g)
			assert.Equal(t, once, geometry.SnapToGrid(once, g), "v=%v g=%v", v, g)
		}
	}
}

func TestSnapToAngle(t *testing.T) {
	start := geometry.Point{X: 10, Y: 10}

	t.Run("NearlyHorizontal", func(t *testing.T) {
		got := geometry.SnapToAngle(start, geometry.Point{X: 50, Y: 12}, geometry.DefaultSnapAngles)
		assert.InDelta(t, 10, got.Y, 1e-9)
		assert.InDelta(t, 10+math.Hypot(40, 2), got.X, 1e-9)
	})

	t.Run("NearlyDiagonal", func(t *testing.T) {
		got := geometry.SnapToAngle(start, geometry.Point{X: 30, Y: 28}, geometry.DefaultSnapAngles)
		assert.InDelta(t, got.X-start.X, got.Y-start.Y, 1e-9)
	})

	t.Run("NearlyVertical", func(t *testing.T) {
		got := geometry.SnapToAngle(start, geometry.Point{X: 11, Y: 40}, geometry.DefaultSnapAngles)
		assert.InDelta(t, 10, got.X, 1e-9)
	})

	t.Run("TieGoesToFirstAngle", func(t *testing.T) {
		// A horizontal segment is exactly 10 degrees from both candidates.
		got := geometry.SnapToAngle(start, geometry.Point{X: 30, Y: 10}, []float64{-10, 10})
		assert.Less(t, got.Y, start.Y)
	})

	t.Run("CoincidentPoints", func(t *testing.T) {
		got := geometry.SnapToAngle(start, start, geometry.DefaultSnapAngles)
		assert.Equal(t, start, got)
	})

	t.Run("NoAngles", func(t *testing.T) {
		end := geometry.Point{X: 3, Y: 4}
		assert.Equal(t, end, geometry.SnapToAngle(start, end, nil))
	})
}

func TestSnapToAngle_PreservesDistance(t *testing.T) {
	start := geometry.Point{X: 40, Y: 60}
	for dx := -30.0; dx <= 30; dx += 7.3 {
		for dy := -30.0; dy <= 30; dy += 6.1 {
			end := geometry.Point{X: start.X + dx, Y: start.Y + dy}
			if end == start {
				continue
			}
			got := geometry.SnapToAngle(start, end, geometry.DefaultSnapAngles)
			assert.InDelta(t, geometry.Distance(start, end), geometry.Distance(start, got), 1e-9)
		}
	}
}
