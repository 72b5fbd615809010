package viewport_test

import (
	"testing"

	"floorplan/core/geometry"
	"floorplan/core/viewport"

	"github.com/stretchr/testify/assert"
)

func TestToPercent(t *testing.T) {
	rect := viewport.Rect{Left: 100, Top: 50, Width: 1000, Height: 500}

	got := viewport.ToPercent(rect, geometry.Point{X: 600, Y: 300})
	assert.InDelta(t, 50, got.X, 1e-9)
	assert.InDelta(t, 50, got.Y, 1e-9)

	got = viewport.ToPercent(rect, geometry.Point{X: 100, Y: 50})
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
}

func TestToPercent_ZeroSizedContainer(t *testing.T) {
	rect := viewport.Rect{Left: 10, Top: 10}

	got := viewport.ToPercent(rect, geometry.Point{X: 10, Y: 10})
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, got)

	got = viewport.ToPercent(rect, geometry.Point{X: 11, Y: 12})
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 200, got.Y, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	rect := viewport.Rect{Left: 20, Top: 40, Width: 800, Height: 600}
	pct := geometry.Point{X: 12.5, Y: 87.5}

	client := viewport.ToClient(rect, pct)
	back := viewport.ToPercent(rect, client)
	assert.InDelta(t, pct.X, back.X, 1e-9)
	assert.InDelta(t, pct.Y, back.Y, 1e-9)

	offset := viewport.ToOffset(rect, pct)
	assert.InDelta(t, 100, offset.X, 1e-9)
	assert.InDelta(t, 525, offset.Y, 1e-9)
}

func TestLengthPercent(t *testing.T) {
	rect := viewport.Rect{Width: 1000, Height: 500}
	assert.InDelta(t, 6, viewport.WidthPercent(rect, 60), 1e-9)
	assert.InDelta(t, 8, viewport.HeightPercent(rect, 40), 1e-9)
}
