package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{name: "inside", b: Rect{X: 2, Y: 2, W: 2, H: 2}, want: true},
		{name: "partial", b: Rect{X: 5, Y: 5, W: 10, H: 10}, want: true},
		{name: "shared right edge", b: Rect{X: 10, Y: 0, W: 5, H: 10}},
		{name: "shared top edge", b: Rect{X: 0, Y: 10, W: 10, H: 5}},
		{name: "apart", b: Rect{X: 20, Y: 20, W: 1, H: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestRectConstructors(t *testing.T) {
	r := RectFromTopLeft(10, 50, 20, 30)
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 50.0, r.Top())
	assert.Equal(t, 20.0, r.Bottom())

	c := RectFromCenter(0, 0, 4, 6)
	assert.Equal(t, -2.0, c.Left())
	assert.Equal(t, 3.0, c.Top())
	assert.Equal(t, 0.0, c.CenterX())
}

func TestGrowAndContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}.Grow(5)
	assert.Equal(t, Rect{X: -5, Y: -5, W: 20, H: 20}, r)
	assert.True(t, r.ContainsPoint(-5, 15), "edges count")
	assert.False(t, r.ContainsPoint(-5.1, 0))
	assert.False(t, r.ContainsPoint(0, 15.1))
}

func TestAimVelocity(t *testing.T) {
	tests := []struct {
		name         string
		toX, toY     float64
		wantX, wantY float64
	}{
		{name: "right", toX: 10, wantX: 5},
		{name: "left", toX: -10, wantX: -5},
		{name: "up", toY: 3, wantY: 5},
		{name: "diagonal", toX: 3, toY: 4, wantX: 3, wantY: 4},
		{name: "on target", wantX: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := AimVelocity(0, 0, tt.toX, tt.toY, 5)
			assert.InDelta(t, tt.wantX, v.X, 1e-9)
			assert.InDelta(t, tt.wantY, v.Y, 1e-9)
			assert.InDelta(t, 5, math.Hypot(v.X, v.Y), 1e-9)
		})
	}
}

func TestClampAndFloor(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-3, 1, 4))
	assert.Equal(t, 4.0, Clamp(9, 1, 4))
	assert.Equal(t, 2.5, Clamp(2.5, 1, 4))
	assert.Equal(t, 0, Floor0(-7))
	assert.Equal(t, 7, Floor0(7))
}
