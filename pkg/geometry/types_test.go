package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPolar(t *testing.T) {
	assert.Equal(t, Point2D{X: 10}, FromPolar(0, 10))
	assert.Equal(t, Point2D{}, FromPolar(0, 0))

	p := FromPolar(math.Pi/2, 3)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 3, p.Y, 1e-12)
}

func TestPointRotate(t *testing.T) {
	p := Point2D{X: 1, Y: 0}
	assert.Equal(t, p, p.Rotate(0))

	r := p.Rotate(math.Pi)
	assert.InDelta(t, -1, r.X, 1e-12)
	assert.InDelta(t, 0, r.Y, 1e-12)

	assert.Equal(t, Point2D{X: -3, Y: 4}, Point2D{X: 3, Y: -4}.Neg())
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		in   Point2D
		want PointInt
	}{
		{Point2D{X: 10.7, Y: 2.2}, PointInt{X: 10, Y: 2}},
		{Point2D{X: -1.9, Y: -0.5}, PointInt{X: -1, Y: 0}},
		{Point2D{X: 5, Y: 2}, PointInt{X: 5, Y: 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Trunc(tt.in))
	}
}

func TestFromCenterSize(t *testing.T) {
	r := FromCenterSize(Point2D{}, 26, 4)
	assert.Equal(t, Rect{X: -13, Y: -2, Width: 26, Height: 4}, r)
	assert.Equal(t, Point2D{}, r.Center())
	assert.True(t, r.Contains(Point2D{X: 13, Y: -2}))
	assert.False(t, r.Contains(Point2D{X: 13.1}))
}

func TestApplyRect(t *testing.T) {
	r := FromCenterSize(Point2D{}, 4, 2)

	rot := Translation(10, 20).Compose(Rotation(math.Pi / 2))
	got := rot.ApplyRect(r)
	assert.InDelta(t, 9, got.X, 1e-9)
	assert.InDelta(t, 18, got.Y, 1e-9)
	assert.InDelta(t, 2, got.Width, 1e-9)
	assert.InDelta(t, 4, got.Height, 1e-9)
}

func TestInverse(t *testing.T) {
	tr := Translation(3, -2).Compose(Rotation(0.3))
	inv, ok := tr.Inverse()
	assert.True(t, ok)

	p := Point2D{X: 1.5, Y: 7}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	_, ok = Scale(0, 1).Inverse()
	assert.False(t, ok)
}

func TestRotationMatchesPointRotate(t *testing.T) {
	p := Point2D{X: 3, Y: -4}
	for _, theta := range []float64{0, 0.3, math.Pi / 2, math.Pi, -2.1} {
		want := p.Rotate(theta)
		got := Rotation(theta).Apply(p)
		assert.InDelta(t, want.X, got.X, 1e-12, "theta %v", theta)
		assert.InDelta(t, want.Y, got.Y, 1e-12, "theta %v", theta)
	}
	assert.Equal(t, Identity(), Rotation(0))
}
