package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcb-reveng/internal/stackup"
	"pcb-reveng/pkg/geometry"
)

type fakeResolver struct {
	s *stackup.Stackup
}

func (r fakeResolver) LayerForSide(side Side) *stackup.Layer {
	if side == SideTop {
		return r.s.Top()
	}
	return r.s.Bottom()
}

var allBodies = []Passive2BodyType{BodyChip, BodySMDCap, BodyTHAxial, BodyTHRadial, BodyTHFlippedCap}

func newPassive(body Passive2BodyType, pinD float64, bodyCorner, pinCorner geometry.Point2D) *Passive2Component {
	return NewPassive2Component(nil, geometry.Point2D{X: 50, Y: 20}, 0, SideTop,
		SymResistor, body, pinD, bodyCorner, pinCorner)
}

func TestPadsCached(t *testing.T) {
	c := newPassive(BodyChip, 10, geometry.Point2D{X: 5, Y: 2}, geometry.Point2D{X: 3, Y: 1})

	first := c.Pads()
	second := c.Pads()
	require.Len(t, first, 2)
	assert.Same(t, first[0], second[0])
	assert.Same(t, first[1], second[1])
	assert.Equal(t, "1", first[0].Name)
	assert.Equal(t, "2", first[1].Name)
}

func TestPadFootprint(t *testing.T) {
	pinCorner := geometry.Point2D{X: 3, Y: 1.25}

	tests := []struct {
		body       Passive2BodyType
		wantTH     bool
		wantHeight float64
		wantWidth  float64
	}{
		{BodyChip, false, 2.5, 6},
		{BodySMDCap, false, 2.5, 6},
		{BodyTHFlippedCap, false, 2.5, 6},
		{BodyTHAxial, true, 6, 6},
		{BodyTHRadial, true, 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			c := newPassive(tt.body, 10, geometry.Point2D{X: 5, Y: 2}, pinCorner)
			for _, p := range c.Pads() {
				assert.Equal(t, tt.wantTH, p.ThroughHole)
				assert.Equal(t, tt.wantHeight, p.Height)
				assert.Equal(t, tt.wantWidth, p.Width)
				assert.Equal(t, 0.0, p.Theta)
				assert.Equal(t, SideTop, p.Side)
			}
		})
	}
}

func TestThroughHoleIgnoresPinCornerY(t *testing.T) {
	for _, y := range []float64{0, 1, 40, -3} {
		c := newPassive(BodyTHAxial, 10, geometry.Point2D{}, geometry.Point2D{X: 2, Y: y})
		for _, p := range c.Pads() {
			assert.Equal(t, 4.0, p.Width)
			assert.Equal(t, 4.0, p.Height)
		}
	}
}

func TestPadSymmetry(t *testing.T) {
	for _, pinD := range []float64{0, 1, 10.7, 254} {
		c := newPassive(BodyChip, pinD, geometry.Point2D{X: 5, Y: 2}, geometry.Point2D{X: 3, Y: 1})
		pads := c.Pads()
		assert.Equal(t, pads[0].RelCenter.Neg(), pads[1].RelCenter)
		assert.Equal(t, geometry.Point2D{X: pinD}, pads[0].RelCenter)
		assert.Equal(t, 0.0, pads[1].RelCenter.Y)
	}
}

func TestOnSides(t *testing.T) {
	for _, body := range allBodies {
		c := newPassive(body, 10, geometry.Point2D{}, geometry.Point2D{})
		if body == BodyChip {
			assert.Equal(t, OneSide, c.OnSides(), body.String())
		} else {
			assert.Equal(t, BothSides, c.OnSides(), body.String())
		}
	}
}

func TestThetaBBox(t *testing.T) {
	tests := []struct {
		name       string
		pinD       float64
		bodyCorner geometry.Point2D
		pinCorner  geometry.Point2D
		wantL      float64
		wantW      float64
	}{
		{"pins dominate", 10, geometry.Point2D{X: 5, Y: 2}, geometry.Point2D{X: 3, Y: 1}, 13, 2},
		{"body dominates", 2, geometry.Point2D{X: 20, Y: 8}, geometry.Point2D{X: 1, Y: 1}, 20, 8},
		{"pad taller", 5, geometry.Point2D{X: 4, Y: 1}, geometry.Point2D{X: 1, Y: 3}, 6, 3},
		{"degenerate", 0, geometry.Point2D{}, geometry.Point2D{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newPassive(BodyChip, tt.pinD, tt.bodyCorner, tt.pinCorner)
			bb := c.ThetaBBox()
			assert.Equal(t, geometry.Point2D{}, bb.Center())
			assert.Equal(t, tt.wantL*2, bb.Width)
			assert.Equal(t, tt.wantW*2, bb.Height)

			assert.GreaterOrEqual(t, bb.Width/2, tt.pinD+tt.pinCorner.X)
			assert.GreaterOrEqual(t, bb.Width/2, tt.bodyCorner.X)
			assert.GreaterOrEqual(t, bb.Height/2, tt.pinCorner.Y)
			assert.GreaterOrEqual(t, bb.Height/2, tt.bodyCorner.Y)
		})
	}
}

func TestThetaBBoxIgnoresPlacement(t *testing.T) {
	a := newPassive(BodyChip, 10, geometry.Point2D{X: 5, Y: 2}, geometry.Point2D{X: 3, Y: 1})
	b := NewPassive2Component(nil, geometry.Point2D{X: -300, Y: 7}, math.Pi/3, SideBottom,
		SymDiode, BodyChip, 10, geometry.Point2D{X: 5, Y: 2}, geometry.Point2D{X: 3, Y: 1})
	assert.Equal(t, a.ThetaBBox(), b.ThetaBBox())
}

func TestNegativeGeometryDoesNotFail(t *testing.T) {
	c := newPassive(BodySMDCap, -4, geometry.Point2D{X: -1, Y: -1}, geometry.Point2D{X: -2, Y: -0.5})
	pads := c.Pads()
	require.Len(t, pads, 2)
	assert.Equal(t, -4.0, pads[0].Width)
	assert.Equal(t, -1.0, pads[0].Height)
	assert.Equal(t, geometry.Point2D{X: -4}, pads[0].RelCenter)

	bb := c.ThetaBBox()
	assert.Equal(t, -2.0, bb.Width)
	assert.Equal(t, -1.0, bb.Height)
}

func TestWorldPlacement(t *testing.T) {
	s := stackup.Default()
	c := NewPassive2Component(fakeResolver{s}, geometry.Point2D{X: 100, Y: 50}, math.Pi/2, SideTop,
		SymCapacitor, BodyChip, 10, geometry.Point2D{X: 5, Y: 2}, geometry.Point2D{X: 3, Y: 1})

	assert.Same(t, s.Top(), c.Layer())

	p1 := c.Pads()[0].WorldCenter()
	assert.InDelta(t, 100, p1.X, 1e-9)
	assert.InDelta(t, 60, p1.Y, 1e-9)

	bb := c.WorldBBox()
	assert.InDelta(t, 98, bb.X, 1e-9)
	assert.InDelta(t, 37, bb.Y, 1e-9)
	assert.InDelta(t, 4, bb.Width, 1e-9)
	assert.InDelta(t, 26, bb.Height, 1e-9)

	c.Side = SideBottom
	assert.Same(t, s.Bottom(), c.Layer())
}

func TestBottomSideMirrors(t *testing.T) {
	c := NewPassive2Component(nil, geometry.Point2D{}, 0, SideBottom,
		SymResistor, BodyChip, 10, geometry.Point2D{}, geometry.Point2D{X: 1, Y: 1})
	assert.Nil(t, c.Layer())
	assert.Equal(t, geometry.Point2D{X: -10}, c.Pads()[0].WorldCenter())
}

func TestBottomSideMirrorsBeforeRotating(t *testing.T) {
	c := NewPassive2Component(nil, geometry.Point2D{X: 20, Y: 5}, math.Pi/2, SideBottom,
		SymResistor, BodyChip, 10, geometry.Point2D{}, geometry.Point2D{X: 1, Y: 1})

	// (10, 0) mirrors to (-10, 0), then rotates a quarter turn to (0, -10)
	p1 := c.Pads()[0].WorldCenter()
	assert.InDelta(t, 20, p1.X, 1e-9)
	assert.InDelta(t, -5, p1.Y, 1e-9)

	want := geometry.Point2D{X: -10}.Rotate(math.Pi / 2).Add(c.Center)
	assert.InDelta(t, want.X, p1.X, 1e-12)
	assert.InDelta(t, want.Y, p1.Y, 1e-12)
}

func TestPadLocalBBox(t *testing.T) {
	c := newPassive(BodyChip, 10, geometry.Point2D{}, geometry.Point2D{X: 3, Y: 1})
	bb := c.Pads()[1].LocalBBox()
	assert.Equal(t, geometry.Rect{X: -13, Y: -1, Width: 6, Height: 2}, bb)
	assert.True(t, c.ThetaBBox().Contains(bb.TopLeft()))
	assert.True(t, c.ThetaBBox().Contains(bb.BottomRight()))
}

func TestEnumNames(t *testing.T) {
	for _, body := range allBodies {
		got, err := ParsePassive2BodyType(body.String())
		require.NoError(t, err)
		assert.Equal(t, body, got)
	}
	sym, err := ParsePassiveSymType(" Capacitor_Polarized ")
	require.NoError(t, err)
	assert.Equal(t, SymCapacitorPolarized, sym)
	assert.Equal(t, "C", sym.Designator())

	_, err = ParsePassive2BodyType("bga")
	assert.Error(t, err)
}
