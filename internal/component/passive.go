package component

import (
	"fmt"
	"strings"

	"pcb-reveng/pkg/geometry"
)

// PassiveSymType is the schematic symbol of a two-terminal part.
// It is descriptive only and does not affect geometry.
type PassiveSymType int

const (
	SymResistor PassiveSymType = iota
	SymCapacitor
	SymCapacitorPolarized
	SymInductor
	SymDiode
)

var symTypeNames = map[PassiveSymType]string{
	SymResistor:           "resistor",
	SymCapacitor:          "capacitor",
	SymCapacitorPolarized: "capacitor_polarized",
	SymInductor:           "inductor",
	SymDiode:              "diode",
}

func (t PassiveSymType) String() string {
	if n, ok := symTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("PassiveSymType(%d)", int(t))
}

// Designator returns the conventional reference prefix, e.g. "R" for resistors.
func (t PassiveSymType) Designator() string {
	switch t {
	case SymResistor:
		return "R"
	case SymCapacitor, SymCapacitorPolarized:
		return "C"
	case SymInductor:
		return "L"
	case SymDiode:
		return "D"
	}
	return "X"
}

// ParsePassiveSymType accepts the names produced by String.
func ParsePassiveSymType(s string) (PassiveSymType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, n := range symTypeNames {
		if n == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown symbol type %q", s)
}

// Passive2BodyType is the physical package shape of a two-terminal part.
type Passive2BodyType int

const (
	BodyChip         Passive2BodyType = iota
	BodySMDCap                        // SMD electrolytic can
	BodyTHAxial                       // Leads out both ends
	BodyTHRadial                      // Both leads out one end
	BodyTHFlippedCap                  // Radial can laid on its side
)

var bodyTypeNames = map[Passive2BodyType]string{
	BodyChip:         "chip",
	BodySMDCap:       "smd_cap",
	BodyTHAxial:      "th_axial",
	BodyTHRadial:     "th_radial",
	BodyTHFlippedCap: "th_flipped_cap",
}

func (b Passive2BodyType) String() string {
	if n, ok := bodyTypeNames[b]; ok {
		return n
	}
	return fmt.Sprintf("Passive2BodyType(%d)", int(b))
}

// IsThroughHole reports whether pads of this body get drilled, square pads.
func (b Passive2BodyType) IsThroughHole() bool {
	return b == BodyTHAxial || b == BodyTHRadial
}

// ParsePassive2BodyType accepts the names produced by String.
func ParsePassive2BodyType(s string) (Passive2BodyType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, n := range bodyTypeNames {
		if n == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown body type %q", s)
}

// Passive2Component is any two-terminal part: resistors, capacitors,
// inductors, diodes, LEDs. Its pads are derived from four geometry values
// that never change after construction.
//
// Geometry inputs are not validated. Negative or zero vectors give
// degenerate pads rather than an error, so documents saved mid-edit still load.
//
// The pad cache is filled on first use and is not safe for concurrent
// first access.
type Passive2Component struct {
	Base

	symType  PassiveSymType
	bodyType Passive2BodyType

	pinD          float64          // Center to each pin along local X
	bodyCornerVec geometry.Point2D // Half-extents of the drawn body
	pinCornerVec  geometry.Point2D // Half-extents of each pad

	pads []*Pad
}

// NewPassive2Component creates a two-terminal part placed at center.
// resolver may be nil.
func NewPassive2Component(resolver SideLayerResolver, center geometry.Point2D, theta float64, side Side,
	symType PassiveSymType, bodyType Passive2BodyType, pinD float64,
	bodyCornerVec, pinCornerVec geometry.Point2D) *Passive2Component {
	return &Passive2Component{
		Base:          NewBase(center, theta, side, resolver),
		symType:       symType,
		bodyType:      bodyType,
		pinD:          pinD,
		bodyCornerVec: bodyCornerVec,
		pinCornerVec:  pinCornerVec,
	}
}

func (c *Passive2Component) SymType() PassiveSymType { return c.symType }
func (c *Passive2Component) BodyType() Passive2BodyType { return c.bodyType }
func (c *Passive2Component) PinD() float64 { return c.pinD }
func (c *Passive2Component) BodyCornerVec() geometry.Point2D { return c.bodyCornerVec }
func (c *Passive2Component) PinCornerVec() geometry.Point2D { return c.pinCornerVec }

// Pads returns pad "1" at (+pinD, 0) and pad "2" at (-pinD, 0). The same
// pad objects are returned on every call.
func (c *Passive2Component) Pads() []*Pad {
	if c.pads != nil {
		return c.pads
	}

	v := geometry.FromPolar(0, c.pinD)
	th := c.bodyType.IsThroughHole()

	var height, width float64
	if th {
		height = c.pinCornerVec.X * 2
		width = height
	} else {
		height = c.pinCornerVec.Y * 2
		width = c.pinCornerVec.X * 2
	}

	c.pads = []*Pad{
		NewPad(c, "1", v, 0, height, width, th, c.Side),
		NewPad(c, "2", v.Neg(), 0, height, width, th, c.Side),
	}
	return c.pads
}

// OnSides reports OneSide for chip parts and BothSides for everything else.
func (c *Passive2Component) OnSides() OnSide {
	if c.bodyType == BodyChip {
		return OneSide
	}
	return BothSides
}

// ThetaBBox returns the bounds of body and pads in the local frame,
// centered on the origin. Callers apply Matrix themselves.
func (c *Passive2Component) ThetaBBox() geometry.Rect {
	l := max(c.pinD+c.pinCornerVec.X, c.bodyCornerVec.X)
	w := max(c.pinCornerVec.Y, c.bodyCornerVec.Y)
	return geometry.FromCenterSize(geometry.Point2D{}, l*2, w*2)
}

// WorldBBox returns the axis-aligned board-frame bounds of ThetaBBox.
func (c *Passive2Component) WorldBBox() geometry.Rect {
	return c.Matrix().ApplyRect(c.ThetaBBox())
}

func (c *Passive2Component) String() string {
	return fmt.Sprintf("%s/%s pin_d=%g body=(%g,%g) pin=(%g,%g) at (%g,%g) %s",
		c.symType, c.bodyType, c.pinD,
		c.bodyCornerVec.X, c.bodyCornerVec.Y, c.pinCornerVec.X, c.pinCornerVec.Y,
		c.Center.X, c.Center.Y, c.Side)
}
