package component

import (
	"pcb-reveng/pkg/geometry"
)

// PadOwner is the component a pad belongs to.
type PadOwner interface {
	Matrix() geometry.AffineTransform
}

// Pad is a single conductive connection point of a component.
// Geometry is in the owner's local frame.
type Pad struct {
	owner PadOwner

	Name        string           // Pad label, e.g. "1"
	RelCenter   geometry.Point2D // Offset from the component origin
	Theta       float64          // Rotation relative to the component, radians
	Height      float64          // Extent along the pad's local Y axis
	Width       float64          // Extent along the pad's local X axis
	ThroughHole bool
	Side        Side
}

// NewPad creates a pad owned by owner.
func NewPad(owner PadOwner, name string, rel geometry.Point2D, theta, height, width float64, throughHole bool, side Side) *Pad {
	return &Pad{
		owner:       owner,
		Name:        name,
		RelCenter:   rel,
		Theta:       theta,
		Height:      height,
		Width:       width,
		ThroughHole: throughHole,
		Side:        side,
	}
}

// Owner returns the component the pad belongs to.
func (p *Pad) Owner() PadOwner {
	return p.owner
}

// LocalBBox returns the pad's bounding box in the owner's local frame.
func (p *Pad) LocalBBox() geometry.Rect {
	r := geometry.FromCenterSize(geometry.Point2D{}, p.Width, p.Height)
	m := geometry.Translation(p.RelCenter.X, p.RelCenter.Y)
	if p.Theta != 0 {
		m = m.Compose(geometry.Rotation(p.Theta))
	}
	return m.ApplyRect(r)
}

// WorldCenter returns the pad center in board coordinates.
func (p *Pad) WorldCenter() geometry.Point2D {
	if p.owner == nil {
		return p.RelCenter
	}
	return p.owner.Matrix().Apply(p.RelCenter)
}
