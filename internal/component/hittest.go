package component

import (
	"pcb-reveng/pkg/geometry"
)

// WorldOutline returns the board-frame outline of c's ThetaBBox.
func WorldOutline(c Component) geometry.Polygon {
	return geometry.RectPolygon(c.ThetaBBox(), c.Placement().Matrix())
}

// WorldPadOutline returns the board-frame outline of a pad.
func (p *Pad) WorldPadOutline() geometry.Polygon {
	local := geometry.Translation(p.RelCenter.X, p.RelCenter.Y).Compose(geometry.Rotation(p.Theta))
	if p.owner != nil {
		local = p.owner.Matrix().Compose(local)
	}
	return geometry.RectPolygon(geometry.FromCenterSize(geometry.Point2D{}, p.Width, p.Height), local)
}

// HitTest reports whether the board point pt falls inside c's bounds.
func HitTest(c Component, pt geometry.Point2D) bool {
	return WorldOutline(c).Contains(pt)
}

// PadAt returns the pad of c under the board point pt, or nil.
func PadAt(c Component, pt geometry.Point2D) *Pad {
	for _, p := range c.Pads() {
		if p.WorldPadOutline().Contains(pt) {
			return p
		}
	}
	return nil
}
