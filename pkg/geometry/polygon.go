package geometry

// Polygon is a closed outline; the last vertex connects back to the first.
type Polygon []Point2D

// RectPolygon returns the corners of r transformed by t.
func RectPolygon(r Rect, t AffineTransform) Polygon {
	corners := r.Corners()
	poly := make(Polygon, len(corners))
	for i, c := range corners {
		poly[i] = t.Apply(c)
	}
	return poly
}

// Contains tests if a point is inside the polygon using ray casting.
// Points exactly on an edge may fall either way.
func (poly Polygon) Contains(p Point2D) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[(i+1)%n]
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (poly Polygon) Bounds() Rect {
	return BoundingBox(poly)
}
