package redline

import "github.com/markuplab/redline/internal/shapepath"

// BoundsOf returns the markup's axis-aligned bounding rectangle in
// page-normalized units, ignoring stored rotation. ok is false for kinds
// without resolvable geometry (a Note is a point annotation) and for
// point-set markups with no points yet.
//
// Arc bounds cover the sampled arc, so a deep bulge extends the box past
// the chord. Callout bounds include the leader target.
func BoundsOf(m Markup) (Rect, bool) {
	switch v := m.(type) {
	case *Freehand:
		return boundsOfPoints(v.Points)
	case *Polyline:
		return boundsOfPoints(v.Points)
	case *Box:
		return RectFromPoints(v.Start, v.End), true
	case *Segment:
		return RectFromPoints(v.Start, v.End), true
	case *Arc:
		return boundsOfPoints(arcOutline(v))
	case *TextBox:
		r := RectFromPoints(v.Start, v.End)
		if v.Leader != nil {
			r = r.IncludePoint(*v.Leader)
		}
		return r, true
	case *Note:
		return Rect{}, false
	case *Placed:
		return RectFromPoints(v.Start, v.End), true
	default:
		return Rect{}, false
	}
}

// arcOutline samples the arc's polyline in normalized units.
func arcOutline(a *Arc) []Point {
	sampled := shapepath.Arc(
		shapepath.Point{X: a.P1.X, Y: a.P1.Y},
		shapepath.Point{X: a.P2.X, Y: a.P2.Y},
		a.Bulge, shapepath.ArcSegments,
	)
	pts := make([]Point, len(sampled))
	for i, p := range sampled {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return pts
}
