package redline

import "math"

// MinHitTolerancePx is the pixel floor for hit tolerance so thin strokes
// stay clickable.
const MinHitTolerancePx = 4.0

// HitTolerance derives a hit-test tolerance in normalized units from the
// markup's stroke width and the current page view: half the stroke width
// plus a small slack, floored at MinHitTolerancePx.
func HitTolerance(s Style, view PageView) float64 {
	px := math.Max(s.StrokeWidth/2+2, MinHitTolerancePx)
	return view.NormalizedTolerance(px)
}

// Hit reports whether the page-normalized point p lies on the markup
// within tolerance tol (also normalized).
//
// Box kinds with a painted fill test containment; outline-only styles
// test proximity to the border. Segment kinds use point-to-segment
// distance, point-set kinds test each consecutive segment, arcs test the
// sampled arc polyline. Text and placed kinds are always solid targets.
// Rotated markups inverse-rotate the probe about the bounds center
// before testing.
func Hit(m Markup, p Point, tol float64) bool {
	p = unrotateProbe(m, p)

	switch v := m.(type) {
	case *Freehand:
		return hitPolyline(v.Points, false, p, tol)

	case *Polyline:
		return hitPolyline(v.Points, v.Closed, p, tol)

	case *Box:
		r := RectFromPoints(v.Start, v.End)
		switch v.Variant {
		case KindCircle:
			return hitEllipse(r, v.Meta.Style.Filled(), p, tol)
		default:
			// Rectangle and cloud: the scalloped cloud outline stays
			// within tolerance of the box border.
			if v.Meta.Style.Filled() {
				return r.Expand(tol).Contains(p)
			}
			return hitRectOutline(r, p, tol)
		}

	case *Segment:
		return distToSegment(p, v.Start, v.End) <= tol

	case *Arc:
		return hitPolyline(arcOutline(v), false, p, tol)

	case *TextBox:
		if RectFromPoints(v.Start, v.End).Expand(tol).Contains(p) {
			return true
		}
		if v.Leader != nil {
			anchor := RectFromPoints(v.Start, v.End).Center()
			return distToSegment(p, anchor, *v.Leader) <= tol
		}
		return false

	case *Note:
		return v.At.Distance(p) <= tol

	case *Placed:
		return RectFromPoints(v.Start, v.End).Expand(tol).Contains(p)

	default:
		return false
	}
}

// unrotateProbe maps the probe into the markup's unrotated frame.
func unrotateProbe(m Markup, p Point) Point {
	deg := RotationOf(m)
	if deg == 0 {
		return p
	}
	b, ok := BoundsOf(m)
	if !ok {
		return p
	}
	return RotatePoint(b.Center(), p, -deg)
}

// hitPolyline tests the probe against every consecutive segment of the
// point list. A single point degenerates to a point-distance test.
func hitPolyline(pts []Point, closed bool, p Point, tol float64) bool {
	switch len(pts) {
	case 0:
		return false
	case 1:
		return pts[0].Distance(p) <= tol
	}
	for i := 0; i < len(pts)-1; i++ {
		if distToSegment(p, pts[i], pts[i+1]) <= tol {
			return true
		}
	}
	if closed && distToSegment(p, pts[len(pts)-1], pts[0]) <= tol {
		return true
	}
	return false
}

// hitRectOutline tests proximity to the four border segments.
func hitRectOutline(r Rect, p Point, tol float64) bool {
	corners := [4]Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
	for i := range corners {
		if distToSegment(p, corners[i], corners[(i+1)%4]) <= tol {
			return true
		}
	}
	return false
}

// hitEllipse tests the ellipse inscribed in r. Filled ellipses test
// containment; outlines test radial proximity scaled by the smaller
// semi-axis, which is exact for circles and a close bound for moderate
// aspect ratios.
func hitEllipse(r Rect, filled bool, p Point, tol float64) bool {
	rx := r.Width() / 2
	ry := r.Height() / 2
	if rx <= 0 || ry <= 0 {
		return distToSegment(p, Point{X: r.MinX, Y: r.MinY}, Point{X: r.MaxX, Y: r.MaxY}) <= tol
	}
	c := r.Center()
	v := math.Hypot((p.X-c.X)/rx, (p.Y-c.Y)/ry)
	if filled {
		return v <= 1+tol/math.Min(rx, ry)
	}
	return math.Abs(v-1)*math.Min(rx, ry) <= tol
}

// distToSegment returns the distance from p to the segment a-b.
func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	ll := ab.LengthSquared()
	if ll == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / ll
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Lerp(b, t))
}
