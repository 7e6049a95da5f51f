package redline

import "math"

// MoveEpsilon is the default minimum cumulative movement, in normalized
// units, for a gesture to count as a drag rather than a click. Tunable
// per editor via options.
const MoveEpsilon = 0.001

// MinimumSpan is the default minimum normalized extent a freshly drawn
// shape must reach to be committed. Shapes below it are silently
// discarded.
const MinimumSpan = 0.004

// HandleID identifies one interactive handle on a selected markup.
type HandleID string

// Handle ids. The eight compass ids resize box-family markups; p1/p2
// move segment and arc endpoints; bulge reshapes an arc; rotate spins
// box-family markups. Vertex handles carry the vertex index separately.
const (
	HandleN      HandleID = "n"
	HandleS      HandleID = "s"
	HandleE      HandleID = "e"
	HandleW      HandleID = "w"
	HandleNE     HandleID = "ne"
	HandleNW     HandleID = "nw"
	HandleSE     HandleID = "se"
	HandleSW     HandleID = "sw"
	HandleP1     HandleID = "p1"
	HandleP2     HandleID = "p2"
	HandleBulge  HandleID = "bulge"
	HandleRotate HandleID = "rotate"
	HandleVertex HandleID = "vertex"
)

// Move returns a copy of the markup translated by (dx, dy) in normalized
// units. Every coordinate field present on the markup moves uniformly:
// point lists, box corners, segment endpoints, the arc chord, a note's
// anchor and a callout's leader target. Read-only markups are returned
// unchanged.
func Move(m Markup, dx, dy float64) Markup {
	if m.Common().ReadOnly {
		return m
	}
	out := m.Clone()
	switch v := out.(type) {
	case *Freehand:
		translatePoints(v.Points, dx, dy)
	case *Polyline:
		translatePoints(v.Points, dx, dy)
	case *Box:
		v.Start = v.Start.Add(Point{X: dx, Y: dy})
		v.End = v.End.Add(Point{X: dx, Y: dy})
	case *Segment:
		v.Start = v.Start.Add(Point{X: dx, Y: dy})
		v.End = v.End.Add(Point{X: dx, Y: dy})
	case *Arc:
		v.P1 = v.P1.Add(Point{X: dx, Y: dy})
		v.P2 = v.P2.Add(Point{X: dx, Y: dy})
	case *TextBox:
		v.Start = v.Start.Add(Point{X: dx, Y: dy})
		v.End = v.End.Add(Point{X: dx, Y: dy})
		if v.Leader != nil {
			leader := v.Leader.Add(Point{X: dx, Y: dy})
			v.Leader = &leader
		}
	case *Note:
		v.At = v.At.Add(Point{X: dx, Y: dy})
	case *Placed:
		v.Start = v.Start.Add(Point{X: dx, Y: dy})
		v.End = v.End.Add(Point{X: dx, Y: dy})
	}
	return out
}

func translatePoints(pts []Point, dx, dy float64) {
	for i := range pts {
		pts[i].X += dx
		pts[i].Y += dy
	}
}

// Resize returns a copy of the markup with the given handle dragged by
// (dx, dy) from the original geometry. orig is the markup's bounds at
// drag start; deltas are cumulative from drag start, never per-frame.
//
// Compass handles apply to box-family markups only; corner handles move
// both axes, edge handles one. The anchor side never moves and the
// dragged side follows the pointer, so a box dragged past its anchor
// flips instead of clamping. p1/p2 move segment or arc endpoints; bulge
// reshapes the arc.
//
// Unsupported combinations (point-set kinds, notes, read-only markups,
// a compass handle on a segment) return the markup unchanged.
func Resize(m Markup, h HandleID, dx, dy float64, orig Rect) Markup {
	if m.Common().ReadOnly {
		return m
	}
	switch v := m.(type) {
	case *Box:
		out := v.Clone().(*Box)
		if s, e, ok := resizeCorners(orig, h, dx, dy); ok {
			out.Start, out.End = s, e
			return out
		}
		return m
	case *TextBox:
		out := v.Clone().(*TextBox)
		if s, e, ok := resizeCorners(orig, h, dx, dy); ok {
			out.Start, out.End = s, e
			return out
		}
		return m
	case *Placed:
		out := v.Clone().(*Placed)
		if s, e, ok := resizeCorners(orig, h, dx, dy); ok {
			out.Start, out.End = s, e
			return out
		}
		return m
	case *Segment:
		out := v.Clone().(*Segment)
		switch h {
		case HandleP1:
			out.Start = out.Start.Add(Point{X: dx, Y: dy})
		case HandleP2:
			out.End = out.End.Add(Point{X: dx, Y: dy})
		default:
			return m
		}
		return out
	case *Arc:
		out := v.Clone().(*Arc)
		switch h {
		case HandleP1:
			out.P1 = out.P1.Add(Point{X: dx, Y: dy})
		case HandleP2:
			out.P2 = out.P2.Add(Point{X: dx, Y: dy})
		case HandleBulge:
			apex := ArcApex(v).Add(Point{X: dx, Y: dy})
			out.Bulge = ArcBulgeFor(v, apex)
		default:
			return m
		}
		return out
	default:
		return m
	}
}

// resizeCorners applies a compass-handle drag to the original bounds and
// returns the new opposite corners, dragged corner last so it stays the
// live end of the box. ok is false for non-compass handles.
func resizeCorners(orig Rect, h HandleID, dx, dy float64) (start, end Point, ok bool) {
	left, top := orig.MinX, orig.MinY
	right, bottom := orig.MaxX, orig.MaxY

	switch h {
	case HandleW, HandleNW, HandleSW:
		left += dx
	case HandleE, HandleNE, HandleSE:
		right += dx
	}
	switch h {
	case HandleN, HandleNE, HandleNW:
		top += dy
	case HandleS, HandleSE, HandleSW:
		bottom += dy
	}

	switch h {
	case HandleNW:
		return Point{X: right, Y: bottom}, Point{X: left, Y: top}, true
	case HandleNE:
		return Point{X: left, Y: bottom}, Point{X: right, Y: top}, true
	case HandleSE:
		return Point{X: left, Y: top}, Point{X: right, Y: bottom}, true
	case HandleSW:
		return Point{X: right, Y: top}, Point{X: left, Y: bottom}, true
	case HandleN:
		return Point{X: left, Y: bottom}, Point{X: right, Y: top}, true
	case HandleS, HandleE:
		return Point{X: left, Y: top}, Point{X: right, Y: bottom}, true
	case HandleW:
		return Point{X: right, Y: top}, Point{X: left, Y: bottom}, true
	default:
		return Point{}, Point{}, false
	}
}

// MoveVertex returns a copy of the markup with vertex i replaced by p.
// Only point-set kinds have vertices; other kinds, read-only markups and
// out-of-range indices return the markup unchanged.
func MoveVertex(m Markup, i int, p Point) Markup {
	if m.Common().ReadOnly {
		return m
	}
	switch v := m.(type) {
	case *Freehand:
		if i < 0 || i >= len(v.Points) {
			return m
		}
		out := v.Clone().(*Freehand)
		out.Points[i] = p
		return out
	case *Polyline:
		if i < 0 || i >= len(v.Points) {
			return m
		}
		out := v.Clone().(*Polyline)
		out.Points[i] = p
		return out
	default:
		return m
	}
}

// ArcApex returns the arc's apex: the chord midpoint offset
// perpendicular by bulge × chord length. The bulge control handle sits
// here.
func ArcApex(a *Arc) Point {
	chord := a.P1.Distance(a.P2)
	if chord == 0 {
		return a.P1
	}
	mid := a.P1.Lerp(a.P2, 0.5)
	n := arcNormal(a)
	return mid.Add(n.Mul(a.Bulge * chord))
}

// ArcBulgeFor computes the bulge that places the arc's apex at p,
// projecting p onto the chord's perpendicular bisector. A degenerate
// chord keeps the current bulge.
func ArcBulgeFor(a *Arc, p Point) float64 {
	chord := a.P1.Distance(a.P2)
	if chord == 0 {
		return a.Bulge
	}
	mid := a.P1.Lerp(a.P2, 0.5)
	return p.Sub(mid).Dot(arcNormal(a)) / chord
}

// arcNormal is the unit chord normal along which positive bulge offsets
// the apex. Matches the sampling convention in internal/shapepath.
func arcNormal(a *Arc) Point {
	d := a.P2.Sub(a.P1).Normalize()
	return Point{X: d.Y, Y: -d.X}
}

// Degenerate reports whether the markup's extent falls below minSpan and
// should be dropped instead of committed. Pen and highlighter strokes
// additionally require two distinct points; notes are point annotations
// and are never degenerate.
func Degenerate(m Markup, minSpan float64) bool {
	switch v := m.(type) {
	case *Freehand:
		return countDistinct(v.Points, minSpan) < 2
	case *Polyline:
		return countDistinct(v.Points, minSpan) < 2
	case *Segment:
		return v.Start.Distance(v.End) < minSpan
	case *Arc:
		return v.P1.Distance(v.P2) < minSpan
	case *Note:
		return false
	default:
		b, ok := BoundsOf(m)
		if !ok {
			return true
		}
		return b.Width() < minSpan || b.Height() < minSpan
	}
}

// countDistinct counts points separated from their predecessor by at
// least eps, capped at 2 (callers only care about "fewer than two").
func countDistinct(pts []Point, eps float64) int {
	if len(pts) == 0 {
		return 0
	}
	n := 1
	prev := pts[0]
	for _, p := range pts[1:] {
		if math.Hypot(p.X-prev.X, p.Y-prev.Y) >= eps {
			n++
			if n >= 2 {
				return n
			}
			prev = p
		}
	}
	return n
}
