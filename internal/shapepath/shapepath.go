// Package shapepath builds sampled outlines for the markup shapes whose
// geometry is not a plain point list: circular arcs defined by a chord
// and bulge, revision-cloud bumps, and arrowhead triangles. Both the
// hit-testing code in the root package and the raster painters in
// render/ consume these outlines, so the construction lives in one
// place.
//
// The package has its own Point type to keep the import graph acyclic;
// callers convert at the boundary.
package shapepath

import "math"

// Point is a 2D position in whatever space the caller works in
// (page-normalized or pixels).
type Point struct {
	X, Y float64
}

// ArcSegments is the default sample count for a full arc outline.
const ArcSegments = 32

// Arc samples the circular arc through the chord p1-p2 whose apex is
// offset perpendicular to the chord by bulge × chord length. The sign of
// bulge selects the side. n is the number of segments (n+1 points are
// returned, endpoints included). A near-zero bulge or degenerate chord
// yields the straight chord.
func Arc(p1, p2 Point, bulge float64, n int) []Point {
	if n < 1 {
		n = ArcSegments
	}
	chord := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	if chord < 1e-12 || math.Abs(bulge) < 1e-6 {
		return []Point{p1, p2}
	}

	// Apex: chord midpoint offset along the (dy, -dx) normal. In y-down
	// screen space a positive bulge on a clockwise outline faces outward.
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	nx := (p2.Y - p1.Y) / chord
	ny := -(p2.X - p1.X) / chord
	apex := Point{X: mx + nx*bulge*chord, Y: my + ny*bulge*chord}

	c, r, ok := circumcenter(p1, apex, p2)
	if !ok {
		return []Point{p1, p2}
	}

	a1 := math.Atan2(p1.Y-c.Y, p1.X-c.X)
	am := math.Atan2(apex.Y-c.Y, apex.X-c.X)
	a2 := math.Atan2(p2.Y-c.Y, p2.X-c.X)

	// Sweep from a1 to a2 passing through am. Choose the sweep direction
	// whose interior contains the apex angle.
	sweep := normAngle(a2 - a1)
	if !angleBetween(a1, sweep, am) {
		sweep = sweep - math.Copysign(2*math.Pi, sweep)
	}

	out := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a1 + sweep*float64(i)/float64(n)
		out = append(out, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return out
}

// circumcenter returns the center and radius of the circle through three
// points. ok is false when the points are collinear.
func circumcenter(a, b, c Point) (Point, float64, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return Point{}, 0, false
	}
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	ux := (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d
	uy := (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d
	center := Point{X: ux, Y: uy}
	return center, math.Hypot(a.X-center.X, a.Y-center.Y), true
}

// normAngle wraps an angle into (-2π, 2π) preserving sign.
func normAngle(a float64) float64 {
	for a > 2*math.Pi {
		a -= 2 * math.Pi
	}
	for a < -2*math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angleBetween reports whether angle m lies on the sweep starting at a1
// with signed extent sweep.
func angleBetween(a1, sweep, m float64) bool {
	d := m - a1
	for d < 0 {
		d += 2 * math.Pi
	}
	for d >= 2*math.Pi {
		d -= 2 * math.Pi
	}
	if sweep >= 0 {
		return d <= sweep+1e-9
	}
	return d-2*math.Pi >= sweep-1e-9
}

// Arrowhead returns the three corners of a filled arrowhead triangle
// whose tip sits at to, pointing along the from→to direction. size is
// the arrow length in the caller's units. Degenerate direction yields a
// zero triangle at the tip.
func Arrowhead(from, to Point, size float64) [3]Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return [3]Point{to, to, to}
	}
	dx /= length
	dy /= length

	const spread = 0.5 // half-width as a fraction of the arrow length
	base1 := Point{
		X: to.X - size*dx + size*dy*spread,
		Y: to.Y - size*dy - size*dx*spread,
	}
	base2 := Point{
		X: to.X - size*dx - size*dy*spread,
		Y: to.Y - size*dy + size*dx*spread,
	}
	return [3]Point{to, base1, base2}
}

// CloudOutline replaces each segment of a polyline with outward-bulging
// arc bumps of roughly the given radius, producing the scalloped
// revision-cloud look. Bumps bulge to the left of the walking direction,
// so a clockwise outline bulges outward. closed joins the last point
// back to the first.
func CloudOutline(pts []Point, closed bool, radius float64) []Point {
	if len(pts) < 2 || radius <= 0 {
		return append([]Point(nil), pts...)
	}
	var out []Point
	n := len(pts)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		out = append(out, segmentBumps(a, b, radius)...)
	}
	return out
}

// CloudBox returns the scalloped outline of an axis-aligned box walked
// clockwise so the bumps face outward.
func CloudBox(minX, minY, maxX, maxY, radius float64) []Point {
	corners := []Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
	return CloudOutline(corners, true, radius)
}

// segmentBumps splits the segment a-b into bump-sized chunks and samples
// a semicircular arc over each chunk, bulging to the left of the a→b
// direction.
func segmentBumps(a, b Point, radius float64) []Point {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length < 1e-9 {
		return []Point{a}
	}
	bumps := int(math.Max(1, math.Round(length/(2*radius))))
	const samples = 8

	var out []Point
	for i := 0; i < bumps; i++ {
		t0 := float64(i) / float64(bumps)
		t1 := float64(i+1) / float64(bumps)
		p0 := Point{X: a.X + (b.X-a.X)*t0, Y: a.Y + (b.Y-a.Y)*t0}
		p1 := Point{X: a.X + (b.X-a.X)*t1, Y: a.Y + (b.Y-a.Y)*t1}
		// Semicircle bulge: apex offset equals half the chord.
		arc := Arc(p0, p1, 0.5, samples)
		if i > 0 && len(arc) > 0 {
			arc = arc[1:] // shared endpoint with the previous bump
		}
		out = append(out, arc...)
	}
	return out
}
