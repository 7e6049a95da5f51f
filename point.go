package redline

import "math"

// Point represents a 2D position or displacement.
//
// Markup geometry stores points in page-normalized units (0..1 of the
// page's own width/height); PageView converts them to pixels. The same
// type doubles as a pixel-space position where a function documents it.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// PageView is the pixel size of one page at the current zoom level.
// It converts between page-normalized and pixel coordinates; the scale
// is uniform per axis by construction (normalized units are fractions of
// the page's own dimensions).
type PageView struct {
	Width, Height float64
}

// ToPixels converts a page-normalized point to pixels.
func (v PageView) ToPixels(p Point) Point {
	return Point{X: p.X * v.Width, Y: p.Y * v.Height}
}

// ToNormalized converts a pixel point to page-normalized units.
// A zero-sized view maps everything to the origin.
func (v PageView) ToNormalized(p Point) Point {
	if v.Width == 0 || v.Height == 0 {
		return Point{}
	}
	return Point{X: p.X / v.Width, Y: p.Y / v.Height}
}

// NormalizedTolerance converts a pixel tolerance to normalized units,
// using the larger page axis so the tolerance never collapses on
// elongated pages.
func (v PageView) NormalizedTolerance(px float64) float64 {
	d := math.Max(v.Width, v.Height)
	if d == 0 {
		return 0
	}
	return px / d
}
