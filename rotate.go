package redline

import "math"

// RotatePoint rotates p about center by deg degrees clockwise (positive
// angles rotate clockwise in the y-down page frame).
//
// Stored markup rotation is never baked into coordinates: it remains a
// scalar degrees value applied around the bounds center at render and
// hit-test time. RotatePoint exists for handle placement and for
// inverse-rotating hit probes.
func RotatePoint(center, p Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// Rotate returns a clone of m with its stored rotation set to deg.
// Kinds that do not rotate are returned unchanged.
func Rotate(m Markup, deg float64) Markup {
	if !CanRotate(m) {
		return m
	}
	out := m.Clone()
	setRotation(out, deg)
	return out
}
