package redline

import (
	"testing"
)

const hitTol = 0.01

func TestHitBoxOutlineVsFill(t *testing.T) {
	outline := NewBox(KindRectangle, 0, Pt(0.2, 0.2), Pt(0.6, 0.6))

	filled := NewBox(KindRectangle, 0, Pt(0.2, 0.2), Pt(0.6, 0.6))
	filled.Meta.Style.FillColor = Yellow
	filled.Meta.Style.FillOpacity = 1

	center := Pt(0.4, 0.4)
	onBorder := Pt(0.2, 0.4)

	if Hit(outline, center, hitTol) {
		t.Error("outline-only box should not hit at its center")
	}
	if !Hit(outline, onBorder, hitTol) {
		t.Error("outline-only box should hit on its border")
	}
	if !Hit(filled, center, hitTol) {
		t.Error("filled box should hit at its center")
	}
	if Hit(filled, Pt(0.9, 0.9), hitTol) {
		t.Error("filled box should miss well outside")
	}
}

func TestHitCircle(t *testing.T) {
	c := NewBox(KindCircle, 0, Pt(0.2, 0.2), Pt(0.6, 0.6))

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "on the ring", p: Pt(0.6, 0.4), want: true},
		{name: "center misses outline", p: Pt(0.4, 0.4), want: false},
		{name: "box corner misses the circle", p: Pt(0.21, 0.21), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hit(c, tt.p, hitTol); got != tt.want {
				t.Errorf("Hit(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitSegment(t *testing.T) {
	seg := NewSegment(KindLine, 0, Pt(0.1, 0.1), Pt(0.9, 0.9))
	if !Hit(seg, Pt(0.5, 0.505), hitTol) {
		t.Error("point near the diagonal should hit")
	}
	if Hit(seg, Pt(0.5, 0.7), hitTol) {
		t.Error("point far from the diagonal should miss")
	}
	// Beyond the endpoint the segment does not extend.
	if Hit(seg, Pt(0.95, 0.95), hitTol/2) {
		t.Error("point past the endpoint should miss")
	}
}

func TestHitRotatedBox(t *testing.T) {
	// A wide flat box rotated 90 degrees becomes tall: points that hit
	// the unrotated outline must miss, and vice versa.
	box := NewBox(KindRectangle, 0, Pt(0.3, 0.45), Pt(0.7, 0.55))
	box.Rotation = 90

	if Hit(box, Pt(0.3, 0.5), hitTol/2) {
		t.Error("left edge of the unrotated box should miss after rotation")
	}
	if !Hit(box, Pt(0.5, 0.3), hitTol) {
		t.Error("top of the rotated box should hit")
	}
}

func TestHitCalloutLeader(t *testing.T) {
	leader := Pt(0.1, 0.1)
	c := &TextBox{Meta: newCommon(0), Variant: KindCallout,
		Start: Pt(0.5, 0.5), End: Pt(0.8, 0.6), Leader: &leader}

	if !Hit(c, Pt(0.6, 0.55), hitTol) {
		t.Error("inside the callout box should hit")
	}
	// Midway along the leader line from the box center to the target.
	mid := RectFromPoints(c.Start, c.End).Center().Lerp(leader, 0.5)
	if !Hit(c, mid, hitTol) {
		t.Error("on the leader line should hit")
	}
}

func TestHitToleranceFloor(t *testing.T) {
	view := PageView{Width: 800, Height: 1000}
	thin := Style{StrokeWidth: 0.5}
	tol := HitTolerance(thin, view)
	if tol < view.NormalizedTolerance(MinHitTolerancePx) {
		t.Errorf("tolerance %v below the %vpx floor", tol, MinHitTolerancePx)
	}
	thick := Style{StrokeWidth: 20}
	if HitTolerance(thick, view) <= tol {
		t.Error("thick strokes should get a larger tolerance")
	}
}
