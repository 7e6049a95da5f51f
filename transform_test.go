package redline

import (
	"math"
	"testing"
)

func TestMoveTranslatesAllGeometry(t *testing.T) {
	leader := Pt(0.05, 0.05)

	tests := []struct {
		name string
		m    Markup
		// probe extracts a representative point after the move.
		probe func(m Markup) Point
		want  Point
	}{
		{
			name:  "freehand point",
			m:     &Freehand{Meta: newCommon(0), Stroke: KindPen, Points: []Point{Pt(0.1, 0.2)}},
			probe: func(m Markup) Point { return m.(*Freehand).Points[0] },
			want:  Pt(0.2, 0.4),
		},
		{
			name:  "box start",
			m:     NewBox(KindRectangle, 0, Pt(0.1, 0.2), Pt(0.3, 0.4)),
			probe: func(m Markup) Point { return m.(*Box).Start },
			want:  Pt(0.2, 0.4),
		},
		{
			name:  "segment end",
			m:     NewSegment(KindArrow, 0, Pt(0, 0), Pt(0.1, 0.2)),
			probe: func(m Markup) Point { return m.(*Segment).End },
			want:  Pt(0.2, 0.4),
		},
		{
			name:  "arc chord",
			m:     NewArc(0, Pt(0.1, 0.2), Pt(0.5, 0.2), 0.5),
			probe: func(m Markup) Point { return m.(*Arc).P1 },
			want:  Pt(0.2, 0.4),
		},
		{
			name: "callout leader follows",
			m: &TextBox{Meta: newCommon(0), Variant: KindCallout,
				Start: Pt(0.1, 0.2), End: Pt(0.4, 0.3), Leader: &leader},
			probe: func(m Markup) Point { return *m.(*TextBox).Leader },
			want:  Pt(0.15, 0.25),
		},
		{
			name:  "note anchor",
			m:     NewNote(0, Pt(0.1, 0.2)),
			probe: func(m Markup) Point { return m.(*Note).At },
			want:  Pt(0.2, 0.4),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := 0.1, 0.2
			if tt.name == "callout leader follows" {
				dx, dy = 0.05, 0.05
			}
			moved := Move(tt.m, dx, dy)
			if moved == tt.m {
				t.Fatal("Move returned the original, want a copy")
			}
			got := tt.probe(moved)
			if !near(got, tt.want) {
				t.Errorf("probe after Move = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveReadOnlyIsNoOp(t *testing.T) {
	b := NewBox(KindRectangle, 0, Pt(0.1, 0.1), Pt(0.2, 0.2))
	b.Meta.ReadOnly = true
	if got := Move(b, 0.1, 0.1); got != Markup(b) {
		t.Error("Move on read-only markup should return it unchanged")
	}
}

func TestResizeCornerPreservesAnchor(t *testing.T) {
	orig := Rect{MinX: 0.1, MinY: 0.1, MaxX: 0.3, MaxY: 0.3}

	tests := []struct {
		name    string
		h       HandleID
		dx, dy  float64
		want    Rect
		wantEnd Point // the dragged corner must stay the live end
	}{
		{
			name: "se grows both axes",
			h:    HandleSE, dx: 0.05, dy: 0.05,
			want:    Rect{MinX: 0.1, MinY: 0.1, MaxX: 0.35, MaxY: 0.35},
			wantEnd: Pt(0.35, 0.35),
		},
		{
			name: "nw moves min corner",
			h:    HandleNW, dx: -0.05, dy: -0.05,
			want:    Rect{MinX: 0.05, MinY: 0.05, MaxX: 0.3, MaxY: 0.3},
			wantEnd: Pt(0.05, 0.05),
		},
		{
			name: "east edge only x",
			h:    HandleE, dx: 0.1, dy: 0.5,
			want:    Rect{MinX: 0.1, MinY: 0.1, MaxX: 0.4, MaxY: 0.3},
			wantEnd: Pt(0.4, 0.3),
		},
		{
			name: "drag past anchor flips",
			h:    HandleE, dx: -0.3, dy: 0,
			want:    Rect{MinX: 0.0, MinY: 0.1, MaxX: 0.1, MaxY: 0.3},
			wantEnd: Pt(0.0, 0.3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewBox(KindRectangle, 0, Pt(orig.MinX, orig.MinY), Pt(orig.MaxX, orig.MaxY))
			got := Resize(box, tt.h, tt.dx, tt.dy, orig).(*Box)
			b := RectFromPoints(got.Start, got.End)
			if !nearRect(b, tt.want) {
				t.Errorf("bounds after resize = %+v, want %+v", b, tt.want)
			}
			if !near(got.End, tt.wantEnd) {
				t.Errorf("End after resize = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestResizeUnsupportedIsNoOp(t *testing.T) {
	pen := &Freehand{Meta: newCommon(0), Stroke: KindPen, Points: []Point{Pt(0.1, 0.1), Pt(0.2, 0.2)}}
	if got := Resize(pen, HandleSE, 0.1, 0.1, Rect{}); got != Markup(pen) {
		t.Error("Resize on a freehand stroke should be a no-op")
	}
	seg := NewSegment(KindLine, 0, Pt(0, 0), Pt(1, 1))
	if got := Resize(seg, HandleSE, 0.1, 0.1, Rect{}); got != Markup(seg) {
		t.Error("compass handle on a segment should be a no-op")
	}
}

func TestResizeSegmentEndpoints(t *testing.T) {
	seg := NewSegment(KindLine, 0, Pt(0.1, 0.1), Pt(0.5, 0.5))
	got := Resize(seg, HandleP2, 0.1, -0.1, Rect{}).(*Segment)
	if !near(got.End, Pt(0.6, 0.4)) {
		t.Errorf("End = %v, want (0.6, 0.4)", got.End)
	}
	if !near(got.Start, Pt(0.1, 0.1)) {
		t.Errorf("Start moved: %v", got.Start)
	}
}

func TestArcBulgeRoundTrip(t *testing.T) {
	arc := NewArc(0, Pt(0.2, 0.5), Pt(0.8, 0.5), 0.4)
	apex := ArcApex(arc)
	if got := ArcBulgeFor(arc, apex); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("ArcBulgeFor(apex) = %v, want 0.4", got)
	}

	// Dragging the bulge handle across the chord negates the bulge.
	mid := arc.P1.Lerp(arc.P2, 0.5)
	mirrored := Pt(apex.X, 2*mid.Y-apex.Y)
	if got := ArcBulgeFor(arc, mirrored); math.Abs(got+0.4) > 1e-9 {
		t.Errorf("mirrored bulge = %v, want -0.4", got)
	}
}

func TestMoveVertex(t *testing.T) {
	p := &Polyline{Meta: newCommon(0), Variant: KindPolyline,
		Points: []Point{Pt(0.1, 0.1), Pt(0.5, 0.5), Pt(0.9, 0.1)}}

	got := MoveVertex(p, 1, Pt(0.4, 0.6)).(*Polyline)
	if !near(got.Points[1], Pt(0.4, 0.6)) {
		t.Errorf("vertex 1 = %v, want (0.4, 0.6)", got.Points[1])
	}
	if !near(p.Points[1], Pt(0.5, 0.5)) {
		t.Error("MoveVertex mutated the original")
	}
	if MoveVertex(p, 7, Pt(0, 0)) != Markup(p) {
		t.Error("out-of-range index should be a no-op")
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct {
		name string
		m    Markup
		want bool
	}{
		{
			name: "single pen point",
			m:    &Freehand{Meta: newCommon(0), Stroke: KindPen, Points: []Point{Pt(0.5, 0.5)}},
			want: true,
		},
		{
			name: "pen with two coincident points",
			m: &Freehand{Meta: newCommon(0), Stroke: KindPen,
				Points: []Point{Pt(0.5, 0.5), Pt(0.5001, 0.5001)}},
			want: true,
		},
		{
			name: "pen with two distinct points",
			m: &Freehand{Meta: newCommon(0), Stroke: KindPen,
				Points: []Point{Pt(0.5, 0.5), Pt(0.6, 0.6)}},
			want: false,
		},
		{
			name: "tiny box",
			m:    NewBox(KindRectangle, 0, Pt(0.5, 0.5), Pt(0.501, 0.501)),
			want: true,
		},
		{
			name: "normal box",
			m:    NewBox(KindRectangle, 0, Pt(0.1, 0.1), Pt(0.3, 0.3)),
			want: false,
		},
		{
			name: "zero length segment",
			m:    NewSegment(KindLine, 0, Pt(0.5, 0.5), Pt(0.5, 0.5)),
			want: true,
		},
		{
			name: "note is never degenerate",
			m:    NewNote(0, Pt(0.5, 0.5)),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Degenerate(tt.m, MinimumSpan); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateStoresScalar(t *testing.T) {
	box := NewBox(KindRectangle, 0, Pt(0.1, 0.1), Pt(0.3, 0.3))
	got := Rotate(box, 45).(*Box)
	if got.Rotation != 45 {
		t.Errorf("Rotation = %v, want 45", got.Rotation)
	}
	// Coordinates must not be baked.
	if !near(got.Start, Pt(0.1, 0.1)) || !near(got.End, Pt(0.3, 0.3)) {
		t.Error("Rotate changed corner coordinates")
	}
	// Kinds without rotation are unchanged.
	seg := NewSegment(KindLine, 0, Pt(0, 0), Pt(1, 1))
	if Rotate(seg, 45) != Markup(seg) {
		t.Error("Rotate on a segment should be a no-op")
	}
}

func TestRotatePoint(t *testing.T) {
	c := Pt(0.5, 0.5)
	got := RotatePoint(c, Pt(0.7, 0.5), 90)
	// Clockwise in y-down: +x rotates to +y.
	if !near(got, Pt(0.5, 0.7)) {
		t.Errorf("RotatePoint 90 = %v, want (0.5, 0.7)", got)
	}
	back := RotatePoint(c, got, -90)
	if !near(back, Pt(0.7, 0.5)) {
		t.Errorf("inverse rotation = %v, want (0.7, 0.5)", back)
	}
}

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func nearRect(a, b Rect) bool {
	return math.Abs(a.MinX-b.MinX) < 1e-9 && math.Abs(a.MinY-b.MinY) < 1e-9 &&
		math.Abs(a.MaxX-b.MaxX) < 1e-9 && math.Abs(a.MaxY-b.MaxY) < 1e-9
}
