package redline

import (
	"testing"
)

func TestBoundsOf(t *testing.T) {
	leader := Pt(0.05, 0.05)

	tests := []struct {
		name   string
		m      Markup
		want   Rect
		wantOK bool
	}{
		{
			name: "freehand",
			m: &Freehand{Meta: newCommon(0), Stroke: KindPen,
				Points: []Point{Pt(0.2, 0.3), Pt(0.6, 0.1), Pt(0.4, 0.5)}},
			want:   Rect{MinX: 0.2, MinY: 0.1, MaxX: 0.6, MaxY: 0.5},
			wantOK: true,
		},
		{
			name:   "empty freehand",
			m:      &Freehand{Meta: newCommon(0), Stroke: KindPen},
			wantOK: false,
		},
		{
			name:   "box normalizes corners",
			m:      NewBox(KindRectangle, 0, Pt(0.7, 0.6), Pt(0.3, 0.2)),
			want:   Rect{MinX: 0.3, MinY: 0.2, MaxX: 0.7, MaxY: 0.6},
			wantOK: true,
		},
		{
			name: "callout includes leader",
			m: &TextBox{Meta: newCommon(0), Variant: KindCallout,
				Start: Pt(0.4, 0.4), End: Pt(0.6, 0.5), Leader: &leader},
			want:   Rect{MinX: 0.05, MinY: 0.05, MaxX: 0.6, MaxY: 0.5},
			wantOK: true,
		},
		{
			name:   "note has no bounds",
			m:      NewNote(0, Pt(0.5, 0.5)),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BoundsOf(tt.m)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !nearRect(got, tt.want) {
				t.Errorf("BoundsOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsOfArcExtendsPastChord(t *testing.T) {
	arc := NewArc(0, Pt(0.2, 0.5), Pt(0.8, 0.5), 0.5)
	b, ok := BoundsOf(arc)
	if !ok {
		t.Fatal("arc bounds not ok")
	}
	chord := RectFromPoints(arc.P1, arc.P2)
	if b.Height() <= chord.Height() {
		t.Errorf("arc bounds height %v should exceed flat chord height %v", b.Height(), chord.Height())
	}
	// The apex must be inside the bounds.
	if !b.Expand(1e-9).Contains(ArcApex(arc)) {
		t.Errorf("bounds %+v do not contain apex %v", b, ArcApex(arc))
	}
}
