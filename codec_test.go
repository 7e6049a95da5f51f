package redline

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectionJSONRoundTrip(t *testing.T) {
	leader := Pt(0.05, 0.05)

	col := NewCollection()
	col.Add(&Freehand{Meta: newCommon(0), Stroke: KindPen,
		Points: []Point{Pt(0.1, 0.1), Pt(0.2, 0.15), Pt(0.3, 0.1)}})
	col.Add(&Polyline{Meta: newCommon(1), Variant: KindPolygon,
		Points: []Point{Pt(0.1, 0.1), Pt(0.5, 0.1), Pt(0.3, 0.4)}, Closed: true})
	box := NewBox(KindCloud, 0, Pt(0.2, 0.2), Pt(0.6, 0.5))
	box.Rotation = 30
	col.Add(box)
	col.Add(NewSegment(KindArrow, 2, Pt(0.1, 0.9), Pt(0.9, 0.1)))
	col.Add(NewArc(0, Pt(0.2, 0.5), Pt(0.8, 0.5), -0.35))
	text := NewTextBox(KindCallout, 1, Pt(0.4, 0.4), Pt(0.7, 0.5))
	text.Text = "check\nthis"
	text.Align = AlignCenter
	text.Leader = &leader
	col.Add(text)
	note := NewNote(2, Pt(0.5, 0.5))
	note.Text = "needs review"
	col.Add(note)
	placed := NewPlaced(KindSymbol, 0, Pt(0.1, 0.1), Pt(0.2, 0.2), "sym-42")
	placed.Label = "valve"
	placed.Meta.Origin = OriginDetected
	col.Add(placed)

	data, err := col.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	got := NewCollection()
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if diff := cmp.Diff(col.All(), got.All()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePreservesZOrder(t *testing.T) {
	col := NewCollection()
	a, b := testBox(0), testBox(0)
	col.Add(a)
	col.Add(b)

	data, err := col.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	got := NewCollection()
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got.At(0).Common().ID != a.Meta.ID || got.At(1).Common().ID != b.Meta.ID {
		t.Error("record order did not survive as z-order")
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	payload := `[{"kind":"hologram","id":"x","page":0,"createdAt":"2026-01-01T00:00:00Z"}]`
	c := NewCollection()
	err := c.UnmarshalJSON([]byte(payload))
	if err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("error %v does not wrap ErrUnknownKind", err)
	}
	if !strings.Contains(err.Error(), "hologram") {
		t.Errorf("error %v does not name the offending kind", err)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	c := NewCollection()
	if err := c.UnmarshalJSON([]byte(`{"not":"an array"`)); err == nil {
		t.Error("expected an error for malformed input")
	}
}
