package redline

import (
	"fmt"
	"math"
)

// HandleKind classifies a handle for rendering and cursor purposes.
type HandleKind string

// Handle kinds.
const (
	CornerHandle   HandleKind = "corner"
	EdgeHandle     HandleKind = "edge"
	EndpointHandle HandleKind = "endpoint"
	VertexHandle   HandleKind = "vertex"
	RotateHandle   HandleKind = "rotate"
	BulgeHandle    HandleKind = "bulge"
)

// Cursor is the pointer shape hint a host should show over a handle.
type Cursor string

// Cursor hints.
const (
	CursorDefault   Cursor = "default"
	CursorMove      Cursor = "move"
	CursorNS        Cursor = "ns-resize"
	CursorEW        Cursor = "ew-resize"
	CursorNESW      Cursor = "nesw-resize"
	CursorNWSE      Cursor = "nwse-resize"
	CursorRotate    Cursor = "rotate"
	CursorCrosshair Cursor = "crosshair"
	CursorText      Cursor = "text"
)

// RotateHandleOffsetPx is the distance of the rotate handle above the
// shape's top-center, in pixels. The render adapter draws the connecting
// stem.
const RotateHandleOffsetPx = 24.0

// Handle is one interactive control point of a selected markup, in page
// pixel coordinates. Index is the vertex index for vertex handles and
// zero otherwise.
type Handle struct {
	ID     HandleID
	Kind   HandleKind
	Index  int
	Pos    Point
	Cursor Cursor
}

// Handles computes the interactive handles for a selected markup at the
// given page view.
//
// Box and placed kinds get eight resize handles plus a rotate handle;
// text boxes suppress the edge handles. Segments get their two
// endpoints, arcs additionally the bulge control on the chord's
// perpendicular bisector. Point-set kinds get one handle per vertex.
// Notes and read-only markups get none.
func Handles(m Markup, view PageView) []Handle {
	if m.Common().ReadOnly {
		return nil
	}
	switch v := m.(type) {
	case *Freehand:
		return vertexHandles(v.Points, view)
	case *Polyline:
		return vertexHandles(v.Points, view)
	case *Box:
		return boxHandles(RectFromPoints(v.Start, v.End), v.Rotation, view, true)
	case *TextBox:
		return boxHandles(RectFromPoints(v.Start, v.End), v.Rotation, view, false)
	case *Placed:
		return boxHandles(RectFromPoints(v.Start, v.End), v.Rotation, view, true)
	case *Segment:
		return []Handle{
			{ID: HandleP1, Kind: EndpointHandle, Pos: view.ToPixels(v.Start), Cursor: CursorMove},
			{ID: HandleP2, Kind: EndpointHandle, Pos: view.ToPixels(v.End), Cursor: CursorMove},
		}
	case *Arc:
		return []Handle{
			{ID: HandleP1, Kind: EndpointHandle, Pos: view.ToPixels(v.P1), Cursor: CursorMove},
			{ID: HandleP2, Kind: EndpointHandle, Pos: view.ToPixels(v.P2), Cursor: CursorMove},
			{ID: HandleBulge, Kind: BulgeHandle, Pos: view.ToPixels(ArcApex(v)), Cursor: CursorMove},
		}
	default:
		return nil
	}
}

func vertexHandles(pts []Point, view PageView) []Handle {
	out := make([]Handle, len(pts))
	for i, p := range pts {
		out[i] = Handle{
			ID:     HandleID(fmt.Sprintf("v%d", i)),
			Kind:   VertexHandle,
			Index:  i,
			Pos:    view.ToPixels(p),
			Cursor: CursorMove,
		}
	}
	return out
}

// boxHandles lays out the compass handles on the pixel-space bounds,
// rotated about the bounds center by the stored rotation, plus the
// rotate handle above top-center. edges=false suppresses the four edge
// handles (text boxes).
func boxHandles(r Rect, rotation float64, view PageView, edges bool) []Handle {
	min := view.ToPixels(Point{X: r.MinX, Y: r.MinY})
	max := view.ToPixels(Point{X: r.MaxX, Y: r.MaxY})
	midX := (min.X + max.X) / 2
	midY := (min.Y + max.Y) / 2
	center := Point{X: midX, Y: midY}

	place := func(id HandleID, kind HandleKind, p Point) Handle {
		return Handle{
			ID:     id,
			Kind:   kind,
			Pos:    RotatePoint(center, p, rotation),
			Cursor: resizeCursor(id, rotation),
		}
	}

	out := []Handle{
		place(HandleNW, CornerHandle, min),
		place(HandleNE, CornerHandle, Point{X: max.X, Y: min.Y}),
		place(HandleSE, CornerHandle, max),
		place(HandleSW, CornerHandle, Point{X: min.X, Y: max.Y}),
	}
	if edges {
		out = append(out,
			place(HandleN, EdgeHandle, Point{X: midX, Y: min.Y}),
			place(HandleE, EdgeHandle, Point{X: max.X, Y: midY}),
			place(HandleS, EdgeHandle, Point{X: midX, Y: max.Y}),
			place(HandleW, EdgeHandle, Point{X: min.X, Y: midY}),
		)
	}
	out = append(out, Handle{
		ID:     HandleRotate,
		Kind:   RotateHandle,
		Pos:    RotatePoint(center, Point{X: midX, Y: min.Y - RotateHandleOffsetPx}, rotation),
		Cursor: CursorRotate,
	})
	return out
}

// resizeCursor returns the resize cursor for a compass handle, rotated
// by the shape's stored rotation in 45° steps so the cursor matches the
// handle's apparent screen direction.
func resizeCursor(h HandleID, rotation float64) Cursor {
	// Cursor cycle by direction angle in 45° steps starting at north.
	cycle := [4]Cursor{CursorNS, CursorNESW, CursorEW, CursorNWSE}
	base := map[HandleID]int{
		HandleN: 0, HandleNE: 1, HandleE: 2, HandleSE: 3,
		HandleS: 0, HandleSW: 1, HandleW: 2, HandleNW: 3,
	}
	i, ok := base[h]
	if !ok {
		return CursorDefault
	}
	steps := int(math.Round(rotation/45)) % 4
	if steps < 0 {
		steps += 4
	}
	return cycle[(i+steps)%4]
}

// HandleAt returns the first handle whose square hit area of the given
// pixel radius contains p. Later handles do not shadow earlier ones:
// the first match wins, matching the layout order (corners before
// edges before rotate).
func HandleAt(handles []Handle, p Point, radius float64) (Handle, bool) {
	for _, h := range handles {
		if math.Abs(p.X-h.Pos.X) <= radius && math.Abs(p.Y-h.Pos.Y) <= radius {
			return h, true
		}
	}
	return Handle{}, false
}
