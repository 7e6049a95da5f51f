package redline

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies a markup variant. The values are wire-stable: they are
// the tags used by the JSON interchange format.
type Kind string

// Markup kinds.
const (
	KindPen           Kind = "pen"
	KindHighlighter   Kind = "highlighter"
	KindRectangle     Kind = "rectangle"
	KindCircle        Kind = "circle"
	KindLine          Kind = "line"
	KindArrow         Kind = "arrow"
	KindArc           Kind = "arc"
	KindCloud         Kind = "cloud"
	KindPolyline      Kind = "polyline"
	KindPolylineArrow Kind = "polylineArrow"
	KindCloudPolyline Kind = "cloudPolyline"
	KindPolygon       Kind = "polygon"
	KindText          Kind = "text"
	KindCallout       Kind = "callout"
	KindNote          Kind = "note"
	KindImage         Kind = "image"
	KindSymbol        Kind = "symbol"
	KindStamp         Kind = "stamp"
)

// Kinds lists every markup kind in wire order.
var Kinds = []Kind{
	KindPen, KindHighlighter, KindRectangle, KindCircle, KindLine,
	KindArrow, KindArc, KindCloud, KindPolyline, KindPolylineArrow,
	KindCloudPolyline, KindPolygon, KindText, KindCallout, KindNote,
	KindImage, KindSymbol, KindStamp,
}

// Origin records where a markup came from. The editor's edit gate uses it
// to decide whether externally sourced markups may be moved or reshaped.
type Origin string

// Markup origins.
const (
	OriginUser     Origin = "user"
	OriginImport   Origin = "import"
	OriginDetected Origin = "detected"
)

// Common holds the envelope fields shared by every markup variant.
type Common struct {
	ID        string
	Page      int
	Doc       string
	Author    string
	CreatedAt time.Time
	Style     Style
	ReadOnly  bool
	Origin    Origin
}

// Markup is one annotation shape instance. It is a closed union: the
// concrete types are Freehand, Polyline, Box, Segment, Arc, TextBox,
// Note and Placed. Geometry operations (BoundsOf, Hit, Move, Resize,
// MoveVertex) switch exhaustively over these types.
type Markup interface {
	// Kind returns the markup's variant tag.
	Kind() Kind

	// Common returns the shared envelope fields.
	Common() *Common

	// Clone returns a deep copy of the markup.
	Clone() Markup
}

var (
	_ Markup = (*Freehand)(nil)
	_ Markup = (*Polyline)(nil)
	_ Markup = (*Box)(nil)
	_ Markup = (*Segment)(nil)
	_ Markup = (*Arc)(nil)
	_ Markup = (*TextBox)(nil)
	_ Markup = (*Note)(nil)
	_ Markup = (*Placed)(nil)
)

// newCommon fills the envelope for a freshly drawn markup.
func newCommon(page int) Common {
	return Common{
		ID:        uuid.NewString(),
		Page:      page,
		CreatedAt: time.Now(),
		Style:     DefaultStyle(),
		Origin:    OriginUser,
	}
}

// Freehand is a pen or highlighter stroke: an ordered point sequence in
// page-normalized space. A stroke needs at least one point while being
// drawn and at least two distinct points to be committed.
type Freehand struct {
	Meta   Common
	Stroke Kind // KindPen or KindHighlighter
	Points []Point
}

// NewFreehand starts a stroke of the given kind at the given point.
func NewFreehand(kind Kind, page int, start Point) *Freehand {
	f := &Freehand{Meta: newCommon(page), Stroke: kind, Points: []Point{start}}
	if kind == KindHighlighter {
		f.Meta.Style = DefaultHighlighterStyle()
	}
	return f
}

// Kind returns the stroke's variant tag.
func (f *Freehand) Kind() Kind { return f.Stroke }

// Common returns the shared envelope fields.
func (f *Freehand) Common() *Common { return &f.Meta }

// Clone returns a deep copy of the stroke.
func (f *Freehand) Clone() Markup {
	c := *f
	c.Points = append([]Point(nil), f.Points...)
	return &c
}

// Polyline is a multi-click point sequence: plain polylines, polylines
// with an arrowhead on the final segment, cloud-styled polylines, and
// closed polygons (region outlines).
type Polyline struct {
	Meta    Common
	Variant Kind // KindPolyline, KindPolylineArrow, KindCloudPolyline or KindPolygon
	Points  []Point
	Closed  bool
}

// NewPolyline starts a polyline of the given kind with a single seeded
// vertex.
func NewPolyline(kind Kind, page int, first Point) *Polyline {
	return &Polyline{Meta: newCommon(page), Variant: kind, Points: []Point{first}}
}

// Kind returns the polyline's variant tag.
func (p *Polyline) Kind() Kind { return p.Variant }

// Common returns the shared envelope fields.
func (p *Polyline) Common() *Common { return &p.Meta }

// Clone returns a deep copy of the polyline.
func (p *Polyline) Clone() Markup {
	c := *p
	c.Points = append([]Point(nil), p.Points...)
	return &c
}

// Box is a two-corner shape: rectangle, circle (ellipse inscribed in the
// box) or revision cloud. Start and End are opposite corners and are not
// kept in min/max order; a box dragged past its anchor flips.
type Box struct {
	Meta     Common
	Variant  Kind // KindRectangle, KindCircle or KindCloud
	Start    Point
	End      Point
	Rotation float64 // degrees, clockwise, about the bounds center
}

// NewBox creates a box markup between two corners.
func NewBox(kind Kind, page int, start, end Point) *Box {
	return &Box{Meta: newCommon(page), Variant: kind, Start: start, End: end}
}

// Kind returns the box's variant tag.
func (b *Box) Kind() Kind { return b.Variant }

// Common returns the shared envelope fields.
func (b *Box) Common() *Common { return &b.Meta }

// Clone returns a deep copy of the box.
func (b *Box) Clone() Markup {
	c := *b
	return &c
}

// Segment is a line or arrow between two literal endpoints. Endpoint
// order is preserved: an arrow's head sits at End.
type Segment struct {
	Meta    Common
	Variant Kind // KindLine or KindArrow
	Start   Point
	End     Point
}

// NewSegment creates a line or arrow markup.
func NewSegment(kind Kind, page int, start, end Point) *Segment {
	return &Segment{Meta: newCommon(page), Variant: kind, Start: start, End: end}
}

// Kind returns the segment's variant tag.
func (s *Segment) Kind() Kind { return s.Variant }

// Common returns the shared envelope fields.
func (s *Segment) Common() *Common { return &s.Meta }

// Clone returns a deep copy of the segment.
func (s *Segment) Clone() Markup {
	c := *s
	return &c
}

// Arc is a circular arc through two chord endpoints. Bulge is the
// perpendicular offset of the arc's apex as a ratio of the chord length;
// its sign selects the side of the chord.
type Arc struct {
	Meta  Common
	P1    Point
	P2    Point
	Bulge float64
}

// NewArc creates an arc markup on the given chord.
func NewArc(page int, p1, p2 Point, bulge float64) *Arc {
	return &Arc{Meta: newCommon(page), P1: p1, P2: p2, Bulge: bulge}
}

// Kind returns KindArc.
func (a *Arc) Kind() Kind { return KindArc }

// Common returns the shared envelope fields.
func (a *Arc) Common() *Common { return &a.Meta }

// Clone returns a deep copy of the arc.
func (a *Arc) Clone() Markup {
	c := *a
	return &c
}

// TextBox is a text or callout markup: box geometry plus text content
// and typography. A callout additionally carries a leader arrow from the
// box to Leader.
type TextBox struct {
	Meta        Common
	Variant     Kind // KindText or KindCallout
	Start       Point
	End         Point
	Rotation    float64 // degrees, clockwise, about the bounds center
	Text        string
	FontSize    float64 // points at 100% zoom
	FontFamily  string
	Align       Align
	VAlign      VAlign
	LineSpacing float64 // multiple of the line height; 0 means 1.0
	Leader      *Point  // callout arrow target, nil for plain text
}

// NewTextBox creates an empty text or callout markup.
func NewTextBox(kind Kind, page int, start, end Point) *TextBox {
	return &TextBox{
		Meta:     newCommon(page),
		Variant:  kind,
		Start:    start,
		End:      end,
		FontSize: DefaultFontSize,
	}
}

// Kind returns the text box's variant tag.
func (t *TextBox) Kind() Kind { return t.Variant }

// Common returns the shared envelope fields.
func (t *TextBox) Common() *Common { return &t.Meta }

// Clone returns a deep copy of the text box.
func (t *TextBox) Clone() Markup {
	c := *t
	if t.Leader != nil {
		leader := *t.Leader
		c.Leader = &leader
	}
	return &c
}

// Note is a point annotation: an icon anchored at a single position with
// attached text shown by an external dialog. It has no resolvable bounds.
type Note struct {
	Meta Common
	At   Point
	Text string
}

// NewNote creates a note anchored at the given point.
func NewNote(page int, at Point) *Note {
	return &Note{Meta: newCommon(page), At: at}
}

// Kind returns KindNote.
func (n *Note) Kind() Kind { return KindNote }

// Common returns the shared envelope fields.
func (n *Note) Common() *Common { return &n.Meta }

// Clone returns a deep copy of the note.
func (n *Note) Clone() Markup {
	c := *n
	return &c
}

// Placed is a rectangular placement of an external resource: an imported
// image, a library symbol, or a stamp. Ref keys the resource in the
// render adapter's image store; Label names symbols and stamps.
type Placed struct {
	Meta     Common
	Variant  Kind // KindImage, KindSymbol or KindStamp
	Start    Point
	End      Point
	Rotation float64 // degrees, clockwise, about the bounds center
	Ref      string
	Label    string
}

// NewPlaced creates an image/symbol/stamp placement.
func NewPlaced(kind Kind, page int, start, end Point, ref string) *Placed {
	return &Placed{Meta: newCommon(page), Variant: kind, Start: start, End: end, Ref: ref}
}

// Kind returns the placement's variant tag.
func (p *Placed) Kind() Kind { return p.Variant }

// Common returns the shared envelope fields.
func (p *Placed) Common() *Common { return &p.Meta }

// Clone returns a deep copy of the placement.
func (p *Placed) Clone() Markup {
	c := *p
	return &c
}

// CanResize reports whether the markup supports handle-based resizing.
// Point-set kinds reshape through their vertices instead; notes have no
// spatial extent.
func CanResize(m Markup) bool {
	switch m.(type) {
	case *Box, *TextBox, *Placed, *Segment, *Arc:
		return !m.Common().ReadOnly
	default:
		return false
	}
}

// CanRotate reports whether the markup carries a rotation field.
// Only box-like, text and placed kinds rotate; rotation is undefined for
// the remaining kinds.
func CanRotate(m Markup) bool {
	switch m.(type) {
	case *Box, *TextBox, *Placed:
		return !m.Common().ReadOnly
	default:
		return false
	}
}

// HasVertices reports whether the markup's shape is edited per vertex.
func HasVertices(m Markup) bool {
	switch m.(type) {
	case *Freehand, *Polyline:
		return !m.Common().ReadOnly
	default:
		return false
	}
}

// RotationOf returns the stored rotation in degrees, or 0 for kinds that
// do not rotate.
func RotationOf(m Markup) float64 {
	switch v := m.(type) {
	case *Box:
		return v.Rotation
	case *TextBox:
		return v.Rotation
	case *Placed:
		return v.Rotation
	default:
		return 0
	}
}

// setRotation stores a rotation on kinds that carry one; it is a no-op
// for everything else.
func setRotation(m Markup, deg float64) {
	switch v := m.(type) {
	case *Box:
		v.Rotation = deg
	case *TextBox:
		v.Rotation = deg
	case *Placed:
		v.Rotation = deg
	}
}
