package redline

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKind is returned when decoding meets a markup record whose
// kind tag is not one of the defined variants.
var ErrUnknownKind = errors.New("redline: unknown markup kind")

// The wire format is a flat JSON array of markup records, one object per
// markup, discriminated by "kind". This is the plain-data interchange
// the persistence collaborator loads and saves; field names are stable.

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type wireColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type wireStyle struct {
	Color       wireColor `json:"color"`
	FillColor   wireColor `json:"fillColor"`
	Opacity     float64   `json:"opacity"`
	FillOpacity float64   `json:"fillOpacity"`
	StrokeWidth float64   `json:"strokeWidth"`
	LineStyle   LineStyle `json:"lineStyle"`
}

type wireMarkup struct {
	Kind      Kind      `json:"kind"`
	ID        string    `json:"id"`
	Page      int       `json:"page"`
	Doc       string    `json:"doc,omitempty"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Style     wireStyle `json:"style"`
	ReadOnly  bool      `json:"readOnly,omitempty"`
	Origin    Origin    `json:"origin,omitempty"`

	Points []wirePoint `json:"points,omitempty"`
	Closed bool        `json:"closed,omitempty"`

	StartX float64 `json:"startX,omitempty"`
	StartY float64 `json:"startY,omitempty"`
	EndX   float64 `json:"endX,omitempty"`
	EndY   float64 `json:"endY,omitempty"`

	Point1X  float64 `json:"point1X,omitempty"`
	Point1Y  float64 `json:"point1Y,omitempty"`
	Point2X  float64 `json:"point2X,omitempty"`
	Point2Y  float64 `json:"point2Y,omitempty"`
	ArcBulge float64 `json:"arcBulge,omitempty"`

	Rotation float64 `json:"rotation,omitempty"`

	Text        string     `json:"text,omitempty"`
	FontSize    float64    `json:"fontSize,omitempty"`
	FontFamily  string     `json:"fontFamily,omitempty"`
	TextAlign   Align      `json:"textAlign,omitempty"`
	VertAlign   VAlign     `json:"verticalAlign,omitempty"`
	LineSpacing float64    `json:"lineSpacing,omitempty"`
	Leader      *wirePoint `json:"leader,omitempty"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	Ref   string `json:"ref,omitempty"`
	Label string `json:"label,omitempty"`
}

func toWireStyle(s Style) wireStyle {
	return wireStyle{
		Color:       wireColor(s.Color),
		FillColor:   wireColor(s.FillColor),
		Opacity:     s.Opacity,
		FillOpacity: s.FillOpacity,
		StrokeWidth: s.StrokeWidth,
		LineStyle:   s.LineStyle,
	}
}

func fromWireStyle(w wireStyle) Style {
	return Style{
		Color:       RGBA(w.Color),
		FillColor:   RGBA(w.FillColor),
		Opacity:     w.Opacity,
		FillOpacity: w.FillOpacity,
		StrokeWidth: w.StrokeWidth,
		LineStyle:   w.LineStyle,
	}
}

func toWirePoints(pts []Point) []wirePoint {
	out := make([]wirePoint, len(pts))
	for i, p := range pts {
		out[i] = wirePoint{X: p.X, Y: p.Y}
	}
	return out
}

func fromWirePoints(pts []wirePoint) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

// encodeMarkup flattens a markup into its wire record.
func encodeMarkup(m Markup) wireMarkup {
	c := m.Common()
	w := wireMarkup{
		Kind:      m.Kind(),
		ID:        c.ID,
		Page:      c.Page,
		Doc:       c.Doc,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
		Style:     toWireStyle(c.Style),
		ReadOnly:  c.ReadOnly,
		Origin:    c.Origin,
	}
	switch v := m.(type) {
	case *Freehand:
		w.Points = toWirePoints(v.Points)
	case *Polyline:
		w.Points = toWirePoints(v.Points)
		w.Closed = v.Closed
	case *Box:
		w.StartX, w.StartY = v.Start.X, v.Start.Y
		w.EndX, w.EndY = v.End.X, v.End.Y
		w.Rotation = v.Rotation
	case *Segment:
		w.StartX, w.StartY = v.Start.X, v.Start.Y
		w.EndX, w.EndY = v.End.X, v.End.Y
	case *Arc:
		w.Point1X, w.Point1Y = v.P1.X, v.P1.Y
		w.Point2X, w.Point2Y = v.P2.X, v.P2.Y
		w.ArcBulge = v.Bulge
	case *TextBox:
		w.StartX, w.StartY = v.Start.X, v.Start.Y
		w.EndX, w.EndY = v.End.X, v.End.Y
		w.Rotation = v.Rotation
		w.Text = v.Text
		w.FontSize = v.FontSize
		w.FontFamily = v.FontFamily
		w.TextAlign = v.Align
		w.VertAlign = v.VAlign
		w.LineSpacing = v.LineSpacing
		if v.Leader != nil {
			w.Leader = &wirePoint{X: v.Leader.X, Y: v.Leader.Y}
		}
	case *Note:
		w.X, w.Y = v.At.X, v.At.Y
		w.Text = v.Text
	case *Placed:
		w.StartX, w.StartY = v.Start.X, v.Start.Y
		w.EndX, w.EndY = v.End.X, v.End.Y
		w.Rotation = v.Rotation
		w.Ref = v.Ref
		w.Label = v.Label
	}
	return w
}

// decodeMarkup rebuilds a markup from its wire record.
func decodeMarkup(w wireMarkup) (Markup, error) {
	meta := Common{
		ID:        w.ID,
		Page:      w.Page,
		Doc:       w.Doc,
		Author:    w.Author,
		CreatedAt: w.CreatedAt,
		Style:     fromWireStyle(w.Style),
		ReadOnly:  w.ReadOnly,
		Origin:    w.Origin,
	}
	switch w.Kind {
	case KindPen, KindHighlighter:
		return &Freehand{Meta: meta, Stroke: w.Kind, Points: fromWirePoints(w.Points)}, nil
	case KindPolyline, KindPolylineArrow, KindCloudPolyline, KindPolygon:
		return &Polyline{Meta: meta, Variant: w.Kind, Points: fromWirePoints(w.Points), Closed: w.Closed}, nil
	case KindRectangle, KindCircle, KindCloud:
		return &Box{
			Meta: meta, Variant: w.Kind,
			Start: Point{X: w.StartX, Y: w.StartY}, End: Point{X: w.EndX, Y: w.EndY},
			Rotation: w.Rotation,
		}, nil
	case KindLine, KindArrow:
		return &Segment{
			Meta: meta, Variant: w.Kind,
			Start: Point{X: w.StartX, Y: w.StartY}, End: Point{X: w.EndX, Y: w.EndY},
		}, nil
	case KindArc:
		return &Arc{
			Meta: meta,
			P1:   Point{X: w.Point1X, Y: w.Point1Y}, P2: Point{X: w.Point2X, Y: w.Point2Y},
			Bulge: w.ArcBulge,
		}, nil
	case KindText, KindCallout:
		t := &TextBox{
			Meta: meta, Variant: w.Kind,
			Start: Point{X: w.StartX, Y: w.StartY}, End: Point{X: w.EndX, Y: w.EndY},
			Rotation: w.Rotation, Text: w.Text, FontSize: w.FontSize,
			FontFamily: w.FontFamily, Align: w.TextAlign, VAlign: w.VertAlign,
			LineSpacing: w.LineSpacing,
		}
		if w.Leader != nil {
			t.Leader = &Point{X: w.Leader.X, Y: w.Leader.Y}
		}
		return t, nil
	case KindNote:
		return &Note{Meta: meta, At: Point{X: w.X, Y: w.Y}, Text: w.Text}, nil
	case KindImage, KindSymbol, KindStamp:
		return &Placed{
			Meta: meta, Variant: w.Kind,
			Start: Point{X: w.StartX, Y: w.StartY}, End: Point{X: w.EndX, Y: w.EndY},
			Rotation: w.Rotation, Ref: w.Ref, Label: w.Label,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Kind)
	}
}

// MarshalJSON encodes the collection as a flat ordered array of markup
// records.
func (c *Collection) MarshalJSON() ([]byte, error) {
	records := make([]wireMarkup, len(c.items))
	for i, m := range c.items {
		records[i] = encodeMarkup(m)
	}
	return json.Marshal(records)
}

// UnmarshalJSON decodes a flat markup array, replacing the collection's
// contents. Record order becomes z-order.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var records []wireMarkup
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("redline: decode collection: %w", err)
	}
	items := make([]Markup, 0, len(records))
	byID := make(map[string]int, len(records))
	for _, w := range records {
		m, err := decodeMarkup(w)
		if err != nil {
			return err
		}
		byID[m.Common().ID] = len(items)
		items = append(items, m)
	}
	c.items = items
	c.byID = byID
	return nil
}
