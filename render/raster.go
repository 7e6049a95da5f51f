// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/markuplab/redline"
	"github.com/markuplab/redline/internal/shapepath"
	"github.com/markuplab/redline/layout"
)

// CollectionSource returns the current committed markup collection.
// The rasterizer calls it on every repaint instead of holding a
// collection reference, so undo/redo swaps are always picked up.
type CollectionSource func() *redline.Collection

// PageSource supplies the rasterized document page content. NotReady
// pages paint a placeholder; the rasterizer polls the flag on repaint
// and never blocks.
type PageSource interface {
	// PageImage returns the page raster, or ok=false while it is still
	// being produced.
	PageImage(page int) (image.Image, bool)
}

// Chrome colors for selection feedback.
var (
	selectionBlue = redline.Hex("#3b82f6")
	handleFill    = redline.White
	rubberFill    = redline.RGBA{R: 0.23, G: 0.51, B: 0.96, A: 0.15}
)

// Option configures a Rasterizer during creation.
type Option func(*Rasterizer)

// WithImageStore sets the store used to resolve placed markup refs.
func WithImageStore(s *ImageStore) Option {
	return func(r *Rasterizer) { r.images = s }
}

// WithFontBank sets a custom font bank.
func WithFontBank(b *FontBank) Option {
	return func(r *Rasterizer) { r.fonts = b }
}

// WithPageSource sets the external page-content collaborator. Without
// one, pages paint plain white.
func WithPageSource(src PageSource) Option {
	return func(r *Rasterizer) { r.pageSrc = src }
}

type liveState struct {
	id string
	t  LiveTransform
}

// Rasterizer draws mounted pages to raster images with fogleman/gg:
// page content (or a placeholder while it is pending), committed markups
// in z-order, the in-progress preview shape, live transforms, selection
// handles and the rubber-band rectangle.
//
// It implements Adapter; the editor reports damage and the host pulls
// page images with Page. Not safe for concurrent use.
type Rasterizer struct {
	source  CollectionSource
	mgr     *layout.Manager
	fonts   *FontBank
	images  *ImageStore
	pageSrc PageSource

	cache map[int]image.Image
	dirty map[int]bool

	previews     map[int]redline.Markup
	live         map[int]liveState
	selection    []string
	activeVertex int
	rubber       map[int]redline.Rect
}

// NewRasterizer creates a rasterizer over the given collection source
// and page layout.
func NewRasterizer(source CollectionSource, mgr *layout.Manager, opts ...Option) (*Rasterizer, error) {
	r := &Rasterizer{
		source:       source,
		mgr:          mgr,
		images:       NewImageStore(),
		cache:        map[int]image.Image{},
		dirty:        map[int]bool{},
		previews:     map[int]redline.Markup{},
		live:         map[int]liveState{},
		rubber:       map[int]redline.Rect{},
		activeVertex: -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		fonts, err := NewFontBank()
		if err != nil {
			return nil, err
		}
		r.fonts = fonts
	}
	return r, nil
}

// Images returns the rasterizer's image store.
func (r *Rasterizer) Images() *ImageStore { return r.images }

// RepaintPage implements Adapter.
func (r *Rasterizer) RepaintPage(page int) { r.dirty[page] = true }

// PreviewShape implements Adapter.
func (r *Rasterizer) PreviewShape(page int, m redline.Markup) {
	r.previews[page] = m
	r.dirty[page] = true
}

// ClearPreview implements Adapter.
func (r *Rasterizer) ClearPreview(page int) {
	delete(r.previews, page)
	r.dirty[page] = true
}

// SetLiveTransform implements Adapter.
func (r *Rasterizer) SetLiveTransform(page int, id string, t LiveTransform) {
	r.live[page] = liveState{id: id, t: t}
	r.dirty[page] = true
}

// ClearLive implements Adapter.
func (r *Rasterizer) ClearLive(page int) {
	delete(r.live, page)
	r.dirty[page] = true
}

// SelectionChanged implements Adapter.
func (r *Rasterizer) SelectionChanged(page int) { r.dirty[page] = true }

// SetSelection tells the rasterizer which markups carry selection
// chrome. activeVertex is the index of the vertex being dragged, or -1.
func (r *Rasterizer) SetSelection(ids []string, activeVertex int) {
	r.selection = append(r.selection[:0], ids...)
	r.activeVertex = activeVertex
	for page := range r.cache {
		r.dirty[page] = true
	}
}

// SetRubberBand shows the rubber-band rectangle (normalized) on a page.
func (r *Rasterizer) SetRubberBand(page int, rect redline.Rect) {
	r.rubber[page] = rect
	r.dirty[page] = true
}

// ClearRubberBand removes the rubber-band rectangle.
func (r *Rasterizer) ClearRubberBand(page int) {
	delete(r.rubber, page)
	r.dirty[page] = true
}

// Sweep drops cached rasters for pages that left the virtualization
// window, bounding memory to the mounted range.
func (r *Rasterizer) Sweep() {
	for page := range r.cache {
		if !r.mgr.Mounted(page) {
			delete(r.cache, page)
			delete(r.dirty, page)
			r.mgr.InvalidateRendered(page)
		}
	}
}

// Page returns the page's raster image, repainting if it is dirty.
// Unmounted pages return nil.
func (r *Rasterizer) Page(page int) image.Image {
	if !r.mgr.Mounted(page) {
		return nil
	}
	if img, ok := r.cache[page]; ok && !r.dirty[page] {
		return img
	}
	img := r.paint(page)
	r.cache[page] = img
	r.dirty[page] = false
	r.mgr.MarkRendered(page)
	return img
}

// paint renders the full page: background, markups, preview, chrome.
func (r *Rasterizer) paint(page int) image.Image {
	view := r.mgr.View(page)
	w := int(math.Max(1, view.Width))
	h := int(math.Max(1, view.Height))
	dc := gg.NewContext(w, h)

	r.paintBackground(dc, page, w, h)

	live, hasLive := r.live[page]
	preview, hasPreview := r.previews[page]
	for _, m := range r.source().OnPage(page) {
		if hasPreview && m.Common().ID == preview.Common().ID {
			// Resize and vertex previews shadow their committed shape so
			// it is not drawn twice at two geometries.
			continue
		}
		if hasLive && m.Common().ID == live.id {
			r.paintWithLive(dc, m, view, live.t)
			continue
		}
		r.paintMarkup(dc, m, view)
	}

	if hasPreview {
		r.paintMarkup(dc, preview, view)
	}

	r.paintSelection(dc, page, view)

	if rect, ok := r.rubber[page]; ok {
		r.paintRubberBand(dc, rect, view)
	}
	return dc.Image()
}

// paintBackground fills the page with its raster content, or a
// placeholder when the content is not ready.
func (r *Rasterizer) paintBackground(dc *gg.Context, page, w, h int) {
	if r.pageSrc != nil {
		if img, ready := r.pageSrc.PageImage(page); ready {
			b := img.Bounds()
			if b.Dx() > 0 && b.Dy() > 0 {
				dc.Push()
				dc.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
				dc.DrawImage(img, 0, 0)
				dc.Pop()
			}
			return
		}
		// Pending raster: neutral placeholder with a border.
		dc.SetRGBA(0.93, 0.93, 0.95, 1)
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
		dc.SetRGBA(0.75, 0.75, 0.78, 1)
		dc.SetLineWidth(1)
		dc.DrawRectangle(0.5, 0.5, float64(w)-1, float64(h)-1)
		dc.Stroke()
		return
	}
	dc.SetColor(redline.White.Color())
	dc.Clear()
}

// paintWithLive paints a markup under its live transform: translated by
// the live offset and rotated by the extra live rotation about the
// bounds center, without mutating the model.
func (r *Rasterizer) paintWithLive(dc *gg.Context, m redline.Markup, view redline.PageView, t LiveTransform) {
	dc.Push()
	defer dc.Pop()
	dc.Translate(t.Dx*view.Width, t.Dy*view.Height)
	if t.RotationDeg != 0 {
		if b, ok := redline.BoundsOf(m); ok {
			c := view.ToPixels(b.Center())
			dc.RotateAbout(gg.Radians(t.RotationDeg), c.X, c.Y)
		}
	}
	r.paintMarkup(dc, m, view)
}

// paintMarkup dispatches to the per-kind painter, applying the stored
// rotation about the bounds center first.
func (r *Rasterizer) paintMarkup(dc *gg.Context, m redline.Markup, view redline.PageView) {
	if deg := redline.RotationOf(m); deg != 0 {
		if b, ok := redline.BoundsOf(m); ok {
			c := view.ToPixels(b.Center())
			dc.Push()
			dc.RotateAbout(gg.Radians(deg), c.X, c.Y)
			defer dc.Pop()
		}
	}

	style := m.Common().Style
	strokePx := style.StrokeWidth * r.mgr.Scale()

	switch v := m.(type) {
	case *redline.Freehand:
		r.paintFreehand(dc, v, view, strokePx)
	case *redline.Polyline:
		r.paintPolyline(dc, v, view, strokePx)
	case *redline.Box:
		r.paintBox(dc, v, view, strokePx)
	case *redline.Segment:
		r.paintSegment(dc, v, view, strokePx)
	case *redline.Arc:
		r.paintArc(dc, v, view, strokePx)
	case *redline.TextBox:
		r.paintTextBox(dc, v, view, strokePx)
	case *redline.Note:
		r.paintNote(dc, v, view)
	case *redline.Placed:
		r.paintPlaced(dc, v, view, strokePx)
	}
}

// strokePath strokes the current path with the style's color, width and
// dash pattern.
func strokePath(dc *gg.Context, style redline.Style, strokePx float64) {
	dc.SetColor(style.EffectiveStroke().Color())
	dc.SetLineWidth(strokePx)
	if dashes := style.Dashes(strokePx); dashes != nil {
		dc.SetDash(dashes...)
	} else {
		dc.SetDash()
	}
	dc.Stroke()
	dc.SetDash()
}

func tracePoints(dc *gg.Context, pts []redline.Point, view redline.PageView, closed bool) {
	if len(pts) == 0 {
		return
	}
	p0 := view.ToPixels(pts[0])
	dc.MoveTo(p0.X, p0.Y)
	for _, p := range pts[1:] {
		px := view.ToPixels(p)
		dc.LineTo(px.X, px.Y)
	}
	if closed {
		dc.ClosePath()
	}
}

func (r *Rasterizer) paintFreehand(dc *gg.Context, v *redline.Freehand, view redline.PageView, strokePx float64) {
	if len(v.Points) == 0 {
		return
	}
	if len(v.Points) == 1 {
		p := view.ToPixels(v.Points[0])
		dc.SetColor(v.Meta.Style.EffectiveStroke().Color())
		dc.DrawCircle(p.X, p.Y, math.Max(strokePx/2, 1))
		dc.Fill()
		return
	}
	tracePoints(dc, v.Points, view, false)
	strokePath(dc, v.Meta.Style, strokePx)
}

func (r *Rasterizer) paintPolyline(dc *gg.Context, v *redline.Polyline, view redline.PageView, strokePx float64) {
	if len(v.Points) < 2 {
		if len(v.Points) == 1 {
			p := view.ToPixels(v.Points[0])
			dc.SetColor(v.Meta.Style.EffectiveStroke().Color())
			dc.DrawCircle(p.X, p.Y, math.Max(strokePx/2, 2))
			dc.Fill()
		}
		return
	}
	style := v.Meta.Style

	if v.Variant == redline.KindCloudPolyline {
		pts := toPathPoints(v.Points, view)
		outline := shapepath.CloudOutline(pts, v.Closed, cloudBumpRadiusPx(strokePx))
		traceRaw(dc, outline, v.Closed)
		strokePath(dc, style, strokePx)
		return
	}

	tracePoints(dc, v.Points, view, v.Closed || v.Variant == redline.KindPolygon)
	if v.Variant == redline.KindPolygon && style.Filled() {
		dc.SetColor(style.EffectiveFill().Color())
		dc.FillPreserve()
	}
	strokePath(dc, style, strokePx)

	if v.Variant == redline.KindPolylineArrow && !v.Closed {
		n := len(v.Points)
		from := view.ToPixels(v.Points[n-2])
		to := view.ToPixels(v.Points[n-1])
		paintArrowhead(dc, from, to, style, strokePx)
	}
}

func (r *Rasterizer) paintBox(dc *gg.Context, v *redline.Box, view redline.PageView, strokePx float64) {
	b := redline.RectFromPoints(v.Start, v.End)
	min := view.ToPixels(redline.Point{X: b.MinX, Y: b.MinY})
	max := view.ToPixels(redline.Point{X: b.MaxX, Y: b.MaxY})
	style := v.Meta.Style

	switch v.Variant {
	case redline.KindCircle:
		cx, cy := (min.X+max.X)/2, (min.Y+max.Y)/2
		dc.DrawEllipse(cx, cy, (max.X-min.X)/2, (max.Y-min.Y)/2)
	case redline.KindCloud:
		outline := shapepath.CloudBox(min.X, min.Y, max.X, max.Y, cloudBumpRadiusPx(strokePx))
		traceRaw(dc, outline, true)
	default:
		dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	}
	if style.Filled() {
		dc.SetColor(style.EffectiveFill().Color())
		dc.FillPreserve()
	}
	strokePath(dc, style, strokePx)
}

func (r *Rasterizer) paintSegment(dc *gg.Context, v *redline.Segment, view redline.PageView, strokePx float64) {
	a := view.ToPixels(v.Start)
	b := view.ToPixels(v.End)
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	strokePath(dc, v.Meta.Style, strokePx)
	if v.Variant == redline.KindArrow {
		paintArrowhead(dc, a, b, v.Meta.Style, strokePx)
	}
}

func (r *Rasterizer) paintArc(dc *gg.Context, v *redline.Arc, view redline.PageView, strokePx float64) {
	p1 := view.ToPixels(v.P1)
	p2 := view.ToPixels(v.P2)
	outline := shapepath.Arc(
		shapepath.Point{X: p1.X, Y: p1.Y},
		shapepath.Point{X: p2.X, Y: p2.Y},
		v.Bulge, shapepath.ArcSegments,
	)
	traceRaw(dc, outline, false)
	strokePath(dc, v.Meta.Style, strokePx)
}

func (r *Rasterizer) paintTextBox(dc *gg.Context, v *redline.TextBox, view redline.PageView, strokePx float64) {
	b := redline.RectFromPoints(v.Start, v.End)
	min := view.ToPixels(redline.Point{X: b.MinX, Y: b.MinY})
	max := view.ToPixels(redline.Point{X: b.MaxX, Y: b.MaxY})
	w := max.X - min.X
	h := max.Y - min.Y
	style := v.Meta.Style

	if v.Leader != nil {
		anchor := view.ToPixels(b.Center())
		target := view.ToPixels(*v.Leader)
		dc.DrawLine(anchor.X, anchor.Y, target.X, target.Y)
		strokePath(dc, style, strokePx)
		paintArrowhead(dc, anchor, target, style, strokePx)
	}

	dc.DrawRectangle(min.X, min.Y, w, h)
	if style.Filled() {
		dc.SetColor(style.EffectiveFill().Color())
		dc.FillPreserve()
	}
	strokePath(dc, style, strokePx)

	if v.Text == "" {
		return
	}
	sizePx := v.FontSize * r.mgr.Scale()
	dc.SetFontFace(r.fonts.Face(v.FontFamily, sizePx))
	dc.SetColor(style.EffectiveStroke().Color())

	spacing := v.LineSpacing
	if spacing <= 0 {
		spacing = 1.2
	}

	pad := math.Min(4, w/8)
	x, ax := min.X+pad, 0.0
	switch v.Align {
	case redline.AlignCenter:
		x, ax = min.X+w/2, 0.5
	case redline.AlignRight:
		x, ax = max.X-pad, 1.0
	}
	y, ay := min.Y+pad, 0.0
	switch v.VAlign {
	case redline.VAlignMiddle:
		y, ay = min.Y+h/2, 0.5
	case redline.VAlignBottom:
		y, ay = max.Y-pad, 1.0
	}
	dc.DrawStringWrapped(v.Text, x, y, ax, ay, math.Max(w-2*pad, 1), spacing, ggAlign(v.Align))
}

// NoteIconPx is the note glyph size in pixels at 100% zoom.
const NoteIconPx = 18.0

func (r *Rasterizer) paintNote(dc *gg.Context, v *redline.Note, view redline.PageView) {
	p := view.ToPixels(v.At)
	s := NoteIconPx * r.mgr.Scale()
	style := v.Meta.Style

	// Sticky-note square with a folded corner.
	dc.MoveTo(p.X, p.Y)
	dc.LineTo(p.X+s, p.Y)
	dc.LineTo(p.X+s, p.Y+s*0.65)
	dc.LineTo(p.X+s*0.65, p.Y+s)
	dc.LineTo(p.X, p.Y+s)
	dc.ClosePath()
	fill := style.EffectiveFill()
	if !style.Filled() {
		fill = redline.Yellow.WithAlpha(0.9)
	}
	dc.SetColor(fill.Color())
	dc.FillPreserve()
	dc.SetColor(style.EffectiveStroke().Color())
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.DrawLine(p.X+s*0.65, p.Y+s, p.X+s*0.65, p.Y+s*0.65)
	dc.DrawLine(p.X+s*0.65, p.Y+s*0.65, p.X+s, p.Y+s*0.65)
	dc.Stroke()
}

func (r *Rasterizer) paintPlaced(dc *gg.Context, v *redline.Placed, view redline.PageView, strokePx float64) {
	b := redline.RectFromPoints(v.Start, v.End)
	min := view.ToPixels(redline.Point{X: b.MinX, Y: b.MinY})
	max := view.ToPixels(redline.Point{X: b.MaxX, Y: b.MaxY})
	w := max.X - min.X
	h := max.Y - min.Y

	if img, ok := r.images.Get(v.Ref); ok {
		ib := img.Bounds()
		if ib.Dx() > 0 && ib.Dy() > 0 && w > 0 && h > 0 {
			dc.Push()
			dc.Translate(min.X, min.Y)
			dc.Scale(w/float64(ib.Dx()), h/float64(ib.Dy()))
			dc.DrawImage(img, 0, 0)
			dc.Pop()
			return
		}
	}

	// Missing resource: labeled placeholder box.
	redline.Logger().Warn("missing placed resource", "ref", v.Ref, "id", v.Meta.ID)
	dc.SetRGBA(0.9, 0.9, 0.9, 0.8)
	dc.DrawRectangle(min.X, min.Y, w, h)
	dc.FillPreserve()
	strokePath(dc, v.Meta.Style, math.Max(strokePx, 1))
	label := v.Label
	if label == "" {
		label = v.Ref
	}
	if label != "" {
		dc.SetFontFace(r.fonts.Face(FamilyRegular, 12*r.mgr.Scale()))
		dc.SetColor(redline.Black.WithAlpha(0.7).Color())
		dc.DrawStringAnchored(label, min.X+w/2, min.Y+h/2, 0.5, 0.5)
	}
}

// HandleSizePx is the drawn size of a square selection handle.
const HandleSizePx = 7.0

// paintSelection draws selection chrome: a dashed outline per selected
// markup, resize/vertex handles for a single selection (with the rotate
// stem), and a union box for a multi selection.
func (r *Rasterizer) paintSelection(dc *gg.Context, page int, view redline.PageView) {
	if len(r.selection) == 0 {
		return
	}
	col := r.source()
	var onPage []redline.Markup
	for _, id := range r.selection {
		if m, ok := col.ByID(id); ok && m.Common().Page == page {
			onPage = append(onPage, m)
		}
	}
	if len(onPage) == 0 {
		return
	}

	if len(r.selection) > 1 {
		// Multi selection: dashed union bounding box, no handles.
		var union redline.Rect
		first := true
		for _, m := range onPage {
			if b, ok := redline.BoundsOf(m); ok {
				if first {
					union = b
					first = false
				} else {
					union = union.Union(b)
				}
			}
		}
		if !first {
			r.paintDashedRect(dc, union, view)
		}
		return
	}

	m := onPage[0]
	if b, ok := redline.BoundsOf(m); ok && redline.CanResize(m) {
		r.paintDashedRect(dc, b, view)
	}

	handles := redline.Handles(m, view)
	for _, h := range handles {
		if h.Kind == redline.RotateHandle {
			// Stem from top-center to the rotate handle.
			if b, ok := redline.BoundsOf(m); ok {
				top := view.ToPixels(redline.Point{X: (b.MinX + b.MaxX) / 2, Y: b.MinY})
				top = redline.RotatePoint(view.ToPixels(b.Center()), top, redline.RotationOf(m))
				dc.SetColor(selectionBlue.Color())
				dc.SetLineWidth(1)
				dc.DrawLine(top.X, top.Y, h.Pos.X, h.Pos.Y)
				dc.Stroke()
			}
		}
		r.paintHandle(dc, h)
	}
}

func (r *Rasterizer) paintHandle(dc *gg.Context, h redline.Handle) {
	half := HandleSizePx / 2
	fill := handleFill
	if h.Kind == redline.VertexHandle && h.Index == r.activeVertex {
		fill = selectionBlue
	}
	switch h.Kind {
	case redline.RotateHandle, redline.BulgeHandle:
		dc.DrawCircle(h.Pos.X, h.Pos.Y, half)
	default:
		dc.DrawRectangle(h.Pos.X-half, h.Pos.Y-half, HandleSizePx, HandleSizePx)
	}
	dc.SetColor(fill.Color())
	dc.FillPreserve()
	dc.SetColor(selectionBlue.Color())
	dc.SetLineWidth(1.5)
	dc.Stroke()
}

func (r *Rasterizer) paintDashedRect(dc *gg.Context, b redline.Rect, view redline.PageView) {
	min := view.ToPixels(redline.Point{X: b.MinX, Y: b.MinY})
	max := view.ToPixels(redline.Point{X: b.MaxX, Y: b.MaxY})
	dc.SetColor(selectionBlue.Color())
	dc.SetLineWidth(1)
	dc.SetDash(4, 3)
	dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	dc.Stroke()
	dc.SetDash()
}

func (r *Rasterizer) paintRubberBand(dc *gg.Context, rect redline.Rect, view redline.PageView) {
	min := view.ToPixels(redline.Point{X: rect.MinX, Y: rect.MinY})
	max := view.ToPixels(redline.Point{X: rect.MaxX, Y: rect.MaxY})
	dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	dc.SetColor(rubberFill.Color())
	dc.FillPreserve()
	dc.SetColor(selectionBlue.Color())
	dc.SetLineWidth(1)
	dc.SetDash(3, 2)
	dc.Stroke()
	dc.SetDash()
}

// paintArrowhead fills the arrowhead triangle at the to end.
func paintArrowhead(dc *gg.Context, from, to redline.Point, style redline.Style, strokePx float64) {
	size := math.Max(8, strokePx*4)
	tri := shapepath.Arrowhead(
		shapepath.Point{X: from.X, Y: from.Y},
		shapepath.Point{X: to.X, Y: to.Y},
		size,
	)
	dc.MoveTo(tri[0].X, tri[0].Y)
	dc.LineTo(tri[1].X, tri[1].Y)
	dc.LineTo(tri[2].X, tri[2].Y)
	dc.ClosePath()
	dc.SetColor(style.EffectiveStroke().Color())
	dc.Fill()
}

// cloudBumpRadiusPx derives the cloud scallop radius from stroke width.
func cloudBumpRadiusPx(strokePx float64) float64 {
	return math.Max(8, strokePx*4)
}

func toPathPoints(pts []redline.Point, view redline.PageView) []shapepath.Point {
	out := make([]shapepath.Point, len(pts))
	for i, p := range pts {
		px := view.ToPixels(p)
		out[i] = shapepath.Point{X: px.X, Y: px.Y}
	}
	return out
}

func traceRaw(dc *gg.Context, pts []shapepath.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	if closed {
		dc.ClosePath()
	}
}

func ggAlign(a redline.Align) gg.Align {
	switch a {
	case redline.AlignCenter:
		return gg.AlignCenter
	case redline.AlignRight:
		return gg.AlignRight
	default:
		return gg.AlignLeft
	}
}
