// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package editor turns pointer and keyboard input into markup mutations.
//
// The Editor is a state machine over the interaction states listed in
// this package (idle, drawing, drawing-polyline, dragging-shape,
// resizing, rotating, dragging-vertex, selecting-box, panning,
// editing-text). Hosts resolve raw input to page-local events with
// layout.Manager and feed them in; the editor answers with collection
// commits, selection changes, render-adapter damage and listener events.
//
// The editor is the single writer of the markup collection and of the
// interaction state; everything runs synchronously on the caller's
// (UI) thread. Pointer moves are applied in arrival order, and every
// commit re-derives the authoritative shape from the collection by id
// instead of trusting a reference cached at gesture start, so a commit
// racing a fast follow-up gesture never resurrects stale geometry.
package editor

import (
	"math"

	"github.com/google/uuid"

	"github.com/markuplab/redline"
	"github.com/markuplab/redline/render"
)

// PointerEvent is one pointer sample resolved to page coordinates.
// Page is -1 when the pointer is not over a mounted page; Pos is
// normalized and unclamped; Screen is the raw viewport pixel position
// (used while panning, where no page is required).
type PointerEvent struct {
	Page   int
	Pos    redline.Point
	View   redline.PageView
	Screen redline.Point
	Shift  bool
}

// rubberBander is implemented by adapters that can show the rubber-band
// rectangle (render.Rasterizer does).
type rubberBander interface {
	SetRubberBand(page int, r redline.Rect)
	ClearRubberBand(page int)
}

// gesture is the value object for the in-progress interaction, tagged by
// the editor's state. A fresh gesture replaces it wholesale; there is no
// free-floating drag state anywhere else.
type gesture struct {
	page        int
	view        redline.PageView
	start       redline.Point // normalized pointer at pointer-down
	last        redline.Point
	startScreen redline.Point
	lastScreen  redline.Point
	moved       bool

	targetID    string
	wasSelected bool
	multi       bool
	origBounds  redline.Rect
	origMarkup  redline.Markup
	handle      redline.HandleID
	vertexIndex int

	startRotation float64 // stored degrees at rotate start
	startAngle    float64 // pointer angle at rotate start, degrees
	liveRotation  float64

	current redline.Markup // the shape being drawn
}

// Editor is the interaction controller. Create one per open document
// with New; it is not safe for concurrent use.
type Editor struct {
	col      *redline.Collection
	history  *redline.History
	sel      redline.Selection
	adapter  render.Adapter
	listener Listener

	tool   Tool
	author string
	doc    string

	moveEps        float64
	handleRadiusPx float64
	closeRadiusPx  float64
	minSpan        float64
	importEdits    bool

	state   State
	g       gesture
	pending redline.Markup
	text    *textEditState
}

// New creates an editor over an empty collection unless WithCollection
// supplies one.
func New(opts ...Option) *Editor {
	e := &Editor{
		col:            redline.NewCollection(),
		history:        redline.NewHistory(0),
		adapter:        render.NopAdapter{},
		listener:       NopListener{},
		moveEps:        redline.MoveEpsilon,
		handleRadiusPx: DefaultHandleRadiusPx,
		closeRadiusPx:  DefaultCloseRadiusPx,
		minSpan:        redline.MinimumSpan,
		state:          StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Collection returns the current committed collection. The pointer
// changes identity on undo/redo; render adapters should query it through
// this method rather than caching it.
func (e *Editor) Collection() *redline.Collection { return e.col }

// Selection returns the live selection value.
func (e *Editor) Selection() *redline.Selection { return &e.sel }

// State returns the current interaction state.
func (e *Editor) State() State { return e.state }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// ActiveVertex returns the index of the vertex being dragged, or -1.
func (e *Editor) ActiveVertex() int {
	if e.state == StateDraggingVertex {
		return e.g.vertexIndex
	}
	return -1
}

// CanUndo reports whether Undo would do anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// SetTool activates a tool. Switching away finalizes an in-progress
// polyline when it has at least two distinct vertices and discards it
// otherwise; switching to a drawing tool clears the selection.
func (e *Editor) SetTool(t Tool) {
	if e.state == StateDrawingPolyline {
		e.finalizePolyline(false, true)
	}
	if e.state == StateEditingText {
		e.EndTextEdit()
	}
	e.tool = t
	if t != ToolSelect && !e.sel.Empty() {
		e.clearSelection()
	}
	e.toIdle()
	redline.Logger().Debug("tool changed", "tool", string(t))
}

// canEdit is the geometry-mutation gate: read-only markups never move,
// and import/detected markups move only when the host opens the gate.
func (e *Editor) canEdit(m redline.Markup) bool {
	c := m.Common()
	if c.ReadOnly {
		return false
	}
	if (c.Origin == redline.OriginImport || c.Origin == redline.OriginDetected) && !e.importEdits {
		return false
	}
	return true
}

// stamp fills author/doc on a freshly created markup.
func (e *Editor) stamp(m redline.Markup) redline.Markup {
	c := m.Common()
	c.Author = e.author
	c.Doc = e.doc
	return m
}

// markupAt returns the topmost markup under the normalized point.
func (e *Editor) markupAt(page int, p redline.Point, view redline.PageView) (redline.Markup, bool) {
	onPage := e.col.OnPage(page)
	for i := len(onPage) - 1; i >= 0; i-- {
		m := onPage[i]
		tol := redline.HitTolerance(m.Common().Style, view)
		if redline.Hit(m, p, tol) {
			return m, true
		}
	}
	return nil, false
}

// PointerDown advances the state machine for a primary-button press.
func (e *Editor) PointerDown(ev PointerEvent) {
	if e.pending != nil {
		return // waiting on the dialog collaborator
	}
	if e.state == StateEditingText {
		e.EndTextEdit()
	}

	if e.tool == ToolPan {
		e.g = gesture{startScreen: ev.Screen, lastScreen: ev.Screen}
		e.state = StatePanning
		return
	}

	if e.state == StateDrawingPolyline {
		e.polylineClick(ev)
		return
	}

	if ev.Page < 0 {
		// Out-of-range pages are a miss, not an error.
		e.toIdle()
		return
	}

	if e.tool == ToolSelect {
		e.selectDown(ev)
		return
	}
	e.drawDown(ev)
}

// selectDown handles pointer-down in selection mode: handle grab, shape
// grab, or rubber-band start.
func (e *Editor) selectDown(ev PointerEvent) {
	// A visible handle of the single selection wins over everything.
	if id, ok := e.sel.Single(); ok {
		if m, found := e.col.ByID(id); found && m.Common().Page == ev.Page && e.canEdit(m) {
			handles := redline.Handles(m, ev.View)
			px := ev.View.ToPixels(ev.Pos)
			if h, hit := redline.HandleAt(handles, px, e.handleRadiusPx); hit {
				e.grabHandle(ev, m, h)
				return
			}
		}
	}

	if m, ok := e.markupAt(ev.Page, ev.Pos, ev.View); ok {
		id := m.Common().ID
		if ev.Shift {
			e.sel.Toggle(id)
			e.notifySelection(ev.Page)
			e.toIdle()
			return
		}
		wasSelected := e.sel.Contains(id)
		multi := wasSelected && len(e.sel.Multi()) > 1
		if !wasSelected {
			e.sel.SetSingle(id)
			e.notifySelection(ev.Page)
		}
		if !e.canEdit(m) {
			// Selected for context actions only; no drag.
			e.toIdle()
			return
		}
		b, _ := redline.BoundsOf(m)
		e.g = gesture{
			page: ev.Page, view: ev.View,
			start: ev.Pos, last: ev.Pos,
			targetID: id, wasSelected: wasSelected, multi: multi,
			origBounds: b, origMarkup: m.Clone(),
		}
		e.state = StateDraggingShape
		return
	}

	// Empty space: rubber-band multi-select, page-local to the anchor.
	e.clearSelection()
	e.g = gesture{page: ev.Page, view: ev.View, start: clamp01(ev.Pos), last: clamp01(ev.Pos)}
	e.state = StateSelectingBox
}

// grabHandle starts a resize, rotate or vertex drag.
func (e *Editor) grabHandle(ev PointerEvent, m redline.Markup, h redline.Handle) {
	b, _ := redline.BoundsOf(m)
	e.g = gesture{
		page: ev.Page, view: ev.View,
		start: ev.Pos, last: ev.Pos,
		targetID: m.Common().ID,
		origBounds: b, origMarkup: m.Clone(),
		handle: h.ID, vertexIndex: h.Index,
	}
	switch h.Kind {
	case redline.RotateHandle:
		if !redline.CanRotate(m) {
			e.toIdle()
			return
		}
		center := ev.View.ToPixels(b.Center())
		px := ev.View.ToPixels(ev.Pos)
		e.g.startRotation = redline.RotationOf(m)
		e.g.startAngle = angleDeg(center, px)
		e.state = StateRotating
	case redline.VertexHandle:
		e.state = StateDraggingVertex
	default:
		if !redline.CanResize(m) {
			e.toIdle()
			return
		}
		e.state = StateResizing
	}
}

// drawDown starts a drawing gesture for the active tool.
func (e *Editor) drawDown(ev PointerEvent) {
	kind, ok := toolKind[e.tool]
	if !ok {
		e.toIdle()
		return
	}

	if polylineTool(e.tool) {
		m := redline.NewPolyline(kind, ev.Page, ev.Pos)
		e.stamp(m)
		e.g = gesture{page: ev.Page, view: ev.View, start: ev.Pos, last: ev.Pos, current: m}
		e.state = StateDrawingPolyline
		e.previewPolyline(ev.Pos)
		return
	}

	var m redline.Markup
	switch kind {
	case redline.KindPen, redline.KindHighlighter:
		m = redline.NewFreehand(kind, ev.Page, ev.Pos)
	case redline.KindLine, redline.KindArrow:
		m = redline.NewSegment(kind, ev.Page, ev.Pos, ev.Pos)
	case redline.KindArc:
		m = redline.NewArc(ev.Page, ev.Pos, ev.Pos, defaultArcBulge)
	case redline.KindNote:
		// Point annotation: no drag, straight to the dialog boundary.
		n := redline.NewNote(ev.Page, ev.Pos)
		e.stamp(n)
		e.raisePending(n)
		return
	case redline.KindText, redline.KindCallout:
		m = redline.NewTextBox(kind, ev.Page, ev.Pos, ev.Pos)
	case redline.KindSymbol, redline.KindStamp, redline.KindImage:
		m = redline.NewPlaced(kind, ev.Page, ev.Pos, ev.Pos, "")
	default:
		m = redline.NewBox(kind, ev.Page, ev.Pos, ev.Pos)
	}
	e.stamp(m)
	e.g = gesture{page: ev.Page, view: ev.View, start: ev.Pos, last: ev.Pos, current: m}
	e.state = StateDrawing
	e.adapter.PreviewShape(ev.Page, m)
}

// defaultArcBulge is the bulge applied while an arc's chord is dragged
// out; the bulge handle refines it afterwards.
const defaultArcBulge = 0.5

// polylineClick adds a vertex to the in-progress polyline, or closes it
// when the click lands within the close radius of the first vertex and
// at least three vertices exist.
func (e *Editor) polylineClick(ev PointerEvent) {
	p := e.g.current.(*redline.Polyline)
	if ev.Page != e.g.page {
		// Clicking another page finalizes what we have.
		e.finalizePolyline(false, true)
		return
	}
	if len(p.Points) >= 3 {
		firstPx := e.g.view.ToPixels(p.Points[0])
		clickPx := e.g.view.ToPixels(ev.Pos)
		if firstPx.Distance(clickPx) <= e.closeRadiusPx {
			e.finalizePolyline(true, false)
			return
		}
	}
	p.Points = append(p.Points, ev.Pos)
	e.previewPolyline(ev.Pos)
}

// PointerMove advances the active gesture. Deltas are cumulative from
// the gesture start, never per-frame, so rounding never compounds.
//
// Events framed in a different page than the gesture's anchor are
// dropped: their Pos is in another page's coordinate frame, and mixing
// frames would teleport the cumulative delta. The gesture resumes when
// the host maps the pointer back into the anchor page.
func (e *Editor) PointerMove(ev PointerEvent) {
	switch e.state {
	case StateDrawing, StateDrawingPolyline, StateDraggingShape,
		StateResizing, StateRotating, StateDraggingVertex, StateSelectingBox:
		if ev.Page != e.g.page {
			return
		}
	}
	switch e.state {
	case StateDrawing:
		e.g.last = ev.Pos
		e.updateDrawing(ev.Pos)
	case StateDrawingPolyline:
		e.previewPolyline(ev.Pos)
	case StateDraggingShape:
		e.g.last = ev.Pos
		dx, dy := e.delta()
		e.markMoved(dx, dy)
		e.adapter.SetLiveTransform(e.g.page, e.g.targetID, render.LiveTransform{Dx: dx, Dy: dy})
	case StateResizing:
		e.g.last = ev.Pos
		dx, dy := e.delta()
		e.markMoved(dx, dy)
		m := redline.Resize(e.g.origMarkup, e.g.handle, dx, dy, e.g.origBounds)
		e.adapter.PreviewShape(e.g.page, m)
	case StateRotating:
		e.g.last = ev.Pos
		center := e.g.view.ToPixels(e.g.origBounds.Center())
		px := e.g.view.ToPixels(ev.Pos)
		e.g.liveRotation = angleDeg(center, px) - e.g.startAngle
		if math.Abs(e.g.liveRotation) > rotateEpsilonDeg {
			e.g.moved = true
		}
		e.adapter.SetLiveTransform(e.g.page, e.g.targetID, render.LiveTransform{RotationDeg: e.g.liveRotation})
	case StateDraggingVertex:
		e.g.last = ev.Pos
		dx, dy := e.delta()
		e.markMoved(dx, dy)
		m := redline.MoveVertex(e.g.origMarkup, e.g.vertexIndex, ev.Pos)
		e.adapter.PreviewShape(e.g.page, m)
	case StateSelectingBox:
		e.g.last = clamp01(ev.Pos)
		e.g.moved = true
		if rb, ok := e.adapter.(rubberBander); ok {
			rb.SetRubberBand(e.g.page, redline.RectFromPoints(e.g.start, e.g.last))
		}
	case StatePanning:
		dx := ev.Screen.X - e.g.lastScreen.X
		dy := ev.Screen.Y - e.g.lastScreen.Y
		e.g.lastScreen = ev.Screen
		e.listener.Panned(dx, dy)
	}
}

// rotateEpsilonDeg is the minimum rotation to count as a rotate drag.
const rotateEpsilonDeg = 0.5

// PointerUp completes the active gesture.
func (e *Editor) PointerUp(ev PointerEvent) {
	switch e.state {
	case StateDrawing:
		e.finishDrawing(ev)
	case StateDrawingPolyline:
		// Vertices accumulate on pointer-down; release is a no-op.
	case StateDraggingShape:
		e.finishDrag()
	case StateResizing:
		e.finishResize()
	case StateRotating:
		e.finishRotate()
	case StateDraggingVertex:
		e.finishVertexDrag()
	case StateSelectingBox:
		e.finishRubberBand()
	case StatePanning:
		e.toIdle()
	}
}

// updateDrawing stretches the in-progress shape to the pointer.
func (e *Editor) updateDrawing(p redline.Point) {
	switch v := e.g.current.(type) {
	case *redline.Freehand:
		v.Points = append(v.Points, p)
	case *redline.Segment:
		v.End = p
	case *redline.Arc:
		v.P2 = p
	case *redline.Box:
		v.End = p
	case *redline.TextBox:
		v.End = p
	case *redline.Placed:
		v.End = p
	}
	e.adapter.PreviewShape(e.g.page, e.g.current)
}

// finishDrawing commits the drawn shape, drops degenerate ones, and
// routes kinds that need dialog input to the pending boundary.
func (e *Editor) finishDrawing(ev PointerEvent) {
	m := e.g.current
	page := e.g.page
	e.adapter.ClearPreview(page)

	if redline.Degenerate(m, e.minSpan) {
		redline.Logger().Debug("degenerate shape dropped", "kind", string(m.Kind()))
		e.toIdle()
		return
	}

	switch v := m.(type) {
	case *redline.Placed:
		// Symbol/stamp placement needs classification from the dialog.
		e.raisePending(v)
		return
	case *redline.TextBox:
		if v.Variant == redline.KindCallout && v.Leader == nil {
			leader := defaultLeader(v)
			v.Leader = &leader
		}
		e.commitAdd(v)
		e.sel.SetSingle(v.Meta.ID)
		e.notifySelection(page)
		e.toIdle()
		e.StartTextEdit(v.Meta.ID)
		return
	}

	e.commitAdd(m)
	e.sel.SetSingle(m.Common().ID)
	e.notifySelection(page)
	e.toIdle()
}

// defaultLeader puts a callout's leader target left of and above the
// box, clamped to the page.
func defaultLeader(t *redline.TextBox) redline.Point {
	b := redline.RectFromPoints(t.Start, t.End)
	return clamp01(redline.Point{X: b.MinX - 0.06, Y: b.MinY - 0.04})
}

// finishDrag commits a shape move, or handles click semantics when the
// pointer never crossed the movement epsilon.
func (e *Editor) finishDrag() {
	page := e.g.page
	e.adapter.ClearLive(page)

	if !e.g.moved {
		// Click, not drag: clicking an already-selected markup without
		// moving deselects it.
		if e.g.wasSelected {
			e.clearSelection()
			e.notifySelection(page)
		}
		e.toIdle()
		return
	}

	dx, dy := e.delta()
	ids := []string{e.g.targetID}
	if e.g.multi {
		ids = append([]string(nil), e.sel.IDs()...)
	}

	// Re-derive authoritative shapes by id; a stale target abandons the
	// gesture.
	if _, ok := e.col.ByID(e.g.targetID); !ok {
		e.abandonStale()
		return
	}

	e.history.Record(e.col)
	pages := map[int]bool{page: true}
	for _, id := range ids {
		m, ok := e.col.ByID(id)
		if !ok || !e.canEdit(m) {
			continue
		}
		moved := redline.Move(m, dx, dy)
		e.col.Replace(moved)
		e.listener.Committed(moved)
		pages[moved.Common().Page] = true
	}
	for p := range pages {
		e.damage(p)
	}
	e.toIdle()
}

// finishResize commits the resize computed from cumulative deltas.
func (e *Editor) finishResize() {
	page := e.g.page
	e.adapter.ClearPreview(page)
	if !e.g.moved {
		e.toIdle()
		return
	}
	auth, ok := e.col.ByID(e.g.targetID)
	if !ok {
		e.abandonStale()
		return
	}
	dx, dy := e.delta()
	resized := redline.Resize(auth, e.g.handle, dx, dy, e.g.origBounds)
	if redline.Degenerate(resized, e.minSpan) {
		e.toIdle()
		return
	}
	e.history.Record(e.col)
	e.col.Replace(resized)
	e.listener.Committed(resized)
	e.damage(page)
	e.toIdle()
}

// finishRotate stores the accumulated rotation on the markup.
func (e *Editor) finishRotate() {
	page := e.g.page
	e.adapter.ClearLive(page)
	if !e.g.moved {
		e.toIdle()
		return
	}
	auth, ok := e.col.ByID(e.g.targetID)
	if !ok {
		e.abandonStale()
		return
	}
	rotated := redline.Rotate(auth, normDeg(e.g.startRotation+e.g.liveRotation))
	e.history.Record(e.col)
	e.col.Replace(rotated)
	e.listener.Committed(rotated)
	e.damage(page)
	e.toIdle()
}

// finishVertexDrag commits the vertex replacement.
func (e *Editor) finishVertexDrag() {
	page := e.g.page
	e.adapter.ClearPreview(page)
	if !e.g.moved {
		e.toIdle()
		return
	}
	auth, ok := e.col.ByID(e.g.targetID)
	if !ok {
		e.abandonStale()
		return
	}
	moved := redline.MoveVertex(auth, e.g.vertexIndex, e.g.last)
	e.history.Record(e.col)
	e.col.Replace(moved)
	e.listener.Committed(moved)
	e.damage(page)
	e.toIdle()
}

// finishRubberBand selects every markup on the anchor page whose bounds
// intersect the rubber-band rectangle.
func (e *Editor) finishRubberBand() {
	page := e.g.page
	if rb, ok := e.adapter.(rubberBander); ok {
		rb.ClearRubberBand(page)
	}
	if !e.g.moved {
		e.toIdle()
		return
	}
	band := redline.RectFromPoints(e.g.start, e.g.last)
	var ids []string
	for _, m := range e.col.OnPage(page) {
		if b, ok := redline.BoundsOf(m); ok && b.Intersects(band) {
			ids = append(ids, m.Common().ID)
		}
	}
	e.sel.SetMulti(ids)
	e.notifySelection(page)
	e.toIdle()
}

// finalizePolyline ends the drawing-polyline sub-state. closed commits a
// closed shape; allowOpen commits an open one when at least two distinct
// vertices exist (tool switches and page changes), otherwise the points
// are discarded.
func (e *Editor) finalizePolyline(closed, allowOpen bool) {
	p := e.g.current.(*redline.Polyline)
	page := e.g.page
	e.adapter.ClearPreview(page)

	// Polygons are regions; they only ever commit closed.
	if p.Variant == redline.KindPolygon {
		if len(p.Points) >= 3 {
			closed = true
		} else {
			e.toIdle()
			return
		}
	}
	if !closed && !allowOpen {
		e.toIdle()
		return
	}
	p.Closed = closed

	if redline.Degenerate(p, e.minSpan) {
		redline.Logger().Debug("degenerate polyline dropped", "kind", string(p.Kind()))
		e.toIdle()
		return
	}

	if p.Variant == redline.KindPolygon {
		// Region outlines go through the assignment dialog.
		e.raisePending(p)
		return
	}
	e.commitAdd(p)
	e.sel.SetSingle(p.Meta.ID)
	e.notifySelection(page)
	e.toIdle()
}

// DoubleClick finalizes an in-progress polyline as an open shape, or
// enters inline text edit on a committed text/callout markup.
func (e *Editor) DoubleClick(ev PointerEvent) {
	if e.state == StateDrawingPolyline {
		p := e.g.current.(*redline.Polyline)
		e.dedupeTrailing(p)
		e.finalizePolyline(false, true)
		return
	}
	if e.state != StateIdle || ev.Page < 0 {
		return
	}
	if m, ok := e.markupAt(ev.Page, ev.Pos, ev.View); ok {
		if t, isText := m.(*redline.TextBox); isText && e.canEdit(t) {
			e.StartTextEdit(t.Meta.ID)
		}
	}
}

// dedupeTrailing drops trailing vertices that the double-click's own
// press left within the close radius of their predecessor.
func (e *Editor) dedupeTrailing(p *redline.Polyline) {
	for len(p.Points) >= 2 {
		n := len(p.Points)
		a := e.g.view.ToPixels(p.Points[n-2])
		b := e.g.view.ToPixels(p.Points[n-1])
		if a.Distance(b) > e.closeRadiusPx {
			break
		}
		p.Points = p.Points[:n-1]
	}
}

// Escape aborts the in-progress interaction without mutating the
// permanent collection and without leaving residual handle state.
func (e *Editor) Escape() {
	switch e.state {
	case StateDrawing, StateDrawingPolyline:
		e.adapter.ClearPreview(e.g.page)
		redline.Logger().Debug("gesture cancelled", "state", string(e.state))
		e.toIdle()
	case StateDraggingShape, StateRotating:
		e.adapter.ClearLive(e.g.page)
		e.toIdle()
	case StateResizing, StateDraggingVertex:
		e.adapter.ClearPreview(e.g.page)
		e.toIdle()
	case StateSelectingBox:
		if rb, ok := e.adapter.(rubberBander); ok {
			rb.ClearRubberBand(e.g.page)
		}
		e.toIdle()
	case StateEditingText:
		e.CancelTextEdit()
	default:
		if e.pending != nil {
			e.CancelPending()
		}
	}
}

// Undo reverts the last committed mutation.
func (e *Editor) Undo() bool {
	col, ok := e.history.Undo(e.col)
	if !ok {
		return false
	}
	e.installCollection(col)
	return true
}

// Redo reapplies the last undone mutation.
func (e *Editor) Redo() bool {
	col, ok := e.history.Redo(e.col)
	if !ok {
		return false
	}
	e.installCollection(col)
	return true
}

// installCollection swaps in a history snapshot and repaints everything
// either version touched.
func (e *Editor) installCollection(next *redline.Collection) {
	pages := map[int]bool{}
	for _, m := range e.col.All() {
		pages[m.Common().Page] = true
	}
	for _, m := range next.All() {
		pages[m.Common().Page] = true
	}
	e.col = next
	e.sel.Prune(e.col)
	for page := range pages {
		e.damage(page)
	}
	e.notifySelection(-1)
	e.toIdle()
}

// DeleteSelection removes every selected markup.
func (e *Editor) DeleteSelection() {
	ids := e.sel.IDs()
	if len(ids) == 0 {
		return
	}
	e.history.Record(e.col)
	pages := map[int]bool{}
	removed := make([]string, 0, len(ids))
	for _, id := range ids {
		if m, ok := e.col.ByID(id); ok {
			pages[m.Common().Page] = true
			e.col.Remove(id)
			removed = append(removed, id)
		}
	}
	e.clearSelection()
	e.listener.Deleted(removed)
	for page := range pages {
		e.damage(page)
	}
	e.toIdle()
}

// duplicateOffset is the normalized offset applied to duplicated
// markups so they do not land exactly on their source.
const duplicateOffset = 0.02

// DuplicateSelection clones every selected markup slightly offset, as a
// single undoable commit, and selects the clones.
func (e *Editor) DuplicateSelection() {
	ids := e.sel.IDs()
	if len(ids) == 0 {
		return
	}
	e.history.Record(e.col)
	var newIDs []string
	pages := map[int]bool{}
	for _, id := range ids {
		m, ok := e.col.ByID(id)
		if !ok {
			continue
		}
		dup := redline.Move(m, duplicateOffset, duplicateOffset)
		if dup == m {
			dup = m.Clone() // read-only source: duplicate in place
		}
		c := dup.Common()
		c.ID = uuid.NewString()
		c.Author = e.author
		c.Origin = redline.OriginUser
		c.ReadOnly = false
		e.col.Add(dup)
		e.listener.Committed(dup)
		newIDs = append(newIDs, c.ID)
		pages[c.Page] = true
	}
	e.sel.SetMulti(newIDs)
	for page := range pages {
		e.damage(page)
	}
	e.notifySelection(-1)
}

// raisePending hands an uncommitted shape to the dialog boundary.
func (e *Editor) raisePending(m redline.Markup) {
	e.pending = m
	e.toIdle()
	e.adapter.PreviewShape(m.Common().Page, m)
	e.listener.PendingShape(PendingShape{Markup: m})
}

// Pending returns the shape awaiting dialog confirmation, if any.
func (e *Editor) Pending() (redline.Markup, bool) {
	return e.pending, e.pending != nil
}

// ConfirmPending commits the enriched pending shape. Passing nil commits
// the shape as it was raised.
func (e *Editor) ConfirmPending(enriched redline.Markup) {
	if e.pending == nil {
		return
	}
	m := enriched
	if m == nil {
		m = e.pending
	}
	page := e.pending.Common().Page
	e.pending = nil
	e.adapter.ClearPreview(page)
	e.commitAdd(m)
	e.sel.SetSingle(m.Common().ID)
	e.notifySelection(page)
}

// CancelPending discards the pending shape.
func (e *Editor) CancelPending() {
	if e.pending == nil {
		return
	}
	page := e.pending.Common().Page
	e.pending = nil
	e.adapter.ClearPreview(page)
}

// commitAdd records history and adds the markup to the collection.
func (e *Editor) commitAdd(m redline.Markup) {
	e.history.Record(e.col)
	e.col.Add(m)
	e.listener.Committed(m)
	e.damage(m.Common().Page)
	redline.Logger().Info("markup committed", "kind", string(m.Kind()), "id", m.Common().ID)
}

// abandonStale resets after a gesture target disappeared from the
// collection (deleted by an external panel action mid-drag).
func (e *Editor) abandonStale() {
	redline.Logger().Warn("gesture target vanished", "id", e.g.targetID)
	e.adapter.ClearLive(e.g.page)
	e.adapter.ClearPreview(e.g.page)
	e.sel.Prune(e.col)
	e.notifySelection(e.g.page)
	e.toIdle()
}

// previewPolyline shows the accumulated vertices plus a rubber segment
// to the cursor.
func (e *Editor) previewPolyline(cursor redline.Point) {
	p := e.g.current.(*redline.Polyline)
	preview := p.Clone().(*redline.Polyline)
	preview.Points = append(preview.Points, cursor)
	e.adapter.PreviewShape(e.g.page, preview)
}

// delta is the cumulative normalized movement since gesture start.
func (e *Editor) delta() (dx, dy float64) {
	return e.g.last.X - e.g.start.X, e.g.last.Y - e.g.start.Y
}

func (e *Editor) markMoved(dx, dy float64) {
	if math.Hypot(dx, dy) >= e.moveEps {
		e.g.moved = true
	}
}

func (e *Editor) damage(page int) {
	e.adapter.RepaintPage(page)
	e.listener.PageDamaged(page)
}

func (e *Editor) clearSelection() {
	e.sel.Clear()
}

// notifySelection reports a selection change; page -1 means the change
// spans pages.
func (e *Editor) notifySelection(page int) {
	e.listener.SelectionChanged(&e.sel)
	e.adapter.SelectionChanged(page)
}

func (e *Editor) toIdle() {
	e.state = StateIdle
	e.g = gesture{vertexIndex: -1}
}

func clamp01(p redline.Point) redline.Point {
	return redline.Point{
		X: math.Min(math.Max(p.X, 0), 1),
		Y: math.Min(math.Max(p.Y, 0), 1),
	}
}

// angleDeg is the pointer's angle about center, degrees.
func angleDeg(center, p redline.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

// normDeg wraps degrees into [0, 360).
func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
