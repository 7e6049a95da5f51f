// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout places document pages on a scrollable content surface
// and decides which of them are mounted.
//
// A Manager knows the intrinsic size of every page, the current view
// mode (single, vertical-continuous, horizontal-continuous), zoom scale,
// viewport size and scroll offset. From those it derives per-page pixel
// rectangles, the visible page range, and the virtualization window
// (visible pages widened by a buffer margin). It also maps raw screen
// positions to (page index, page-normalized point) and back, which is
// how pointer events reach the editor.
//
// The window is always derived from scroll position plus buffer, never
// retained as ad-hoc state. "Mounted" (layout space live, surface
// allocated) and "rendered" (raster content ready) are separate flags:
// a mounted page whose raster is still pending shows a placeholder.
//
// Manager is not safe for concurrent use; hosts drive it from the UI
// thread.
package layout

import (
	"math"

	"github.com/markuplab/redline"
)

// Mode selects how pages are arranged.
type Mode string

// View modes.
const (
	ModeSingle     Mode = "single"
	ModeVertical   Mode = "vertical"
	ModeHorizontal Mode = "horizontal"
)

// PageSize is a page's intrinsic dimensions in document units (points,
// millimeters — any unit, as long as all pages share it). Pixel size is
// intrinsic size × scale.
type PageSize struct {
	Width, Height float64
}

// DefaultGap is the inter-page gap in pixels.
const DefaultGap = 16.0

// DefaultBuffer is how many pages beyond the visible range stay mounted
// on each side.
const DefaultBuffer = 2

// Option configures a Manager during creation.
type Option func(*Manager)

// WithMode sets the initial view mode.
func WithMode(m Mode) Option {
	return func(mgr *Manager) { mgr.mode = m }
}

// WithScale sets the initial zoom scale.
func WithScale(s float64) Option {
	return func(mgr *Manager) {
		if s > 0 {
			mgr.scale = s
		}
	}
}

// WithGap sets the inter-page gap in pixels.
func WithGap(px float64) Option {
	return func(mgr *Manager) {
		if px >= 0 {
			mgr.gap = px
		}
	}
}

// WithBuffer sets the virtualization buffer in pages per side.
func WithBuffer(pages int) Option {
	return func(mgr *Manager) {
		if pages >= 0 {
			mgr.buffer = pages
		}
	}
}

// Manager computes page geometry and the virtualization window.
type Manager struct {
	pages  []PageSize
	quads  []int // quarter turns per page, 0..3
	mode   Mode
	scale  float64
	gap    float64
	buffer int

	viewportW, viewportH float64
	scrollX, scrollY     float64
	current              int // the page shown in single mode

	rects    []redline.Rect // derived, content-relative pixels
	contentW float64
	contentH float64
	stale    bool

	rendered []bool
}

// NewManager creates a layout manager over the given pages.
func NewManager(pages []PageSize, opts ...Option) *Manager {
	m := &Manager{
		pages:    append([]PageSize(nil), pages...),
		quads:    make([]int, len(pages)),
		mode:     ModeVertical,
		scale:    1,
		gap:      DefaultGap,
		buffer:   DefaultBuffer,
		rendered: make([]bool, len(pages)),
		stale:    true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PageCount returns the number of pages.
func (m *Manager) PageCount() int { return len(m.pages) }

// Mode returns the current view mode.
func (m *Manager) Mode() Mode { return m.mode }

// Scale returns the current zoom scale.
func (m *Manager) Scale() float64 { return m.scale }

// Scroll returns the current scroll offset in pixels.
func (m *Manager) Scroll() (x, y float64) { return m.scrollX, m.scrollY }

// CurrentPage returns the page shown in single mode.
func (m *Manager) CurrentPage() int { return m.current }

// SetMode switches the view mode and invalidates derived geometry.
func (m *Manager) SetMode(mode Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.invalidate()
}

// SetScale changes the zoom scale. Non-positive scales are ignored.
func (m *Manager) SetScale(s float64) {
	if s <= 0 || s == m.scale {
		return
	}
	m.scale = s
	m.invalidate()
}

// SetViewport updates the viewport pixel size (window resize).
func (m *Manager) SetViewport(w, h float64) {
	m.viewportW, m.viewportH = w, h
	m.invalidate()
}

// SetCurrentPage selects the page shown in single mode. Out-of-range
// indices are ignored.
func (m *Manager) SetCurrentPage(i int) {
	if i < 0 || i >= len(m.pages) || i == m.current {
		return
	}
	m.current = i
	m.invalidate()
}

// SetPageRotation stores a quarter-turn rotation (0..3 turns clockwise)
// for the page. Odd turns swap the page's effective width and height;
// markup coordinates stay in the unrotated page frame.
func (m *Manager) SetPageRotation(i, quads int) {
	if i < 0 || i >= len(m.quads) {
		return
	}
	m.quads[i] = ((quads % 4) + 4) % 4
	m.rendered[i] = false
	m.invalidate()
}

// PageRotation returns the page's quarter-turn rotation.
func (m *Manager) PageRotation(i int) int {
	if i < 0 || i >= len(m.quads) {
		return 0
	}
	return m.quads[i]
}

func (m *Manager) invalidate() {
	m.stale = true
	redline.Logger().Debug("layout invalidated",
		"mode", string(m.mode), "scale", m.scale)
}

// pagePixelSize returns the page's on-screen size at the current scale,
// accounting for quarter-turn rotation.
func (m *Manager) pagePixelSize(i int) (w, h float64) {
	p := m.pages[i]
	w, h = p.Width*m.scale, p.Height*m.scale
	if m.quads[i]%2 == 1 {
		w, h = h, w
	}
	return w, h
}

// recompute rebuilds the content-relative page rectangles. Vertical mode
// stacks pages top to bottom centering each horizontally; horizontal
// mode places them left to right centering vertically; single mode
// centers the current page on both axes.
func (m *Manager) recompute() {
	if !m.stale {
		return
	}
	m.stale = false
	m.rects = make([]redline.Rect, len(m.pages))
	m.contentW, m.contentH = 0, 0

	switch m.mode {
	case ModeSingle:
		if len(m.pages) == 0 {
			return
		}
		w, h := m.pagePixelSize(m.current)
		x := math.Max(0, (m.viewportW-w)/2)
		y := math.Max(0, (m.viewportH-h)/2)
		m.rects[m.current] = redline.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
		m.contentW, m.contentH = x+w, y+h

	case ModeHorizontal:
		x := 0.0
		maxH := 0.0
		for i := range m.pages {
			w, h := m.pagePixelSize(i)
			m.rects[i] = redline.Rect{MinX: x, MaxX: x + w, MaxY: h}
			x += w + m.gap
			maxH = math.Max(maxH, h)
		}
		for i := range m.rects {
			h := m.rects[i].MaxY
			y := math.Max(0, (math.Max(maxH, m.viewportH)-h)/2)
			m.rects[i].MinY = y
			m.rects[i].MaxY = y + h
		}
		if len(m.pages) > 0 {
			m.contentW = x - m.gap
		}
		m.contentH = maxH

	default: // ModeVertical
		y := 0.0
		maxW := 0.0
		for i := range m.pages {
			w, h := m.pagePixelSize(i)
			m.rects[i] = redline.Rect{MinY: y, MaxY: y + h, MaxX: w}
			y += h + m.gap
			maxW = math.Max(maxW, w)
		}
		for i := range m.rects {
			w := m.rects[i].MaxX
			x := math.Max(0, (math.Max(maxW, m.viewportW)-w)/2)
			m.rects[i].MinX = x
			m.rects[i].MaxX = x + w
		}
		if len(m.pages) > 0 {
			m.contentH = y - m.gap
		}
		m.contentW = maxW
	}
}

// PageRect returns the page's content-relative pixel rectangle.
func (m *Manager) PageRect(i int) redline.Rect {
	if i < 0 || i >= len(m.pages) {
		return redline.Rect{}
	}
	m.recompute()
	return m.rects[i]
}

// ScreenRect returns the page's rectangle in viewport coordinates.
func (m *Manager) ScreenRect(i int) redline.Rect {
	return m.PageRect(i).Translate(-m.scrollX, -m.scrollY)
}

// ContentSize returns the total content extent in pixels.
func (m *Manager) ContentSize() (w, h float64) {
	m.recompute()
	return m.contentW, m.contentH
}

// SetScroll sets the scroll offset, clamped to the content extent.
func (m *Manager) SetScroll(x, y float64) {
	m.recompute()
	maxX := math.Max(0, m.contentW-m.viewportW)
	maxY := math.Max(0, m.contentH-m.viewportH)
	m.scrollX = math.Min(math.Max(x, 0), maxX)
	m.scrollY = math.Min(math.Max(y, 0), maxY)
}

// ScrollBy shifts the scroll offset, clamped, and returns the applied
// deltas.
func (m *Manager) ScrollBy(dx, dy float64) (adx, ady float64) {
	ox, oy := m.scrollX, m.scrollY
	m.SetScroll(ox+dx, oy+dy)
	return m.scrollX - ox, m.scrollY - oy
}

// Wheel applies wheel input. Horizontal-continuous mode remaps vertical
// wheel motion to the horizontal axis, the primary navigation axis in
// that mode. Returns the applied scroll deltas.
func (m *Manager) Wheel(dx, dy float64) (adx, ady float64) {
	if m.mode == ModeHorizontal && dx == 0 {
		dx, dy = dy, 0
	}
	if m.mode == ModeSingle {
		return 0, 0
	}
	return m.ScrollBy(dx, dy)
}

// VisibleRange returns the contiguous range of pages whose rectangles
// intersect the viewport. ok is false when nothing is visible.
func (m *Manager) VisibleRange() (lo, hi int, ok bool) {
	m.recompute()
	if len(m.pages) == 0 {
		return 0, 0, false
	}
	if m.mode == ModeSingle {
		return m.current, m.current, true
	}
	view := redline.Rect{
		MinX: m.scrollX, MinY: m.scrollY,
		MaxX: m.scrollX + m.viewportW, MaxY: m.scrollY + m.viewportH,
	}
	lo, hi = -1, -1
	for i := range m.rects {
		if m.rects[i].Intersects(view) {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}
	if lo < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

// Window returns the mounted page range: the visible range widened by
// the buffer margin on both sides, clamped to the document.
func (m *Manager) Window() (lo, hi int, ok bool) {
	lo, hi, ok = m.VisibleRange()
	if !ok {
		return 0, 0, false
	}
	lo = max(0, lo-m.buffer)
	hi = min(len(m.pages)-1, hi+m.buffer)
	return lo, hi, true
}

// Mounted reports whether the page is inside the virtualization window.
func (m *Manager) Mounted(i int) bool {
	lo, hi, ok := m.Window()
	return ok && i >= lo && i <= hi
}

// MarkRendered records that the page's raster content is ready.
func (m *Manager) MarkRendered(i int) {
	if i >= 0 && i < len(m.rendered) {
		m.rendered[i] = true
	}
}

// InvalidateRendered clears the page's raster-ready flag, e.g. when the
// page is unmounted or its content changes.
func (m *Manager) InvalidateRendered(i int) {
	if i >= 0 && i < len(m.rendered) {
		m.rendered[i] = false
	}
}

// IsRendered reports whether the page's raster content is ready. Mounted
// pages that are not yet rendered show a placeholder.
func (m *Manager) IsRendered(i int) bool {
	return i >= 0 && i < len(m.rendered) && m.rendered[i]
}

// PageAt resolves a viewport position to the mounted page under it.
// Positions over the gap or over unmounted pages are a miss.
func (m *Manager) PageAt(screen redline.Point) (int, bool) {
	lo, hi, ok := m.Window()
	if !ok {
		return 0, false
	}
	for i := lo; i <= hi; i++ {
		if m.ScreenRect(i).Contains(screen) {
			return i, true
		}
	}
	return 0, false
}

// ToPage converts a viewport position to the page's normalized
// coordinates, unclamped so drag deltas can leave the page.
func (m *Manager) ToPage(i int, screen redline.Point) redline.Point {
	r := m.ScreenRect(i)
	if r.Width() == 0 || r.Height() == 0 {
		return redline.Point{}
	}
	return redline.Point{
		X: (screen.X - r.MinX) / r.Width(),
		Y: (screen.Y - r.MinY) / r.Height(),
	}
}

// ToPageClamped converts like ToPage but clamps to [0,1] for operations
// that must stay within the page, such as rubber-band selection.
func (m *Manager) ToPageClamped(i int, screen redline.Point) redline.Point {
	p := m.ToPage(i, screen)
	return redline.Point{
		X: math.Min(math.Max(p.X, 0), 1),
		Y: math.Min(math.Max(p.Y, 0), 1),
	}
}

// FromPage converts a page-normalized point to viewport pixels.
func (m *Manager) FromPage(i int, p redline.Point) redline.Point {
	r := m.ScreenRect(i)
	return redline.Point{
		X: r.MinX + p.X*r.Width(),
		Y: r.MinY + p.Y*r.Height(),
	}
}

// View returns the page's pixel size for normalized↔pixel conversion.
func (m *Manager) View(i int) redline.PageView {
	r := m.PageRect(i)
	return redline.PageView{Width: r.Width(), Height: r.Height()}
}
