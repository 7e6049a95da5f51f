// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"math"
	"testing"

	"github.com/markuplab/redline"
)

func letterPages(n int) []PageSize {
	pages := make([]PageSize, n)
	for i := range pages {
		pages[i] = PageSize{Width: 600, Height: 800}
	}
	return pages
}

func TestVerticalStacking(t *testing.T) {
	m := NewManager(letterPages(3), WithGap(10))
	m.SetViewport(600, 800)

	r0 := m.PageRect(0)
	r1 := m.PageRect(1)
	if r0.MinY != 0 || r0.MaxY != 800 {
		t.Errorf("page 0 rect = %+v", r0)
	}
	if r1.MinY != 810 {
		t.Errorf("page 1 starts at %v, want 810 (800 + gap)", r1.MinY)
	}
	w, h := m.ContentSize()
	if w != 600 || h != 800*3+10*2 {
		t.Errorf("content size = %v×%v, want 600×2420", w, h)
	}
}

func TestVerticalCentersNarrowPages(t *testing.T) {
	m := NewManager(letterPages(1))
	m.SetViewport(1000, 800)
	r := m.PageRect(0)
	if r.MinX != 200 {
		t.Errorf("page x = %v, want centered at 200", r.MinX)
	}
}

func TestScaleResizesPages(t *testing.T) {
	m := NewManager(letterPages(1), WithScale(2))
	m.SetViewport(600, 800)
	r := m.PageRect(0)
	if r.Width() != 1200 || r.Height() != 1600 {
		t.Errorf("scaled rect = %v×%v, want 1200×1600", r.Width(), r.Height())
	}
}

func TestQuarterTurnSwapsAxes(t *testing.T) {
	m := NewManager(letterPages(1))
	m.SetViewport(600, 800)
	m.SetPageRotation(0, 1)
	r := m.PageRect(0)
	if r.Width() != 800 || r.Height() != 600 {
		t.Errorf("rotated rect = %v×%v, want 800×600", r.Width(), r.Height())
	}
	if m.IsRendered(0) {
		t.Error("rotation should invalidate the rendered flag")
	}
	m.SetPageRotation(0, 2)
	if r := m.PageRect(0); r.Width() != 600 {
		t.Errorf("half-turn rect width = %v, want 600", r.Width())
	}
}

func TestWindowAddsBuffer(t *testing.T) {
	m := NewManager(letterPages(50), WithBuffer(2), WithGap(0))
	m.SetViewport(600, 800)

	// Scroll so pages 10..11 are visible (800px pages, viewport 800;
	// touching edges count as visible, so land mid-page).
	m.SetScroll(0, 8100)

	vlo, vhi, ok := m.VisibleRange()
	if !ok || vlo != 10 {
		t.Fatalf("visible range = %d-%d (%v), want starting at 10", vlo, vhi, ok)
	}
	lo, hi, _ := m.Window()
	if lo != vlo-2 || hi != vhi+2 {
		t.Errorf("window = %d-%d, want visible ±2", lo, hi)
	}
	if m.Mounted(lo-1) || !m.Mounted(lo) {
		t.Error("Mounted disagrees with the window edge")
	}
}

func TestWindowClampsAtDocumentEdges(t *testing.T) {
	m := NewManager(letterPages(5), WithBuffer(3))
	m.SetViewport(600, 800)
	lo, hi, ok := m.Window()
	if !ok || lo != 0 || hi != 4 {
		t.Errorf("window = %d-%d (%v), want 0-4", lo, hi, ok)
	}
}

func TestSingleModeShowsCurrentOnly(t *testing.T) {
	m := NewManager(letterPages(5), WithMode(ModeSingle))
	m.SetViewport(800, 1000)
	m.SetCurrentPage(3)

	lo, hi, ok := m.VisibleRange()
	if !ok || lo != 3 || hi != 3 {
		t.Errorf("visible range = %d-%d, want the current page only", lo, hi)
	}
	// Centered in the viewport.
	r := m.PageRect(3)
	if r.MinX != 100 || r.MinY != 100 {
		t.Errorf("single page at (%v, %v), want centered (100, 100)", r.MinX, r.MinY)
	}
	// Wheel does not scroll in single mode.
	if dx, dy := m.Wheel(0, 100); dx != 0 || dy != 0 {
		t.Errorf("Wheel in single mode applied (%v, %v)", dx, dy)
	}
}

func TestHorizontalWheelRemap(t *testing.T) {
	m := NewManager(letterPages(10), WithMode(ModeHorizontal), WithGap(0))
	m.SetViewport(600, 800)

	dx, dy := m.Wheel(0, 120)
	if dx != 120 || dy != 0 {
		t.Errorf("Wheel(0,120) applied (%v, %v), want remapped to (120, 0)", dx, dy)
	}
	x, y := m.Scroll()
	if x != 120 || y != 0 {
		t.Errorf("scroll = (%v, %v)", x, y)
	}
	// An explicit horizontal wheel is passed through.
	dx, _ = m.Wheel(80, 0)
	if dx != 80 {
		t.Errorf("Wheel(80,0) applied dx=%v", dx)
	}
}

func TestScrollClamped(t *testing.T) {
	m := NewManager(letterPages(2), WithGap(0))
	m.SetViewport(600, 800)
	m.SetScroll(500, 99999)
	x, y := m.Scroll()
	if x != 0 {
		t.Errorf("x scroll = %v, want 0 (content not wider than viewport)", x)
	}
	if y != 800 {
		t.Errorf("y scroll = %v, want clamped to 800", y)
	}
}

func TestPointMappingRoundTrip(t *testing.T) {
	m := NewManager(letterPages(3), WithGap(10))
	m.SetViewport(600, 800)
	m.SetScroll(0, 900)

	p := redline.Point{X: 0.25, Y: 0.75}
	screen := m.FromPage(1, p)
	back := m.ToPage(1, screen)
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("round trip %v → %v → %v", p, screen, back)
	}

	if page, ok := m.PageAt(screen); !ok || page != 1 {
		t.Errorf("PageAt(%v) = %d, %v; want page 1", screen, page, ok)
	}
}

func TestPageAtMissesGap(t *testing.T) {
	m := NewManager(letterPages(3), WithGap(10))
	m.SetViewport(600, 800)
	// y=805 content is in the gap between pages 0 and 1.
	if _, ok := m.PageAt(redline.Point{X: 300, Y: 805}); ok {
		t.Error("PageAt in the inter-page gap should miss")
	}
}

func TestPageAtSkipsUnmounted(t *testing.T) {
	m := NewManager(letterPages(100), WithBuffer(1), WithGap(0))
	m.SetViewport(600, 800)
	// Page 50 is far outside the window; even its on-content position
	// resolves as a miss because it is unmounted.
	if m.Mounted(50) {
		t.Fatal("page 50 should not be mounted at scroll 0")
	}
	if _, ok := m.PageAt(redline.Point{X: 300, Y: 50*800 + 400 - 0}); ok {
		t.Error("PageAt over an unmounted page should miss")
	}
}

func TestToPageUnclampedAndClamped(t *testing.T) {
	m := NewManager(letterPages(1), WithGap(0))
	m.SetViewport(600, 800)

	outside := redline.Point{X: -60, Y: 900}
	p := m.ToPage(0, outside)
	if p.X >= 0 || p.Y <= 1 {
		t.Errorf("ToPage should not clamp, got %v", p)
	}
	c := m.ToPageClamped(0, outside)
	if c.X != 0 || c.Y != 1 {
		t.Errorf("ToPageClamped = %v, want (0, 1)", c)
	}
}

func TestRenderedFlagLifecycle(t *testing.T) {
	m := NewManager(letterPages(3))
	m.SetViewport(600, 800)
	if m.IsRendered(0) {
		t.Error("pages start unrendered")
	}
	m.MarkRendered(0)
	if !m.IsRendered(0) {
		t.Error("MarkRendered did not stick")
	}
	m.InvalidateRendered(0)
	if m.IsRendered(0) {
		t.Error("InvalidateRendered did not clear")
	}
	// Out-of-range indices are ignored.
	m.MarkRendered(99)
	if m.IsRendered(99) {
		t.Error("out-of-range page reported rendered")
	}
}
