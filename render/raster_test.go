// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"testing"

	"github.com/markuplab/redline"
	"github.com/markuplab/redline/layout"
)

func TestFontBankCachesFaces(t *testing.T) {
	b, err := NewFontBank()
	if err != nil {
		t.Fatalf("NewFontBank: %v", err)
	}
	f1 := b.Face(FamilyRegular, 14)
	f2 := b.Face(FamilyRegular, 14)
	if f1 != f2 {
		t.Error("same family and size should return the cached face")
	}
	if b.Face(FamilyRegular, 24) == f1 {
		t.Error("different size must not share a face")
	}
	// Unknown families fall back to the regular face at that size.
	if b.Face("no-such-family", 14) != f1 {
		t.Error("unknown family should fall back to the regular face")
	}
}

func TestFontBankRejectsGarbage(t *testing.T) {
	b, err := NewFontBank()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Register("broken", []byte("not a font")); err == nil {
		t.Error("expected an error for malformed TTF data")
	}
}

func testRaster(t *testing.T, pages int) (*Rasterizer, *redline.Collection, *layout.Manager) {
	t.Helper()
	sizes := make([]layout.PageSize, pages)
	for i := range sizes {
		sizes[i] = layout.PageSize{Width: 200, Height: 200}
	}
	mgr := layout.NewManager(sizes, layout.WithBuffer(1), layout.WithGap(0))
	mgr.SetViewport(200, 200)
	col := redline.NewCollection()
	r, err := NewRasterizer(func() *redline.Collection { return col }, mgr)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	return r, col, mgr
}

func TestPageNilWhenUnmounted(t *testing.T) {
	r, _, mgr := testRaster(t, 100)
	if mgr.Mounted(50) {
		t.Fatal("page 50 should be outside the window at scroll 0")
	}
	if img := r.Page(50); img != nil {
		t.Error("unmounted page should render nil")
	}
}

func TestPageImageMatchesView(t *testing.T) {
	r, _, mgr := testRaster(t, 3)
	img := r.Page(0)
	if img == nil {
		t.Fatal("mounted page rendered nil")
	}
	view := mgr.View(0)
	b := img.Bounds()
	if b.Dx() != int(view.Width) || b.Dy() != int(view.Height) {
		t.Errorf("image %dx%d, view %vx%v", b.Dx(), b.Dy(), view.Width, view.Height)
	}
	if !mgr.IsRendered(0) {
		t.Error("Page should mark the page rendered")
	}
}

func TestPageCachedUntilDamaged(t *testing.T) {
	r, _, _ := testRaster(t, 1)
	first := r.Page(0)
	if second := r.Page(0); second != first {
		t.Error("clean page should return the cached image")
	}
	r.RepaintPage(0)
	if third := r.Page(0); third == first {
		t.Error("damaged page should repaint")
	}
}

func TestSweepDropsUnmountedRasters(t *testing.T) {
	r, _, mgr := testRaster(t, 100)
	if r.Page(0) == nil {
		t.Fatal("page 0 should paint")
	}
	// Scroll far away; page 0 leaves the window.
	mgr.SetScroll(0, 200*90)
	if mgr.Mounted(0) {
		t.Fatal("page 0 still mounted after scrolling away")
	}
	r.Sweep()
	if mgr.IsRendered(0) {
		t.Error("Sweep should invalidate the rendered flag of dropped pages")
	}
}

func pixelAt(img image.Image, x, y int) (r8, g8, b8 uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestPreviewShadowsCommittedShape(t *testing.T) {
	r, col, _ := testRaster(t, 1)

	box := redline.NewBox(redline.KindRectangle, 0, redline.Pt(0.1, 0.1), redline.Pt(0.4, 0.4))
	box.Meta.Style.FillColor = redline.Red
	col.Add(box)

	img := r.Page(0)
	if red, _, _ := pixelAt(img, 50, 50); red < 200 {
		t.Fatal("committed fill missing at its own center")
	}

	// A resize preview with the same id shadows the committed geometry.
	preview := box.Clone().(*redline.Box)
	preview.Start = redline.Pt(0.6, 0.6)
	preview.End = redline.Pt(0.9, 0.9)
	r.PreviewShape(0, preview)

	img = r.Page(0)
	red, green, blue := pixelAt(img, 50, 50)
	if !(red > 200 && green > 200 && blue > 200) {
		t.Errorf("old geometry still painted under the preview: rgb %d,%d,%d", red, green, blue)
	}
	if red, _, _ := pixelAt(img, 150, 150); red < 200 {
		t.Error("preview geometry not painted")
	}

	r.ClearPreview(0)
	img = r.Page(0)
	if red, _, _ := pixelAt(img, 50, 50); red < 200 {
		t.Error("committed geometry should return after the preview clears")
	}
}

func TestLiveTransformOffsetsPaint(t *testing.T) {
	r, col, _ := testRaster(t, 1)

	box := redline.NewBox(redline.KindRectangle, 0, redline.Pt(0.1, 0.1), redline.Pt(0.3, 0.3))
	box.Meta.Style.FillColor = redline.Blue
	col.Add(box)

	// Blue fill against the white page: a painted pixel has a low red
	// channel, a background pixel does not.
	r.SetLiveTransform(0, box.Meta.ID, LiveTransform{Dx: 0.5, Dy: 0.5})
	img := r.Page(0)
	if red, _, blue := pixelAt(img, 140, 140); blue < 200 || red > 100 {
		t.Error("live offset not applied")
	}
	if red, _, _ := pixelAt(img, 40, 40); red < 100 {
		t.Error("shape painted at its model position despite the live transform")
	}

	// Clearing the transform restores the model position.
	r.ClearLive(0)
	img = r.Page(0)
	if red, _, _ := pixelAt(img, 40, 40); red > 100 {
		t.Error("shape missing at its model position after ClearLive")
	}
}
