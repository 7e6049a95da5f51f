// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/markuplab/redline"

// LiveTransform is a temporary visual offset and rotation applied to one
// markup during an in-progress gesture. It never touches the data model;
// on commit the adapter re-derives the page from authoritative data and
// the transform is cleared.
type LiveTransform struct {
	Dx, Dy      float64 // normalized page units
	RotationDeg float64 // added to the markup's stored rotation
}

// Adapter is the drawing-surface boundary the editor talks to.
//
// Implementations own actual pixel output; the editor only reports what
// changed. Calls arrive on the UI thread in event order; adapters are
// not required to be goroutine-safe.
//
// The Rasterizer in this package is the concrete raster implementation;
// NopAdapter serves tests and headless use.
type Adapter interface {
	// RepaintPage marks a page's committed content stale. Called after
	// commits, undo/redo and deletions.
	RepaintPage(page int)

	// PreviewShape shows an uncommitted in-progress shape on a page.
	// Called on every pointer-move while drawing.
	PreviewShape(page int, m redline.Markup)

	// ClearPreview removes the in-progress shape preview.
	ClearPreview(page int)

	// SetLiveTransform applies a temporary offset/rotation to the markup
	// with the given id while it is being dragged or rotated.
	SetLiveTransform(page int, id string, t LiveTransform)

	// ClearLive removes any live transform on the page.
	ClearLive(page int)

	// SelectionChanged tells the adapter to repaint selection chrome
	// (handles, outlines, rubber band) on the page.
	SelectionChanged(page int)
}

// NopAdapter is an Adapter that does nothing. It is the editor's default
// so the interaction engine runs headless in tests.
type NopAdapter struct{}

// RepaintPage implements Adapter.
func (NopAdapter) RepaintPage(int) {}

// PreviewShape implements Adapter.
func (NopAdapter) PreviewShape(int, redline.Markup) {}

// ClearPreview implements Adapter.
func (NopAdapter) ClearPreview(int) {}

// SetLiveTransform implements Adapter.
func (NopAdapter) SetLiveTransform(int, string, LiveTransform) {}

// ClearLive implements Adapter.
func (NopAdapter) ClearLive(int) {}

// SelectionChanged implements Adapter.
func (NopAdapter) SelectionChanged(int) {}

var _ Adapter = NopAdapter{}
var _ Adapter = (*Rasterizer)(nil)
