// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package editor

import (
	"github.com/markuplab/redline"
	"github.com/markuplab/redline/render"
)

// Threshold defaults. All of them are tunable configuration, not
// invariants; see the corresponding options.
const (
	// DefaultHandleRadiusPx is the pixel radius of a handle's hit area.
	DefaultHandleRadiusPx = 6.0

	// DefaultCloseRadiusPx is the pixel distance to a polyline's first
	// vertex within which a click closes the shape.
	DefaultCloseRadiusPx = 10.0
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithCollection starts the editor over an existing markup collection
// (a loaded document) instead of an empty one.
func WithCollection(c *redline.Collection) Option {
	return func(e *Editor) {
		if c != nil {
			e.col = c
		}
	}
}

// WithAdapter wires the render adapter that receives previews, live
// transforms and repaint damage. Defaults to render.NopAdapter.
func WithAdapter(a render.Adapter) Option {
	return func(e *Editor) {
		if a != nil {
			e.adapter = a
		}
	}
}

// WithListener wires the host event listener. Defaults to NopListener.
func WithListener(l Listener) Option {
	return func(e *Editor) {
		if l != nil {
			e.listener = l
		}
	}
}

// WithMoveEpsilon sets the minimum cumulative normalized movement for a
// gesture to count as a drag instead of a click.
func WithMoveEpsilon(eps float64) Option {
	return func(e *Editor) {
		if eps > 0 {
			e.moveEps = eps
		}
	}
}

// WithHandleRadius sets the handle hit radius in pixels.
func WithHandleRadius(px float64) Option {
	return func(e *Editor) {
		if px > 0 {
			e.handleRadiusPx = px
		}
	}
}

// WithCloseRadius sets the polyline close-to-first-vertex radius in
// pixels.
func WithCloseRadius(px float64) Option {
	return func(e *Editor) {
		if px > 0 {
			e.closeRadiusPx = px
		}
	}
}

// WithMinimumSpan sets the minimum normalized extent below which a
// freshly drawn shape is discarded on commit.
func WithMinimumSpan(span float64) Option {
	return func(e *Editor) {
		if span > 0 {
			e.minSpan = span
		}
	}
}

// WithHistoryLimit bounds the undo stack depth.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) { e.history = redline.NewHistory(n) }
}

// WithImportEditsAllowed opens the edit gate for markups whose origin is
// import or detected. By default they can be selected but not moved or
// reshaped.
func WithImportEditsAllowed(allowed bool) Option {
	return func(e *Editor) { e.importEdits = allowed }
}

// WithAuthor stamps the author onto markups the editor creates.
func WithAuthor(author string) Option {
	return func(e *Editor) { e.author = author }
}

// WithDoc stamps the owning document identifier onto markups the editor
// creates.
func WithDoc(doc string) Option {
	return func(e *Editor) { e.doc = doc }
}
