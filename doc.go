// Package redline provides the markup geometry and interaction engine for
// annotating multi-page documents.
//
// # Overview
//
// redline models vector markups (pen strokes, highlighters, rectangles,
// circles, lines, arrows, arcs, clouds, polylines, text boxes, callouts,
// notes and placed images/symbols/stamps) drawn over the pages of a
// paginated document. The root package holds the shape model and the pure
// geometric operations over it: bounds, hit-testing, move/resize/rotate
// transforms, polyline vertex editing, selection-handle layout, and
// snapshot-based undo/redo history.
//
// # Quick Start
//
//	import "github.com/markuplab/redline"
//
//	col := redline.NewCollection()
//	m := redline.NewBox(redline.KindRectangle, 0, redline.Pt(0.1, 0.1), redline.Pt(0.4, 0.3))
//	col.Add(m)
//
//	if b, ok := redline.BoundsOf(m); ok {
//		// b spans (0.1,0.1)-(0.4,0.3) in page-normalized units
//		_ = b
//	}
//
// # Coordinate System
//
// All markup geometry is stored in page-normalized coordinates:
//   - Origin (0,0) at the page's top-left corner
//   - (1,1) at the page's bottom-right corner
//   - X increases right, Y increases down
//   - Rotation is stored in degrees, clockwise, applied around the
//     markup's bounding-box center at render/hit-test time
//
// Pixel sizes (stroke widths, handle radii, font sizes) are resolved
// against a PageView, the pixel dimensions of a page at the current zoom.
// Within one page the normalized-to-pixel scale is identical for both
// axes.
//
// # Architecture
//
// The engine is split into:
//   - Root package: Markup variants, Collection, geometry, handles, History
//   - layout: page placement, virtualization window, screen↔page mapping
//   - editor: the pointer-driven interaction state machine
//   - render: the drawing-surface boundary and a raster implementation
//   - detect: interchange with the external object-detection collaborator
//
// The root package has no rendering or input dependencies; hosts wire the
// pieces together (see cmd/redline-demo and cmd/redline-paint).
package redline

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
