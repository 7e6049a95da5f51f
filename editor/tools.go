// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package editor

import "github.com/markuplab/redline"

// Tool is the active drawing tool. ToolSelect (the zero value) is the
// plain selection/manipulation mode; ToolPan scrolls the document.
//
// Tool activation is a pure entry point (Editor.SetTool); key bindings
// live in hosts.
type Tool string

// Tools.
const (
	ToolSelect        Tool = ""
	ToolPan           Tool = "pan"
	ToolPen           Tool = "pen"
	ToolHighlighter   Tool = "highlighter"
	ToolRectangle     Tool = "rectangle"
	ToolCircle        Tool = "circle"
	ToolLine          Tool = "line"
	ToolArrow         Tool = "arrow"
	ToolArc           Tool = "arc"
	ToolCloud         Tool = "cloud"
	ToolPolyline      Tool = "polyline"
	ToolPolylineArrow Tool = "polylineArrow"
	ToolCloudPolyline Tool = "cloudPolyline"
	ToolPolygon       Tool = "polygon"
	ToolText          Tool = "text"
	ToolCallout       Tool = "callout"
	ToolNote          Tool = "note"
	ToolSymbol        Tool = "symbol"
	ToolStamp         Tool = "stamp"
)

// polylineTool reports whether the tool accumulates vertices click by
// click instead of dragging.
func polylineTool(t Tool) bool {
	switch t {
	case ToolPolyline, ToolPolylineArrow, ToolCloudPolyline, ToolPolygon:
		return true
	}
	return false
}

// toolKind maps drawing tools to the markup kind they produce.
var toolKind = map[Tool]redline.Kind{
	ToolPen:           redline.KindPen,
	ToolHighlighter:   redline.KindHighlighter,
	ToolRectangle:     redline.KindRectangle,
	ToolCircle:        redline.KindCircle,
	ToolLine:          redline.KindLine,
	ToolArrow:         redline.KindArrow,
	ToolArc:           redline.KindArc,
	ToolCloud:         redline.KindCloud,
	ToolPolyline:      redline.KindPolyline,
	ToolPolylineArrow: redline.KindPolylineArrow,
	ToolCloudPolyline: redline.KindCloudPolyline,
	ToolPolygon:       redline.KindPolygon,
	ToolText:          redline.KindText,
	ToolCallout:       redline.KindCallout,
	ToolNote:          redline.KindNote,
	ToolSymbol:        redline.KindSymbol,
	ToolStamp:         redline.KindStamp,
}

// State names the interaction state machine's current state.
type State string

// Interaction states.
const (
	StateIdle            State = "idle"
	StateDrawing         State = "drawing"
	StateDrawingPolyline State = "drawing-polyline"
	StateDraggingShape   State = "dragging-shape"
	StateResizing        State = "resizing"
	StateRotating        State = "rotating"
	StateDraggingVertex  State = "dragging-vertex"
	StateSelectingBox    State = "selecting-box"
	StatePanning         State = "panning"
	StateEditingText     State = "editing-text"
)
