package redline

// Align is the horizontal text alignment inside a text box.
type Align string

// Horizontal alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VAlign is the vertical text alignment inside a text box.
type VAlign string

// Vertical alignments.
const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// LineStyle selects the stroke dash pattern.
type LineStyle string

// Line styles.
const (
	LineSolid   LineStyle = "solid"
	LineDashed  LineStyle = "dashed"
	LineDotted  LineStyle = "dotted"
	LineDashDot LineStyle = "dashdot"
)

// DefaultFontSize is the text size in points at 100% zoom for freshly
// created text markups.
const DefaultFontSize = 14.0

// Style holds the visual attributes shared by every markup kind.
// Pixel quantities (StrokeWidth) are at 100% zoom; the render adapter
// scales them with the view. Opacities multiply the color alphas at
// draw time.
type Style struct {
	Color       RGBA
	FillColor   RGBA
	Opacity     float64
	FillOpacity float64
	StrokeWidth float64
	LineStyle   LineStyle
}

// DefaultStyle returns the style applied to freshly drawn markups:
// an opaque red 2px solid outline with no fill.
func DefaultStyle() Style {
	return Style{
		Color:       Red,
		FillColor:   Transparent,
		Opacity:     1,
		FillOpacity: 1,
		StrokeWidth: 2,
		LineStyle:   LineSolid,
	}
}

// DefaultHighlighterStyle returns the translucent wide-stroke style used
// for highlighter strokes.
func DefaultHighlighterStyle() Style {
	return Style{
		Color:       Yellow,
		FillColor:   Transparent,
		Opacity:     0.35,
		FillOpacity: 1,
		StrokeWidth: 14,
		LineStyle:   LineSolid,
	}
}

// EffectiveStroke returns the stroke color with opacity applied.
func (s Style) EffectiveStroke() RGBA {
	return s.Color.WithAlpha(s.Opacity)
}

// EffectiveFill returns the fill color with fill opacity applied.
func (s Style) EffectiveFill() RGBA {
	return s.FillColor.WithAlpha(s.FillOpacity)
}

// Filled reports whether the style paints a fill. Hit-testing uses this
// to decide between containment and outline-proximity tests.
func (s Style) Filled() bool {
	return !s.FillColor.IsTransparent() && s.FillOpacity > 0
}

// Dashes returns the dash pattern for the line style at the given stroke
// width in pixels, or nil for a solid stroke.
func (s Style) Dashes(strokePx float64) []float64 {
	if strokePx <= 0 {
		strokePx = 1
	}
	switch s.LineStyle {
	case LineDashed:
		return []float64{4 * strokePx, 2 * strokePx}
	case LineDotted:
		return []float64{strokePx, 2 * strokePx}
	case LineDashDot:
		return []float64{4 * strokePx, 2 * strokePx, strokePx, 2 * strokePx}
	default:
		return nil
	}
}
