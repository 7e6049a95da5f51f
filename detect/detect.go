// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package detect converts object-detection results into markups.
//
// The detection backend runs out of process and reports plain JSON;
// this package owns the interchange shape and the mapping onto the
// markup model. Detected markups arrive with Origin detected, which
// keeps them selectable but not editable until the host opens the
// editor's import-edit gate.
package detect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/markuplab/redline"
)

// Result is one detection reported by the backend. Coordinates are
// normalized to the page, y-down, matching the markup model.
type Result struct {
	Page       int     `json:"page"`
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// DecodeResults reads a JSON array of detection results.
func DecodeResults(r io.Reader) ([]Result, error) {
	var out []Result
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("redline: decoding detection results: %w", err)
	}
	return out, nil
}

// Markups converts detection results into placed symbol markups,
// skipping results below minConfidence. The detection label is kept on
// the markup so panels can group by class.
func Markups(results []Result, doc, author string, minConfidence float64) []*redline.Placed {
	out := make([]*redline.Placed, 0, len(results))
	for _, res := range results {
		if res.Confidence < minConfidence {
			redline.Logger().Debug("detection below confidence floor",
				"label", res.Label, "confidence", res.Confidence)
			continue
		}
		m := redline.NewPlaced(redline.KindSymbol, res.Page,
			redline.Point{X: res.X1, Y: res.Y1},
			redline.Point{X: res.X2, Y: res.Y2},
			"")
		m.Label = res.Label
		m.Meta.Doc = doc
		m.Meta.Author = author
		m.Meta.Origin = redline.OriginDetected
		out = append(out, m)
	}
	return out
}
