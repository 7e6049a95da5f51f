// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package editor

import "github.com/markuplab/redline"

// PendingShape carries an uncommitted shape that needs input beyond
// geometry (note text, symbol classification, region assignment) before
// it can be committed. The dialog collaborator either enriches and
// returns it through Editor.ConfirmPending or drops it through
// Editor.CancelPending.
type PendingShape struct {
	Markup redline.Markup
}

// Listener is the host boundary for editor events. All calls happen
// synchronously on the UI thread while the editor processes an input
// event.
type Listener interface {
	// SelectionChanged fires whenever the selection content changes.
	SelectionChanged(sel *redline.Selection)

	// Committed fires after a markup is added or mutated in the
	// permanent collection.
	Committed(m redline.Markup)

	// Deleted fires after markups are removed from the collection.
	Deleted(ids []string)

	// PendingShape fires when a gesture completes for a kind that needs
	// dialog input before committing.
	PendingShape(p PendingShape)

	// PageDamaged fires when a page's committed content changed and
	// needs repainting.
	PageDamaged(page int)

	// Panned reports pointer deltas (viewport pixels) while the pan tool
	// drags; the host owns scroll state.
	Panned(dx, dy float64)
}

// NopListener is a Listener that ignores everything.
type NopListener struct{}

// SelectionChanged implements Listener.
func (NopListener) SelectionChanged(*redline.Selection) {}

// Committed implements Listener.
func (NopListener) Committed(redline.Markup) {}

// Deleted implements Listener.
func (NopListener) Deleted([]string) {}

// PendingShape implements Listener.
func (NopListener) PendingShape(PendingShape) {}

// PageDamaged implements Listener.
func (NopListener) PageDamaged(int) {}

// Panned implements Listener.
func (NopListener) Panned(float64, float64) {}

var _ Listener = NopListener{}
