// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package editor

import (
	"golang.org/x/text/unicode/norm"

	"github.com/markuplab/redline"
)

// textEditState is the inline text-edit session over one text or
// callout markup. The committed markup stays untouched until the
// session ends; edits accumulate in a rune buffer previewed through the
// render adapter.
type textEditState struct {
	id      string
	page    int
	buf     []rune
	cursor  int
	preText string
}

// StartTextEdit enters the editing-text state on the text or callout
// markup with the given id. Anything else is a no-op.
func (e *Editor) StartTextEdit(id string) {
	m, ok := e.col.ByID(id)
	if !ok {
		return
	}
	t, isText := m.(*redline.TextBox)
	if !isText || !e.canEdit(t) {
		return
	}
	if e.state == StateEditingText {
		e.EndTextEdit()
	}
	buf := []rune(t.Text)
	e.text = &textEditState{
		id:      id,
		page:    t.Meta.Page,
		buf:     buf,
		cursor:  len(buf),
		preText: t.Text,
	}
	e.state = StateEditingText
	e.previewText()
}

// EditingText returns the markup id under edit and the current buffer.
func (e *Editor) EditingText() (id, text string, cursor int, ok bool) {
	if e.state != StateEditingText || e.text == nil {
		return "", "", 0, false
	}
	return e.text.id, string(e.text.buf), e.text.cursor, true
}

// InsertText inserts s at the cursor.
func (e *Editor) InsertText(s string) {
	if e.state != StateEditingText || s == "" {
		return
	}
	t := e.text
	ins := []rune(s)
	t.buf = append(t.buf[:t.cursor], append(ins, t.buf[t.cursor:]...)...)
	t.cursor += len(ins)
	e.previewText()
}

// InsertNewline inserts a line break at the cursor.
func (e *Editor) InsertNewline() { e.InsertText("\n") }

// Backspace deletes the rune before the cursor.
func (e *Editor) Backspace() {
	if e.state != StateEditingText || e.text.cursor == 0 {
		return
	}
	t := e.text
	t.buf = append(t.buf[:t.cursor-1], t.buf[t.cursor:]...)
	t.cursor--
	e.previewText()
}

// DeleteForward deletes the rune after the cursor.
func (e *Editor) DeleteForward() {
	if e.state != StateEditingText || e.text.cursor >= len(e.text.buf) {
		return
	}
	t := e.text
	t.buf = append(t.buf[:t.cursor], t.buf[t.cursor+1:]...)
	e.previewText()
}

// MoveCursor moves the cursor by delta runes, clamped to the buffer.
func (e *Editor) MoveCursor(delta int) {
	if e.state != StateEditingText {
		return
	}
	t := e.text
	t.cursor += delta
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor > len(t.buf) {
		t.cursor = len(t.buf)
	}
}

// EndTextEdit commits the edited text. The buffer is NFC-normalized so
// visually identical input composes to one canonical encoding; an
// unchanged buffer commits nothing.
func (e *Editor) EndTextEdit() {
	if e.state != StateEditingText || e.text == nil {
		return
	}
	t := e.text
	e.text = nil
	e.adapter.ClearPreview(t.page)

	final := norm.NFC.String(string(t.buf))
	if final == t.preText {
		e.toIdle()
		return
	}
	auth, ok := e.col.ByID(t.id)
	if !ok {
		e.toIdle()
		return
	}
	tb, isText := auth.(*redline.TextBox)
	if !isText {
		e.toIdle()
		return
	}
	e.history.Record(e.col)
	next := tb.Clone().(*redline.TextBox)
	next.Text = final
	e.col.Replace(next)
	e.listener.Committed(next)
	e.damage(t.page)
	e.toIdle()
}

// CancelTextEdit abandons the session; the markup keeps its pre-edit
// text.
func (e *Editor) CancelTextEdit() {
	if e.state != StateEditingText || e.text == nil {
		return
	}
	page := e.text.page
	e.text = nil
	e.adapter.ClearPreview(page)
	e.toIdle()
}

// previewText shows the edited text through the preview channel; the
// preview's id shadows the committed markup during paint.
func (e *Editor) previewText() {
	t := e.text
	auth, ok := e.col.ByID(t.id)
	if !ok {
		return
	}
	tb, isText := auth.(*redline.TextBox)
	if !isText {
		return
	}
	preview := tb.Clone().(*redline.TextBox)
	preview.Text = string(t.buf)
	e.adapter.PreviewShape(t.page, preview)
}
