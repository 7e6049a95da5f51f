package redline

// DefaultHistoryLimit bounds the undo stack; the oldest snapshot is
// dropped when the limit is exceeded.
const DefaultHistoryLimit = 100

// History is a linear snapshot undo/redo stack over the markup
// collection. Record pushes a deep clone of the pre-mutation state
// before every commit; redo branches are discarded on each new commit.
type History struct {
	undo  []*Collection
	redo  []*Collection
	limit int
}

// NewHistory returns a history bounded to the given number of undo
// snapshots. limit <= 0 uses DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record pushes a snapshot of the collection as it was before a commit
// and clears the redo stack.
func (h *History) Record(pre *Collection) {
	h.undo = append(h.undo, pre.Clone())
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo pushes the current state onto the redo stack and returns the
// collection to install, or ok=false when there is nothing to undo.
// The returned collection is a clone; mutating it never corrupts the
// history.
func (h *History) Undo(current *Collection) (*Collection, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return top.Clone(), true
}

// Redo pushes the current state back onto the undo stack and returns the
// collection to install, or ok=false when there is nothing to redo.
func (h *History) Redo(current *Collection) (*Collection, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return top.Clone(), true
}

// Clear discards both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Depth returns the undo and redo stack depths.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}
