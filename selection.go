package redline

// Selection tracks which markups are selected. It is either a single
// selection (eligible for resize/rotate/vertex edit) or a multi
// selection (move-only, bounding-box highlight); setting one clears the
// other.
type Selection struct {
	single string
	multi  []string
}

// Single returns the id of the single selected markup, if any.
func (s *Selection) Single() (string, bool) {
	return s.single, s.single != ""
}

// Multi returns the ids of the multi selection in selection order. The
// returned slice is shared; callers must not mutate it.
func (s *Selection) Multi() []string { return s.multi }

// IDs returns every selected id regardless of selection mode.
func (s *Selection) IDs() []string {
	if s.single != "" {
		return []string{s.single}
	}
	return s.multi
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return s.single == "" && len(s.multi) == 0
}

// Contains reports whether the id is selected in either mode.
func (s *Selection) Contains(id string) bool {
	if s.single == id && id != "" {
		return true
	}
	for _, v := range s.multi {
		if v == id {
			return true
		}
	}
	return false
}

// SetSingle selects exactly one markup, clearing any multi selection.
func (s *Selection) SetSingle(id string) {
	s.single = id
	s.multi = nil
}

// SetMulti replaces the selection with the given set, clearing the
// single selection. An empty set clears everything; a one-element set
// collapses to a single selection so resize handles stay available.
func (s *Selection) SetMulti(ids []string) {
	s.single = ""
	s.multi = nil
	switch len(ids) {
	case 0:
	case 1:
		s.single = ids[0]
	default:
		s.multi = append([]string(nil), ids...)
	}
}

// Toggle flips membership of the id (shift-click). The result collapses
// to a single selection when one markup remains.
func (s *Selection) Toggle(id string) {
	ids := s.IDs()
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	s.SetMulti(out)
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.single = ""
	s.multi = nil
}

// Prune drops selected ids no longer present in the collection.
func (s *Selection) Prune(c *Collection) {
	if s.single != "" {
		if _, ok := c.ByID(s.single); !ok {
			s.single = ""
		}
		return
	}
	kept := s.multi[:0]
	for _, id := range s.multi {
		if _, ok := c.ByID(id); ok {
			kept = append(kept, id)
		}
	}
	s.SetMulti(kept)
}
