package redline

import "reflect"

// Collection is the flat ordered set of committed markups for one
// document. Slice order is z-order: later markups draw on top.
//
// Collection is a single-writer structure: the editor mutates it on the
// UI thread and everything else reads it. It is not safe for concurrent
// use.
type Collection struct {
	items []Markup
	byID  map[string]int
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byID: map[string]int{}}
}

// Len returns the number of markups.
func (c *Collection) Len() int { return len(c.items) }

// Add appends the markup at the top of the z-order. A markup with a
// duplicate id replaces the existing one in place instead. The
// zero-value Collection is usable.
func (c *Collection) Add(m Markup) {
	if c.byID == nil {
		c.byID = map[string]int{}
	}
	id := m.Common().ID
	if i, ok := c.byID[id]; ok {
		c.items[i] = m
		return
	}
	c.byID[id] = len(c.items)
	c.items = append(c.items, m)
}

// Remove deletes the markup with the given id, preserving the order of
// the rest. It reports whether anything was removed.
func (c *Collection) Remove(id string) bool {
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.byID, id)
	for j := i; j < len(c.items); j++ {
		c.byID[c.items[j].Common().ID] = j
	}
	return true
}

// Replace swaps the stored markup with the same id for m, keeping its
// z-order position. It reports whether the id was present.
func (c *Collection) Replace(m Markup) bool {
	i, ok := c.byID[m.Common().ID]
	if !ok {
		return false
	}
	c.items[i] = m
	return true
}

// ByID returns the markup with the given id.
func (c *Collection) ByID(id string) (Markup, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return c.items[i], true
}

// At returns the markup at z-order position i.
func (c *Collection) At(i int) Markup { return c.items[i] }

// All returns the markups in z-order. The returned slice is shared;
// callers must not mutate it.
func (c *Collection) All() []Markup { return c.items }

// OnPage returns the markups on the given page, in z-order.
func (c *Collection) OnPage(page int) []Markup {
	var out []Markup
	for _, m := range c.items {
		if m.Common().Page == page {
			out = append(out, m)
		}
	}
	return out
}

// BringToFront moves the markup with the given id to the top of the
// z-order. Unknown ids are ignored.
func (c *Collection) BringToFront(id string) {
	i, ok := c.byID[id]
	if !ok || i == len(c.items)-1 {
		return
	}
	m := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.items = append(c.items, m)
	c.reindex(i)
}

// SendToBack moves the markup with the given id to the bottom of the
// z-order. Unknown ids are ignored.
func (c *Collection) SendToBack(id string) {
	i, ok := c.byID[id]
	if !ok || i == 0 {
		return
	}
	m := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.items = append([]Markup{m}, c.items...)
	c.reindex(0)
}

func (c *Collection) reindex(from int) {
	for j := from; j < len(c.items); j++ {
		c.byID[c.items[j].Common().ID] = j
	}
}

// Clone returns a deep copy; history snapshots are clones so later edits
// never alias an undo state.
func (c *Collection) Clone() *Collection {
	out := &Collection{
		items: make([]Markup, len(c.items)),
		byID:  make(map[string]int, len(c.byID)),
	}
	for i, m := range c.items {
		out.items[i] = m.Clone()
		out.byID[m.Common().ID] = i
	}
	return out
}

// Equal reports whether two collections hold equal markups in the same
// order.
func (c *Collection) Equal(o *Collection) bool {
	if len(c.items) != len(o.items) {
		return false
	}
	for i := range c.items {
		if !reflect.DeepEqual(c.items[i], o.items[i]) {
			return false
		}
	}
	return true
}
