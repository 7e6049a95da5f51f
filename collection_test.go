package redline

import (
	"testing"
)

func testBox(page int) *Box {
	return NewBox(KindRectangle, page, Pt(0.1, 0.1), Pt(0.3, 0.3))
}

func TestCollectionAddRemove(t *testing.T) {
	c := NewCollection()
	a := testBox(0)
	b := testBox(1)
	c.Add(a)
	c.Add(b)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if got, ok := c.ByID(a.Meta.ID); !ok || got != Markup(a) {
		t.Error("ByID did not find the first markup")
	}
	if !c.Remove(a.Meta.ID) {
		t.Error("Remove returned false for a present id")
	}
	if c.Remove(a.Meta.ID) {
		t.Error("Remove returned true for an absent id")
	}
	if _, ok := c.ByID(a.Meta.ID); ok {
		t.Error("removed markup still findable")
	}
	if c.At(0) != Markup(b) {
		t.Error("remaining markup not reindexed to slot 0")
	}
}

func TestCollectionZeroValueUsable(t *testing.T) {
	var c Collection
	a := testBox(0)
	c.Add(a)

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if got, ok := c.ByID(a.Meta.ID); !ok || got != Markup(a) {
		t.Error("ByID did not find the markup added to a zero value")
	}
}

func TestCollectionAddDuplicateIDReplaces(t *testing.T) {
	c := NewCollection()
	a := testBox(0)
	c.Add(a)
	dup := a.Clone().(*Box)
	dup.End = Pt(0.9, 0.9)
	c.Add(dup)

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after duplicate add", c.Len())
	}
	got, _ := c.ByID(a.Meta.ID)
	if got.(*Box).End != Pt(0.9, 0.9) {
		t.Error("duplicate add did not replace the markup")
	}
}

func TestCollectionOnPage(t *testing.T) {
	c := NewCollection()
	c.Add(testBox(0))
	c.Add(testBox(2))
	c.Add(testBox(0))

	if got := len(c.OnPage(0)); got != 2 {
		t.Errorf("OnPage(0) = %d markups, want 2", got)
	}
	if got := len(c.OnPage(1)); got != 0 {
		t.Errorf("OnPage(1) = %d markups, want 0", got)
	}
}

func TestCollectionZOrder(t *testing.T) {
	c := NewCollection()
	a, b, d := testBox(0), testBox(0), testBox(0)
	c.Add(a)
	c.Add(b)
	c.Add(d)

	c.BringToFront(a.Meta.ID)
	if c.At(c.Len()-1) != Markup(a) {
		t.Error("BringToFront did not move the markup last")
	}
	c.SendToBack(d.Meta.ID)
	if c.At(0) != Markup(d) {
		t.Error("SendToBack did not move the markup first")
	}
	// Index map stays consistent after reordering.
	if got, ok := c.ByID(b.Meta.ID); !ok || got != Markup(b) {
		t.Error("ByID broken after reorder")
	}
}

func TestCollectionCloneIsDeep(t *testing.T) {
	c := NewCollection()
	a := testBox(0)
	c.Add(a)

	snap := c.Clone()
	a.End = Pt(0.99, 0.99)

	got, _ := snap.ByID(a.Meta.ID)
	if got.(*Box).End == Pt(0.99, 0.99) {
		t.Error("mutating the original leaked into the clone")
	}
	if !c.Clone().Equal(c) {
		t.Error("Clone should compare equal to its source")
	}
}
