package redline

import (
	"testing"
)

func TestSelectionSingleMulti(t *testing.T) {
	var s Selection

	if !s.Empty() {
		t.Fatal("zero selection should be empty")
	}

	s.SetSingle("a")
	if id, ok := s.Single(); !ok || id != "a" {
		t.Errorf("Single() = %q, %v", id, ok)
	}
	if !s.Contains("a") || s.Contains("b") {
		t.Error("Contains wrong after SetSingle")
	}

	s.SetMulti([]string{"a", "b", "c"})
	if _, ok := s.Single(); ok {
		t.Error("Single() should fail for a multi selection")
	}
	if got := len(s.IDs()); got != 3 {
		t.Errorf("len(IDs) = %d, want 3", got)
	}

	// A one-element multi collapses to a single selection.
	s.SetMulti([]string{"z"})
	if id, ok := s.Single(); !ok || id != "z" {
		t.Errorf("one-element SetMulti: Single() = %q, %v", id, ok)
	}

	s.Clear()
	if !s.Empty() {
		t.Error("Clear left a selection")
	}
}

func TestSelectionToggle(t *testing.T) {
	var s Selection
	s.SetSingle("a")

	s.Toggle("b")
	if got := len(s.IDs()); got != 2 {
		t.Fatalf("after toggle-in: %d ids, want 2", got)
	}

	s.Toggle("a")
	if id, ok := s.Single(); !ok || id != "b" {
		t.Errorf("after toggle-out: Single() = %q, %v", id, ok)
	}

	s.Toggle("b")
	if !s.Empty() {
		t.Error("toggling the last member should empty the selection")
	}
}

func TestSelectionPrune(t *testing.T) {
	c := NewCollection()
	a := testBox(0)
	c.Add(a)

	var s Selection
	s.SetMulti([]string{a.Meta.ID, "gone-1", "gone-2"})
	s.Prune(c)

	if id, ok := s.Single(); !ok || id != a.Meta.ID {
		t.Errorf("after prune: Single() = %q, %v; want surviving id", id, ok)
	}

	c.Remove(a.Meta.ID)
	s.Prune(c)
	if !s.Empty() {
		t.Error("prune against an empty collection should clear the selection")
	}
}
