package richtext

import "testing"

func TestUndoRedoRoundTrip(t *testing.T) {
	s := NewSurface(Options{Value: "<p>one</p>"})
	selectSpan(s, 3, 3)
	s.InsertText(" two")

	if got := s.PlainText(); got != "one two" {
		t.Fatalf("PlainText() = %q", got)
	}
	if !s.CanUndo() || s.CanRedo() {
		t.Fatalf("CanUndo=%v CanRedo=%v, want true false", s.CanUndo(), s.CanRedo())
	}

	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if got := s.PlainText(); got != "one" {
		t.Errorf("after undo PlainText() = %q", got)
	}
	if !s.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	if !s.Redo() {
		t.Fatal("Redo() = false")
	}
	if got := s.PlainText(); got != "one two" {
		t.Errorf("after redo PlainText() = %q", got)
	}
}

func TestUndoOnEmptyStack(t *testing.T) {
	s := NewSurface(Options{Value: "<p>one</p>"})

	if s.Undo() {
		t.Error("Undo() on an empty stack should return false")
	}
	if s.Redo() {
		t.Error("Redo() on an empty stack should return false")
	}
}

func TestNewMutationClearsRedo(t *testing.T) {
	s := NewSurface(Options{})
	s.InsertText("a")
	s.Undo()

	if !s.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}
	s.InsertText("b")
	if s.CanRedo() {
		t.Error("a new mutation should clear the redo stack")
	}
}

func TestHistoryLimitCapsDepth(t *testing.T) {
	s := NewSurface(Options{HistoryLimit: 2})
	s.InsertText("a")
	s.InsertText("b")
	s.InsertText("c")

	undos := 0
	for s.Undo() {
		undos++
	}
	if undos != 2 {
		t.Errorf("undo depth = %d, want 2", undos)
	}
}

func TestUnchangedMutationRecordsNothing(t *testing.T) {
	s := NewSurface(Options{})

	s.InsertText("")
	s.DeleteBackward()

	if s.CanUndo() {
		t.Error("no-op mutations should not record history")
	}
}
