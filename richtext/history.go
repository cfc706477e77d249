package richtext

// history keeps serialized document snapshots for undo/redo. Restoring a
// snapshot reparses the markup, so the selection is cleared on undo/redo.
type history struct {
	undo  []string
	redo  []string
	limit int
}

func (h *history) record(snapshot string) {
	if h.limit <= 0 {
		return
	}
	h.undo = append(h.undo, snapshot)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

// CanUndo reports whether an undo step is available.
func (s *Surface) CanUndo() bool { return len(s.hist.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (s *Surface) CanRedo() bool { return len(s.hist.redo) > 0 }

// Undo restores the previous document snapshot. Returns false when the undo
// stack is empty.
func (s *Surface) Undo() bool {
	if len(s.hist.undo) == 0 {
		return false
	}
	cur := s.snapshot()

	i := len(s.hist.undo) - 1
	prev := s.hist.undo[i]
	s.hist.undo = s.hist.undo[:i]
	s.hist.redo = append(s.hist.redo, cur)

	s.root = ParseHTML(prev)
	s.sel = nil
	s.notify()
	return true
}

// Redo reapplies the most recently undone snapshot.
func (s *Surface) Redo() bool {
	if len(s.hist.redo) == 0 {
		return false
	}
	cur := s.snapshot()

	i := len(s.hist.redo) - 1
	next := s.hist.redo[i]
	s.hist.redo = s.hist.redo[:i]

	s.hist.undo = append(s.hist.undo, cur)
	if len(s.hist.undo) > s.hist.limit {
		s.hist.undo = s.hist.undo[len(s.hist.undo)-s.hist.limit:]
	}

	s.root = ParseHTML(next)
	s.sel = nil
	s.notify()
	return true
}
