package richtext

// ToggleBold toggles strong formatting on the current selection.
func (s *Surface) ToggleBold() { s.toggleWrap(TagStrong) }

// ToggleItalic toggles emphasis formatting on the current selection.
func (s *Surface) ToggleItalic() { s.toggleWrap(TagEm) }

// ToggleUnderline toggles underline formatting on the current selection.
func (s *Surface) ToggleUnderline() { s.toggleWrap(TagUnderline) }

// ToggleStrikethrough toggles strikethrough formatting on the current selection.
func (s *Surface) ToggleStrikethrough() { s.toggleWrap(TagStrike) }

// toggleWrap applies or removes an inline wrapper around the selection.
//
// The unwrap check inspects only the selection's immediate parent element,
// not the full ancestor chain. Toggling inside nested identical markup
// therefore double-wraps rather than unwrapping an outer ancestor; that
// shallow behavior is intentional and must not be deepened.
func (s *Surface) toggleWrap(tag Tag) {
	before := s.beginMutation()

	switch {
	case s.sel == nil:
		// No live selection: append an empty wrapper at the end and select
		// inside it.
		s.appendEmptyWrapper(tag)

	case !s.sel.containedIn(s.root):
		warnf("toggle %s: selection outside editable surface", tag)
		return

	default:
		parent := s.sel.Anchor.parentElement()
		switch {
		case parent != nil && parent != s.root && parent.tag == tag:
			// Turn formatting off: splice the wrapper's children up and
			// drop the empty wrapper.
			parent.Unwrap()

		case !s.sel.Collapsed():
			nodes, container, idx, err := extractRange(s.sel)
			if err != nil {
				warnf("toggle %s: %v", tag, err)
				return
			}
			wrapper := NewElement(tag)
			for _, n := range nodes {
				wrapper.AppendChild(n)
			}
			container.InsertChildAt(idx, wrapper)
			s.sel = selectContents(wrapper)

		default:
			// Collapsed caret: seed a wrapper with a zero-width placeholder
			// so the next typed characters inherit the formatting.
			s.insertWrapperAtCaret(tag)
		}
	}

	s.afterMutation(before)
}

// appendEmptyWrapper adds a placeholder-seeded wrapper at the document end
// and collapses the selection inside it.
func (s *Surface) appendEmptyWrapper(tag Tag) {
	wrapper := NewElement(tag)
	text := NewText(ZeroWidthSpace)
	wrapper.AppendChild(text)
	s.root.AppendChild(wrapper)

	s.sel = &Selection{}
	s.sel.CollapseTo(Caret{Node: text, Offset: text.TextLen()})
}

// insertWrapperAtCaret inserts a placeholder-seeded wrapper at the collapsed
// caret position and collapses the selection inside it.
func (s *Surface) insertWrapperAtCaret(tag Tag) {
	c := s.sel.Anchor
	wrapper := NewElement(tag)
	text := NewText(ZeroWidthSpace)
	wrapper.AppendChild(text)

	if c.Node.kind == TextNode {
		parent := c.Node.parent
		if parent == nil {
			warnf("toggle %s: caret text node has no parent", tag)
			return
		}
		left, right := splitText(c.Node, c.Offset)
		idx := 0
		switch {
		case right != nil:
			idx = parent.IndexOf(right)
		case left != nil:
			idx = parent.IndexOf(left) + 1
		}
		parent.InsertChildAt(idx, wrapper)
	} else {
		c.Node.InsertChildAt(c.Offset, wrapper)
	}

	s.sel.CollapseTo(Caret{Node: text, Offset: text.TextLen()})
}

// selectContents returns a selection spanning all children of n.
func selectContents(n *Node) *Selection {
	return &Selection{
		Anchor: Caret{Node: n, Offset: 0},
		Focus:  Caret{Node: n, Offset: len(n.children)},
	}
}
