package richtext

// Linear caret addressing: the document's text content forms a single rune
// sequence, and the caret maps onto an offset into it. The terminal widget
// drives cursor movement through these helpers.

// textLengthBelow returns the total rune count of text under n.
func textLengthBelow(n *Node) int {
	if n.kind == TextNode {
		return len(n.text)
	}
	total := 0
	for _, c := range n.children {
		total += textLengthBelow(c)
	}
	return total
}

// TextLength returns the document's total text length in runes.
func (s *Surface) TextLength() int {
	return textLengthBelow(s.root)
}

// caretLinear converts a caret to a linear rune offset, or -1 when the caret
// does not resolve under root.
func caretLinear(root *Node, c Caret) int {
	if c.Node == nil {
		return -1
	}
	pos := 0
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n == c.Node {
			if n.kind == TextNode {
				pos += min(c.Offset, len(n.text))
			} else {
				for i := 0; i < c.Offset && i < len(n.children); i++ {
					pos += textLengthBelow(n.children[i])
				}
			}
			return true
		}
		if n.kind == TextNode {
			pos += len(n.text)
			return false
		}
		for _, child := range n.children {
			if walk(child) {
				return true
			}
		}
		return false
	}
	if !walk(root) {
		return -1
	}
	return pos
}

// linearCaret converts a linear rune offset back to a caret, preferring a
// position inside a text node. Offsets past the end clamp; a document with
// no text yields a caret at the end of the root's child list.
func linearCaret(root *Node, pos int) Caret {
	if pos < 0 {
		pos = 0
	}
	var last *Node
	remaining := pos
	var walk func(n *Node) *Caret
	walk = func(n *Node) *Caret {
		if n.kind == TextNode {
			if remaining <= len(n.text) {
				return &Caret{Node: n, Offset: remaining}
			}
			remaining -= len(n.text)
			last = n
			return nil
		}
		for _, child := range n.children {
			if c := walk(child); c != nil {
				return c
			}
		}
		return nil
	}
	if c := walk(root); c != nil {
		return *c
	}
	if last != nil {
		return Caret{Node: last, Offset: last.TextLen()}
	}
	return Caret{Node: root, Offset: len(root.children)}
}

// CaretPosition returns the linear offset of the caret (the selection
// focus), or the document end when there is no live selection.
func (s *Surface) CaretPosition() int {
	if s.selectionIn() {
		if pos := caretLinear(s.root, s.sel.Focus); pos >= 0 {
			return pos
		}
	}
	return s.TextLength()
}

// SelectionBounds returns the selection's start and end linear offsets.
// A collapsed or missing selection reports an empty range at the caret.
func (s *Surface) SelectionBounds() (start, end int) {
	if !s.selectionIn() {
		n := s.TextLength()
		return n, n
	}
	a, b := s.sel.ordered()
	sa := caretLinear(s.root, a)
	sb := caretLinear(s.root, b)
	if sa < 0 || sb < 0 {
		n := s.TextLength()
		return n, n
	}
	return sa, sb
}

// MoveCaret collapses the selection and moves the caret by delta runes,
// clamped to the document bounds.
func (s *Surface) MoveCaret(delta int) {
	pos := s.CaretPosition() + delta
	if pos < 0 {
		pos = 0
	}
	if n := s.TextLength(); pos > n {
		pos = n
	}
	s.sel = &Selection{}
	s.sel.CollapseTo(linearCaret(s.root, pos))
	s.state = deriveState(s.root, s.sel)
}

// ExtendSelection moves only the selection focus by delta runes, growing or
// shrinking the highlighted range.
func (s *Surface) ExtendSelection(delta int) {
	if !s.selectionIn() {
		s.MoveCaret(0)
	}
	pos := caretLinear(s.root, s.sel.Focus) + delta
	if pos < 0 {
		pos = 0
	}
	if n := s.TextLength(); pos > n {
		pos = n
	}
	s.sel.Focus = linearCaret(s.root, pos)
	s.state = deriveState(s.root, s.sel)
}

// SelectAll selects the whole document.
func (s *Surface) SelectAll() {
	s.sel = &Selection{
		Anchor: linearCaret(s.root, 0),
		Focus:  linearCaret(s.root, s.TextLength()),
	}
	s.state = deriveState(s.root, s.sel)
}

// InsertText inserts text at the caret, replacing any non-collapsed
// selection. Pasted plain text goes through here verbatim.
func (s *Surface) InsertText(text string) {
	if text == "" {
		return
	}
	before := s.beginMutation()

	if s.selectionIn() && !s.sel.Collapsed() {
		nodes, container, idx, err := extractRange(s.sel)
		if err != nil {
			warnf("insert text: %v", err)
			return
		}
		_ = nodes
		tn := NewText(text)
		container.InsertChildAt(idx, tn)
		s.sel = &Selection{}
		s.sel.CollapseTo(Caret{Node: tn, Offset: tn.TextLen()})
		s.afterMutation(before)
		return
	}

	if !s.selectionIn() {
		s.seedIfEmpty()
		s.sel = &Selection{}
		s.sel.CollapseTo(linearCaret(s.root, s.TextLength()))
	}

	c := s.sel.Anchor
	if c.Node.kind == TextNode {
		runes := c.Node.text
		off := min(c.Offset, len(runes))
		ins := []rune(text)
		out := make([]rune, 0, len(runes)+len(ins))
		out = append(out, runes[:off]...)
		out = append(out, ins...)
		out = append(out, runes[off:]...)
		c.Node.text = out
		s.sel.CollapseTo(Caret{Node: c.Node, Offset: off + len(ins)})
	} else {
		tn := NewText(text)
		c.Node.InsertChildAt(c.Offset, tn)
		s.sel.CollapseTo(Caret{Node: tn, Offset: tn.TextLen()})
	}

	s.afterMutation(before)
}

// DeleteBackward deletes the selection, or the rune before the caret.
func (s *Surface) DeleteBackward() {
	before := s.beginMutation()

	if s.selectionIn() && !s.sel.Collapsed() {
		nodes, container, idx, err := extractRange(s.sel)
		if err != nil {
			warnf("delete: %v", err)
			return
		}
		_ = nodes
		s.sel = &Selection{}
		s.sel.CollapseTo(Caret{Node: container, Offset: idx})
		s.afterMutation(before)
		return
	}

	pos := s.CaretPosition()
	if pos <= 0 {
		return
	}

	target := linearCaret(s.root, pos)
	tn := target.Node
	if tn == nil || tn.kind != TextNode || target.Offset == 0 {
		// Caret at a node boundary: resolve to the text node ending here.
		target = linearCaret(s.root, pos-1)
		tn = target.Node
		if tn == nil || tn.kind != TextNode {
			return
		}
		target.Offset++
	}

	off := target.Offset
	tn.text = append(tn.text[:off-1], tn.text[off:]...)
	if len(tn.text) == 0 {
		parent := tn.parent
		tn.Detach()
		pruneEmptyInline(parent, s.root)
	}

	s.sel = &Selection{}
	s.sel.CollapseTo(linearCaret(s.root, pos-1))
	s.afterMutation(before)
}

// pruneEmptyInline removes now-empty inline wrappers left behind by text
// deletion, walking up until a block, the root, or a non-empty node.
func pruneEmptyInline(n, root *Node) {
	for n != nil && n != root && n.kind == ElementNode &&
		n.tag.IsInline() && len(n.children) == 0 {
		parent := n.parent
		n.Detach()
		n = parent
	}
}
