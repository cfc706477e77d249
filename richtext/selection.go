package richtext

import "errors"

var errRangeState = errors.New("inconsistent range state")

// Caret is a position inside the document: a node plus a rune offset. For
// text nodes the offset indexes runes; for elements it indexes children.
type Caret struct {
	Node   *Node
	Offset int
}

// Selection is the ephemeral anchor/focus pointer pair. Anchor is where the
// selection started, focus where it ends; they may be in either document
// order.
type Selection struct {
	Anchor Caret
	Focus  Caret
}

// Collapsed reports whether the selection is a single caret.
func (s *Selection) Collapsed() bool {
	return s.Anchor.Node == s.Focus.Node && s.Anchor.Offset == s.Focus.Offset
}

// CollapseTo collapses the selection to a single caret.
func (s *Selection) CollapseTo(c Caret) {
	s.Anchor = c
	s.Focus = c
}

// parentElement returns the caret's nearest element: the node itself for
// elements, otherwise the text node's parent.
func (c Caret) parentElement() *Node {
	if c.Node == nil {
		return nil
	}
	if c.Node.kind == ElementNode {
		return c.Node
	}
	return c.Node.parent
}

// path returns child indexes from the root down to the caret node, ending
// with the caret offset. Used for document-order comparison.
func (c Caret) path() []int {
	var rev []int
	for cur := c.Node; cur != nil && cur.parent != nil; cur = cur.parent {
		rev = append(rev, cur.parent.IndexOf(cur))
	}
	path := make([]int, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return append(path, c.Offset)
}

// comparePaths orders two caret paths lexicographically.
func comparePaths(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ordered returns the selection's start and end carets in document order.
func (s *Selection) ordered() (start, end Caret) {
	if comparePaths(s.Anchor.path(), s.Focus.path()) <= 0 {
		return s.Anchor, s.Focus
	}
	return s.Focus, s.Anchor
}

// containedIn reports whether both selection endpoints lie inside root.
func (s *Selection) containedIn(root *Node) bool {
	if s == nil || s.Anchor.Node == nil || s.Focus.Node == nil {
		return false
	}
	return root.Contains(s.Anchor.Node) && root.Contains(s.Focus.Node)
}

// extractRange detaches the selected content and returns it along with the
// parent and index where it was removed. Only ranges whose endpoints resolve
// to siblings under one parent are supported; anything else reports
// errRangeState and the tree is left untouched.
func extractRange(s *Selection) (nodes []*Node, parent *Node, index int, err error) {
	start, end := s.ordered()

	if start.Node == end.Node && start.Node.kind == TextNode {
		// Single text node: split off the middle run.
		n := start.Node
		parent = n.parent
		if parent == nil {
			return nil, nil, 0, errRangeState
		}
		_, mid := splitText(n, start.Offset)
		if mid == nil {
			mid = n
		}
		mid, _ = splitText(mid, end.Offset-start.Offset)
		if mid == nil {
			return nil, nil, 0, errRangeState
		}
		index = parent.IndexOf(mid)
		mid.Detach()
		return []*Node{mid}, parent, index, nil
	}

	// Sibling span: split partial text at both ends, then detach the covered
	// children.
	startEl := start.parentElement()
	endEl := end.parentElement()
	if startEl == nil || endEl == nil || startEl != endEl {
		return nil, nil, 0, errRangeState
	}
	parent = startEl

	from := start.Offset
	if start.Node.kind == TextNode {
		left, right := splitText(start.Node, start.Offset)
		first := right
		if first == nil {
			first = left
		}
		from = parent.IndexOf(first)
		if right == nil {
			from++ // selection starts after this text node
		}
	}
	to := end.Offset
	if end.Node.kind == TextNode {
		left, _ := splitText(end.Node, end.Offset)
		last := left
		if last == nil {
			to = parent.IndexOf(end.Node)
		} else {
			to = parent.IndexOf(last) + 1
		}
	}

	if from < 0 || to > len(parent.children) || from >= to {
		return nil, nil, 0, errRangeState
	}

	nodes = append(nodes, parent.children[from:to]...)
	for _, n := range nodes {
		n.parent = nil
	}
	parent.children = append(parent.children[:from], parent.children[to:]...)
	return nodes, parent, from, nil
}
