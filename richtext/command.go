package richtext

// Command names a generic text-editing command dispatched through Exec,
// mirroring a rich-text engine's built-in command set.
type Command string

const (
	CmdAlignLeft           Command = "justifyLeft"
	CmdAlignCenter         Command = "justifyCenter"
	CmdAlignRight          Command = "justifyRight"
	CmdInsertOrderedList   Command = "insertOrderedList"
	CmdInsertUnorderedList Command = "insertUnorderedList"
	CmdForeColor           Command = "foreColor"
	CmdBackColor           Command = "backColor"
	CmdFontSize            Command = "fontSize"
	CmdFormatBlock         Command = "formatBlock"
	CmdUndo                Command = "undo"
	CmdRedo                Command = "redo"
)

// Exec dispatches a named command with an optional value against the current
// selection. An empty document is seeded with a placeholder block first so
// the command has something to act on. Unknown commands warn and no-op.
func (s *Surface) Exec(cmd Command, value string) {
	switch cmd {
	case CmdUndo:
		s.Undo()
		return
	case CmdRedo:
		s.Redo()
		return
	}

	before := s.beginMutation()
	s.seedIfEmpty()

	switch cmd {
	case CmdAlignLeft:
		s.alignBlock("left")
	case CmdAlignCenter:
		s.alignBlock("center")
	case CmdAlignRight:
		s.alignBlock("right")
	case CmdInsertOrderedList:
		s.toggleList(TagOrderedList)
	case CmdInsertUnorderedList:
		s.toggleList(TagUnorderedList)
	case CmdForeColor:
		s.wrapStyledSpan("color", value)
	case CmdBackColor:
		s.wrapStyledSpan("background-color", value)
	case CmdFontSize:
		s.wrapStyledSpan("font-size", value)
	case CmdFormatBlock:
		s.formatBlock(value)
	default:
		warnf("unknown command %q", cmd)
		return
	}

	s.afterMutation(before)
}

// seedIfEmpty gives an empty document a placeholder paragraph and puts the
// caret inside it. An empty document cannot be aligned or colored.
func (s *Surface) seedIfEmpty() {
	if len(s.root.children) > 0 {
		return
	}
	para := NewElement(TagParagraph)
	text := NewText(ZeroWidthSpace)
	para.AppendChild(text)
	s.root.AppendChild(para)

	s.sel = &Selection{}
	s.sel.CollapseTo(Caret{Node: text, Offset: text.TextLen()})
}

// blockAncestor returns the nearest block container at or above the caret,
// falling back to the root's last block.
func (s *Surface) blockAncestor() *Node {
	var start *Node
	if s.selectionIn() {
		start = s.sel.Anchor.parentElement()
	} else if n := len(s.root.children); n > 0 {
		start = s.root.children[n-1]
	}
	for cur := start; cur != nil && cur != s.root; cur = cur.parent {
		if cur.kind == ElementNode && cur.tag.IsBlock() {
			return cur
		}
	}
	return nil
}

// alignBlock sets text-align on the nearest block ancestor, or on the root
// when the selection sits in bare inline content.
func (s *Surface) alignBlock(dir string) {
	block := s.blockAncestor()
	if block == nil {
		block = s.root
	}
	block.SetStyle("text-align", dir)
}

// toggleList wraps the current block in a list of the given type, or unwraps
// it when it is already inside one.
func (s *Surface) toggleList(listTag Tag) {
	block := s.blockAncestor()
	if block == nil {
		warnf("%s: no block to wrap", listTag)
		return
	}

	// Already in a matching list: unwrap the item and the list around it.
	for cur := block; cur != nil && cur != s.root; cur = cur.parent {
		if cur.tag == TagListItem && cur.parent != nil && cur.parent.tag == listTag {
			list := cur.parent
			cur.Unwrap()
			if len(list.children) == 0 {
				list.Detach()
			} else {
				list.Unwrap()
			}
			return
		}
	}

	if block.tag == TagListItem {
		// Item of the other list type: retag the list.
		if list := block.parent; list != nil &&
			(list.tag == TagOrderedList || list.tag == TagUnorderedList) {
			list.tag = listTag
			return
		}
	}

	parent := block.parent
	if parent == nil {
		return
	}
	idx := parent.IndexOf(block)
	list := NewElement(listTag)
	item := NewElement(TagListItem)
	block.Detach()
	item.AppendChild(block)
	list.AppendChild(item)
	parent.InsertChildAt(idx, list)
}

// wrapStyledSpan wraps the selection in a span carrying one style property.
// Collapsed or missing selections get a placeholder-seeded span, the same
// shape as toggle-wrap's caret branch.
func (s *Surface) wrapStyledSpan(prop, value string) {
	if value == "" {
		warnf("%s: missing value", prop)
		return
	}

	switch {
	case s.sel == nil:
		s.appendEmptyWrapper(TagSpan)
		s.styleSelectionWrapper(prop, value)
	case !s.sel.containedIn(s.root):
		warnf("%s: selection outside editable surface", prop)
	case s.sel.Collapsed():
		s.insertWrapperAtCaret(TagSpan)
		s.styleSelectionWrapper(prop, value)
	default:
		nodes, container, idx, err := extractRange(s.sel)
		if err != nil {
			warnf("%s: %v", prop, err)
			return
		}
		span := NewElement(TagSpan)
		span.SetStyle(prop, value)
		for _, n := range nodes {
			span.AppendChild(n)
		}
		container.InsertChildAt(idx, span)
		s.sel = selectContents(span)
	}
}

// styleSelectionWrapper styles the wrapper the selection was just collapsed
// into by insertWrapperAtCaret or appendEmptyWrapper.
func (s *Surface) styleSelectionWrapper(prop, value string) {
	if s.sel == nil || s.sel.Anchor.Node == nil {
		return
	}
	if wrapper := s.sel.Anchor.parentElement(); wrapper != nil && wrapper != s.root {
		wrapper.SetStyle(prop, value)
	}
}

// formatBlock converts the current block to the named block type
// ("h1".."h3", "p", "blockquote").
func (s *Surface) formatBlock(name string) {
	var tag Tag
	switch name {
	case "h1":
		tag = TagHeading1
	case "h2":
		tag = TagHeading2
	case "h3":
		tag = TagHeading3
	case "p":
		tag = TagParagraph
	case "blockquote":
		tag = TagBlockquote
	default:
		warnf("formatBlock: unsupported block %q", name)
		return
	}

	block := s.blockAncestor()
	if block == nil || block.tag == TagListItem {
		warnf("formatBlock: no convertible block")
		return
	}
	block.tag = tag
}
