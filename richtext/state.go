package richtext

// FormattingState is a snapshot of which formats are active at the current
// selection anchor. Recomputed on every selection change and after every
// mutation; never persisted.
type FormattingState struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	AlignLeft     bool
	AlignCenter   bool
	AlignRight    bool
	OrderedList   bool
	UnorderedList bool
}

// deriveState walks ancestor elements from the selection anchor up to the
// editable root, collecting active formats from the tagged node variants.
func deriveState(root *Node, sel *Selection) FormattingState {
	var st FormattingState
	if sel == nil || sel.Anchor.Node == nil || !root.Contains(sel.Anchor.Node) {
		st.AlignLeft = true
		return st
	}

	align := ""
	for cur := sel.Anchor.parentElement(); cur != nil; cur = cur.parent {
		switch cur.tag {
		case TagStrong:
			st.Bold = true
		case TagEm:
			st.Italic = true
		case TagUnderline:
			st.Underline = true
		case TagStrike:
			st.Strikethrough = true
		case TagOrderedList:
			st.OrderedList = true
		case TagUnorderedList:
			st.UnorderedList = true
		}
		if align == "" {
			align = cur.Style("text-align")
		}
		if cur == root {
			break
		}
	}

	switch align {
	case "center":
		st.AlignCenter = true
	case "right":
		st.AlignRight = true
	default:
		st.AlignLeft = true
	}
	return st
}
