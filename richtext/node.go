package richtext

import "sort"

// Kind distinguishes element nodes from text runs.
type Kind int

const (
	ElementNode Kind = iota
	TextNode
)

// Tag is the tagged-variant element type. Formatting checks compare Tag
// values instead of tag-name strings.
type Tag int

const (
	TagRoot Tag = iota
	TagParagraph
	TagStrong
	TagEm
	TagUnderline
	TagStrike
	TagAnchor
	TagImage
	TagBlockquote
	TagPre
	TagCode
	TagSpan
	TagHeading1
	TagHeading2
	TagHeading3
	TagOrderedList
	TagUnorderedList
	TagListItem
)

// tagNames maps Tag values to their serialized names.
var tagNames = map[Tag]string{
	TagRoot:          "div",
	TagParagraph:     "p",
	TagStrong:        "strong",
	TagEm:            "em",
	TagUnderline:     "u",
	TagStrike:        "s",
	TagAnchor:        "a",
	TagImage:         "img",
	TagBlockquote:    "blockquote",
	TagPre:           "pre",
	TagCode:          "code",
	TagSpan:          "span",
	TagHeading1:      "h1",
	TagHeading2:      "h2",
	TagHeading3:      "h3",
	TagOrderedList:   "ol",
	TagUnorderedList: "ul",
	TagListItem:      "li",
}

// String returns the serialized tag name.
func (t Tag) String() string {
	return tagNames[t]
}

// IsInline reports whether the tag is an inline formatting wrapper.
func (t Tag) IsInline() bool {
	switch t {
	case TagStrong, TagEm, TagUnderline, TagStrike, TagAnchor, TagSpan, TagCode:
		return true
	default:
		return false
	}
}

// IsBlock reports whether the tag forms a block container.
func (t Tag) IsBlock() bool {
	switch t {
	case TagParagraph, TagBlockquote, TagPre, TagHeading1, TagHeading2,
		TagHeading3, TagOrderedList, TagUnorderedList, TagListItem:
		return true
	default:
		return false
	}
}

// ZeroWidthSpace is the placeholder character inserted into empty formatting
// wrappers so subsequently typed characters inherit the formatting.
const ZeroWidthSpace = "​"

// Node is one node of the document tree. Children are owned by their parent;
// the parent pointer is a non-owning back-reference.
type Node struct {
	kind     Kind
	tag      Tag
	text     []rune // TextNode only
	attrs    map[string]string
	style    map[string]string
	parent   *Node
	children []*Node
}

// NewElement creates an element node.
func NewElement(tag Tag) *Node {
	return &Node{kind: ElementNode, tag: tag}
}

// NewText creates a text node.
func NewText(s string) *Node {
	return &Node{kind: TextNode, text: []rune(s)}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag. Text nodes report TagRoot's zero value; check
// Kind first.
func (n *Node) Tag() Tag { return n.tag }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child slice. Callers must not mutate it directly.
func (n *Node) Children() []*Node { return n.children }

// Text returns the text content of a text node.
func (n *Node) Text() string { return string(n.text) }

// TextLen returns the text length in runes.
func (n *Node) TextLen() int { return len(n.text) }

// SetText replaces the text content of a text node.
func (n *Node) SetText(s string) { n.text = []rune(s) }

// Attr returns an attribute value.
func (n *Node) Attr(key string) string { return n.attrs[key] }

// SetAttr sets an attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Style returns an inline style property.
func (n *Node) Style(prop string) string { return n.style[prop] }

// SetStyle sets an inline style property.
func (n *Node) SetStyle(prop, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[prop] = value
}

// attrKeys returns attribute names in sorted order for stable serialization.
func (n *Node) attrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// styleKeys returns style property names in sorted order.
func (n *Node) styleKeys() []string {
	keys := make([]string, 0, len(n.style))
	for k := range n.style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AppendChild adds a node at the end of the child list, detaching it from
// any previous parent.
func (n *Node) AppendChild(child *Node) {
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertChildAt inserts a node at index i, clamped to the child list bounds.
func (n *Node) InsertChildAt(i int, child *Node) {
	child.Detach()
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// IndexOf returns the index of child in n's child list, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.IndexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// Unwrap splices the node's children up into its parent at the node's
// position and removes the now-empty wrapper. No-op on the root.
func (n *Node) Unwrap() {
	p := n.parent
	if p == nil {
		return
	}
	i := p.IndexOf(n)
	if i < 0 {
		return
	}

	kids := n.children
	n.children = nil
	p.children = append(p.children[:i], p.children[i+1:]...)
	for j, k := range kids {
		k.parent = p
		p.children = append(p.children, nil)
		copy(p.children[i+j+1:], p.children[i+j:])
		p.children[i+j] = k
	}
	n.parent = nil
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Root walks parent links to the tree root.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// splitText splits a text node at a rune offset and returns the two halves,
// the second inserted directly after the first. Offsets at the bounds return
// the node itself on the non-empty side and nil on the other.
func splitText(n *Node, offset int) (left, right *Node) {
	if offset <= 0 {
		return nil, n
	}
	if offset >= len(n.text) {
		return n, nil
	}

	rest := NewText(string(n.text[offset:]))
	n.text = n.text[:offset]

	p := n.parent
	if p != nil {
		p.InsertChildAt(p.IndexOf(n)+1, rest)
	}
	return n, rest
}
