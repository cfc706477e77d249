package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tagsByAtom maps parsed element names onto the tagged-variant node type.
// Legacy synonyms (b, i, strike, del) normalize to the semantic tags.
var tagsByAtom = map[atom.Atom]Tag{
	atom.P:          TagParagraph,
	atom.Div:        TagParagraph,
	atom.Strong:     TagStrong,
	atom.B:          TagStrong,
	atom.Em:         TagEm,
	atom.I:          TagEm,
	atom.U:          TagUnderline,
	atom.S:          TagStrike,
	atom.Strike:     TagStrike,
	atom.Del:        TagStrike,
	atom.A:          TagAnchor,
	atom.Img:        TagImage,
	atom.Blockquote: TagBlockquote,
	atom.Pre:        TagPre,
	atom.Code:       TagCode,
	atom.Span:       TagSpan,
	atom.H1:         TagHeading1,
	atom.H2:         TagHeading2,
	atom.H3:         TagHeading3,
	atom.Ol:         TagOrderedList,
	atom.Ul:         TagUnorderedList,
	atom.Li:         TagListItem,
}

// ParseHTML parses a markup string into a document tree rooted at a new
// root node. Unknown elements become spans; markup that fails to parse
// yields a root holding the input as plain text, so a surface always comes
// up in a usable state.
func ParseHTML(markup string) *Node {
	root := NewElement(TagRoot)

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		if markup != "" {
			root.AppendChild(NewText(markup))
		}
		return root
	}

	body := findBody(doc)
	if body == nil {
		return root
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if n := convertNode(c); n != nil {
			root.AppendChild(n)
		}
	}
	return root
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func convertNode(src *html.Node) *Node {
	switch src.Type {
	case html.TextNode:
		if src.Data == "" {
			return nil
		}
		return NewText(src.Data)
	case html.ElementNode:
		tag, ok := tagsByAtom[src.DataAtom]
		if !ok {
			tag = TagSpan
		}
		n := NewElement(tag)
		for _, attr := range src.Attr {
			if attr.Key == "style" {
				applyStyleAttr(n, attr.Val)
				continue
			}
			n.SetAttr(attr.Key, attr.Val)
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := convertNode(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	default:
		return nil
	}
}

// applyStyleAttr splits a "prop: value; prop: value" style attribute into
// the node's style map.
func applyStyleAttr(n *Node, style string) {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop != "" && value != "" {
			n.SetStyle(prop, value)
		}
	}
}
