package richtext

import "strings"

// SerializeHTML renders the document fragment below root as an HTML string.
// The root element itself is not emitted. Attribute and style order is
// deterministic (sorted), so serialized forms compare stably.
func SerializeHTML(root *Node) string {
	var sb strings.Builder
	for _, child := range root.children {
		writeNode(&sb, child)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n.kind == TextNode {
		sb.WriteString(escapeText(string(n.text)))
		return
	}

	name := n.tag.String()
	sb.WriteByte('<')
	sb.WriteString(name)

	for _, key := range n.attrKeys() {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(n.attrs[key]))
		sb.WriteByte('"')
	}
	if len(n.style) > 0 {
		sb.WriteString(` style="`)
		for i, key := range n.styleKeys() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(key)
			sb.WriteString(": ")
			sb.WriteString(escapeAttr(n.style[key]))
		}
		sb.WriteByte('"')
	}

	if n.tag == TagImage {
		// Void element
		sb.WriteString(">")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.children {
		writeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = escapeText(s)
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// PlainText returns the concatenated text content below root, with the
// zero-width placeholder characters stripped.
func PlainText(root *Node) string {
	var sb strings.Builder
	collectText(&sb, root)
	return strings.ReplaceAll(sb.String(), ZeroWidthSpace, "")
}

func collectText(sb *strings.Builder, n *Node) {
	if n.kind == TextNode {
		sb.WriteString(string(n.text))
		return
	}
	for _, child := range n.children {
		collectText(sb, child)
	}
}
