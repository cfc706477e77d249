package richtext

// InsertLink inserts an anchor around the selected content, or appends one
// holding text at the document end when the caret is collapsed or there is
// no selection. The URL passes through the configured transform first.
func (s *Surface) InsertLink(url, text string) {
	if s.transformLink != nil {
		url = s.transformLink(url)
	}

	anchor := NewElement(TagAnchor)
	anchor.SetAttr("href", url)
	anchor.SetAttr("target", "_blank")
	anchor.SetAttr("rel", "noopener noreferrer")
	anchor.SetStyle("color", "#3b82f6")
	anchor.SetStyle("text-decoration", "underline")

	before := s.beginMutation()

	if s.selectionIn() && !s.sel.Collapsed() {
		nodes, container, idx, err := extractRange(s.sel)
		if err != nil {
			warnf("insert link: %v", err)
			s.appendLinkFallback(anchor, text, url)
			s.afterMutation(before)
			return
		}
		for _, n := range nodes {
			anchor.AppendChild(n)
		}
		container.InsertChildAt(idx, anchor)
		s.sel = selectContents(anchor)
	} else {
		s.appendLinkFallback(anchor, text, url)
	}

	s.afterMutation(before)
}

func (s *Surface) appendLinkFallback(anchor *Node, text, url string) {
	if text == "" {
		text = url
	}
	anchor.AppendChild(NewText(text))
	s.root.AppendChild(anchor)
	s.sel = nil
}

// InsertImage inserts an image element, replacing a non-collapsed selection
// or appending at the document end. The URL passes through the configured
// transform first.
func (s *Surface) InsertImage(src, alt string) {
	if s.transformImage != nil {
		src = s.transformImage(src)
	}

	img := NewElement(TagImage)
	img.SetAttr("src", src)
	if alt != "" {
		img.SetAttr("alt", alt)
	}
	img.SetStyle("max-width", "100%")
	img.SetStyle("height", "auto")

	before := s.beginMutation()
	s.insertStructured(img)
	s.afterMutation(before)
}

// InsertBlockquote inserts a styled quotation block containing text.
func (s *Surface) InsertBlockquote(text string) {
	quote := NewElement(TagBlockquote)
	quote.SetStyle("border-left", "4px solid #d1d5db")
	quote.SetStyle("padding-left", "1rem")
	quote.SetStyle("margin", "0.5rem 0")
	quote.AppendChild(NewText(text))

	before := s.beginMutation()
	s.insertStructured(quote)
	s.afterMutation(before)
}

// InsertCodeBlock inserts a pre>code pair containing text verbatim.
func (s *Surface) InsertCodeBlock(text string) {
	pre := NewElement(TagPre)
	pre.SetStyle("background-color", "#f3f4f6")
	pre.SetStyle("padding", "0.75rem")
	pre.SetStyle("border-radius", "0.375rem")
	code := NewElement(TagCode)
	code.AppendChild(NewText(text))
	pre.AppendChild(code)

	before := s.beginMutation()
	s.insertStructured(pre)
	s.afterMutation(before)
}

// insertStructured places a built subtree at the selection: replacing a
// non-collapsed selection's contents, otherwise appending at the end.
func (s *Surface) insertStructured(n *Node) {
	if s.selectionIn() && !s.sel.Collapsed() {
		nodes, container, idx, err := extractRange(s.sel)
		if err != nil {
			warnf("insert %s: %v", n.tag, err)
			s.root.AppendChild(n)
			s.sel = nil
			return
		}
		_ = nodes // replaced content is discarded
		container.InsertChildAt(idx, n)
		s.sel = nil
		return
	}
	s.root.AppendChild(n)
	s.sel = nil
}
