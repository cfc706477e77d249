package richtext

import "testing"

func TestParseNormalizesLegacyTags(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"b to strong", "<b>x</b>", "<strong>x</strong>"},
		{"i to em", "<i>x</i>", "<em>x</em>"},
		{"strike to s", "<strike>x</strike>", "<s>x</s>"},
		{"del to s", "<del>x</del>", "<s>x</s>"},
		{"div to p", "<div>x</div>", "<p>x</p>"},
		{"unknown to span", "<article>x</article>", "<span>x</span>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SerializeHTML(ParseHTML(tt.markup))
			if got != tt.want {
				t.Errorf("round trip of %q = %q, want %q", tt.markup, got, tt.want)
			}
		})
	}
}

func TestParseSerializeStable(t *testing.T) {
	tests := []string{
		"<p>hello</p>",
		"<p><strong>a</strong><em>b</em></p>",
		`<p style="text-align: center">mid</p>`,
		`<a href="https://example.test">link</a>`,
		"<ol><li>one</li><li>two</li></ol>",
		"<pre><code>x := 1</code></pre>",
	}

	for _, markup := range tests {
		t.Run(markup, func(t *testing.T) {
			once := SerializeHTML(ParseHTML(markup))
			twice := SerializeHTML(ParseHTML(once))
			if once != twice {
				t.Errorf("serialization unstable: %q then %q", once, twice)
			}
		})
	}
}

func TestParseStyleAttribute(t *testing.T) {
	root := ParseHTML(`<p style="text-align: center; color: #112233">x</p>`)

	para := root.Children()[0]
	if got := para.Style("text-align"); got != "center" {
		t.Errorf("text-align = %q, want center", got)
	}
	if got := para.Style("color"); got != "#112233" {
		t.Errorf("color = %q, want #112233", got)
	}
}

func TestSerializeEscapes(t *testing.T) {
	root := NewElement(TagRoot)
	para := NewElement(TagParagraph)
	para.AppendChild(NewText(`a < b & "c"`))
	root.AppendChild(para)

	want := `<p>a &lt; b &amp; "c"</p>`
	if got := SerializeHTML(root); got != want {
		t.Errorf("SerializeHTML() = %q, want %q", got, want)
	}
}

func TestSerializeSortsAttributes(t *testing.T) {
	root := NewElement(TagRoot)
	a := NewElement(TagAnchor)
	a.SetAttr("target", "_blank")
	a.SetAttr("href", "https://example.test")
	a.AppendChild(NewText("x"))
	root.AppendChild(a)

	want := `<a href="https://example.test" target="_blank">x</a>`
	if got := SerializeHTML(root); got != want {
		t.Errorf("SerializeHTML() = %q, want %q", got, want)
	}
}

func TestParseEmptyMarkup(t *testing.T) {
	root := ParseHTML("")
	if len(root.Children()) != 0 {
		t.Errorf("empty markup should parse to an empty root, got %d children", len(root.Children()))
	}
}
