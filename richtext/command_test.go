package richtext

import (
	"strings"
	"testing"
)

func TestExecAlign(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"left", CmdAlignLeft, "left"},
		{"center", CmdAlignCenter, "center"},
		{"right", CmdAlignRight, "right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(Options{Value: "<p>hello</p>"})
			selectSpan(s, 1, 1)

			s.Exec(tt.cmd, "")

			want := `text-align: ` + tt.want
			if got := s.HTML(); !strings.Contains(got, want) {
				t.Errorf("HTML() = %q, want it to contain %q", got, want)
			}
		})
	}
}

func TestExecSeedsEmptyDocument(t *testing.T) {
	s := NewSurface(Options{})

	s.Exec(CmdAlignCenter, "")

	if got := s.HTML(); !strings.Contains(got, "<p") {
		t.Errorf("empty document should be seeded with a paragraph, got %q", got)
	}
	if !s.State().AlignCenter {
		t.Error("AlignCenter should be active")
	}
}

func TestExecListWrapAndUnwrap(t *testing.T) {
	s := NewSurface(Options{Value: "<p>item</p>"})
	selectSpan(s, 1, 1)

	s.Exec(CmdInsertOrderedList, "")
	if got := s.HTML(); got != "<ol><li><p>item</p></li></ol>" {
		t.Fatalf("after wrap HTML() = %q", got)
	}

	selectSpan(s, 1, 1)
	s.Exec(CmdInsertOrderedList, "")
	if got := s.HTML(); got != "<p>item</p>" {
		t.Errorf("after unwrap HTML() = %q", got)
	}
}

func TestExecListRetagsOtherListType(t *testing.T) {
	s := NewSurface(Options{Value: "<ol><li>item</li></ol>"})
	selectSpan(s, 1, 1)

	s.Exec(CmdInsertUnorderedList, "")

	if got := s.HTML(); got != "<ul><li>item</li></ul>" {
		t.Errorf("HTML() = %q", got)
	}
}

func TestExecForeColorWrapsSelection(t *testing.T) {
	s := NewSurface(Options{Value: "<p>red text</p>"})
	selectSpan(s, 0, 3)

	s.Exec(CmdForeColor, "#ff0000")

	want := `<p><span style="color: #ff0000">red</span> text</p>`
	if got := s.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestExecFontSizeAtCollapsedCaretSeedsSpan(t *testing.T) {
	s := NewSurface(Options{Value: "<p>hello</p>"})
	selectSpan(s, 5, 5)

	s.Exec(CmdFontSize, "1.25rem")

	if got := s.HTML(); !strings.Contains(got, `font-size: 1.25rem`) {
		t.Errorf("HTML() = %q, want a styled span", got)
	}
}

func TestExecFormatBlock(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"heading1", "h1", "<h1>hello</h1>"},
		{"heading3", "h3", "<h3>hello</h3>"},
		{"blockquote", "blockquote", "<blockquote>hello</blockquote>"},
		{"paragraph stays", "p", "<p>hello</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(Options{Value: "<p>hello</p>"})
			selectSpan(s, 1, 1)

			s.Exec(CmdFormatBlock, tt.value)

			if got := s.HTML(); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecUnknownCommandIsNoop(t *testing.T) {
	quietWarnings(t)
	s := NewSurface(Options{Value: "<p>hello</p>"})
	before := s.HTML()

	s.Exec(Command("fontName"), "monospace")

	if got := s.HTML(); got != before {
		t.Errorf("document changed: %q", got)
	}
	if s.CanUndo() {
		t.Error("unknown command should not record history")
	}
}

func TestExecUndoRedoDispatch(t *testing.T) {
	s := NewSurface(Options{})
	s.InsertText("hi")

	s.Exec(CmdUndo, "")
	if got := s.PlainText(); got != "" {
		t.Fatalf("after undo PlainText() = %q", got)
	}

	s.Exec(CmdRedo, "")
	if got := s.PlainText(); got != "hi" {
		t.Errorf("after redo PlainText() = %q", got)
	}
}
