package richtext

import "testing"

func TestDeriveStateFromAncestors(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   FormattingState
	}{
		{
			"nested inline formats",
			`<p style="text-align: center"><strong><em>x</em></strong></p>`,
			FormattingState{Bold: true, Italic: true, AlignCenter: true},
		},
		{
			"underline and strike",
			"<p><u><s>x</s></u></p>",
			FormattingState{Underline: true, Strikethrough: true, AlignLeft: true},
		},
		{
			"ordered list",
			"<ol><li>x</li></ol>",
			FormattingState{OrderedList: true, AlignLeft: true},
		},
		{
			"unordered list",
			"<ul><li>x</li></ul>",
			FormattingState{UnorderedList: true, AlignLeft: true},
		},
		{
			"right alignment",
			`<p style="text-align: right">x</p>`,
			FormattingState{AlignRight: true},
		},
		{
			"plain text",
			"<p>x</p>",
			FormattingState{AlignLeft: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(Options{Value: tt.markup})
			text := firstText(s.Root())
			if text == nil {
				t.Fatal("no text node")
			}
			s.SetSelection(&Selection{
				Anchor: Caret{Node: text, Offset: 0},
				Focus:  Caret{Node: text, Offset: 0},
			})

			if got := s.State(); got != tt.want {
				t.Errorf("State() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveStateNearestAlignmentWins(t *testing.T) {
	s := NewSurface(Options{
		Value: `<blockquote style="text-align: right"><p style="text-align: center">x</p></blockquote>`,
	})
	text := firstText(s.Root())
	s.SetSelection(&Selection{
		Anchor: Caret{Node: text, Offset: 0},
		Focus:  Caret{Node: text, Offset: 0},
	})

	st := s.State()
	if !st.AlignCenter || st.AlignRight {
		t.Errorf("State() = %+v, want the nearest block's alignment", st)
	}
}

func TestDeriveStateWithoutSelection(t *testing.T) {
	s := NewSurface(Options{Value: "<p><strong>x</strong></p>"})

	st := s.State()
	if st.Bold {
		t.Error("no selection should report no inline formats")
	}
	if !st.AlignLeft {
		t.Error("AlignLeft should default to true")
	}
}
