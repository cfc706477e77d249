package richtext

import "testing"

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", LeftToRight},
		{"latin", "hello world", LeftToRight},
		{"digits and punctuation", "12:30 ok!", LeftToRight},
		{"arabic", "مرحبا بالعالم", RightToLeft},
		{"arabic supplement", "ݐ", RightToLeft},
		{"mixed", "note: مرحبا", RightToLeft},
		{"hebrew is not matched", "שלום", LeftToRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSurfaceDirectionTracksContent(t *testing.T) {
	s := NewSurface(Options{})
	if got := s.Direction(); got != LeftToRight {
		t.Fatalf("Direction() = %v, want LeftToRight", got)
	}

	s.InsertText("مرحبا")
	if got := s.Direction(); got != RightToLeft {
		t.Errorf("Direction() = %v, want RightToLeft after Arabic input", got)
	}

	s.SelectAll()
	s.InsertText("hello")
	if got := s.Direction(); got != LeftToRight {
		t.Errorf("Direction() = %v, want LeftToRight after replacement", got)
	}
}
