package swipeview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		x             int
		maxWidth      int
		alignment     Alignment
		want          string
		wantPrinted   int
		wantTruncated bool
	}{
		{"left", "abc", 0, 8, AlignmentLeft, "abc     ", 3, false},
		{"right", "abc", 0, 8, AlignmentRight, "     abc", 3, false},
		{"center", "abc", 0, 8, AlignmentCenter, "   abc  ", 3, false},
		{"left truncated", "abcdefghij", 0, 8, AlignmentLeft, "abcdefgh", 8, true},
		{"right truncated", "abcdefghij", 0, 8, AlignmentRight, "cdefghij", 8, true},
		{"off screen left", "abcdef", -2, 8, AlignmentLeft, "cdef    ", 6, false},
		{"wide grapheme cut", "日本", 0, 3, AlignmentLeft, "日      ", 2, true},
		{"no room", "abc", 0, 0, AlignmentLeft, "        ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := NewCaptureScreen(8, 1)
			printed, truncated := Print(screen, tt.text, tt.x, 0, tt.maxWidth, tt.alignment, tcell.StyleDefault)
			if got := screen.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
			if printed != tt.wantPrinted || truncated != tt.wantTruncated {
				t.Errorf("Print = %d, %v, want %d, %v", printed, truncated, tt.wantPrinted, tt.wantTruncated)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := map[string]int{
		"":    0,
		"abc": 3,
		"日本":  4,
		"é":  1,
	}
	for text, want := range tests {
		if got := StringWidth(text); got != want {
			t.Errorf("StringWidth(%q) = %d, want %d", text, got, want)
		}
	}
}
