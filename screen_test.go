package swipeview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

func TestCaptureScreen(t *testing.T) {
	s := NewCaptureScreen(6, 2)
	s.PutStrStyled(1, 0, "abc", tcell.StyleDefault.Foreground(color.Red))
	s.PutStr(4, 1, "xyz")

	if got := s.Row(0); got != " abc  " {
		t.Fatalf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "    xy" {
		t.Fatalf("Row(1) = %q", got)
	}
	if s.StyleAt(1, 0).GetForeground() != color.Red {
		t.Fatal("style not recorded")
	}
	if w, h := s.Size(); w != 6 || h != 2 {
		t.Fatalf("Size() = %d, %d", w, h)
	}
}

func TestClippedScreen(t *testing.T) {
	s := NewCaptureScreen(8, 1)
	clipped := NewClippedScreen(s, 2, 0, 3, 1)

	clipped.PutStr(0, 0, "abcdefgh")
	if got := s.Row(0); got != "  cde   " {
		t.Fatalf("Row(0) = %q", got)
	}

	rest, width := clipped.Put(7, 0, "zq", tcell.StyleDefault)
	if rest != "q" || width != 1 {
		t.Fatalf("Put outside = %q, %d, want \"q\", 1", rest, width)
	}
	if got := s.Row(0); got != "  cde   " {
		t.Fatalf("Put outside drew: %q", got)
	}
}
