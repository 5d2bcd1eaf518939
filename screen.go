package swipeview

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// ClippedScreen forwards drawing to a screen but drops every cell outside a
// rectangle. Containers that scroll their children draw them through it.
type ClippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

// NewClippedScreen returns a screen limited to the given rectangle.
func NewClippedScreen(screen tcell.Screen, x, y, width, height int) *ClippedScreen {
	return &ClippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  max(width, 0),
		height: max(height, 0),
	}
}

func (s *ClippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *ClippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *ClippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		// Still report the cluster as consumed so callers walking a string
		// keep their column arithmetic intact.
		cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
		if cluster == "" {
			return "", 0
		}
		return rest, max(width, 1)
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *ClippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *ClippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *ClippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}

type capturedCell struct {
	text  string
	style tcell.Style
	cont  bool
}

// CaptureScreen is an off-screen frame of a fixed size. It implements the
// drawing half of tcell.Screen, which is all primitives use in Draw, and is
// used to render snapshots and in tests. Calls outside the drawing half are
// forwarded to the embedded screen, which may be nil.
type CaptureScreen struct {
	tcell.Screen

	width, height int
	cells         []capturedCell
	defaultStyle  tcell.Style
	cursorX       int
	cursorY       int
}

// NewCaptureScreen returns an empty frame of the given size.
func NewCaptureScreen(width, height int) *CaptureScreen {
	width, height = max(width, 0), max(height, 0)
	s := &CaptureScreen{
		width:   width,
		height:  height,
		cells:   make([]capturedCell, width*height),
		cursorX: -1,
		cursorY: -1,
	}
	s.Clear()
	return s
}

func (s *CaptureScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *CaptureScreen) Clear() {
	for i := range s.cells {
		s.cells[i] = capturedCell{text: " ", style: s.defaultStyle}
	}
}

func (s *CaptureScreen) Fill(r rune, style tcell.Style) {
	for i := range s.cells {
		s.cells[i] = capturedCell{text: string(r), style: style}
	}
}

func (s *CaptureScreen) SetStyle(style tcell.Style) {
	s.defaultStyle = style
}

func (s *CaptureScreen) Show() {}

func (s *CaptureScreen) ShowCursor(x int, y int) {
	s.cursorX, s.cursorY = x, y
}

func (s *CaptureScreen) HideCursor() {
	s.cursorX, s.cursorY = -1, -1
}

func (s *CaptureScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	text := string(primary)
	if len(combining) > 0 {
		text += string(combining)
	}
	s.Put(x, y, text, style)
}

func (s *CaptureScreen) Get(x, y int) (str string, style tcell.Style, width int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return "", tcell.StyleDefault, 1
	}
	c := s.cells[y*s.width+x]
	return c.text, c.style, max(uniseg.StringWidth(c.text), 1)
}

func (s *CaptureScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}

	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		r, size := utf8.DecodeRuneInString(str)
		if size == 0 {
			return "", 0
		}
		cluster, remain, width = string(r), str[size:], 1
	}
	if width <= 0 {
		return remain, 0
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return remain, width
	}

	// Match terminal clipping behavior for wide graphemes at the right edge.
	if width > 1 && x == s.width-1 {
		cluster, width = " ", 1
	}

	s.cells[y*s.width+x] = capturedCell{text: cluster, style: style}
	for i := 1; i < width; i++ {
		s.cells[y*s.width+x+i] = capturedCell{style: style, cont: true}
	}
	return remain, width
}

func (s *CaptureScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, s.defaultStyle)
}

func (s *CaptureScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < s.width {
		remain, width := s.Put(x, y, str, style)
		if width <= 0 || remain == str {
			return
		}
		x += width
		str = remain
	}
}

// Row returns the text of row y, one string per cell, with continuation
// cells of wide graphemes left out.
func (s *CaptureScreen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		c := s.cells[y*s.width+x]
		if !c.cont {
			b.WriteString(c.text)
		}
	}
	return b.String()
}

// StyleAt returns the style of the cell at x, y.
func (s *CaptureScreen) StyleAt(x, y int) tcell.Style {
	_, style, _ := s.Get(x, y)
	return style
}
