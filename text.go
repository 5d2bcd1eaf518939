package swipeview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// grapheme is one user-perceived character and the cells it occupies.
type grapheme struct {
	text  string
	width int
}

func graphemes(text string) []grapheme {
	var out []grapheme
	state := -1
	for len(text) > 0 {
		var cluster string
		var boundaries int
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		out = append(out, grapheme{text: cluster, width: boundaries >> uniseg.ShiftWidth})
	}
	return out
}

// StringWidth returns the number of cells needed to print text on screen.
func StringWidth(text string) int {
	width := 0
	for _, g := range graphemes(text) {
		width += g.width
	}
	return width
}

// Print draws text on row y inside the cells [x, x+maxWidth). The background
// of style is replaced by whatever background is already on screen. It
// returns the number of cells drawn and whether part of text was cut off.
//
// Cells left of the screen are skipped one by one, so a primitive scrolled
// partly off screen still shows its visible tail.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (printed int, truncated bool) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, text != ""
	}

	right := min(x+maxWidth, screenWidth)
	clusters := graphemes(text)
	total := 0
	for _, g := range clusters {
		total += g.width
	}

	// Drop what the alignment pushes out of the box on the left.
	switch alignment {
	case AlignmentRight:
		for total > maxWidth && len(clusters) > 0 {
			total -= clusters[0].width
			clusters = clusters[1:]
			truncated = true
		}
		x += maxWidth - total
	case AlignmentCenter:
		for cut := (total - maxWidth) / 2; cut > 0 && len(clusters) > 0; {
			cut -= clusters[0].width
			total -= clusters[0].width
			clusters = clusters[1:]
			truncated = true
		}
		if total < maxWidth {
			x += maxWidth/2 - total/2
		}
	}

	for _, g := range clusters {
		if x+g.width > right {
			return printed, true
		}
		if g.width > 0 && x >= 0 {
			_, existing, _ := screen.Get(x, y)
			cell := style.Background(existing.GetBackground())
			// Fill the trailing cells of wide graphemes first.
			for offset := g.width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", cell)
			}
			screen.Put(x, y, g.text, cell)
		}
		x += g.width
		printed += g.width
	}
	return printed, truncated
}
