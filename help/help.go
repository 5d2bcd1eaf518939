// Package help draws a one line hint bar for a set of key bindings.
package help

import (
	"strings"

	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/keybind"
	"github.com/gdamore/tcell/v3"
)

// KeyMap is implemented by anything that can list its bindings.
type KeyMap interface {
	ShortHelp() []keybind.Keybind
}

type Bar struct {
	*swipeview.Box

	styles    Styles
	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Bar {
	return &Bar{
		Box:       swipeview.NewBox(),
		styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMap sets the bindings shown by the bar.
func (b *Bar) SetKeyMap(keyMap KeyMap) *Bar {
	b.keyMap = keyMap
	b.MarkDirty()
	return b
}

// SetSeparator sets the text between two bindings.
func (b *Bar) SetSeparator(separator string) *Bar {
	b.separator = separator
	b.MarkDirty()
	return b
}

// SetStyles sets the styles of the bar.
func (b *Bar) SetStyles(styles Styles) *Bar {
	b.styles = styles
	b.MarkDirty()
	return b
}

// Measure reports the width of all bindings on one row.
func (b *Bar) Measure(width, height swipeview.MeasureSpec) (int, int) {
	return width.Resolve(segmentsWidth(b.segments(0))), height.Wrap(1)
}

// Text returns the bar content for the given width as plain text.
func (b *Bar) Text(maxWidth int) string {
	var sb strings.Builder
	for _, s := range b.segments(maxWidth) {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// Draw draws this primitive onto the screen.
func (b *Bar) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)

	x, y, w, h := b.GetInnerRect()
	if w <= 0 || h <= 0 {
		return
	}
	for _, s := range b.segments(w) {
		if w <= 0 {
			return
		}
		printed, _ := swipeview.Print(screen, s.text, x, y, w, swipeview.AlignmentLeft, s.style)
		x += printed
		w -= printed
	}
}

type segment struct {
	text  string
	style tcell.Style
}

// segments lays the bindings out left to right. Bindings that do not fit
// into maxWidth are replaced by an ellipsis; maxWidth 0 means no limit.
func (b *Bar) segments(maxWidth int) []segment {
	if b.keyMap == nil {
		return nil
	}

	var out []segment
	for _, kb := range b.keyMap.ShortHelp() {
		item := b.item(kb)
		if len(item) == 0 {
			continue
		}

		candidate := append([]segment(nil), out...)
		if len(out) > 0 {
			candidate = append(candidate, segment{text: b.separator, style: b.styles.SeparatorStyle})
		}
		candidate = append(candidate, item...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, b.tail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (b *Bar) item(kb keybind.Keybind) []segment {
	if !kb.Enabled() {
		return nil
	}
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: b.styles.DescStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: b.styles.KeyStyle}}
	}
	return []segment{
		{text: help.Key, style: b.styles.KeyStyle},
		{text: " " + help.Desc, style: b.styles.DescStyle},
	}
}

// tail is the ellipsis appended to a truncated bar, if it fits.
func (b *Bar) tail(current []segment, maxWidth int) []segment {
	if b.ellipsis == "" {
		return nil
	}
	tail := []segment{{text: " " + b.ellipsis, style: b.styles.EllipsisStyle}}
	if segmentsWidth(current)+segmentsWidth(tail) > maxWidth {
		return nil
	}
	return tail
}

func segmentsWidth(segments []segment) int {
	w := 0
	for _, s := range segments {
		w += swipeview.StringWidth(s.text)
	}
	return w
}
