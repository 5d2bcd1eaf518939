package swipeview

import "github.com/gdamore/tcell/v3"

// Label is a single line of text. By default a label takes all the width its
// container offers, which makes it the natural main content of a swipe row.
type Label struct {
	*Box

	text      string
	style     tcell.Style
	alignment Alignment

	// Whether the label takes all offered width rather than its text width.
	fill bool

	selected func() Command
}

// NewLabel returns a new label showing text.
func NewLabel(text string) *Label {
	box := NewBox()
	box.SetRect(0, 0, StringWidth(text), 1)
	box.SetBorderPadding(0, 0, 1, 1)
	return &Label{
		Box:   box,
		text:  text,
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		fill:  true,
	}
}

// SetText sets the label text.
func (l *Label) SetText(text string) *Label {
	if l.text != text {
		l.text = text
		l.MarkDirty()
	}
	return l
}

// GetText returns the label text.
func (l *Label) GetText() string {
	return l.text
}

// SetTextStyle sets the style the text is printed with.
func (l *Label) SetTextStyle(style tcell.Style) *Label {
	if l.style != style {
		l.style = style
		l.MarkDirty()
	}
	return l
}

// SetAlignment sets the horizontal alignment of the text.
func (l *Label) SetAlignment(alignment Alignment) *Label {
	if l.alignment != alignment {
		l.alignment = alignment
		l.MarkDirty()
	}
	return l
}

// SetFill sets whether the label takes all offered width.
func (l *Label) SetFill(fill bool) *Label {
	l.fill = fill
	return l
}

// SetSelectedFunc sets a handler called on enter or on a click.
func (l *Label) SetSelectedFunc(handler func() Command) *Label {
	l.selected = handler
	return l
}

// Measure reports the text width plus padding, or all offered width when the
// label fills. Labels are one row high.
func (l *Label) Measure(width, height MeasureSpec) (int, int) {
	desired := StringWidth(l.text) + l.paddingLeft + l.paddingRight
	w := width.Wrap(desired)
	if l.fill && width.Mode != Unspecified {
		w = max(width.Size, 0)
	}
	return w, height.Wrap(1)
}

// Draw draws this primitive onto the screen.
func (l *Label) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	style := l.style
	if l.HasFocus() {
		style = style.Bold(true)
	}
	Print(screen, l.text, x, y+height/2, width, l.alignment, style)
}

// InputHandler selects the label on enter.
func (l *Label) InputHandler(event *tcell.EventKey) Command {
	if event.Key() != tcell.KeyEnter || l.selected == nil {
		return nil
	}
	return l.selected()
}

// MouseHandler focuses the label on a press and selects it on a click.
func (l *Label) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !l.IsClickable() || !l.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: l}
	case MouseLeftClick:
		if l.selected != nil {
			return nil, l.selected()
		}
	}
	return nil, nil
}

var _ Measurer = &Label{}
