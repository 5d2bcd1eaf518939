package swipeview

import (
	"github.com/gdamore/tcell/v3"
)

// Button is a labeled box that triggers an action when selected. Inside a
// swipe menu buttons make up the revealed actions.
type Button struct {
	*Box

	// If set to true, the button cannot be activated.
	disabled bool

	// Set while the left mouse button is held down on the button.
	pressed bool

	// The text to be displayed inside the button.
	text string

	// Horizontal space added on both sides of the label when measured.
	padding int

	style          tcell.Style
	activatedStyle tcell.Style
	disabledStyle  tcell.Style

	// An optional function which is called when the button was selected.
	selected func() Command
}

// NewButton returns a new button showing label.
func NewButton(label string) *Button {
	box := NewBox()
	box.SetRect(0, 0, StringWidth(label)+4, 1)
	return &Button{
		Box:            box,
		text:           label,
		padding:        2,
		style:          tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		activatedStyle: tcell.StyleDefault.Background(Styles.PrimaryTextColor).Foreground(Styles.InverseTextColor),
		disabledStyle:  tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.ContrastSecondaryTextColor),
	}
}

// SetLabel sets the button text.
func (b *Button) SetLabel(label string) *Button {
	if b.text != label {
		b.text = label
		b.MarkDirty()
	}
	return b
}

// GetLabel returns the button text.
func (b *Button) GetLabel() string {
	return b.text
}

// SetPadding sets the number of blank cells on each side of the label.
func (b *Button) SetPadding(padding int) *Button {
	padding = max(padding, 0)
	if b.padding != padding {
		b.padding = padding
		b.MarkDirty()
	}
	return b
}

// SetStyle sets the style of the button used when it is not focused.
func (b *Button) SetStyle(style tcell.Style) *Button {
	if b.style != style {
		b.style = style
		b.MarkDirty()
	}
	return b
}

// SetActivatedStyle sets the style of the button used when it is focused or
// pressed.
func (b *Button) SetActivatedStyle(style tcell.Style) *Button {
	if b.activatedStyle != style {
		b.activatedStyle = style
		b.MarkDirty()
	}
	return b
}

// SetDisabled sets whether or not the button is disabled. Disabled buttons
// cannot be activated.
func (b *Button) SetDisabled(disabled bool) *Button {
	if b.disabled != disabled {
		b.disabled = disabled
		b.pressed = false
		b.MarkDirty()
	}
	return b
}

// GetDisabled returns whether or not the button is disabled.
func (b *Button) GetDisabled() bool {
	return b.disabled
}

// IsPressed returns whether a mouse press on the button is in progress.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// SetSelectedFunc sets a handler which is called when the button was
// selected. The returned command is executed by the application.
func (b *Button) SetSelectedFunc(handler func() Command) *Button {
	b.selected = handler
	return b
}

// Measure reports the label width plus padding, one row high. The button
// never grows past its content.
func (b *Button) Measure(width, height MeasureSpec) (int, int) {
	return width.Wrap(StringWidth(b.text) + 2*b.padding), height.Wrap(1)
}

// Draw draws this primitive onto the screen.
func (b *Button) Draw(screen tcell.Screen) {
	style := b.style
	switch {
	case b.disabled:
		style = b.disabledStyle
	case b.HasFocus() || b.pressed:
		style = b.activatedStyle
	}
	b.SetBackgroundColor(style.GetBackground())
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width > 0 && height > 0 {
		y = y + height/2
		Print(screen, b.text, x, y, width, AlignmentCenter, style)
	}
}

// InputHandler selects the button on enter.
func (b *Button) InputHandler(event *tcell.EventKey) Command {
	if b.disabled || event.Key() != tcell.KeyEnter {
		return nil
	}
	return b.activate()
}

// MouseHandler presses the button on a left press and selects it on the
// click that follows.
func (b *Button) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if b.disabled || !b.IsClickable() {
		return nil, nil
	}

	inRect := b.InRect(event.Position())
	switch action {
	case MouseLeftDown:
		if !inRect {
			return nil, nil
		}
		b.pressed = true
		b.MarkDirty()
		return nil, SetFocusCommand{Target: b}
	case MouseLeftUp:
		if b.pressed {
			b.pressed = false
			b.MarkDirty()
			return nil, RedrawCommand{}
		}
	case MouseLeftClick:
		if inRect {
			return nil, b.activate()
		}
	}
	return nil, nil
}

// CancelMouse drops the pressed state without selecting the button.
func (b *Button) CancelMouse() {
	if b.pressed {
		b.pressed = false
		b.MarkDirty()
	}
}

func (b *Button) activate() Command {
	cmd := Command(RedrawCommand{})
	if b.selected != nil {
		cmd = AppendCommand(cmd, b.selected())
	}
	return cmd
}

var (
	_ Measurer      = &Button{}
	_ MouseCanceler = &Button{}
	_ Clickable     = &Button{}
)
