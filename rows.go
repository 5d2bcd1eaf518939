package swipeview

import (
	"github.com/ayn2op/swipeview/keybind"
	"github.com/gdamore/tcell/v3"
)

// RowsKeyMap holds the keys Rows reacts to itself. Every other key goes to
// the focused row.
type RowsKeyMap struct {
	Up   keybind.Keybind
	Down keybind.Keybind
}

// DefaultRowsKeyMap returns the arrow and vi keys.
func DefaultRowsKeyMap() RowsKeyMap {
	return RowsKeyMap{
		Up:   keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "previous row")),
		Down: keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "next row")),
	}
}

// Rows stacks primitives vertically, top to bottom, each across the full
// inner width. Every row is measured with an exact width and an unspecified
// height, so rows decide their own height. Rows scrolls vertically with the
// mouse wheel and follows the current row when it is changed by key.
type Rows struct {
	*Box

	items []Primitive

	// Blank lines between two rows.
	gap int

	// Index of the focused row, -1 if none.
	current int

	// Number of lines scrolled off the top.
	offset int

	// Scroll the current row into view on the next draw.
	wantsCurrent bool

	keys RowsKeyMap

	// Filled during Draw, used to map mouse positions to rows.
	lastDraw []rowsDrawnItem

	// Called when the focused row changes.
	changed func(index int)

	setFocus func(p Primitive)
}

type rowsDrawnItem struct {
	index  int
	top    int
	height int
}

// NewRows returns an empty Rows container.
func NewRows() *Rows {
	return &Rows{
		Box:     NewBox(),
		current: -1,
		keys:    DefaultRowsKeyMap(),
	}
}

// AddItem appends a row.
func (r *Rows) AddItem(item Primitive) *Rows {
	if item == nil {
		return r
	}
	r.items = append(r.items, item)
	BindDirtyParent(item, r.Box)
	if r.current < 0 {
		r.current = 0
	}
	r.MarkDirty()
	return r
}

// RemoveItem removes the given row, if present.
func (r *Rows) RemoveItem(item Primitive) *Rows {
	for index, existing := range r.items {
		if existing != item {
			continue
		}
		hadFocus := item.HasFocus()
		UnbindDirtyParent(item, r.Box)
		r.items = append(r.items[:index], r.items[index+1:]...)
		switch {
		case len(r.items) == 0:
			r.current = -1
		case r.current >= len(r.items):
			r.current = len(r.items) - 1
		}
		if hadFocus && r.current >= 0 && r.setFocus != nil {
			r.setFocus(r.items[r.current])
		}
		r.MarkDirty()
		break
	}
	return r
}

// GetItemCount returns the number of rows.
func (r *Rows) GetItemCount() int {
	return len(r.items)
}

// GetItem returns the row at index, or nil.
func (r *Rows) GetItem(index int) Primitive {
	if index < 0 || index >= len(r.items) {
		return nil
	}
	return r.items[index]
}

// SetGap sets the number of blank lines between rows.
func (r *Rows) SetGap(gap int) *Rows {
	r.gap = max(gap, 0)
	r.MarkDirty()
	return r
}

// SetKeyMap replaces the navigation keys.
func (r *Rows) SetKeyMap(keys RowsKeyMap) *Rows {
	r.keys = keys
	return r
}

// SetChangedFunc sets a handler called with the index of the newly focused row.
func (r *Rows) SetChangedFunc(handler func(index int)) *Rows {
	r.changed = handler
	return r
}

// GetCurrentItem returns the index of the focused row, -1 if there is none.
func (r *Rows) GetCurrentItem() int {
	return r.current
}

// SetCurrentItem focuses the row at index.
func (r *Rows) SetCurrentItem(index int) Command {
	if index < 0 || index >= len(r.items) {
		return nil
	}
	if r.current != index {
		r.current = index
		if r.changed != nil {
			r.changed(index)
		}
	}
	r.wantsCurrent = true
	r.MarkDirty()
	return SetFocusCommand{Target: r.items[index]}
}

func (r *Rows) rowHeight(item Primitive, width int) int {
	_, height := MeasurePrimitive(item, ExactSpec(width), UnspecifiedSpec())
	return max(height, 1)
}

// layout computes the top line of every row in content space together with
// the total content height.
func (r *Rows) layout(width int) ([]rowsDrawnItem, int) {
	rows := make([]rowsDrawnItem, 0, len(r.items))
	top := 0
	for index, item := range r.items {
		if index > 0 {
			top += r.gap
		}
		height := r.rowHeight(item, width)
		rows = append(rows, rowsDrawnItem{index: index, top: top, height: height})
		top += height
	}
	return rows, top
}

// ensureVisible adjusts the offset so the focused row is fully visible.
func (r *Rows) ensureVisible(rows []rowsDrawnItem, height int) {
	if r.current < 0 || r.current >= len(rows) {
		return
	}
	row := rows[r.current]
	if row.top < r.offset {
		r.offset = row.top
	}
	if bottom := row.top + row.height; bottom > r.offset+height {
		r.offset = bottom - height
	}
}

// Draw draws this primitive onto the screen.
func (r *Rows) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)

	x, y, width, height := r.GetInnerRect()
	r.lastDraw = r.lastDraw[:0]
	if width <= 0 || height <= 0 {
		return
	}

	rows, total := r.layout(width)
	r.offset = min(r.offset, max(total-height, 0))
	r.offset = max(r.offset, 0)
	if r.wantsCurrent {
		r.ensureVisible(rows, height)
		r.wantsCurrent = false
	}

	clipped := NewClippedScreen(screen, x, y, width, height)
	for _, row := range rows {
		top := row.top - r.offset
		if top+row.height <= 0 || top >= height {
			continue
		}
		item := r.items[row.index]
		item.SetRect(x, y+top, width, row.height)
		item.Draw(clipped)
		r.lastDraw = append(r.lastDraw, rowsDrawnItem{index: row.index, top: y + top, height: row.height})
	}
}

func (r *Rows) indexAt(screenY int) int {
	for _, row := range r.lastDraw {
		if screenY >= row.top && screenY < row.top+row.height {
			return row.index
		}
	}
	return -1
}

// HasFocus returns whether the container or one of its rows has focus.
func (r *Rows) HasFocus() bool {
	for _, item := range r.items {
		if item.HasFocus() {
			return true
		}
	}
	return r.Box.HasFocus()
}

// Focus delegates focus to the current row.
func (r *Rows) Focus(delegate func(p Primitive)) {
	r.setFocus = delegate
	if r.current >= 0 && r.current < len(r.items) && delegate != nil {
		delegate(r.items[r.current])
		return
	}
	r.Box.Focus(delegate)
}

// InputHandler moves between rows and forwards other keys to the focused row.
func (r *Rows) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, r.keys.Up):
		return AppendCommand(r.SetCurrentItem(r.current-1), RedrawCommand{})
	case keybind.Matches(event, r.keys.Down):
		return AppendCommand(r.SetCurrentItem(r.current+1), RedrawCommand{})
	}
	for _, item := range r.items {
		if item.HasFocus() {
			return item.InputHandler(event)
		}
	}
	return nil
}

// PasteHandler forwards pasted text to the focused row.
func (r *Rows) PasteHandler(text string) Command {
	for _, item := range r.items {
		if item.HasFocus() {
			return item.PasteHandler(text)
		}
	}
	return nil
}

// MouseHandler scrolls on the vertical wheel and forwards everything else to
// the row under the pointer.
func (r *Rows) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !r.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseScrollUp:
		if r.offset > 0 {
			r.offset--
			r.MarkDirty()
			return nil, RedrawCommand{}
		}
		return nil, nil
	case MouseScrollDown:
		r.offset++
		r.MarkDirty()
		return nil, RedrawCommand{}
	}

	index := r.indexAt(y)
	if index < 0 {
		return nil, nil
	}
	if action == MouseLeftDown && index != r.current {
		r.current = index
		if r.changed != nil {
			r.changed(index)
		}
	}
	return r.items[index].MouseHandler(action, event)
}

var _ Primitive = &Rows{}
