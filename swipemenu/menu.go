// Package swipemenu implements a row container whose children are laid out
// side by side and which can be dragged horizontally to reveal the children
// that do not fit its width, typically a set of action buttons.
//
// A drag is a left button press, any number of pointer moves and a release.
// Presses and small moves are forwarded to the child under the pointer.
// Once the pointer moves horizontally by more than the touch slop, the menu
// takes over the sequence: the child's pressed state is cancelled and the
// menu follows the pointer. On release it settles open or closed depending on
// the direction of the drag.
package swipemenu

import (
	"time"

	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/internal/log"
	"github.com/ayn2op/swipeview/keybind"
	"github.com/gdamore/tcell/v3"
)

// DefaultTouchSlop is the horizontal distance, in cells, the pointer must
// travel before a press turns into a drag.
var DefaultTouchSlop = 1

// SwipeMenu is a horizontally swipeable row. See the package documentation.
type SwipeMenu struct {
	*swipeview.Box

	items []swipeview.Primitive

	// Sizes of the children from the last measure pass.
	measured    []itemSize
	measuredFor measureKey

	// Content space placement of the children from the last layout pass.
	bounds []itemBounds

	// The child list changed since the last layout or measure pass.
	itemsChanged bool
	measureStale bool
	laidOut      bool

	// Horizontal offset of the viewport in content space.
	scrollX int

	leftBorder  int
	rightBorder int

	// Inner width at the last layout pass.
	viewport int

	touchSlop      int
	settleDuration time.Duration

	scroller *Scroller
	track    tracking

	// Resting state, updated when a settle finishes.
	open    bool
	changed func(open bool)

	keys KeyMap
	now  func() time.Time
}

// Option configures a SwipeMenu.
type Option func(*SwipeMenu)

// WithTouchSlop sets the drag threshold in cells.
func WithTouchSlop(cells int) Option {
	return func(m *SwipeMenu) {
		m.touchSlop = max(cells, 0)
	}
}

// WithSettleDuration sets the duration of the settle animation.
func WithSettleDuration(d time.Duration) Option {
	return func(m *SwipeMenu) {
		m.settleDuration = max(d, 0)
	}
}

// WithItems appends children.
func WithItems(items ...swipeview.Primitive) Option {
	return func(m *SwipeMenu) {
		for _, item := range items {
			m.AddItem(item)
		}
	}
}

// WithKeyMap replaces the open and close keys.
func WithKeyMap(keys KeyMap) Option {
	return func(m *SwipeMenu) {
		m.keys = keys
	}
}

// WithClock sets the clock settle animations are started with.
func WithClock(now func() time.Time) Option {
	return func(m *SwipeMenu) {
		if now != nil {
			m.now = now
		}
	}
}

// New returns a closed SwipeMenu.
func New(options ...Option) *SwipeMenu {
	m := &SwipeMenu{
		Box:            swipeview.NewBox(),
		touchSlop:      DefaultTouchSlop,
		settleDuration: DefaultSettleDuration,
		scroller:       NewScroller(nil),
		keys:           DefaultKeyMap(),
		now:            time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// AddItem appends a child to the right of the existing ones.
func (m *SwipeMenu) AddItem(item swipeview.Primitive) *SwipeMenu {
	if item == nil {
		return m
	}
	m.items = append(m.items, item)
	swipeview.BindDirtyParent(item, m.Box)
	m.itemsChanged = true
	m.measureStale = true
	m.MarkDirty()
	return m
}

// Clear removes all children.
func (m *SwipeMenu) Clear() *SwipeMenu {
	for _, item := range m.items {
		swipeview.UnbindDirtyParent(item, m.Box)
	}
	m.items = nil
	m.track = tracking{}
	m.scroller.ForceFinished()
	m.scrollX = 0
	m.setOpen(false)
	m.itemsChanged = true
	m.measureStale = true
	m.MarkDirty()
	return m
}

// GetItemCount returns the number of children.
func (m *SwipeMenu) GetItemCount() int {
	return len(m.items)
}

// GetItem returns the child at index, or nil.
func (m *SwipeMenu) GetItem(index int) swipeview.Primitive {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index]
}

// SetChangedFunc sets a handler called when the menu comes to rest in a
// different state than before.
func (m *SwipeMenu) SetChangedFunc(handler func(open bool)) *SwipeMenu {
	m.changed = handler
	return m
}

// ScrollX returns the current horizontal offset.
func (m *SwipeMenu) ScrollX() int {
	return m.scrollX
}

// Borders returns the content space left edge of the first child and right
// edge of the last child.
func (m *SwipeMenu) Borders() (left, right int) {
	return m.leftBorder, m.rightBorder
}

// IsOpen returns whether the menu last came to rest open.
func (m *SwipeMenu) IsOpen() bool {
	return m.open
}

// Open settles the menu to its open offset.
func (m *SwipeMenu) Open() swipeview.Command {
	m.ensureLayout()
	return m.settleTo(m.openOffset())
}

// Close settles the menu to its closed offset.
func (m *SwipeMenu) Close() swipeview.Command {
	return m.settleTo(0)
}

// Tick advances the settle animation.
func (m *SwipeMenu) Tick(now time.Time) swipeview.Command {
	if !m.scroller.ComputeOffset(now) {
		return nil
	}
	m.scrollTo(m.clamp(m.scroller.CurrX()))
	if m.scroller.IsFinished() {
		m.settled()
		return swipeview.RedrawCommand{}
	}
	return swipeview.BatchCommand{swipeview.RedrawCommand{}, swipeview.AnimateCommand{Target: m}}
}

func (m *SwipeMenu) settled() {
	open := m.scrollX > m.leftBorder
	log.Debugf("swipemenu: settled at %d (open=%v)", m.scrollX, open)
	m.setOpen(open)
}

func (m *SwipeMenu) setOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open
	if m.changed != nil {
		m.changed(open)
	}
}

// Draw draws the visible part of the children.
func (m *SwipeMenu) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)
	m.ensureLayout()

	x, y, width, height := m.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	clipped := swipeview.NewClippedScreen(screen, x, y, width, height)
	for index, item := range m.items {
		b := m.bounds[index]
		left := b.left - m.scrollX
		if left+b.width <= 0 || left >= width || b.width <= 0 {
			continue
		}
		item.Draw(clipped)
	}
}

// HasFocus returns whether the menu or one of its children has focus.
func (m *SwipeMenu) HasFocus() bool {
	for _, item := range m.items {
		if item.HasFocus() {
			return true
		}
	}
	return m.Box.HasFocus()
}

// InputHandler opens and closes the menu and forwards other keys to the
// focused child, or to the first one.
func (m *SwipeMenu) InputHandler(event *tcell.EventKey) swipeview.Command {
	switch {
	case keybind.Matches(event, m.keys.Open):
		return m.Open()
	case keybind.Matches(event, m.keys.Close):
		return m.Close()
	}

	for _, item := range m.items {
		if item.HasFocus() {
			return item.InputHandler(event)
		}
	}
	if len(m.items) > 0 {
		return m.items[0].InputHandler(event)
	}
	return nil
}

// PasteHandler forwards pasted text to the focused child.
func (m *SwipeMenu) PasteHandler(text string) swipeview.Command {
	for _, item := range m.items {
		if item.HasFocus() {
			return item.PasteHandler(text)
		}
	}
	return nil
}

var (
	_ swipeview.Primitive = &SwipeMenu{}
	_ swipeview.Measurer  = &SwipeMenu{}
	_ swipeview.Animator  = &SwipeMenu{}
)
