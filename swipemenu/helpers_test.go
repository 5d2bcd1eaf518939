package swipemenu

import (
	"testing"
	"time"

	"github.com/ayn2op/swipeview"
	"github.com/gdamore/tcell/v3"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// probe is a child of fixed size which records what it receives.
type probe struct {
	*swipeview.Box

	width, height int

	actions   []swipeview.MouseAction
	keys      []string
	pressed   bool
	canceled  int
	clickable bool
	measures  int
}

func newProbe(width, height int) *probe {
	p := &probe{Box: swipeview.NewBox(), width: width, height: height, clickable: true}
	p.Box.SetRect(0, 0, width, height)
	return p
}

func (p *probe) Measure(width, height swipeview.MeasureSpec) (int, int) {
	p.measures++
	return width.Wrap(p.width), height.Wrap(p.height)
}

func (p *probe) MouseHandler(action swipeview.MouseAction, event *tcell.EventMouse) (swipeview.Primitive, swipeview.Command) {
	p.actions = append(p.actions, action)
	switch action {
	case swipeview.MouseLeftDown:
		p.pressed = true
	case swipeview.MouseLeftUp:
		p.pressed = false
	}
	return nil, nil
}

func (p *probe) InputHandler(event *tcell.EventKey) swipeview.Command {
	p.keys = append(p.keys, event.Str())
	return nil
}

func (p *probe) CancelMouse() {
	p.pressed = false
	p.canceled++
}

func (p *probe) SetClickable(clickable bool) {
	p.clickable = clickable
}

func (p *probe) received(action swipeview.MouseAction) bool {
	for _, a := range p.actions {
		if a == action {
			return true
		}
	}
	return false
}

// fakeClock is a settable clock for settle animations.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// newTestMenu returns a menu at 0,0 with the given width holding one probe
// of height 1 per child width.
func newTestMenu(t *testing.T, width int, options []Option, childWidths ...int) (*SwipeMenu, []*probe, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: epoch}
	probes := make([]*probe, 0, len(childWidths))
	m := New(append([]Option{WithClock(clock.Now)}, options...)...)
	for _, w := range childWidths {
		p := newProbe(w, 1)
		probes = append(probes, p)
		m.AddItem(p)
	}
	m.SetRect(0, 0, width, 1)
	return m, probes, clock
}

func mouseAt(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func press(m *SwipeMenu, x int) swipeview.Command {
	_, cmd := m.MouseHandler(swipeview.MouseLeftDown, mouseAt(x, 0))
	return cmd
}

func move(m *SwipeMenu, x int) swipeview.Command {
	_, cmd := m.MouseHandler(swipeview.MouseMove, mouseAt(x, 0))
	return cmd
}

func lift(m *SwipeMenu, x int) swipeview.Command {
	_, cmd := m.MouseHandler(swipeview.MouseLeftUp, mouseAt(x, 0))
	return cmd
}

func click(m *SwipeMenu, x int) swipeview.Command {
	_, cmd := m.MouseHandler(swipeview.MouseLeftClick, mouseAt(x, 0))
	return cmd
}

// drag presses at from, moves through xs and releases at the last one.
func drag(m *SwipeMenu, from int, xs ...int) swipeview.Command {
	press(m, from)
	last := from
	for _, x := range xs {
		move(m, x)
		last = x
	}
	return lift(m, last)
}

// settle runs the settle animation to its end.
func settle(t *testing.T, m *SwipeMenu, clock *fakeClock) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		clock.now = clock.now.Add(swipeview.FrameInterval)
		if !requestsFrame(m.Tick(clock.now)) {
			return
		}
	}
	t.Fatal("settle animation did not finish")
}

func requestsFrame(cmd swipeview.Command) bool {
	switch c := cmd.(type) {
	case swipeview.AnimateCommand:
		return true
	case swipeview.BatchCommand:
		for _, item := range c {
			if requestsFrame(item) {
				return true
			}
		}
	}
	return false
}

func keyRune(r string) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}
