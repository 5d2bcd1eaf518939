package swipemenu

import (
	"strings"
	"testing"
	"time"

	"github.com/ayn2op/swipeview"
	"github.com/gdamore/tcell/v3"
)

func TestTickSettlesOpen(t *testing.T) {
	m, _, clock := newTestMenu(t, 100, nil, 50, 80)
	var changes []bool
	m.SetChangedFunc(func(open bool) { changes = append(changes, open) })

	drag(m, 60, 50, 40)
	if m.ScrollX() != 10 {
		t.Fatalf("ScrollX() at release = %d, want 10", m.ScrollX())
	}

	prev := m.ScrollX()
	for _, elapsed := range []time.Duration{16, 50, 100, 200} {
		cmd := m.Tick(epoch.Add(elapsed * time.Millisecond))
		if !requestsFrame(cmd) {
			t.Fatalf("Tick at %dms did not request another frame", elapsed)
		}
		if m.ScrollX() < prev || m.ScrollX() > 30 {
			t.Fatalf("ScrollX() at %dms = %d after %d", elapsed, m.ScrollX(), prev)
		}
		prev = m.ScrollX()
	}

	clock.now = epoch.Add(DefaultSettleDuration)
	if cmd := m.Tick(clock.now); requestsFrame(cmd) {
		t.Fatal("final Tick requested another frame")
	}
	if m.ScrollX() != 30 || !m.IsOpen() {
		t.Fatalf("ScrollX() = %d open=%v, want 30 open", m.ScrollX(), m.IsOpen())
	}
	if len(changes) != 1 || !changes[0] {
		t.Fatalf("changes = %v, want [true]", changes)
	}

	if cmd := m.Tick(clock.now.Add(time.Second)); cmd != nil || m.ScrollX() != 30 {
		t.Fatalf("Tick after settle = %#v at %d", cmd, m.ScrollX())
	}
}

func TestOpenClose(t *testing.T) {
	m, _, clock := newTestMenu(t, 100, nil, 50, 80)
	var changes []bool
	m.SetChangedFunc(func(open bool) { changes = append(changes, open) })

	if !requestsFrame(m.Open()) {
		t.Fatal("Open did not request a frame")
	}
	settle(t, m, clock)
	if m.ScrollX() != 30 || !m.IsOpen() {
		t.Fatalf("after Open: ScrollX() = %d open=%v", m.ScrollX(), m.IsOpen())
	}

	m.Close()
	settle(t, m, clock)
	if m.ScrollX() != 0 || m.IsOpen() {
		t.Fatalf("after Close: ScrollX() = %d open=%v", m.ScrollX(), m.IsOpen())
	}

	m.Close()
	settle(t, m, clock)
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Fatalf("changes = %v, want [true false]", changes)
	}
}

func TestSettleDurationOption(t *testing.T) {
	m, _, clock := newTestMenu(t, 100, []Option{WithSettleDuration(0)}, 50, 80)

	m.Open()
	if requestsFrame(m.Tick(clock.now)) || m.ScrollX() != 30 {
		t.Fatalf("zero duration settle at %d", m.ScrollX())
	}
}

func TestResizeKeepsOpenMenuOpen(t *testing.T) {
	m, _, clock := newTestMenu(t, 100, nil, 50, 80)
	m.Open()
	settle(t, m, clock)

	m.SetRect(0, 0, 110, 1)
	if m.ScrollX() != 20 {
		t.Fatalf("ScrollX() after resize = %d, want 20", m.ScrollX())
	}
}

func TestKeys(t *testing.T) {
	m, probes, clock := newTestMenu(t, 100, nil, 50, 80)

	m.InputHandler(keyRune("h"))
	settle(t, m, clock)
	if !m.IsOpen() {
		t.Fatal("h did not open the menu")
	}

	m.InputHandler(tcell.NewEventKey(tcell.KeyEscape, "", tcell.ModNone))
	settle(t, m, clock)
	if m.IsOpen() {
		t.Fatal("esc did not close the menu")
	}

	m.InputHandler(tcell.NewEventKey(tcell.KeyLeft, "", tcell.ModNone))
	settle(t, m, clock)
	m.InputHandler(keyRune("l"))
	settle(t, m, clock)
	if m.IsOpen() || m.ScrollX() != 0 {
		t.Fatal("left then l did not end closed")
	}

	m.InputHandler(keyRune("x"))
	if len(probes[0].keys) != 1 || probes[0].keys[0] != "x" {
		t.Fatalf("first child keys = %v, want [x]", probes[0].keys)
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Open = keys.Close
	m, _, _ := newTestMenu(t, 100, []Option{WithKeyMap(keys)}, 50, 80)

	if m.InputHandler(keyRune("h")) != nil {
		t.Fatal("h still bound")
	}
}

func TestWheel(t *testing.T) {
	m, _, clock := newTestMenu(t, 100, nil, 50, 80)

	m.MouseHandler(swipeview.MouseScrollLeft, mouseAt(10, 0))
	settle(t, m, clock)
	if m.ScrollX() != 30 {
		t.Fatalf("ScrollX() after wheel left = %d, want 30", m.ScrollX())
	}

	m.MouseHandler(swipeview.MouseScrollRight, mouseAt(10, 0))
	settle(t, m, clock)
	if m.ScrollX() != 0 {
		t.Fatalf("ScrollX() after wheel right = %d, want 0", m.ScrollX())
	}

	if _, cmd := m.MouseHandler(swipeview.MouseScrollLeft, mouseAt(10, 4)); cmd != nil {
		t.Fatal("wheel outside the menu handled")
	}
}

func TestDrawShowsViewport(t *testing.T) {
	clock := &fakeClock{now: epoch}
	m := New(WithClock(clock.Now), WithItems(
		swipeview.NewLabel("hello"),
		swipeview.NewButton("Pin"),
		swipeview.NewButton("Del"),
	))
	m.Measure(swipeview.ExactSpec(20), swipeview.UnspecifiedSpec())
	m.SetRect(0, 0, 20, 1)

	if _, right := m.Borders(); right != 34 {
		t.Fatalf("rightBorder = %d, want 34", right)
	}

	screen := swipeview.NewCaptureScreen(20, 1)
	m.Draw(screen)
	if row := screen.Row(0); !strings.HasPrefix(row, " hello") || strings.Contains(row, "Pin") {
		t.Fatalf("closed row = %q", row)
	}

	m.Open()
	settle(t, m, clock)
	screen = swipeview.NewCaptureScreen(20, 1)
	m.Draw(screen)
	row := screen.Row(0)
	if strings.Contains(row, "hello") {
		t.Fatalf("open row still shows the label: %q", row)
	}
	if got := strings.Index(row, "Pin"); got != 8 {
		t.Fatalf("Pin at %d in %q, want 8", got, row)
	}
	if got := strings.Index(row, "Del"); got != 15 {
		t.Fatalf("Del at %d in %q, want 15", got, row)
	}
}

func TestButtonTapAndSwipe(t *testing.T) {
	m := New(WithTouchSlop(2))
	selected := 0
	button := swipeview.NewButton("Del").SetSelectedFunc(func() swipeview.Command {
		selected++
		return nil
	})
	m.AddItem(swipeview.NewLabel("row")).AddItem(button)
	m.SetRect(0, 0, 20, 1)

	// Button is at 20..27 in content space, open it first.
	m.Open()
	m.scroller.AbortAnimation()
	m.scrollTo(m.scroller.FinalX())

	press(m, 15)
	if !button.IsPressed() {
		t.Fatal("button not pressed")
	}
	lift(m, 15)
	click(m, 15)
	if selected != 1 {
		t.Fatalf("selected = %d after tap, want 1", selected)
	}

	press(m, 15)
	move(m, 19)
	if button.IsPressed() {
		t.Fatal("swipe did not cancel the press")
	}
	lift(m, 19)
	click(m, 19)
	if selected != 1 {
		t.Fatalf("selected = %d after swipe, want 1", selected)
	}
}

func TestResizeDuringSettle(t *testing.T) {
	tests := []struct {
		name     string
		start    func(t *testing.T, m *SwipeMenu, clock *fakeClock)
		wantX    int
		wantOpen bool
	}{
		{
			name: "opening",
			start: func(_ *testing.T, m *SwipeMenu, _ *fakeClock) {
				drag(m, 60, 50, 40)
			},
			wantX:    10,
			wantOpen: true,
		},
		{
			name: "closing",
			start: func(t *testing.T, m *SwipeMenu, clock *fakeClock) {
				m.Open()
				settle(t, m, clock)
				m.Close()
				clock.now = clock.now.Add(20 * time.Millisecond)
				m.Tick(clock.now)
			},
			wantX: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, clock := newTestMenu(t, 100, nil, 50, 80)
			tt.start(t, m, clock)

			m.SetRect(0, 0, 120, 1)
			if _, right := m.Borders(); m.ScrollX() > right-120 {
				t.Fatalf("ScrollX() after resize = %d, past %d", m.ScrollX(), right-120)
			}
			settle(t, m, clock)

			if m.ScrollX() != tt.wantX || m.IsOpen() != tt.wantOpen {
				t.Fatalf("at rest ScrollX() = %d open=%v, want %d open=%v", m.ScrollX(), m.IsOpen(), tt.wantX, tt.wantOpen)
			}
		})
	}
}

func TestClearDuringSettle(t *testing.T) {
	m, _, clock := newTestMenu(t, 100, nil, 50, 80)
	var changes []bool
	m.SetChangedFunc(func(open bool) { changes = append(changes, open) })

	drag(m, 60, 50, 40)
	m.Clear()
	m.SetRect(0, 0, 100, 1)
	settle(t, m, clock)
	if m.ScrollX() != 0 || m.IsOpen() || len(changes) != 0 {
		t.Fatalf("after Clear: ScrollX() = %d open=%v changes=%v", m.ScrollX(), m.IsOpen(), changes)
	}

	m.AddItem(newProbe(50, 1)).AddItem(newProbe(80, 1))
	m.Open()
	settle(t, m, clock)
	m.Close()
	m.Clear()
	if m.IsOpen() || len(changes) != 2 || changes[1] {
		t.Fatalf("Clear of an open menu: open=%v changes=%v", m.IsOpen(), changes)
	}
	if cmd := m.Tick(clock.now.Add(time.Second)); cmd != nil {
		t.Fatalf("Tick after Clear = %#v", cmd)
	}
}

func TestTapResumesInterruptedSettle(t *testing.T) {
	m, probes, clock := newTestMenu(t, 100, nil, 50, 80)
	var changes []bool
	m.SetChangedFunc(func(open bool) { changes = append(changes, open) })

	drag(m, 60, 50, 40)
	clock.now = clock.now.Add(50 * time.Millisecond)
	m.Tick(clock.now)

	press(m, 20)
	if !requestsFrame(lift(m, 20)) {
		t.Fatal("tap did not resume the settle")
	}
	if !probes[0].received(swipeview.MouseLeftUp) {
		t.Fatal("release not forwarded to the child")
	}
	settle(t, m, clock)
	if m.ScrollX() != 30 || !m.IsOpen() || len(changes) != 1 {
		t.Fatalf("ScrollX() = %d open=%v changes=%v, want 30 open [true]", m.ScrollX(), m.IsOpen(), changes)
	}
}

func TestStillPressResumesInterruptedSettle(t *testing.T) {
	clock := &fakeClock{now: epoch}
	m := New(WithClock(clock.Now))
	m.AddItem(newProbe(50, 1)).AddItem(newProbe(80, 1))
	m.SetRect(0, 0, 100, 3)

	m.Open()
	clock.now = clock.now.Add(50 * time.Millisecond)
	m.Tick(clock.now)

	// Below the children, so the menu tracks the press itself.
	m.MouseHandler(swipeview.MouseLeftDown, mouseAt(60, 2))
	_, cmd := m.MouseHandler(swipeview.MouseLeftUp, mouseAt(60, 2))
	if !requestsFrame(cmd) {
		t.Fatal("release without movement did not resume the settle")
	}
	settle(t, m, clock)
	if m.ScrollX() != 30 || !m.IsOpen() {
		t.Fatalf("ScrollX() = %d open=%v, want 30 open", m.ScrollX(), m.IsOpen())
	}
}
