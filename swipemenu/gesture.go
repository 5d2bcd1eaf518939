package swipemenu

import (
	"github.com/ayn2op/swipeview"
	"github.com/gdamore/tcell/v3"
)

type gestureState int

const (
	// No sequence in progress.
	gestureIdle gestureState = iota
	// A press was forwarded to a child and the slop was not exceeded yet.
	gesturePending
	// The menu owns the sequence and follows the pointer.
	gestureDragging
)

// tracking is the state of one press, move, release sequence.
type tracking struct {
	state gestureState

	downX     int
	lastMoveX int
	currentX  int

	// The child the press was forwarded to.
	target swipeview.Primitive

	// Set when the sequence ended as a drag, so the click that follows the
	// release is not delivered to a child.
	swallowClick bool

	// The press stopped a running settle heading for resumeTo. A sequence
	// that ends without moving the menu resumes it.
	interrupted bool
	resumeTo    int
}

// Intercepting reports whether the menu owns the current sequence.
func (m *SwipeMenu) Intercepting() bool {
	return m.track.state == gestureDragging
}

// MouseHandler filters the input sequence before the children see it.
func (m *SwipeMenu) MouseHandler(action swipeview.MouseAction, event *tcell.EventMouse) (swipeview.Primitive, swipeview.Command) {
	x, y := event.Position()

	switch action {
	case swipeview.MouseLeftDown:
		if !m.InRect(x, y) {
			return nil, nil
		}
		return m, m.begin(x, y, action, event)

	case swipeview.MouseMove:
		switch m.track.state {
		case gesturePending:
			if m.exceedsSlop(x) {
				return m, m.intercept()
			}
			return m, forward(m.track.target, action, event)
		case gestureDragging:
			return m, m.drag(x)
		}

	case swipeview.MouseLeftUp:
		switch m.track.state {
		case gesturePending:
			m.track.state = gestureIdle
			return nil, swipeview.AppendCommand(forward(m.track.target, action, event), m.resume())
		case gestureDragging:
			m.track.state = gestureIdle
			m.track.swallowClick = true
			return nil, m.release(x)
		}

	case swipeview.MouseLeftClick, swipeview.MouseLeftDoubleClick:
		if m.track.swallowClick {
			m.track.swallowClick = false
			return nil, swipeview.ConsumeEventCommand{}
		}
		target := m.track.target
		m.track.target = nil
		if target == nil {
			target = m.itemAt(x, y)
		}
		return nil, forward(target, action, event)

	case swipeview.MouseScrollLeft:
		if m.InRect(x, y) {
			return nil, m.Open()
		}
		return nil, nil

	case swipeview.MouseScrollRight:
		if m.InRect(x, y) {
			return nil, m.Close()
		}
		return nil, nil
	}

	if !m.InRect(x, y) {
		return nil, nil
	}
	return nil, forward(m.itemAt(x, y), action, event)
}

// begin starts a new sequence. A running settle stops where it is.
func (m *SwipeMenu) begin(x, y int, action swipeview.MouseAction, event *tcell.EventMouse) swipeview.Command {
	m.ensureLayout()
	interrupted := !m.scroller.IsFinished()
	resumeTo := m.scroller.FinalX()
	m.scroller.ForceFinished()

	m.track = tracking{
		downX:       x,
		lastMoveX:   x,
		currentX:    x,
		target:      m.itemAt(x, y),
		interrupted: interrupted,
		resumeTo:    resumeTo,
	}
	if m.track.target == nil {
		// Nothing to forward to, so there is nothing to claim the sequence
		// from either.
		m.track.state = gestureDragging
		return nil
	}
	m.track.state = gesturePending
	return forward(m.track.target, action, event)
}

// resume restarts a settle the current sequence interrupted, so the menu
// never rests between its endpoints.
func (m *SwipeMenu) resume() swipeview.Command {
	if !m.track.interrupted {
		return nil
	}
	m.track.interrupted = false
	return m.settleTo(m.clamp(m.track.resumeTo))
}

// exceedsSlop records a move and reports whether it travelled further than
// the touch slop from the press.
func (m *SwipeMenu) exceedsSlop(x int) bool {
	m.track.currentX = x
	m.track.lastMoveX = x
	diff := x - m.track.downX
	if diff < 0 {
		diff = -diff
	}
	return diff > m.touchSlop
}

// intercept takes the sequence away from the child that saw the press. The
// move that crossed the slop only arms the drag.
func (m *SwipeMenu) intercept() swipeview.Command {
	m.track.state = gestureDragging
	if c, ok := m.track.target.(swipeview.MouseCanceler); ok {
		c.CancelMouse()
	}
	m.track.target = nil
	return swipeview.RedrawCommand{}
}

func forward(target swipeview.Primitive, action swipeview.MouseAction, event *tcell.EventMouse) swipeview.Command {
	if target == nil {
		return nil
	}
	_, cmd := target.MouseHandler(action, event)
	return cmd
}
