package swipemenu

import (
	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/internal/log"
)

// drag follows the pointer to x. The offset never leaves the range between
// the borders; a move that would cross one pins the offset to it and keeps
// the last accepted position, so moving back has to cover that distance
// again before the content follows.
func (m *SwipeMenu) drag(x int) swipeview.Command {
	m.track.currentX = x
	movedBy := m.track.lastMoveX - x
	if movedBy == 0 {
		return nil
	}

	switch {
	case m.scrollX+movedBy < m.leftBorder:
		m.scrollTo(m.leftBorder)
	case m.scrollX+m.viewport+movedBy > m.rightBorder:
		m.scrollTo(m.openOffset())
	default:
		m.scrollBy(movedBy)
		m.track.lastMoveX = x
	}
	return swipeview.RedrawCommand{}
}

// release arms the settle for a sequence the menu owned. Dragging to the
// left opens the menu, dragging to the right closes it.
func (m *SwipeMenu) release(x int) swipeview.Command {
	m.track.currentX = x
	net := x - m.track.downX
	log.Debugf("swipemenu: release at %d, moved %d, offset %d", x, net, m.scrollX)

	switch {
	case net < 0:
		return m.settleTo(m.openOffset())
	case net > 0:
		return m.settleTo(0)
	}
	if cmd := m.resume(); cmd != nil {
		return cmd
	}
	return swipeview.RedrawCommand{}
}

// settleTo animates the offset from its current value to target.
func (m *SwipeMenu) settleTo(target int) swipeview.Command {
	m.scroller.StartScroll(m.now(), m.scrollX, target-m.scrollX, m.settleDuration)
	return swipeview.BatchCommand{swipeview.RedrawCommand{}, swipeview.AnimateCommand{Target: m}}
}
