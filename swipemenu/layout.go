package swipemenu

import (
	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/internal/log"
)

type itemSize struct {
	width, height int
}

type itemBounds struct {
	left, width, height int
}

type measureKey struct {
	width, height swipeview.MeasureSpec
	valid         bool
}

// Measure measures every child under the given specs. The menu would like
// to be as wide as all children together and as high as the highest one.
func (m *SwipeMenu) Measure(width, height swipeview.MeasureSpec) (int, int) {
	insetX, insetY := m.insets()
	childWidth := shrink(width, insetX)
	childHeight := shrink(height, insetY)

	m.measured = m.measured[:0]
	wantWidth, wantHeight := 0, 0
	for _, item := range m.items {
		w, h := swipeview.MeasurePrimitive(item, childWidth, childHeight)
		m.measured = append(m.measured, itemSize{width: w, height: h})
		wantWidth += w
		wantHeight = max(wantHeight, h)
	}
	m.measuredFor = measureKey{width: childWidth, height: childHeight, valid: true}
	m.measureStale = false

	return width.Resolve(wantWidth + insetX), height.Resolve(wantHeight + insetY)
}

// insets returns the cells taken by borders and padding in each direction.
func (m *SwipeMenu) insets() (int, int) {
	_, _, width, height := m.GetRect()
	_, _, innerWidth, innerHeight := m.GetInnerRect()
	return max(width-innerWidth, 0), max(height-innerHeight, 0)
}

func shrink(spec swipeview.MeasureSpec, by int) swipeview.MeasureSpec {
	if spec.Mode == swipeview.Unspecified {
		return spec
	}
	spec.Size = max(spec.Size-by, 0)
	return spec
}

// SetRect sets the rect of the menu. Children are only laid out again when
// its size or the child list changed; a pure move only shifts them.
func (m *SwipeMenu) SetRect(x, y, width, height int) {
	_, _, oldWidth, oldHeight := m.GetRect()
	m.Box.SetRect(x, y, width, height)

	if !m.laidOut || m.itemsChanged || oldWidth != width || oldHeight != height {
		m.relayout()
		return
	}
	m.place()
}

func (m *SwipeMenu) ensureLayout() {
	if !m.laidOut || m.itemsChanged {
		m.relayout()
	}
}

// needsMeasure reports whether the last measure pass does not match the
// current children and inner size.
func (m *SwipeMenu) needsMeasure(width, height int) bool {
	switch {
	case !m.measuredFor.valid, m.measureStale, len(m.measured) != len(m.items):
		return true
	case m.measuredFor.width != swipeview.ExactSpec(width):
		return true
	case m.measuredFor.height.Mode == swipeview.Exactly && m.measuredFor.height.Size != height:
		return true
	}
	return false
}

func (m *SwipeMenu) relayout() {
	// Which endpoint a running settle is heading for, before the borders move.
	settling := !m.scroller.IsFinished()
	settlingOpen := settling && m.scroller.FinalX() > m.leftBorder

	_, _, width, height := m.GetInnerRect()
	if m.needsMeasure(width, height) {
		_, _, outerWidth, outerHeight := m.GetRect()
		m.Measure(swipeview.ExactSpec(outerWidth), swipeview.ExactSpec(outerHeight))
	}

	m.viewport = width
	m.bounds = m.bounds[:0]
	left := 0
	for index, item := range m.items {
		size := m.measured[index]
		m.bounds = append(m.bounds, itemBounds{left: left, width: size.width, height: size.height})
		if c, ok := item.(swipeview.Clickable); ok {
			c.SetClickable(true)
		}
		left += size.width
	}

	if len(m.bounds) == 0 {
		m.leftBorder, m.rightBorder = 0, 0
	} else {
		first, last := m.bounds[0], m.bounds[len(m.bounds)-1]
		m.leftBorder = first.left
		m.rightBorder = last.left + last.width
	}
	log.Debugf("swipemenu: leftBorder=%d rightBorder=%d viewport=%d", m.leftBorder, m.rightBorder, m.viewport)

	m.itemsChanged = false
	m.laidOut = true

	// Keep the resting state across a resize.
	if m.open && m.scroller.IsFinished() {
		m.scrollX = m.openOffset()
	}
	m.scrollX = m.clamp(m.scrollX)
	if settling {
		target := 0
		if settlingOpen {
			target = m.openOffset()
		}
		if target != m.scroller.FinalX() {
			m.scroller.StartScroll(m.now(), m.scrollX, target-m.scrollX, m.settleDuration)
		}
	}
	m.place()
	m.MarkDirty()
}

// place moves every child to its screen position for the current offset.
func (m *SwipeMenu) place() {
	x, y, _, _ := m.GetInnerRect()
	for index, item := range m.items {
		if index >= len(m.bounds) {
			return
		}
		b := m.bounds[index]
		item.SetRect(x+b.left-m.scrollX, y, b.width, b.height)
	}
}

// openOffset is the offset at which the right edge of the last child is at
// the right edge of the viewport.
func (m *SwipeMenu) openOffset() int {
	return max(m.rightBorder-m.viewport, m.leftBorder)
}

func (m *SwipeMenu) clamp(offset int) int {
	return min(max(offset, 0), m.openOffset())
}

func (m *SwipeMenu) scrollTo(offset int) {
	if offset == m.scrollX {
		return
	}
	m.scrollX = offset
	m.place()
	m.MarkDirty()
}

func (m *SwipeMenu) scrollBy(delta int) {
	m.scrollTo(m.scrollX + delta)
}

// itemAt returns the child under the given screen position, or nil.
func (m *SwipeMenu) itemAt(x, y int) swipeview.Primitive {
	if !m.InInnerRect(x, y) {
		return nil
	}
	for _, item := range m.items {
		itemX, itemY, width, height := item.GetRect()
		if x >= itemX && x < itemX+width && y >= itemY && y < itemY+height {
			return item
		}
	}
	return nil
}
