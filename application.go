package swipeview

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/pkg/errors"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The minimum time between two consecutive redraws.
	redrawPause = 50 * time.Millisecond
)

var (
	// DoubleClickInterval specifies the maximum time between clicks to
	// register a double click rather than click.
	DoubleClickInterval = 500 * time.Millisecond

	// FrameInterval is the time between two animation frames.
	FrameInterval = 16 * time.Millisecond
)

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate(). If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen and the event loop. Every primitive method is
// called from the loop, one event at a time: key and mouse events, queued
// updates and animation frames never overlap.
//
//	if err := swipeview.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. Apart from Run(), this variable should never be
	// set directly.
	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	events chan tcell.Event

	// Functions queued from goroutines, used to serialize updates to primitives.
	updates chan queuedUpdate

	mouseCapturingPrimitive Primitive        // A Primitive returned by a MouseHandler which will capture future mouse events.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseClick          time.Time        // The time when a mouse button was last clicked.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool

	// Whether mouse events, including drags, are requested from the terminal.
	enableMouse bool

	// Primitives waiting for their next animation frame, and whether the
	// frame timer is armed. Only touched from the event loop.
	animators      map[Animator]struct{}
	frameScheduled bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// SetScreen sets the application's screen. Mostly useful in tests and for
// hosts which manage their own tcell screen.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// EnableMouse sets whether the application asks the terminal for mouse
// events. It must be called before [Application.Run].
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called or a QuitCommand was executed.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return errors.Wrap(err, "failed to create screen")
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return errors.Wrap(err, "failed to initialize screen")
		}
		a.screen = screen
	}
	if a.enableMouse {
		a.screen.EnableMouse(tcell.MouseDragEvents)
	}
	screen := a.screen
	a.events = screen.EventQ()
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	loop := eventLoop{app: a}
	for {
		select {
		case event := <-a.events:
			if event == nil {
				return loop.err
			}
			if !loop.handle(event) {
				return loop.err
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

// eventLoop holds the state Run keeps between two events.
type eventLoop struct {
	app *Application

	pasteBuffer strings.Builder
	pasting     bool

	lastRedraw  time.Time
	redrawTimer *time.Timer

	err error
}

// handle processes one terminal event. It returns false when the loop must
// stop.
func (l *eventLoop) handle(event tcell.Event) bool {
	a := l.app
	switch event := event.(type) {
	case *tcell.EventKey:
		if l.pasting {
			switch event.Key() {
			case tcell.KeyRune:
				l.pasteBuffer.WriteString(event.Str())
			case tcell.KeyEnter:
				l.pasteBuffer.WriteRune('\n')
			case tcell.KeyTab:
				l.pasteBuffer.WriteRune('\t')
			}
			return true
		}
		if root := a.GetRoot(); root != nil && root.HasFocus() {
			if a.executeCommand(root.InputHandler(event)) {
				a.draw()
			}
		}
	case *tcell.EventPaste:
		if event.Start() {
			l.pasting = true
			l.pasteBuffer.Reset()
			return true
		}
		if event.End() {
			l.pasting = false
			if root := a.GetRoot(); root != nil && root.HasFocus() && l.pasteBuffer.Len() > 0 {
				if a.executeCommand(root.PasteHandler(l.pasteBuffer.String())) {
					a.draw()
				}
			}
		}
	case *tcell.EventResize:
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		// Coalesce resize storms into one trailing redraw.
		if time.Since(l.lastRedraw) < redrawPause {
			if l.redrawTimer != nil {
				l.redrawTimer.Stop()
			}
			l.redrawTimer = time.AfterFunc(redrawPause, func() {
				a.QueueEvent(event)
			})
		}
		l.lastRedraw = time.Now()
		a.draw()
	case *tcell.EventMouse:
		handled, isMouseDownAction := a.fireMouseActions(event)
		if handled {
			a.draw()
		}
		a.lastMouseButtons = event.Buttons()
		if isMouseDownAction {
			a.mouseDownX, a.mouseDownY = event.Position()
		}
	case *tcell.EventError:
		l.err = event
		a.Stop()
		return false
	}
	a.RLock()
	running := a.screen != nil
	a.RUnlock()
	return running
}

// fireMouseActions derives mouse actions from the provided event and
// forwards them to the capturing primitive, or to the root.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, isMouseDownAction bool) {
	// Follow-up actions of the same event go to the same target primitive,
	// even when the capture was released in between.
	var targetPrimitive Primitive

	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseMiddleDown, MouseRightDown:
			isMouseDownAction = true
		}

		var primitive Primitive
		switch {
		case a.mouseCapturingPrimitive != nil:
			primitive = a.mouseCapturingPrimitive
			targetPrimitive = a.mouseCapturingPrimitive
		case targetPrimitive != nil:
			primitive = targetPrimitive
		default:
			primitive = a.GetRoot()
		}

		var capture Primitive
		if primitive != nil {
			var cmd Command
			capture, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouseCapturingPrimitive = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	clickMoved := x != a.mouseDownX || y != a.mouseDownY
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	for _, buttonEvent := range []struct {
		button                  tcell.ButtonMask
		down, up, click, dclick MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
	} {
		if buttonChanges&buttonEvent.button == 0 {
			continue
		}
		if buttons&buttonEvent.button != 0 {
			fire(buttonEvent.down)
			continue
		}
		fire(buttonEvent.up)
		if clickMoved {
			continue
		}
		if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
			fire(buttonEvent.click)
			a.lastMouseClick = time.Now()
		} else {
			fire(buttonEvent.dclick)
			a.lastMouseClick = time.Time{}
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	return handled, isMouseDownAction
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Draw queues a redraw of the screen. Never call it from the event loop
// itself (for example in a selected callback); return a RedrawCommand there.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

// draw lays out the root over the full screen and renders it.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.Unlock()

	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)

	// tcell keeps a back buffer and only emits deltas in Show(); clear only
	// when a full repaint was requested.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()

	a.Lock()
	a.forceRedraw = false
	a.Unlock()

	return a
}

// SetRoot sets the root primitive for this application and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// GetRoot returns the root primitive.
func (a *Application) GetRoot() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.root
}

// SetFocus sets the focus to a new primitive. Blur() is called on the
// previously focused primitive, Focus() on the new one.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}

	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns after f has executed.
// Use it to touch primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// QueueCommand executes cmd on the event loop as if a primitive had returned
// it from a handler.
func (a *Application) QueueCommand(cmd Command) *Application {
	a.QueueUpdate(func() {
		if a.executeCommand(cmd) {
			a.draw()
		}
	})
	return a
}

// QueueEvent sends an event to the Application event loop.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.RLock()
	events := a.events
	a.RUnlock()
	if events == nil {
		return a
	}
	events <- event
	return a
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case AnimateCommand:
		a.scheduleFrame(c.Target)
		return false
	case ConsumeEventCommand:
		return false
	}

	return false
}

// scheduleFrame registers target for the next animation frame and arms the
// frame timer if needed. The timer only posts into the update queue, so Tick
// always runs on the event loop.
func (a *Application) scheduleFrame(target Animator) {
	if target == nil {
		return
	}
	if a.animators == nil {
		a.animators = make(map[Animator]struct{})
	}
	a.animators[target] = struct{}{}
	if a.frameScheduled {
		return
	}
	a.frameScheduled = true
	time.AfterFunc(FrameInterval, func() {
		a.updates <- queuedUpdate{f: a.tick}
	})
}

// tick runs one animation frame. Animators that want another frame request
// it again from Tick.
func (a *Application) tick() {
	a.frameScheduled = false
	animators := a.animators
	a.animators = nil

	now := time.Now()
	redraw := false
	for target := range animators {
		if a.executeCommand(target.Tick(now)) {
			redraw = true
		}
	}
	if redraw {
		a.draw()
	}
}

// Animating returns whether an animation frame is pending.
func (a *Application) Animating() bool {
	return a.frameScheduled
}
