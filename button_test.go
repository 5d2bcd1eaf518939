package swipeview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v3"
)

func mouseEvent(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestButtonDraw(t *testing.T) {
	button := NewButton("Pin")
	button.SetRect(0, 0, 7, 1)
	screen := NewCaptureScreen(7, 1)
	button.Draw(screen)

	if got := screen.Row(0); got != "  Pin  " {
		t.Fatalf("Row(0) = %q", got)
	}
	if screen.StyleAt(0, 0).GetBackground() != Styles.ContrastBackgroundColor {
		t.Fatal("button background not drawn")
	}
}

func TestButtonMouse(t *testing.T) {
	selected := 0
	button := NewButton("Pin").SetSelectedFunc(func() Command {
		selected++
		return nil
	})
	button.SetRect(0, 0, 7, 1)

	_, cmd := button.MouseHandler(MouseLeftDown, mouseEvent(2, 0, tcell.ButtonPrimary))
	if !button.IsPressed() {
		t.Fatal("press did not set pressed")
	}
	if focus, ok := cmd.(SetFocusCommand); !ok || focus.Target != button {
		t.Fatalf("press returned %#v", cmd)
	}
	button.MouseHandler(MouseLeftUp, mouseEvent(2, 0, tcell.ButtonNone))
	button.MouseHandler(MouseLeftClick, mouseEvent(2, 0, tcell.ButtonNone))
	if button.IsPressed() || selected != 1 {
		t.Fatalf("after click pressed=%v selected=%d", button.IsPressed(), selected)
	}

	button.MouseHandler(MouseLeftDown, mouseEvent(2, 0, tcell.ButtonPrimary))
	button.CancelMouse()
	if button.IsPressed() {
		t.Fatal("CancelMouse left the button pressed")
	}

	button.SetClickable(false)
	if _, cmd := button.MouseHandler(MouseLeftDown, mouseEvent(2, 0, tcell.ButtonPrimary)); cmd != nil {
		t.Fatal("unclickable button handled a press")
	}
	button.SetClickable(true)

	button.SetDisabled(true)
	button.MouseHandler(MouseLeftClick, mouseEvent(2, 0, tcell.ButtonNone))
	if selected != 1 {
		t.Fatal("disabled button selected")
	}
}

func TestButtonEnter(t *testing.T) {
	selected := false
	button := NewButton("Delete").SetSelectedFunc(func() Command {
		selected = true
		return QuitCommand{}
	})

	cmd := button.InputHandler(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone))
	if !selected {
		t.Fatal("enter did not select")
	}
	batch, ok := cmd.(BatchCommand)
	if !ok || len(batch) != 2 {
		t.Fatalf("enter returned %#v", cmd)
	}
	if _, ok := batch[1].(QuitCommand); !ok {
		t.Fatalf("selected command lost: %#v", batch)
	}
}

func TestLabelDraw(t *testing.T) {
	label := NewLabel("hello world")
	label.SetRect(0, 0, 8, 1)
	screen := NewCaptureScreen(8, 1)
	label.Draw(screen)

	if got := screen.Row(0); !strings.HasPrefix(got, " hello ") {
		t.Fatalf("Row(0) = %q", got)
	}
}
