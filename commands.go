package swipeview

// Command is a side effect requested by a primitive during input handling.
// Commands are executed by the Application event loop.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand merges next into current. Batches on either side are
// flattened, nil values are dropped.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	return append(batchOf(current), batchOf(next)...)
}

func batchOf(c Command) BatchCommand {
	if batch, ok := c.(BatchCommand); ok {
		return append(BatchCommand(nil), batch...)
	}
	return BatchCommand{c}
}

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// QuitCommand requests stopping the application event loop.
type QuitCommand struct{}

// ConsumeEventCommand stops further propagation of the current input event.
type ConsumeEventCommand struct{}

// AnimateCommand asks the application to call Target.Tick on the next frame.
// Requesting the same target more than once per frame has no extra effect.
type AnimateCommand struct {
	Target Animator
}
