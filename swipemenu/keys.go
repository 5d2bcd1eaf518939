package swipemenu

import "github.com/ayn2op/swipeview/keybind"

// KeyMap holds the keys a SwipeMenu reacts to while it has focus.
type KeyMap struct {
	Open  keybind.Keybind
	Close keybind.Keybind
}

// DefaultKeyMap opens with left/h and closes with right/l/esc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:  keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "open menu")),
		Close: keybind.NewKeybind(keybind.WithKeys("right", "l", "esc"), keybind.WithHelp("→/l", "close menu")),
	}
}
