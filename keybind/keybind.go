// Package keybind describes key bindings as plain strings such as "ctrl+c",
// "left" or "h" and matches them against tcell key events.
package keybind

import (
	"slices"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the text shown for them in help
// output.
type Keybind struct {
	keys []string
	help Help
}

// Help is the short description of a binding.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

// NewKeybind returns a binding configured by options.
func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

// WithKeys sets the keys of the binding. Keys are normalised, so "Esc",
// "escape" and "esc" are the same key.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys)
	}
}

// WithHelp sets the help text of the binding.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// Keys returns the normalised keys.
func (k Keybind) Keys() []string {
	return k.keys
}

// Help returns the help text.
func (k Keybind) Help() Help {
	return k.help
}

// Enabled reports whether the binding has at least one key.
func (k Keybind) Enabled() bool {
	return len(k.keys) > 0
}

// Matches reports whether event is one of the keys of any of the bindings.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := EventString(event)
	if key == "" {
		return false
	}
	for _, keybind := range keybinds {
		if slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}
