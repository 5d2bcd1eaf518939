package keybind

import (
	"strings"

	"github.com/gdamore/tcell/v3"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

var aliases = map[string]string{
	"escape":    "esc",
	"return":    "enter",
	"pageup":    "pgup",
	"pagedown":  "pgdn",
	"space":     " ",
	"control":   "ctrl",
	"backtab":   "shift+tab",
	"del":       "delete",
	"leftarrow": "left",
}

// modifier order used in normalised keys.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

func normalizeKeys(keys []string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	return normalized
}

// normalizeKey turns a user written key into the form produced by
// EventString: lower case modifiers in a fixed order joined with "+", then
// the primary key.
func normalizeKey(key string) string {
	if key == " " {
		return " "
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	mods := map[string]bool{}
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		if alias, ok := aliases[lower]; ok {
			lower = alias
		}
		switch lower {
		case "":
			continue
		case "ctrl", "alt", "shift", "meta":
			mods[lower] = true
		case "shift+tab":
			mods["shift"] = true
			primary = "tab"
		default:
			if len([]rune(part)) == 1 {
				primary = part
			} else {
				primary = lower
			}
		}
	}
	if primary == "" {
		return ""
	}
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinModifiers(mods, primary)
}

func joinModifiers(mods map[string]bool, primary string) string {
	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

// EventString returns the normalised key string of event.
func EventString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary, known := keyNames[key]
	if !known && key == tcell.KeyRune {
		primary = event.Str()
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}
	if primary == "shift+tab" {
		return primary
	}

	mods := map[string]bool{}
	modifiers := event.Modifiers()
	mods["ctrl"] = modifiers&tcell.ModCtrl != 0
	mods["alt"] = modifiers&tcell.ModAlt != 0
	mods["meta"] = modifiers&tcell.ModMeta != 0
	// Shift is already part of upper case runes.
	mods["shift"] = modifiers&tcell.ModShift != 0 && key != tcell.KeyRune
	if !mods["ctrl"] && !mods["alt"] && !mods["meta"] && !mods["shift"] {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinModifiers(mods, primary)
}
