package converter

import (
	"strings"
	"unicode/utf8"
)

var keyboardKeys = map[string]struct{}{
	"ctrl": {}, "alt": {}, "shift": {}, "cmd": {}, "meta": {}, "win": {}, "fn": {}, "option": {},
	"enter": {}, "tab": {}, "esc": {}, "space": {}, "backspace": {}, "delete": {}, "insert": {},
	"home": {}, "end": {}, "pageup": {}, "pagedown": {}, "up": {}, "down": {}, "left": {}, "right": {},
	"f1": {}, "f2": {}, "f3": {}, "f4": {}, "f5": {}, "f6": {}, "f7": {}, "f8": {}, "f9": {}, "f10": {}, "f11": {}, "f12": {},
	"capslock": {}, "numlock": {}, "scrolllock": {}, "menu": {}, "pause": {}, "printscreen": {},
}

// IsKeyboardKey reports whether code formatted text names a single key, such
// as "a" or "Ctrl", and should be shown as a key cap instead of code.
func IsKeyboardKey(text string) bool {
	if utf8.RuneCountInString(text) == 1 {
		return true
	}
	_, ok := keyboardKeys[strings.ToLower(text)]
	return ok
}
