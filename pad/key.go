package pad

import "strconv"

// Key is a keystroke produced by the keypad: a single digit, the decimal
// point or backspace.
type Key string

const (
	KeyPoint     Key = "."
	KeyBackspace Key = "backspace"
)

// Digit returns the key for d, which must be in 0..9.
func Digit(d int) Key {
	return Key(strconv.Itoa(d))
}

// IsDigit reports whether k is one of "0".."9".
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// Valid reports whether k is a key a field understands.
func (k Key) Valid() bool {
	return k.IsDigit() || k == KeyPoint || k == KeyBackspace
}

// ParseKey maps terminal key names onto keypad keys.
func ParseKey(s string) (Key, bool) {
	switch s {
	case ".", ",":
		return KeyPoint, true
	case "backspace", "delete", "ctrl+h":
		return KeyBackspace, true
	}
	k := Key(s)
	if k.IsDigit() {
		return k, true
	}
	return "", false
}
