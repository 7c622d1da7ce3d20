package key

import "fmt"

// Key represents a keyboard key.
// For printable characters, use KeyRune and set the Byte field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCtrlC

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyUnknown is an escape sequence or control byte the decoder does
	// not recognize. Consumers discard these without side effects.
	KeyUnknown

	// KeyRune is used for printable characters. The actual character is
	// stored in Event.Byte.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUnknown:
		return "Unknown"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}
