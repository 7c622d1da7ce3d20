package key

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Byte is the character for KeyRune events.
	Byte byte
}

// NewRuneEvent creates a key event for a printable character.
func NewRuneEvent(b byte) Event {
	return Event{Key: KeyRune, Byte: b}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key) Event {
	return Event{Key: key}
}

// IsRune returns true if this is a printable character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// String returns a canonical string representation.
// Examples: "a", "Space", "Enter", "Left".
func (e Event) String() string {
	if e.Key == KeyRune {
		if e.Byte == ' ' {
			return "Space"
		}
		return string(e.Byte)
	}
	return e.Key.String()
}
