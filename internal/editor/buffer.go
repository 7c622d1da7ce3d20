package editor

// initialCapacity is the starting allocation for a line buffer. Growth
// beyond it is amortized doubling via append.
const initialCapacity = 16

// EditBuffer is a growable single-line text buffer with a cursor.
//
// The invariant 0 <= cursor <= len holds after every operation. The
// buffer is byte-oriented: the decoder only ever delivers printable
// ASCII for insertion.
//
// EditBuffer is not safe for concurrent use. Each line-read cycle owns
// its buffer exclusively.
type EditBuffer struct {
	data   []byte
	cursor int
}

// NewBuffer creates an empty buffer with the cursor at position 0.
func NewBuffer() *EditBuffer {
	return &EditBuffer{data: make([]byte, 0, initialCapacity)}
}

// Len returns the number of bytes in the buffer.
func (b *EditBuffer) Len() int {
	return len(b.data)
}

// Cursor returns the current cursor position.
func (b *EditBuffer) Cursor() int {
	return b.cursor
}

// AtEnd returns true if the cursor is past the last byte.
func (b *EditBuffer) AtEnd() bool {
	return b.cursor == len(b.data)
}

// Tail returns the bytes at and after the cursor. The returned slice
// aliases the buffer and is only valid until the next mutation.
func (b *EditBuffer) Tail() []byte {
	return b.data[b.cursor:]
}

// String returns the buffer content.
func (b *EditBuffer) String() string {
	return string(b.data)
}

// InsertAtCursor inserts c at the cursor, shifting any following bytes
// right by one, and advances the cursor past the inserted byte.
func (b *EditBuffer) InsertAtCursor(c byte) {
	b.data = append(b.data, 0)
	copy(b.data[b.cursor+1:], b.data[b.cursor:])
	b.data[b.cursor] = c
	b.cursor++
}

// DeleteBeforeCursor removes the byte immediately before the cursor,
// shifting any following bytes left by one, and moves the cursor back.
// It returns false (and changes nothing) when the cursor is at 0.
func (b *EditBuffer) DeleteBeforeCursor() bool {
	if b.cursor == 0 {
		return false
	}
	copy(b.data[b.cursor-1:], b.data[b.cursor:])
	b.data = b.data[:len(b.data)-1]
	b.cursor--
	return true
}

// MoveLeft moves the cursor one position left.
// It returns false when the cursor is already at 0.
func (b *EditBuffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one position right.
// It returns false when the cursor is already at the end.
func (b *EditBuffer) MoveRight() bool {
	if b.cursor == len(b.data) {
		return false
	}
	b.cursor++
	return true
}
