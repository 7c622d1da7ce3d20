package key

import (
	"errors"
	"fmt"
	"io"
)

// ErrIncompleteEscape indicates the input ended in the middle of an ANSI
// escape sequence. Callers treat this the same as end of input: whatever
// line was being edited is finalized as-is.
var ErrIncompleteEscape = errors.New("incomplete escape sequence")

// Control bytes the decoder recognizes.
const (
	byteCtrlC     = 0x03
	byteBackspace = 0x08
	byteTab       = 0x09
	byteNewline   = 0x0a
	byteReturn    = 0x0d
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// Decoder reads a raw byte stream and produces one Event per key press.
// An ANSI arrow key arrives as the three bytes ESC '[' letter; the decoder
// performs the two-byte lookahead needed to resolve it.
//
// Decoder is not safe for concurrent use. Each line-read cycle owns its
// decoder exclusively.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next returns the next key event. It blocks until a full key press has
// been read. At end of input it returns io.EOF. If the stream ends between
// the bytes of an escape sequence it returns ErrIncompleteEscape.
func (d *Decoder) Next() (Event, error) {
	b, err := d.readByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		return Event{}, fmt.Errorf("read key: %w", err)
	}

	switch b {
	case byteNewline, byteReturn:
		return NewSpecialEvent(KeyEnter), nil
	case byteTab:
		return NewSpecialEvent(KeyTab), nil
	case byteBackspace, byteDelete:
		return NewSpecialEvent(KeyBackspace), nil
	case byteCtrlC:
		return NewSpecialEvent(KeyCtrlC), nil
	case byteEscape:
		return d.decodeEscape()
	}

	if b >= 0x20 && b < 0x7f {
		return NewRuneEvent(b), nil
	}

	// Remaining control bytes and non-ASCII lead bytes are ignored.
	return NewSpecialEvent(KeyUnknown), nil
}

// decodeEscape resolves the two bytes following ESC. The terminal sends
// escape sequences atomically, so a short read here means the stream
// itself ended.
func (d *Decoder) decodeEscape() (Event, error) {
	intro, err := d.readByte()
	if err != nil {
		return Event{}, ErrIncompleteEscape
	}
	final, err := d.readByte()
	if err != nil {
		return Event{}, ErrIncompleteEscape
	}

	if intro != '[' {
		return NewSpecialEvent(KeyUnknown), nil
	}

	switch final {
	case 'A':
		return NewSpecialEvent(KeyUp), nil
	case 'B':
		return NewSpecialEvent(KeyDown), nil
	case 'C':
		return NewSpecialEvent(KeyRight), nil
	case 'D':
		return NewSpecialEvent(KeyLeft), nil
	}

	return NewSpecialEvent(KeyUnknown), nil
}

func (d *Decoder) readByte() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:1])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
