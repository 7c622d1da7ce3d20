package editor

import (
	"errors"

	"github.com/davles/linesh/internal/input/key"
)

// Editor errors.
var (
	// ErrEndOfInput signals that the input stream ended while editing.
	// The line returned alongside it holds whatever was accumulated and
	// is still dispatched; the caller stops looping afterwards.
	ErrEndOfInput = errors.New("end of input")

	// ErrInterrupted signals that the user pressed Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
)

// KeySource produces one key event per call, blocking until a full key
// press is available. *key.Decoder satisfies this.
type KeySource interface {
	Next() (key.Event, error)
}

// LineEditor reads one editable command line at a time from a key source,
// emitting display operations to a sink as the line is edited.
type LineEditor struct {
	keys KeySource
	sink Sink
}

// New creates a line editor reading keys from src and rendering through
// sink.
func New(src KeySource, sink Sink) *LineEditor {
	return &LineEditor{keys: src, sink: sink}
}

// ReadLine reads and edits one command line. It returns the finalized
// text when the user confirms with Enter.
//
// If the key source is exhausted mid-line (end of stream or an escape
// sequence cut short), the accumulated content is finalized as if Enter
// had been pressed and returned together with ErrEndOfInput. On Ctrl+C
// it returns an empty line and ErrInterrupted.
func (e *LineEditor) ReadLine() (string, error) {
	buf := NewBuffer()

	for {
		ev, err := e.keys.Next()
		if err != nil {
			// io.EOF and an escape sequence cut short both mean the
			// stream is done; either way the line finalizes as-is.
			return buf.String(), ErrEndOfInput
		}

		switch ev.Key {
		case key.KeyRune:
			if err := e.insert(buf, ev.Byte); err != nil {
				return "", err
			}

		case key.KeyBackspace:
			if err := e.backspace(buf); err != nil {
				return "", err
			}

		case key.KeyLeft:
			if buf.MoveLeft() {
				if err := e.sink.Apply([]Op{MoveCursor(-1)}); err != nil {
					return "", err
				}
			}

		case key.KeyRight:
			if buf.MoveRight() {
				if err := e.sink.Apply([]Op{MoveCursor(1)}); err != nil {
					return "", err
				}
			}

		case key.KeyEnter:
			if buf.Len() == 0 {
				// Fresh prompt, stay in the editing loop.
				if err := e.sink.Newline(); err != nil {
					return "", err
				}
				if err := e.sink.Prompt(); err != nil {
					return "", err
				}
				continue
			}
			if err := e.sink.Newline(); err != nil {
				return "", err
			}
			return buf.String(), nil

		case key.KeyCtrlC:
			ops := []Op{EmitChar('^'), EmitChar('C')}
			if err := e.sink.Apply(ops); err != nil {
				return "", err
			}
			if err := e.sink.Newline(); err != nil {
				return "", err
			}
			return "", ErrInterrupted

		case key.KeyTab, key.KeyUp, key.KeyDown, key.KeyUnknown:
			// Reserved for future completion and history. No buffer
			// mutation, no display output.
		}
	}
}

// insert adds c at the cursor and updates the display. An insertion in
// the middle of the line redraws the shifted tail and moves the terminal
// cursor back over it.
func (e *LineEditor) insert(buf *EditBuffer, c byte) error {
	atEnd := buf.AtEnd()
	buf.InsertAtCursor(c)

	if atEnd {
		return e.sink.Apply([]Op{EmitChar(c)})
	}

	tail := buf.Tail()
	ops := make([]Op, 0, len(tail)+3)
	ops = append(ops, EmitChar(c), ClearToEOL())
	for _, t := range tail {
		ops = append(ops, EmitChar(t))
	}
	ops = append(ops, MoveCursor(-len(tail)))
	return e.sink.Apply(ops)
}

// backspace removes the byte before the cursor and updates the display:
// step back, redraw the shifted tail, blank the ghost of the old last
// character, and move the terminal cursor back to the edit point.
func (e *LineEditor) backspace(buf *EditBuffer) error {
	if !buf.DeleteBeforeCursor() {
		return nil
	}

	tail := buf.Tail()
	ops := make([]Op, 0, len(tail)+3)
	ops = append(ops, MoveCursor(-1))
	for _, t := range tail {
		ops = append(ops, EmitChar(t))
	}
	ops = append(ops, EmitChar(' '), MoveCursor(-(len(tail)+1)))
	return e.sink.Apply(ops)
}
