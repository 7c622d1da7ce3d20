package editor

import "fmt"

// OpKind identifies a display operation.
type OpKind uint8

const (
	// OpEmitChar writes one character at the terminal cursor.
	OpEmitChar OpKind = iota
	// OpClearToEOL erases from the terminal cursor to end of line.
	OpClearToEOL
	// OpMoveCursor moves the terminal cursor by Delta columns
	// (negative is left).
	OpMoveCursor
)

// Op is one display operation. The editor emits Ops instead of writing
// to the terminal; a Sink renders them.
type Op struct {
	Kind  OpKind
	Char  byte // for OpEmitChar
	Delta int  // for OpMoveCursor
}

// EmitChar returns an operation writing c at the cursor.
func EmitChar(c byte) Op {
	return Op{Kind: OpEmitChar, Char: c}
}

// ClearToEOL returns an operation erasing to end of line.
func ClearToEOL() Op {
	return Op{Kind: OpClearToEOL}
}

// MoveCursor returns an operation moving the cursor by delta columns.
func MoveCursor(delta int) Op {
	return Op{Kind: OpMoveCursor, Delta: delta}
}

// String returns a readable form, used in test failure messages.
func (op Op) String() string {
	switch op.Kind {
	case OpEmitChar:
		return fmt.Sprintf("emit(%q)", op.Char)
	case OpClearToEOL:
		return "clearEOL"
	case OpMoveCursor:
		return fmt.Sprintf("move(%+d)", op.Delta)
	default:
		return fmt.Sprintf("Op(%d)", op.Kind)
	}
}

// Sink renders display operations to the terminal.
type Sink interface {
	// Apply renders a batch of operations atomically (flushed together).
	Apply(ops []Op) error
	// Newline moves output to the start of the next line.
	Newline() error
	// Prompt redraws the shell prompt at the current position.
	Prompt() error
}
