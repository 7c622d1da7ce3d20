// Package editor provides the interactive command-line editor.
//
// The editor package has three parts:
//
//   - EditBuffer: a growable single-line text buffer with a cursor
//   - Op: display operations the editor emits to keep the visible line
//     synchronized with the buffer after every mutation
//   - LineEditor: the state machine that consumes key events and drives
//     the buffer and display until a line is finalized
//
// The editor never writes to the terminal directly. Every visible change
// is expressed as a sequence of Ops handed to a Sink, which keeps the
// editing logic fully testable without a terminal.
//
// Each call to ReadLine owns its buffer exclusively from creation to
// hand-off; the finalized text is returned by value and the buffer is
// discarded.
package editor
