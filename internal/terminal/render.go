package terminal

import (
	"bytes"
	"fmt"
	"io"

	"github.com/davles/linesh/internal/editor"
)

// ANSI control sequences used by the renderer.
const (
	seqClearToEOL = "\x1b[K"
	seqCursorFwd  = "\x1b[%dC"
	seqCursorBack = "\x1b[%dD"
)

// Renderer translates editor display operations into ANSI escape
// sequences on a writer. It implements editor.Sink.
//
// Each Apply batch is buffered and written in a single call so the
// terminal never shows a half-applied update.
type Renderer struct {
	w      io.Writer
	prompt string
}

// NewRenderer creates a renderer writing to w with the given prompt
// string. The prompt may contain ANSI styling.
func NewRenderer(w io.Writer, prompt string) *Renderer {
	return &Renderer{w: w, prompt: prompt}
}

// SetPrompt replaces the prompt string used by Prompt.
func (r *Renderer) SetPrompt(prompt string) {
	r.prompt = prompt
}

// Apply renders a batch of display operations.
func (r *Renderer) Apply(ops []editor.Op) error {
	var buf bytes.Buffer
	for _, op := range ops {
		switch op.Kind {
		case editor.OpEmitChar:
			buf.WriteByte(op.Char)
		case editor.OpClearToEOL:
			buf.WriteString(seqClearToEOL)
		case editor.OpMoveCursor:
			switch {
			case op.Delta > 0:
				fmt.Fprintf(&buf, seqCursorFwd, op.Delta)
			case op.Delta < 0:
				fmt.Fprintf(&buf, seqCursorBack, -op.Delta)
			}
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	if _, err := r.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Newline moves output to the start of the next line. Raw mode disables
// output post-processing, so the carriage return is explicit.
func (r *Renderer) Newline() error {
	if _, err := io.WriteString(r.w, "\r\n"); err != nil {
		return fmt.Errorf("render newline: %w", err)
	}
	return nil
}

// Prompt draws the shell prompt at the current position.
func (r *Renderer) Prompt() error {
	if _, err := io.WriteString(r.w, r.prompt); err != nil {
		return fmt.Errorf("render prompt: %w", err)
	}
	return nil
}
