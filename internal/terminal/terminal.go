// Package terminal owns the process's interaction with the controlling
// terminal: raw mode acquisition and the rendering of display operations
// as ANSI escape sequences.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal toggles raw mode on a terminal device. Raw mode delivers
// keystrokes immediately, unbuffered and unechoed, and leaves signal
// generation disabled so Ctrl+C arrives in-band.
type Terminal struct {
	in    *os.File
	state *term.State
}

// New creates a Terminal for the given input device, normally os.Stdin.
func New(in *os.File) *Terminal {
	return &Terminal{in: in}
}

// IsTerminal reports whether the input device is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// EnterRawMode saves the current terminal settings and switches to raw
// mode. It must be paired with Restore on every exit path.
func (t *Terminal) EnterRawMode() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore returns the terminal to the settings saved by EnterRawMode.
// It is safe to call multiple times; only the first call acts.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}
