package app

import "errors"

// Application errors.
var (
	// ErrInterrupted signals the user pressed Ctrl+C; the shell exits
	// after restoring the terminal.
	ErrInterrupted = errors.New("interrupted")

	// ErrInitialization indicates a startup failure.
	ErrInitialization = errors.New("initialization failed")
)
