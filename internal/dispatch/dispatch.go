// Package dispatch executes finalized argument vectors: shell built-ins
// in-process, everything else as an external command that is waited on
// before control returns.
package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Result tells the caller whether to keep reading commands.
type Result int

const (
	// Continue keeps the read-dispatch loop running.
	Continue Result = iota
	// Terminate ends the shell.
	Terminate
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Continue:
		return "Continue"
	case Terminate:
		return "Terminate"
	default:
		return fmt.Sprintf("Result(%d)", r)
	}
}

// ErrNotFound indicates the command does not exist in PATH.
var ErrNotFound = errors.New("command not found")

// Dispatcher routes argument vectors to built-ins or external programs.
// It consumes each vector exactly once; a returned error means the
// command failed, not that the shell should stop.
type Dispatcher struct {
	aliases map[string][]string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a dispatcher wired to the process's standard streams.
func New() *Dispatcher {
	return &Dispatcher{
		aliases: make(map[string][]string),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// SetStreams overrides the standard streams handed to child processes.
func (d *Dispatcher) SetStreams(stdin io.Reader, stdout, stderr io.Writer) {
	d.stdin = stdin
	d.stdout = stdout
	d.stderr = stderr
}

// SetAlias registers an alias. The expansion replaces the command word;
// any further arguments are appended after it.
func (d *Dispatcher) SetAlias(name string, expansion []string) {
	if name == "" || len(expansion) == 0 {
		return
	}
	d.aliases[name] = expansion
}

// Alias returns the expansion registered for name.
func (d *Dispatcher) Alias(name string) ([]string, bool) {
	exp, ok := d.aliases[name]
	return exp, ok
}

// Dispatch runs one argument vector. An empty vector is a no-op.
func (d *Dispatcher) Dispatch(argv []string) (Result, error) {
	if len(argv) == 0 {
		return Continue, nil
	}

	argv = d.expand(argv)

	switch argv[0] {
	case "exit":
		return Terminate, nil
	case "cd":
		return Continue, d.chdir(argv)
	default:
		return Continue, d.run(argv)
	}
}

// expand applies a single level of alias expansion to the command word.
func (d *Dispatcher) expand(argv []string) []string {
	exp, ok := d.aliases[argv[0]]
	if !ok {
		return argv
	}
	out := make([]string, 0, len(exp)+len(argv)-1)
	out = append(out, exp...)
	out = append(out, argv[1:]...)
	return out
}

// chdir implements the cd built-in. With no argument it changes to the
// user's home directory.
func (d *Dispatcher) chdir(argv []string) error {
	dir := ""
	if len(argv) > 1 {
		dir = argv[1]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
		dir = home
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

// run executes an external command and waits for it. A non-zero exit
// status belongs to the child, not the shell, and is not an error here.
func (d *Dispatcher) run(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, argv[0])
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = d.stdin
	cmd.Stdout = d.stdout
	cmd.Stderr = d.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}
