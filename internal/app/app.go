// Package app wires the shell's components together and runs the
// read-edit-dispatch loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davles/linesh/internal/config"
	"github.com/davles/linesh/internal/dispatch"
	"github.com/davles/linesh/internal/editor"
	"github.com/davles/linesh/internal/input/key"
	"github.com/davles/linesh/internal/rc"
	"github.com/davles/linesh/internal/terminal"
	"github.com/davles/linesh/internal/tokenize"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses the
	// standard location.
	ConfigPath string

	// RCPath is the path to the Lua rc file. Empty uses the config
	// value, then the standard location.
	RCPath string

	// LogLevel overrides the configured logging verbosity when set.
	LogLevel string

	// Input is the raw keystroke source. Defaults to os.Stdin.
	Input io.Reader

	// Output is where the prompt and edited line are rendered.
	// Defaults to os.Stdout.
	Output io.Writer

	// ErrOutput is where command failures are reported.
	// Defaults to os.Stderr.
	ErrOutput io.Writer
}

// Application is the central coordinator for the shell. It owns the
// terminal mode, the renderer, the dispatcher and the rc runtime, and
// drives one line-read cycle at a time.
type Application struct {
	opts Options
	cfg  config.Config

	logger  *Logger
	logFile *os.File

	term       *terminal.Terminal
	renderer   *terminal.Renderer
	dispatcher *dispatch.Dispatcher
	runtime    *rc.Runtime

	input  io.Reader
	errOut io.Writer

	// lastOK feeds the rc prompt hook: did the previous command succeed.
	lastOK bool

	shutdownOnce sync.Once
}

// New creates an application from options: load config, open the log
// sink, run the rc file, and register aliases.
func New(opts Options) (*Application, error) {
	a := &Application{
		opts:   opts,
		input:  opts.Input,
		errOut: opts.ErrOutput,
		lastOK: true,
	}
	if a.input == nil {
		a.input = os.Stdin
	}
	if a.errOut == nil {
		a.errOut = os.Stderr
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	a.cfg = cfg

	if err := a.setupLogging(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}

	a.dispatcher = dispatch.New()
	a.dispatcher.SetStreams(os.Stdin, os.Stdout, os.Stderr)
	for name, expansion := range cfg.Aliases {
		a.dispatcher.SetAlias(name, tokenize.Split(expansion))
	}

	a.runtime = rc.NewRuntime()
	if err := a.runtime.RunFile(a.rcPath()); err != nil {
		// The shell still starts; the rc file is configuration sugar.
		a.logger.Warn("rc file: %v", err)
	}
	for _, alias := range a.runtime.Aliases() {
		a.dispatcher.SetAlias(alias.Name, tokenize.Split(alias.Expansion))
	}

	if f, ok := a.input.(*os.File); ok {
		a.term = terminal.New(f)
	}
	a.renderer = terminal.NewRenderer(output, cfg.Prompt.Render())

	return a, nil
}

// setupLogging builds the logger from config plus the option override.
func (a *Application) setupLogging() error {
	level := a.cfg.Log.Level
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}

	out := io.Writer(nil)
	if a.cfg.Log.Path != "" {
		f, err := os.OpenFile(a.cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		out = f
	}

	a.logger = NewLogger(ParseLogLevel(level), out)
	return nil
}

// rcPath resolves the rc file location: flag, then config, then the
// standard path.
func (a *Application) rcPath() string {
	if a.opts.RCPath != "" {
		return a.opts.RCPath
	}
	if a.cfg.RC.Path != "" {
		return a.cfg.RC.Path
	}
	return config.DefaultRCPath()
}

// Run executes the shell loop until exit, end of input, or interrupt.
// Raw mode is scoped to each line read so spawned commands run with a
// sane terminal; when the input is not a terminal (scripted use, tests)
// the loop runs without mode switching.
func (a *Application) Run() error {
	defer a.restoreTerminal()

	ed := editor.New(key.NewDecoder(a.input), a.renderer)

	for {
		a.refreshPrompt()
		if err := a.renderer.Prompt(); err != nil {
			return err
		}

		line, err := a.readLine(ed)
		switch {
		case errors.Is(err, editor.ErrInterrupted):
			a.logger.Info("interrupted")
			return ErrInterrupted

		case errors.Is(err, editor.ErrEndOfInput):
			// The stream finalized the line as an implicit Enter; run
			// what was typed, then leave.
			if line != "" {
				_ = a.renderer.Newline()
				a.dispatchLine(line)
			}
			return nil

		case err != nil:
			return err
		}

		if res := a.dispatchLine(line); res == dispatch.Terminate {
			fmt.Fprint(a.errOut, "exiting...\n")
			return nil
		}
	}
}

// readLine reads one command line with raw mode held for its duration.
// Acquisition failure is fatal; restore failure happens on the way out
// and is only reported.
func (a *Application) readLine(ed *editor.LineEditor) (string, error) {
	if a.term != nil && a.term.IsTerminal() {
		if err := a.term.EnterRawMode(); err != nil {
			return "", err
		}
		defer a.restoreTerminal()
	}
	return ed.ReadLine()
}

// dispatchLine tokenizes and dispatches one finalized line, reporting
// command failures without stopping the shell.
func (a *Application) dispatchLine(line string) dispatch.Result {
	argv := tokenize.Split(line)
	a.logger.Debug("dispatch: %q", argv)

	// Raw mode has been released by now; commands and reports run on a
	// cooked terminal.
	res, err := a.dispatcher.Dispatch(argv)
	if err != nil {
		fmt.Fprintf(a.errOut, "linesh: %v\n", err)
		a.lastOK = false
		return res
	}
	a.lastOK = true
	return res
}

// refreshPrompt consults the rc prompt hook, falling back to the static
// configured prompt when the hook is absent or fails.
func (a *Application) refreshPrompt() {
	if !a.runtime.HasPromptHook() {
		return
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	if p, ok := a.runtime.Prompt(cwd, a.lastOK); ok {
		a.renderer.SetPrompt(p)
	} else {
		a.renderer.SetPrompt(a.cfg.Prompt.Render())
	}
}

// restoreTerminal leaves raw mode. Failure here happens during shutdown
// and is reported, not propagated.
func (a *Application) restoreTerminal() {
	if a.term == nil {
		return
	}
	if err := a.term.Restore(); err != nil {
		a.logger.Error("restore terminal: %v", err)
	}
}

// Shutdown releases everything the application holds. It is safe to
// call from a signal handler goroutine and more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.restoreTerminal()
		if a.runtime != nil {
			a.runtime.Close()
		}
		if a.logFile != nil {
			_ = a.logFile.Close()
		}
	})
}
