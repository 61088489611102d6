// Package cli holds the state shared by modkeeper's commands: global flag
// values, I/O streams, the filesystem and the configured panel.
package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/modkeeper/pkg/config"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/arthur-debert/modkeeper/pkg/panel"
	"github.com/arthur-debert/modkeeper/pkg/paths"
	"github.com/arthur-debert/modkeeper/pkg/ui"
	"github.com/arthur-debert/modkeeper/pkg/ui/confirmations"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// Env is the runtime environment of one command invocation
type Env struct {
	Verbosity  int
	ConfigFile string
	GameDir    string
	Format     string

	Fs  afero.Fs
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// LogFile overrides the log file location; empty uses the state dir
	LogFile string

	cfg *config.Config
}

// New creates an Env on the real filesystem and the process's streams
func New() *Env {
	return &Env{
		Fs:  filesystem.NewOS(),
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// SetupLogging configures logging for the invocation
func (e *Env) SetupLogging() {
	logFile := e.LogFile
	if logFile == "" {
		logFile = paths.LogFilePath()
	}
	logging.SetupLoggerWithOutput(e.Verbosity, e.Err, logFile)
}

// Config loads the configuration once, applying the --game-dir flag
func (e *Env) Config() (*config.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}

	overrides := map[string]interface{}{}
	if e.GameDir != "" {
		overrides["paths.game_dir"] = e.GameDir
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: e.ConfigFile, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	e.cfg = cfg
	return cfg, nil
}

// Panel builds the panel from the configuration
func (e *Env) Panel(opts ...panel.Option) (*panel.Panel, error) {
	cfg, err := e.Config()
	if err != nil {
		return nil, err
	}
	return panel.New(cfg, e.Fs, opts...)
}

// Renderer returns the renderer selected by --format
func (e *Env) Renderer() (ui.Renderer, error) {
	format, err := ui.ParseFormat(e.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, e.Out)
}

// Render renders result with the selected renderer
func (e *Env) Render(result interface{}) error {
	r, err := e.Renderer()
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// Message renders a one line message
func (e *Env) Message(msg string) error {
	r, err := e.Renderer()
	if err != nil {
		return err
	}
	return r.RenderMessage(msg)
}

// RenderError renders err on the error stream in the selected format
func (e *Env) RenderError(err error) error {
	format, perr := ui.ParseFormat(e.Format)
	if perr != nil {
		format = ui.FormatAuto
	}
	r, rerr := ui.NewRenderer(format, e.Err)
	if rerr != nil {
		return rerr
	}
	return r.RenderError(err)
}

// Interactive reports whether the error stream is a terminal, where
// progress and prompts make sense
func (e *Env) Interactive() bool {
	f, ok := e.Err.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// JSON reports whether machine-readable output was requested
func (e *Env) JSON() bool {
	format, err := ui.ParseFormat(e.Format)
	return err == nil && format == ui.FormatJSON
}

// Confirm asks a yes/no question on the error stream
func (e *Env) Confirm(question string, def bool) (bool, error) {
	return confirmations.NewConsoleDialog(e.In, e.Err).Confirm(question, def)
}
