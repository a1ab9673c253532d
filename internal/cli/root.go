package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/platform/logger"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/todo"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// App carries root flag values into subcommands.
type App struct {
	Config config.Config
}

func NewRootCmd() *cobra.Command {
	a := &App{Config: config.FromEnv()}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "A tiny task list for the terminal and the browser",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Start from a seed list
  todo --seed todos.json

  # Serve the list to a browser
  todo serve --addr 127.0.0.1:8080

  # Print the list once
  todo ls
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ui.SetTheme(a.Config.Theme); err != nil {
				return err
			}
			return ui.SetColorMode(a.Config.Color)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.Config.Seed, "seed", a.Config.Seed, "JSON file with the initial items (default ./todos.json if present)")
	f.StringVar(&a.Config.Theme, "theme", a.Config.Theme, "terminal theme: "+strings.Join(ui.Themes, ", "))
	f.StringVar(&a.Config.Color, "color", a.Config.Color, "color output: auto, always or never")
	f.StringVar(&a.Config.LogLevel, "log-level", a.Config.LogLevel, "log level: debug, info, warn, error")
	f.StringVar(&a.Config.LogFormat, "log-format", a.Config.LogFormat, "log format: text or json")
	f.StringVar(&a.Config.LogFile, "log-file", a.Config.LogFile, "write logs to this file instead of stderr")

	cmd.AddCommand(newTUICmd(a), newServeCmd(a), newListCmd(a))
	return cmd
}

// Execute runs the root command and returns a process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		ui.Fail(stderr, err.Error())
		return 1
	}
	return 0
}

// openLogger builds the process logger. With quiet set and no log file, logs
// are dropped so they cannot corrupt a full screen UI.
func (a *App) openLogger(stderr io.Writer, quiet bool) (*slog.Logger, func(), error) {
	w, closeFn := stderr, func() {}
	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	} else if quiet {
		return logger.Discard(), closeFn, nil
	}
	l, err := logger.New(a.Config.LogLevel, a.Config.LogFormat, w)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return l, closeFn, nil
}

// newHost loads the seed list and builds a host whose controller is not yet mounted.
func (a *App) newHost(log *slog.Logger) (*app.Host, error) {
	seed, err := jsonstore.Load(a.Config.Seed)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	items, err := todo.New(seed)
	if err != nil {
		return nil, err
	}
	log.Debug("seed loaded", "items", len(seed))
	return app.NewHost(items, app.WithLogger(log))
}

// withMounted runs fn between the load hook (Mount) and the unload hook (Unmount).
func withMounted(h *app.Host, fn func() error) error {
	if err := h.Controller.Mount(); err != nil {
		return err
	}
	runErr := fn()
	if err := h.Controller.Unmount(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
