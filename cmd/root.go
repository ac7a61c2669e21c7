// Package cmd wires the dialogstack command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/billie-coop/dialogstack/internal/config"
	"github.com/spf13/cobra"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

type globalOptions struct {
	projectDir string
	verbose    bool
	logFile    string
	theme      string
}

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	opts    globalOptions
	dir     string
	configs *config.Manager

	// cfg is the loaded config with flag overrides applied. It is never saved.
	cfg    *config.Config
	logger *slog.Logger
	logOut io.Closer
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dialogstack",
		Short: "Stacked modal dialogs for Bubble Tea",
		Long: `dialogstack demonstrates a headless dialog stack for Bubble Tea programs.

Dialogs register with a stack, open on top of each other and close
with esc or a click on their overlay.

Running dialogstack without a subcommand launches the demo.`,
		Version:      fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd, true)
		},
	}

	root.PersistentFlags().StringVarP(&a.opts.projectDir, "dir", "C", "",
		"Project directory holding "+config.DirName+" (default: working directory)")
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false,
		"Enable debug logging")
	root.PersistentFlags().StringVar(&a.opts.logFile, "log-file", "",
		"Write logs to this file instead of the configured one")
	root.PersistentFlags().StringVar(&a.opts.theme, "theme", "",
		"Color theme for the demo (fire, ocean, aurora)")

	root.AddCommand(newDemoCmd(a), newConfigCmd(a))
	return root
}

// setup loads the project config and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir := a.opts.projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot determine working directory: %w", err)
		}
		dir = wd
	}

	a.dir = dir
	a.configs = config.NewManager(dir)
	if err := a.configs.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a.cfg = a.withOverrides(a.configs.Get())
	cfg := a.cfg

	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.opts.verbose {
		level = slog.LevelDebug
	}

	// Stderr belongs to the terminal UI, so the demo only logs to a file.
	var out io.Writer = cmd.ErrOrStderr()
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		a.logOut = f
	} else if isDemo(cmd) {
		out = io.Discard
	}

	a.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	a.logger.Debug("config loaded", "path", a.configs.Path())
	return nil
}

// withOverrides returns a copy of cfg with the global flags applied.
func (a *app) withOverrides(cfg *config.Config) *config.Config {
	c := *cfg
	if a.opts.theme != "" {
		c.UI.Theme = a.opts.theme
	}
	if a.opts.logFile != "" {
		c.Log.File = a.opts.logFile
	}
	return &c
}

func (a *app) teardown() error {
	if a.logOut == nil {
		return nil
	}
	err := a.logOut.Close()
	a.logOut = nil
	return err
}

// isDemo reports whether cmd takes over the terminal.
func isDemo(cmd *cobra.Command) bool {
	return cmd.Name() == "demo" || !cmd.HasParent()
}

