package cmd

import (
	"fmt"

	"github.com/billie-coop/dialogstack/internal/config"
	"github.com/billie-coop/dialogstack/internal/tui"
	"github.com/billie-coop/dialogstack/internal/watcher"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive dialog demo",
		Long: `Launch the interactive demo.

Edits to the config file are applied while the demo runs.

Key bindings:
  ↑/↓, space  Toggle dialog options
  enter       Open the basic dialog
  n           Stack the nested dialog on top
  esc         Close the topmost dialog
  ?           Show the about dialog
  t           Cycle color themes
  q           Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd, !noWatch)
		},
	}

	cmd.Flags().BoolVar(&noWatch, "no-watch", false,
		"Do not reload the config file when it changes")
	return cmd
}

func (a *app) runDemo(cmd *cobra.Command, watch bool) error {
	model, err := tui.New(a.cfg, a.logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	if watch {
		stop := a.watchConfig(p)
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}

// watchConfig sends a tui.ConfigReloadedMsg to p whenever the config file
// changes. A watcher that cannot start only costs live reload.
func (a *app) watchConfig(p *tea.Program) func() {
	w, err := watcher.New(watcher.DefaultDebounceDelay, func([]string) {
		p.Send(a.reload())
	}, watcher.WithLogger(a.logger))
	if err != nil {
		a.logger.Warn("config reload disabled", "error", err)
		return func() {}
	}

	if err := w.Watch(a.configs.Path()); err != nil {
		a.logger.Warn("config reload disabled", "error", err)
		_ = w.Stop()
		return func() {}
	}

	a.logger.Debug("watching config", "path", a.configs.Path())
	return func() { _ = w.Stop() }
}

// reload reads the config file again.
func (a *app) reload() tui.ConfigReloadedMsg {
	m := config.NewManager(a.dir)
	if err := m.Load(); err != nil {
		return tui.ConfigReloadedMsg{Err: err}
	}
	return tui.ConfigReloadedMsg{Config: a.withOverrides(m.Get())}
}
