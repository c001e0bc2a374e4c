package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockarea/internal/cli/model"
	"github.com/bnema/dockarea/internal/infrastructure/config"
	"github.com/bnema/dockarea/internal/logging"
	"github.com/bnema/dockarea/internal/simulate"
)

var playCmd = &cobra.Command{
	Use:   "play <scenario.toml>",
	Short: "Step through a scenario interactively",
	Long: `Open a scenario in an interactive view and apply its steps one at a time,
watching drag sessions, overlays and placements change. Edits to the dock
section of the config file are picked up while playing: the scenario is
rebuilt with the new options and replayed up to the current step.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sc, err := simulate.Load(args[0])
	if err != nil {
		return err
	}
	player, err := simulate.NewPlayer(app.Ctx(), sc, app.DockOptions())
	if err != nil {
		return err
	}

	program := tea.NewProgram(model.NewReplayModel(app.Theme, player), tea.WithAltScreen())
	if app.Manager != nil {
		if err := watchDockOptions(app.Manager, program.Send); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	final, err := program.Run()
	if m, ok := final.(model.ReplayModel); ok {
		m.Player().Close()
	}
	player.Close()
	if err != nil {
		return fmt.Errorf("run replay: %w", err)
	}
	return nil
}

// watchDockOptions forwards the dock options of every config reload to send.
func watchDockOptions(mgr *config.Manager, send func(tea.Msg)) error {
	mgr.OnConfigChange(func(cfg *config.Config) {
		send(model.OptionsChangedMsg{Options: cfg.Dock.Options()})
	})
	return mgr.Watch()
}
