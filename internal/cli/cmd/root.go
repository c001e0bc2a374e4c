// Package cmd provides Cobra CLI commands for dockarea.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockarea/internal/cli"
	"github.com/bnema/dockarea/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "dockarea",
		Short: "Drag-and-drop engine for floating-panel docking areas",
		Long: `Dockarea - the drag-and-drop engine behind floating-panel docking areas.

A float area accepts panels dragged from anywhere in a widget tree, previews
where they will land with an overlay, and hands them to its layout once the
source container has settled. Near its border the area yields to an enclosing
container.

The commands below exercise the engine headlessly: replay TOML scenarios,
step through them interactively, and check the sizing and edge heuristics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dockarea/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
