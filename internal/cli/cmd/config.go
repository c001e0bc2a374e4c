package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockarea/internal/cli/styles"
	"github.com/bnema/dockarea/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration or write a default config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the config file in use and the values after defaults and DOCKAREA_* overrides.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to the config path. An existing file is
never overwritten.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := ""
	if app.Manager != nil {
		path = app.Manager.GetConfigFile()
	}
	renderer := styles.NewRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfig(path, app.Config))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewRenderer(styles.NewTheme())

	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return err
		}
	}

	mgr, err := config.NewManagerForFile(path)
	if err != nil {
		return err
	}
	if err := mgr.WriteDefault(path); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCreated(path))
	return nil
}
