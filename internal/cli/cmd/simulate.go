package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockarea/internal/cli/styles"
	"github.com/bnema/dockarea/internal/simulate"
)

var (
	simulateJobs  int
	simulateQuiet bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.toml>...",
	Short: "Replay drag-and-drop scenarios",
	Long: `Replay one or more TOML scenarios against in-memory float areas and check
their expectations. Scenarios run concurrently; output keeps argument order.

The command fails when any expectation does not hold.

Examples:
  dockarea simulate testdata/drop-into-area.toml
  dockarea simulate --jobs 4 scenarios/*.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVarP(&simulateJobs, "jobs", "j", 0, "maximum scenarios run at once (0 = unlimited)")
	simulateCmd.Flags().BoolVarP(&simulateQuiet, "quiet", "q", false, "only print the summary and failures")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()

	scenarios := make([]*simulate.Scenario, 0, len(args))
	for _, path := range args {
		sc, err := simulate.Load(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	results, err := simulate.RunAll(app.Ctx(), scenarios, app.DockOptions(), simulateJobs)
	if err != nil {
		return err
	}

	renderer := styles.NewRenderer(app.Theme)
	failed := 0
	for _, res := range results {
		if !res.Passed() {
			failed++
		}
		if simulateQuiet && res.Passed() {
			continue
		}
		fmt.Fprintln(out, renderer.RenderResult(res))
	}
	fmt.Fprintln(out, renderer.RenderSummary(results))

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
