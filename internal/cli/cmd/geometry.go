package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockarea/internal/cli/styles"
	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/dock"
)

var (
	sizeContainer string
	sizeFloating  bool

	edgeRect   string
	edgeMargin int
)

var sizeCmd = &cobra.Command{
	Use:   "size <width>x<height>",
	Short: "Compute the floating size of a dragged panel",
	Long: `Compute the size a panel gets when dropped into a float area, using the
configured ratio and maximum fraction.

Examples:
  dockarea size 100x300 --in 800x600
  dockarea size 200x130 --in 800x600 --floating`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

var edgeCmd = &cobra.Command{
	Use:   "edge <x> <y>",
	Short: "Check whether a point is in an area's edge zone",
	Long: `Report whether a client-space point falls in the edge zone of a rect.

Examples:
  dockarea edge 5 5 --rect 0,0,800,600
  dockarea edge 400 300 --rect 0,0,800,600 --margin 24`,
	Args: cobra.ExactArgs(2),
	RunE: runEdge,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(edgeCmd)

	sizeCmd.Flags().StringVar(&sizeContainer, "in", "800x600", "container size")
	sizeCmd.Flags().BoolVar(&sizeFloating, "floating", false, "the panel already floats (keeps its proportion)")

	edgeCmd.Flags().StringVar(&edgeRect, "rect", "0,0,800,600", "area rect as x,y,width,height")
	edgeCmd.Flags().IntVar(&edgeMargin, "margin", 0, "edge zone width (0 = configured dock.edge_size)")
}

func runSize(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	widget, err := parseSize(args[0])
	if err != nil {
		return fmt.Errorf("widget size: %w", err)
	}
	container, err := parseSize(sizeContainer)
	if err != nil {
		return fmt.Errorf("container size: %w", err)
	}

	sizer := app.DockOptions().Sizer
	w, h := sizer.CandidateSize(widget.W, widget.H, container.W, container.H, sizeFloating)

	renderer := styles.NewRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSize(widget, container, sizeFloating, w, h))
	return nil
}

func runEdge(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	rect, err := parseRect(edgeRect)
	if err != nil {
		return fmt.Errorf("rect: %w", err)
	}

	margin := edgeMargin
	if margin <= 0 {
		margin = app.DockOptions().EdgeSize
	}

	p := entity.Point{X: x, Y: y}
	renderer := styles.NewRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEdge(p, rect, margin, dock.IsEdge(p, rect, margin)))
	return nil
}

// parseSize parses "WIDTHxHEIGHT" into a rect at the origin.
func parseSize(s string) (entity.Rect, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return entity.Rect{}, fmt.Errorf("want WIDTHxHEIGHT, got %q", s)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return entity.Rect{}, err
	}
	if nums[0] < 0 || nums[1] < 0 {
		return entity.Rect{}, fmt.Errorf("negative size %q", s)
	}
	return entity.Rect{W: nums[0], H: nums[1]}, nil
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (entity.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return entity.Rect{}, fmt.Errorf("want x,y,width,height, got %q", s)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return entity.Rect{}, err
	}
	if nums[2] < 0 || nums[3] < 0 {
		return entity.Rect{}, fmt.Errorf("negative size in %q", s)
	}
	return entity.Rect{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}, nil
}

func atoiAll(parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		nums[i] = n
	}
	return nums, nil
}
