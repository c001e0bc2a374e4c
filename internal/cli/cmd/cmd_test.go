package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockarea/internal/cli/model"
	"github.com/bnema/dockarea/internal/domain/build"
	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/infrastructure/config"
)

// execute runs the root command with args against a scratch XDG config home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configPath = ""
	simulateJobs, simulateQuiet = 0, false
	sizeContainer, sizeFloating = "800x600", false
	edgeRect, edgeMargin = "0,0,800,600", 0
	app = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    entity.Rect
		wantErr bool
	}{
		{in: "100x300", want: entity.Rect{W: 100, H: 300}},
		{in: " 640X480 ", want: entity.Rect{W: 640, H: 480}},
		{in: "0x0", want: entity.Rect{}},
		{in: "100", wantErr: true},
		{in: "ax3", wantErr: true},
		{in: "-1x3", wantErr: true},
		{in: "1x2x3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRect(t *testing.T) {
	got, err := parseRect("10, 20, 300, 400")
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 300, H: 400}, got)

	got, err = parseRect("-5,-5,10,10")
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{X: -5, Y: -5, W: 10, H: 10}, got)

	for _, in := range []string{"1,2,3", "1,2,3,x", "0,0,-1,10"} {
		_, err := parseRect(in)
		assert.Error(t, err, in)
	}
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dockarea v1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestSizeCommand(t *testing.T) {
	out, err := execute(t, "size", "100x300", "--in", "800x600")
	require.NoError(t, err)
	assert.Contains(t, out, "docked")
	assert.Contains(t, out, "185x300")

	out, err = execute(t, "size", "200x130", "--in", "800x600", "--floating")
	require.NoError(t, err)
	assert.Contains(t, out, "floating")
	assert.Contains(t, out, "200x130")

	_, err = execute(t, "size", "oops")
	assert.Error(t, err)
}

func TestEdgeCommand(t *testing.T) {
	out, err := execute(t, "edge", "5", "5", "--rect", "0,0,800,600")
	require.NoError(t, err)
	assert.Contains(t, out, "edge zone")

	out, err = execute(t, "edge", "400", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "interior")

	out, err = execute(t, "edge", "40", "300", "--margin", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "edge zone")
	assert.Contains(t, out, "margin 50")

	_, err = execute(t, "edge", "x", "1")
	assert.Error(t, err)
}

func TestSimulateCommand(t *testing.T) {
	out, err := execute(t, "simulate",
		filepath.Join("..", "..", "simulate", "testdata", "drop-into-area.toml"),
		filepath.Join("..", "..", "simulate", "testdata", "nested-edge.toml"),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "2 passed, 0 failed")
}

func TestSimulateCommand_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "wrong expectation"

[[widget]]
id = "area"
bounds = [0, 0, 800, 600]
area = true

[[widget]]
id = "panel"
parent = "area"
bounds = [0, 0, 100, 100]
place = [0, 0, 100, 100]

[[expect]]
area = "area"
widget = "panel"
rect = [1, 1, 100, 100]
`), 0o644))

	out, err := execute(t, "simulate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 scenarios failed")
	assert.Contains(t, out, "0 passed, 1 failed")
}

func TestSimulateCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "simulate", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockarea", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Error(t, err, "existing file must not be overwritten")

	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "dock.edge_size")
	assert.Contains(t, out, "logging.level")
}

func TestConfigShow_Defaults(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(defaults, no config file)")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "config", "show")
	assert.Error(t, err)
}

func TestWatchDockOptions_ForwardsReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dock]\nedge_size = 32\n"), 0o600))

	mgr, err := config.NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var (
		mu   sync.Mutex
		sent []tea.Msg
	)
	require.NoError(t, watchDockOptions(mgr, func(msg tea.Msg) {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, msg)
	}))

	require.NoError(t, os.WriteFile(path, []byte("[dock]\nedge_size = 48\n"), 0o600))
	require.NoError(t, mgr.Reload())

	mu.Lock()
	defer mu.Unlock()
	// The file watcher may report the write too; Reload's message is among them.
	var edges []int
	for _, msg := range sent {
		changed, ok := msg.(model.OptionsChangedMsg)
		require.True(t, ok)
		edges = append(edges, changed.Options.EdgeSize)
	}
	assert.Contains(t, edges, 48)
}
