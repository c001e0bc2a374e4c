// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockarea/internal/cli/styles"
	"github.com/bnema/dockarea/internal/simulate"
	"github.com/bnema/dockarea/internal/ui/dock"
)

// OptionsChangedMsg carries float area options reloaded from the config file.
type OptionsChangedMsg struct {
	Options dock.Options
}

// ReplayModel is the Bubble Tea model that steps through a scenario.
type ReplayModel struct {
	// UI components
	help     help.Model
	keys     replayKeyMap
	theme    *styles.Theme
	renderer *styles.Renderer

	// State
	player *simulate.Player
	last   *simulate.StepResult
	notice string
	err    error
	width  int
	height int
}

// replayKeyMap defines keybindings for the replay view.
type replayKeyMap struct {
	Step   key.Binding
	Finish key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k replayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Finish, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k replayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Finish},
		{k.Help, k.Quit},
	}
}

func defaultReplayKeyMap() replayKeyMap {
	return replayKeyMap{
		Step: key.NewBinding(
			key.WithKeys("n", " ", "right", "l"),
			key.WithHelp("n/space", "next step"),
		),
		Finish: key.NewBinding(
			key.WithKeys("a", "G"),
			key.WithHelp("a", "run to end"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewReplayModel creates a replay model driving player.
func NewReplayModel(theme *styles.Theme, player *simulate.Player) ReplayModel {
	return ReplayModel{
		help:     help.New(),
		keys:     defaultReplayKeyMap(),
		theme:    theme,
		renderer: styles.NewRenderer(theme),
		player:   player,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case OptionsChangedMsg:
		player, err := m.player.Restart(msg.Options)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.player = player
		m.notice = "config reloaded"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Step):
			m.step()
		case key.Matches(msg, m.keys.Finish):
			for m.err == nil && !m.player.Done() {
				m.step()
			}
		}
	}
	return m, nil
}

// Player returns the player currently driving the view.
func (m ReplayModel) Player() *simulate.Player {
	return m.player
}

func (m *ReplayModel) step() {
	if m.err != nil {
		return
	}
	m.notice = ""
	sr, err := m.player.Step()
	if errors.Is(err, simulate.ErrFinished) {
		return
	}
	if err != nil {
		m.err = err
		return
	}
	m.last = &sr
}

// View implements tea.Model.
func (m ReplayModel) View() string {
	t := m.theme
	sc := m.player.Scenario()
	var b strings.Builder

	progress := fmt.Sprintf("step %d/%d", m.player.Next(), len(sc.Steps))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render(sc.Name), " ", t.MutedBadge(progress)))
	if m.notice != "" {
		b.WriteString(" ")
		b.WriteString(t.AccentBadge(m.notice))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderStepLine())
	b.WriteString("\n\n")

	for _, area := range m.player.Areas() {
		b.WriteString(m.renderer.RenderArea(area))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.renderer.RenderError(m.err))
		b.WriteString("\n")
	} else if m.player.Done() {
		res := m.player.Result()
		b.WriteString(t.PassBadge(res.Passed()))
		b.WriteString("\n")
		for _, f := range res.Failures {
			b.WriteString(t.FailStyle.Render("  ✗ " + f))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m ReplayModel) renderStepLine() string {
	t := m.theme
	var parts []string

	if m.last != nil {
		handled := t.Subtle.Render("unhandled")
		if m.last.Handled {
			handled = t.PassStyle.Render("handled")
		}
		parts = append(parts, fmt.Sprintf("%s %s %s",
			t.Subtle.Render("last:"), t.AreaName.Render(m.last.Action), handled))
	}

	if sc := m.player.Scenario(); !m.player.Done() {
		next := sc.Steps[m.player.Next()]
		desc := next.Action
		if next.Target != "" {
			desc += " → " + next.Target
		}
		if next.Action == simulate.ActionEnter || next.Action == simulate.ActionOver ||
			next.Action == simulate.ActionLeave || next.Action == simulate.ActionDrop {
			desc += fmt.Sprintf(" @ (%d, %d)", next.X, next.Y)
		}
		parts = append(parts, fmt.Sprintf("%s %s", t.Subtle.Render("next:"), t.Normal.Render(desc)))
	} else {
		parts = append(parts, t.Subtle.Render("scenario finished"))
	}
	return strings.Join(parts, "   ")
}
