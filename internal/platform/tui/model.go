// Package tui runs a core.Game inside a Bubble Tea program.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-threes/internal/core"
)

// Options configures the game screen.
type Options struct {
	Keys   KeyMap
	Logger *log.Logger
	// ScreenshotDir receives ctrl+s dumps. Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a turn-based game. The game only
// advances on key presses; there is no tick loop.
type Model struct {
	game      core.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	shotDir   string
	gameState core.GameState
	status    string
	quitting  bool
}

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a model and resets the game with cfg.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:  cfg,
		keys:    opts.Keys,
		help:    help.New(),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
	}
	m.help.Width = cfg.ScreenW

	gameCfg := cfg
	gameCfg.ScreenH -= helpHeight
	game.Reset(gameCfg)
	m.gameState = game.State()
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey maps a key to an action and steps the game once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.status = m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(core.Frame(action))
	m.gameState = result.State
	m.status = ""

	if result.Changed {
		m.logger.Debug("step", "action", action, "score", m.gameState.Score)
	}
	if action == core.ActionRestart && result.Changed {
		m.logger.Info("restart")
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width

	if r, ok := m.game.(core.Resizable); ok {
		r.Resize(msg.Width, msg.Height-helpHeight)
	}
	m.gameState = m.game.State()

	return m, nil
}

// saveScreenshot writes the current screen to a text file and returns a
// status line.
func (m *Model) saveScreenshot() string {
	if m.shotDir == "" {
		return "screenshots disabled"
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Error("screenshot", "err", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return "screenshot failed"
	}

	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys)
	if m.status != "" {
		bar = m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(bar)
}

// Run starts the Bubble Tea program for game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
