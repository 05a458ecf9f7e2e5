package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/registry"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

type sessionView int

const (
	viewLobby sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full flow: lobby -> game -> lobby, with the
// leaderboard one key away. Used both locally and for SSH sessions.
type SessionModel struct {
	svc        *Services
	player     identity.Player
	config     core.RuntimeConfig
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc *Services, player identity.Player, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		svc:    svc,
		player: player,
		config: cfg,
		menu:   NewMenuModel(svc, player, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in the lobby.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.storeOrNil(), m.player, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.Info.ID)
		if err != nil {
			// Shouldn't happen since the lobby only lists registered games
			m.svc.logger().Error("could not create game", "game", selected.Info.ID, "error", err)
			m.menu = NewMenuModel(m.svc, m.player, m.config)
			return m, nil
		}

		m.config = m.menu.Config()
		gameModel := NewGameModel(selected.Info, game, m.svc, m.player, m.config)
		m.gameModel = &gameModel
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when a game is mounted.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.backToLobby()
		return m, nil
	}

	return m, cmd
}

// updateScoreboard handles updates on the leaderboard screen.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.backToLobby()
		return m, nil
	}
	return m, cmd
}

// backToLobby rebuilds the lobby so fresh bests show up.
func (m *SessionModel) backToLobby() {
	m.view = viewLobby
	m.menu = NewMenuModel(m.svc, m.player, m.config)
}

func (m SessionModel) storeOrNil() *storage.Store {
	if m.svc == nil {
		return nil
	}
	return m.svc.Store
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case viewScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the lobby in the local terminal until the player quits.
func RunSession(svc *Services, player identity.Player, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(svc, player, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
