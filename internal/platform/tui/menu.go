package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

// MenuItem represents a selectable game in the lobby.
type MenuItem struct {
	Info    registry.Info
	Best    int
	HasBest bool
}

// MenuModel is the Bubble Tea model for the game lobby.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	player         identity.Player
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a lobby listing every registered game with the
// player's best score.
func NewMenuModel(svc *Services, player identity.Player, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{Info: g}
		item.Best, item.HasBest = svc.bestFor(player, g.Slug)
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		player:    player,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M U S C L E   B R A I N"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render("Hi "+m.player.DisplayName+", pick a workout"), m.width))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, item := range m.items {
		nameWidth = max(nameWidth, lipgloss.Width(item.Info.Icon+" "+item.Info.Title))
	}

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = accentStyle
		}

		name := item.Info.Icon + " " + item.Info.Title
		name += strings.Repeat(" ", nameWidth-lipgloss.Width(name))

		best := "-"
		if item.HasBest {
			best = item.Info.FormatScore(item.Best)
		}

		line := fmt.Sprintf("%s%s  %-8s  best %s", cursor, name, item.Info.EstimatedTime, best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if i := m.cursor; i < len(m.items) {
		b.WriteString("\n")
		b.WriteString(centerText(mutedStyle.Render(m.items[i].Info.Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
