package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/registry"
	"github.com/vovakirdan/musclebrain/internal/scores"
)

type hostPhase int

const (
	phaseTutorial hostPhase = iota
	phasePlaying
	phaseConfirmStop
	phaseCompleted
)

// GameModel hosts one game: tutorial, play with pause and stop
// confirmation, then the completion screen.
type GameModel struct {
	game      registry.Game
	info      registry.Info
	svc       *Services
	player    identity.Player
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool
	keys      *KeyMapper
	empty     core.InputFrame
	loop      int64
	clock     core.SessionClock
	now       func() time.Time

	phase      hostPhase
	paused     bool
	tracker    *scores.Tracker
	tutorial   config.Tutorial
	result     scores.Result
	quitting   bool
	backToMenu bool
	standalone bool // quit the program instead of returning to a lobby
}

// NewGameModel creates a host for game. The tutorial is skipped when the
// player has already dismissed it.
func NewGameModel(info registry.Info, game registry.Game, svc *Services, player identity.Player, cfg core.RuntimeConfig) GameModel {
	m := GameModel{
		game:      game,
		info:      info,
		svc:       svc,
		player:    player,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		fixedSeed: cfg.Seed != 0,
		keys:      NewKeyMapper(),
		empty:     core.NewInputFrame(),
		loop:      time.Now().UnixNano(),
		now:       time.Now,
		phase:     phaseTutorial,
	}
	if svc != nil {
		m.tutorial = svc.Tutorials.For(info.ID, info.Title)
	}
	if svc.tutorialSeen(player, info.Slug) {
		m.start()
	}
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// start begins a fresh session.
func (m *GameModel) start() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.tracker = scores.NewTracker(m.info)
	if best, ok := m.svc.bestFor(m.player, m.info.Slug); ok {
		m.tracker.WithBest(best)
	}
	m.config.Callbacks = m.tracker.Callbacks(core.Callbacks{})
	m.game.Reset(m.config)
	m.clock = core.NewSessionClock(m.now())
	m.paused = false
	m.phase = phasePlaying
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		at := msg.At
		if at.IsZero() {
			at = m.now()
		}
		return m.handleTick(at)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseTutorial:
		switch action {
		case core.ActionSelect:
			m.svc.markTutorialSeen(m.player, m.info.Slug)
			m.start()
		case core.ActionBack:
			return m.leave()
		}

	case phasePlaying:
		switch action {
		case core.ActionNone, core.ActionRestart:
		case core.ActionBack:
			m.phase = phaseConfirmStop
			m.clock.Freeze(m.now())
			m.game.SetPaused(true)
		case core.ActionPause:
			if m.info.Pausable {
				m.paused = !m.paused
				if m.paused {
					m.clock.Freeze(m.now())
				} else {
					m.clock.Thaw(m.now())
				}
				m.game.SetPaused(m.paused)
			}
		default:
			if !m.paused {
				m.game.Press(m.clock.Now(m.now()), action)
			}
		}

	case phaseConfirmStop:
		switch msg.String() {
		case "y", "enter":
			return m.leave()
		case "n", "esc", "b", "q":
			m.phase = phasePlaying
			if !m.paused {
				m.clock.Thaw(m.now())
			}
			m.game.SetPaused(m.paused)
		}

	case phaseCompleted:
		switch action {
		case core.ActionRestart, core.ActionSelect:
			m.start()
		case core.ActionBack:
			return m.leave()
		}
	}

	return m, nil
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick brings the game up to at. Session time is frozen while paused
// or while the stop confirmation is open, so those spans never reach the
// game.
func (m GameModel) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.phase == phasePlaying && !m.paused {
		m.game.Step(m.clock.Now(at), m.empty)
		if res, ok := m.tracker.Result(); ok {
			m.complete(res)
		}
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *GameModel) complete(res scores.Result) {
	m.result = res
	m.phase = phaseCompleted
	m.svc.record(scores.Job{
		Info:        m.info,
		UserID:      m.player.UserID,
		DisplayName: m.player.DisplayName,
		Completion:  res.Completion,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	dir, err := config.DataDir()
	if err != nil {
		return
	}
	dir = filepath.Join(dir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	m.screen.Clear()
	m.game.Render(m.screen)

	filename := fmt.Sprintf("%s_%s.txt", m.info.Slug, time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	switch m.phase {
	case phaseTutorial:
		return centered(m.tutorialCard(), m.config.ScreenW, m.config.ScreenH)
	case phaseCompleted:
		return centered(m.completionCard(), m.config.ScreenW, m.config.ScreenH)
	case phaseConfirmStop:
		card := cardStyle.Render(strings.Join([]string{
			titleStyle.Render("Stop this game?"),
			"",
			"Your progress in this session will be lost.",
			"",
			mutedStyle.Render("[y] Stop    [n] Keep playing"),
		}, "\n"))
		return centered(card, m.config.ScreenW, m.config.ScreenH)
	}

	if m.paused {
		card := cardStyle.Render(strings.Join([]string{
			titleStyle.Render("Paused"),
			"",
			mutedStyle.Render("[p] Resume    [esc] Stop"),
		}, "\n"))
		return centered(card, m.config.ScreenW, m.config.ScreenH)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m GameModel) tutorialCard() string {
	t := m.tutorial
	title := t.Title
	if title == "" {
		title = m.info.Title
	}

	lines := []string{titleStyle.Render(strings.TrimSpace(m.info.Icon + " " + title)), ""}
	if m.info.Description != "" {
		lines = append(lines, m.info.Description, "")
	}
	for i, step := range t.Instructions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	if t.Time != "" {
		lines = append(lines, "", mutedStyle.Render("Time: "+t.Time))
	}
	if best, ok := m.svc.bestFor(m.player, m.info.Slug); ok {
		lines = append(lines, mutedStyle.Render("Your best: "+m.info.FormatScore(best)))
	}

	cta := t.CTA
	if cta == "" {
		cta = "Start"
	}
	lines = append(lines, "", accentStyle.Render("[enter] "+cta)+mutedStyle.Render("    [esc] Back"))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m GameModel) completionCard() string {
	res := m.result
	c := res.Completion

	lines := []string{
		titleStyle.Render(strings.TrimSpace(m.info.Icon + " " + m.info.Title)),
		"",
		accentStyle.Render(res.Rating.Label()),
		lipgloss.NewStyle().Bold(true).Render(m.info.FormatScore(c.Primary)),
		"",
	}
	if c.HasAccuracy {
		lines = append(lines, fmt.Sprintf("Accuracy: %d%%", c.Accuracy))
	}
	for _, k := range sortedKeys(c.Stats) {
		lines = append(lines, fmt.Sprintf("%s: %d", humanize(k), c.Stats[k]))
	}

	lines = append(lines, "")
	switch {
	case m.svc.practice():
		lines = append(lines, mutedStyle.Render("Practice run, not ranked"))
	case res.NewRecord && res.HadBest:
		lines = append(lines, accentStyle.Render("New personal record!"))
	case res.NewRecord:
		lines = append(lines, accentStyle.Render("First score on the board!"))
	default:
		lines = append(lines, mutedStyle.Render("Your best: "+m.info.FormatScore(res.Best)))
	}

	lines = append(lines, "", mutedStyle.Render("[r] Play again    [esc] Back"))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

func sortedKeys(stats map[string]int) []string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// humanize turns "maxStreak" into "Max streak".
func humanize(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Run plays a single game in the local terminal.
func Run(info registry.Info, game registry.Game, svc *Services, player identity.Player, cfg core.RuntimeConfig) error {
	model := NewGameModel(info, game, svc, player, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
