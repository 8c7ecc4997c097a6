package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkuksa/termsnake/internal/audio"
	"github.com/vkuksa/termsnake/internal/config"
	"github.com/vkuksa/termsnake/internal/core"
	"github.com/vkuksa/termsnake/internal/facts"
	"github.com/vkuksa/termsnake/internal/game"
	"github.com/vkuksa/termsnake/internal/storage"
)

// Options carries per-session runtime parameters.
type Options struct {
	ScreenW int
	ScreenH int
	Seed    int64 // 0 means seed from the clock
	Sound   bool  // local terminal only; SSH sessions run silent
}

// Model is the Bubble Tea model for one player session. It owns the pure
// game state machine and drives it from key presses and timer messages.
type Model struct {
	game   *game.Game
	cfg    config.Config
	store  *storage.Store
	beeper *audio.Beeper
	facts  *facts.Client

	keys KeyMap
	help help.Model

	width  int
	height int

	highScore  int
	factText   string
	factLoaded bool

	diffCursor int

	// Timer generations: bumping one orphans every message the old timer
	// still has in flight.
	tickGen      int
	countdownGen int

	scoreSaved bool
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a session model. store may be nil; the session then keeps
// an in-memory high score of 0.
func NewModel(cfg config.Config, store *storage.Store, opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		game:   game.New(cfg.GridSize, seed),
		cfg:    cfg,
		store:  store,
		beeper: audio.NewBeeper(opts.Sound && cfg.Sound),
		facts:  facts.NewClient(cfg.Facts.Endpoint, cfg.FactsTimeout()),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  opts.ScreenW,
		height: opts.ScreenH,
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the background fact fetch. Nothing else runs until the player
// leaves the home screen.
func (m Model) Init() tea.Cmd {
	return fetchFactCmd(m.facts, m.cfg.Facts.Prompt, m.cfg.FactsTimeout())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.scoreboard != nil {
			m.scoreboard.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case factMsg:
		m.factText = msg.text
		m.factLoaded = true
		return m, nil

	case CountdownMsg:
		return m.handleCountdown(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey routes key presses by phase. Keys that make no sense in the
// current phase are silently ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard != nil {
		if action == core.ActionBack || action == core.ActionScores {
			m.scoreboard = nil
			return m, nil
		}
		m.scoreboard.HandleAction(action)
		return m, nil
	}

	switch m.game.Phase() {
	case game.PhaseHome:
		switch action {
		case core.ActionConfirm:
			// The play action waits for the fact fetch to settle
			// (success or fallback); it never blocks past the
			// request timeout.
			if m.factLoaded {
				m.game.Play()
			}
		case core.ActionScores:
			m.scoreboard = NewScoreboardModel(m.store, m.width, m.height)
		}

	case game.PhaseIdle:
		switch action {
		case core.ActionUp:
			if m.diffCursor > 0 {
				m.diffCursor--
			}
		case core.ActionDown:
			if m.diffCursor < len(game.Difficulties)-1 {
				m.diffCursor++
			}
		case core.ActionConfirm:
			if m.game.StartRound(game.Difficulties[m.diffCursor]) {
				m.countdownGen++
				return m, countdownCmd(m.cfg.CountdownStep(), m.countdownGen)
			}
		}

	case game.PhasePlaying:
		if dir, ok := action.DirectionFor(); ok {
			m.game.Steer(dir)
			return m, nil
		}
		if action == core.ActionPause {
			m.game.TogglePause()
			m.tickGen++ // cancel the in-flight movement tick
		}

	case game.PhasePaused:
		if action == core.ActionPause {
			m.game.TogglePause()
			m.tickGen++
			return m, tickCmd(m.tickInterval(), m.tickGen)
		}

	case game.PhaseGameOver:
		if action == core.ActionConfirm {
			if m.game.PlayAgain() {
				m.scoreSaved = false
			}
		}
	}

	return m, nil
}

// handleCountdown advances the pre-round countdown and hands off to the
// movement tick once it finishes.
func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.countdownGen || m.game.Phase() != game.PhaseCountdown {
		return m, nil // stale timer
	}

	m.game.AdvanceCountdown()

	if m.game.Phase() == game.PhasePlaying {
		m.tickGen++
		return m, tickCmd(m.tickInterval(), m.tickGen)
	}
	return m, countdownCmd(m.cfg.CountdownStep(), m.countdownGen)
}

// handleTick runs one movement step and reacts to its events.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.game.Phase() != game.PhasePlaying {
		return m, nil // stale timer
	}

	res := m.game.Tick()

	if res.AteFood {
		m.beeper.FoodEaten()
		if m.game.Score() > m.highScore {
			m.highScore = m.game.Score()
		}
	}

	if res.GameOver {
		m.beeper.GameOver()
		m.saveScore()
		return m, nil
	}

	return m, tickCmd(m.tickInterval(), m.tickGen)
}

// saveScore persists the finished round once. Storage failures are
// best-effort: the in-memory high score already reflects the round.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveScore(m.game.Difficulty().String(), m.game.Score())
}

func (m Model) tickInterval() time.Duration {
	return m.cfg.TickInterval(m.game.Difficulty())
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	var content string
	switch m.game.Phase() {
	case game.PhaseHome:
		content = m.viewHome()
	case game.PhaseIdle:
		content = m.viewDifficulty()
	default:
		content = RenderScreen(renderBoard(m.game, m.highScore))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("T E R M S N A K E"))
	b.WriteString("\n\n")

	if m.factLoaded {
		b.WriteString(factStyle.Render("Did you know? " + m.factText))
		b.WriteString("\n\n")
		b.WriteString("Press enter to play")
	} else {
		b.WriteString(factStyle.Render("Fetching a fun fact..."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Press enter to play"))
	}

	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("tab: scores  |  q: quit"))

	return b.String()
}

func (m Model) viewDifficulty() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select difficulty"))
	b.WriteString("\n\n")

	for i, d := range game.Difficulties {
		line := "  " + d.String()
		if i == m.diffCursor {
			line = cursorStyle.Render("> " + d.String())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Run starts a local Bubble Tea program for one session.
func Run(cfg config.Config, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
