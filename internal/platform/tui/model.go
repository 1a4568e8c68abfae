package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/unscramble/internal/game"
	"github.com/vovakirdan/unscramble/internal/storage"
)

// DefaultPlayer names results recorded from a local terminal.
const DefaultPlayer = "local"

// Options configures a game model.
type Options struct {
	Player string      // Name stored with finished games
	Logger *log.Logger // Nil discards
}

// snapshot holds the last state pushed by the engine. It lives behind a
// pointer so copies of the (value receiver) model share it.
type snapshot struct {
	state game.State
}

// Model is the Bubble Tea model for one player's game.
// All engine intents are dispatched from Update, which Bubble Tea runs
// on a single goroutine.
type Model struct {
	engine      *game.Engine
	store       *storage.Store
	opts        Options
	view        *snapshot
	unsubscribe func()

	input textinput.Model
	keys  KeyMap
	help  help.Model
	board *ScoreboardModel // Non-nil while the scoreboard is open

	width    int
	height   int
	best     int    // Best stored score when the game started
	correct  int    // Rounds solved this game
	skipped  string // Answer of the last skipped word
	saved    bool   // Whether the result has been stored for the current game over
	quitting bool
}

// NewModel creates a new Bubble Tea model around engine.
// store may be nil; results are then not recorded.
func NewModel(engine *game.Engine, store *storage.Store, opts Options) Model {
	if opts.Player == "" {
		opts.Player = DefaultPlayer
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Enter your word"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	snap := &snapshot{}
	m := Model{
		engine: engine,
		store:  store,
		opts:   opts,
		view:   snap,
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.unsubscribe = engine.Subscribe(func(s game.State) { snap.state = s })
	m.best = m.highScore()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the snapshot the model is currently displaying.
func (m Model) State() game.State {
	return m.view.state
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Update handles messages and dispatches engine intents.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.board != nil {
			m.updateBoard(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.board != nil {
			cmd := m.updateBoard(msg)
			return m, cmd
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.unsubscribe()
			return m, tea.Quit
		}
		if m.view.state.IsGameOver {
			return m.handleGameOverKey(msg)
		}
		return m.handlePlayingKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePlayingKey processes keys while a round is active.
func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		correct, err := m.engine.CheckUserGuess()
		if err != nil {
			m.opts.Logger.Warn("submit failed", "player", m.opts.Player, "error", err)
		}
		if correct {
			m.correct++
			m.skipped = ""
		}
		m.input.SetValue(m.engine.UserGuess())
		m.afterTransition()
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		m.skipped = m.engine.Answer()
		if err := m.engine.SkipWord(); err != nil {
			m.opts.Logger.Warn("skip failed", "player", m.opts.Player, "error", err)
		}
		m.input.SetValue(m.engine.UserGuess())
		m.afterTransition()
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.resetGame()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.engine.UpdateUserGuess(m.input.Value()); err != nil {
		m.opts.Logger.Debug("guess ignored", "error", err)
	}
	return m, cmd
}

// handleGameOverKey processes keys on the final score dialog.
func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PlayAgain), key.Matches(msg, m.keys.NewGame):
		m.resetGame()
	case key.Matches(msg, m.keys.Scores):
		board := NewScoreboardModel(m.store, m.width, m.height)
		m.board = &board
	}
	return m, nil
}

// updateBoard forwards msg to the open scoreboard and closes it on back.
func (m *Model) updateBoard(msg tea.Msg) tea.Cmd {
	next, cmd := m.board.Update(msg)
	board := next.(ScoreboardModel)
	switch {
	case board.IsQuitting():
		m.board = nil
		m.quitting = true
		m.unsubscribe()
		return tea.Quit
	case board.GoingBack():
		m.board = nil
		return nil
	}
	m.board = &board
	return cmd
}

func (m *Model) resetGame() {
	if err := m.engine.ResetGame(); err != nil {
		m.opts.Logger.Error("reset failed", "player", m.opts.Player, "error", err)
	}
	m.input.Reset()
	m.correct = 0
	m.skipped = ""
	m.saved = false
	m.best = m.highScore()
}

// afterTransition records the result once per game over.
func (m *Model) afterTransition() {
	s := m.view.state
	if !s.IsGameOver || m.saved {
		return
	}
	m.saved = true
	m.opts.Logger.Info("game finished",
		"player", m.opts.Player,
		"score", s.Score,
		"correct", m.correct,
		"rounds", m.engine.RoundBudget(),
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Player:  m.opts.Player,
		Score:   s.Score,
		Rounds:  m.engine.RoundBudget(),
		Correct: m.correct,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save result", "error", err)
	}
}

func (m Model) highScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	if m.view.state.IsGameOver {
		return m.gameOverView()
	}
	return m.playingView()
}

func (m Model) playingView() string {
	s := m.view.state

	var card strings.Builder
	card.WriteString(countStyle.Render(fmt.Sprintf("%d/%d", s.CurrentWordCount, m.engine.RoundBudget())))
	card.WriteString("\n\n")
	card.WriteString(scrambledStyle.Render(s.CurrentScrambledWord))
	card.WriteString("\n\n")
	card.WriteString(hintStyle.Render("Unscramble the word using all the letters."))
	card.WriteString("\n\n")
	if s.WrongGuess {
		card.WriteString(wrongStyle.Render("Wrong guess!"))
	} else {
		card.WriteString(hintStyle.Render("Enter your word"))
	}
	card.WriteString("\n")
	card.WriteString(m.input.View())

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("UNSCRAMBLE"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(cardStyle.Render(card.String()), m.width))
	b.WriteString("\n\n")

	scoreLine := scoreStyle.Render(fmt.Sprintf("Score: %d", s.Score))
	if m.best > 0 {
		scoreLine += hintStyle.Render(fmt.Sprintf("   Best: %d", m.best))
	}
	b.WriteString(centerText(scoreLine, m.width))
	b.WriteString("\n")
	if m.skipped != "" {
		b.WriteString(centerText(hintStyle.Render(fmt.Sprintf("Skipped: %s", m.skipped)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m Model) gameOverView() string {
	s := m.view.state

	var card strings.Builder
	card.WriteString(titleStyle.Render("Congratulations!"))
	card.WriteString("\n\n")
	card.WriteString(scoreStyle.Render(fmt.Sprintf("You scored: %d", s.Score)))
	card.WriteString("\n")
	card.WriteString(hintStyle.Render(fmt.Sprintf("%d of %d words unscrambled", m.correct, m.engine.RoundBudget())))
	if s.Score > m.best && m.best > 0 {
		card.WriteString("\n")
		card.WriteString(scoreStyle.Render("New high score!"))
	}
	card.WriteString("\n\n")
	card.WriteString(hintStyle.Render("Words: " + strings.Join(m.engine.Used(), ", ")))

	var b strings.Builder
	b.WriteString(centerText(cardStyle.Render(card.String()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(gameOverHelp(m.keys))), m.width))
	return b.String()
}

// Run starts the Bubble Tea program for a local game.
func Run(engine *game.Engine, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, store, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
