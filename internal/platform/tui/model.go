package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// Board identifies the board configuration a result is recorded against.
type Board struct {
	Size  int
	Mines int
}

// Session collects what happened while the program ran.
type Session struct {
	Results   []storage.Result
	SaveError error // Last storage failure, if any
	GameError error // Game failure that ended the program, if any
}

// round tracks the game in progress. It is shared by pointer because
// Bubble Tea hands Init a copy of the model.
type round struct {
	state    core.GameState
	recorded bool // Whether the game has been recorded
}

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game       Game
	board      Board
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame *core.InputFrame
	round      *round
	session    *Session
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case results are kept in the session only.
func NewModel(game Game, board Board, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShortSeparator = "  "

	frame := core.NewInputFrame()
	m := Model{
		game:       game,
		board:      board,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: &frame,
		round:      &round{},
		session:    &Session{},
		now:        time.Now,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// helpRows returns the rows taken by the help bar.
func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keyMapper.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// gameHeight is the screen height left for the game.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.helpRows(), 0)
}

// layout fits the screen buffer to the terminal and tells the game.
func (m Model) layout() {
	m.screen.Resize(m.config.ScreenW, m.gameHeight())
	m.game.Resize(m.screen.Width(), m.screen.Height())
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.start()
	return tickCmd(m.config.TickRate)
}

// start resets the game with the current seed and screen size.
func (m *Model) start() {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)
	*m.round = round{state: m.game.State()}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keyMapper.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	default:
		m.inputFrame.Push(action)
	}
	return m, nil
}

// handleMouse moves the cursor to the clicked cell and queues the action.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapMouse(msg)
	if action == core.ActionNone {
		return m, nil
	}
	p, ok := m.game.(Pointer)
	if !ok {
		return m, nil
	}
	// Queued actions target the cursor as it is now, so apply them before
	// the click moves it.
	if !m.inputFrame.Empty() {
		if cmd := m.step(); cmd != nil {
			return m, cmd
		}
	}
	if !p.MoveCursorTo(msg.X, msg.Y) {
		return m, nil
	}
	m.inputFrame.Push(action)
	return m, nil
}

// handleResize keeps the board and only adapts the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()
	m.help.Width = msg.Width
	return m, nil
}

// restart records the current game if it was abandoned and lays out a new
// board with a fresh seed.
func (m *Model) restart() {
	m.recordAbandoned()
	m.config.Seed = m.now().UnixNano()
	m.inputFrame.Clear()
	m.start()
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if cmd := m.step(); cmd != nil {
		return m, cmd
	}
	return m, tickCmd(m.config.TickRate)
}

// step feeds the queued actions to the game and records a finished game.
// It returns tea.Quit when the game reports an error.
func (m *Model) step() tea.Cmd {
	result := m.game.Step(*m.inputFrame)
	m.round.state = result.State
	m.inputFrame.Clear()

	if result.Err != nil {
		m.session.GameError = result.Err
		m.quitting = true
		return tea.Quit
	}

	if result.State.GameOver && !m.round.recorded {
		outcome := storage.OutcomeLost
		if result.State.Won {
			outcome = storage.OutcomeWon
		}
		m.record(outcome)
	}
	return nil
}

// recordAbandoned records an unfinished game the player touched.
func (m *Model) recordAbandoned() {
	if m.round.recorded || m.round.state.GameOver || m.round.state.Moves == 0 {
		return
	}
	m.record(storage.OutcomeAbandoned)
}

// record saves the current game once.
func (m *Model) record(outcome storage.Outcome) {
	m.round.recorded = true
	result := storage.Result{
		Size:      m.board.Size,
		Mines:     m.board.Mines,
		Outcome:   outcome,
		Exposed:   m.round.state.Exposed,
		Moves:     m.round.state.Moves,
		Seed:      m.config.Seed,
		CreatedAt: m.now(),
	}
	if m.store != nil {
		id, err := m.store.SaveResult(result)
		if err != nil {
			m.session.SaveError = err
		}
		result.ID = id
	}
	m.session.Results = append(m.session.Results, result)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sweeper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game screen and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())
	if m.help.ShowAll {
		helpView = m.help.FullHelpView(m.keyMapper.Keys().FullHelp())
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Session returns what has been played so far.
func (m Model) Session() Session {
	return *m.session
}

// Run starts the Bubble Tea program and returns the session once the
// player quits.
func Run(game Game, board Board, store *storage.Store, cfg core.RuntimeConfig) (Session, error) {
	model := NewModel(game, board, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to reveal, right click to flag
	)

	_, err := p.Run()
	return model.Session(), err
}
