package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// SetupKeyMap defines the key bindings for the setup screen.
type SetupKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Less   key.Binding
	More   key.Binding
	Select key.Binding
	Stats  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Less, k.More, k.Select, k.Stats, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓", "down"),
		),
		Less: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "less"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "more"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "stats"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setupRow is one line of the setup list.
type setupRow int

const (
	rowCustomSize setupRow = iota
	rowCustomMines
)

// SetupModel lets the player pick a preset or a custom board.
type SetupModel struct {
	presets  []string
	cfg      config.Config
	custom   config.BoardConfig
	cursor   int // Index into presets, then the two custom rows
	keys     SetupKeyMap
	help     help.Model
	width    int
	height   int
	chosen   *config.BoardConfig
	preset   string
	stats    bool
	quitting bool
}

// NewSetupModel creates a setup screen seeded with cfg's board as the
// custom values.
func NewSetupModel(cfg config.Config, width, height int) SetupModel {
	h := help.New()
	h.Width = width
	m := SetupModel{
		presets: cfg.PresetNames(),
		cfg:     cfg,
		custom:  cfg.Board,
		keys:    DefaultSetupKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	// Start on the preset matching the configured board, if any.
	for i, name := range m.presets {
		if cfg.Presets[name] == cfg.Board {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m SetupModel) rows() int {
	return len(m.presets) + 2
}

// customRow reports which custom row the cursor is on, if any.
func (m SetupModel) customRow() (setupRow, bool) {
	if m.cursor < len(m.presets) {
		return 0, false
	}
	return setupRow(m.cursor - len(m.presets)), true
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stats):
		m.stats = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + m.rows()) % m.rows()

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % m.rows()

	case key.Matches(msg, m.keys.Less):
		m.adjust(-1)

	case key.Matches(msg, m.keys.More):
		m.adjust(1)

	case key.Matches(msg, m.keys.Select):
		if _, custom := m.customRow(); custom {
			board := m.custom
			m.chosen = &board
			m.preset = ""
		} else {
			name := m.presets[m.cursor]
			board := m.cfg.Presets[name]
			m.chosen = &board
			m.preset = name
		}
		return m, tea.Quit
	}
	return m, nil
}

// adjust changes the custom field under the cursor, keeping the board valid.
func (m *SetupModel) adjust(delta int) {
	row, ok := m.customRow()
	if !ok {
		return
	}
	switch row {
	case rowCustomSize:
		m.custom.Size = core.Clamp(m.custom.Size+delta, 1, config.MaxBoardSize)
		m.custom.Mines = min(m.custom.Mines, m.custom.Size*m.custom.Size)
	case rowCustomMines:
		m.custom.Mines = core.Clamp(m.custom.Mines+delta, 0, m.custom.Size*m.custom.Size)
	}
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M I N E S W E E P E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a board", m.width))
	b.WriteString("\n\n")

	line := func(i int, text string) {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selStyle
		}
		b.WriteString(centerText(style.Render(cursor+text), m.width))
		b.WriteString("\n")
	}

	for i, name := range m.presets {
		p := m.cfg.Presets[name]
		line(i, fmt.Sprintf("%-13s %2dx%-2d %3d mines", name, p.Size, p.Size, p.Mines))
	}
	b.WriteString("\n")
	line(len(m.presets), fmt.Sprintf("custom size   < %2d >", m.custom.Size))
	line(len(m.presets)+1, fmt.Sprintf("custom mines  < %3d > %4.1f%%", m.custom.Mines, m.custom.Density()*100))

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers text within given width. Width is measured without
// ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// SetupResult holds the outcome of the setup screen.
type SetupResult struct {
	Board     config.BoardConfig
	Preset    string // Empty for a custom board
	WantStats bool
	Quit      bool
}

// Result converts the final model state.
func (m SetupModel) Result() SetupResult {
	switch {
	case m.stats:
		return SetupResult{WantStats: true}
	case m.chosen != nil:
		return SetupResult{Board: *m.chosen, Preset: m.preset}
	default:
		return SetupResult{Quit: true}
	}
}

// RunSetup runs the setup screen.
func RunSetup(cfg config.Config, width, height int) (SetupResult, error) {
	p := tea.NewProgram(NewSetupModel(cfg, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Quit: true}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Quit: true}, nil
	}
	return m.Result(), nil
}
