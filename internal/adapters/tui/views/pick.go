package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"launchdex/internal/adapters/tui/styles"
	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// PickKeyMap defines key bindings for the picker
type PickKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Complete key.Binding
	Select   key.Binding
	Copy     key.Binding
	Cancel   key.Binding
}

var PickKeys = PickKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// CandidatesMsg delivers the newline-terminated candidate lines
type CandidatesMsg struct {
	Lines string
}

// chromeHeight is the number of rows used around the candidate list
const chromeHeight = 10

// PickModel lets the user filter candidate lines and choose one
type PickModel struct {
	ViewState

	prompt    string
	input     textinput.Model
	lines     []string
	filtered  []string
	paginator *Paginator
	loaded    bool

	choice    string
	cancelled bool

	copy func(string) error
}

// NewPickModel creates a picker showing prompt above the query input
func NewPickModel(prompt string) *PickModel {
	input := textinput.New()
	input.Placeholder = "Type to filter, add arguments after the colon..."
	input.Prompt = "> "
	input.Focus()

	if prompt == "" {
		prompt = "run"
	}

	return &PickModel{
		prompt:    prompt,
		input:     input,
		paginator: NewPaginator(10),
		copy:      clipboard.WriteAll,
	}
}

// Init initializes the picker
func (m *PickModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetCandidates replaces the candidate lines
func (m *PickModel) SetCandidates(text string) {
	m.lines = m.lines[:0]
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			m.lines = append(m.lines, line)
		}
	}
	m.loaded = true
	m.refilter()
}

// Result returns the chosen line, or ports.ErrSelectionCancelled
func (m *PickModel) Result() (string, error) {
	if m.cancelled || m.choice == "" {
		return "", ports.ErrSelectionCancelled
	}
	return m.choice, nil
}

// Update handles messages for the picker
func (m *PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.paginator.SetPageSize(msg.Height - chromeHeight)
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case CandidatesMsg:
		m.SetCandidates(msg.Lines)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickKeys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, PickKeys.Select):
			m.choice = m.resolve()
			if m.choice == "" {
				m.cancelled = true
			}
			return m, tea.Quit

		case key.Matches(msg, PickKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, PickKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, PickKeys.PageUp):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, PickKeys.PageDown):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, PickKeys.Complete):
			if line, ok := m.highlighted(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
				m.refilter()
			}
			return m, nil

		case key.Matches(msg, PickKeys.Copy):
			if line, ok := m.highlighted(); ok {
				if err := m.copy(line); err != nil {
					m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
				} else {
					m.SetMessage("copied "+strings.TrimSpace(line), false)
				}
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.ClearMessage()
		m.refilter()
	}
	return m, cmd
}

// resolve picks the line handed back to the caller: the typed query when
// it already names a candidate (so typed arguments survive), otherwise the
// highlighted candidate, otherwise the raw query.
func (m *PickModel) resolve() string {
	query := m.input.Value()
	if m.labelPrefixOf(query) >= 0 {
		return query
	}
	if line, ok := m.highlighted(); ok {
		return line
	}
	return strings.TrimSpace(query)
}

// labelPrefixOf returns the index of the first candidate whose label and
// delimiter start query, or -1
func (m *PickModel) labelPrefixOf(query string) int {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1
	}
	return slices.IndexFunc(m.lines, func(line string) bool {
		return strings.HasPrefix(query, strings.TrimRight(line, " "))
	})
}

func (m *PickModel) highlighted() (string, bool) {
	if len(m.filtered) == 0 {
		return "", false
	}
	return m.filtered[m.paginator.Cursor()], true
}

// refilter narrows the candidates to the query and resets the highlight
func (m *PickModel) refilter() {
	query := m.input.Value()
	if i := m.labelPrefixOf(query); i >= 0 {
		m.filtered = []string{m.lines[i]}
	} else {
		m.filtered = FilterLines(m.lines, query)
	}
	m.paginator.SetTotal(len(m.filtered))
	m.paginator.SetCursor(0)
}

// FilterLines keeps the lines that fuzzy-match query, best match first.
// Equal scores keep their incoming (frecency) order.
func FilterLines(lines []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(lines)
	}

	type scored struct {
		line  string
		score int
	}
	matches := make([]scored, 0, len(lines))
	for _, line := range lines {
		if s := domain.FuzzyScore(line, query); s > 0 {
			matches = append(matches, scored{line: line, score: s})
		}
	}
	slices.SortStableFunc(matches, func(a, b scored) int {
		return b.score - a.score
	})

	out := make([]string, len(matches))
	for i, s := range matches {
		out[i] = s.line
	}
	return out
}

// View renders the picker
func (m *PickModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.prompt))
	b.WriteString("\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(styles.MutedText.Render("Loading programs..."))
	case len(m.filtered) == 0:
		b.WriteString(styles.MutedText.Render("No matching programs"))
	default:
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderLine(m.filtered[i], i == m.paginator.Cursor()))
			b.WriteString("\n")
		}
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d/%d programs · page %d/%d",
			len(m.filtered), len(m.lines), m.paginator.CurrentPage(), m.paginator.TotalPages())))
	}
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("complete"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("launch"),
		styles.HelpKey.Render("ctrl+y"),
		styles.HelpDesc.Render("copy"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}

func (m *PickModel) renderLine(line string, selected bool) string {
	if selected {
		return styles.CandidateSelected.Render(line)
	}
	code, rest, ok := strings.Cut(line, "]")
	if !ok {
		return styles.Candidate.Render(line)
	}
	return styles.SourceBadge(code) + styles.MutedText.Render("]") + styles.Candidate.Render(rest)
}
