package views

import (
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"launchdex/internal/ports"
)

const testCandidates = "P] vim.exe: \nS] Accessories\\Paint.lnk: \nP] notepad.exe: \n"

func newTestPicker() *PickModel {
	m := NewPickModel("run")
	m.copy = func(string) error { return nil }
	m.Update(CandidatesMsg{Lines: testCandidates})
	return m
}

func typeText(m *PickModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *PickModel, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPickModel_EnterReturnsHighlighted(t *testing.T) {
	m := newTestPicker()

	if !isQuit(press(m, tea.KeyEnter)) {
		t.Fatal("expected enter to quit")
	}
	got, err := m.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "P] vim.exe: " {
		t.Errorf("expected first candidate, got %q", got)
	}
}

func TestPickModel_FilterThenSelect(t *testing.T) {
	m := newTestPicker()
	typeText(m, "paint")

	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 match, got %q", m.filtered)
	}
	press(m, tea.KeyEnter)

	got, _ := m.Result()
	if got != `S] Accessories\Paint.lnk: ` {
		t.Errorf("unexpected choice %q", got)
	}
}

func TestPickModel_NavigateDown(t *testing.T) {
	m := newTestPicker()
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyDown) // stays on the last line
	press(m, tea.KeyEnter)

	got, _ := m.Result()
	if got != "P] notepad.exe: " {
		t.Errorf("unexpected choice %q", got)
	}
}

func TestPickModel_CompleteKeepsTypedArguments(t *testing.T) {
	m := newTestPicker()
	typeText(m, "note")
	press(m, tea.KeyTab)

	if m.input.Value() != "P] notepad.exe: " {
		t.Fatalf("expected completion, got %q", m.input.Value())
	}

	typeText(m, `"my notes.txt"`)
	if len(m.filtered) != 1 || m.filtered[0] != "P] notepad.exe: " {
		t.Errorf("expected the named candidate to stay highlighted, got %q", m.filtered)
	}

	press(m, tea.KeyEnter)
	got, err := m.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `P] notepad.exe: "my notes.txt"` {
		t.Errorf("expected typed arguments to survive, got %q", got)
	}
}

func TestPickModel_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestPicker()
		if !isQuit(press(m, k)) {
			t.Fatalf("expected %v to quit", k)
		}
		if _, err := m.Result(); !errors.Is(err, ports.ErrSelectionCancelled) {
			t.Errorf("expected cancellation for %v, got %v", k, err)
		}
	}
}

func TestPickModel_NoMatchReturnsQuery(t *testing.T) {
	m := newTestPicker()
	typeText(m, "zzqq")

	if len(m.filtered) != 0 {
		t.Fatalf("expected no matches, got %q", m.filtered)
	}
	press(m, tea.KeyEnter)

	got, err := m.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "zzqq" {
		t.Errorf("expected raw query, got %q", got)
	}
}

func TestPickModel_EmptyCatalogCancels(t *testing.T) {
	m := NewPickModel("")
	m.Update(CandidatesMsg{Lines: ""})
	press(m, tea.KeyEnter)

	if _, err := m.Result(); !errors.Is(err, ports.ErrSelectionCancelled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}

func TestPickModel_CopyHighlighted(t *testing.T) {
	m := newTestPicker()
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	press(m, tea.KeyCtrlY)
	if copied != "P] vim.exe: " {
		t.Errorf("expected highlighted line copied, got %q", copied)
	}
	if m.MessageErr || !strings.Contains(m.Message, "copied") {
		t.Errorf("expected success message, got %q", m.Message)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	press(m, tea.KeyCtrlY)
	if !m.MessageErr {
		t.Error("expected error message when copy fails")
	}
}

func TestPickModel_ViewStates(t *testing.T) {
	m := NewPickModel("launch")
	if !strings.Contains(m.View(), "Loading programs") {
		t.Error("expected loading state before candidates arrive")
	}

	m.Update(CandidatesMsg{Lines: testCandidates})
	view := m.View()
	if !strings.Contains(view, "launch") || !strings.Contains(view, "notepad.exe") {
		t.Errorf("expected prompt and candidates in view")
	}

	typeText(m, "zzqq")
	if !strings.Contains(m.View(), "No matching programs") {
		t.Error("expected empty state")
	}
}

func TestFilterLines(t *testing.T) {
	lines := []string{"P] vim.exe: ", "P] gvim.exe: ", "S] Games\\Solitaire.lnk: "}

	if got := FilterLines(lines, ""); !slices.Equal(got, lines) {
		t.Errorf("empty query should keep everything, got %q", got)
	}

	got := FilterLines(lines, "vim")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %q", got)
	}
	if !slices.Contains(got, "P] vim.exe: ") || !slices.Contains(got, "P] gvim.exe: ") {
		t.Errorf("unexpected matches %q", got)
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(5)

	if start, end := p.VisibleRange(); start != 0 || end != 2 {
		t.Errorf("expected [0,2), got [%d,%d)", start, end)
	}

	p.CursorDown()
	p.CursorDown()
	if p.Cursor() != 2 || p.CurrentPage() != 2 {
		t.Errorf("expected cursor 2 on page 2, got %d on %d", p.Cursor(), p.CurrentPage())
	}

	if !p.NextPage() || p.Cursor() != 4 {
		t.Errorf("expected cursor 4 after next page, got %d", p.Cursor())
	}
	if p.NextPage() {
		t.Error("expected no page after the last")
	}
	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}

	p.SetTotal(1)
	if p.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", p.Cursor())
	}

	p.SetTotal(0)
	p.SetCursor(3)
	if p.Cursor() != 0 {
		t.Errorf("expected cursor 0 with no items, got %d", p.Cursor())
	}
}
