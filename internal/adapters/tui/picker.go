// Package tui provides the built-in terminal picker.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"launchdex/internal/adapters/tui/views"
	"launchdex/internal/ports"
)

// Picker implements ports.Picker with a bubbletea program
type Picker struct {
	input  io.Reader
	output io.Writer
}

// Ensure Picker implements Picker
var _ ports.Picker = (*Picker)(nil)

// Option configures the Picker
type Option func(*Picker)

// WithIO sets the terminal streams. By default the picker reads stdin and
// draws on stderr so stdout stays free for scripting.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *Picker) {
		p.input = in
		p.output = out
	}
}

// NewPicker creates a new built-in picker
func NewPicker(opts ...Option) *Picker {
	p := &Picker{
		input:  os.Stdin,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start opens the picker right away with a loading state. The arguments
// are joined into the prompt title.
func (p *Picker) Start(ctx context.Context, args []string) (ports.PickerSession, error) {
	model := views.NewPickModel(strings.Join(args, " "))
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
	)

	s := &session{program: program, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		s.final, s.err = program.Run()
	}()
	return s, nil
}

type session struct {
	program *tea.Program
	done    chan struct{}
	final   tea.Model
	err     error
}

// Choose hands the candidates to the running program and waits for it to quit
func (s *session) Choose(candidates string) (string, error) {
	s.program.Send(views.CandidatesMsg{Lines: candidates})
	<-s.done

	if s.err != nil {
		if errors.Is(s.err, tea.ErrProgramKilled) {
			return "", ports.ErrSelectionCancelled
		}
		return "", fmt.Errorf("picker failed: %w", s.err)
	}
	model, ok := s.final.(*views.PickModel)
	if !ok {
		return "", fmt.Errorf("picker returned unexpected model %T", s.final)
	}
	return model.Result()
}

// Abort stops the program and restores the terminal
func (s *session) Abort() error {
	s.program.Kill()
	<-s.done
	return nil
}
