package commands

import (
	"context"
	"errors"
	"strings"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

type fakePicker struct {
	answer    string
	err       error // returned by Choose
	startErr  error
	started   bool
	args      []string
	received  string
	chooseHit bool
	aborted   bool
}

func (p *fakePicker) Start(_ context.Context, args []string) (ports.PickerSession, error) {
	if p.startErr != nil {
		return nil, p.startErr
	}
	p.started = true
	p.args = args
	return p, nil
}

func (p *fakePicker) Choose(candidates string) (string, error) {
	p.chooseHit = true
	p.received = candidates
	if p.err != nil {
		return "", p.err
	}
	return p.answer, nil
}

func (p *fakePicker) Abort() error {
	p.aborted = true
	return nil
}

type launchCall struct {
	path string
	args []string
}

type fakeLauncher struct {
	calls []launchCall
	err   error
}

func (l *fakeLauncher) Launch(path string, args []string) error {
	if l.err != nil {
		return l.err
	}
	l.calls = append(l.calls, launchCall{path: path, args: args})
	return nil
}

type memIndex struct {
	programs []domain.Program
	loadErr  error
	saved    []domain.Program
	saves    int
}

func (s *memIndex) Load() ([]domain.Program, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.programs, nil
}

func (s *memIndex) Save(programs []domain.Program) error {
	s.saves++
	s.saved = programs
	s.programs = programs
	return nil
}

type memHistory struct {
	history domain.History
	loadErr error
	saves   int
}

func (s *memHistory) Load() (domain.History, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.history == nil {
		return domain.NewHistory(), nil
	}
	return s.history.Clone(), nil
}

func (s *memHistory) Save(h domain.History) error {
	s.saves++
	s.history = h.Clone()
	return nil
}

type fakeScanner struct {
	catalog domain.Catalog
	roots   []domain.Root
	err     error
}

func (s *fakeScanner) Scan(roots []domain.Root) (domain.Catalog, error) {
	s.roots = roots
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

var errBoom = errors.New("boom")

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
