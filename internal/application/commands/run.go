package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// RunResult contains the program that was launched and its arguments
type RunResult struct {
	Program domain.Program
	Args    []string
	Record  domain.HistoryRecord
}

// RunCommand shows the ranked catalog in the picker and launches the choice
type RunCommand struct {
	picker  ports.Picker
	index   ports.IndexStore
	history ports.HistoryStore
	launch  *LaunchCommand

	now    func() time.Time
	logger *log.Logger
}

// RunOption configures a RunCommand
type RunOption func(*RunCommand)

// WithClock sets the time source used for scoring and history
func WithClock(now func() time.Time) RunOption {
	return func(c *RunCommand) {
		c.now = now
	}
}

// WithLogger sets the logger for progress messages
func WithLogger(logger *log.Logger) RunOption {
	return func(c *RunCommand) {
		c.logger = logger
	}
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	picker ports.Picker,
	index ports.IndexStore,
	history ports.HistoryStore,
	launcher ports.Launcher,
	opts ...RunOption,
) *RunCommand {
	c := &RunCommand{
		picker:  picker,
		index:   index,
		history: history,
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.launch = NewLaunchCommand(launcher, history, c.now)
	return c
}

// Execute runs one pick-and-launch round.
//
// The picker is started before the index and history are read so its
// start-up overlaps with the file I/O. A cancelled pick returns
// ports.ErrSelectionCancelled; an answer that matches no candidate returns
// an error wrapping domain.ErrUnmatchedSelection. History is only written
// after a successful launch.
func (c *RunCommand) Execute(ctx context.Context, pickerArgs []string) (*RunResult, error) {
	session, err := c.picker.Start(ctx, pickerArgs)
	if err != nil {
		return nil, fmt.Errorf("start picker: %w", err)
	}

	programs, history, err := c.load()
	if err != nil {
		if abortErr := session.Abort(); abortErr != nil {
			c.logger.Debug("abort picker", "err", abortErr)
		}
		return nil, err
	}

	ranked := domain.Programs(domain.RankPrograms(programs, history, c.now()))

	line, err := session.Choose(domain.RenderCandidates(ranked))
	if err != nil {
		if errors.Is(err, ports.ErrSelectionCancelled) {
			return nil, err
		}
		return nil, fmt.Errorf("read picker selection: %w", err)
	}

	sel, err := domain.ParseSelection(line, ranked)
	if err != nil {
		return nil, err
	}

	c.logger.Info("starting", "path", sel.Program.Path, "args", sel.Args)
	rec, err := c.launch.Launch(ctx, history, sel.Program, sel.Args)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		Program: sel.Program,
		Args:    sel.Args,
		Record:  rec,
	}, nil
}

func (c *RunCommand) load() ([]domain.Program, domain.History, error) {
	programs, err := c.index.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load index: %w", err)
	}
	c.logger.Debug("loaded indexed programs", "count", len(programs))

	history, err := c.history.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load history: %w", err)
	}
	c.logger.Debug("loaded history", "records", len(history))

	return programs, history, nil
}
