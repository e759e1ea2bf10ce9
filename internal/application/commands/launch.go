package commands

import (
	"context"
	"fmt"
	"slices"
	"time"

	"launchdex/internal/application"
	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// LaunchCommand starts a program and records the launch in the history
type LaunchCommand struct {
	launcher ports.Launcher
	history  ports.HistoryStore
	now      func() time.Time
}

// NewLaunchCommand creates a new LaunchCommand
func NewLaunchCommand(launcher ports.Launcher, history ports.HistoryStore, now func() time.Time) *LaunchCommand {
	if now == nil {
		now = time.Now
	}
	return &LaunchCommand{
		launcher: launcher,
		history:  history,
		now:      now,
	}
}

// Execute loads the history, then launches p and records it
func (c *LaunchCommand) Execute(ctx context.Context, p domain.Program, args []string) (domain.HistoryRecord, error) {
	h, err := c.history.Load()
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("load history: %w", err)
	}
	return c.Launch(ctx, h, p, args)
}

// Launch starts p with args, records the launch in h and persists h.
// Nothing is recorded when the launch itself fails.
func (c *LaunchCommand) Launch(ctx context.Context, h domain.History, p domain.Program, args []string) (domain.HistoryRecord, error) {
	if err := application.ValidateRequired("path", p.Path); err != nil {
		return domain.HistoryRecord{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.HistoryRecord{}, err
	}

	if err := c.launcher.Launch(p.Path, args); err != nil {
		return domain.HistoryRecord{}, &application.LaunchError{Path: p.Path, Err: err}
	}

	if h == nil {
		h = domain.NewHistory()
	}
	rec := h.Record(p.Key(), c.now())
	if err := c.history.Save(h); err != nil {
		return rec, fmt.Errorf("save history: %w", err)
	}
	return rec, nil
}

// LaunchPathCommand launches an indexed program given its path
type LaunchPathCommand struct {
	index  ports.IndexStore
	launch *LaunchCommand
}

// NewLaunchPathCommand creates a new LaunchPathCommand
func NewLaunchPathCommand(index ports.IndexStore, launcher ports.Launcher, history ports.HistoryStore, now func() time.Time) *LaunchPathCommand {
	return &LaunchPathCommand{
		index:  index,
		launch: NewLaunchCommand(launcher, history, now),
	}
}

// Execute looks path up in the index (case-insensitively) and launches it.
// Paths that are not indexed are refused with ErrNotIndexed.
func (c *LaunchPathCommand) Execute(ctx context.Context, path string, args []string) (domain.Program, domain.HistoryRecord, error) {
	if err := application.ValidateRequired("path", path); err != nil {
		return domain.Program{}, domain.HistoryRecord{}, err
	}

	programs, err := c.index.Load()
	if err != nil {
		return domain.Program{}, domain.HistoryRecord{}, fmt.Errorf("load index: %w", err)
	}

	key := domain.CanonicalPath(path)
	idx := slices.IndexFunc(programs, func(p domain.Program) bool { return p.Key() == key })
	if idx < 0 {
		return domain.Program{}, domain.HistoryRecord{}, fmt.Errorf("%w: %s", application.ErrNotIndexed, path)
	}

	p := programs[idx]
	rec, err := c.launch.Execute(ctx, p, args)
	return p, rec, err
}
