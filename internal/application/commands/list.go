package commands

import (
	"context"
	"fmt"
	"time"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// ListCommand returns the catalog in display order
type ListCommand struct {
	index   ports.IndexStore
	history ports.HistoryStore
	Now     func() time.Time
	Query   string
	Limit   int
}

// NewListCommand creates a new ListCommand. A zero limit lists everything.
func NewListCommand(index ports.IndexStore, history ports.HistoryStore, query string, limit int) *ListCommand {
	return &ListCommand{
		index:   index,
		history: history,
		Now:     time.Now,
		Query:   query,
		Limit:   limit,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.RankedProgram, error) {
	programs, err := c.index.Load()
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	history, err := c.history.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	ranked := domain.FilterRanked(domain.RankPrograms(programs, history, c.Now()), c.Query)
	if c.Limit > 0 && len(ranked) > c.Limit {
		ranked = ranked[:c.Limit]
	}
	return ranked, nil
}
