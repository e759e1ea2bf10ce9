package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// HistoryEntry is one history record joined with the index
type HistoryEntry struct {
	Key     string
	Record  domain.HistoryRecord
	Score   float64
	Program domain.Program
	Stale   bool // No indexed program has this key any more
}

// HistoryCommand lists launch statistics, most relevant first
type HistoryCommand struct {
	index   ports.IndexStore
	history ports.HistoryStore
	Now     func() time.Time
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(index ports.IndexStore, history ports.HistoryStore, limit int) *HistoryCommand {
	return &HistoryCommand{
		index:   index,
		history: history,
		Now:     time.Now,
		Limit:   limit,
	}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]HistoryEntry, error) {
	history, err := c.history.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	programs, err := c.index.Load()
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	byKey := make(map[string]domain.Program, len(programs))
	for _, p := range programs {
		byKey[p.Key()] = p
	}

	now := c.Now()
	entries := make([]HistoryEntry, 0, len(history))
	for key, rec := range history {
		p, ok := byKey[key]
		entries = append(entries, HistoryEntry{
			Key:     key,
			Record:  rec,
			Score:   domain.Frecency(rec, now),
			Program: p,
			Stale:   !ok,
		})
	}

	slices.SortFunc(entries, func(a, b HistoryEntry) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Key, b.Key)
	})

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	return entries, nil
}
