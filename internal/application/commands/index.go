package commands

import (
	"context"
	"fmt"
	"time"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// IndexResult contains the result of an index rebuild
type IndexResult struct {
	Count    int
	Duration time.Duration
}

// BuildIndexCommand rescans every root and replaces the persisted index
type BuildIndexCommand struct {
	scanner ports.ProgramScanner
	index   ports.IndexStore
	Roots   []domain.Root
}

// NewBuildIndexCommand creates a new BuildIndexCommand
func NewBuildIndexCommand(scanner ports.ProgramScanner, index ports.IndexStore, roots []domain.Root) *BuildIndexCommand {
	return &BuildIndexCommand{
		scanner: scanner,
		index:   index,
		Roots:   roots,
	}
}

// Execute runs the index rebuild
func (c *BuildIndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build index canceled: %w", err)
	}

	start := time.Now()
	catalog, err := c.scanner.Scan(c.Roots)
	if err != nil {
		return nil, fmt.Errorf("scan programs: %w", err)
	}

	programs := catalog.Programs()
	if err := c.index.Save(programs); err != nil {
		return nil, fmt.Errorf("save index: %w", err)
	}

	return &IndexResult{
		Count:    len(programs),
		Duration: time.Since(start),
	}, nil
}
