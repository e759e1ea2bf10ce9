// Package picker drives an external line picker (wlines, dmenu, fzf, ...)
// over its standard streams.
package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"launchdex/internal/ports"
)

// Process implements ports.Picker by spawning a picker command
type Process struct {
	command  string
	baseArgs []string
}

// Ensure Process implements Picker
var _ ports.Picker = (*Process)(nil)

// NewProcess creates a picker that runs command with baseArgs followed by
// the per-invocation arguments
func NewProcess(command string, baseArgs []string) *Process {
	return &Process{command: command, baseArgs: baseArgs}
}

// Command returns the exec.Cmd that Start would run
func (p *Process) Command(ctx context.Context, args []string) *exec.Cmd {
	all := make([]string, 0, len(p.baseArgs)+len(args))
	all = append(all, p.baseArgs...)
	all = append(all, args...)

	cmd := exec.CommandContext(ctx, p.command, all...)
	cmd.Stderr = os.Stderr
	// Children of a killed picker may still hold stdout open
	cmd.WaitDelay = time.Second
	return cmd
}

// Start spawns the picker with a piped stdin and a captured stdout
func (p *Process) Start(ctx context.Context, args []string) (ports.PickerSession, error) {
	cmd := p.Command(ctx, args)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open picker stdin: %w", err)
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", p.command, err)
	}

	return &session{cmd: cmd, stdin: stdin, stdout: &stdout}, nil
}

type session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bytes.Buffer
}

// Choose writes every candidate, closes stdin and waits for the picker.
// A picker that exits unsuccessfully is a cancellation. A successful exit
// with no output yields an empty line, which matches no candidate.
func (s *session) Choose(candidates string) (string, error) {
	_, writeErr := io.WriteString(s.stdin, candidates)
	closeErr := s.stdin.Close()

	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", ports.ErrSelectionCancelled
		}
		return "", fmt.Errorf("picker failed: %w", err)
	}

	// A picker may exit without reading all of its input
	if writeErr != nil && !errors.Is(writeErr, syscall.EPIPE) && !errors.Is(writeErr, os.ErrClosed) {
		return "", fmt.Errorf("failed to send candidates: %w", writeErr)
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return "", fmt.Errorf("failed to send candidates: %w", closeErr)
	}

	return strings.TrimRight(s.stdout.String(), "\r\n"), nil
}

// Abort kills the picker and reaps it
func (s *session) Abort() error {
	s.stdin.Close()
	if s.cmd.Process == nil {
		return nil
	}
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	_ = s.cmd.Wait()
	return nil
}
