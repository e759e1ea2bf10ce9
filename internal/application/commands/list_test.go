package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"launchdex/internal/application"
	"launchdex/internal/domain"
)

func TestListCommand(t *testing.T) {
	index := &memIndex{programs: []domain.Program{vim, notepad, calc}}
	history := &memHistory{history: domain.History{
		notepad.Key(): {Rank: 2, Access: testNow.Unix()},
	}}

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "everything ranked", want: []string{notepad.Path, calc.Path, vim.Path}},
		{name: "limited", limit: 2, want: []string{notepad.Path, calc.Path}},
		{name: "fuzzy query", query: "vi", want: []string{vim.Path}},
		{name: "no match", query: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewListCommand(index, history, tt.query, tt.limit)
			cmd.Now = func() time.Time { return testNow }

			got, err := cmd.Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, w := range tt.want {
				if got[i].Path != w {
					t.Errorf("position %d: expected %s, got %s", i, w, got[i].Path)
				}
			}
		})
	}
}

func TestHistoryCommand(t *testing.T) {
	index := &memIndex{programs: []domain.Program{vim, notepad}}
	history := &memHistory{history: domain.History{
		notepad.Key():   {Rank: 1, Access: testNow.Unix() - 10000},
		vim.Key():       {Rank: 8, Access: testNow.Unix() - 5},
		`c:\gone\x.exe`: {Rank: 3, Access: testNow.Unix() - 60},
	}}

	cmd := NewHistoryCommand(index, history, 0)
	cmd.Now = func() time.Time { return testNow }

	entries, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantKeys := []string{vim.Key(), `c:\gone\x.exe`, notepad.Key()}
	for i, w := range wantKeys {
		if entries[i].Key != w {
			t.Errorf("position %d: expected %s, got %s", i, w, entries[i].Key)
		}
	}
	if !entries[1].Stale {
		t.Error("expected record without indexed program to be stale")
	}
	if entries[0].Stale || entries[0].Program.Path != vim.Path {
		t.Errorf("expected vim to be joined with the index, got %+v", entries[0])
	}
	if history.saves != 0 {
		t.Error("history command must not write")
	}
}

func TestLaunchCommand_Execute(t *testing.T) {
	launcher := &fakeLauncher{}
	history := &memHistory{}
	cmd := NewLaunchCommand(launcher, history, func() time.Time { return testNow })

	rec, err := cmd.Execute(context.Background(), vim, []string{"-R"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Rank != 1 {
		t.Errorf("expected rank 1, got %d", rec.Rank)
	}

	rec, err = cmd.Execute(context.Background(), vim, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Rank != 2 {
		t.Errorf("expected rank 2, got %d", rec.Rank)
	}
	if len(launcher.calls) != 2 {
		t.Errorf("expected 2 launches, got %d", len(launcher.calls))
	}

	if _, err := cmd.Execute(context.Background(), domain.Program{}, nil); err == nil {
		t.Error("expected validation error for empty program path")
	}
}

func TestLaunchPathCommand(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantPath  string
		wantErrIs error
	}{
		{name: "exact path", path: notepad.Path, wantPath: notepad.Path},
		{name: "case-insensitive", path: strings.ToUpper(notepad.Path), wantPath: notepad.Path},
		{name: "not indexed", path: `C:\Windows\regedit.exe`, wantErrIs: application.ErrNotIndexed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := &fakeLauncher{}
			history := &memHistory{}
			index := &memIndex{programs: []domain.Program{vim, notepad}}
			cmd := NewLaunchPathCommand(index, launcher, history, func() time.Time { return testNow })

			p, rec, err := cmd.Execute(context.Background(), tt.path, []string{"a.txt"})
			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("expected %v, got %v", tt.wantErrIs, err)
				}
				if len(launcher.calls) != 0 || history.saves != 0 {
					t.Error("expected no side effects")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Path != tt.wantPath || launcher.calls[0].path != tt.wantPath {
				t.Errorf("expected launch of %s, got %s", tt.wantPath, p.Path)
			}
			if rec.Rank != 1 || history.history[notepad.Key()].Rank != 1 {
				t.Errorf("expected launch recorded, got %+v", rec)
			}
		})
	}
}

func TestLaunchPathCommand_EmptyPath(t *testing.T) {
	cmd := NewLaunchPathCommand(&memIndex{}, &fakeLauncher{}, &memHistory{}, nil)

	_, _, err := cmd.Execute(context.Background(), "  ", nil)
	var ve *application.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
