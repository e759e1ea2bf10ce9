package launcher

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"testing"
	"time"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name string
		goos string
		path string
		args []string
		want []string
	}{
		{
			name: "windows uses start",
			goos: "windows",
			path: `C:\Windows\notepad.exe`,
			args: []string{"my notes.txt"},
			want: []string{"cmd", "/c", "start", "", `C:\Windows\notepad.exe`, "my notes.txt"},
		},
		{
			name: "windows without args",
			goos: "windows",
			path: `C:\Menu\Paint.lnk`,
			want: []string{"cmd", "/c", "start", "", `C:\Menu\Paint.lnk`},
		},
		{
			name: "unix runs directly",
			goos: "linux",
			path: "/usr/bin/vim",
			args: []string{"-R", "file"},
			want: []string{"/usr/bin/vim", "-R", "file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Launcher{goos: tt.goos}
			cmd, err := l.Command(tt.path, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, cmd.Args)
			}
		})
	}
}

func TestCommand_EmptyPath(t *testing.T) {
	if _, err := New().Command("", nil); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestLaunch_StartsDetached(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script")
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "launched")
	script := filepath.Join(dir, "tool.sh")
	content := "#!/bin/sh\necho \"$1\" > \"" + marker + "\"\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}

	if err := New().Launch(script, []string{"hello world"}); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		data, err := os.ReadFile(marker)
		if err == nil && string(data) == "hello world\n" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("program did not run with its argument (got %q, err %v)", data, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestLaunch_MissingProgram(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("start reports missing programs asynchronously")
	}
	if err := New().Launch(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("expected error for missing program")
	}
}

// zombieChildren counts exited but unreaped children of this process
func zombieChildren(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc")
	if err != nil {
		t.Fatalf("failed to read /proc: %v", err)
	}
	self := strconv.Itoa(os.Getpid())
	count := 0
	for _, e := range entries {
		if _, err := strconv.Atoi(e.Name()); err != nil {
			continue
		}
		stat, err := os.ReadFile(filepath.Join("/proc", e.Name(), "stat"))
		if err != nil {
			continue // exited meanwhile
		}
		// pid (comm) state ppid ...; comm may contain spaces
		end := bytes.LastIndexByte(stat, ')')
		if end < 0 {
			continue
		}
		fields := bytes.Fields(stat[end+1:])
		if len(fields) >= 2 && string(fields[0]) == "Z" && string(fields[1]) == self {
			count++
		}
	}
	return count
}

func TestLaunch_ReapsChildren(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("inspects /proc")
	}
	truePath := "/bin/true"
	if _, err := os.Stat(truePath); err != nil {
		t.Skip("no /bin/true")
	}

	l := New()
	for range 3 {
		if err := l.Launch(truePath, nil); err != nil {
			t.Fatalf("Launch failed: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		n := zombieChildren(t)
		if n == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected launched programs to be reaped, %d zombies left", n)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
