package history

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/scenestep/scene"
)

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.New(buf, "", 0)
}

func TestStorePath(t *testing.T) {
	cases := []struct {
		name string
		file string
		want string
	}{
		{"adds_txt", "chapter1", "chapter1.txt"},
		{"keeps_ext", "chapter1.hist", "chapter1.hist"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore("saves", c.file, nil)
			if got := s.Path(); got != filepath.Join("saves", c.want) {
				t.Fatalf("Path() = %q", got)
			}
		})
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	s := NewStore(dir, "progress", quietLogger(&bytes.Buffer{}))

	p := scene.NewProgress(5, 0)
	p.MarkVisited()
	p.AdvanceToNext()
	p.MarkVisited()
	p.AdvanceToNext()
	p.AdvanceToNext()
	p.MarkVisited()

	if err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "3\nTrue\nTrue\nFalse\nTrue\nFalse\n" {
		t.Fatalf("unexpected file contents %q", string(data))
	}

	restored := scene.NewProgress(5, 0)
	if err := s.Load(restored); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Current() != p.Current() {
		t.Fatalf("current = %d, want %d", restored.Current(), p.Current())
	}
	for i := 0; i < p.Len(); i++ {
		if restored.Visited(i) != p.Visited(i) {
			t.Fatalf("visited[%d] = %v, want %v", i, restored.Visited(i), p.Visited(i))
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the history file in %s, found %d entries", dir, len(entries))
	}
}

func TestStoreLoadMissingFileKeepsDefaults(t *testing.T) {
	logs := &bytes.Buffer{}
	s := NewStore(t.TempDir(), "absent", quietLogger(logs))
	p := scene.NewProgress(3, 2)

	if err := s.Load(p); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Current() != 2 || p.Visited(0) {
		t.Fatalf("defaults changed")
	}
	if logs.Len() != 0 {
		t.Fatalf("a missing file is not worth a warning, got %q", logs.String())
	}
}

func TestDecodeToleratesCorruption(t *testing.T) {
	cases := []struct {
		name        string
		input       string
		current     int
		visited     []bool
		warnings    int
		warnContain string
	}{
		{
			name:        "bad_visited_line",
			input:       "1\nTrue\nFalse\nmaybe\nTrue\n",
			current:     1,
			visited:     []bool{true, false, false, true},
			warnings:    1,
			warnContain: "visited flag 2 at line 3",
		},
		{
			name:        "bad_position",
			input:       "two\nTrue\nTrue\nTrue\nTrue\n",
			current:     0,
			visited:     []bool{true, true, true, true},
			warnings:    1,
			warnContain: "saved position",
		},
		{
			name:        "position_out_of_range",
			input:       "9\nTrue\nTrue\nTrue\nTrue\n",
			current:     0,
			visited:     []bool{true, true, true, true},
			warnings:    1,
			warnContain: "saved position",
		},
		{
			name:        "short_file",
			input:       "3\nTrue\n",
			current:     3,
			visited:     []bool{true, false, false, false},
			warnings:    3,
			warnContain: "line 4",
		},
		{
			name:        "empty_file",
			input:       "",
			current:     0,
			visited:     []bool{false, false, false, false},
			warnings:    5,
			warnContain: "saved position",
		},
		{
			name:        "long_corrupt_line",
			input:       "2\nTrue\n" + strings.Repeat("x", 70*1024) + "\nTrue\nFalse\n",
			current:     2,
			visited:     []bool{true, false, true, false},
			warnings:    1,
			warnContain: "visited flag 1 at line 2",
		},
		{
			name:     "crlf_and_case",
			input:    "2\r\ntrue\r\nFALSE\r\n True \r\nfalse\r\n",
			current:  2,
			visited:  []bool{true, false, true, false},
			warnings: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			logs := &bytes.Buffer{}
			p := scene.NewProgress(4, 0)
			if err := Decode(strings.NewReader(c.input), p, quietLogger(logs)); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if p.Current() != c.current {
				t.Fatalf("current = %d, want %d", p.Current(), c.current)
			}
			for i, want := range c.visited {
				if p.Visited(i) != want {
					t.Fatalf("visited[%d] = %v, want %v", i, p.Visited(i), want)
				}
			}
			got := strings.Count(logs.String(), "\n")
			if got != c.warnings {
				t.Fatalf("warnings = %d, want %d: %q", got, c.warnings, logs.String())
			}
			if c.warnContain != "" && !strings.Contains(logs.String(), c.warnContain) {
				t.Fatalf("expected warning containing %q, got %q", c.warnContain, logs.String())
			}
		})
	}
}
