package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/scenestep/scene"
)

const (
	trueLiteral  = "True"
	falseLiteral = "False"
)

// Store persists scene progress as newline-delimited text: the current
// position on the first line, then one True/False line per position.
type Store struct {
	dir    string
	file   string
	logger *log.Logger
}

// NewStore builds a store writing to dir/file. A file name without an
// extension gets ".txt".
func NewStore(dir, file string, logger *log.Logger) *Store {
	if filepath.Ext(file) == "" {
		file += ".txt"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{dir: dir, file: file, logger: logger}
}

// Path returns the full path of the history file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.file)
}

// Save overwrites the history file with p. The contents are written to a
// temporary file in the same directory and renamed into place.
func (s *Store) Save(p *scene.Progress) (err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("history: create %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, s.file+".*.tmp")
	if err != nil {
		return fmt.Errorf("history: create temp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, p); err != nil {
		return fmt.Errorf("history: write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("history: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("history: rename to %s: %w", s.Path(), err)
	}
	return nil
}

// Load restores p from the history file. A missing file leaves p untouched.
// Lines that do not parse keep p's current value and are logged.
func (s *Store) Load(p *scene.Progress) error {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("history: open %s: %w", s.Path(), err)
	}
	defer f.Close()

	if err := Decode(f, p, s.logger); err != nil {
		return fmt.Errorf("history: read %s: %w", s.Path(), err)
	}
	return nil
}

// Encode writes p in the history format.
func Encode(w io.Writer, p *scene.Progress) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", p.Current())
	for _, v := range p.VisitedAll() {
		lit := falseLiteral
		if v {
			lit = trueLiteral
		}
		bw.WriteString(lit)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Decode reads the history format into p, tolerating corrupt or missing
// lines. Only a failing reader returns an error.
func Decode(r io.Reader, p *scene.Progress, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if pos, ok := parsePosition(lines, p.Len()); ok {
		p.SetCurrent(pos)
	} else {
		logger.Printf("history: could not parse the saved position; keeping %d", p.Current())
	}

	for i := 0; i < p.Len(); i++ {
		line := i + 1
		v, ok := parseVisited(lines, line)
		if !ok {
			logger.Printf("history: could not parse visited flag %d at line %d", i, line)
			continue
		}
		p.SetVisited(i, v)
	}
	return nil
}

func parsePosition(lines []string, n int) (int, bool) {
	if len(lines) == 0 {
		return 0, false
	}
	pos, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || pos < 0 || pos >= n {
		return 0, false
	}
	return pos, true
}

func parseVisited(lines []string, line int) (bool, bool) {
	if line >= len(lines) {
		return false, false
	}
	s := strings.TrimSpace(lines[line])
	switch {
	case strings.EqualFold(s, trueLiteral):
		return true, true
	case strings.EqualFold(s, falseLiteral):
		return false, true
	}
	return false, false
}
