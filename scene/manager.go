package scene

import (
	"errors"
	"log"
	"sync"
)

var (
	ErrNoDialogue     = errors.New("scene: dialogue surface or lines missing")
	ErrTornDown       = errors.New("scene: manager torn down")
	ErrNotInitialized = errors.New("scene: manager not initialized")
)

// History loads and saves progress between runs.
type History interface {
	Load(p *Progress) error
	Save(p *Progress) error
}

// Config wires a Manager. Dialogue is required; everything else is optional.
type Config struct {
	Start    int
	Dialogue *Dialogue
	Entities []Entity
	History  History
	Logger   *log.Logger
}

// Manager steps through scene positions and keeps every visual in sync with
// the current one. All methods are serialized behind one mutex.
type Manager struct {
	mu sync.Mutex

	dialogue *Dialogue
	entities []Entity
	history  History
	logger   *log.Logger
	progress *Progress

	initialized bool
	tornDown    bool
}

func NewManager(cfg Config) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		dialogue: cfg.Dialogue,
		entities: append([]Entity(nil), cfg.Entities...),
		history:  cfg.History,
		logger:   logger,
		progress: NewProgress(cfg.Dialogue.Len(), cfg.Start),
	}
}

// Init seeds every entity, restores saved progress and shows the current
// position. It fails only when there is no dialogue to show.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dialogue.InUse() {
		return ErrNoDialogue
	}

	active := m.entities[:0]
	for _, e := range m.entities {
		if e == nil {
			continue
		}
		if e.Misconfigured() {
			warnMisconfigured(e, m.logger)
			continue
		}
		if !e.InUse() {
			continue
		}
		e.Init()
		active = append(active, e)
	}
	m.entities = active

	if m.history != nil {
		if err := m.history.Load(m.progress); err != nil {
			m.logger.Printf("scene: load history: %v", err)
		}
	}

	m.initialized = true
	m.tornDown = false
	m.show(false)
	return nil
}

// Show displays the current position, first moving forward one if advance is
// set and there is a next position.
func (m *Manager) Show(advance bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ready(); err != nil {
		return err
	}
	m.show(advance)
	return nil
}

// Advance is the confirm trigger: move forward one and show.
func (m *Manager) Advance() error {
	return m.Show(true)
}

// Tick consumes one sample of a continuous scroll input. Negative values
// revisit the next position if it has been shown before; positive values go
// back one.
func (m *Manager) Tick(scroll float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ready(); err != nil {
		return err
	}

	switch {
	case scroll < 0:
		if m.progress.AdvanceIfVisited() {
			m.show(false)
		}
	case scroll > 0:
		if m.progress.Retreat() {
			m.show(false)
		}
	}
	return nil
}

// Teardown detaches the manager; later triggers return ErrTornDown.
func (m *Manager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tornDown = true
}

// Position returns the current position.
func (m *Manager) Position() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress.Current()
}

// Len returns the number of positions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress.Len()
}

// Visited reports whether position i has been shown.
func (m *Manager) Visited(i int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress.Visited(i)
}

// CurrentLine returns the dialogue for the current position.
func (m *Manager) CurrentLine() (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dialogue.At(m.progress.Current())
}

func (m *Manager) ready() error {
	if m.tornDown {
		return ErrTornDown
	}
	if !m.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (m *Manager) show(advance bool) {
	if advance {
		m.progress.AdvanceToNext()
	}
	pos := m.progress.Current()

	for _, e := range m.entities {
		e.Apply(pos)
	}
	m.dialogue.Apply(pos, m.logger)

	m.progress.MarkVisited()

	if m.history != nil {
		if err := m.history.Save(m.progress); err != nil {
			m.logger.Printf("scene: save history: %v", err)
		}
	}
}
