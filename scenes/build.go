package scenes

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/milk9111/scenestep/history"
	"github.com/milk9111/scenestep/scene"
)

const defaultHistoryDir = "saves"

// Binder hands out the display surfaces a scene draws to. Returning nil for
// an entity leaves it inert.
type Binder interface {
	Text() scene.TextSurface
	Character(spec CharacterSpec) scene.ImageSurface
	Background(spec BackgroundSpec) scene.TintSurface
	Music() scene.AudioSurface
}

// HistoryPath resolves where progress for this scene is kept, relative to
// dataDir.
func (s SceneSpec) HistoryPath(dataDir string) (string, string) {
	dir := s.History.Dir
	if dir == "" {
		dir = defaultHistoryDir
	}
	file := s.History.File
	if file == "" {
		file = s.Name
	}
	return filepath.Join(dataDir, dir), file
}

// Build turns the script into a manager configuration bound to b.
func (s SceneSpec) Build(b Binder, dataDir string, logger *log.Logger) scene.Config {
	if logger == nil {
		logger = log.Default()
	}

	lines := make([]scene.Line, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = scene.Line{Speaker: l.Speaker, Text: l.Text}
	}

	var entities []scene.Entity
	for _, bg := range s.Backgrounds {
		entities = append(entities, scene.NewBackground(bg.Name, b.Background(bg), bg.slots()))
	}
	for _, c := range s.Characters {
		entities = append(entities, scene.NewCharacter(c.Name, b.Character(c), c.slots()))
	}
	if len(s.Music) > 0 {
		entities = append(entities, scene.NewMusic(b.Music(), keySlots(s.Music)))
	}

	dir, file := s.HistoryPath(dataDir)
	return scene.Config{
		Start:    s.Start,
		Dialogue: scene.NewDialogue(lines, b.Text()),
		Entities: entities,
		History:  history.NewStore(dir, file, logger),
		Logger:   logger,
	}
}

// Open builds the script against b and initializes the manager. On error
// nothing has been drawn to b's surfaces and the caller should discard them.
func (s SceneSpec) Open(b Binder, dataDir string, logger *log.Logger) (*scene.Manager, error) {
	m := scene.NewManager(s.Build(b, dataDir, logger))
	if err := m.Init(); err != nil {
		return nil, fmt.Errorf("init scene %q: %w", s.Name, err)
	}
	return m, nil
}

func (c CharacterSpec) slots() []scene.Slot[string] {
	return keySlots(c.Expressions)
}

func (bg BackgroundSpec) slots() []scene.BackgroundSlot {
	out := make([]scene.BackgroundSlot, len(bg.Slots))
	for i, s := range bg.Slots {
		out[i] = scene.BackgroundSlot{
			Texture:  s.Texture,
			Suppress: s.Suppress,
			Color:    s.Color.Or(color.RGBA{}),
			UseColor: s.Color != nil,
		}
	}
	return out
}

func keySlots(keys []string) []scene.Slot[string] {
	out := make([]scene.Slot[string], len(keys))
	for i, k := range keys {
		out[i] = scene.Slot[string]{Value: k, Present: k != ""}
	}
	return out
}
