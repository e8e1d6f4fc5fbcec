package scene

import (
	"image/color"
	"log"
)

// Entity is a visual element whose displayed value follows override tracks.
type Entity interface {
	Name() string
	// InUse is false for entities that should be skipped entirely.
	InUse() bool
	// Misconfigured reports a surface bound without any slots.
	Misconfigured() bool
	// Init seeds slot 0 of every track from the currently displayed values.
	Init()
	// Apply resolves pos and updates the surface where the value changed.
	Apply(pos int)
}

// Character is an on-screen actor whose sprite changes per position.
type Character struct {
	name    string
	surface ImageSurface
	sprites *Track[string]
}

func NewCharacter(name string, surface ImageSurface, sprites []Slot[string]) *Character {
	return &Character{
		name:    name,
		surface: surface,
		sprites: NewSpriteTrack(sprites),
	}
}

func (c *Character) Name() string { return c.name }

func (c *Character) InUse() bool {
	return c.surface != nil && c.sprites.Len() > 0
}

func (c *Character) Misconfigured() bool {
	return c.surface != nil && c.sprites.Len() == 0
}

func (c *Character) Init() {
	if !c.InUse() {
		return
	}
	c.sprites.Seed(c.surface.Image())
}

// Sprite returns the sprite the character should show at pos and whether it
// differs from what is displayed.
func (c *Character) Sprite(pos int) (string, bool) {
	current := c.surface.Image()
	key, ok := c.sprites.Resolve(pos, current)
	return key, ok && key != current
}

func (c *Character) Apply(pos int) {
	if !c.InUse() {
		return
	}
	if key, changed := c.Sprite(pos); changed {
		c.surface.SetImage(key)
	}
}

// BackgroundSlot is the authoring form of one background position.
type BackgroundSlot struct {
	Texture  string
	Suppress bool
	Color    color.RGBA
	UseColor bool
}

// Background is a full-screen visual with a texture and a tint, each with its
// own override track.
type Background struct {
	name     string
	surface  TintSurface
	textures *Track[string]
	colors   *Track[color.RGBA]
}

func NewBackground(name string, surface TintSurface, slots []BackgroundSlot) *Background {
	textures := make([]Slot[string], len(slots))
	colors := make([]Slot[color.RGBA], len(slots))
	for i, s := range slots {
		textures[i] = Slot[string]{Value: s.Texture, Present: s.Texture != "", Suppress: s.Suppress}
		colors[i] = Slot[color.RGBA]{Value: s.Color, Present: s.UseColor, Use: s.UseColor}
	}
	return &Background{
		name:     name,
		surface:  surface,
		textures: NewTextureTrack(textures),
		colors:   NewColorTrack(colors),
	}
}

func (b *Background) Name() string { return b.name }

func (b *Background) InUse() bool {
	return b.surface != nil && b.textures.Len() > 0
}

func (b *Background) Misconfigured() bool {
	return b.surface != nil && b.textures.Len() == 0
}

func (b *Background) Init() {
	if !b.InUse() {
		return
	}
	b.colors.Seed(b.surface.Color())
	b.textures.Seed(b.surface.Image())
}

// Texture returns the texture for pos and whether it differs from what is
// displayed. An empty key is an explicit blank.
func (b *Background) Texture(pos int) (string, bool) {
	current := b.surface.Image()
	key, ok := b.textures.Resolve(pos, current)
	return key, ok && key != current
}

// Color returns the tint for pos and whether it differs from what is
// displayed.
func (b *Background) Color(pos int) (color.RGBA, bool) {
	current := b.surface.Color()
	c, ok := b.colors.Resolve(pos, current)
	return c, ok && c != current
}

func (b *Background) Apply(pos int) {
	if !b.InUse() {
		return
	}
	if key, changed := b.Texture(pos); changed {
		b.surface.SetImage(key)
	}
	if c, changed := b.Color(pos); changed {
		b.surface.SetColor(c)
	}
}

// Music is the looping background track, switched only when the resolved key
// changes.
type Music struct {
	surface AudioSurface
	tracks  *Track[string]
}

func NewMusic(surface AudioSurface, keys []Slot[string]) *Music {
	return &Music{surface: surface, tracks: NewSpriteTrack(keys)}
}

func (m *Music) Name() string { return "music" }

func (m *Music) InUse() bool {
	return m.surface != nil && m.tracks.Len() > 0
}

func (m *Music) Misconfigured() bool {
	return m.surface != nil && m.tracks.Len() == 0
}

func (m *Music) Init() {
	if !m.InUse() {
		return
	}
	m.tracks.Seed(m.surface.Track())
}

func (m *Music) Apply(pos int) {
	if !m.InUse() {
		return
	}
	current := m.surface.Track()
	if key, ok := m.tracks.Resolve(pos, current); ok && key != current {
		m.surface.SetTrack(key)
	}
}

func warnMisconfigured(e Entity, logger *log.Logger) {
	logger.Printf("scene: %q has a surface but no slots; skipping it", e.Name())
}
