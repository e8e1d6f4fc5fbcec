package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/scenestep/assets"
	"github.com/milk9111/scenestep/common"
	"github.com/milk9111/scenestep/scene"
	"github.com/milk9111/scenestep/scenes"
)

// Stage owns every drawable surface of the current scene. Scenes are built
// into a fresh layer and only shown once Commit swaps it in.
type Stage struct {
	logger *log.Logger
	box    *DialogueBox
	layer  *StageLayer
	music  *musicSurface
	failed map[string]bool
}

func NewStage(box *DialogueBox, logger *log.Logger) *Stage {
	s := &Stage{
		logger: logger,
		box:    box,
		music:  &musicSurface{logger: logger},
		failed: map[string]bool{},
	}
	s.layer = s.Begin()
	return s
}

// StageLayer collects the surfaces of one scene build. It implements
// scenes.Binder. Dialogue and music are shared with the stage so a reload
// keeps the current track playing.
type StageLayer struct {
	stage       *Stage
	backgrounds []*backgroundSurface
	characters  []*spriteSurface
}

// Begin starts an empty layer. The layer is not drawn until Commit.
func (s *Stage) Begin() *StageLayer {
	return &StageLayer{stage: s}
}

// Commit makes l the drawn layer and drops the previous one.
func (s *Stage) Commit(l *StageLayer) {
	s.layer = l
}

func (l *StageLayer) Text() scene.TextSurface { return l.stage.box }

func (l *StageLayer) Character(spec scenes.CharacterSpec) scene.ImageSurface {
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	sp := &spriteSurface{key: spec.Image, x: spec.X, y: spec.Y, scale: scale}
	l.characters = append(l.characters, sp)
	return sp
}

func (l *StageLayer) Background(spec scenes.BackgroundSpec) scene.TintSurface {
	bg := &backgroundSurface{key: spec.Texture, tint: spec.Color.Or(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})}
	l.backgrounds = append(l.backgrounds, bg)
	return bg
}

func (l *StageLayer) Music() scene.AudioSurface { return l.stage.music }

func (s *Stage) Close() {
	s.music.SetTrack("")
}

func (s *Stage) Draw(screen *ebiten.Image) {
	for _, bg := range s.layer.backgrounds {
		s.drawBackground(screen, bg)
	}
	for _, c := range s.layer.characters {
		s.drawSprite(screen, c)
	}
}

func (s *Stage) drawBackground(screen *ebiten.Image, bg *backgroundSurface) {
	if bg.key == "" {
		vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, bg.tint, false)
		return
	}
	img := s.image(bg.key)
	if img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(common.BaseWidth)/float64(b.Dx()), float64(common.BaseHeight)/float64(b.Dy()))
	op.ColorScale.Scale(float32(bg.tint.R)/255, float32(bg.tint.G)/255, float32(bg.tint.B)/255, float32(bg.tint.A)/255)
	screen.DrawImage(img, op)
}

func (s *Stage) drawSprite(screen *ebiten.Image, sp *spriteSurface) {
	if sp.key == "" {
		return
	}
	img := s.image(sp.key)
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sp.scale, sp.scale)
	op.GeoM.Translate(sp.x, sp.y)
	screen.DrawImage(img, op)
}

func (s *Stage) image(key string) *ebiten.Image {
	if s.failed[key] {
		return nil
	}
	img, err := assets.LoadImage(key)
	if err != nil {
		s.failed[key] = true
		s.logger.Printf("stage: load image %q: %v", key, err)
		return nil
	}
	return img
}

type spriteSurface struct {
	key   string
	x, y  float64
	scale float64
}

func (s *spriteSurface) Image() string       { return s.key }
func (s *spriteSurface) SetImage(key string) { s.key = key }

type backgroundSurface struct {
	key  string
	tint color.RGBA
}

func (b *backgroundSurface) Image() string         { return b.key }
func (b *backgroundSurface) SetImage(key string)   { b.key = key }
func (b *backgroundSurface) Color() color.RGBA     { return b.tint }
func (b *backgroundSurface) SetColor(c color.RGBA) { b.tint = c }

type musicSurface struct {
	logger *log.Logger
	key    string
	player *audio.Player
}

func (m *musicSurface) Track() string { return m.key }

func (m *musicSurface) SetTrack(key string) {
	if m.player != nil {
		if err := m.player.Close(); err != nil {
			m.logger.Printf("stage: stop music %q: %v", m.key, err)
		}
		m.player = nil
	}
	m.key = key
	if key == "" {
		return
	}

	p, err := assets.LoadAudioPlayer(key)
	if err != nil {
		m.logger.Printf("stage: load music %q: %v", key, err)
		return
	}
	p.Play()
	m.player = p
}
