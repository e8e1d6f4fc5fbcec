package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scenestep/common"
	"github.com/milk9111/scenestep/scene"
	"github.com/milk9111/scenestep/scenes"
)

type Game struct {
	sceneName string
	dataDir   string
	debug     bool
	logger    *log.Logger

	stage     *Stage
	box       *DialogueBox
	manager   *scene.Manager
	watcher   *scenes.Watcher
	clipboard *Clipboard

	advanceRequested bool
}

type GameOptions struct {
	Scene   string
	DataDir string
	Debug   bool
	Watch   bool
	Logger  *log.Logger
}

func NewGame(opts GameOptions) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		sceneName: opts.Scene,
		dataDir:   opts.DataDir,
		debug:     opts.Debug,
		logger:    logger,
	}

	box, err := NewDialogueBox(func() { g.advanceRequested = true })
	if err != nil {
		return nil, fmt.Errorf("build dialogue box: %w", err)
	}
	g.box = box
	g.stage = NewStage(box, logger)
	g.clipboard = NewClipboard(logger)

	if err := g.load(); err != nil {
		g.stage.Close()
		return nil, err
	}

	if opts.Watch {
		w, err := scenes.NewWatcher(scenes.Dir)
		if err != nil {
			logger.Printf("scene hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) load() error {
	spec, err := scenes.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}

	layer := g.stage.Begin()
	m, err := spec.Open(layer, g.dataDir, g.logger)
	if err != nil {
		return err
	}

	if g.manager != nil {
		g.manager.Teardown()
	}
	g.manager = m
	g.stage.Commit(layer)
	return nil
}

func (g *Game) Update() error {
	g.pollReload()

	g.box.UI.Update()

	advance := g.advanceRequested ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	g.advanceRequested = false
	if advance {
		g.trigger(g.manager.Advance())
	}

	_, scroll := ebiten.Wheel()
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		scroll = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		scroll = -1
	}
	g.trigger(g.manager.Tick(scroll))

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.clipboard.CopyLine(g.manager.CurrentLine())
	}

	return nil
}

func (g *Game) trigger(err error) {
	if err != nil && !errors.Is(err, scene.ErrTornDown) {
		g.logger.Printf("scene: %v", err)
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.DrainErrors() {
		g.logger.Printf("scene watcher: %v", err)
	}
	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	if filepath.Clean(name) != filepath.Clean(scenes.DiskPath(g.sceneName)) {
		return
	}
	if err := g.load(); err != nil {
		g.logger.Printf("reload %s: %v", name, err)
		return
	}
	g.logger.Printf("reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	g.box.UI.Draw(screen)

	if g.debug {
		pos := g.manager.Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Position: %d/%d    Visited next: %v    FPS: %.2f",
			pos, g.manager.Len()-1, g.manager.Visited(pos+1), ebiten.ActualFPS()))
	}
}

// Close detaches the scene and releases the watcher and audio.
func (g *Game) Close() {
	if g.manager != nil {
		g.manager.Teardown()
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.stage.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
