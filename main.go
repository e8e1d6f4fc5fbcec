package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scenestep/common"
)

func main() {
	sceneName := flag.String("scene", "intro", "scene script in scenes/ (basename, .yaml optional)")
	dataDir := flag.String("data", ".", "base directory for saved progress")
	debug := flag.Bool("debug", false, "enable debug overlay")
	watch := flag.Bool("watch", false, "reload the scene script when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("scenestep")

	game, err := NewGame(GameOptions{
		Scene:   *sceneName,
		DataDir: *dataDir,
		Debug:   *debug,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
