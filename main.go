package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw sight/attack radii and walk points")
	seed := flag.Int64("seed", 0, "patrol random seed (0 = time based)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", true, "hot reload prefabs/ on change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("combatloop")

	game, err := NewGame(GameOptions{Debug: *debug, Seed: *seed, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
