package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab/map hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	level := flag.Int("level", 0, "start on this level instead of the main menu")
	grounding := flag.String("grounding", "", "override the cuboid grounding policy (strict, edge-tolerant)")
	fall := flag.String("fall", "", "override the cuboid fall mode (physics, kinematic)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*2/3, h*2/3)
	ebiten.SetWindowTitle("bloxroll")
	ebiten.SetTPS(tps)

	game, err := NewGame(Options{
		Level:     *level,
		Debug:     *debug,
		Grounding: *grounding,
		Fall:      *fall,
		Mute:      *mute,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
