package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brawler/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes and state info")
	attract := flag.Bool("attract", true, "run the scripted demo when idle")
	tuning := flag.String("tuning", "", "combat tuning yaml, hot-reloaded on save")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("brawler")

	game := NewGame(*tuning, *debug, *attract)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
