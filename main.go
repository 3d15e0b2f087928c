package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "start with physics debug drawing on")
	seed := flag.Uint64("seed", 0, "random seed for spawns (0 = random)")
	watch := flag.Bool("watch", false, "reload prefabs/ from disk when files change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningFile := flag.String("tuning", prefabs.TuningFile, "tuning file in prefabs/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning(*tuningFile)
	if err != nil {
		log.Printf("tuning: %v; using defaults", err)
	}
	if tuning.NativeHeight == 0 {
		_, mh := ebiten.Monitor().Size()
		tuning.NativeHeight = int(float64(mh) * ebiten.Monitor().DeviceScaleFactor())
	}

	rng := common.DefaultRand()
	if *seed != 0 {
		rng = common.NewRand(*seed)
	}

	game, err := NewGame(tuning, GameOptions{
		Debug:      *debug,
		Watch:      *watch,
		Rand:       rng,
		TuningFile: *tuningFile,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(tuning.Screen.Width/2), int(tuning.Screen.Height/2))
	ebiten.SetWindowTitle("mozaorun")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
