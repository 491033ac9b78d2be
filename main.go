package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/twinstick/logging"
	"github.com/milk9111/twinstick/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", true, "reload prefabs from prefabs/ when they change on disk")
	flag.Parse()

	pipeline, err := prefabs.LoadPipelineSpec()
	if err != nil {
		log.Fatal(err)
	}

	level := pipeline.LogLevel
	if *debug {
		level = "debug"
	}
	if level == "" {
		level = "info"
	}
	logger, err := logging.New(level, true)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("twinstick sandbox")
	if pipeline.TickRate > 0 {
		ebiten.SetTPS(pipeline.TickRate)
	}

	game, err := NewGame(pipeline, logger, *watch)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Fatal("run game", zap.Error(err))
	}
}
