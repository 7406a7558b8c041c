package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Mesh-Sight/internal/board"
	"github.com/Garsondee/Mesh-Sight/internal/config"
	"github.com/Garsondee/Mesh-Sight/internal/logging"
	"github.com/Garsondee/Mesh-Sight/internal/viewer"
)

func main() {
	cfg, path, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.Stderr(cfg.Log.Level)
	logger.Info("config loaded", "path", path)

	b, err := board.Load(cfg.Board.Path)
	if err != nil {
		log.Fatal(err)
	}
	game, err := viewer.New(cfg, b)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title + " - " + b.Name)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
