package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SparshMishra09/Astroid-Shooter/internal/config"
	"github.com/SparshMishra09/Astroid-Shooter/internal/render"
	"github.com/SparshMishra09/Astroid-Shooter/internal/score"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "desktop",
	})

	store := score.NewStore(config.GetEnv("SCORE_FILE", score.DefaultPath()))

	g := render.New(render.Options{
		Logger: logger,
		Store:  store,
	})

	ebiten.SetWindowTitle("Astroid Shooter")
	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
