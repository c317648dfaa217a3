package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/catcher/pkg/app"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	configPath := flag.String("config", "", "path to a gameplay config yaml")
	flag.Parse()

	a, err := app.New(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "catcher:", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetFullscreen(a.Settings().Fullscreen)

	if err := ebiten.RunGame(a); err != nil {
		fmt.Fprintln(os.Stderr, "catcher:", err)
		os.Exit(1)
	}
}
