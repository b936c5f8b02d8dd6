package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bouncers/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults are embedded)")
	debug := flag.Bool("debug", false, "show the debug overlay")
	watch := flag.Bool("watch", false, "reload render settings when the config file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Render.ShowDebug = true
	}

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("watch %s: %v", *configPath, err)
		}
	}

	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	// log.Fatal skips deferred calls, so the watcher is closed on each exit path.
	game, err := NewGame(cfg, watcher)
	if err != nil {
		watcher.Close()
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	watcher.Close()
	if err != nil {
		log.Fatal(err)
	}
}
