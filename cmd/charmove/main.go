package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/charmove/internal/application/game"
	"github.com/younwookim/charmove/internal/application/replay"
	"github.com/younwookim/charmove/internal/application/scene/playing"
	"github.com/younwookim/charmove/internal/infrastructure/config"
)

// newLoader reads configs from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// runHeadless plays a replay to the end without opening a window
func runHeadless(cfg *config.GameConfig, data *replay.ReplayData) (*playing.Playing, error) {
	p, err := playing.NewReplay(cfg, replay.NewReplayer(*data))
	if err != nil {
		return nil, err
	}
	dt := 1.0 / float64(cfg.World.Display.Framerate)
	for p.Step(dt) {
	}
	return p, nil
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory; watched for movement changes (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "With -replay, run without a window and log the result")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to create config loader: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var sc *playing.Playing
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if *headless {
			if _, err := runHeadless(cfg, data); err != nil {
				log.Fatalf("Replay failed: %v", err)
			}
			return
		}
		sc, err = playing.NewReplay(cfg, replay.NewReplayer(*data))
		if err != nil {
			log.Fatalf("Failed to create scene: %v", err)
		}
	} else {
		sc, err = playing.New(cfg, *recordFlag)
		if err != nil {
			log.Fatalf("Failed to create scene: %v", err)
		}
	}

	g := game.New(sc, cfg.World.Display.ScreenWidth, cfg.World.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.World.Display.Framerate))

	if *configDir != "" {
		watcher, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		g.SetConfigUpdates(watcher.Updates)

		go func() {
			for err := range watcher.Errors {
				log.Printf("Config reload failed: %v", err)
			}
		}()
		log.Printf("Watching %s for movement changes", loader.BasePath())
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.World.Display.ScreenWidth*cfg.World.Display.Scale,
		cfg.World.Display.ScreenHeight*cfg.World.Display.Scale)
	ebiten.SetWindowTitle("Character Movement: " + cfg.World.Name)
	ebiten.SetTPS(cfg.World.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
