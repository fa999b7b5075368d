package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"torus-snake/config"
	"torus-snake/game"
	"torus-snake/ui"
	"torus-snake/ui/window"
)

// backend is what the runner needs from a display: drawing, input and a way
// to shut it down. Pacing is chosen separately.
type backend interface {
	game.Renderer
	game.InputSource
	Close()
}

func main() {
	configPath := flag.String("config", "snake.json", "Path to the JSON config file (created if missing)")
	backendName := flag.String("backend", "", "Display backend: window or terminal (overrides the config)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = config value, then the clock)")
	speed := flag.Int("speed", 0, "Initial speed in ticks per second (overrides the config)")
	snapshots := flag.String("snapshots", "", "Directory for PNG snapshots (overrides the config)")
	watch := flag.Bool("watch", false, "Reload the colour palette when the config file changes")
	flag.Parse()

	session := uuid.New().String()
	log.SetPrefix("[snake " + session[:8] + "] ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *backendName != "" {
		cfg.Backend = *backendName
	}
	if *speed != 0 {
		cfg.InitialSpeed = *speed
	}
	if *snapshots != "" {
		cfg.SnapshotDir = *snapshots
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	if err := run(cfg, session, *configPath, *watch); err != nil {
		log.Fatalf("snake: %v", err)
	}
}

// run owns every resource so that deferred cleanups (the terminal in
// particular) happen before main reports an error.
func run(cfg *config.Config, session, configPath string, watch bool) error {
	g, err := game.NewGame(cfg.Grid(), rand.New(rand.NewSource(cfg.Seed)), cfg.Settings())
	if err != nil {
		return errors.Wrap(err, "new game")
	}

	var (
		display backend
		pacer   game.FramePacer
	)
	switch cfg.Backend {
	case config.BackendTerminal:
		// The screen owns the terminal, so log lines go to a file meanwhile.
		logFile, err := openLogFile(cfg.SnapshotDir)
		if err != nil {
			return err
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		defer log.SetOutput(os.Stderr)

		term, err := ui.OpenTerminal(g.Grid)
		if err != nil {
			return err
		}
		display, pacer = term, ui.NewPacer()
	default:
		win, err := window.Open(g.Grid, cfg.CellSize, cfg.Title, g.Speed())
		if err != nil {
			return err
		}
		display, pacer = win, win
	}
	defer display.Close()

	runner := &game.Runner{
		Game:     g,
		Renderer: display,
		Input:    display,
		Pacer:    pacer,
		Palette:  cfg.Palette(),
		Title:    cfg.Title,
		Snapshots: &ui.Snapshots{
			Dir:      cfg.SnapshotDir,
			Session:  session,
			CellSize: cfg.CellSize,
		},
	}
	if watch {
		w, err := config.Watch(configPath)
		if err != nil {
			return err
		}
		defer w.Close()
		runner.Reloader = w
	}

	log.Printf("%s backend, %dx%d grid, seed %d", cfg.Backend, cfg.Width, cfg.Height, cfg.Seed)
	return runner.Run()
}

// openLogFile opens snake.log in dir for appending, creating dir if needed.
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, "snake.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return f, nil
}
