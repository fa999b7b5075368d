package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"torus-snake/game"
)

// Watcher reloads the palette when the config file changes on disk. It is
// polled from the game loop, so nothing here blocks.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// Watch starts watching path. The parent directory is watched because editors
// often replace the file instead of writing it in place.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	return &Watcher{path: abs, watcher: fw}, nil
}

// Reload drains pending file events and returns the new palette if the
// config file was rewritten with a valid configuration.
func (w *Watcher) Reload() (game.Palette, bool) {
	changed := false
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.load(changed)
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.load(changed)
			}
			log.Printf("config watcher: %v", err)
		default:
			return w.load(changed)
		}
	}
}

func (w *Watcher) load(changed bool) (game.Palette, bool) {
	if !changed {
		return game.Palette{}, false
	}
	cfg, err := Load(w.path)
	if err != nil {
		// Usually a half written file; the next write event retries.
		log.Printf("config reload skipped: %v", err)
		return game.Palette{}, false
	}
	return cfg.Palette(), true
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
