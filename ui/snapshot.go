package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"torus-snake/game"
)

// Snapshots writes the current frame as a PNG file.
type Snapshots struct {
	Dir      string
	Session  string
	CellSize int
}

func (s *Snapshots) Snapshot(g *game.Game, pal game.Palette) (string, error) {
	img := NewImage(g.Grid, s.CellSize)
	if err := game.DrawFrame(img, g, pal); err != nil {
		return "", errors.Wrap(err, "draw snapshot")
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create snapshot dir %s", s.Dir)
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("snake-%s-%06d.png", s.Session, g.Ticks))
	if err := imaging.Save(img.Image(), path); err != nil {
		return "", errors.Wrapf(err, "save snapshot %s", path)
	}
	return path, nil
}
