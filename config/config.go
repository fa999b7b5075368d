// Package config loads the game settings from a JSON file, creating the file
// with defaults the first time.
package config

import (
	"encoding/json"
	"image/color"
	"os"

	"github.com/pkg/errors"

	"torus-snake/game"
	"torus-snake/game/types"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// RGB is a colour written as [r, g, b] in the config file.
type RGB [3]uint8

func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

type Colors struct {
	Background RGB `json:"background"`
	Border     RGB `json:"border"`
	Snake      RGB `json:"snake"`
	Food       RGB `json:"food"`
}

type Config struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	CellSize     int    `json:"cell_size"`
	Title        string `json:"title"`
	InitialSpeed int    `json:"initial_speed"`
	SpeedStep    int    `json:"speed_step"`
	Backend      string `json:"backend"`
	Seed         uint64 `json:"seed"` // 0 picks a seed from the clock
	SnapshotDir  string `json:"snapshot_dir"`
	Colors       Colors `json:"colors"`
}

func Default() *Config {
	return &Config{
		Width:        32,
		Height:       24,
		CellSize:     20,
		Title:        "Snake",
		InitialSpeed: 10,
		SpeedStep:    1,
		Backend:      BackendWindow,
		SnapshotDir:  "snapshots",
		Colors: Colors{
			Background: RGB{0, 0, 0},
			Border:     RGB{93, 216, 228},
			Snake:      RGB{0, 255, 0},
			Food:       RGB{255, 0, 0},
		},
	}
}

// Load reads path over the defaults. A missing file is created with the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open config %s", path)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create config %s", path)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return errors.Errorf("grid %dx%d is smaller than 2x2", c.Width, c.Height)
	case c.CellSize < 1:
		return errors.Errorf("cell_size %d must be positive", c.CellSize)
	case c.InitialSpeed < 1:
		return errors.Errorf("initial_speed %d must be positive", c.InitialSpeed)
	case c.SpeedStep < 0:
		return errors.Errorf("speed_step %d must not be negative", c.SpeedStep)
	case c.Backend != BackendWindow && c.Backend != BackendTerminal:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

func (c *Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

func (c *Config) Settings() game.Settings {
	return game.Settings{InitialSpeed: c.InitialSpeed, SpeedStep: c.SpeedStep}
}

func (c *Config) Palette() game.Palette {
	return game.Palette{
		Background: c.Colors.Background.Color(),
		Border:     c.Colors.Border.Color(),
		Snake:      c.Colors.Snake.Color(),
		Food:       c.Colors.Food.Color(),
	}
}
