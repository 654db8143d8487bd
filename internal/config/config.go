// Package config loads the optional settings file. Every field has a
// default, so the game runs with no file present at all.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/mazeshooter/internal/engine"
)

// DisplayConfig holds window and framebuffer settings.
type DisplayConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled bool `json:"enabled"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	TextureDir string `json:"texture_dir"`
	GunDir     string `json:"gun_dir"`
	SoundDir   string `json:"sound_dir"`
	MapPath    string `json:"map_path"` // empty means the built-in level
}

// Config is the full settings file.
type Config struct {
	Display DisplayConfig `json:"display"`
	Audio   AudioConfig   `json:"audio"`
	Assets  AssetsConfig  `json:"assets"`
	Tuning  engine.Tuning `json:"tuning"`
}

// Default returns the reference settings.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  800,
			Height: 600,
			Title:  "Maze Shooter",
		},
		Audio: AudioConfig{Enabled: true},
		Assets: AssetsConfig{
			TextureDir: "textures",
			GunDir:     "gun",
			SoundDir:   "sounds",
		},
		Tuning: engine.DefaultTuning(),
	}
}

// Load reads the settings file at path. A missing file is not an error:
// defaults are returned. A present but unreadable or invalid file returns
// defaults alongside the error, so the caller can log and keep going.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid display size: %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Tuning.MoveSpeed <= 0 || c.Tuning.RotSpeed <= 0 {
		return fmt.Errorf("movement speeds must be positive")
	}
	if c.Tuning.JumpImpulse <= 0 || c.Tuning.Gravity <= 0 {
		return fmt.Errorf("jump impulse and gravity must be positive")
	}
	return nil
}
