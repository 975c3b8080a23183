package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/log"
)

type Config struct {
	Spinner SpinnerConfig `toml:"spinner"`
	Colors  ColorsConfig  `toml:"colors"`
	Render  RenderConfig  `toml:"render"`
	Log     LogConfig     `toml:"log"`
}

type SpinnerConfig struct {
	Size  float32      `toml:"size"`
	Style vxspin.Style `toml:"style"`
}

type ColorsConfig struct {
	Foreground string `toml:"foreground"`
	// Background is optional. Empty means the terminal background
	Background string `toml:"background"`
}

type RenderConfig struct {
	FPS        int `toml:"fps"`
	Oversample int `toml:"oversample"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func Defaults() *Config {
	return &Config{
		Spinner: SpinnerConfig{Size: 24, Style: vxspin.Dots},
		Colors:  ColorsConfig{Foreground: "#d0d0d0", Background: "#000000"},
		Render:  RenderConfig{FPS: 60, Oversample: 4},
		Log:     LogConfig{Level: "error"},
	}
}

// Dir is the directory holding the configuration file
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".config", "vxspin")
	}
	return filepath.Join(dir, "vxspin")
}

// FilePath is the default configuration file path
func FilePath() string {
	return filepath.Join(Dir(), "vxspin.toml")
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Load reads the configuration at path. An empty path means the default
// location, which may be missing
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FilePath()
	}
	cfg, err := LoadFromFile(path)
	switch {
	case err == nil:
		log.Debug("loaded config from %s", path)
		return cfg, nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		log.Debug("no config at %s, using defaults", path)
		return Defaults(), nil
	default:
		return nil, err
	}
}

func (c *Config) Validate() error {
	if !(c.Spinner.Size >= 0) {
		return fmt.Errorf("spinner size must not be negative, got %v", c.Spinner.Size)
	}
	if _, err := c.Foreground(); err != nil {
		return err
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	if c.Render.FPS <= 0 || c.Render.FPS > 240 {
		return fmt.Errorf("fps must be within 1..240, got %d", c.Render.FPS)
	}
	if c.Render.Oversample < 1 || c.Render.Oversample > 16 {
		return fmt.Errorf("oversample must be within 1..16, got %d", c.Render.Oversample)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SpinnerValue is the configured spinner
func (c *Config) SpinnerValue() vxspin.Spinner {
	return vxspin.New().WithSize(c.Spinner.Size).WithStyle(c.Spinner.Style)
}

// Foreground is the parsed foreground color
func (c *Config) Foreground() (color.RGBA, error) {
	fg, err := colorful.Hex(c.Colors.Foreground)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("foreground color %q: %w", c.Colors.Foreground, err)
	}
	return vxspin.FromColorful(fg), nil
}

// Background is the parsed background color. It is transparent when unset
func (c *Config) Background() (color.RGBA, error) {
	if c.Colors.Background == "" {
		return color.RGBA{}, nil
	}
	bg, err := colorful.Hex(c.Colors.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("background color %q: %w", c.Colors.Background, err)
	}
	return vxspin.FromColorful(bg), nil
}
