package config

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/vxspin"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vxspin.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(24), cfg.Spinner.Size)
	assert.Equal(t, vxspin.Dots, cfg.Spinner.Style)

	fg, err := cfg.Foreground()
	require.NoError(t, err)
	assert.Equal(t, vxspin.Opaque(0xd0, 0xd0, 0xd0), fg)

	s := cfg.SpinnerValue()
	assert.Equal(t, float32(24), s.Size)
	assert.Equal(t, vxspin.Dots, s.Style)
}

func TestDefaultsRoundTrip(t *testing.T) {
	data, err := toml.Marshal(Defaults())
	require.NoError(t, err)
	assert.Contains(t, string(data), "dots")

	cfg, err := LoadFromFile(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[spinner]
size = 30.0
style = "squares"

[colors]
foreground = "#ff8000"
background = ""

[render]
fps = 24
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(30), cfg.Spinner.Size)
	assert.Equal(t, vxspin.Squares, cfg.Spinner.Style)
	assert.Equal(t, 24, cfg.Render.FPS)
	// Unset keys keep their defaults
	assert.Equal(t, 4, cfg.Render.Oversample)

	fg, err := cfg.Foreground()
	require.NoError(t, err)
	assert.Equal(t, vxspin.Opaque(0xff, 0x80, 0x00), fg)

	bg, err := cfg.Background()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), bg.A)
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"style":      "[spinner]\nstyle = \"spiral\"\n",
		"size":       "[spinner]\nsize = -1.0\n",
		"foreground": "[colors]\nforeground = \"red\"\n",
		"background": "[colors]\nbackground = \"#12\"\n",
		"fps":        "[render]\nfps = 0\n",
		"oversample": "[render]\noversample = 64\n",
		"level":      "[log]\nlevel = \"loud\"\n",
		"syntax":     "[spinner\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	cfg, err = Load(writeConfig(t, "[spinner]\nstyle = \"bars\"\n"))
	require.NoError(t, err)
	assert.Equal(t, vxspin.Bars, cfg.Spinner.Style)
}
