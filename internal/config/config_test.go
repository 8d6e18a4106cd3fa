package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "mad-sand/internal/sims/fall"
)

func writeTempTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ca.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeTempTOML(t, `
kind = "fall3d"
rows = 20
cols = 30
levels = 5
delay = "250ms"
borders = true
density = 0.25
pattern = "hourglass.yaml"
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fall3d", c.Kind)
	assert.Equal(t, uint32(20), c.Rows)
	assert.Equal(t, uint32(30), c.Cols)
	assert.Equal(t, uint32(5), c.Levels)
	assert.Equal(t, 250*time.Millisecond, c.Delay)
	assert.True(t, c.Borders)
	assert.Equal(t, 0.25, c.Density)
	assert.Equal(t, "hourglass.yaml", c.Pattern)
	assert.Equal(t, DefaultConfig().CellWidth, c.CellWidth, "unset keys keep defaults")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeTempTOML(t, "rows = 10\nspeed = 3\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "speed")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown kind", func(c *Config) { c.Kind = "life" }},
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"negative delay", func(c *Config) { c.Delay = -time.Second }},
		{"zero cell width", func(c *Config) { c.CellWidth = 0 }},
		{"density above one", func(c *Config) { c.Density = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"kind":    "fall3d",
		"rows":    "12",
		"cols":    "-3",
		"delay":   "40",
		"seed":    "7",
		"density": "2",
		"borders": "true",
	})
	assert.Equal(t, "fall3d", c.Kind)
	assert.Equal(t, uint32(12), c.Rows)
	assert.Equal(t, DefaultConfig().Cols, c.Cols)
	assert.Equal(t, 40*time.Millisecond, c.Delay)
	assert.Equal(t, int64(7), c.Seed)
	assert.Zero(t, c.Density)
	assert.True(t, c.Borders)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestBindAndMerge(t *testing.T) {
	base := DefaultConfig()
	base.Rows = 10
	base.Cols = 11

	flags := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--cols", "33", "--delay", "1s"}))

	merged := Merge(base, flags, fs)
	assert.Equal(t, uint32(10), merged.Rows, "unset flags keep the file value")
	assert.Equal(t, uint32(33), merged.Cols)
	assert.Equal(t, time.Second, merged.Delay)
}
