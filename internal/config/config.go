// Package config holds the settings shared by every front end: grid kind and
// bounds, step pacing, rendering hints and initial seeding.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"mad-sand/internal/core"
)

// ErrInvalid marks configuration values that fail validation.
var ErrInvalid = errors.New("invalid config")

// Config controls which automaton runs and how it is presented.
type Config struct {
	Kind   string `toml:"kind"`
	Rows   uint32 `toml:"rows"`
	Cols   uint32 `toml:"cols"`
	Levels uint32 `toml:"levels"`

	Delay time.Duration `toml:"delay"`
	TPS   int           `toml:"tps"`

	CellWidth int  `toml:"cell_width"`
	Borders   bool `toml:"borders"`
	Editable  bool `toml:"editable"`

	Seed    int64   `toml:"seed"`
	Density float64 `toml:"density"`
	Pattern string  `toml:"pattern"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Kind:      "fall",
		Rows:      64,
		Cols:      96,
		Levels:    4,
		Delay:     core.DefaultDelay,
		TPS:       60,
		CellWidth: 8,
		Borders:   false,
		Editable:  true,
		Seed:      42,
	}
}

// Size returns the grid bounds.
func (c Config) Size() core.Size {
	return core.Size{Rows: c.Rows, Cols: c.Cols, Levels: c.Levels}
}

// Load reads a TOML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return c, c.Validate()
}

// Validate checks the configuration for values no front end can use.
func (c Config) Validate() error {
	if _, ok := core.Kinds()[c.Kind]; !ok && len(core.Kinds()) > 0 {
		return fmt.Errorf("%w: unknown kind %q (have %s)", ErrInvalid, c.Kind, strings.Join(core.KindNames(), ", "))
	}
	if c.Rows == 0 || c.Cols == 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalid, c.Delay)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("%w: cell_width must be positive, got %d", ErrInvalid, c.CellWidth)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density must be within [0, 1], got %g", ErrInvalid, c.Density)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields from a string map.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["kind"]; ok && v != "" {
		c.Kind = v
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Rows = uint32(parsed)
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Cols = uint32(parsed)
		}
	}
	if v, ok := cfg["levels"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Levels = uint32(parsed)
		}
	}
	if v, ok := cfg["delay"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Delay = parsed
		} else if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.Delay = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["cell_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellWidth = parsed
		}
	}
	if v, ok := cfg["borders"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Borders = parsed
		}
	}
	if v, ok := cfg["editable"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Editable = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Kind, "kind", c.Kind, "automaton kind ("+strings.Join(core.KindNames(), ", ")+")")
	fs.Uint32Var(&c.Rows, "rows", c.Rows, "grid rows")
	fs.Uint32Var(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Uint32Var(&c.Levels, "levels", c.Levels, "grid levels (3D kinds)")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between automatic steps")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.CellWidth, "cell-width", c.CellWidth, "cell size in pixels")
	fs.BoolVar(&c.Borders, "borders", c.Borders, "draw grid borders")
	fs.BoolVar(&c.Editable, "editable", c.Editable, "allow painting cells with the pointer")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random scatter")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells to scatter on start")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "YAML pattern file to load on start")
}

// Merge returns base with every flag the user set on fs copied from flags.
func Merge(base, flags Config, fs *pflag.FlagSet) Config {
	out := base
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "kind":
			out.Kind = flags.Kind
		case "rows":
			out.Rows = flags.Rows
		case "cols":
			out.Cols = flags.Cols
		case "levels":
			out.Levels = flags.Levels
		case "delay":
			out.Delay = flags.Delay
		case "tps":
			out.TPS = flags.TPS
		case "cell-width":
			out.CellWidth = flags.CellWidth
		case "borders":
			out.Borders = flags.Borders
		case "editable":
			out.Editable = flags.Editable
		case "seed":
			out.Seed = flags.Seed
		case "density":
			out.Density = flags.Density
		case "pattern":
			out.Pattern = flags.Pattern
		}
	})
	return out
}
