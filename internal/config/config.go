// Package config loads the swipedemo configuration from a TOML file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Config is the top-level TOML structure.
type Config struct {
	Menu MenuConfig  `toml:"menu"`
	Log  LogConfig   `toml:"log"`
	Rows []RowConfig `toml:"row"`
}

// MenuConfig tunes every swipe row.
type MenuConfig struct {
	TouchSlop      int      `toml:"touch_slop"` // cells
	SettleDuration Duration `toml:"settle_duration"`
	FrameInterval  Duration `toml:"frame_interval"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"` // empty disables logging
}

// RowConfig is one row of the demo list.
type RowConfig struct {
	Title   string   `toml:"title"`
	Actions []string `toml:"actions"`
}

// ID returns a stable identifier derived from the row title. Titles are
// unique within a config, so the demo keys its rows by ID.
func (r RowConfig) ID() string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("row:"+r.Title)).String()
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

const defaultTOML = `# swipedemo configuration

[menu]
touch_slop = 1
settle_duration = "250ms"
frame_interval = "16ms"

[log]
debug = false
file = ""

[[row]]
title = "Inbox"
actions = ["Pin", "Delete"]

[[row]]
title = "Drafts"
actions = ["Pin", "Delete"]

[[row]]
title = "Sent"
actions = ["Archive", "Delete"]

[[row]]
title = "Trash"
actions = ["Delete"]
`

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := Parse([]byte(defaultTOML))
	if err != nil {
		panic("config: invalid default document: " + err.Error())
	}
	return cfg
}

// Dir returns the directory of the config file.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config dir")
	}
	return filepath.Join(dir, "swipedemo"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, or at Path if path is empty. A missing file
// is created with the default document.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), err
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Default(), errors.Wrap(err, "failed to create config dir")
		}
		if err := os.WriteFile(path, []byte(defaultTOML), 0644); err != nil {
			return Default(), errors.Wrap(err, "failed to write default config")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrap(err, "failed to read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), errors.Wrapf(err, "failed to parse %s", path)
	}
	return cfg, nil
}

// Parse decodes a TOML document. Missing or invalid values fall back to the
// defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode TOML")
	}
	seen := make(map[string]int, len(cfg.Rows))
	for i, row := range cfg.Rows {
		if strings.TrimSpace(row.Title) == "" {
			return Config{}, errors.Errorf("row[%d]: title is required", i)
		}
		if j, ok := seen[row.ID()]; ok {
			return Config{}, errors.Errorf("row[%d]: title %q already used by row[%d]", i, row.Title, j)
		}
		seen[row.ID()] = i
	}
	return normalize(cfg, md), nil
}

// normalize fills missing values with defaults and clamps invalid ones. A
// touch slop of 0 is valid and turns every horizontal move into a drag.
func normalize(cfg Config, md toml.MetaData) Config {
	if !md.IsDefined("menu", "touch_slop") {
		cfg.Menu.TouchSlop = 1
	}
	cfg.Menu.TouchSlop = max(cfg.Menu.TouchSlop, 0)
	if cfg.Menu.SettleDuration.Duration < 0 {
		cfg.Menu.SettleDuration.Duration = 0
	}
	if cfg.Menu.SettleDuration.Duration == 0 {
		cfg.Menu.SettleDuration.Duration = 250 * time.Millisecond
	}
	if cfg.Menu.FrameInterval.Duration <= 0 {
		cfg.Menu.FrameInterval.Duration = 16 * time.Millisecond
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	return cfg
}
