// Package config loads the user settings of boardbots, stored as JSON in
// $XDG_CONFIG_HOME/boardbots/config.json (see github.com/adrg/xdg for the search paths).
//
// All settings are optional: a missing file means the defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// RelativePath of the settings file within the XDG configuration directories.
var RelativePath = filepath.Join("boardbots", "config.json")

// Settings of the CLI.
type Settings struct {
	// Engines maps a game name to the configuration string of its default engine,
	// e.g. {"hex": "hex:depth=3,beam=20"}.
	Engines map[string]string `json:"engines,omitempty"`

	// BlockWeights overrides the block advisor weights, see blocks.ParseWeights.
	BlockWeights string `json:"block_weights,omitempty"`

	// ThinkingDelay before the engine moves, e.g. "500ms".
	ThinkingDelay string `json:"thinking_delay,omitempty"`

	// NoColor disables colors in the terminal.
	NoColor bool `json:"no_color,omitempty"`
}

// Default settings: engines with their default parameters, no delay.
func Default() *Settings {
	return &Settings{Engines: make(map[string]string)}
}

// Load the settings from the first configuration file found in the XDG paths, or the defaults if
// there is none.
func Load() (*Settings, error) {
	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		klog.V(1).Infof("No settings file found (%v), using defaults", err)
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads and validates the settings stored in path.
func LoadFile(path string) (*Settings, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read settings file %q", path)
	}
	settings := Default()
	if err = json.Unmarshal(contents, settings); err != nil {
		return nil, errors.Wrapf(err, "failed to parse settings file %q", path)
	}
	if settings.Engines == nil {
		settings.Engines = make(map[string]string)
	}
	if err = settings.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid settings file %q", path)
	}
	klog.V(1).Infof("Loaded settings from %q", path)
	return settings, nil
}

// Validate checks that each engine configuration is for the game it is registered under, and that the
// delay can be parsed.
func (s *Settings) Validate() error {
	for game, engineConfig := range s.Engines {
		name, _, _ := strings.Cut(engineConfig, ":")
		if strings.TrimSpace(name) != game {
			return errors.Errorf("engine configuration %q given for game %q", engineConfig, game)
		}
	}
	if _, err := s.Delay(); err != nil {
		return err
	}
	return nil
}

// EngineConfig returns the configuration string of the engine for game: the one in the settings, or
// just the game name, which selects the engine with its default parameters.
func (s *Settings) EngineConfig(game string) string {
	if engineConfig, found := s.Engines[game]; found {
		return engineConfig
	}
	return game
}

// Delay returns the parsed ThinkingDelay, 0 if not set.
func (s *Settings) Delay() (time.Duration, error) {
	if s.ThinkingDelay == "" {
		return 0, nil
	}
	delay, err := time.ParseDuration(s.ThinkingDelay)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid thinking_delay %q", s.ThinkingDelay)
	}
	return delay, nil
}

// Save the settings to the user's XDG configuration directory, creating it if needed, and returns the
// path of the file written.
func (s *Settings) Save() (string, error) {
	path, err := xdg.ConfigFile(RelativePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create the configuration directory for %q", RelativePath)
	}
	return path, s.SaveFile(path)
}

// SaveFile writes the settings, indented, to path.
func (s *Settings) SaveFile(path string) error {
	contents, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}
	if err = os.WriteFile(path, contents, 0o664); err != nil {
		return errors.Wrapf(err, "failed to write settings to %q", path)
	}
	return nil
}
