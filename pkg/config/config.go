// Package config loads the optional domhost.yaml file that tunes a renderer
// and its media players.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/domhost/pkg/media"
	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up by LoadOptional.
const FileName = "domhost.yaml"

// Config represents the optional domhost.yaml configuration.
type Config struct {
	Domhost  DomhostConfig  `yaml:"domhost"`
	Log      LogConfig      `yaml:"log"`
	Renderer RendererConfig `yaml:"renderer"`
	Media    MediaConfig    `yaml:"media"`
}

// DomhostConfig pins the host version a project expects.
type DomhostConfig struct {
	MinVersion string `yaml:"minVersion,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// RendererConfig contains renderer settings.
type RendererConfig struct {
	Metrics bool `yaml:"metrics,omitempty"`
}

// MediaConfig contains defaults for video views.
type MediaConfig struct {
	Fit    string   `yaml:"fit,omitempty"`
	Volume *float64 `yaml:"volume,omitempty"`
	Muted  bool     `yaml:"muted,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root string
	// LogLevel is empty when the file sets none, leaving the choice to
	// DOMHOST_LOG_LEVEL.
	LogLevel string
	Metrics  bool
	VideoFit media.FitMode
	Volume   float64
	Muted    bool
}

// LoadOptional reads domhost.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads domhost.yaml (if present), checks it against the running
// host version and resolves defaults.
func Resolve(dir, version string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir, version)
}

// Resolve validates cfg and fills defaults.
func (cfg *Config) Resolve(dir, version string) (*Resolved, error) {
	if err := checkMinVersion(cfg.Domhost.MinVersion, version); err != nil {
		return nil, err
	}

	level := strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if level != "" {
		if _, err := zerolog.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
		}
	}

	fit, err := media.ParseFitMode(strings.TrimSpace(cfg.Media.Fit))
	if err != nil {
		return nil, fmt.Errorf("media.fit: %w", err)
	}

	volume := 1.0
	if cfg.Media.Volume != nil {
		volume = *cfg.Media.Volume
		if volume < 0 || volume > 1 {
			return nil, fmt.Errorf("media.volume must be between 0 and 1 (got %g)", volume)
		}
	}

	return &Resolved{
		Root:     dir,
		LogLevel: level,
		Metrics:  cfg.Renderer.Metrics,
		VideoFit: fit,
		Volume:   volume,
		Muted:    cfg.Media.Muted,
	}, nil
}

// checkMinVersion fails when the running host is older than the version the
// project requires. Unparsable running versions, as in local builds, pass.
func checkMinVersion(minVersion, version string) error {
	minVersion = strings.TrimSpace(minVersion)
	if minVersion == "" {
		return nil
	}
	if !strings.HasPrefix(minVersion, "v") {
		minVersion = "v" + minVersion
	}
	if !semver.IsValid(minVersion) {
		return fmt.Errorf("domhost.minVersion is not a semantic version (%q)", minVersion)
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return nil
	}
	if semver.Compare(version, minVersion) < 0 {
		return fmt.Errorf("project requires domhost %s or newer (running %s)", minVersion, version)
	}
	return nil
}
