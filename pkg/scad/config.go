package scad

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Quality selects the curve resolution of emitted scripts.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

// Detail returns the OpenSCAD $fn value for the quality level.
func (q Quality) Detail() int {
	switch q {
	case QualityLow:
		return 5
	case QualityHigh:
		return 60
	default:
		return 20
	}
}

// Config controls emission. It is passed explicitly into every render
// call; there is no ambient configuration.
type Config struct {
	// Precision is the number of decimals written for every coordinate.
	Precision int `yaml:"precision"`
	// Detail is the OpenSCAD $fn curve resolution.
	Detail int `yaml:"detail"`
	// DefaultDotSize is the dot size model programs fall back to when
	// their own config does not set one.
	DefaultDotSize float64 `yaml:"default_dot_size"`
}

// DefaultConfig returns the config used when nothing is specified:
// 3 decimals, medium quality, unit dots.
func DefaultConfig() Config {
	return Config{
		Precision:      3,
		Detail:         QualityMedium.Detail(),
		DefaultDotSize: 1,
	}
}

// LoadConfig reads a YAML config file. Omitted fields keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scad: reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scad: parsing config %s: %w", path, err)
	}
	if cfg.Precision < 0 || cfg.Precision > 12 {
		return Config{}, fmt.Errorf("scad: precision %d out of range", cfg.Precision)
	}
	if cfg.Detail < 1 {
		return Config{}, fmt.Errorf("scad: detail %d out of range", cfg.Detail)
	}
	return cfg, nil
}
