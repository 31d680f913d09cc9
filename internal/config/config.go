// Package config loads the statusview configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lilykb/statusview/internal/keymap"
)

type Serial struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

type Config struct {
	// Side is primary|secondary (left|right also accepted). Empty falls
	// back to the build-time default injected via -ldflags.
	Side string `yaml:"side"`

	// Layers is the index-ordered layer name table; keep it in sync with
	// the keymap layer order.
	Layers []string `yaml:"layers"`

	Serial Serial `yaml:"serial"`

	// Listen enables the companion HTTP server when non-empty.
	Listen string `yaml:"listen"`

	// SetupURL is encoded into the setup screen's QR code.
	SetupURL string `yaml:"setup_url"`

	// Font is an optional TTF/OTF path for the host canvas; empty keeps
	// the built-in 7x13 face.
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`
}

func Default() Config {
	return Config{
		Layers: append([]string(nil), keymap.DefaultLayerNames...),
		Serial: Serial{Device: "/dev/ttyACM0", Baud: 115200},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
