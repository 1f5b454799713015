// Package config loads the TOML configuration shared by the sm83 tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/sm83/internal/types"
)

// NoCompression as the compression level stores snapshots uncompressed.
const NoCompression = -1

type Config struct {
	Model       types.Model `toml:"model"`
	LogLevel    string      `toml:"log_level"`
	SnapshotDir string      `toml:"snapshot_dir"`
	Compression int         `toml:"compression"` // brotli quality, or NoCompression
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Model:       types.GB,
		LogLevel:    "info",
		SnapshotDir: "states",
		Compression: 9,
	}
}

// Load reads the configuration at path over the defaults. A missing
// file yields the defaults, unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !c.Model.Valid() {
		return fmt.Errorf("config: %w: %d", types.ErrUnknownModel, uint8(c.Model))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.SnapshotDir == "" {
		return errors.New("config: snapshot_dir is empty")
	}
	if c.Compression != NoCompression && (c.Compression < 0 || c.Compression > 11) {
		return fmt.Errorf("config: compression %d out of range (0-11, or -1 to disable)", c.Compression)
	}
	return nil
}
