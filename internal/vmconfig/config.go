// Package vmconfig loads the emulator CLI's optional TOML configuration
// file: a Config struct with a DefaultConfig constructor and a LoadFrom
// loader, scaled down to the handful of settings SimpleASM's emulator
// exposes.
package vmconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the emulator's tunable settings. Flags passed on the
// command line always win over a loaded file, and the file always wins
// over these defaults.
type Config struct {
	VM struct {
		RAMSize uint32 `toml:"ram_size"`
		Steps   uint64 `toml:"steps"`
	} `toml:"vm"`

	Debug struct {
		PauseEachStep bool `toml:"pause_each_step"`
	} `toml:"debug"`
}

// DefaultConfig returns the emulator's literal defaults: a 0x8000-byte RAM
// and debug pausing off. The step count has no sensible default — the CLI
// requires it explicitly.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.VM.RAMSize = 0x8000
	cfg.Debug.PauseEachStep = false
	return cfg
}

// LoadFrom reads path as TOML over top of DefaultConfig's values. A
// missing file is not an error — it just means the defaults stand.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}
