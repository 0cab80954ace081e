package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/partykeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/partykeeper/internal/roller"
)

const appDirName = "partykeeper"

// Config holds runtime settings for the partykeeper CLI.
type Config struct {
	DataDir      string `env:"PARTYKEEPER_DATA_DIR"`
	AccountStore string `env:"PARTYKEEPER_ACCOUNT_STORE"`
	LogLevel     string `env:"PARTYKEEPER_LOG_LEVEL"`
	AutoLoad     bool   `env:"PARTYKEEPER_AUTO_LOAD"`
	MaxPartySize int    `env:"PARTYKEEPER_MAX_PARTY_SIZE"`
	MaxEquipment int    `env:"PARTYKEEPER_MAX_EQUIPMENT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = defaultDataDir()
	c.AccountStore = accounts.StoreJSON
	c.LogLevel = "warn"
	c.AutoLoad = true
	c.MaxPartySize = roller.DefaultMaxPartySize
	c.MaxEquipment = roller.DefaultMaxEquipment
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(".", appDirName)
}

// Validate rejects settings the rest of the program cannot work with.
func (c *Config) Validate() error {
	switch c.AccountStore {
	case accounts.StoreJSON, accounts.StoreSQLite:
	default:
		return fmt.Errorf("unknown account store %q (want %s or %s)", c.AccountStore, accounts.StoreJSON, accounts.StoreSQLite)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if c.MaxPartySize < 1 {
		return fmt.Errorf("max party size must be positive, got %d", c.MaxPartySize)
	}
	if c.MaxEquipment < 1 {
		return fmt.Errorf("max equipment must be positive, got %d", c.MaxEquipment)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and the flags in args. Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
