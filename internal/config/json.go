package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/partykeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from a zero value.
type JsonConfig struct {
	DataDir      *string `json:"data_dir"`
	AccountStore *string `json:"account_store"`
	LogLevel     *string `json:"log_level"`
	AutoLoad     *bool   `json:"auto_load"`
	MaxPartySize *int    `json:"max_party_size"`
	MaxEquipment *int    `json:"max_equipment"`
}

// parseJson overlays cfg with values from the JSON file named by -c, -config
// or --config in args. Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile, err := flagx.ConfigFileFlags(args)
	if err != nil {
		return fmt.Errorf("config flag: %w", err)
	}
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.AccountStore != nil {
		cfg.AccountStore = *jc.AccountStore
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.AutoLoad != nil {
		cfg.AutoLoad = *jc.AutoLoad
	}
	if jc.MaxPartySize != nil {
		cfg.MaxPartySize = *jc.MaxPartySize
	}
	if jc.MaxEquipment != nil {
		cfg.MaxEquipment = *jc.MaxEquipment
	}
	return nil
}
