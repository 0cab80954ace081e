// Package config loads runtime configuration for the partykeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c, -config or --config.
//  3. Environment variables prefixed PARTYKEEPER_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   data directory (accounts and users/ tree)
//	-s string   account store: json or sqlite
//	-l string   log level: debug, info, warn, error
//	-m int      maximum characters in a rolled party
//
// # JSON schema
//
//	{
//	  "data_dir": "/home/me/.config/partykeeper",
//	  "account_store": "json",
//	  "log_level": "warn",
//	  "auto_load": true,
//	  "max_party_size": 4,
//	  "max_equipment": 20
//	}
//
// Keys absent from the file keep their previous value.
package config
