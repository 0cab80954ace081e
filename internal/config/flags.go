package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/partykeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory
//	-s string   account store (json or sqlite)
//	-l string   log level
//	-m int      maximum party size
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// components are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.AccountStore, "s", cfg.AccountStore, "account store: json or sqlite")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.MaxPartySize, "m", cfg.MaxPartySize, "maximum characters in a rolled party")

	return fs.Parse(args)
}
