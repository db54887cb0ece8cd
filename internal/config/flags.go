package config

import (
	"flag"
	"os"

	"github.com/khanhtv/traincrew/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory (default from Config)
//	-b string   base URL that share tokens are appended to
//	-q int      storage quota in bytes
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.ShareBaseURL, "b", cfg.ShareBaseURL, "base URL for share links")
	fs.Int64Var(&cfg.QuotaBytes, "q", cfg.QuotaBytes, "storage quota in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
