package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8081")
//	-d string   PostgreSQL DSN
//	-k string   JWT signing key
//	-i string   JWT issuer
//	-u string   JWT audience
//	-t int      token lifetime, hours
//	-e string   environment ("Development" or "Production")
//
// Arguments are first filtered with flagx.FilterArgs so flags owned by other
// components (such as -c) do not break parsing.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-k", "-i", "-u", "-t", "-e"})

	fs := flag.NewFlagSet("identity", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTKey, "k", config.JWTKey, "JWT signing key")
	fs.StringVar(&config.JWTIssuer, "i", config.JWTIssuer, "JWT issuer")
	fs.StringVar(&config.JWTAudience, "u", config.JWTAudience, "JWT audience")
	lifetimeHours := fs.Int("t", int(config.TokenLifetime.Hours()), "token lifetime (in hours)")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenLifetime = time.Duration(*lifetimeHours) * time.Hour
		}
	})
}
