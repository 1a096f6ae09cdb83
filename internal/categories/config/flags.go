package config

import (
	"flag"

	"github.com/dmitrijs2005/moviecategories/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8082")
//	-d string   PostgreSQL DSN
//	-k string   JWT signing key
//	-i string   JWT issuer
//	-u string   JWT audience
//	-s string   identity service base URL
//	-r uint     retries for identity service calls
//	-e string   environment ("Development" or "Production")
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-k", "-i", "-u", "-s", "-r", "-e"})

	fs := flag.NewFlagSet("categories", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTKey, "k", config.JWTKey, "JWT signing key")
	fs.StringVar(&config.JWTIssuer, "i", config.JWTIssuer, "JWT issuer")
	fs.StringVar(&config.JWTAudience, "u", config.JWTAudience, "JWT audience")
	fs.StringVar(&config.AuthAPIURL, "s", config.AuthAPIURL, "identity service base URL")
	fs.Uint64Var(&config.AuthRetries, "r", config.AuthRetries, "retries for identity service calls")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
