package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmaltsev/journal/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session HMAC secret key
//	-t int      session validity without remember, hours
//	-r int      session validity with remember, hours
//	-w int      bcrypt cost
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with the -c/-config flags
// consumed by the JSON stage. Duration flags are accepted as integer
// hours and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session_validity_duration (in hours)")
	rememberValidity := fs.Int("r", int(config.RememberValidityDuration.Hours()), "remember_validity_duration (in hours)")

	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Hour
	config.RememberValidityDuration = time.Duration(*rememberValidity) * time.Hour
}
