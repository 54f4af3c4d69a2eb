package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmaltsev/journal/internal/flagx"
	"github.com/dmaltsev/journal/internal/timex"
)

// JsonConfig is the JSON-unmarshalling DTO for the config file. It uses
// timex.Duration for interval fields, which accepts both string values
// such as "24h" and integer nanoseconds. After unmarshalling, its fields
// are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrHTTP         string         `json:"endpoint_addr_http"`
	DatabaseDSN              string         `json:"database_dsn"`
	SecretKey                string         `json:"secret_key"`
	SessionValidityDuration  timex.Duration `json:"session_validity_duration"`
	RememberValidityDuration timex.Duration `json:"remember_validity_duration"`
	BcryptCost               int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from a JSON file into the
// provided Config instance. The file path comes from the -c or -config
// command-line flags; when neither is set, no JSON file is loaded. If
// the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	config.RememberValidityDuration = time.Duration(c.RememberValidityDuration.Duration)
	config.BcryptCost = c.BcryptCost
}
