package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":9090",
		"-d", "postgres://u:p@h:5432/other",
		"-s", "flagsecret",
		"-t", "6",
		"-r", "240",
		"-w", "10",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, cfg.EndpointAddrHTTP, ":9090")
	assert.Equal(t, cfg.DatabaseDSN, "postgres://u:p@h:5432/other")
	assert.Equal(t, cfg.SecretKey, "flagsecret")
	assert.Equal(t, cfg.SessionValidityDuration, 6*time.Hour)
	assert.Equal(t, cfg.RememberValidityDuration, 240*time.Hour)
	assert.Equal(t, cfg.BcryptCost, 10)
}

func Test_parseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-config", "nope.json", "-a", ":7070"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, cfg.EndpointAddrHTTP, ":7070")
}
