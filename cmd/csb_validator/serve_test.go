package main

import (
	"testing"

	"github.com/jonathan/csb-validator/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestServerConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 9000
	cfg.Server.RateLimit.PerMinute = 5

	sc := serverConfig(false, &cfg)
	assert.Equal(t, 9000, sc.Port)
	assert.Equal(t, 5, sc.RateLimit.PerMinute)

	resetFlags(t, serveCmd)
	servePort = 7070
	sc = serverConfig(true, &cfg)
	assert.Equal(t, 7070, sc.Port)
}

func TestServerConfig_NilUsesDefaults(t *testing.T) {
	sc := serverConfig(false, nil)
	assert.Equal(t, config.Default().Server.Port, sc.Port)
}

func TestSchemaCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	stdout, _, err := execute(t, "schema")
	assert.NoError(t, err)
	assert.Contains(t, stdout, "CSB validation report")
}
