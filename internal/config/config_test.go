package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pokerroom-server/internal/util"
)

func TestInstance(t *testing.T) {
	config = Config{}
	defer util.SetEnv("PRS_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("PRS_JWT_SECRET", "env-secret")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("env-secret", cfg.JWT.Secret)
	a.Equal(20, cfg.Table.DefaultBigBlind)
	a.Equal(8, cfg.Table.DefaultMaxPlayers, "defaults are kept when the file omits them")
	a.Equal(30*time.Second, cfg.ActionTimeout())
	a.Equal([]string{"https://poker.example.domain"}, cfg.CORS.AllowedOrigins)

	// ensure that it's only loaded once
	_ = os.Setenv("PRS_JWT_SECRET", "other-secret")
	// ensure we aren't using a pointer
	cfg.JWT.Secret = "bad"
	cfg = Instance()
	a.Equal("env-secret", cfg.JWT.Secret)
}

func TestLoad_environment(t *testing.T) {
	defer util.SetEnv("PRS_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("PRS_TABLE_START_GAME_DELAY", "3")()
	defer util.SetEnv("PRS_LOG_DISABLE_ACCESS_LOGS", "true")()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(3*time.Second, cfg.StartGameDelay())
	a.True(cfg.Log.DisableAccessLogs)
}

func TestLoad_missingFile(t *testing.T) {
	defer util.SetEnv("PRS_CONFIG_FILE", "testdata/does-not-exist.yaml")()

	a := assert.New(t)
	a.NoError(Load())
	a.Equal(DefaultConfig().Table, Instance().Table)
	a.Equal(":5000", Instance().Host)
}

func TestLoad_invalid(t *testing.T) {
	defer util.SetEnv("PRS_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("PRS_TABLE_DEFAULT_BIG_BLIND", "lots")()

	assert.Error(t, Load())
}
