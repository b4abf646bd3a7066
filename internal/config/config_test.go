package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_GAME_BET_STEP", "5")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(500, cfg.Game.StartingBalance)
	a.Equal(25, cfg.Game.Ante)
	a.Equal(5, cfg.Game.BetStep)
	a.Equal(10, cfg.Room.MaxSessions)
	a.Equal("debug", cfg.Log.Level)
	a.False(cfg.Log.DisableAccessLogs)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_GAME_BET_STEP", "15")
	// ensure we aren't using a pointer
	cfg.Game.BetStep = 100
	cfg = Instance()
	a.Equal(5, cfg.Game.BetStep)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(1000, cfg.Game.StartingBalance)
	a.Equal(20, cfg.Game.Ante)
	a.Equal(10, cfg.Game.BetStep)
	a.Equal(1000, cfg.Room.MaxSessions)
	a.Equal("info", cfg.Log.Level)
}

func TestLoad_invalidFile(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/invalid.yaml")
	defer clear1()

	err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode testdata/invalid.yaml")
}

func TestLoad_emptyFile(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/empty.yaml")
	defer clear1()

	assert.NoError(t, Load())
	assert.Equal(t, DefaultConfig().Game, Instance().Game)
}
