package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnv(t *testing.T) {
	env, err := NewEnv(Testnet)
	assert.NoError(t, err)
	assert.Equal(t, TestnetEnv, *env)

	env, err = NewEnv(Mainnet)
	assert.NoError(t, err)
	assert.Equal(t, MainnetEnv, *env)

	_, err = NewEnv("betanet")
	assert.Error(t, err)
}

func TestNewEnvReturnsCopy(t *testing.T) {
	env, err := NewEnv(Testnet)
	assert.NoError(t, err)

	env.DataDir = "elsewhere"
	assert.Equal(t, "datadir", TestnetEnv.DataDir)
}
