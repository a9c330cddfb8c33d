package config

import (
	"fmt"

	"github.com/marbledao/marble-config/utils"
	"github.com/urfave/cli/v2"
)

// Recognized deployment environments
const (
	Testnet = "testnet"
	Mainnet = "mainnet"
)

// Env represents configuration pertaining to a specific deployment environment
type Env struct {
	Environment  string
	DataDir      string
	OwnerAccount string
}

// NewEnvFromCLI parses an environment from a CLI provided string
// provided arguments override defaults from the --env argument
func NewEnvFromCLI(env string, ctx *cli.Context) (*Env, error) {
	marbleEnv, err := NewEnv(env)
	if err != nil {
		return marbleEnv, err
	}
	if ctx.IsSet(utils.DataDirFlag.Name) {
		marbleEnv.DataDir = ctx.String(utils.DataDirFlag.Name)
	}
	return marbleEnv, nil
}

// NewEnv returns the preconfigured environment without the need for CLI overrides
func NewEnv(env string) (*Env, error) {
	var marbleEnv Env
	switch env {
	case Testnet:
		marbleEnv = TestnetEnv
	case Mainnet:
		marbleEnv = MainnetEnv
	default:
		return nil, fmt.Errorf("could not parse unrecognized env: %v", env)
	}
	return &marbleEnv, nil
}
