package config

import (
	"github.com/marbledao/marble-config/logger"
	"github.com/marbledao/marble-config/utils"
	"github.com/urfave/cli/v2"
)

// MarbleConfig represents generic tool configuration
type MarbleConfig struct {
	Network string

	*Env
	*logger.Config
}

// NewMarbleConfigFromCLI builds the tool config from the CLI context
func NewMarbleConfigFromCLI(ctx *cli.Context) (*MarbleConfig, error) {
	env, err := NewEnvFromCLI(ctx.String(utils.EnvFlag.Name), ctx)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogFromCLI(ctx)
	if err != nil {
		return nil, err
	}

	config := &MarbleConfig{
		Network: ctx.String(utils.NetworkFlag.Name),
		Env:     env,
		Config:  log,
	}
	return config, nil
}
