package logger

import (
	"fmt"
	"path"

	"github.com/marbledao/marble-config/utils"
	"github.com/urfave/cli/v2"
)

// Config represents logger options for where to write data and what data to write
type Config struct {
	AppName      string
	FileName     string
	FileLevel    Level
	ConsoleLevel Level
	MaxSize      int
	MaxBackups   int
	MaxAge       int
}

// NewLogFromCLI builds the logger configuration from the CLI context
func NewLogFromCLI(ctx *cli.Context) (*Config, error) {
	consoleLevel, err := ParseLevel(ctx.String(utils.LogLevelFlag.Name))
	if err != nil {
		return nil, err
	}

	fileLevel, err := ParseLevel(ctx.String(utils.LogFileLevelFlag.Name))
	if err != nil {
		return nil, err
	}

	config := Config{
		AppName:      ctx.App.Name,
		FileName:     path.Join(ctx.String(utils.DataDirFlag.Name), "logs", fmt.Sprintf("%v.log", ctx.App.Name)),
		FileLevel:    fileLevel,
		ConsoleLevel: consoleLevel,
		MaxSize:      ctx.Int(utils.LogMaxSizeFlag.Name),
		MaxBackups:   ctx.Int(utils.LogMaxBackupsFlag.Name),
		MaxAge:       ctx.Int(utils.LogMaxAgeFlag.Name),
	}
	return &config, nil
}
