package utils

import "github.com/urfave/cli/v2"

// CLI flag variable definitions
var (
	NetworkFlag = &cli.StringFlag{
		Name:    "network",
		Usage:   "NEAR network to resolve bootstrap configuration for (e.g. testnet, mainnet)",
		Aliases: []string{"n"},
		Value:   "testnet",
	}
	EnvFlag = &cli.StringFlag{
		Name:  "env",
		Usage: "deployment environment (testnet, mainnet)",
		Value: "testnet",
	}
	DataDirFlag = &cli.StringFlag{
		Name:  "data-dir",
		Usage: "directory for storing various persistent files (e.g. log files)",
		Value: "datadir",
	}
	PrettyFlag = &cli.BoolFlag{
		Name:  "pretty",
		Usage: "indent the JSON configuration printed to stdout",
		Value: false,
	}
	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level for stdout",
		Aliases: []string{"l"},
		Value:   "info",
	}
	LogFileLevelFlag = &cli.StringFlag{
		Name:  "log-file-level",
		Usage: "log level for the log file",
		Value: "info",
	}
	LogMaxSizeFlag = &cli.IntFlag{
		Name:  "log-max-size",
		Usage: "maximum size in megabytes of the log file before it gets rotated",
		Value: 100,
	}
	LogMaxAgeFlag = &cli.IntFlag{
		Name:  "log-max-age",
		Usage: "maximum number of days to retain old log files based on the timestamp encoded in their filename",
		Value: 10,
	}
	LogMaxBackupsFlag = &cli.IntFlag{
		Name:  "log-max-backups",
		Usage: "maximum number of old log files to retain",
		Value: 10,
	}
)
