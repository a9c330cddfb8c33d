package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marbledao/marble-config/blockchain/network"
	"github.com/marbledao/marble-config/config"
	log "github.com/marbledao/marble-config/logger"
	"github.com/marbledao/marble-config/utils"
	"github.com/marbledao/marble-config/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "marbleconf",
		Usage: "resolve Marble marketplace bootstrap configuration for a NEAR network",
		Flags: []cli.Flag{
			utils.NetworkFlag,
			utils.EnvFlag,
			utils.DataDirFlag,
			utils.PrettyFlag,
			utils.LogLevelFlag,
			utils.LogFileLevelFlag,
			utils.LogMaxSizeFlag,
			utils.LogMaxAgeFlag,
			utils.LogMaxBackupsFlag,
		},
		Action: runConfig,
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func runConfig(c *cli.Context) error {
	marbleConfig, err := config.NewMarbleConfigFromCLI(c)
	if err != nil {
		return err
	}

	err = log.Init(marbleConfig.Config, version.BuildVersion)
	if err != nil {
		return err
	}
	defer log.Exit()

	// unknown names degrade to the base mapping by provider contract, so
	// resolution itself cannot fail
	conf := network.GetConfig(marbleConfig.Network)
	log.Infof("resolved configuration for network %v (env: %v)", marbleConfig.Network, marbleConfig.Environment)

	var out []byte
	if c.Bool(utils.PrettyFlag.Name) {
		out, err = json.MarshalIndent(conf, "", "  ")
	} else {
		out, err = json.Marshal(conf)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
