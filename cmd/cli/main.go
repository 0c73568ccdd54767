package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/kweitzel/clockface/cmd/cli/commands"
	"github.com/kweitzel/clockface/cmd/cli/config"
	"github.com/kweitzel/clockface/cmd/cli/console"
	"github.com/kweitzel/clockface/internal/setup"
)

func cli(viper *viper.Viper, console *console.Console, cfg *config.Cfg) setup.ProgramExecutor {
	return commands.NewCliExecutor(viper, console, cfg)
}

func main() {
	result := setup.Run(cli)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
