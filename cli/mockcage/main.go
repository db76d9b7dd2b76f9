package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/loilo-inc/mockcage/cli/mockcage/commands"
	"github.com/loilo-inc/mockcage/cli/mockcage/upgrade"
	"github.com/loilo-inc/mockcage/env"
	"github.com/loilo-inc/mockcage/logger"
	"github.com/urfave/cli/v2"
)

// set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "mockcage"
	app.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
	app.Usage = "A configurable mock HTTP server"
	app.Description = "Serves a switchable status, delay or timeout behavior on GET / and HEAD /. POST /{behavior} changes it."
	envars := env.Envars{}
	cmds := commands.NewMockcageCommands(
		logger.NewPrinter(os.Stdout, os.Stderr),
		commands.DefaultServerProvider,
		commands.DefaultClientProvider,
	)
	app.Commands = []*cli.Command{
		cmds.Serve(&envars),
		cmds.Set(&envars),
		cmds.Probe(&envars),
		cmds.Upgrade(upgrade.NewUpgrader(nil), version),
	}
	app.DefaultCommand = "serve"
	app.Flags = commands.GlobalFlags(&envars)
	app.Before = commands.SetupLogger(&envars, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("mockcage failed")
	}
}
