package commands

import (
	"github.com/loilo-inc/mockcage/types"
	"github.com/urfave/cli/v2"
)

func (c *MockcageCommands) Upgrade(
	upgrader types.Upgrader,
	currVersion string,
) *cli.Command {
	var preRelease bool
	return &cli.Command{
		Name:  "upgrade",
		Usage: "upgrade mockcage binary with the latest version",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "pre-release",
				Usage:       "include pre-release versions",
				Destination: &preRelease,
			},
		},
		Action: func(ctx *cli.Context) error {
			return upgrader.Upgrade(ctx.Context, &types.UpgradeInput{
				CurrentVersion: currVersion,
				PreRelease:     preRelease,
			})
		},
	}
}
