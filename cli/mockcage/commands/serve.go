package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/loilo-inc/mockcage/env"
	"github.com/loilo-inc/mockcage/logger"
	"github.com/urfave/cli/v2"
)

func (c *MockcageCommands) Serve(envars *env.Envars) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Usage:       "start the mock server",
		Description: "serve GET/HEAD / with the current behavior and POST /{token} to change it",
		Flags: []cli.Flag{
			HostFlag(&envars.Host),
			PortFlag(&envars.Port),
			TimeoutFlag(&envars.Timeout),
			InitialFlag(&envars.Initial),
			MetricsAddrFlag(&envars.MetricsAddr),
		},
		Action: func(ctx *cli.Context) error {
			if err := env.EnsureEnvars(envars); err != nil {
				return err
			}
			srv, err := c.serverProvider(envars)
			if err != nil {
				return err
			}
			logger.PrintUsage(c.printer, envars.LocalEndpoint())
			sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(sigCtx)
		},
	}
}
