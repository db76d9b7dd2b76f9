package commands

import (
	"github.com/loilo-inc/mockcage/env"
	"github.com/urfave/cli/v2"
)

func (c *MockcageCommands) Set(envars *env.Envars) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "change the behavior of a running server",
		ArgsUsage: "<status code | delay-<seconds> | timeout>",
		Flags: []cli.Flag{
			EndpointFlag(&envars.Endpoint),
		},
		Action: func(ctx *cli.Context) error {
			token, _, err := RequireArgs(ctx, 1, 1)
			if err != nil {
				return err
			}
			if err := env.EnsureEndpoint(envars); err != nil {
				return err
			}
			cl, err := c.clientProvider(envars)
			if err != nil {
				return err
			}
			msg, err := cl.SetBehavior(ctx.Context, token)
			if err != nil {
				return err
			}
			c.printer.PrintOutf("%s", msg)
			return nil
		},
	}
}

func (c *MockcageCommands) Probe(envars *env.Envars) *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "send one GET to a running server and report the response",
		Flags: []cli.Flag{
			EndpointFlag(&envars.Endpoint),
		},
		Action: func(ctx *cli.Context) error {
			if err := env.EnsureEndpoint(envars); err != nil {
				return err
			}
			cl, err := c.clientProvider(envars)
			if err != nil {
				return err
			}
			res, err := cl.Probe(ctx.Context)
			if err != nil {
				return err
			}
			c.printer.PrintOutf("status: %d\nelapsed: %s\n", res.StatusCode, res.Elapsed)
			if res.Body != "" {
				c.printer.PrintOutf("%s", res.Body)
			}
			return nil
		},
	}
}
