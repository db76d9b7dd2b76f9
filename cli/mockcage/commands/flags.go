package commands

import (
	"github.com/loilo-inc/mockcage/env"
	"github.com/loilo-inc/mockcage/logger"
	"github.com/urfave/cli/v2"
)

func HostFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "host",
		EnvVars:     []string{env.HostKey},
		Usage:       "interface to bind",
		Destination: dest,
		Value:       env.DefaultHost,
	}
}

func PortFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "port",
		EnvVars:     []string{env.PortKey},
		Usage:       "port to listen on",
		Destination: dest,
		Value:       env.DefaultPort,
	}
}

func TimeoutFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "timeout",
		EnvVars:     []string{env.TimeoutKey},
		Usage:       "duration seconds a request is held by the 'timeout' behavior",
		Destination: dest,
		Value:       120,
	}
}

func InitialFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "initial",
		EnvVars:     []string{env.InitialKey},
		Usage:       "behavior at startup. status code, delay-<seconds> or timeout",
		Destination: dest,
		Value:       "200",
	}
}

func MetricsAddrFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "metrics-addr",
		EnvVars:     []string{env.MetricsAddrKey},
		Usage:       "address to expose prometheus metrics on. disabled if empty",
		Destination: dest,
		Category:    "ADVANCED",
	}
}

func LogLevelFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "log-level",
		EnvVars:     []string{env.LogLevelKey},
		Usage:       "debug, info, warn, error or fatal",
		Destination: dest,
		Value:       "info",
	}
}

func LogFormatFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "log-format",
		EnvVars:     []string{env.LogFormatKey},
		Usage:       "text, json or cli",
		Destination: dest,
		Value:       logger.FormatText,
	}
}

func EndpointFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "endpoint",
		EnvVars:     []string{env.EndpointKey},
		Usage:       "url of a running mockcage server",
		Destination: dest,
		Value:       env.DefaultEndpoint,
	}
}
