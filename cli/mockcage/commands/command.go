package commands

import (
	"io"

	"github.com/loilo-inc/mockcage/env"
	"github.com/loilo-inc/mockcage/logger"
	"github.com/loilo-inc/mockcage/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

type ServerProvider func(envars *env.Envars) (types.Server, error)
type ClientProvider func(envars *env.Envars) (types.Client, error)

type MockcageCommands struct {
	printer        logger.Printer
	serverProvider ServerProvider
	clientProvider ClientProvider
}

func NewMockcageCommands(
	printer logger.Printer,
	serverProvider ServerProvider,
	clientProvider ClientProvider,
) *MockcageCommands {
	return &MockcageCommands{
		printer:        printer,
		serverProvider: serverProvider,
		clientProvider: clientProvider,
	}
}

func RequireArgs(
	ctx *cli.Context,
	minArgs int,
	maxArgs int,
) (first string, rest []string, err error) {
	if ctx.NArg() < minArgs {
		return "", nil, xerrors.Errorf("invalid number of arguments. expected at least %d", minArgs)
	} else if ctx.NArg() > maxArgs {
		return "", nil, xerrors.Errorf("invalid number of arguments. expected at most %d", maxArgs)
	}
	first = ctx.Args().First()
	rest = ctx.Args().Tail()
	return
}

// GlobalFlags are accepted before any subcommand.
func GlobalFlags(envars *env.Envars) []cli.Flag {
	return []cli.Flag{
		LogLevelFlag(&envars.LogLevel),
		LogFormatFlag(&envars.LogFormat),
	}
}

// SetupLogger returns a Before hook applying the global log flags.
func SetupLogger(envars *env.Envars, w io.Writer) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		return logger.Setup(envars.LogLevel, envars.LogFormat, w)
	}
}
