package logger

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"golang.org/x/xerrors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCli  = "cli"
)

func NewHandler(format string, w io.Writer) (log.Handler, error) {
	switch format {
	case "", FormatText:
		return text.New(w), nil
	case FormatJSON:
		return json.New(w), nil
	case FormatCli:
		return cli.New(w), nil
	}
	return nil, xerrors.Errorf("unknown log format '%s'. expected one of text, json, cli", format)
}

// Setup configures the global apex/log logger.
func Setup(level string, format string, w io.Writer) error {
	lv, err := log.ParseLevel(level)
	if err != nil {
		return xerrors.Errorf("invalid log level '%s': %w", level, err)
	}
	h, err := NewHandler(format, w)
	if err != nil {
		return err
	}
	log.SetHandler(h)
	log.SetLevel(lv)
	return nil
}
