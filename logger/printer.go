package logger

import (
	"fmt"
	"io"
)

// Printer writes command output that is meant for the user, not the log:
// the usage banner of serve and the results of set and probe.
type Printer interface {
	PrintOutf(format string, args ...any)
	PrintErrf(format string, args ...any)
}

type console struct {
	out    io.Writer
	errOut io.Writer
}

func NewPrinter(out io.Writer, errOut io.Writer) Printer {
	return &console{out: out, errOut: errOut}
}

func (c *console) PrintOutf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) PrintErrf(format string, args ...any) {
	fmt.Fprintf(c.errOut, format, args...)
}

// usageTokens are the example behaviors shown in the banner.
var usageTokens = []string{"200", "500", "delay-20", "timeout"}

// PrintUsage shows how to drive a server listening at endpoint.
func PrintUsage(p Printer, endpoint string) {
	p.PrintOutf("USAGE:\n")
	for _, token := range usageTokens {
		p.PrintOutf("curl -X POST %s/%s\n", endpoint, token)
	}
}
