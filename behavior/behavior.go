package behavior

import (
	"fmt"
	"net/http"
)

// Behavior is the response policy applied to requests on the data endpoint.
// The set of implementations is closed: Status, Delay and Timeout.
type Behavior interface {
	fmt.Stringer
	// Token returns the control token that parses back into this behavior.
	Token() string
	sealed()
}

type Status struct {
	Code int
}

type Delay struct {
	Seconds uint64
}

// Timeout waits for the server's configured timeout duration.
type Timeout struct{}

var (
	_ Behavior = Status{}
	_ Behavior = Delay{}
	_ Behavior = Timeout{}
)

func Default() Behavior {
	return Status{Code: http.StatusOK}
}

func (s Status) Token() string {
	return fmt.Sprintf("%d", s.Code)
}

func (s Status) String() string {
	if text := http.StatusText(s.Code); text != "" {
		return fmt.Sprintf("Status(%d %s)", s.Code, text)
	}
	return fmt.Sprintf("Status(%d)", s.Code)
}

func (d Delay) Token() string {
	return fmt.Sprintf("%s%d", delayPrefix, d.Seconds)
}

func (d Delay) String() string {
	return fmt.Sprintf("Delay(%d sec)", d.Seconds)
}

func (Timeout) Token() string {
	return timeoutToken
}

func (Timeout) String() string {
	return "Timeout"
}

func (Status) sealed()  {}
func (Delay) sealed()   {}
func (Timeout) sealed() {}

// Kind is a short label for metrics and logs.
func Kind(b Behavior) string {
	switch b.(type) {
	case Status:
		return "status"
	case Delay:
		return "delay"
	case Timeout:
		return "timeout"
	}
	return "unknown"
}
