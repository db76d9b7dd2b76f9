package behavior

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	timeoutToken = "timeout"
	delayPrefix  = "delay-"
)

// MaxDelaySeconds is the longest delay that still fits in a time.Duration.
const MaxDelaySeconds = uint64(math.MaxInt64 / int64(time.Second))

type ParseError struct {
	Token  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "invalid behavior '" + e.Token + "': " + e.Reason + ": " + e.Err.Error()
	}
	return "invalid behavior '" + e.Token + "': " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a control token into a Behavior.
// "timeout" and the "delay-" prefix are matched before status codes.
func Parse(token string) (Behavior, error) {
	if token == timeoutToken {
		return Timeout{}, nil
	}
	if strings.HasPrefix(token, delayPrefix) {
		return parseDelay(token)
	}
	return parseStatus(token)
}

func parseDelay(token string) (Behavior, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return nil, &ParseError{Token: token, Reason: "expected delay-<seconds>"}
	}
	sec, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, &ParseError{Token: token, Reason: "delay must be a non-negative integer", Err: err}
	}
	if sec > MaxDelaySeconds {
		return nil, &ParseError{Token: token, Reason: fmt.Sprintf("delay exceeds %d seconds", MaxDelaySeconds)}
	}
	return Delay{Seconds: sec}, nil
}

// parseStatus accepts three ASCII digits in 200..999. net/http sends 1xx
// codes as interim responses followed by its own 200, so they are refused.
func parseStatus(token string) (Behavior, error) {
	if len(token) != 3 {
		return nil, &ParseError{Token: token, Reason: "invalid status code"}
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return nil, &ParseError{Token: token, Reason: "invalid status code"}
		}
	}
	code, _ := strconv.Atoi(token)
	if code < 100 {
		return nil, &ParseError{Token: token, Reason: "status code out of range"}
	}
	if code < 200 {
		return nil, &ParseError{Token: token, Reason: "informational status codes cannot be served as a final response"}
	}
	return Status{Code: code}, nil
}

// MustParse is like Parse but panics on error. For constants and tests.
func MustParse(token string) Behavior {
	b, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return b
}
