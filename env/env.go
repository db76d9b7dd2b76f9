package env

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/loilo-inc/mockcage/behavior"
	"github.com/loilo-inc/mockcage/timeout"
	"golang.org/x/xerrors"
)

type Envars struct {
	Host        string
	Port        int
	Timeout     int // sec
	Initial     string
	MetricsAddr string
	LogLevel    string
	LogFormat   string
	Endpoint    string
}

const HostKey = "MOCKCAGE_HOST"
const PortKey = "MOCKCAGE_PORT"
const TimeoutKey = "MOCKCAGE_TIMEOUT"
const InitialKey = "MOCKCAGE_INITIAL"
const MetricsAddrKey = "MOCKCAGE_METRICS_ADDR"
const LogLevelKey = "MOCKCAGE_LOG_LEVEL"
const LogFormatKey = "MOCKCAGE_LOG_FORMAT"
const EndpointKey = "MOCKCAGE_ENDPOINT"

const DefaultHost = "0.0.0.0"
const DefaultPort = 5555
const DefaultEndpoint = "http://localhost:5555"

// EnsureEnvars validates the values needed by the serve command.
func EnsureEnvars(dest *Envars) error {
	if dest.Port < 0 || dest.Port > 65535 {
		return xerrors.Errorf("--port [%s] must be between 0 and 65535", PortKey)
	}
	if dest.Timeout < 0 {
		return xerrors.Errorf("--timeout [%s] must not be negative", TimeoutKey)
	}
	if dest.Initial != "" {
		if _, err := behavior.Parse(dest.Initial); err != nil {
			return xerrors.Errorf("--initial [%s]: %w", InitialKey, err)
		}
	}
	return nil
}

// EnsureEndpoint validates the endpoint used by client commands.
func EnsureEndpoint(dest *Envars) error {
	if dest.Endpoint == "" {
		dest.Endpoint = DefaultEndpoint
	}
	u, err := url.Parse(dest.Endpoint)
	if err != nil {
		return xerrors.Errorf("--endpoint [%s] is invalid: %w", EndpointKey, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return xerrors.Errorf("--endpoint [%s] must be an http(s) url: %s", EndpointKey, dest.Endpoint)
	}
	return nil
}

func (e *Envars) Addr() string {
	host := e.Host
	if host == "" {
		host = DefaultHost
	}
	return net.JoinHostPort(host, strconv.Itoa(e.Port))
}

func (e *Envars) TimeoutDuration() time.Duration {
	return timeout.Seconds(e.Timeout)
}

func (e *Envars) InitialBehavior() behavior.Behavior {
	if e.Initial == "" {
		return behavior.Default()
	}
	if b, err := behavior.Parse(e.Initial); err == nil {
		return b
	}
	return behavior.Default()
}

// LocalEndpoint is the url a local client uses to reach the server.
func (e *Envars) LocalEndpoint() string {
	host := e.Host
	if host == "" || host == DefaultHost || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(e.Port))
}
