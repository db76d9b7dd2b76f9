package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/loilo-inc/mockcage/behavior"
	"github.com/loilo-inc/mockcage/client"
	"github.com/loilo-inc/mockcage/env"
	"github.com/loilo-inc/mockcage/metrics"
	"github.com/loilo-inc/mockcage/server"
	"github.com/loilo-inc/mockcage/timeout"
	"github.com/loilo-inc/mockcage/types"
	"golang.org/x/sync/errgroup"
)

// app runs the mock server and, when configured, the metrics listener.
type app struct {
	server      *server.Server
	metrics     *metrics.Metrics
	metricsAddr string
}

func (a *app) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	if a.metricsAddr != "" {
		eg.Go(func() error {
			return a.metrics.Serve(ctx, a.metricsAddr)
		})
	}
	eg.Go(func() error {
		return a.server.Run(ctx)
	})
	return eg.Wait()
}

func DefaultServerProvider(envars *env.Envars) (types.Server, error) {
	var m *metrics.Metrics
	if envars.MetricsAddr != "" {
		m = metrics.NewMetrics()
	}
	srv := server.NewServer(&server.Input{
		Addr:    envars.Addr(),
		Store:   behavior.NewStore(envars.InitialBehavior()),
		Time:    &timeout.Time{},
		Timeout: envars.TimeoutDuration(),
		Metrics: m,
		Log:     log.Log,
	})
	return &app{server: srv, metrics: m, metricsAddr: envars.MetricsAddr}, nil
}

func DefaultClientProvider(envars *env.Envars) (types.Client, error) {
	// requests may be held by the server's timeout behavior
	hc := &http.Client{Timeout: envars.TimeoutDuration() + 30*time.Second}
	return client.New(envars.Endpoint, hc, &timeout.Time{}), nil
}
