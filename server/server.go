package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/loilo-inc/mockcage/behavior"
	"github.com/loilo-inc/mockcage/metrics"
	"github.com/loilo-inc/mockcage/timeout"
	"github.com/loilo-inc/mockcage/types"
	"golang.org/x/xerrors"
)

const defaultShutdownGrace = 10 * time.Second

type Input struct {
	Addr    string
	Store   *behavior.Store
	Time    types.Time
	Timeout time.Duration
	Metrics *metrics.Metrics
	Log     log.Interface
	// ShutdownGrace bounds how long Run waits for in-flight requests.
	ShutdownGrace time.Duration
}

type Server struct {
	addr    string
	store   *behavior.Store
	time    types.Time
	timeout time.Duration
	metrics *metrics.Metrics
	log     log.Interface
	grace   time.Duration
}

var _ types.Server = (*Server)(nil)

func NewServer(input *Input) *Server {
	s := &Server{
		addr:    input.Addr,
		store:   input.Store,
		time:    input.Time,
		timeout: input.Timeout,
		metrics: input.Metrics,
		log:     input.Log,
		grace:   input.ShutdownGrace,
	}
	if s.store == nil {
		s.store = behavior.NewStore(nil)
	}
	if s.time == nil {
		s.time = &timeout.Time{}
	}
	if s.timeout <= 0 {
		s.timeout = timeout.Default
	}
	if s.log == nil {
		s.log = log.Log
	}
	if s.grace <= 0 {
		s.grace = defaultShutdownGrace
	}
	return s
}

func (s *Server) Store() *behavior.Store {
	return s.store
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(s.recoverer)
	r.Get("/", s.respond)
	r.Head("/", s.respond)
	r.Post("/{token}", s.change)
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return xerrors.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
// Requests held by a delay are released when ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Infof("listening on %s", ln.Addr())
	select {
	case err := <-errCh:
		return xerrors.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return xerrors.Errorf("graceful shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
