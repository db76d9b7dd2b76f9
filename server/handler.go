package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/loilo-inc/mockcage/behavior"
)

// respond serves GET and HEAD on the data endpoint.
func (s *Server) respond(w http.ResponseWriter, r *http.Request) {
	b := s.store.Snapshot()
	s.metrics.ObserveRequest(r.Method, behavior.Kind(b))
	switch b := b.(type) {
	case behavior.Status:
		w.WriteHeader(b.Code)
	case behavior.Delay:
		if !s.wait(r.Context(), time.Duration(b.Seconds)*time.Second) {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			fmt.Fprintf(w, "Slept for %d sec\n", b.Seconds)
		}
	case behavior.Timeout:
		if !s.wait(r.Context(), s.timeout) {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	default:
		panic(fmt.Sprintf("unhandled behavior %T", b))
	}
}

// wait blocks only the calling request. It returns false when ctx ends
// first, which happens when the client goes away or the server shuts down.
func (s *Server) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	start := s.time.Now()
	timer := s.time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		s.metrics.ObserveWait(s.time.Now().Sub(start))
		return true
	case <-ctx.Done():
		log.FromContext(ctx).WithField("waited", s.time.Now().Sub(start).String()).
			Debug("request gone before the wait finished")
		return false
	}
}

// change serves POST /{token} on the control endpoint.
func (s *Server) change(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	l := log.FromContext(r.Context())
	b, err := behavior.Parse(token)
	if err != nil {
		s.metrics.ObserveChange(false)
		l.WithError(err).Warn("behavior change rejected")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	prev := s.store.Replace(b)
	s.metrics.ObserveChange(true)
	l.WithFields(log.Fields{
		"from": prev.String(),
		"to":   b.String(),
	}).Info("behavior changed")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Status changed to %s\n", b)
}
