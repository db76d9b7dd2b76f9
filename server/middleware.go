package server

import (
	"net/http"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// requestID tags the request with an id and puts a request scoped logger
// into its context.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := log.NewContext(r.Context(), s.log.WithField("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.FromContext(r.Context()).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
			"status": ww.Status(),
			"bytes":  ww.BytesWritten(),
			"dur":    s.time.Now().Sub(start).String(),
		}).Debug("http_access")
	})
}

// recoverer turns a handler panic into a 500, unless a status was already
// written, and resets the behavior store to its initial value so one bad
// request cannot wedge later ones.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			prev := s.store.Reset()
			status := ww.Status()
			log.FromContext(r.Context()).WithFields(log.Fields{
				"panic":    rvr,
				"behavior": prev.String(),
			}).Warn("handler panicked. behavior reset to initial")
			if status == 0 {
				ww.WriteHeader(http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(ww, r)
	})
}
