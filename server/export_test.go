package server

import "net/http"

func (s *Server) Recoverer(next http.Handler) http.Handler {
	return s.requestID(s.recoverer(next))
}
