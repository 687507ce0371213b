package web

import (
	"fmt"
	"net/http"

	"github.com/intelligrit/adventure-guide/internal/store"
)

// Server serves the parsed guide data as a read-only JSON API.
type Server struct {
	Store *store.Store
	Addr  string
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/destinations", s.handleDestinations)
	mux.HandleFunc("/api/chapters", s.handleChapters)
	mux.HandleFunc("/api/stats", s.handleStats)

	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}
