package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with the timeouts this service runs with. The
// write timeout leaves room for a lookup that exhausts its fetch budget.
func New(addr string, handler http.Handler, fetchTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      fetchTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
