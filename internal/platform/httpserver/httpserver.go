// Package httpserver builds the process's HTTP server.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the onboarding API server. No WriteTimeout is set: a run
// response legitimately waits out provisioning retry backoff, which can take
// several minutes against a degraded chat backend. Request bodies are small
// JSON payloads, so the read timeouts stay tight.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
