package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	handler := http.NewServeMux()
	srv := New(":8080", handler)

	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, http.Handler(handler), srv.Handler)
	assert.Equal(t, 5*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
	assert.Equal(t, 120*time.Second, srv.IdleTimeout)
	// A run response may stall on provisioning backoff; writes must not time out.
	assert.Zero(t, srv.WriteTimeout)
}
