package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/handler"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, addr string, h http.Handler) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}
	return &server{
		httpServer:      newHTTPServer(h, cfg, logger.Nop()),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.Nop(),
	}
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0", http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRun_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := newTestServer(t, ln.Addr().String(), http.NotFoundHandler())

	err = s.run(context.Background())
	require.ErrorIs(t, err, ErrListen)
}

func TestHTTPServer_ServesUntilShutdown(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "pong")
	}))

	ln, err := s.httpServer.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.httpServer.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, <-done)
}
