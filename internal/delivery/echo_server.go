package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"market/internal/domain/lifecycle"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance on a port and shuts it down when the app stops.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

type EchoOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 next to HTTP/1.1.
func WithH2C(h2 *http2.Server) EchoOption {
	return func(s *EchoServer) {
		s.h2c = h2
	}
}

func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, opts ...EchoOption) *EchoServer {
	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks until the server is shut down. A clean shutdown returns nil.
func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("host_port", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
