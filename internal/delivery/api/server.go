package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"surveyor/config"
	"surveyor/internal/delivery"
	apimiddleware "surveyor/internal/delivery/api/middleware"
	"surveyor/internal/delivery/api/router"
	"surveyor/internal/delivery/api/validator"
	"surveyor/internal/domain/lifecycle"
	"surveyor/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{cfg: params.Cfg, logger: params.Logger, server: echoServer}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// NewEcho builds an echo instance with the middleware chain, error handler and validator.
// Order matters: recover wraps everything, and the request id exists before the
// access log and the error handler read it.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	applyTimeouts(e.Server, cfg)

	e.Use(
		echomiddleware.Recover(),
		apimiddleware.NewRequestIDMiddleware(logger).Process,
		apimiddleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(corsConfig(cfg)),
	)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func applyTimeouts(srv *http.Server, cfg *config.Config) {
	t := cfg.HTTP.Timeouts
	srv.ReadTimeout = t.ReadTimeout
	srv.ReadHeaderTimeout = t.ReadHeaderTimeout
	srv.WriteTimeout = t.WriteTimeout
	srv.IdleTimeout = t.IdleTimeout
}

// corsConfig allows the browser front ends to send the Authorization header.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	c := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		c.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}
	c.AllowHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID}
	c.ExposeHeaders = []string{echo.HeaderXRequestID}

	return c
}

func (s *apiServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("addr", addr))

	h2s := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.server.StartH2CServer(addr, h2s); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
