// Package app wires the custody account service: storage, the execution
// environment, gRPC and the event stream.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	"github.com/louisbranch/custody/internal/platform/timeouts"
	custodygrpc "github.com/louisbranch/custody/internal/services/custody/api/grpc/custody"
	grpcmeta "github.com/louisbranch/custody/internal/services/custody/api/grpc/metadata"
	"github.com/louisbranch/custody/internal/services/custody/auth"
	"github.com/louisbranch/custody/internal/services/custody/genesis"
)

// Config configures the custody server.
type Config struct {
	Port        int
	EventsAddr  string
	DBPath      string
	GenesisPath string
	// Verifier authenticates bearer tokens. Without it every mutation is
	// rejected as unauthenticated.
	Verifier *auth.VerifierConfig
}

// Server hosts the account service and its event stream.
type Server struct {
	listener       net.Listener
	grpcServer     *grpc.Server
	health         *health.Server
	eventsListener net.Listener
	eventsServer   *http.Server
	runtime        *Runtime
	logger         zerolog.Logger
}

// New bootstraps the account from cfg and binds both listeners.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Server, error) {
	if strings.TrimSpace(cfg.GenesisPath) == "" {
		return nil, errors.New("genesis path is required")
	}
	g, err := genesis.Load(cfg.GenesisPath)
	if err != nil {
		return nil, err
	}
	rt, err := Bootstrap(ctx, cfg.DBPath, g, logger)
	if err != nil {
		return nil, err
	}
	srv, err := newServer(rt, cfg, logger)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	return srv, nil
}

func newServer(rt *Runtime, cfg Config, logger zerolog.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", cfg.Port, err)
	}

	var authenticator grpcmeta.Authenticator
	if cfg.Verifier != nil {
		authenticator = cfg.Verifier
	}
	service, err := custodygrpc.NewService(custodygrpc.Deps{
		Authority: rt.Authority,
		Env:       rt.Env,
		Journal:   rt.Store,
		Logger:    logger,
	})
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(authenticator, nil)),
	)
	custodyv1.RegisterAccountServiceServer(grpcServer, service)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(custodyv1.AccountService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	s := &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		runtime:    rt,
		logger:     logger,
	}

	if addr := strings.TrimSpace(cfg.EventsAddr); addr != "" {
		eventsListener, err := net.Listen("tcp", addr)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen on %s: %w", addr, err)
		}
		s.eventsListener = eventsListener
		s.eventsServer = &http.Server{
			Handler: newEventsHandler(&eventStream{
				env:       rt.Env,
				journal:   rt.Store,
				accountID: rt.Authority.Address().Hex(),
				logger:    logger,
			}),
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}
	return s, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// EventsAddr returns the event stream listener address, or "" when disabled.
func (s *Server) EventsAddr() string {
	if s == nil || s.eventsListener == nil {
		return ""
	}
	return s.eventsListener.Addr().String()
}

// Run creates and serves a custody server until the context ends.
func Run(ctx context.Context, cfg Config, logger zerolog.Logger) error {
	srv, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Serve blocks until the context ends or a listener fails.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		if err := s.runtime.Close(); err != nil {
			s.logger.Error().Err(err).Msg("close store")
		}
	}()

	s.logger.Info().
		Str("addr", s.Addr()).
		Str("account", s.runtime.Authority.Address().String()).
		Msg("custody server listening")

	serveErr := make(chan error, 2)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()
	if s.eventsServer != nil {
		s.logger.Info().Str("addr", s.EventsAddr()).Msg("event stream listening")
		go func() {
			serveErr <- s.eventsServer.Serve(s.eventsListener)
		}()
	}

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}
	s.shutdown()
	return handleErr(err)
}

func (s *Server) shutdown() {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.eventsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.eventsServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn().Err(err).Msg("event stream shutdown")
			_ = s.eventsServer.Close()
		}
	}
	s.grpcServer.GracefulStop()
	s.logger.Info().Msg("custody server stopped")
}
