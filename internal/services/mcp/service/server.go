package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	platformgrpc "github.com/louisbranch/custody/internal/platform/grpc"
	"github.com/louisbranch/custody/internal/platform/timeouts"
	"github.com/louisbranch/custody/internal/services/mcp/domain"
)

const (
	serverName    = "custody-mcp"
	serverVersion = "0.1.0"

	defaultHTTPAddr   = "localhost:8091"
	healthCheckPeriod = 30 * time.Second
)

// TransportKind selects how MCP clients reach the server.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	GRPCAddr  string
	Transport TransportKind
	HTTPAddr  string
	// Token is the bearer token tool calls present to the account service.
	// Without it only read tools succeed.
	Token  string
	Logger zerolog.Logger
}

// Server exposes custody tools over MCP.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
	logger    zerolog.Logger
}

// New dials the account service and registers every tool.
func New(ctx context.Context, cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.GRPCAddr)
	if addr == "" {
		return nil, errors.New("account service address is required")
	}
	conn, err := platformgrpc.DialWithHealth(ctx, addr, timeouts.GRPCDial, cfg.Logger, platformgrpc.ClientDialOptions(cfg.Token)...)
	if err != nil {
		return nil, fmt.Errorf("connect to custody server at %s: %w", addr, err)
	}
	s, err := newServer(custodyv1.NewAccountServiceClient(conn), cfg.Logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	s.conn = conn
	return s, nil
}

func newServer(client domain.AccountClient, logger zerolog.Logger) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	if err := registerTools(mcpServer, accountTools(client)); err != nil {
		return nil, err
	}
	return &Server{mcpServer: mcpServer, logger: logger}, nil
}

// Run serves MCP over the configured transport until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	s, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.Transport == TransportHTTP {
		return s.ServeHTTP(ctx, cfg.HTTPAddr)
	}
	return s.Serve(ctx)
}

// Serve runs MCP on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// ServeHTTP runs the streamable HTTP transport on addr until the context ends.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	if strings.TrimSpace(addr) == "" {
		addr = defaultHTTPAddr
	}
	defer s.closeConn()

	healthCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.monitorHealth(healthCtx)

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcpServer }, nil)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("MCP HTTP transport listening")
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancelShutdown()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP transport: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP transport: %w", err)
	}
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.closeConn()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// monitorHealth logs when the account service stops serving. Tool calls
// surface their own errors, so the transport stays up.
func (s *Server) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(healthCheckPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.conn == nil {
				continue
			}
			callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
			resp, err := grpc_health_v1.NewHealthClient(s.conn).Check(callCtx, &grpc_health_v1.HealthCheckRequest{})
			cancel()
			switch {
			case err != nil:
				s.logger.Warn().Err(err).Msg("custody health check failed")
			case resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING:
				s.logger.Warn().Str("status", resp.GetStatus().String()).Msg("custody server not serving")
			}
		}
	}
}

func (s *Server) closeConn() error {
	if s == nil || s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return conn.Close()
}
