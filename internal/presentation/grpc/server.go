package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server wraps a gRPC server for the time deposit service.
type Server struct {
	server *grpc.Server
	health *health.Server
	logger *slog.Logger
	port   int
}

func NewServer(handler *TimeDepositHandler, port int, logger *slog.Logger, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)

	RegisterTimeDepositServiceServer(srv, handler)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(srv)
	}

	return &Server{
		server: srv,
		health: healthSrv,
		port:   port,
		logger: logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	return s.Serve(ctx, lis)
}

// Serve runs the server on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info("gRPC server starting", "addr", lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down gRPC server")
		s.health.Shutdown()
		s.server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
