package grpcserver

import (
	"context"
	"log/slog"
	"net"

	analystv1 "analystDashboard/api/analyst/v1"
	"analystDashboard/internal/auth"
	"analystDashboard/internal/config"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// NewGRPCServer builds a gRPC server with the auth interceptor, the analyst
// service and the standard health service registered.
func NewGRPCServer(cfg *config.Config, s *Server, logger *slog.Logger) *grpc.Server {
	if cfg == nil {
		panic("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Login and Register must be reachable without a token.
	interceptor := auth.NewUnaryAuthInterceptor(cfg.Auth.JWTSecret, logger.With("component", "grpc-auth"),
		healthCheckMethod,
		analystv1.AnalystService_Login_FullMethodName,
		analystv1.AnalystService_Register_FullMethodName,
	)
	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptor))

	analystv1.RegisterAnalystServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(analystv1.AnalystService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// StartGRPC starts the gRPC server on the configured address and returns a shutdown function.
func StartGRPC(cfg *config.Config, s *Server, logger *slog.Logger) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}
	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Plaintext; terminate TLS in front of the process if needed.
	srv := NewGRPCServer(cfg, s, logger)

	go func() {
		if err := srv.Serve(lis); err != nil && logger != nil {
			logger.Error("grpc serve stopped", "error", err)
		}
	}()

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}
