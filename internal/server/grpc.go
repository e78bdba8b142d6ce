package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-event-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-event-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-event-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer blocks until the server stops. It returns nil after Shutdown.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Listen")
		return fmt.Errorf("grpc server: %w", err)
	}
	return g.serve(listener)
}

func (g *grpcServer) serve(listener net.Listener) error {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	g.handler.SetServing(true)

	if err := g.server.Serve(listener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.serve").Msg("gRPC server Serve")
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
