package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-insight-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener
	watchCtx        context.Context
	stopWatch       context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	watchCtx, stopWatch := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		watchCtx:        watchCtx,
		stopWatch:       stopWatch,
		logger:          logger,
	}, nil
}

// RunServer starts the health probe loop and serves until Shutdown.
func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.watchCtx, myGRPC.DefaultProbeInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC health server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Drain reports NOT_SERVING without stopping the listener.
func (g *grpcServer) Drain() {
	g.handler.Shutdown()
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
