package rpcserver

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
)

// LoggingInterceptor logs method, status, and duration for every
// unary RPC, matching the federation server's loggingInterceptor.
func LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	outcome := "OK"
	if err != nil {
		outcome = "ERROR"
	}

	log.Printf("gRPC %s %s %v", info.FullMethod, outcome, duration)

	return resp, err
}
