// Command evolve-server runs the Evolution gRPC service described in
// package rpcserver.
package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"github.com/DeveloperPaul123/genetic/rpcserver"
)

func main() {
	v := viper.New()
	v.SetEnvPrefix("EVOLVE")
	v.AutomaticEnv()
	v.SetDefault("listen_addr", ":9443")
	v.SetDefault("workers", 4)
	v.SetDefault("rate_limit_rpm", 60)

	if cfgFile := os.Getenv("EVOLVE_CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("failed to read config file %s: %v", cfgFile, err)
		}
	}

	listenAddr := v.GetString("listen_addr")
	workers := v.GetInt("workers")
	rateLimit := v.GetInt("rate_limit_rpm")

	limiter := rpcserver.NewTokenBucket(rateLimit)
	srv := rpcserver.NewServer(nil, limiter, workers)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(rpcserver.LoggingInterceptor),
	)
	rpcserver.RegisterEvolutionServer(grpcServer, srv)

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down evolution server...")
		grpcServer.GracefulStop()
	}()

	log.Printf("evolution server listening on %s (workers=%d, rate_limit_rpm=%d)", listenAddr, workers, rateLimit)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
