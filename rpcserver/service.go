// Package rpcserver exposes engine.Solve as a long-lived gRPC service,
// mirroring the teacher's EvolutionServer/FederationServer wrapper
// pattern. Chromosomes are fixed to []float64 at the wire boundary
// since an arbitrary generic type cannot be described over RPC; the
// OperatorSet field selects one of a small registry of named operator
// bundles server-side.
package rpcserver

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/DeveloperPaul123/genetic/diagnostics"
	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/params"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// SolveRequest is the wire request for the Solve and SolveStream RPCs.
type SolveRequest struct {
	CorrelationID string            `json:"correlation_id"`
	Population    [][]float64       `json:"population"`
	Settings      engine.Settings   `json:"settings"`
	OperatorSet   string            `json:"operator_set"`
	MaxGenerations uint64           `json:"max_generations"`
}

// SolveResponse is the wire response of the Solve RPC.
type SolveResponse struct {
	CorrelationID string  `json:"correlation_id"`
	Chromosome    []float64 `json:"chromosome"`
	Fitness       float64 `json:"fitness"`
}

// GenerationUpdate is streamed once per generation by SolveStream.
type GenerationUpdate struct {
	CorrelationID  string  `json:"correlation_id"`
	Generation     uint64  `json:"generation"`
	BestFitness    float64 `json:"best_fitness"`
	PopulationSize uint64  `json:"population_size"`
}

// OperatorRegistry resolves a named operator bundle to a concrete
// params.Params for the fixed []float64 chromosome type. Name lookups
// unknown to the registry fail the RPC with codes.InvalidArgument.
type OperatorRegistry map[string]func(rng *xrand.Source) params.Params[[]float64]

// DefaultOperatorRegistry returns the registry installed by
// NewServer when none is supplied: a single "default" entry built from
// params.DefaultForSequence.
func DefaultOperatorRegistry() OperatorRegistry {
	return OperatorRegistry{
		"default": func(rng *xrand.Source) params.Params[[]float64] {
			return params.DefaultForSequence[float64](rng)
		},
	}
}

// Server implements the hand-registered Evolution gRPC service.
type Server struct {
	registry OperatorRegistry
	limiter  RateLimiter
	workers  int
}

// NewServer constructs a Server. A nil registry installs
// DefaultOperatorRegistry; a nil limiter installs an unlimited
// allow-all limiter.
func NewServer(registry OperatorRegistry, limiter RateLimiter, workers int) *Server {
	if registry == nil {
		registry = DefaultOperatorRegistry()
	}
	if limiter == nil {
		limiter = allowAll{}
	}
	if workers < 1 {
		workers = 1
	}
	return &Server{registry: registry, limiter: limiter, workers: workers}
}

type allowAll struct{}

func (allowAll) Allow(string) (bool, time.Time, int) { return true, time.Time{}, 0 }

// Solve runs engine.Solve to completion and returns the final result.
// It is registered as a unary RPC.
func (s *Server) Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error) {
	ensureCorrelationID(req)
	if ok, _, _ := s.limiter.Allow(req.CorrelationID); !ok {
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	build, ok := s.registry[req.OperatorSet]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown operator set %q", req.OperatorSet)
	}

	rng := xrand.New()
	p := build(rng)
	if req.MaxGenerations > 0 {
		p.Termination = termAfter[[]float64](req.MaxGenerations)
	}

	result, err := engine.Solve(ctx, req.Population, req.Settings, p.ToOperators(), nil)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "solve failed: %v", err)
	}

	return &SolveResponse{
		CorrelationID: req.CorrelationID,
		Chromosome:    result.Chromosome,
		Fitness:       result.Fitness,
	}, nil
}

// SolveStreamServer is the subset of the generated server-streaming
// handle that SolveStream needs. It matches
// grpc.ServerStream's Send/Context shape without depending on
// protoc-generated types.
type SolveStreamServer interface {
	Send(*GenerationUpdate) error
	Context() context.Context
}

// SolveStream runs engine.Solve, streaming one GenerationUpdate per
// generation. The last update's BestFitness is the run's final best
// fitness; the best chromosome itself is not sent on the stream.
func (s *Server) SolveStream(req *SolveRequest, stream SolveStreamServer) error {
	ensureCorrelationID(req)
	if ok, _, _ := s.limiter.Allow(req.CorrelationID); !ok {
		return status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	build, ok := s.registry[req.OperatorSet]
	if !ok {
		return status.Errorf(codes.InvalidArgument, "unknown operator set %q", req.OperatorSet)
	}

	rng := xrand.New()
	p := build(rng)
	if req.MaxGenerations > 0 {
		p.Termination = termAfter[[]float64](req.MaxGenerations)
	}

	var bestHistory []float64
	onIteration := func(st engine.Stats[[]float64]) {
		bestHistory = append(bestHistory, st.CurrentBest.Fitness)
		update := &GenerationUpdate{
			CorrelationID:  req.CorrelationID,
			Generation:     st.CurrentGenerationCount,
			BestFitness:    st.CurrentBest.Fitness,
			PopulationSize: st.PopulationSize,
		}
		if err := stream.Send(update); err != nil {
			log.Printf("rpcserver: SolveStream send failed: %v", err)
		}
	}

	_, err := engine.Solve(stream.Context(), req.Population, req.Settings, p.ToOperators(), onIteration)
	if err != nil {
		return status.Errorf(codes.Internal, "solve failed: %v", err)
	}
	spread := diagnostics.ComputeSpread(bestHistory)
	log.Printf("rpcserver: SolveStream %s converged after %d generations, best-fitness variance=%.4f",
		req.CorrelationID, len(bestHistory), spread.Variance)
	return nil
}

// ensureCorrelationID assigns a random correlation ID when the client
// left one unset, so every rate-limiter bucket key and log line has a
// stable identifier even for anonymous callers.
func ensureCorrelationID(req *SolveRequest) {
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}
}

func termAfter[C any](n uint64) engine.TerminationFunc[C] {
	var count uint64
	return func(_ C, _ float64) bool {
		count++
		return count >= n
	}
}

// ServiceDesc is the hand-authored grpc.ServiceDesc for the Evolution
// service; no .proto file or protoc-generated stub exists in this
// module, so registration uses grpc-go's documented ServiceDesc
// extension point directly together with the JSON wire codec in
// codec.go.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: "genetic.Evolution",
	HandlerType: (*evolutionServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Solve",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(SolveRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(evolutionServer).Solve(ctx, req.(*SolveRequest))
				}
				if interceptor == nil {
					return handler(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/genetic.Evolution/Solve"}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SolveStream",
			ServerStreams: true,
			Handler: func(srv any, stream grpc.ServerStream) error {
				req := new(SolveRequest)
				if err := stream.RecvMsg(req); err != nil {
					return err
				}
				return srv.(evolutionServer).SolveStream(req, &grpcSolveStream{stream})
			},
		},
	},
	Metadata: "genetic/evolution.proto",
}

type evolutionServer interface {
	Solve(context.Context, *SolveRequest) (*SolveResponse, error)
	SolveStream(*SolveRequest, SolveStreamServer) error
}

type grpcSolveStream struct {
	grpc.ServerStream
}

func (g *grpcSolveStream) Send(u *GenerationUpdate) error {
	return g.ServerStream.SendMsg(u)
}

// RegisterEvolutionServer registers s against grpcServer using the
// hand-authored ServiceDesc above.
func RegisterEvolutionServer(grpcServer *grpc.Server, s *Server) {
	grpcServer.RegisterService(&ServiceDesc, s)
}
