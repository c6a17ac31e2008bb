package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// #region descriptors

const (
	serviceName   = "wordle.v1.Solver"
	suggestMethod = "/wordle.v1.Solver/Suggest"
)

// SolverServer is the server API for the wordle.v1.Solver service.
type SolverServer interface {
	Suggest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// SolverClient is the client API for the wordle.v1.Solver service.
type SolverClient interface {
	Suggest(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

var solverServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Suggest", Handler: suggestHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wordle/v1/solver.proto",
}

// #endregion descriptors

// #region registration

// RegisterSolverServer attaches srv to a gRPC server.
func RegisterSolverServer(s grpc.ServiceRegistrar, srv SolverServer) {
	s.RegisterService(&solverServiceDesc, srv)
}

func suggestHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SolverServer).Suggest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: suggestMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SolverServer).Suggest(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// #endregion registration

// #region stub

type solverClient struct {
	cc grpc.ClientConnInterface
}

// NewSolverClient returns a stub for the wordle.v1.Solver service.
func NewSolverClient(cc grpc.ClientConnInterface) SolverClient {
	return &solverClient{cc: cc}
}

func (c *solverClient) Suggest(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, suggestMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// #endregion stub
