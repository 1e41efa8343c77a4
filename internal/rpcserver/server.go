// Package rpcserver exposes expression evaluation as the gRPC service
// radix.v1.Calculator, defined by an embedded .proto parsed at start-up.
package rpcserver

import (
	"context"
	"fmt"
	"net"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"v.io/x/lib/vlog"

	"github.com/funvibe/radixquest/internal/config"
	"github.com/funvibe/radixquest/internal/value"
	"github.com/funvibe/radixquest/pkg/radix"
)

// Server serves the Calculator service. Options not set in a request fall
// back to Defaults.
type Server struct {
	Defaults radix.Options

	grpc   *grpc.Server
	method *desc.MethodDescriptor
}

// New builds a server and registers the Calculator service on it.
func New(defaults radix.Options, opts ...grpc.ServerOption) (*Server, error) {
	sd, err := LoadService()
	if err != nil {
		return nil, err
	}
	s := &Server{
		Defaults: defaults,
		method:   sd.FindMethodByName(config.EvaluateMethod),
	}

	opts = append([]grpc.ServerOption{grpc.UnaryInterceptor(logRequests)}, opts...)
	s.grpc = grpc.NewServer(opts...)
	s.grpc.RegisterService(s.serviceDesc(sd), s)
	return s, nil
}

func (s *Server) serviceDesc(sd *desc.ServiceDescriptor) *grpc.ServiceDesc {
	md := s.method
	fullMethod := "/" + config.ServiceName + "/" + config.EvaluateMethod
	return &grpc.ServiceDesc{
		ServiceName: config.ServiceName,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{{
			MethodName: config.EvaluateMethod,
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				h := srv.(*Server)
				in := dynamic.NewMessage(md.GetInputType())
				if err := dec(in); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return h.handleEvaluate(ctx, in)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return h.handleEvaluate(ctx, req.(*dynamic.Message))
				}
				return interceptor(ctx, in, info, handler)
			},
		}},
		Streams:  []grpc.StreamDesc{},
		Metadata: sd.GetFile().GetName(),
	}
}

func (s *Server) handleEvaluate(ctx context.Context, in *dynamic.Message) (interface{}, error) {
	resp, err := s.Evaluate(ctx, decodeRequest(in))
	if err != nil {
		return nil, err
	}
	out, err := encodeResponse(s.method.GetOutputType(), resp)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// Evaluate runs one request. Errors carry a gRPC status code.
func (s *Server) Evaluate(ctx context.Context, req Request) (Response, error) {
	opts, err := s.options(req)
	if err != nil {
		return Response{}, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := radix.Evaluate(req.Expression, opts)
	if err != nil {
		return Response{}, statusFor(err)
	}
	out := radix.Format(res, opts)
	return Response{
		Primary:    out.Primary,
		Alternates: out.Alternates,
		Bits:       out.Bits,
		Note:       out.Note,
		Kind:       opts.Mode.String(),
	}, nil
}

func (s *Server) options(req Request) (radix.Options, error) {
	opts := s.Defaults
	var err error
	if req.InputBase != "" {
		if opts.InputBase, err = value.ParseInputBase(req.InputBase); err != nil {
			return opts, err
		}
	}
	if req.DisplayBase != "" {
		if opts.DisplayBase, err = value.ParseDisplayBase(req.DisplayBase); err != nil {
			return opts, err
		}
	}
	if req.Mode != "" {
		if opts.Mode, err = value.ParseMode(req.Mode); err != nil {
			return opts, err
		}
	}
	if req.BitWidth != 0 {
		opts.BitWidth = int(req.BitWidth)
	}
	switch req.Signedness {
	case "":
	case "signed":
		opts.Signed = true
	case "unsigned":
		opts.Signed = false
	default:
		return opts, fmt.Errorf("unknown signedness %q", req.Signedness)
	}
	return opts, opts.Validate()
}

// statusFor maps evaluation errors onto gRPC codes: malformed or
// unevaluable input is the caller's fault, a stack error is ours.
func statusFor(err error) error {
	switch radix.KindOf(err) {
	case radix.LexError, radix.SyntaxError, radix.SemanticError:
		return status.Error(codes.InvalidArgument, err.Error())
	case radix.StackError:
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}

func logRequests(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if msg, ok := req.(*dynamic.Message); ok {
		vlog.VI(1).Infof("%s %q", info.FullMethod, stringField(msg, "expression"))
	}
	resp, err := handler(ctx, req)
	if err != nil {
		vlog.VI(1).Infof("%s failed: %v", info.FullMethod, err)
	}
	return resp, err
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vlog.Infof("serving %s on %s", config.ServiceName, lis.Addr())
		return s.grpc.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.grpc.GracefulStop()
		return nil
	})
	return g.Wait()
}

// Stop closes all connections immediately.
func (s *Server) Stop() {
	s.grpc.Stop()
}
