package rpcserver

import (
	"context"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/funvibe/radixquest/internal/config"
)

// Client calls a remote Calculator service.
type Client struct {
	conn   *grpc.ClientConn
	method *desc.MethodDescriptor
	owned  bool
}

// Dial connects to addr without transport security.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	c, err := NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.owned = true
	return c, nil
}

// NewClient wraps an existing connection. Close does not close conn.
func NewClient(conn *grpc.ClientConn) (*Client, error) {
	sd, err := LoadService()
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, method: sd.FindMethodByName(config.EvaluateMethod)}, nil
}

func (c *Client) Evaluate(ctx context.Context, req Request) (Response, error) {
	in, err := encodeRequest(c.method.GetInputType(), req)
	if err != nil {
		return Response{}, err
	}
	out := dynamic.NewMessage(c.method.GetOutputType())
	if err := c.conn.Invoke(ctx, "/"+config.ServiceName+"/"+config.EvaluateMethod, in, out); err != nil {
		return Response{}, err
	}
	return decodeResponse(out), nil
}

func (c *Client) Close() error {
	if c.owned {
		return c.conn.Close()
	}
	return nil
}
