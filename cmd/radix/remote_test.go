package main

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/funvibe/radixquest/internal/rpcserver"
	"github.com/funvibe/radixquest/pkg/radix"
)

func TestRemoteEvaluatorSendsSignedness(t *testing.T) {
	defaults := radix.DefaultOptions()
	defaults.Mode, defaults.BitWidth, defaults.Signed = radix.ModeInteger, 8, false
	srv, err := rpcserver.New(defaults)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	client, err := rpcserver.NewClient(conn)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	tests := []struct {
		signed bool
		want   string
	}{
		{true, "-1"},
		{false, "255"},
	}
	for _, tt := range tests {
		opts := defaults
		opts.Signed = tt.signed
		out, err := remoteEvaluator(client, opts)(context.Background(), "-1")
		if err != nil {
			t.Fatalf("remote Evaluate failed: %v", err)
		}
		if out.Primary != tt.want {
			t.Errorf("signed=%t: Primary = %q, want %q", tt.signed, out.Primary, tt.want)
		}
	}
}
