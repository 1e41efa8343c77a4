package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	"github.com/funvibe/radixquest/internal/rpcserver"
)

func runServe(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("serve: unexpected arguments %v", args)
	}
	s, err := loadSettings(&common)
	if err != nil {
		return err
	}
	addr := flagAddr
	if addr == "" {
		addr = s.file.Server.Addr
	}

	srv, err := rpcserver.New(s.opts)
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = srv.Serve(ctx, lis)
	vlog.Infof("server stopped")
	return err
}
