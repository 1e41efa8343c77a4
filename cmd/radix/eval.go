package main

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	"github.com/funvibe/radixquest/internal/history"
	"github.com/funvibe/radixquest/internal/lexer"
	"github.com/funvibe/radixquest/internal/parser"
	"github.com/funvibe/radixquest/internal/rpcserver"
	"github.com/funvibe/radixquest/internal/rpn"
	"github.com/funvibe/radixquest/pkg/radix"
)

// evaluateFunc evaluates one expression and renders it.
type evaluateFunc func(ctx context.Context, expr string) (radix.Output, error)

func localEvaluator(opts radix.Options) evaluateFunc {
	return func(_ context.Context, expr string) (radix.Output, error) {
		res, err := radix.Evaluate(expr, opts)
		if err != nil {
			return radix.Output{}, err
		}
		return radix.Format(res, opts), nil
	}
}

func remoteEvaluator(client *rpcserver.Client, opts radix.Options) evaluateFunc {
	return func(ctx context.Context, expr string) (radix.Output, error) {
		resp, err := client.Evaluate(ctx, rpcserver.Request{
			Expression:  expr,
			InputBase:   opts.InputBase.String(),
			DisplayBase: opts.DisplayBase.String(),
			Mode:        opts.Mode.String(),
			BitWidth:    int32(opts.BitWidth),
			Signedness:  signedness(opts.Signed),
		})
		if err != nil {
			return radix.Output{}, err
		}
		return radix.Output{
			Primary:    resp.Primary,
			Alternates: resp.Alternates,
			Bits:       resp.Bits,
			Note:       resp.Note,
		}, nil
	}
}

func signedness(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}

// dump writes the token stream and the postfix program of expr.
func dump(w io.Writer, expr string) error {
	toks, err := lexer.Tokenize(expr)
	if err != nil {
		return err
	}
	spew.Fdump(w, toks)
	prog, err := parser.Parse(toks)
	if err != nil {
		return err
	}
	fmt.Fprint(w, rpn.Disassemble(prog, expr))
	return nil
}

func runEval(env *cmdline.Env, args []string) error {
	if len(args) == 0 {
		return env.UsageErrorf("eval: no expression given")
	}
	s, err := loadSettings(&common)
	if err != nil {
		return err
	}
	ctx := context.Background()
	p := newPrinter(env.Stdout, env.Stderr, s.color)

	eval := localEvaluator(s.opts)
	if flagRemote != "" {
		client, err := rpcserver.Dial(flagRemote)
		if err != nil {
			return err
		}
		defer client.Close()
		eval = remoteEvaluator(client, s.opts)
	}

	var store *history.Store
	if !flagNoHistory && !s.file.History.Disabled {
		store = openHistory(ctx, s)
		if store != nil {
			defer store.Close()
		}
	}

	failed := 0
	for _, expr := range args {
		if flagDump {
			if err := dump(env.Stdout, expr); err != nil {
				p.error(err)
				failed++
				continue
			}
		}
		out, err := eval(ctx, expr)
		if err != nil {
			p.error(err)
			failed++
			continue
		}
		p.result(out)
		record(ctx, store, expr, out, s.opts)
	}
	if failed > 0 {
		return cmdline.ErrExitCode(1)
	}
	return nil
}

// openHistory returns nil when the database cannot be opened; history is
// best effort for eval and repl.
func openHistory(ctx context.Context, s *settings) *history.Store {
	path, err := s.file.HistoryPath()
	if err != nil {
		vlog.VI(1).Infof("history disabled: %v", err)
		return nil
	}
	store, err := history.Open(ctx, path, s.file.History.Limit)
	if err != nil {
		vlog.VI(1).Infof("history disabled: %v", err)
		return nil
	}
	return store
}

func record(ctx context.Context, store *history.Store, expr string, out radix.Output, opts radix.Options) {
	if store == nil {
		return
	}
	if _, err := store.Push(ctx, history.Entry{
		Expression: expr,
		Display:    out.Primary,
		Mode:       opts.Mode.String(),
	}); err != nil {
		vlog.VI(1).Infof("recording history: %v", err)
	}
}
