package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"v.io/x/lib/cmdline"

	"github.com/funvibe/radixquest/internal/history"
	"github.com/funvibe/radixquest/internal/value"
	"github.com/funvibe/radixquest/pkg/radix"
)

const replPrompt = "radix> "

// session is the state of one REPL run. Settings changes apply to the
// expressions that follow them.
type session struct {
	opts  radix.Options
	p     *printer
	store *history.Store
}

// handle processes one input line and reports whether the session should end.
func (s *session) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, ":"):
		return s.command(ctx, strings.Fields(line[1:]))
	}

	res, err := radix.Evaluate(line, s.opts)
	if err != nil {
		s.p.error(err)
		return false
	}
	out := radix.Format(res, s.opts)
	s.p.result(out)
	record(ctx, s.store, line, out, s.opts)
	return false
}

func (s *session) command(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		s.p.error(fmt.Errorf("empty command"))
		return false
	}
	name, rest := args[0], args[1:]
	if name == "quit" || name == "q" || name == "exit" {
		return true
	}
	if name == "show" {
		s.show()
		return false
	}
	if name == "history" {
		s.history(ctx)
		return false
	}
	if len(rest) != 1 {
		s.p.error(fmt.Errorf(":%s takes one argument", name))
		return false
	}

	opts := s.opts
	var err error
	switch name {
	case "mode":
		opts.Mode, err = value.ParseMode(rest[0])
	case "width":
		opts.BitWidth, err = strconv.Atoi(rest[0])
	case "signed":
		var b optionalBool
		err = b.Set(rest[0])
		opts.Signed = b.value
	case "in":
		opts.InputBase, err = value.ParseInputBase(rest[0])
	case "out":
		opts.DisplayBase, err = value.ParseDisplayBase(rest[0])
	default:
		err = fmt.Errorf("unknown command :%s", name)
	}
	if err == nil {
		err = opts.Validate()
	}
	if err != nil {
		s.p.error(err)
		return false
	}
	s.opts = opts
	return false
}

func (s *session) show() {
	o := s.opts
	fmt.Fprintf(s.p.out, "mode=%s width=%d signed=%t in=%s out=%s\n",
		o.Mode, o.BitWidth, o.Signed, o.InputBase, o.DisplayBase)
}

func (s *session) history(ctx context.Context) {
	if s.store == nil {
		s.p.error(fmt.Errorf("history is disabled"))
		return
	}
	entries, err := s.store.List(ctx, 10)
	if err != nil {
		s.p.error(err)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(s.p.out, "  %s = %s\n", e.Expression, e.Display)
	}
}

// scan feeds lines from r to the session until it ends or r is exhausted.
func (s *session) scan(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s.handle(ctx, sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// interactive runs the session on a raw-mode terminal with line editing.
func (s *session) interactive(ctx context.Context, in, out *os.File) error {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, replPrompt)
	s.p.out, s.p.errOut = t, t
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.handle(ctx, line) {
			return nil
		}
	}
}

func runRepl(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("repl: unexpected arguments %v", args)
	}
	st, err := loadSettings(&common)
	if err != nil {
		return err
	}
	ctx := context.Background()
	s := &session{opts: st.opts, p: newPrinter(env.Stdout, env.Stderr, st.color)}
	if !flagNoHistory && !st.file.History.Disabled {
		if s.store = openHistory(ctx, st); s.store != nil {
			defer s.store.Close()
		}
	}

	in, inOK := env.Stdin.(*os.File)
	out, outOK := env.Stdout.(*os.File)
	if inOK && outOK && term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return s.interactive(ctx, in, out)
	}
	return s.scan(ctx, env.Stdin)
}
