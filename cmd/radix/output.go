package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/radixquest/pkg/radix"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// colorEnabled decides whether w gets ANSI escapes for the given -color mode.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type printer struct {
	out, errOut io.Writer
	color       bool
}

func newPrinter(out, errOut io.Writer, mode string) *printer {
	return &printer{out: out, errOut: errOut, color: colorEnabled(mode, out)}
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

// result writes the primary line followed by the alternates, the bit pattern
// and the note, each indented under it.
func (p *printer) result(out radix.Output) {
	fmt.Fprintln(p.out, p.paint(ansiBold, out.Primary))
	for _, alt := range out.Alternates {
		fmt.Fprintf(p.out, "  %-14s %s\n", alt.Label, alt.Text)
	}
	if out.Bits != "" {
		fmt.Fprintf(p.out, "  %-14s %s\n", "Bits", out.Bits)
	}
	if out.Note != "" {
		fmt.Fprintf(p.out, "  %s\n", p.paint(ansiDim, out.Note))
	}
}

func (p *printer) error(err error) {
	fmt.Fprintln(p.errOut, p.paint(ansiRed, err.Error()))
}
