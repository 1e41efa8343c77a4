// Command radix evaluates arithmetic expressions in float or fixed-width
// integer mode and prints the result in several bases.
package main

import (
	"v.io/x/lib/cmdline"
)

func main() {
	cmdline.Main(cmdRadix)
}

var cmdRadix = &cmdline.Command{
	Name:  "radix",
	Short: "multi-base expression calculator",
	Long: `
Command radix evaluates arithmetic expressions and shows the result in
binary, octal, decimal and hexadecimal.

Float mode works on IEEE-754 doubles. Integer mode works on fixed-width
two's-complement integers of -width bits, signed or unsigned.

Settings are read from radix.yaml in the current directory or one of its
parents, then overridden by flags.
`,
	Children: []*cmdline.Command{cmdEval, cmdRepl, cmdServe, cmdHistory},
}

var cmdEval = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runEval),
	Name:   "eval",
	Short:  "Evaluates expressions",
	Long: `
Evaluates each argument as a separate expression and prints the primary
result, the alternate bases and, in integer mode, the bit pattern.
`,
	ArgsName: "<expression> ...",
	ArgsLong: "<expression> is an arithmetic expression, e.g. '0xFF << 4'.",
}

var cmdRepl = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runRepl),
	Name:   "repl",
	Short:  "Starts an interactive session",
	Long: `
Reads expressions line by line and prints their results. Lines starting with
':' change settings:

  :mode float|int   :width N   :signed on|off
  :in auto|2|8|10|16   :out all|2|8|10|16   :show   :quit
`,
}

var cmdServe = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runServe),
	Name:   "serve",
	Short:  "Serves the Calculator gRPC service",
	Long: `
Serves radix.v1.Calculator/Evaluate until interrupted.
`,
}

var cmdHistory = &cmdline.Command{
	Runner: cmdline.RunnerFunc(runHistory),
	Name:   "history",
	Short:  "Lists or clears recorded expressions",
	Long: `
Lists the most recent expressions recorded by eval and repl, newest first.
`,
}
