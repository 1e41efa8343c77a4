package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	"github.com/funvibe/radixquest/internal/config"
	"github.com/funvibe/radixquest/internal/value"
)

// optionalBool is a bool flag that remembers whether it was set.
type optionalBool struct {
	set, value bool
}

func (b *optionalBool) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *optionalBool) Set(s string) error {
	switch s {
	case "on", "yes":
		s = "true"
	case "off", "no":
		s = "false"
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

// commonFlags are accepted by every command.
type commonFlags struct {
	inputBase   string
	displayBase string
	mode        string
	width       int
	signed      optionalBool
	configPath  string
	color       string
	logLevel    int
}

var common commonFlags

var (
	flagDump      bool
	flagNoHistory bool
	flagRemote    string
	flagAddr      string
	flagHistoryN  int
	flagClear     bool
)

func registerCommon(fs *flag.FlagSet) {
	fs.StringVar(&common.inputBase, "in", "", "Input base for bare literals: auto, 2, 8, 10 or 16.")
	fs.StringVar(&common.displayBase, "out", "", "Display base: all, 2, 8, 10 or 16.")
	fs.StringVar(&common.mode, "mode", "", "Evaluation mode: float or int.")
	fs.IntVar(&common.width, "width", 0, "Integer mode bit width.")
	fs.Var(&common.signed, "signed", "Interpret integers as two's complement.")
	fs.StringVar(&common.configPath, "config", "", "Path to radix.yaml. Defaults to a search from the current directory.")
	fs.StringVar(&common.color, "color", "", "Colored output: auto, always or never.")
	fs.IntVar(&common.logLevel, "log-level", 0, "Verbosity of diagnostic logging to stderr.")
}

func init() {
	for _, cmd := range []*cmdline.Command{cmdEval, cmdRepl, cmdServe, cmdHistory} {
		registerCommon(&cmd.Flags)
	}
	cmdEval.Flags.BoolVar(&flagDump, "dump", false, "Print the tokens and the postfix program before evaluating.")
	cmdEval.Flags.BoolVar(&flagNoHistory, "no-history", false, "Do not record the expressions.")
	cmdEval.Flags.StringVar(&flagRemote, "remote", "", "Evaluate on a radix serve instance at this address.")
	cmdRepl.Flags.BoolVar(&flagNoHistory, "no-history", false, "Do not record the expressions.")
	cmdServe.Flags.StringVar(&flagAddr, "addr", "", "Listen address. Defaults to server.addr from radix.yaml.")
	cmdHistory.Flags.IntVar(&flagHistoryN, "n", 0, "Number of entries to list, 0 for all.")
	cmdHistory.Flags.BoolVar(&flagClear, "clear", false, "Remove all entries.")
}

// settings is the resolved configuration of one command run.
type settings struct {
	file  *config.File
	opts  value.Options
	color string
}

func setupLogging(level int) {
	vlog.Log.Configure(vlog.OverridePriorConfiguration(true), vlog.LogToStderr(true), vlog.Level(level))
}

// loadSettings reads radix.yaml and applies flag overrides.
func loadSettings(flags *commonFlags) (*settings, error) {
	setupLogging(flags.logLevel)

	path := flags.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.FindConfig(wd); err != nil {
			return nil, err
		}
	}

	file := config.Default()
	if path != "" {
		var err error
		if file, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
		vlog.VI(1).Infof("loaded config %s", path)
	}
	return resolve(file, flags)
}

func resolve(file *config.File, flags *commonFlags) (*settings, error) {
	pick := func(flagVal, fileVal string) string {
		if flagVal != "" {
			return flagVal
		}
		return fileVal
	}

	var (
		opts value.Options
		err  error
	)
	if opts.InputBase, err = value.ParseInputBase(pick(flags.inputBase, file.InputBase)); err != nil {
		return nil, err
	}
	if opts.DisplayBase, err = value.ParseDisplayBase(pick(flags.displayBase, file.DisplayBase)); err != nil {
		return nil, err
	}
	if opts.Mode, err = value.ParseMode(pick(flags.mode, file.Mode)); err != nil {
		return nil, err
	}
	opts.BitWidth = file.BitWidth
	if flags.width != 0 {
		opts.BitWidth = flags.width
	}
	opts.Signed = *file.Signed
	if flags.signed.set {
		opts.Signed = flags.signed.value
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	color := pick(flags.color, file.Color)
	switch color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("-color: expected auto, always or never, got %q", color)
	}
	return &settings{file: file, opts: opts, color: color}, nil
}
