// Package value holds the evaluation options and results shared by the
// evaluator, the formatter and their callers.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/radixquest/internal/config"
)

// InputBase is the radix used for bare literals without a 0x/0b/0o prefix.
type InputBase int

const (
	InputAuto InputBase = 0
	InputBin  InputBase = 2
	InputOct  InputBase = 8
	InputDec  InputBase = 10
	InputHex  InputBase = 16
)

// Radix returns the base bare integer literals are read in.
func (b InputBase) Radix() int {
	if b == InputAuto {
		return 10
	}
	return int(b)
}

func (b InputBase) String() string {
	if b == InputAuto {
		return "auto"
	}
	return strconv.Itoa(int(b))
}

// DisplayBase selects the primary rendering of a result.
type DisplayBase int

const (
	DisplayAll DisplayBase = 0
	DisplayBin DisplayBase = 2
	DisplayOct DisplayBase = 8
	DisplayDec DisplayBase = 10
	DisplayHex DisplayBase = 16
)

func (b DisplayBase) String() string {
	if b == DisplayAll {
		return "all"
	}
	return strconv.Itoa(int(b))
}

type Mode int

const (
	ModeFloat Mode = iota
	ModeInteger
)

func (m Mode) String() string {
	if m == ModeInteger {
		return "int"
	}
	return "float"
}

// Options configures a single evaluation. It is supplied fresh per call.
type Options struct {
	InputBase   InputBase
	DisplayBase DisplayBase
	Mode        Mode
	BitWidth    int
	Signed      bool
}

// DefaultOptions mirrors the calculator's initial settings.
func DefaultOptions() Options {
	return Options{
		InputBase:   InputAuto,
		DisplayBase: DisplayDec,
		Mode:        ModeFloat,
		BitWidth:    config.DefaultBitWidth,
		Signed:      true,
	}
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	switch o.InputBase {
	case InputAuto, InputBin, InputOct, InputDec, InputHex:
	default:
		return fmt.Errorf("invalid input base %d", int(o.InputBase))
	}
	switch o.DisplayBase {
	case DisplayAll, DisplayBin, DisplayOct, DisplayDec, DisplayHex:
	default:
		return fmt.Errorf("invalid display base %d", int(o.DisplayBase))
	}
	switch o.Mode {
	case ModeFloat:
	case ModeInteger:
		if o.BitWidth < 1 || o.BitWidth > config.MaxBitWidth {
			return fmt.Errorf("bit width %d out of range 1..%d", o.BitWidth, config.MaxBitWidth)
		}
	default:
		return fmt.Errorf("invalid mode %d", int(o.Mode))
	}
	return nil
}

// ParseInputBase accepts "auto", a numeric base or a base name.
func ParseInputBase(s string) (InputBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return InputAuto, nil
	case "2", "bin", "binary":
		return InputBin, nil
	case "8", "oct", "octal":
		return InputOct, nil
	case "10", "dec", "decimal":
		return InputDec, nil
	case "16", "hex", "hexadecimal":
		return InputHex, nil
	}
	return InputAuto, fmt.Errorf("unknown input base %q", s)
}

// ParseDisplayBase accepts "all", a numeric base or a base name.
func ParseDisplayBase(s string) (DisplayBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return DisplayAll, nil
	case "2", "bin", "binary":
		return DisplayBin, nil
	case "8", "oct", "octal":
		return DisplayOct, nil
	case "", "10", "dec", "decimal":
		return DisplayDec, nil
	case "16", "hex", "hexadecimal":
		return DisplayHex, nil
	}
	return DisplayDec, fmt.Errorf("unknown display base %q", s)
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float":
		return ModeFloat, nil
	case "int", "integer":
		return ModeInteger, nil
	}
	return ModeFloat, fmt.Errorf("unknown mode %q", s)
}
