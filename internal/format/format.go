// Package format renders evaluation results as text in several bases.
package format

import (
	"math"
	"math/big"

	"github.com/funvibe/radixquest/internal/config"
	"github.com/funvibe/radixquest/internal/value"
)

// Entry is one labeled alternate rendering.
type Entry struct {
	Label string
	Text  string
}

// Output is everything a front end shows for one result.
type Output struct {
	Primary    string
	Alternates []Entry
	// Bits is the grouped bit pattern of an integer result, empty otherwise.
	Bits string
	Note string
}

// DisplayOptions controls rendering independently of how the value was
// computed.
type DisplayOptions struct {
	Base     value.DisplayBase
	Signed   bool
	BitWidth int
}

// OptionsFrom picks the display settings out of evaluation options.
func OptionsFrom(opts value.Options) DisplayOptions {
	return DisplayOptions{Base: opts.DisplayBase, Signed: opts.Signed, BitWidth: opts.BitWidth}
}

const nonIntegerNote = "Non-integer: base views show integer casts."

var labels = map[int]string{2: "Bin", 8: "Oct", 10: "Dec", 16: "Hex"}

// Format renders res. It never mutates res. Integer results are rendered at
// the width they were computed at; opts.BitWidth only applies to results
// that carry no width.
func Format(res value.Result, opts DisplayOptions) Output {
	if res.Kind == value.IntegerResult {
		opts.BitWidth = renderWidth(res.Options.BitWidth, opts.BitWidth)
		return formatInt(res.Integer, opts)
	}
	out := formatFloat(res.Float, opts.Base)
	out.Note = res.Note
	return out
}

func renderWidth(computed, requested int) int {
	switch {
	case computed >= 1:
		return computed
	case requested >= 1:
		return requested
	default:
		return config.DefaultBitWidth
	}
}

func formatInt(v *big.Int, opts DisplayOptions) Output {
	unsigned := value.Canon(v, opts.BitWidth)
	signedVal := unsigned
	if opts.Signed {
		signedVal = value.ToSigned(unsigned, opts.BitWidth)
	}

	var out Output
	switch opts.Base {
	case value.DisplayAll:
		out.Primary = signedVal.String() + " (dec)"
		out.Alternates = []Entry{
			{"Dec (signed)", value.ToSigned(unsigned, opts.BitWidth).String()},
			{"Dec (unsigned)", unsigned.String()},
			{"Hex", FormatIntAsBase(unsigned, 16)},
			{"Oct", FormatIntAsBase(unsigned, 8)},
			{"Bin", FormatIntAsBase(unsigned, 2)},
		}
	default:
		base := int(opts.Base)
		if base == 10 {
			out.Primary = signedVal.String()
		} else {
			out.Primary = FormatIntAsBase(unsigned, base)
		}
		out.Alternates = append(out.Alternates, Entry{"Dec", signedVal.String()})
		for _, b := range []int{2, 8, 16} {
			if b != base {
				out.Alternates = append(out.Alternates, Entry{labels[b], FormatIntAsBase(unsigned, b)})
			}
		}
	}
	out.Bits = BitPattern(unsigned, opts.BitWidth)
	return out
}

// safeInteger reports whether x is an integer a float64 holds exactly.
func safeInteger(x float64) bool {
	return x == math.Trunc(x) && math.Abs(x) <= config.MaxSafeInteger
}

func formatFloat(x float64, base value.DisplayBase) Output {
	text := Float(x)
	var out Output
	switch base {
	case value.DisplayBin, value.DisplayOct, value.DisplayHex:
		if safeInteger(x) {
			out.Primary = text + "  (int→ " + FormatIntAsBase(big.NewInt(int64(x)), int(base)) + ")"
		} else {
			out.Primary = text + "  (tip: show all bases works best for integers)"
		}
	case value.DisplayAll:
		out.Primary = text
		if safeInteger(x) {
			n := big.NewInt(int64(x))
			out.Alternates = []Entry{
				{"Dec", text},
				{"Hex", FormatIntAsBase(n, 16)},
				{"Oct", FormatIntAsBase(n, 8)},
				{"Bin", FormatIntAsBase(n, 2)},
			}
		} else {
			out.Alternates = []Entry{
				{"Value", text},
				{"Note", nonIntegerNote},
			}
		}
	default:
		out.Primary = text
	}
	return out
}
