package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

var prefixes = map[int]string{2: "0b", 8: "0o", 16: "0x"}

// groupSizes is the digit cluster size per base.
var groupSizes = map[int]int{2: 4, 8: 3, 16: 4}

// FormatIntAsBase renders v in base 2, 8, 10 or 16. Non-decimal output
// carries a 0b/0o/0x prefix and '_' separators every 4 (bin, hex) or 3 (oct)
// digits from the right; hex digits are uppercase. Negative values get a
// leading '-' before the prefix.
func FormatIntAsBase(v *big.Int, base int) string {
	sign := ""
	x := v
	if v.Sign() < 0 {
		sign = "-"
		x = new(big.Int).Neg(v)
	}
	body := x.Text(base)
	if base == 10 {
		return sign + body
	}
	body = Group(body, groupSizes[base], "_")
	if base == 16 {
		body = strings.ToUpper(body)
	}
	return sign + prefixes[base] + body
}

// Group inserts sep between clusters of n characters counted from the
// right end of s.
func Group(s string, n int, sep string) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var sb strings.Builder
	head := len(s) % n
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += n {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(s[i : i+n])
	}
	return sb.String()
}

// BitPattern zero-pads v to width bits and splits it into 4-bit clusters
// from the left, separated by spaces.
func BitPattern(v *big.Int, width int) string {
	bits := v.Text(2)
	if len(bits) < width {
		bits = strings.Repeat("0", width-len(bits)) + bits
	}
	var sb strings.Builder
	for i := 0; i < len(bits); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := i + 4
		if end > len(bits) {
			end = len(bits)
		}
		sb.WriteString(bits[i:end])
	}
	return sb.String()
}

// Float renders x the way a browser prints a number: shortest round-trip
// digits, fixed notation for 1e-6 <= |x| < 1e21 and exponent notation
// (1e+21, 1.5e-7) otherwise.
func Float(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + exp[:1] + digits
}
