package radix_test

import (
	"math"
	"testing"

	"github.com/funvibe/radixquest/pkg/radix"
)

func TestEvaluateFloat(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"2^3^2", 512},
		{"sqrt(16)", 4},
		{"min(3,1,2)", 1},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := radix.Evaluate(tt.expr, radix.DefaultOptions())
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tt.expr, err)
			}
			if math.Abs(res.Float-tt.want) > 1e-12 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, res.Float, tt.want)
			}
		})
	}
}

func TestEvaluateInteger(t *testing.T) {
	opts := radix.DefaultOptions()
	opts.Mode = radix.ModeInteger
	opts.BitWidth = 8

	res, err := radix.Evaluate("-1", opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Integer.Int64() != 255 {
		t.Errorf("canonical = %s, want 255", res.Integer)
	}
	if out := radix.Format(res, opts); out.Primary != "-1" {
		t.Errorf("Primary = %q, want -1", out.Primary)
	}

	opts.Signed = false
	res, err = radix.Evaluate("200+100", opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Integer.Int64() != 44 {
		t.Errorf("200+100 = %s, want 44", res.Integer)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		expr string
		mode radix.Mode
		want radix.ErrorKind
	}{
		{"2 $ 3", radix.ModeFloat, radix.LexError},
		{"(1+2", radix.ModeFloat, radix.SyntaxError},
		{"", radix.ModeFloat, radix.SyntaxError},
		{"()", radix.ModeFloat, radix.SyntaxError},
		{"(())", radix.ModeInteger, radix.SyntaxError},
		{"1/0", radix.ModeFloat, radix.SemanticError},
		{"1/0", radix.ModeInteger, radix.SemanticError},
		{"pi", radix.ModeInteger, radix.SemanticError},
	}
	for _, tt := range tests {
		opts := radix.DefaultOptions()
		opts.Mode = tt.mode
		_, err := radix.Evaluate(tt.expr, opts)
		if got := radix.KindOf(err); got != tt.want {
			t.Errorf("Evaluate(%q, %v) kind = %v, want %v (err %v)", tt.expr, tt.mode, got, tt.want, err)
		}
	}
}

func TestFormatAllBases(t *testing.T) {
	opts := radix.DefaultOptions()
	opts.Mode = radix.ModeInteger
	opts.BitWidth = 16
	opts.DisplayBase = radix.DisplayAll

	res, err := radix.Evaluate("0xFF << 4", opts)
	if err != nil {
		t.Fatal(err)
	}
	out := radix.Format(res, opts)
	if out.Primary != "4080 (dec)" {
		t.Errorf("Primary = %q", out.Primary)
	}
	if out.Bits != "0000 1111 1111 0000" {
		t.Errorf("Bits = %q", out.Bits)
	}
	if len(out.Alternates) != 5 || out.Alternates[2].Text != "0xFF0" {
		t.Errorf("Alternates = %v", out.Alternates)
	}
}

func TestFormatZeroOptions(t *testing.T) {
	opts := radix.DefaultOptions()
	opts.Mode, opts.BitWidth = radix.ModeInteger, 8
	res, err := radix.Evaluate("-1", opts)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	out := radix.Format(res, radix.Options{DisplayBase: radix.DisplayAll})
	if out.Primary != "255 (dec)" {
		t.Errorf("Primary = %q, want %q", out.Primary, "255 (dec)")
	}
	if out.Bits != "1111 1111" {
		t.Errorf("Bits = %q, want %q", out.Bits, "1111 1111")
	}
}
