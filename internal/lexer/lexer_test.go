package lexer

import (
	"testing"

	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/token"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"2+3", []token.Token{
			{Type: token.NUMBER, Lexeme: "2", Radix: token.RadixAmbient, Pos: 1},
			{Type: token.OPERATOR, Lexeme: "+", Pos: 2},
			{Type: token.NUMBER, Lexeme: "3", Radix: token.RadixAmbient, Pos: 3},
		}},
		{" -2 ", []token.Token{
			{Type: token.OPERATOR, Lexeme: "u-", Pos: 2},
			{Type: token.NUMBER, Lexeme: "2", Radix: token.RadixAmbient, Pos: 3},
		}},
		{"2**3", []token.Token{
			{Type: token.NUMBER, Lexeme: "2", Radix: token.RadixAmbient, Pos: 1},
			{Type: token.OPERATOR, Lexeme: "**", Pos: 2},
			{Type: token.NUMBER, Lexeme: "3", Radix: token.RadixAmbient, Pos: 4},
		}},
		{"1 << 0xF_F", []token.Token{
			{Type: token.NUMBER, Lexeme: "1", Radix: token.RadixAmbient, Pos: 1},
			{Type: token.OPERATOR, Lexeme: "<<", Pos: 3},
			{Type: token.NUMBER, Lexeme: "FF", Radix: token.RadixHex, Pos: 6},
		}},
		{"Sin(PI)", []token.Token{
			{Type: token.FUNC_HEAD, Lexeme: "sin", Pos: 1},
			{Type: token.LPAREN, Lexeme: "(", Pos: 4},
			{Type: token.IDENT, Lexeme: "pi", Pos: 5},
			{Type: token.RPAREN, Lexeme: ")", Pos: 7},
		}},
		{"a XOR b", []token.Token{
			{Type: token.IDENT, Lexeme: "a", Pos: 1},
			{Type: token.OPERATOR, Lexeme: "xor", Pos: 3},
			{Type: token.IDENT, Lexeme: "b", Pos: 7},
		}},
		{"xor(5,3)", []token.Token{
			{Type: token.FUNC_HEAD, Lexeme: "xor", Pos: 1},
			{Type: token.LPAREN, Lexeme: "(", Pos: 4},
			{Type: token.NUMBER, Lexeme: "5", Radix: token.RadixAmbient, Pos: 5},
			{Type: token.COMMA, Lexeme: ",", Pos: 6},
			{Type: token.NUMBER, Lexeme: "3", Radix: token.RadixAmbient, Pos: 7},
			{Type: token.RPAREN, Lexeme: ")", Pos: 8},
		}},
		{"5 xor (3)", []token.Token{
			{Type: token.NUMBER, Lexeme: "5", Radix: token.RadixAmbient, Pos: 1},
			{Type: token.OPERATOR, Lexeme: "xor", Pos: 3},
			{Type: token.LPAREN, Lexeme: "(", Pos: 7},
			{Type: token.NUMBER, Lexeme: "3", Radix: token.RadixAmbient, Pos: 8},
			{Type: token.RPAREN, Lexeme: ")", Pos: 9},
		}},
		{"1.5e-3", []token.Token{
			{Type: token.NUMBER, Lexeme: "1.5e-3", Radix: token.RadixDecimal, Pos: 1},
		}},
		{".5", []token.Token{
			{Type: token.NUMBER, Lexeme: ".5", Radix: token.RadixDecimal, Pos: 1},
		}},
		{"1_000", []token.Token{
			{Type: token.NUMBER, Lexeme: "1000", Radix: token.RadixAmbient, Pos: 1},
		}},
		{"0b1010", []token.Token{
			{Type: token.NUMBER, Lexeme: "1010", Radix: token.RadixBin, Pos: 1},
		}},
		{"0O17", []token.Token{
			{Type: token.NUMBER, Lexeme: "17", Radix: token.RadixOct, Pos: 1},
		}},
		{"0b102", []token.Token{
			{Type: token.NUMBER, Lexeme: "10", Radix: token.RadixBin, Pos: 1},
			{Type: token.NUMBER, Lexeme: "2", Radix: token.RadixAmbient, Pos: 5},
		}},
		{"max(1,-2)", []token.Token{
			{Type: token.FUNC_HEAD, Lexeme: "max", Pos: 1},
			{Type: token.LPAREN, Lexeme: "(", Pos: 4},
			{Type: token.NUMBER, Lexeme: "1", Radix: token.RadixAmbient, Pos: 5},
			{Type: token.COMMA, Lexeme: ",", Pos: 6},
			{Type: token.OPERATOR, Lexeme: "u-", Pos: 7},
			{Type: token.NUMBER, Lexeme: "2", Radix: token.RadixAmbient, Pos: 8},
			{Type: token.RPAREN, Lexeme: ")", Pos: 9},
		}},
		{"(1)-~2", []token.Token{
			{Type: token.LPAREN, Lexeme: "(", Pos: 1},
			{Type: token.NUMBER, Lexeme: "1", Radix: token.RadixAmbient, Pos: 2},
			{Type: token.RPAREN, Lexeme: ")", Pos: 3},
			{Type: token.OPERATOR, Lexeme: "-", Pos: 4},
			{Type: token.OPERATOR, Lexeme: "~", Pos: 5},
			{Type: token.NUMBER, Lexeme: "2", Radix: token.RadixAmbient, Pos: 6},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Tokenize(%q) returned %d tokens, want %d: %v", tt.input, len(got), len(tt.expected), got)
			}
			for i, tok := range got {
				if tok != tt.expected[i] {
					t.Errorf("token[%d] = %+v, want %+v", i, tok, tt.expected[i])
				}
			}
		})
	}
}

func TestUnaryAfterOperatorAndComma(t *testing.T) {
	got, err := Tokenize("2*-3,+4")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2", "*", "u-", "3", ",", "u+", "4"}
	for i, tok := range got {
		if tok.Lexeme != want[i] {
			t.Errorf("token[%d].Lexeme = %q, want %q", i, tok.Lexeme, want[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got, err := Tokenize("  \t ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d tokens, want 0", len(got))
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diagnostics.ErrorCode
		pos   int
	}{
		{"2 $ 3", diagnostics.ErrL001, 3},
		{"1 < 2", diagnostics.ErrL001, 3},
		{"1 >", diagnostics.ErrL001, 3},
		{"0x", diagnostics.ErrL002, 1},
		{"1 + 0b_", diagnostics.ErrL002, 5},
		{"2e", diagnostics.ErrL002, 1},
		{"2e+", diagnostics.ErrL002, 1},
		{"é", diagnostics.ErrL001, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) expected error", tt.input)
			}
			if diagnostics.KindOf(err) != diagnostics.KindLex {
				t.Errorf("kind = %v, want LexError", diagnostics.KindOf(err))
			}
			if diagnostics.CodeOf(err) != tt.code {
				t.Errorf("code = %s, want %s", diagnostics.CodeOf(err), tt.code)
			}
			if de := err.(*diagnostics.Error); de.Pos != tt.pos {
				t.Errorf("pos = %d, want %d (%v)", de.Pos, tt.pos, err)
			}
		})
	}
}

func TestUnexpectedCharacterMessage(t *testing.T) {
	_, err := Tokenize("1 # 2")
	want := "LexError [L001]: unexpected character '#' at position 3"
	if err == nil || err.Error() != want {
		t.Errorf("got = %v, want %q", err, want)
	}
}
