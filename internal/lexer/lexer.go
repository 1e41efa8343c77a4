package lexer

import (
	"strings"
	"unicode"

	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/token"
)

type Lexer struct {
	input        []rune // input with whitespace removed
	offsets      []int  // offsets[i] is the 1-based position of input[i] in the original text
	position     int    // current position in input (points to current char)
	readPosition int    // current reading position in input (after current char)
	ch           rune   // current char under examination, 0 at end of input
	prev         *token.Token
}

func New(input string) *Lexer {
	l := &Lexer{}
	pos := 0
	for _, r := range input {
		pos++
		if unicode.IsSpace(r) {
			continue
		}
		l.input = append(l.input, r)
		l.offsets = append(l.offsets, pos)
	}
	l.readChar()
	return l
}

// Tokenize scans the whole expression. Identifiers directly followed by '('
// are reported as function heads, and so is xor when it stands in operand
// position. Bare integer literals are tagged
// RadixAmbient and read in the configured input base by the evaluator.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}

	for i := range toks {
		if i+1 == len(toks) || toks[i+1].Type != token.LPAREN {
			continue
		}
		switch {
		case toks[i].Type == token.IDENT:
			toks[i].Type = token.FUNC_HEAD
		case toks[i].Lexeme == "xor" && (i == 0 || !toks[i-1].EndsOperand()):
			// "xor(" where an operand is expected calls the xor function.
			toks[i].Type = token.FUNC_HEAD
		}
	}
	return toks, nil
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// pos returns the original 1-based position of the current char.
func (l *Lexer) pos() int {
	if l.position < len(l.offsets) {
		return l.offsets[l.position]
	}
	if len(l.offsets) == 0 {
		return 1
	}
	return l.offsets[len(l.offsets)-1] + 1
}

// NextToken returns the next token, or ok=false at end of input.
func (l *Lexer) NextToken() (tok token.Token, ok bool, err error) {
	if l.position >= len(l.input) {
		return token.Token{}, false, nil
	}

	start := l.pos()
	switch l.ch {
	case '(':
		tok = token.Token{Type: token.LPAREN, Lexeme: "(", Pos: start}
	case ')':
		tok = token.Token{Type: token.RPAREN, Lexeme: ")", Pos: start}
	case ',':
		tok = token.Token{Type: token.COMMA, Lexeme: ",", Pos: start}
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = l.operator("**", start)
		} else {
			tok = l.operator("*", start)
		}
	case '<':
		if l.peekChar() != '<' {
			return token.Token{}, false, l.unexpected()
		}
		l.readChar()
		tok = l.operator("<<", start)
	case '>':
		if l.peekChar() != '>' {
			return token.Token{}, false, l.unexpected()
		}
		l.readChar()
		tok = l.operator(">>", start)
	case '+', '-':
		sym := string(l.ch)
		if l.unaryPosition() {
			sym = "u" + sym
		}
		tok = l.operator(sym, start)
	case '/', '%', '^', '&', '|', '~':
		tok = l.operator(string(l.ch), start)
	default:
		if isLetter(l.ch) {
			return l.emit(l.readIdentifier(start)), true, nil
		}
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			tok, err = l.readNumber(start)
			if err != nil {
				return token.Token{}, false, err
			}
			return l.emit(tok), true, nil
		}
		return token.Token{}, false, l.unexpected()
	}

	l.readChar()
	return l.emit(tok), true, nil
}

func (l *Lexer) emit(tok token.Token) token.Token {
	l.prev = &tok
	return tok
}

func (l *Lexer) operator(sym string, pos int) token.Token {
	return token.Token{Type: token.OPERATOR, Lexeme: sym, Pos: pos}
}

// unaryPosition reports whether a '+' or '-' at the current position is a
// prefix operator: nothing precedes it, or the previous token cannot end an
// operand.
func (l *Lexer) unaryPosition() bool {
	return l.prev == nil || !l.prev.EndsOperand()
}

func (l *Lexer) unexpected() error {
	return diagnostics.NewError(diagnostics.ErrL001, l.pos(),
		"unexpected character '%c' at position %d", l.ch, l.pos())
}

func (l *Lexer) readIdentifier(start int) token.Token {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	name := strings.ToLower(string(l.input[position:l.position]))
	if name == "xor" {
		return token.Token{Type: token.OPERATOR, Lexeme: name, Pos: start}
	}
	return token.Token{Type: token.IDENT, Lexeme: name, Pos: start}
}

func (l *Lexer) readNumber(start int) (token.Token, error) {
	// Check for base prefixes: 0x, 0b, 0o
	if l.ch == '0' {
		var radix token.Radix
		var valid func(rune) bool
		switch l.peekChar() {
		case 'x', 'X':
			radix, valid = token.RadixHex, isHexDigit
		case 'b', 'B':
			radix, valid = token.RadixBin, isBinDigit
		case 'o', 'O':
			radix, valid = token.RadixOct, isOctDigit
		}
		if valid != nil {
			l.readChar()
			l.readChar()
			return l.readRadixBody(start, radix, valid)
		}
	}

	var body strings.Builder
	hasDot, hasExp := false, false
	for {
		switch {
		case l.ch == '_':
		case isDigit(l.ch):
			body.WriteRune(l.ch)
		case l.ch == '.' && !hasDot && !hasExp:
			hasDot = true
			body.WriteRune(l.ch)
		case (l.ch == 'e' || l.ch == 'E') && !hasExp:
			hasExp = true
			body.WriteByte('e')
			if p := l.peekChar(); p == '+' || p == '-' {
				l.readChar()
				body.WriteRune(l.ch)
			}
			if !isDigit(l.peekChar()) {
				return token.Token{}, l.malformed(start, "exponent has no digits")
			}
		default:
			radix := token.RadixAmbient
			if hasDot || hasExp {
				radix = token.RadixDecimal
			}
			lexeme := body.String()
			if lexeme == "." || lexeme == "" {
				return token.Token{}, l.malformed(start, "no digits")
			}
			return token.Token{Type: token.NUMBER, Lexeme: lexeme, Radix: radix, Pos: start}, nil
		}
		l.readChar()
	}
}

func (l *Lexer) readRadixBody(start int, radix token.Radix, valid func(rune) bool) (token.Token, error) {
	var body strings.Builder
	for valid(l.ch) || l.ch == '_' {
		if l.ch != '_' {
			body.WriteRune(l.ch)
		}
		l.readChar()
	}
	if body.Len() == 0 {
		return token.Token{}, l.malformed(start, "empty %s literal", radix)
	}
	return token.Token{Type: token.NUMBER, Lexeme: body.String(), Radix: radix, Pos: start}, nil
}

func (l *Lexer) malformed(start int, format string, args ...interface{}) error {
	return diagnostics.NewError(diagnostics.ErrL002, start,
		"malformed literal at position %d: "+format, append([]interface{}{start}, args...)...)
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isBinDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func isOctDigit(ch rune) bool {
	return '0' <= ch && ch <= '7'
}
