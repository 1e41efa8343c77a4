// Package parser converts a token sequence into a postfix program using the
// shunting-yard algorithm.
package parser

import (
	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/ops"
	"github.com/funvibe/radixquest/internal/rpn"
	"github.com/funvibe/radixquest/internal/token"
)

// frame is an open parenthesis on the operator stack.
type frame struct {
	pos  int
	call *token.Token // function head owning the parenthesis, nil for a group
	argc int
}

// entry is an element of the operator stack: either an operator or an open
// parenthesis.
type entry struct {
	op    ops.Op
	pos   int
	paren *frame
}

type Parser struct {
	tokens []token.Token
	prog   *rpn.Program
	stack  []entry
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, prog: &rpn.Program{}}
}

// Parse converts tokens to a postfix program and checks that the program
// leaves exactly one value on the stack.
func Parse(tokens []token.Token) (*rpn.Program, error) {
	p := New(tokens)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if err := checkDepth(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) ParseProgram() (*rpn.Program, error) {
	if len(p.tokens) == 0 {
		return nil, diagnostics.NewError(diagnostics.ErrP005, 0, "empty expression")
	}

	for i := 0; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		var err error
		switch tok.Type {
		case token.NUMBER:
			p.prog.EmitNumber(tok)
		case token.IDENT:
			p.prog.EmitConstant(tok.Lexeme, tok.Pos)
		case token.FUNC_HEAD:
			// The lexer only tags a name as a function head when '(' follows.
			head := tok
			i++
			p.push(entry{paren: &frame{pos: p.tokens[i].Pos, call: &head, argc: 1}})
			if i+1 < len(p.tokens) && p.tokens[i+1].Type == token.RPAREN {
				p.top().paren.argc = 0
			}
		case token.LPAREN:
			p.push(entry{paren: &frame{pos: tok.Pos}})
		case token.COMMA:
			err = p.parseComma(tok)
		case token.RPAREN:
			err = p.parseRParen(tok)
		case token.OPERATOR:
			err = p.parseOperator(tok)
		default:
			err = diagnostics.NewError(diagnostics.ErrP004, tok.Pos, "unexpected token %s", tok)
		}
		if err != nil {
			return nil, err
		}
	}

	for len(p.stack) > 0 {
		e := p.pop()
		if e.paren != nil {
			if e.paren.call != nil {
				return nil, diagnostics.NewError(diagnostics.ErrP003, e.paren.call.Pos,
					"unterminated call to '%s' at position %d", e.paren.call.Lexeme, e.paren.call.Pos)
			}
			return nil, diagnostics.NewError(diagnostics.ErrP001, e.paren.pos,
				"mismatched parentheses: '(' at position %d is never closed", e.paren.pos)
		}
		p.prog.EmitOperator(e.op, e.pos)
	}
	return p.prog, nil
}

func (p *Parser) parseOperator(tok token.Token) error {
	op := ops.ToOp(tok.Lexeme)
	if op == ops.InvalidOp {
		return diagnostics.NewError(diagnostics.ErrP004, tok.Pos, "unknown operator '%s'", tok.Lexeme)
	}
	for len(p.stack) > 0 {
		top := p.top()
		if top.paren != nil || !ops.Yields(op, top.op) {
			break
		}
		p.pop()
		p.prog.EmitOperator(top.op, top.pos)
	}
	p.push(entry{op: op, pos: tok.Pos})
	return nil
}

// flushToParen emits operators down to the nearest open parenthesis and
// returns it, or nil when the stack holds none.
func (p *Parser) flushToParen() *frame {
	for len(p.stack) > 0 {
		top := p.top()
		if top.paren != nil {
			return top.paren
		}
		p.pop()
		p.prog.EmitOperator(top.op, top.pos)
	}
	return nil
}

func (p *Parser) parseComma(tok token.Token) error {
	f := p.flushToParen()
	if f == nil || f.call == nil {
		return diagnostics.NewError(diagnostics.ErrP002, tok.Pos,
			"misplaced comma at position %d", tok.Pos)
	}
	f.argc++
	return nil
}

func (p *Parser) parseRParen(tok token.Token) error {
	f := p.flushToParen()
	if f == nil {
		return diagnostics.NewError(diagnostics.ErrP001, tok.Pos,
			"mismatched parentheses: unexpected ')' at position %d", tok.Pos)
	}
	p.pop()
	if f.call != nil {
		p.prog.EmitCall(f.call.Lexeme, f.argc, f.call.Pos)
	}
	return nil
}

func (p *Parser) push(e entry) {
	p.stack = append(p.stack, e)
}

func (p *Parser) pop() entry {
	e := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return e
}

func (p *Parser) top() *entry {
	return &p.stack[len(p.stack)-1]
}
