// Package expr - scanner and recursive-descent parser.
//
// The grammar, lowest precedence first:
//
//	sum     := product (('+' | '-') product)*
//	product := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('^' unary)?          // right-associative
//	primary := number | ident | ident '(' args ')' | '(' sum ')'
//	args    := sum (',' sum)*
//
// Unary minus binds looser than '^', so "-x^2" is -(x^2), while the
// exponent re-enters unary so "2^-3" parses as expected.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/katalvlaran/mathviz/core"
)

// Function is a compiled expression of the single variable x.
//
// A Function is immutable after Parse and safe for concurrent use.
// The zero value is not usable; obtain instances from Parse.
type Function struct {
	src  string
	root node
}

// Source returns the original source text, verbatim.
func (f *Function) Source() string { return f.src }

// String implements fmt.Stringer; it prints the source text.
func (f *Function) String() string { return f.src }

// Eval computes the expression at x.
//
// Eval is total: domain faults follow IEEE-754 and come back as NaN or
// ±Inf. It performs no allocations, so calling it per sample point in a
// tight plotting loop is fine.
func (f *Function) Eval(x float64) float64 { return f.root.eval(x) }

// Func adapts the compiled expression to the shared core.Func shape.
func (f *Function) Func() core.Func { return f.Eval }

// Parse compiles src into a *Function.
//
// On malformed input it returns a *SyntaxError (matching ErrSyntax)
// that names the byte offset and reason of the first problem; an empty
// or whitespace-only src yields ErrEmptyExpression. There is no silent
// fallback: a source that does not parse never evaluates.
func Parse(src string, opts ...Option) (*Function, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newParser(src, cfg)
	if p.tok == scanner.EOF {
		if p.scanErr != nil {
			return nil, p.scanErr
		}

		return nil, ErrEmptyExpression
	}

	root, err := p.parseSum()
	// Scanner-level faults (e.g. a malformed exponent) are the root
	// cause of whatever the grammar tripped on afterwards.
	if p.scanErr != nil {
		return nil, p.scanErr
	}
	if err != nil {
		return nil, err
	}
	if p.tok != scanner.EOF {
		return nil, p.errorf("unexpected %q after expression", p.text)
	}

	return &Function{src: src, root: root}, nil
}

// parser carries the lexer state and one token of lookahead.
type parser struct {
	sc      scanner.Scanner
	cfg     config
	tok     rune
	text    string
	pos     int
	scanErr *SyntaxError
}

func newParser(src string, cfg config) *parser {
	p := &parser{cfg: cfg}
	p.sc.Init(strings.NewReader(src))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	// Capture scanner diagnostics instead of the default stderr print.
	p.sc.Error = func(s *scanner.Scanner, msg string) {
		if p.scanErr == nil {
			p.scanErr = &SyntaxError{Pos: s.Position.Offset, Msg: msg}
		}
	}
	p.next()

	return p
}

// next advances the lookahead token and records its text and offset.
func (p *parser) next() {
	p.tok = p.sc.Scan()
	p.text = p.sc.TokenText()
	p.pos = p.sc.Position.Offset
}

// errorf builds a *SyntaxError located at the current token.
func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseSum handles '+' and '-', left-associatively.
func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()

		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}

	return left, nil
}

// parseProduct handles '*' and '/', left-associatively.
func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}

	return left, nil
}

// parseUnary consumes a (possibly stacked) leading sign.
func (p *parser) parseUnary() (node, error) {
	switch p.tok {
	case '+':
		p.next()

		return p.parseUnary()
	case '-':
		p.next()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return negate{operand: operand}, nil
	default:
		return p.parsePower()
	}
}

// parsePower handles right-associative '^'. The exponent re-enters
// parseUnary so both "2^-3" and "2^3^2" parse without parentheses.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok != '^' {
		return base, nil
	}
	p.next()

	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binary{op: '^', left: base, right: exp}, nil
}

// parsePrimary handles literals, identifiers, calls, and parentheses.
func (p *parser) parsePrimary() (node, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.text, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", p.text)
		}
		p.next()

		return literal{val: v}, nil

	case scanner.Ident:
		return p.parseIdent()

	case '(':
		p.next()

		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.next()

		return inner, nil

	case scanner.EOF:
		return nil, p.errorf("unexpected end of expression")

	default:
		return nil, p.errorf("unexpected %q", p.text)
	}
}

// parseIdent resolves the variable, named constants, and builtin calls.
// Resolution is a parse-time decision; unknown names fail here rather
// than at evaluation.
func (p *parser) parseIdent() (node, error) {
	name, pos := p.text, p.pos
	p.next()

	if name == "x" {
		return variable{}, nil
	}
	if name == "pi" {
		return literal{val: math.Pi}, nil
	}

	if fn, ok := builtins[name]; ok {
		args, err := p.parseArgs(name, pos)
		if err != nil {
			return nil, err
		}
		if len(args) != fn.arity() {
			return nil, &SyntaxError{
				Pos: pos,
				Msg: fmt.Sprintf("%s expects %d argument(s), got %d", name, fn.arity(), len(args)),
			}
		}
		if fn.arity() == 1 {
			return call1{fn: fn.(fn1), arg: args[0]}, nil
		}

		return call2{fn: fn.(fn2), a: args[0], b: args[1]}, nil
	}

	if v, ok := p.cfg.consts[name]; ok {
		return literal{val: v}, nil
	}

	return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unknown identifier %q", name)}
}

// parseArgs consumes '(' sum (',' sum)* ')' after a builtin name.
// "f()" yields zero arguments; the caller's arity check rejects it.
func (p *parser) parseArgs(name string, pos int) ([]node, error) {
	if p.tok != '(' {
		return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("%s is a function; expected '(' after it", name)}
	}
	p.next()

	if p.tok == ')' {
		p.next()

		return nil, nil
	}

	var args []node
	for {
		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.tok {
		case ',':
			p.next()
		case ')':
			p.next()

			return args, nil
		default:
			return nil, p.errorf("expected ',' or ')' in %s(...)", name)
		}
	}
}
