package expr

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrParse indicates a malformed expression body.
var ErrParse = errors.New("expr: parse error")

// Program is a compiled expression ready for repeated evaluation.
type Program struct {
	Source string
	root   *Node
}

// Compile parses and statically checks an expression body.
func Compile(src string) (*Program, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.lexAll(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	if t := p.current(); t.typ != tokEOF {
		return nil, fmt.Errorf("%w: unexpected trailing token %q at offset %d", ErrParse, t.lit, t.span.Start)
	}
	if err := checkCalls(root); err != nil {
		return nil, err
	}
	return &Program{Source: src, root: root}, nil
}

// checkCalls verifies every call site against the function allow-list so
// unknown names fail at compile time, not per frame.
func checkCalls(n *Node) error {
	if n == nil {
		return nil
	}
	if n.Kind == KindCall {
		fn, ok := builtins[n.Name]
		if !ok {
			return fmt.Errorf("%w: unknown function %q", ErrParse, n.Name)
		}
		if len(n.Args) != fn.arity {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrParse, n.Name, fn.arity, len(n.Args))
		}
	}
	for _, child := range []*Node{n.Object, n.Left, n.Right, n.Expr, n.Inner} {
		if err := checkCalls(child); err != nil {
			return err
		}
	}
	for _, arg := range n.Args {
		if err := checkCalls(arg); err != nil {
			return err
		}
	}
	return nil
}

type parser struct {
	lex    *lexer
	tokens []token
	pos    int
}

func (p *parser) lexAll() error {
	for {
		tok, err := p.lex.nextToken()
		if err != nil {
			return err
		}
		p.tokens = append(p.tokens, tok)
		if tok.typ == tokEOF {
			return nil
		}
	}
}

func (p *parser) current() token {
	if p.pos >= len(p.tokens) {
		return token{typ: tokEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt tokenType, msg string) (token, error) {
	t := p.current()
	if t.typ != tt {
		return t, fmt.Errorf("%w: %s at offset %d", ErrParse, msg, t.span.Start)
	}
	p.next()
	return t, nil
}

func (p *parser) parseExpression() (*Node, error) {
	return p.parseLogicalOr()
}

func (p *parser) parseBinaryLevel(ops map[string]bool, sub func() (*Node, error)) (*Node, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	for p.current().typ == tokOp && ops[p.current().lit] {
		op := p.next()
		right, err := sub()
		if err != nil {
			return nil, err
		}
		left = &Node{
			Kind: KindBinary,
			Span: Span{Start: left.Span.Start, End: right.Span.End},
			Op:   op.lit, Left: left, Right: right,
		}
	}
	return left, nil
}

var (
	orOps  = map[string]bool{"||": true}
	andOps = map[string]bool{"&&": true}
	cmpOps = map[string]bool{"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}
	addOps = map[string]bool{"+": true, "-": true}
	mulOps = map[string]bool{"*": true, "/": true, "%": true}
)

func (p *parser) parseLogicalOr() (*Node, error) {
	return p.parseBinaryLevel(orOps, p.parseLogicalAnd)
}

func (p *parser) parseLogicalAnd() (*Node, error) {
	return p.parseBinaryLevel(andOps, p.parseComparison)
}

func (p *parser) parseComparison() (*Node, error) {
	return p.parseBinaryLevel(cmpOps, p.parseAdditive)
}

func (p *parser) parseAdditive() (*Node, error) {
	return p.parseBinaryLevel(addOps, p.parseMultiplicative)
}

func (p *parser) parseMultiplicative() (*Node, error) {
	return p.parseBinaryLevel(mulOps, p.parseUnary)
}

func (p *parser) parseUnary() (*Node, error) {
	if t := p.current(); t.typ == tokOp && (t.lit == "-" || t.lit == "!") {
		op := p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{
			Kind: KindUnary,
			Span: Span{Start: op.span.Start, End: inner.Span.End},
			Op:   op.lit, Expr: inner,
		}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (*Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().typ {
		case tokDot:
			p.next()
			id, err := p.expect(tokIdentifier, "expected field name after '.'")
			if err != nil {
				return nil, err
			}
			node = &Node{
				Kind:   KindProperty,
				Span:   Span{Start: node.Span.Start, End: id.span.End},
				Object: node, Property: id.lit,
			}
		case tokLParen:
			if node.Kind != KindIdentifier {
				return nil, fmt.Errorf("%w: only named functions are callable", ErrParse)
			}
			p.next()
			var args []*Node
			if p.current().typ != tokRParen {
				for {
					arg, err := p.parseExpression()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.current().typ != tokComma {
						break
					}
					p.next()
				}
			}
			end, err := p.expect(tokRParen, "expected ')' after arguments")
			if err != nil {
				return nil, err
			}
			node = &Node{
				Kind: KindCall,
				Span: Span{Start: node.Span.Start, End: end.span.End},
				Name: node.Name, Args: args,
			}
		default:
			return node, nil
		}
	}
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.current()
	switch t.typ {
	case tokNumber:
		p.next()
		num, err := strconv.ParseFloat(t.lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrParse, t.lit)
		}
		return &Node{Kind: KindLiteral, Span: t.span, Literal: NumberValue(num)}, nil
	case tokString:
		p.next()
		return &Node{Kind: KindLiteral, Span: t.span, Literal: StringValue(t.lit)}, nil
	case tokBool:
		p.next()
		return &Node{Kind: KindLiteral, Span: t.span, Literal: BoolValue(t.lit == "true")}, nil
	case tokIdentifier:
		p.next()
		return &Node{Kind: KindIdentifier, Span: t.span, Name: t.lit}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(tokRParen, "expected ')'")
		if err != nil {
			return nil, err
		}
		return &Node{
			Kind:  KindGroup,
			Span:  Span{Start: t.span.Start, End: end.span.End},
			Inner: inner,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q at offset %d", ErrParse, t.lit, t.span.Start)
	}
}
