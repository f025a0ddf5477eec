package expr

import (
	"errors"
	"fmt"
	"math"
)

// ErrEval indicates a runtime evaluation failure.
var ErrEval = errors.New("expr: eval error")

// Resolver supplies values for identifiers and dotted paths. A bare
// identifier resolves with a single-element path; node.Population resolves
// with ["node", "Population"].
type Resolver interface {
	ResolveValue(path []string) (Value, bool)
}

// Eval evaluates the compiled program against a resolver.
func (p *Program) Eval(resolver Resolver) (Value, error) {
	return evalNode(p.root, resolver)
}

func evalNode(n *Node, resolver Resolver) (Value, error) {
	switch n.Kind {
	case KindLiteral:
		return n.Literal, nil
	case KindIdentifier:
		if v, ok := resolver.ResolveValue([]string{n.Name}); ok {
			return v, nil
		}
		return nil, fmt.Errorf("%w: unknown identifier %q", ErrEval, n.Name)
	case KindProperty:
		path, err := propertyPath(n)
		if err != nil {
			return nil, err
		}
		if v, ok := resolver.ResolveValue(path); ok {
			return v, nil
		}
		return nil, fmt.Errorf("%w: unresolved field %q", ErrEval, n.Property)
	case KindGroup:
		return evalNode(n.Inner, resolver)
	case KindUnary:
		return evalUnary(n, resolver)
	case KindBinary:
		left, err := evalNode(n.Left, resolver)
		if err != nil {
			return nil, err
		}
		// Short-circuit before evaluating the right side.
		if n.Op == "&&" || n.Op == "||" {
			lb, err := toBool(left)
			if err != nil {
				return nil, err
			}
			if (n.Op == "&&" && !lb) || (n.Op == "||" && lb) {
				return BoolValue(lb), nil
			}
			right, err := evalNode(n.Right, resolver)
			if err != nil {
				return nil, err
			}
			rb, err := toBool(right)
			if err != nil {
				return nil, err
			}
			return BoolValue(rb), nil
		}
		right, err := evalNode(n.Right, resolver)
		if err != nil {
			return nil, err
		}
		return evalBinary(n.Op, left, right)
	case KindCall:
		return evalCall(n, resolver)
	default:
		return nil, fmt.Errorf("%w: unknown node kind", ErrEval)
	}
}

// propertyPath flattens a chain of property accesses rooted at an
// identifier into a resolver path.
func propertyPath(n *Node) ([]string, error) {
	var parts []string
	for n.Kind == KindProperty {
		parts = append([]string{n.Property}, parts...)
		n = n.Object
	}
	if n.Kind != KindIdentifier {
		return nil, fmt.Errorf("%w: field access must be rooted at an identifier", ErrEval)
	}
	return append([]string{n.Name}, parts...), nil
}

func evalUnary(n *Node, resolver Resolver) (Value, error) {
	val, err := evalNode(n.Expr, resolver)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		num, err := toNumber(val)
		if err != nil {
			return nil, err
		}
		return NumberValue(-num), nil
	case "!":
		b, err := toBool(val)
		if err != nil {
			return nil, err
		}
		return BoolValue(!b), nil
	}
	return nil, fmt.Errorf("%w: unknown unary op %q", ErrEval, n.Op)
}

func evalBinary(op string, left, right Value) (Value, error) {
	switch op {
	case "+", "-", "*", "/", "%":
		a, err := toNumber(left)
		if err != nil {
			return nil, err
		}
		b, err := toNumber(right)
		if err != nil {
			return nil, err
		}
		switch op {
		case "+":
			return NumberValue(a + b), nil
		case "-":
			return NumberValue(a - b), nil
		case "*":
			return NumberValue(a * b), nil
		case "/":
			return NumberValue(a / b), nil
		default:
			return NumberValue(math.Mod(a, b)), nil
		}
	case "==", "!=", "<", "<=", ">", ">=":
		return compare(op, left, right)
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrEval, op)
}

func compare(op string, left, right Value) (Value, error) {
	if l, ok := left.(StringValue); ok {
		r, ok := right.(StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: comparing string with non-string", ErrEval)
		}
		switch op {
		case "==":
			return BoolValue(l == r), nil
		case "!=":
			return BoolValue(l != r), nil
		}
		return nil, fmt.Errorf("%w: strings only support == and !=", ErrEval)
	}
	a, err := toNumber(left)
	if err != nil {
		return nil, err
	}
	b, err := toNumber(right)
	if err != nil {
		return nil, err
	}
	var result bool
	switch op {
	case "==":
		result = a == b
	case "!=":
		result = a != b
	case "<":
		result = a < b
	case "<=":
		result = a <= b
	case ">":
		result = a > b
	case ">=":
		result = a >= b
	}
	return BoolValue(result), nil
}

type builtin struct {
	arity int
	apply func(args []Value) (Value, error)
}

func numeric1(fn func(float64) float64) builtin {
	return builtin{arity: 1, apply: func(args []Value) (Value, error) {
		x, err := toNumber(args[0])
		if err != nil {
			return nil, err
		}
		return NumberValue(fn(x)), nil
	}}
}

func numeric2(fn func(a, b float64) float64) builtin {
	return builtin{arity: 2, apply: func(args []Value) (Value, error) {
		a, err := toNumber(args[0])
		if err != nil {
			return nil, err
		}
		b, err := toNumber(args[1])
		if err != nil {
			return nil, err
		}
		return NumberValue(fn(a, b)), nil
	}}
}

// builtins is the complete math allow-list plus the conditional form.
var builtins = map[string]builtin{
	"abs":   numeric1(math.Abs),
	"floor": numeric1(math.Floor),
	"ceil":  numeric1(math.Ceil),
	"round": numeric1(math.Round),
	"sqrt":  numeric1(math.Sqrt),
	"log":   numeric1(math.Log),
	"log10": numeric1(math.Log10),
	"exp":   numeric1(math.Exp),
	"sin":   numeric1(math.Sin),
	"cos":   numeric1(math.Cos),
	"pow":   numeric2(math.Pow),
	"min":   numeric2(math.Min),
	"max":   numeric2(math.Max),
	"clamp": {arity: 3, apply: func(args []Value) (Value, error) {
		x, err := toNumber(args[0])
		if err != nil {
			return nil, err
		}
		lo, err := toNumber(args[1])
		if err != nil {
			return nil, err
		}
		hi, err := toNumber(args[2])
		if err != nil {
			return nil, err
		}
		return NumberValue(math.Min(math.Max(x, lo), hi)), nil
	}},
	// if is a call form, not an operator: both branches may be any type
	// but only the selected branch is evaluated.
	"if": {arity: 3},
}

func evalCall(n *Node, resolver Resolver) (Value, error) {
	if n.Name == "if" {
		cond, err := evalNode(n.Args[0], resolver)
		if err != nil {
			return nil, err
		}
		b, err := toBool(cond)
		if err != nil {
			return nil, err
		}
		if b {
			return evalNode(n.Args[1], resolver)
		}
		return evalNode(n.Args[2], resolver)
	}

	fn := builtins[n.Name] // existence checked at compile time
	args := make([]Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := evalNode(arg, resolver)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return fn.apply(args)
}

func toNumber(v Value) (float64, error) {
	if n, ok := v.(NumberValue); ok {
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: expected a number, got %T", ErrEval, v)
}

func toBool(v Value) (bool, error) {
	if b, ok := v.(BoolValue); ok {
		return bool(b), nil
	}
	return false, fmt.Errorf("%w: expected a boolean, got %T", ErrEval, v)
}
