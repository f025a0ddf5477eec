package binding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/expr"
)

// DefaultFunctionText is the identity transform spec assigned to sinks
// with no function of their own.
const DefaultFunctionText = "none()"

// funcKind is the closed set of transform behaviors. Function names are
// resolved to a kind once at parse time; evaluation never dispatches on
// strings.
type funcKind int

const (
	fnNone funcKind = iota
	fnFixed
	fnAdd
	fnMultiply
	fnNormalize
	fnScale
	fnSampleGradient
	fnIf
	fnInRange
	fnStepwise
	fnCustom
)

var funcKinds = map[string]funcKind{
	"none":           fnNone,
	"fixed":          fnFixed,
	"add":            fnAdd,
	"multiply":       fnMultiply,
	"normalize":      fnNormalize,
	"scale":          fnScale,
	"sampleGradient": fnSampleGradient,
	"if":             fnIf,
	"inRange":        fnInRange,
	"stepwise":       fnStepwise,
}

// Function is a parsed transform: a resolved built-in plus its literal
// arguments, or a compiled custom expression body.
type Function struct {
	text    string
	kind    funcKind
	args    []Value
	program *expr.Program
}

// Identity returns the none() transform.
func Identity() *Function {
	return &Function{text: DefaultFunctionText, kind: fnNone}
}

// String returns the original function text.
func (f *Function) String() string { return f.text }

// ParseFunction parses transform text: either name(literal, ...) against
// the built-in set, or a custom body delimited by { and }.
func ParseFunction(text string) (*Function, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty function text", ErrParse)
	}

	if strings.HasPrefix(trimmed, "{") {
		if !strings.HasSuffix(trimmed, "}") {
			return nil, fmt.Errorf("%w: unterminated custom body", ErrParse)
		}
		body := trimmed[1 : len(trimmed)-1]
		prog, err := expr.Compile(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return &Function{text: text, kind: fnCustom, program: prog}, nil
	}

	open := strings.Index(trimmed, "(")
	if open < 0 || !strings.HasSuffix(trimmed, ")") {
		return nil, fmt.Errorf("%w: expected name(args) in %q", ErrParse, text)
	}
	name := strings.TrimSpace(trimmed[:open])
	kind, ok := funcKinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown function %q", ErrParse, name)
	}
	args, err := parseArgs(trimmed[open+1 : len(trimmed)-1])
	if err != nil {
		return nil, err
	}
	fn := &Function{text: text, kind: kind, args: args}
	if err := fn.validateArgs(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseArgs reads a comma-separated literal list: numbers, quoted strings,
// the barewords true/false, and the stepwise sentinel else. Arguments are
// literals only, never expressions.
func parseArgs(s string) ([]Value, error) {
	var args []Value
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, nil
	}
	for _, part := range splitTopLevel(rest) {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			return nil, fmt.Errorf("%w: empty argument", ErrParse)
		case part[0] == '\'' || part[0] == '"':
			if len(part) < 2 || part[len(part)-1] != part[0] {
				return nil, fmt.Errorf("%w: unterminated string %q", ErrParse, part)
			}
			args = append(args, String(part[1:len(part)-1]))
		case part == "else":
			args = append(args, String("else"))
		case part == "true":
			args = append(args, Number(1))
		case part == "false":
			args = append(args, Number(0))
		default:
			num, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad literal %q", ErrParse, part)
			}
			args = append(args, Number(num))
		}
	}
	return args, nil
}

// splitTopLevel splits on commas outside quoted strings.
func splitTopLevel(s string) []string {
	var parts []string
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func (f *Function) validateArgs() error {
	fail := func(format string, a ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrParse}, a...)...)
	}
	wantNumbers := func(idx ...int) error {
		for _, i := range idx {
			if f.args[i].Kind() != KindNumber {
				return fail("%s: argument %d must be a number", f.text, i+1)
			}
		}
		return nil
	}

	switch f.kind {
	case fnNone, fnNormalize:
		if len(f.args) != 0 {
			return fail("%s takes no arguments", f.text)
		}
	case fnFixed:
		if len(f.args) != 1 {
			return fail("fixed takes one argument")
		}
	case fnAdd, fnMultiply:
		if len(f.args) != 1 {
			return fail("%s takes one argument", f.text)
		}
		return wantNumbers(0)
	case fnScale:
		if len(f.args) != 2 {
			return fail("scale takes two arguments")
		}
		return wantNumbers(0, 1)
	case fnSampleGradient:
		if len(f.args) > 1 {
			return fail("sampleGradient takes at most one argument")
		}
		if len(f.args) == 1 {
			return wantNumbers(0)
		}
	case fnIf:
		if len(f.args) != 4 {
			return fail("if takes four arguments")
		}
		if f.args[0].Kind() != KindString {
			return fail("if: first argument must be a comparison operator")
		}
		return wantNumbers(1)
	case fnInRange:
		if len(f.args) != 4 {
			return fail("inRange takes four arguments")
		}
		return wantNumbers(0, 1)
	case fnStepwise:
		if len(f.args) < 2 || len(f.args)%2 != 0 {
			return fail("stepwise takes step/value pairs")
		}
		last := f.args[len(f.args)-2]
		if last.Kind() != KindString || last.Str() != "else" {
			return fail("stepwise requires a final \"else\" pair")
		}
		for i := 0; i < len(f.args)-2; i += 2 {
			if f.args[i].Kind() != KindNumber {
				return fail("stepwise: step %d must be a number", i/2+1)
			}
		}
	}
	return nil
}

func (f *Function) eval(ctx Context) (Value, error) {
	switch f.kind {
	case fnNone:
		return Number(ctx.Value), nil
	case fnFixed:
		return f.args[0], nil
	case fnAdd:
		return Number(ctx.Value + f.args[0].Num()), nil
	case fnMultiply:
		return Number(ctx.Value * f.args[0].Num()), nil
	case fnNormalize:
		return Number(ctx.normalize()), nil
	case fnScale:
		lo, hi := f.args[0].Num(), f.args[1].Num()
		return Number(lo + ctx.normalize()*(hi-lo)), nil
	case fnSampleGradient:
		return f.evalSampleGradient(ctx)
	case fnIf:
		return f.evalIf(ctx), nil
	case fnInRange:
		if ctx.Value >= f.args[0].Num() && ctx.Value <= f.args[1].Num() {
			return f.args[2], nil
		}
		return f.args[3], nil
	case fnStepwise:
		return f.evalStepwise(ctx), nil
	case fnCustom:
		return f.evalCustom(ctx)
	}
	return Number(ctx.Value), fmt.Errorf("%w: unhandled function kind", ErrEval)
}

func (f *Function) evalSampleGradient(ctx Context) (Value, error) {
	if ctx.Gradient == nil {
		return Number(ctx.Value), fmt.Errorf("%w: %s: no gradient bound", ErrEval, f.text)
	}
	loc := ctx.Value
	if len(f.args) == 0 || f.args[0].Num() != 0 {
		loc = ctx.normalize()
	} else if loc < 0 {
		loc = 0
	} else if loc > 1 {
		loc = 1
	}
	if ctx.GradientLow != 0 || ctx.GradientHigh != 1 {
		loc = ctx.GradientLow + loc*(ctx.GradientHigh-ctx.GradientLow)
	}
	return ColorOf(ctx.Gradient.Sample(loc)), nil
}

func (f *Function) evalIf(ctx Context) Value {
	c := f.args[1].Num()
	thenVal, elseVal := f.args[2], f.args[3]
	var match bool
	switch f.args[0].Str() {
	case "<":
		match = ctx.Value < c
	case "<=":
		match = ctx.Value <= c
	case ">":
		match = ctx.Value > c
	case ">=":
		match = ctx.Value >= c
	case "==", "=":
		match = ctx.Value == c
	case "!=", "<>":
		match = ctx.Value != c
	default:
		// Unknown operator selects the else branch.
		return elseVal
	}
	if match {
		return thenVal
	}
	return elseVal
}

func (f *Function) evalStepwise(ctx Context) Value {
	for i := 0; i < len(f.args); i += 2 {
		step := f.args[i]
		if step.Kind() == KindString && step.Str() == "else" {
			return f.args[i+1]
		}
		if ctx.Value < step.Num() {
			return f.args[i+1]
		}
	}
	// validateArgs guarantees a trailing else pair.
	return Number(ctx.Value)
}

func (f *Function) evalCustom(ctx Context) (Value, error) {
	result, err := f.program.Eval(contextResolver{ctx: ctx})
	if err != nil {
		return Number(ctx.Value), fmt.Errorf("%w: %v", ErrEval, err)
	}
	switch v := result.(type) {
	case expr.NumberValue:
		return Number(float64(v)), nil
	case expr.StringValue:
		return String(string(v)), nil
	case expr.BoolValue:
		if v {
			return Number(1), nil
		}
		return Number(0), nil
	}
	return Number(ctx.Value), fmt.Errorf("%w: custom body produced unsupported type %T", ErrEval, result)
}
