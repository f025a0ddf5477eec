package expr

import (
	"errors"
	"strings"
	"testing"
)

// mapResolver resolves dotted paths joined with '.'.
type mapResolver map[string]Value

func (m mapResolver) ResolveValue(path []string) (Value, bool) {
	v, ok := m[strings.Join(path, ".")]
	return v, ok
}

var testScope = mapResolver{
	"value":                  NumberValue(23),
	"min":                    NumberValue(0),
	"max":                    NumberValue(46),
	"timestep":               NumberValue(5),
	"timestepCount":          NumberValue(100),
	"node.Population":        NumberValue(1200),
	"node.InitialPrevalence": NumberValue(0.12),
}

func evalString(t *testing.T, src string) Value {
	t.Helper()
	prog, err := Compile(src)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	v, err := prog.Eval(testScope)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"-value / 2", -11.5},
		{"10 % 3", 1},
		{"value / (max - min)", 0.5},
		{"2 * node.Population", 2400},
		{"timestep / timestepCount", 0.05},
	}
	for _, tc := range cases {
		if got := evalString(t, tc.src); got != NumberValue(tc.want) {
			t.Errorf("%q = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestEvalLogic(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"value > 20 && value < 30", true},
		{"value < 20 || max == 46", true},
		{"!(value == 23)", false},
		{"'red' == 'red'", true},
		{"\"red\" != 'blue'", true},
	}
	for _, tc := range cases {
		if got := evalString(t, tc.src); got != BoolValue(tc.want) {
			t.Errorf("%q = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestEvalShortCircuit(t *testing.T) {
	// The right side references an unknown identifier; short-circuiting
	// must keep it from being evaluated.
	if got := evalString(t, "value > 0 || bogus > 1"); got != BoolValue(true) {
		t.Errorf("got %v, want true", got)
	}
	if got := evalString(t, "value < 0 && bogus > 1"); got != BoolValue(false) {
		t.Errorf("got %v, want false", got)
	}
}

func TestEvalBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"abs(min - 10)", 10},
		{"floor(value / 10)", 2},
		{"round(0.5 + value)", 24},
		{"sqrt(value + 2)", 5},
		{"pow(2, 10)", 1024},
		{"min(value, 10)", 10},
		{"max(value, 100)", 100},
		{"clamp(value, 0, 10)", 10},
	}
	for _, tc := range cases {
		if got := evalString(t, tc.src); got != NumberValue(tc.want) {
			t.Errorf("%q = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestEvalIf(t *testing.T) {
	if got := evalString(t, "if(value > 20, 'high', 'low')"); got != StringValue("high") {
		t.Errorf("got %v, want high", got)
	}
	if got := evalString(t, "if(value > 40, 1, 0)"); got != NumberValue(0) {
		t.Errorf("got %v, want 0", got)
	}
	// Only the selected branch evaluates.
	if got := evalString(t, "if(true, 1, bogus)"); got != NumberValue(1) {
		t.Errorf("got %v, want 1", got)
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []string{
		"",
		"value +",
		"(value",
		"value value",
		"nosuchfn(1)",
		"pow(1)",
		"clamp(1, 2)",
		"'unterminated",
		"1.2.3(4)",
	}
	for _, src := range cases {
		if _, err := Compile(src); !errors.Is(err, ErrParse) {
			t.Errorf("Compile(%q) err = %v, want ErrParse", src, err)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []string{
		"bogus + 1",
		"node.NoSuchField",
		"'red' + 1",
		"'red' < 'blue'",
		"!value",
		"if(value, 1, 2)",
	}
	for _, src := range cases {
		prog, err := Compile(src)
		if err != nil {
			t.Fatalf("compile %q: %v", src, err)
		}
		if _, err := prog.Eval(testScope); !errors.Is(err, ErrEval) {
			t.Errorf("Eval(%q) err = %v, want ErrEval", src, err)
		}
	}
}
