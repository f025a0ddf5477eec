package binding

import (
	"fmt"
	"math"
	"strconv"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
)

// ReturnType is a sink's declared evaluation result type.
type ReturnType string

const (
	ReturnNumber ReturnType = "number"
	ReturnString ReturnType = "string"
	ReturnColor  ReturnType = "color"
)

// ValueKind discriminates evaluation result values.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindColor
)

// Value is the closed result type of a binding evaluation: a number, a
// string, or a color. The zero Value is the number 0.
type Value struct {
	kind  ValueKind
	num   float64
	str   string
	color gradient.Color
}

// Number builds a numeric Value.
func Number(v float64) Value { return Value{kind: KindNumber, num: v} }

// String builds a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// ColorOf builds a color Value.
func ColorOf(c gradient.Color) Value { return Value{kind: KindColor, color: c} }

// Kind returns the value's discriminator.
func (v Value) Kind() ValueKind { return v.kind }

// Num returns the numeric payload; zero for non-numbers.
func (v Value) Num() float64 { return v.num }

// Str returns the string payload; empty for non-strings.
func (v Value) Str() string { return v.str }

// Color returns the color payload; the zero color for non-colors.
func (v Value) Color() gradient.Color { return v.color }

// Type maps the value's kind onto the sink return-type vocabulary.
func (v Value) Type() ReturnType {
	switch v.kind {
	case KindString:
		return ReturnString
	case KindColor:
		return ReturnColor
	default:
		return ReturnNumber
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindColor:
		return v.color.Hex()
	default:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
}

// Converters are the named secondary conversions a sink may apply to its
// function's output before use.
var Converters = map[string]func(Value) Value{
	"round": func(v Value) Value {
		if v.kind != KindNumber {
			return v
		}
		return Number(math.Round(v.num))
	},
	"floor": func(v Value) Value {
		if v.kind != KindNumber {
			return v
		}
		return Number(math.Floor(v.num))
	},
	"boolean": func(v Value) Value {
		if v.kind != KindNumber {
			return v
		}
		return String(fmt.Sprintf("%t", v.num != 0))
	},
}
