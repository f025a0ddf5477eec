// Package expr implements the restricted expression language used for
// custom binding function bodies.
//
// The language covers literals, identifiers bound to the evaluation context
// (value, min, max, timestep, timestepCount, gradientLow, gradientHigh),
// dotted field access (node.<field>), unary -/!, arithmetic, comparisons,
// && and ||, and a fixed allow-list of math functions plus the conditional
// call if(cond, then, else). There is deliberately no way to reach the host
// environment: the language itself is the sandbox.
package expr

// Span is a byte-offset range in the source string.
type Span struct {
	Start int
	End   int
}

// NodeKind discriminates AST node types.
type NodeKind int

const (
	KindLiteral NodeKind = iota
	KindIdentifier
	KindProperty
	KindUnary
	KindBinary
	KindCall
	KindGroup
)

// Node is a generic AST node.
type Node struct {
	Kind NodeKind
	Span Span

	// Literal
	Literal Value

	// Identifier / Call name
	Name string

	// Property
	Object   *Node
	Property string

	// Operators
	Op    string
	Left  *Node
	Right *Node
	Expr  *Node

	// Call
	Args []*Node

	// Group
	Inner *Node
}

// Value is the runtime value type: NumberValue, StringValue, or BoolValue.
type Value any

type (
	NumberValue float64
	StringValue string
	BoolValue   bool
)
