package binding

import (
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/expr"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
)

// Entity is the per-entity context a binding evaluates against. The visset
// node type implements it.
type Entity interface {
	EntityID() uint32
	// Attr returns a named numeric attribute of the entity.
	Attr(name string) (float64, bool)
}

// Context is the immutable per-evaluation input: one raw datum plus the
// surrounding state a transform may consult. A fresh Context is built for
// every entity × timestep evaluation; nothing in it is mutated by Evaluate.
type Context struct {
	// Value is the current raw datum from the bound source.
	Value float64

	// Min and Max mirror the bound source's range.
	Min, Max float64

	Entity        Entity
	Timestep      int
	TimestepCount int

	// Gradient sampling state for the sampleGradient transform.
	// GradientLow/High restrict sampling to a sub-range of [0,1].
	Gradient     *gradient.Gradient
	GradientLow  float64
	GradientHigh float64
}

// normalize maps Value into [0,1] against the source range, returning 0
// when the range has no width.
func (c Context) normalize() float64 {
	if c.Max == c.Min {
		return 0
	}
	n := (c.Value - c.Min) / (c.Max - c.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// contextResolver exposes Context fields to the expression language.
type contextResolver struct {
	ctx Context
}

func (r contextResolver) ResolveValue(path []string) (expr.Value, bool) {
	switch len(path) {
	case 1:
		switch path[0] {
		case "value":
			return expr.NumberValue(r.ctx.Value), true
		case "min":
			return expr.NumberValue(r.ctx.Min), true
		case "max":
			return expr.NumberValue(r.ctx.Max), true
		case "timestep":
			return expr.NumberValue(r.ctx.Timestep), true
		case "timestepCount":
			return expr.NumberValue(r.ctx.TimestepCount), true
		case "gradientLow":
			return expr.NumberValue(r.ctx.GradientLow), true
		case "gradientHigh":
			return expr.NumberValue(r.ctx.GradientHigh), true
		}
	case 2:
		if path[0] == "node" && r.ctx.Entity != nil {
			if path[1] == "id" {
				return expr.NumberValue(r.ctx.Entity.EntityID()), true
			}
			if v, ok := r.ctx.Entity.Attr(path[1]); ok {
				return expr.NumberValue(v), true
			}
		}
	}
	return nil, false
}
