package binding

import "fmt"

// Sink is one bindable visual property of a layer: its persisted
// binding spec plus the live Binding built during fix-up.
type Sink struct {
	Key              string     `json:"-"`
	Source           string     `json:"source"`
	Function         string     `json:"function,omitempty"`
	ReturnType       ReturnType `json:"returnType,omitempty"`
	ReturnConversion string     `json:"returnConversion,omitempty"`

	Binding *Binding `json:"-"`
}

// Evaluate runs the sink's binding and applies its return conversion.
// An unknown conversion name leaves the value untouched.
func (s *Sink) Evaluate(ctx Context) (Value, error) {
	if s.Binding == nil {
		return Number(ctx.Value), fmt.Errorf("%w: sink %q has no binding", ErrEval, s.Key)
	}
	v, err := s.Binding.Evaluate(ctx)
	if err != nil {
		return v, err
	}
	if s.ReturnConversion != "" {
		if conv, ok := Converters[s.ReturnConversion]; ok {
			v = conv(v)
		}
	}
	return v, nil
}
