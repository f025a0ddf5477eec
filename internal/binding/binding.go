// Package binding pairs data sources with transform functions and
// evaluates them per entity per timestep. A Binding never panics and
// never fails hard at frame time: a broken function or missing datum
// degrades to the raw source value, with the error recorded for the
// caller to surface.
package binding

import (
	"fmt"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
)

// Binding couples one source with one transform. The zero source is the
// none source and the zero transform is identity, so a freshly
// constructed Binding is always evaluable.
type Binding struct {
	source   *Source
	fn       *Function
	wantType ReturnType

	// err records the most recent setup problem (parse failure or
	// return-type mismatch). Evaluation proceeds with identity
	// semantics while err is non-nil.
	err error
}

// New returns a binding on the given source with the identity transform.
// A nil source binds to none.
func New(source *Source, wantType ReturnType) *Binding {
	if source == nil {
		source = NoneSource()
	}
	return &Binding{source: source, fn: Identity(), wantType: wantType}
}

// Source returns the bound source.
func (b *Binding) Source() *Source { return b.source }

// Function returns the active transform, never nil.
func (b *Binding) Function() *Function { return b.fn }

// Err returns the recorded setup error, if any.
func (b *Binding) Err() error { return b.err }

// SetSource rebinds the data source. A nil source binds to none.
func (b *Binding) SetSource(source *Source) {
	if source == nil {
		source = NoneSource()
	}
	b.source = source
}

// SetFunction parses and installs new transform text. On a parse error
// the previous transform is replaced by identity and the error recorded;
// the binding stays evaluable either way. After a successful parse the
// transform is probed once against a synthetic context and discarded if
// its result type does not match the binding's declared return type.
func (b *Binding) SetFunction(text string) error {
	fn, err := ParseFunction(text)
	if err != nil {
		b.fn = Identity()
		b.err = err
		return err
	}
	if err := probeType(fn, b.source, b.wantType); err != nil {
		b.fn = Identity()
		b.err = err
		return err
	}
	b.fn = fn
	b.err = nil
	return nil
}

// probeType evaluates fn once against a representative context and
// checks the result against the declared return type. Numbers are
// accepted for string sinks since every number formats.
func probeType(fn *Function, source *Source, want ReturnType) error {
	// Identity is the fallback every mismatch degrades to; it is
	// always acceptable, whatever the sink's declared type.
	if fn.kind == fnNone {
		return nil
	}
	mid := (source.Min + source.Max) / 2
	probe := Context{
		Value:        mid,
		Min:          source.Min,
		Max:          source.Max,
		Entity:       probeEntity{v: mid},
		Gradient:     gradient.Default(),
		GradientHigh: 1,
	}
	got, err := fn.eval(probe)
	if err != nil {
		return fmt.Errorf("%w: probe: %v", ErrEval, err)
	}
	if typeCompatible(got.Type(), want) {
		return nil
	}
	return fmt.Errorf("%w: %s returns %s, sink wants %s", ErrTypeMismatch, fn, got.Type(), want)
}

// probeEntity stands in for a real node during the type probe. Any
// attribute resolves to the representative probe value, so expressions
// reading node fields type-check without real data behind them.
type probeEntity struct{ v float64 }

func (e probeEntity) EntityID() uint32            { return 0 }
func (e probeEntity) Attr(string) (float64, bool) { return e.v, true }

func typeCompatible(got, want ReturnType) bool {
	// An undeclared sink type accepts anything.
	if want == "" || got == want {
		return true
	}
	// A color sink also accepts strings: color names and hex text
	// pass through to the renderer.
	if want == ReturnColor && got == ReturnString {
		return true
	}
	// A string sink also accepts numbers: every number has a text
	// form, and Value.String produces it at emit time.
	return want == ReturnString && got == ReturnNumber
}

// Datum fetches the raw value for one entity at one timestep. The none
// source always yields zero; static sources read an entity attribute;
// dynamic sources read the decoded channel.
func (b *Binding) Datum(e Entity, timestep int) (float64, error) {
	switch b.source.Kind {
	case Static:
		if b.source.Key == NoneKey {
			return 0, nil
		}
		if e == nil {
			return 0, &MissingDataError{Source: b.source.Key, Timestep: timestep}
		}
		v, ok := e.Attr(b.source.Key)
		if !ok {
			return 0, &MissingDataError{Source: b.source.Key, NodeID: e.EntityID(), Timestep: timestep}
		}
		return v, nil
	case Dynamic:
		if b.source.Data == nil || e == nil {
			return 0, &MissingDataError{Source: b.source.Key, Timestep: timestep}
		}
		v, ok := b.source.Data.Value(timestep, e.EntityID())
		if !ok {
			return 0, &MissingDataError{Source: b.source.Key, NodeID: e.EntityID(), Timestep: timestep}
		}
		return v, nil
	}
	return 0, nil
}

// Evaluate applies the transform to the context. It never panics; if the
// transform fails at runtime the raw context value is returned as a
// number along with the error.
func (b *Binding) Evaluate(ctx Context) (Value, error) {
	return b.fn.eval(ctx)
}
