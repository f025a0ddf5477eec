package binding

import (
	"errors"
	"testing"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/spatial"
)

// fakeNode is a minimal Entity for binding tests.
type fakeNode struct {
	id    uint32
	attrs map[string]float64
}

func (n *fakeNode) EntityID() uint32 { return n.id }

func (n *fakeNode) Attr(name string) (float64, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 1 {
		t.Fatalf("new registry Len = %d, want 1", r.Len())
	}
	if r.Keys()[0] != NoneKey {
		t.Fatalf("first key = %q, want %q", r.Keys()[0], NoneKey)
	}

	pop := &Source{Key: "Population", FriendlyName: "Population", Kind: Static, Min: 100, Max: 5000}
	if err := r.Add(pop); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(&Source{Key: "Population"}); err == nil {
		t.Fatal("Add duplicate key succeeded, want error")
	}

	if got, ok := r.Get("Population"); !ok || got != pop {
		t.Errorf("Get(Population) = %v, %v", got, ok)
	}
	if got := r.Resolve("Population"); got != pop {
		t.Errorf("Resolve(Population) = %v, want registered source", got)
	}
	if got := r.Resolve(""); got.Key != NoneKey {
		t.Errorf("Resolve(\"\") = %q, want none", got.Key)
	}
	if got := r.Resolve("Vanished_Channel"); got.Key != NoneKey {
		t.Errorf("Resolve(dangling) = %q, want none", got.Key)
	}
}

func TestSetFunctionParseFallback(t *testing.T) {
	b := New(&Source{Key: "x", Kind: Static, Min: 0, Max: 46}, ReturnNumber)
	if err := b.SetFunction("scale(3, 20)"); err != nil {
		t.Fatalf("SetFunction: %v", err)
	}

	if err := b.SetFunction("bogus(1, 2)"); !errors.Is(err, ErrParse) {
		t.Fatalf("SetFunction(bogus) error = %v, want ErrParse", err)
	}
	if !errors.Is(b.Err(), ErrParse) {
		t.Errorf("Err() = %v, want recorded ErrParse", b.Err())
	}

	// The binding must have degraded to identity and stayed evaluable.
	got, err := b.Evaluate(Context{Value: 23, Min: 0, Max: 46})
	if err != nil {
		t.Fatalf("Evaluate after fallback: %v", err)
	}
	if got.Num() != 23 {
		t.Errorf("fallback Evaluate = %v, want raw 23", got.Num())
	}
}

func TestSetFunctionTypeMismatch(t *testing.T) {
	b := New(&Source{Key: "x", Kind: Static, Min: 0, Max: 46}, ReturnNumber)
	err := b.SetFunction("fixed('red')")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("SetFunction(fixed string on number sink) error = %v, want ErrTypeMismatch", err)
	}
	if b.Err() == nil {
		t.Error("Err() = nil, want recorded mismatch")
	}
	got, err := b.Evaluate(Context{Value: 7})
	if err != nil {
		t.Fatalf("Evaluate after mismatch: %v", err)
	}
	if got.Num() != 7 {
		t.Errorf("Evaluate = %v, want identity 7", got.Num())
	}
}

func TestSetFunctionNodeFields(t *testing.T) {
	b := New(&Source{Key: "x", Kind: Static, Min: 0, Max: 46}, ReturnNumber)
	if err := b.SetFunction("{node.InitialPopulation / 100}"); err != nil {
		t.Fatalf("SetFunction(node field body): %v", err)
	}
	if b.Err() != nil {
		t.Fatalf("Err() = %v, want nil", b.Err())
	}

	node := &fakeNode{id: 10, attrs: map[string]float64{"InitialPopulation": 1200}}
	got, err := b.Evaluate(Context{Value: 23, Min: 0, Max: 46, Entity: node})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Num() != 12 {
		t.Errorf("Evaluate = %v, want 12", got.Num())
	}
}

func TestSetFunctionTypeCompatibility(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ReturnType
		ok   bool
	}{
		{"identity on color sink", "none()", ReturnColor, true},
		{"color fn on color sink", "sampleGradient()", ReturnColor, true},
		{"string fn on color sink", "fixed('red')", ReturnColor, true},
		{"number fn on string sink", "normalize()", ReturnString, true},
		{"number fn on color sink", "normalize()", ReturnColor, false},
		{"color fn on number sink", "sampleGradient()", ReturnNumber, false},
		{"string fn on number sink", "stepwise('else', 'low')", ReturnNumber, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(nil, tc.want)
			err := b.SetFunction(tc.text)
			if tc.ok && err != nil {
				t.Fatalf("SetFunction(%q): %v", tc.text, err)
			}
			if !tc.ok && !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("SetFunction(%q) error = %v, want ErrTypeMismatch", tc.text, err)
			}
		})
	}
}

func TestDatumStatic(t *testing.T) {
	node := &fakeNode{id: 10, attrs: map[string]float64{"InitialPopulation": 1200}}
	b := New(&Source{Key: "InitialPopulation", Kind: Static}, ReturnNumber)

	v, err := b.Datum(node, 3)
	if err != nil {
		t.Fatalf("Datum: %v", err)
	}
	if v != 1200 {
		t.Errorf("Datum = %v, want 1200", v)
	}

	b.SetSource(&Source{Key: "Absent_Attr", Kind: Static})
	_, err = b.Datum(node, 3)
	var mde *MissingDataError
	if !errors.As(err, &mde) || !errors.Is(err, ErrMissingData) {
		t.Fatalf("Datum on absent attribute error = %v, want MissingDataError", err)
	}
	if mde.NodeID != 10 || mde.Timestep != 3 {
		t.Errorf("MissingDataError = %+v, want node 10 timestep 3", mde)
	}
}

func TestDatumDynamic(t *testing.T) {
	sb := &spatial.SpatialBinary{
		ChannelName: "Prevalence",
		NodeCount:   2,
		ValueMin:    0.1,
		ValueMax:    0.4,
		Timesteps: []map[uint32]float64{
			{10: 0.1, 20: 0.2},
			{10: 0.3, 20: 0.4},
		},
	}
	b := New(&Source{Key: "Prevalence", Kind: Dynamic, Data: sb, Min: 0.1, Max: 0.4}, ReturnNumber)
	node := &fakeNode{id: 20}

	v, err := b.Datum(node, 1)
	if err != nil {
		t.Fatalf("Datum: %v", err)
	}
	if v != 0.4 {
		t.Errorf("Datum = %v, want 0.4", v)
	}

	if _, err := b.Datum(node, 5); !errors.Is(err, ErrMissingData) {
		t.Errorf("Datum past last timestep error = %v, want ErrMissingData", err)
	}
	if _, err := b.Datum(&fakeNode{id: 99}, 1); !errors.Is(err, ErrMissingData) {
		t.Errorf("Datum for unknown node error = %v, want ErrMissingData", err)
	}
}

func TestDatumNone(t *testing.T) {
	b := New(nil, ReturnNumber)
	v, err := b.Datum(&fakeNode{id: 1}, 0)
	if err != nil {
		t.Fatalf("Datum: %v", err)
	}
	if v != 0 {
		t.Errorf("none Datum = %v, want 0", v)
	}
}

func TestSinkEvaluate(t *testing.T) {
	b := New(&Source{Key: "x", Kind: Static, Min: 0, Max: 10}, ReturnNumber)
	if err := b.SetFunction("scale(0, 5)"); err != nil {
		t.Fatalf("SetFunction: %v", err)
	}
	sink := &Sink{Key: "pointSize", ReturnType: ReturnNumber, ReturnConversion: "round", Binding: b}

	got, err := sink.Evaluate(Context{Value: 7, Min: 0, Max: 10})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Num() != 4 { // scale gives 3.5, round takes it to 4
		t.Errorf("Evaluate = %v, want 4", got.Num())
	}
}

func TestSinkEvaluateUnbound(t *testing.T) {
	sink := &Sink{Key: "pointSize"}
	got, err := sink.Evaluate(Context{Value: 9})
	if !errors.Is(err, ErrEval) {
		t.Fatalf("Evaluate unbound error = %v, want ErrEval", err)
	}
	if got.Num() != 9 {
		t.Errorf("Evaluate unbound = %v, want raw 9", got.Num())
	}
}
