package visset

import (
	"errors"
	"fmt"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/binding"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
)

// FrameOptions parameterizes one frame evaluation.
type FrameOptions struct {
	Timestep int

	// Gradient state handed to sampling transforms. A zero Low/High
	// pair means the full [0,1] range.
	Gradient     *gradient.Gradient
	GradientLow  float64
	GradientHigh float64
}

// Frame holds the evaluated sink values for every node at one timestep,
// keyed by node id then sink key.
type Frame map[uint32]map[string]binding.Value

// EvaluateFrame evaluates a sink collection across all nodes at one
// timestep. Missing data abandons the frame immediately so later nodes
// cannot render from a half-populated source. Transform evaluation
// errors are non-fatal: the sink's fallback value is used, evaluation
// continues, and one advisory per failing sink is returned alongside
// the frame.
func (vs *VisSet) EvaluateFrame(sinks SinkSet, opts FrameOptions) (Frame, []error, error) {
	low, high := opts.GradientLow, opts.GradientHigh
	if low == 0 && high == 0 {
		high = 1
	}

	var advisories []error
	failed := make(map[string]bool)
	frame := make(Frame, len(vs.Nodes))
	for _, node := range vs.Nodes {
		values := make(map[string]binding.Value, len(sinks))
		for _, sink := range sinks.sorted() {
			if sink.Binding == nil {
				return nil, nil, fmt.Errorf("visset: sink %q evaluated before fix-up", sink.Key)
			}
			raw, err := sink.Binding.Datum(node, opts.Timestep)
			if errors.Is(err, binding.ErrMissingData) {
				return nil, nil, err
			}
			src := sink.Binding.Source()
			ctx := binding.Context{
				Value:         raw,
				Min:           src.Min,
				Max:           src.Max,
				Entity:        node,
				Timestep:      opts.Timestep,
				TimestepCount: vs.TimestepCount,
				Gradient:      opts.Gradient,
				GradientLow:   low,
				GradientHigh:  high,
			}
			v, err := sink.Evaluate(ctx)
			if err != nil && !failed[sink.Key] {
				failed[sink.Key] = true
				advisories = append(advisories, fmt.Errorf("sink %q: node %d: %w", sink.Key, node.ID, err))
			}
			values[sink.Key] = v
		}
		frame[node.ID] = values
	}
	return frame, advisories, nil
}
