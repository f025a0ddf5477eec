package spatial

import (
	"fmt"
	"math"
)

// CombineFunc merges one value from each of two channels.
type CombineFunc func(a, b float64) float64

// Built-in arithmetic combiners. For non-commutative operations the first
// argument comes from the first channel.
var Combiners = map[string]CombineFunc{
	"add":      func(a, b float64) float64 { return a + b },
	"subtract": func(a, b float64) float64 { return a - b },
	"multiply": func(a, b float64) float64 { return a * b },
	"divide":   func(a, b float64) float64 { return a / b },
}

// Combine merges two channels of identical shape value-by-value into a new
// channel named channelName, recomputing min/max as it goes.
func Combine(a, b *SpatialBinary, channelName string, fn CombineFunc) (*SpatialBinary, error) {
	if a.dropZeros || b.dropZeros {
		return nil, ErrSparse
	}
	if a.NodeCount != b.NodeCount {
		return nil, fmt.Errorf("spatial: combine inputs have %d and %d nodes", a.NodeCount, b.NodeCount)
	}
	if len(a.Timesteps) != len(b.Timesteps) {
		return nil, fmt.Errorf("spatial: combine inputs have %d and %d timesteps",
			len(a.Timesteps), len(b.Timesteps))
	}

	out := &SpatialBinary{
		ChannelName: channelName,
		NodeCount:   a.NodeCount,
		ValueMin:    math.Inf(1),
		ValueMax:    math.Inf(-1),
		Timesteps:   make([]map[uint32]float64, len(a.Timesteps)),
	}
	for t := range a.Timesteps {
		entries := make(map[uint32]float64, len(a.Timesteps[t]))
		for id, av := range a.Timesteps[t] {
			bv, ok := b.Timesteps[t][id]
			if !ok {
				return nil, fmt.Errorf("spatial: combine inputs disagree on node %d at timestep %d", id, t)
			}
			v := fn(av, bv)
			if v < out.ValueMin {
				out.ValueMin = v
			}
			if v > out.ValueMax {
				out.ValueMax = v
			}
			entries[id] = v
		}
		out.Timesteps[t] = entries
	}
	out.ValueMin = conditionValue(out.ValueMin)
	out.ValueMax = conditionValue(out.ValueMax)
	if out.ValueMin > out.ValueMax {
		out.ValueMin, out.ValueMax = 0, 0
	}
	return out, nil
}
