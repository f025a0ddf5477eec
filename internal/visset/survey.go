package visset

import (
	"fmt"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/binding"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/spatial"
)

// Survey builds the dataset's source registry: "none" first, then one
// static source per non-reserved node field using its precomputed range,
// then one dynamic source per shown channel using its decoded min/max.
// Key collisions between node fields and channel names are not expected
// and fail the survey.
func (vs *VisSet) Survey(channels map[string]*spatial.SpatialBinary) (*binding.Registry, error) {
	reg := binding.NewRegistry()

	for _, key := range vs.AttrKeys() {
		r := vs.NodeRanges[key]
		src := &binding.Source{
			Key:          key,
			FriendlyName: key,
			Kind:         binding.Static,
			Min:          r.Min,
			Max:          r.Max,
		}
		if err := reg.Add(src); err != nil {
			return nil, err
		}
	}

	for _, ch := range vs.Channels {
		if !ch.Shown {
			continue
		}
		name := spatial.ChannelName(ch.File)
		sb, ok := channels[name]
		if !ok {
			return nil, fmt.Errorf("visset: shown channel %q has no decoded data", name)
		}
		src := &binding.Source{
			Key:          name,
			FriendlyName: ch.FriendlyName,
			Kind:         binding.Dynamic,
			Data:         sb,
			Min:          sb.ValueMin,
			Max:          sb.ValueMax,
		}
		if err := reg.Add(src); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// FixUp walks every declared sink, defaults empty or dangling sources to
// "none" and empty function text to the identity transform, then builds
// and attaches the sink's binding. Compile and type errors are collected
// and returned as advisories; the affected sinks keep identity bindings
// and the set as a whole stays renderable.
func (vs *VisSet) FixUp(reg *binding.Registry) []error {
	for _, set := range vs.Options.sinkSets() {
		set.normalize()
	}

	var advisories []error
	vs.Options.EachSink(func(sink *binding.Sink) {
		src := reg.Resolve(sink.Source)
		sink.Source = src.Key
		if sink.Function == "" {
			sink.Function = binding.DefaultFunctionText
		}

		b := binding.New(src, sink.ReturnType)
		if err := b.SetFunction(sink.Function); err != nil {
			advisories = append(advisories, fmt.Errorf("sink %q: %w", sink.Key, err))
		}
		sink.Binding = b
	})
	return advisories
}
