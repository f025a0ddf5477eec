package visset

import (
	"sort"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/binding"
)

// SinkSet is a layer's bindable visual parameters, keyed by sink key.
type SinkSet map[string]*binding.Sink

// normalize copies map keys onto the sinks, which carry no key of their
// own in JSON.
func (s SinkSet) normalize() {
	for key, sink := range s {
		sink.Key = key
	}
}

// Keys returns the sink keys in sorted order.
func (s SinkSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// sorted returns the set's sinks in key order for deterministic walks.
func (s SinkSet) sorted() []*binding.Sink {
	keys := s.Keys()
	sinks := make([]*binding.Sink, len(keys))
	for i, key := range keys {
		sinks[i] = s[key]
	}
	return sinks
}

// Options is the full layer-option tree. Every layer type declares its
// sink collection statically; there is no generic tree search for sinks.
type Options struct {
	Points  *PointsOptions  `json:"pointsLayer,omitempty"`
	Shapes  *ShapesOptions  `json:"shapesLayer,omitempty"`
	Heatmap *HeatmapOptions `json:"heatmapLayer,omitempty"`
}

// PointsOptions renders nodes as markers. Selection is a nested
// sub-option block with sinks of its own.
type PointsOptions struct {
	Show      bool              `json:"show"`
	Sinks     SinkSet           `json:"sinks"`
	Selection *SelectionOptions `json:"selection,omitempty"`
}

// SelectionOptions styles the selected-node overlay.
type SelectionOptions struct {
	Sinks SinkSet `json:"sinks"`
}

// ShapesOptions renders nodes as extruded shapes.
type ShapesOptions struct {
	Show  bool    `json:"show"`
	Sinks SinkSet `json:"sinks"`
}

// HeatmapOptions renders a gradient-colored intensity surface.
type HeatmapOptions struct {
	Show         bool    `json:"show"`
	GradientSpec string  `json:"gradient,omitempty"`
	GradientLow  float64 `json:"gradientRangeLow,omitempty"`
	GradientHigh float64 `json:"gradientRangeHigh,omitempty"`
	Sinks        SinkSet `json:"sinks"`
}

// DefaultOptions declares the standard layers with their default sinks.
func DefaultOptions() Options {
	return Options{
		Points: &PointsOptions{
			Show: true,
			Sinks: SinkSet{
				"pointColor": {Key: "pointColor", Source: binding.NoneKey, ReturnType: binding.ReturnColor},
				"pointSize":  {Key: "pointSize", Source: binding.NoneKey, ReturnType: binding.ReturnNumber},
			},
			Selection: &SelectionOptions{
				Sinks: SinkSet{
					"outlineColor": {Key: "outlineColor", Source: binding.NoneKey, ReturnType: binding.ReturnColor},
				},
			},
		},
		Shapes: &ShapesOptions{
			Sinks: SinkSet{
				"shapeColor":   {Key: "shapeColor", Source: binding.NoneKey, ReturnType: binding.ReturnColor},
				"shapeExtrude": {Key: "shapeExtrude", Source: binding.NoneKey, ReturnType: binding.ReturnNumber},
			},
		},
		Heatmap: &HeatmapOptions{
			GradientSpec: "heat",
			Sinks: SinkSet{
				"source":  {Key: "source", Source: binding.NoneKey, ReturnType: binding.ReturnNumber},
				"opacity": {Key: "opacity", Source: binding.NoneKey, ReturnType: binding.ReturnNumber},
			},
		},
	}
}

// sinkSets enumerates every declared sink collection in the tree.
func (o *Options) sinkSets() []SinkSet {
	var sets []SinkSet
	if o.Points != nil {
		sets = append(sets, o.Points.Sinks)
		if o.Points.Selection != nil {
			sets = append(sets, o.Points.Selection.Sinks)
		}
	}
	if o.Shapes != nil {
		sets = append(sets, o.Shapes.Sinks)
	}
	if o.Heatmap != nil {
		sets = append(sets, o.Heatmap.Sinks)
	}
	return sets
}

// EachSink visits every declared sink in deterministic order.
func (o *Options) EachSink(visit func(*binding.Sink)) {
	for _, set := range o.sinkSets() {
		for _, sink := range set.sorted() {
			visit(sink)
		}
	}
}
