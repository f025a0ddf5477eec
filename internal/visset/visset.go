// Package visset holds the typed visualization-set description: the
// entity records, channel descriptors, and layer options a dataset
// exposes, plus the survey and fix-up passes that turn its declared
// sinks into live bindings.
package visset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Reserved positional fields of a node record. Everything else on a node
// is an arbitrary numeric attribute and becomes a static source.
const (
	fieldNodeID    = "nodeId"
	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
	fieldAltitude  = "altitude"
)

// Range is a precomputed [min,max] span for one node field.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Node is one entity record: identifier, position, and any number of
// extra numeric attributes.
type Node struct {
	ID     uint32
	Lat    float64
	Lon    float64
	Alt    float64
	HasAlt bool
	Attrs  map[string]float64
}

// EntityID implements binding.Entity.
func (n *Node) EntityID() uint32 { return n.ID }

// Attr implements binding.Entity over the node's extra attributes.
func (n *Node) Attr(name string) (float64, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// UnmarshalJSON splits the reserved positional fields from the open set
// of extra numeric attributes.
func (n *Node) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.Number)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, num := range raw {
		v, err := num.Float64()
		if err != nil {
			return fmt.Errorf("visset: node field %q: %w", key, err)
		}
		switch key {
		case fieldNodeID:
			n.ID = uint32(v)
		case fieldLatitude:
			n.Lat = v
		case fieldLongitude:
			n.Lon = v
		case fieldAltitude:
			n.Alt = v
			n.HasAlt = true
		default:
			if n.Attrs == nil {
				n.Attrs = make(map[string]float64)
			}
			n.Attrs[key] = v
		}
	}
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, len(n.Attrs)+4)
	out[fieldNodeID] = float64(n.ID)
	out[fieldLatitude] = n.Lat
	out[fieldLongitude] = n.Lon
	if n.HasAlt {
		out[fieldAltitude] = n.Alt
	}
	for key, v := range n.Attrs {
		out[key] = v
	}
	return json.Marshal(out)
}

// ChannelInfo describes one dynamic channel available to the dataset.
type ChannelInfo struct {
	FriendlyName string `json:"friendlyName"`
	File         string `json:"file"`
	Shown        bool   `json:"shown"`
}

// VisSet is the persisted dataset description.
type VisSet struct {
	Name          string           `json:"name,omitempty"`
	TimestepCount int              `json:"timestepCount"`
	Nodes         []*Node          `json:"nodes"`
	NodeRanges    map[string]Range `json:"nodeRanges"`
	Channels      []ChannelInfo    `json:"channels"`
	Options       Options          `json:"options"`
}

// New returns an empty VisSet with default layer options.
func New(name string) *VisSet {
	return &VisSet{
		Name:       name,
		NodeRanges: make(map[string]Range),
		Options:    DefaultOptions(),
	}
}

// ComputeRanges rebuilds NodeRanges from the node records. Reserved
// positional fields get ranges too; Survey skips them.
func (vs *VisSet) ComputeRanges() {
	ranges := make(map[string]Range)
	observe := func(key string, v float64) {
		r, seen := ranges[key]
		if !seen {
			ranges[key] = Range{Min: v, Max: v}
			return
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
		ranges[key] = r
	}
	for _, n := range vs.Nodes {
		observe(fieldLatitude, n.Lat)
		observe(fieldLongitude, n.Lon)
		if n.HasAlt {
			observe(fieldAltitude, n.Alt)
		}
		for key, v := range n.Attrs {
			observe(key, v)
		}
	}
	vs.NodeRanges = ranges
}

// AttrKeys returns the non-reserved node field names in sorted order.
func (vs *VisSet) AttrKeys() []string {
	keys := make([]string, 0, len(vs.NodeRanges))
	for key := range vs.NodeRanges {
		switch key {
		case fieldNodeID, fieldLatitude, fieldLongitude, fieldAltitude:
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Load reads a visset description from path.
func Load(path string) (*VisSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vs := New("")
	if err := json.Unmarshal(data, vs); err != nil {
		return nil, fmt.Errorf("visset: parse %s: %w", path, err)
	}
	if vs.NodeRanges == nil {
		vs.ComputeRanges()
	}
	return vs, nil
}

// Save writes the visset description to path.
func (vs *VisSet) Save(path string) error {
	data, err := json.MarshalIndent(vs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
