package binding

import (
	"fmt"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/spatial"
)

// Kind classifies a data source.
type Kind int

const (
	// Static sources hold one value per entity, constant across time.
	Static Kind = iota
	// Dynamic sources hold one value per entity per timestep.
	Dynamic
)

func (k Kind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "static"
}

// NoneKey is the reserved key of the always-present empty source.
const NoneKey = "none"

// Source is a named, typed data feed that sinks bind against.
type Source struct {
	Key          string
	FriendlyName string
	Kind         Kind

	// Data is the decoded channel for dynamic sources, nil otherwise.
	Data *spatial.SpatialBinary

	// Min and Max span all entities and timesteps. Consumers must guard
	// the Min == Max case when normalizing.
	Min, Max float64
}

// NoneSource returns the reserved "none" source. Its max is deliberately
// non-zero so that downstream normalization stays division-safe.
func NoneSource() *Source {
	return &Source{Key: NoneKey, FriendlyName: "None", Kind: Static, Min: 0, Max: 1}
}

// Registry is an ordered catalog of the sources available to a dataset.
// It is explicitly constructed per dataset; there is no ambient global
// registry. The "none" source is always present and always first.
type Registry struct {
	order   []string
	sources map[string]*Source
}

// NewRegistry builds a registry holding only the "none" source.
func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]*Source)}
	none := NoneSource()
	r.order = append(r.order, none.Key)
	r.sources[none.Key] = none
	return r
}

// Add registers a source. Key collisions are a caller bug.
func (r *Registry) Add(s *Source) error {
	if _, exists := r.sources[s.Key]; exists {
		return fmt.Errorf("binding: duplicate source key %q", s.Key)
	}
	r.order = append(r.order, s.Key)
	r.sources[s.Key] = s
	return nil
}

// Get looks a source up by key.
func (r *Registry) Get(key string) (*Source, bool) {
	s, ok := r.sources[key]
	return s, ok
}

// Resolve returns the source for key, or the "none" source when key is
// empty or dangling.
func (r *Registry) Resolve(key string) *Source {
	if s, ok := r.sources[key]; ok {
		return s
	}
	return r.sources[NoneKey]
}

// None returns the reserved empty source.
func (r *Registry) None() *Source { return r.sources[NoneKey] }

// Keys returns every source key in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of registered sources, "none" included.
func (r *Registry) Len() int { return len(r.order) }
