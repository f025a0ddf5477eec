// Package spatial reads and writes the binary per-timestep-per-node channel
// format emitted as SpatialReport_* files.
//
// The wire layout is little-endian:
//
//	u32 nodeCount | u32 timestepCount | nodeCount×u32 nodeID |
//	timestepCount×(nodeCount×f32 value)
//
// The node order in the id block defines the implicit index used by every
// value block. Decoding is strict: a buffer whose length disagrees with its
// header fails with ErrDecode rather than reading out of bounds.
package spatial

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
)

// Domain errors for channel decode operations.
var (
	// ErrDecode indicates a malformed or truncated channel buffer.
	ErrDecode = errors.New("spatial: malformed channel binary")

	// ErrSparse indicates an operation that requires dense data was applied
	// to a zero-dropped binary.
	ErrSparse = errors.New("spatial: operation requires dense data (decoded without DropZeros)")
)

// DecodeError wraps ErrDecode with buffer context.
type DecodeError struct {
	Channel string
	Offset  int
	Reason  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("spatial: channel %q: %s at offset %d", e.Channel, e.Reason, e.Offset)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// Options control decoding.
type Options struct {
	// DropZeros omits zero values from the in-memory timestep records,
	// which shrinks sparse channels considerably. Zero-dropped binaries
	// cannot be re-encoded.
	DropZeros bool

	// ExcludedNodeIDs lists nodes whose values are kept in the timestep
	// records but ignored for the min/max statistics. Typically used for
	// outlier nodes such as an "elsewhere" migration node.
	ExcludedNodeIDs []uint32
}

// SpatialBinary is a decoded channel: a random-access per-timestep-per-node
// float series. It is populated once by Decode and immutable afterwards.
type SpatialBinary struct {
	ChannelName string
	NodeCount   int

	// ValueMin and ValueMax span every value read (excluded nodes aside).
	ValueMin float64
	ValueMax float64

	// Timesteps[t][nodeID] is the channel value for a node at timestep t.
	Timesteps []map[uint32]float64

	dropZeros bool
}

// Decode parses a complete channel buffer. The entire payload must be
// present; there is no streaming form.
func Decode(channelName string, data []byte, opts Options) (*SpatialBinary, error) {
	if len(data) < 8 {
		return nil, &DecodeError{Channel: channelName, Offset: len(data), Reason: "buffer shorter than header"}
	}
	nodeCount := binary.LittleEndian.Uint32(data[0:4])
	timestepCount := binary.LittleEndian.Uint32(data[4:8])

	need := 8 + uint64(nodeCount)*4 + uint64(timestepCount)*uint64(nodeCount)*4
	if uint64(len(data)) < need {
		return nil, &DecodeError{
			Channel: channelName,
			Offset:  len(data),
			Reason: fmt.Sprintf("header declares %d nodes × %d timesteps (%d bytes)",
				nodeCount, timestepCount, need),
		}
	}

	excluded := make(map[uint32]bool, len(opts.ExcludedNodeIDs))
	for _, id := range opts.ExcludedNodeIDs {
		excluded[id] = true
	}

	sb := &SpatialBinary{
		ChannelName: channelName,
		NodeCount:   int(nodeCount),
		ValueMin:    math.Inf(1),
		ValueMax:    math.Inf(-1),
		Timesteps:   make([]map[uint32]float64, 0, timestepCount),
		dropZeros:   opts.DropZeros,
	}

	offset := 8
	nodeIDs := make([]uint32, nodeCount)
	for i := range nodeIDs {
		nodeIDs[i] = binary.LittleEndian.Uint32(data[offset : offset+4])
		offset += 4
	}

	for t := uint32(0); t < timestepCount; t++ {
		entries := make(map[uint32]float64, nodeCount)
		for _, id := range nodeIDs {
			value := float64(math.Float32frombits(binary.LittleEndian.Uint32(data[offset : offset+4])))
			offset += 4
			if !excluded[id] {
				if value < sb.ValueMin {
					sb.ValueMin = value
				}
				if value > sb.ValueMax {
					sb.ValueMax = value
				}
			}
			if opts.DropZeros && value == 0 {
				continue
			}
			entries[id] = value
		}
		sb.Timesteps = append(sb.Timesteps, entries)
	}

	sb.ValueMin = conditionValue(sb.ValueMin)
	sb.ValueMax = conditionValue(sb.ValueMax)
	if sb.ValueMin > sb.ValueMax {
		// No values contributed to the statistics.
		sb.ValueMin, sb.ValueMax = 0, 0
	}
	return sb, nil
}

// conditionValue maps NaN and infinities, which a malformed simulation can
// emit, to finite stand-ins.
func conditionValue(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// Len returns the number of timesteps.
func (sb *SpatialBinary) Len() int { return len(sb.Timesteps) }

// Value returns the channel value for a node at a timestep. The second
// return is false when the timestep is out of range or the node has no
// recorded value.
func (sb *SpatialBinary) Value(timestep int, nodeID uint32) (float64, bool) {
	if timestep < 0 || timestep >= len(sb.Timesteps) {
		return 0, false
	}
	v, ok := sb.Timesteps[timestep][nodeID]
	if !ok && sb.dropZeros {
		// Zero values were elided at decode time, not missing.
		return 0, true
	}
	return v, ok
}

// ValueRange returns the global min/max across all nodes and timesteps.
func (sb *SpatialBinary) ValueRange() (min, max float64) {
	return sb.ValueMin, sb.ValueMax
}

func (sb *SpatialBinary) String() string {
	if len(sb.Timesteps) == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("%s: %d nodes, %d timesteps", sb.ChannelName, sb.NodeCount, len(sb.Timesteps))
}

// Encode serializes the binary back to the wire format. Zero-dropped
// binaries cannot be encoded because elided nodes are unrecoverable.
func (sb *SpatialBinary) Encode() ([]byte, error) {
	if sb.dropZeros {
		return nil, ErrSparse
	}
	if len(sb.Timesteps) == 0 {
		return nil, fmt.Errorf("spatial: channel %q has no timesteps", sb.ChannelName)
	}

	nodeIDs := make([]uint32, 0, len(sb.Timesteps[0]))
	for id := range sb.Timesteps[0] {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	out := make([]byte, 0, 8+4*len(nodeIDs)+4*len(nodeIDs)*len(sb.Timesteps))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(nodeIDs)))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(sb.Timesteps)))
	for _, id := range nodeIDs {
		out = binary.LittleEndian.AppendUint32(out, id)
	}
	for _, entries := range sb.Timesteps {
		for _, id := range nodeIDs {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(entries[id])))
		}
	}
	return out, nil
}
