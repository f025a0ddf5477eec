// Package gradient implements sampleable color gradients built from an
// ordered list of color stops on a normalized [0,1] range.
//
// Gradients are described by a compact text spec:
//
//	<stop>[,<stop>]*[,q<N>][,r]
//	stop = (<svg color name>|#rrggbb[aa])@<location 0..1>
//
// The first token may instead name a preset ("heat", "rainbow", ...), with
// the same trailing modifiers. q<N> quantizes the gradient into N constant
// bands; r reverses the stop order.
package gradient

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultResolution is the precomputed sample table size.
const DefaultResolution = 1000

// Stop is a single color at a normalized location.
type Stop struct {
	Color    Color
	Location float64
}

// Gradient is an ordered set of color stops with a sampling policy.
// The stop list is sorted ascending by location; the first stop is always at
// 0 and the last at 1.
type Gradient struct {
	stops    []Stop
	steps    int // 0 = continuous, >=2 = quantized band count
	reversed bool
	table    []Color // optional precomputed samples, nil until Precompute
}

// presets are canonical gradient specs addressable by name.
var presets = map[string]string{
	"grayscale": "black@0,white@1",
	"bluered":   "blue@0,red@1",
	"heat":      "black@0,red@0.33,yellow@0.66,white@1",
	"rainbow":   "blue@0,cyan@0.25,lime@0.5,yellow@0.75,red@1",
	"terrain":   "darkgreen@0,yellowgreen@0.3,khaki@0.55,saddlebrown@0.8,white@1",
	"viridis":   "#440154@0,#3b528b@0.25,#21918c@0.5,#5ec962@0.75,#fde725@1",
}

// Default returns the fallback black-to-white continuous gradient.
func Default() *Gradient {
	return &Gradient{stops: []Stop{
		{Color: RGB(0, 0, 0), Location: 0},
		{Color: RGB(1, 1, 1), Location: 1},
	}}
}

// Parse builds a Gradient from a text spec or preset name. Any malformed
// token is a hard error; callers that need a safe default use Default.
func Parse(spec string) (*Gradient, error) {
	tokens := strings.Split(spec, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	g := &Gradient{}
	if !strings.Contains(tokens[0], "@") {
		preset, ok := presets[strings.ToLower(tokens[0])]
		if !ok {
			return nil, fmt.Errorf("gradient: unknown preset %q", tokens[0])
		}
		base, err := Parse(preset)
		if err != nil {
			return nil, err
		}
		g.stops = base.stops
		tokens = tokens[1:]
	}

	inModifiers := len(g.stops) > 0
	reverse := false
	for _, tok := range tokens {
		switch {
		case strings.Contains(tok, "@"):
			if inModifiers {
				return nil, fmt.Errorf("gradient: stop %q after modifier", tok)
			}
			stop, err := parseStop(tok)
			if err != nil {
				return nil, err
			}
			if n := len(g.stops); n > 0 && stop.Location < g.stops[n-1].Location {
				return nil, fmt.Errorf("gradient: stop locations must be non-decreasing at %q", tok)
			}
			g.stops = append(g.stops, stop)
		case tok == "r":
			inModifiers = true
			reverse = true
		case strings.HasPrefix(tok, "q"):
			inModifiers = true
			n, err := strconv.Atoi(tok[1:])
			if err != nil || n < 2 {
				return nil, fmt.Errorf("gradient: bad quantize modifier %q", tok)
			}
			g.steps = n
		default:
			return nil, fmt.Errorf("gradient: unrecognized token %q", tok)
		}
	}

	if len(g.stops) < 2 {
		return nil, fmt.Errorf("gradient: at least two stops required")
	}
	g.stops[0].Location = 0
	g.stops[len(g.stops)-1].Location = 1
	if reverse {
		g.Reverse()
	}
	return g, nil
}

func parseStop(tok string) (Stop, error) {
	parts := strings.Split(tok, "@")
	if len(parts) != 2 {
		return Stop{}, fmt.Errorf("gradient: stop %q needs a color and a location", tok)
	}
	color, err := ParseColor(parts[0])
	if err != nil {
		return Stop{}, err
	}
	loc, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Stop{}, fmt.Errorf("gradient: bad stop location %q", parts[1])
	}
	if loc < 0 || loc > 1 {
		return Stop{}, fmt.Errorf("gradient: stop location %v out of range", loc)
	}
	return Stop{Color: color, Location: loc}, nil
}

// Stops returns the stop list. Callers must not mutate it.
func (g *Gradient) Stops() []Stop { return g.stops }

// Steps returns the quantization band count, 0 for continuous.
func (g *Gradient) Steps() int { return g.steps }

// Reversed reports whether the stop order has been flipped relative to the
// gradient's canonical source form.
func (g *Gradient) Reversed() bool { return g.reversed }

// SetSteps changes the quantization policy. n must be 0 (continuous) or >= 2.
func (g *Gradient) SetSteps(n int) error {
	if n == 1 || n < 0 {
		return fmt.Errorf("gradient: step count %d invalid", n)
	}
	g.steps = n
	if g.table != nil {
		g.Precompute(len(g.table))
	}
	return nil
}

// Reverse mirrors every stop location about 0.5 and restores ascending
// order. Reversing twice restores the original gradient.
func (g *Gradient) Reverse() {
	for i := range g.stops {
		g.stops[i].Location = 1 - g.stops[i].Location
	}
	for i, j := 0, len(g.stops)-1; i < j; i, j = i+1, j-1 {
		g.stops[i], g.stops[j] = g.stops[j], g.stops[i]
	}
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].Location < g.stops[j].Location
	})
	g.reversed = !g.reversed
	if g.table != nil {
		g.Precompute(len(g.table))
	}
}

// Precompute builds a fixed-resolution sample table so Sample becomes an
// array lookup. resolution <= 0 selects DefaultResolution.
func (g *Gradient) Precompute(resolution int) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	table := make([]Color, resolution)
	g.table = nil // sample directly while building
	for i := range table {
		table[i] = g.Sample(float64(i) / float64(resolution-1))
	}
	g.table = table
}

// Sample returns the gradient color at a normalized location. Out-of-range
// locations are clamped.
func (g *Gradient) Sample(loc float64) Color {
	loc = clamp(loc, 0, 1)
	if g.table != nil {
		i := int(loc*float64(len(g.table)-1) + 0.5)
		return g.table[i]
	}
	if g.steps >= 2 {
		// The epsilon keeps an exact band edge inside its own band when the
		// division that produced loc rounded down.
		band := int(math.Floor(loc*float64(g.steps) + 1e-9))
		if band >= g.steps {
			band = g.steps - 1
		}
		return g.sampleContinuous(float64(band) / float64(g.steps-1))
	}
	return g.sampleContinuous(loc)
}

func (g *Gradient) sampleContinuous(loc float64) Color {
	high := 0
	for _, stop := range g.stops {
		if stop.Location > loc {
			break
		}
		high++
	}
	if high <= 0 || high >= len(g.stops) {
		high = len(g.stops) - 1
	}
	lo, hi := g.stops[high-1], g.stops[high]
	span := hi.Location - lo.Location
	if span <= 0 {
		return hi.Color
	}
	return lo.Color.Lerp(hi.Color, (loc-lo.Location)/span)
}

// String re-emits a spec string sufficient to recreate the gradient. The
// stops are emitted in canonical (non-reversed) form with a trailing ",r"
// when the gradient is reversed.
func (g *Gradient) String() string {
	stops := g.stops
	if g.reversed {
		stops = mirrorStops(stops)
	}
	var sb strings.Builder
	for i, stop := range stops {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(stop.Color.Hex())
		sb.WriteByte('@')
		sb.WriteString(strconv.FormatFloat(stop.Location, 'g', -1, 64))
	}
	if g.steps >= 2 {
		fmt.Fprintf(&sb, ",q%d", g.steps)
	}
	if g.reversed {
		sb.WriteString(",r")
	}
	return sb.String()
}

func mirrorStops(stops []Stop) []Stop {
	out := make([]Stop, len(stops))
	for i, stop := range stops {
		out[len(stops)-1-i] = Stop{Color: stop.Color, Location: 1 - stop.Location}
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
