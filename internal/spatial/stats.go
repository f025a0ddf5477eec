package spatial

import "math"

// Stats is a streaming accumulator over channel values.
type Stats struct {
	name    string
	samples int
	sum     float64
	sumSq   float64
	min     float64
	max     float64
}

func NewStats(name string) *Stats {
	return &Stats{name: name, min: math.Inf(1), max: math.Inf(-1)}
}

func (s *Stats) Name() string { return s.name }

func (s *Stats) Observe(v float64) {
	s.sum += v
	s.sumSq += v * v
	if v < s.min {
		s.min = v
	}
	if v > s.max {
		s.max = v
	}
	s.samples++
}

func (s *Stats) Count() int { return s.samples }

func (s *Stats) Mean() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *Stats) StdDev() float64 {
	if s.samples == 0 {
		return 0
	}
	mean := s.Mean()
	variance := s.sumSq/float64(s.samples) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

func (s *Stats) Min() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.min
}

func (s *Stats) Max() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.max
}

func (s *Stats) Reset() {
	s.sum = 0
	s.sumSq = 0
	s.min = math.Inf(1)
	s.max = math.Inf(-1)
	s.samples = 0
}

// ChannelStats accumulates every stored value of a channel.
func ChannelStats(sb *SpatialBinary) *Stats {
	s := NewStats(sb.ChannelName)
	for _, nodes := range sb.Timesteps {
		for _, v := range nodes {
			s.Observe(v)
		}
	}
	return s
}
