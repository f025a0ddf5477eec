package spatial

import (
	"math"
	"testing"
)

func TestStatsAccumulation(t *testing.T) {
	s := NewStats("Prevalence")

	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Observe(v)
	}

	if s.Count() != 8 {
		t.Errorf("expected 8 samples, got %d", s.Count())
	}
	if math.Abs(s.Mean()-5) > 1e-9 {
		t.Errorf("expected mean 5, got %f", s.Mean())
	}
	if math.Abs(s.StdDev()-2) > 1e-9 {
		t.Errorf("expected stddev 2, got %f", s.StdDev())
	}
	if s.Min() != 2 || s.Max() != 9 {
		t.Errorf("expected range [2,9], got [%f,%f]", s.Min(), s.Max())
	}
}

func TestStatsReset(t *testing.T) {
	s := NewStats("x")

	s.Observe(3.5)
	if s.Mean() == 0 {
		t.Error("expected non-zero mean")
	}

	s.Reset()
	if s.Count() != 0 || s.Mean() != 0 || s.Min() != 0 || s.Max() != 0 {
		t.Error("expected zeroed stats after reset")
	}
}

func TestChannelStats(t *testing.T) {
	sb := &SpatialBinary{
		ChannelName: "Prevalence",
		NodeCount:   2,
		Timesteps: []map[uint32]float64{
			{10: 1, 20: 2},
			{10: 3, 20: 4},
		},
	}

	s := ChannelStats(sb)
	if s.Name() != "Prevalence" {
		t.Errorf("expected channel name, got %s", s.Name())
	}
	if s.Count() != 4 {
		t.Errorf("expected 4 samples, got %d", s.Count())
	}
	if math.Abs(s.Mean()-2.5) > 1e-9 {
		t.Errorf("expected mean 2.5, got %f", s.Mean())
	}
}
