package spatial

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ReportPrefix is the filename prefix that marks a file as a spatial
// channel report.
const ReportPrefix = "SpatialReport_"

// Reports is the set of spatial report files found in a simulation output
// directory.
type Reports struct {
	SourceDir string
	Paths     []string
}

// SurveyDir finds every SpatialReport_*.bin file directly inside dir.
func SurveyDir(dir string) (*Reports, error) {
	matches, err := filepath.Glob(filepath.Join(dir, ReportPrefix+"*.bin"))
	if err != nil {
		return nil, fmt.Errorf("spatial: surveying %s: %w", dir, err)
	}
	sort.Strings(matches)
	return &Reports{SourceDir: dir, Paths: matches}, nil
}

// Len returns the number of report files found.
func (r *Reports) Len() int { return len(r.Paths) }

func (r *Reports) String() string {
	if r.SourceDir == "" {
		return "(empty)"
	}
	return fmt.Sprintf("%s: %d spatial reports", r.SourceDir, len(r.Paths))
}

// ChannelName derives the channel name from a report file path:
// "out/SpatialReport_Prevalence.bin" -> "Prevalence".
func ChannelName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, ReportPrefix)
}
