package spatial

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeReport(t *testing.T, dir, channel string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, ReportPrefix+channel+".bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSurveyDir(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "Prevalence", makeBuffer([]uint32{1}, [][]float32{{1}}))
	writeReport(t, dir, "Population", makeBuffer([]uint32{1}, [][]float32{{2}}))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	reports, err := SurveyDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if reports.Len() != 2 {
		t.Fatalf("found %d reports, want 2", reports.Len())
	}
	if name := ChannelName(reports.Paths[1]); name != "Prevalence" {
		t.Errorf("channel name = %q, want Prevalence", name)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	p1 := writeReport(t, dir, "A", makeBuffer([]uint32{1, 2}, [][]float32{{1, 2}}))
	p2 := writeReport(t, dir, "B", makeBuffer([]uint32{1, 2}, [][]float32{{3, 4}}))

	channels, err := LoadAll(context.Background(), []string{p1, p2}, Options{}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(channels) != 2 {
		t.Fatalf("loaded %d channels, want 2", len(channels))
	}
	if v, ok := channels["B"].Value(0, 2); !ok || v != 4 {
		t.Errorf("channel B value = %v, %v; want 4, true", v, ok)
	}
}

func TestLoadAllFailFast(t *testing.T) {
	dir := t.TempDir()
	good1 := writeReport(t, dir, "A", makeBuffer([]uint32{1}, [][]float32{{1}}))
	bad := writeReport(t, dir, "B", []byte{1, 2, 3})
	good2 := writeReport(t, dir, "C", makeBuffer([]uint32{1}, [][]float32{{2}}))

	channels, err := LoadAll(context.Background(), []string{good1, bad, good2}, Options{}, discardLogger())
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode from aggregate load, got %v", err)
	}
	if channels != nil {
		t.Error("partial success must not surface decoded channels")
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	_, err := LoadAll(context.Background(), []string{"/nonexistent/SpatialReport_X.bin"},
		Options{}, discardLogger())
	if err == nil {
		t.Fatal("expected an error for missing file")
	}
}
