package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/binding"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/visset"
)

func frameFixture() (*visset.VisSet, []string, visset.Frame) {
	vs := visset.New("export-test")
	vs.Nodes = []*visset.Node{
		{ID: 10, Lat: 1.5, Lon: 30},
		{ID: 20, Lat: 2.5, Lon: 31},
	}
	keys := []string{"pointColor", "pointSize"}
	frame := visset.Frame{
		10: {"pointSize": binding.Number(4), "pointColor": binding.String("red")},
		20: {"pointSize": binding.Number(8), "pointColor": binding.String("green")},
	}
	return vs, keys, frame
}

func TestFrameCSV(t *testing.T) {
	vs, keys, frame := frameFixture()
	var buf bytes.Buffer
	if err := FrameCSV(&buf, vs, keys, 3, frame); err != nil {
		t.Fatalf("FrameCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}
	wantHeader := []string{"nodeId", "latitude", "longitude", "pointColor", "pointSize"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "10" || records[1][4] != "4" {
		t.Errorf("row = %v", records[1])
	}
	if records[2][3] != "green" {
		t.Errorf("row = %v", records[2])
	}
}

func TestFrameJSON(t *testing.T) {
	vs, keys, frame := frameFixture()
	var buf bytes.Buffer
	if err := FrameJSON(&buf, vs, keys, 3, frame); err != nil {
		t.Fatalf("FrameJSON: %v", err)
	}

	var data FrameData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Name != "export-test" || data.Timestep != 3 {
		t.Errorf("header = %q/%d", data.Name, data.Timestep)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(data.Rows))
	}
	if data.Rows[0].NodeID != 10 || data.Rows[0].Values["pointSize"] != "4" {
		t.Errorf("row = %+v", data.Rows[0])
	}
}

func TestGradientToSVG(t *testing.T) {
	g, err := gradient.Parse("black@0,white@1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	svg := GradientToSVG(g, 200, 20)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete SVG document")
	}
	if !strings.Contains(svg, "<rect") {
		t.Error("no color rects emitted")
	}
	if strings.Count(svg, "<line") != 2 {
		t.Errorf("stop ticks = %d, want 2", strings.Count(svg, "<line"))
	}

	if GradientToSVG(nil, 200, 20) != "" {
		t.Error("nil gradient should render nothing")
	}
}

func TestGradientToSVGQuantized(t *testing.T) {
	g, err := gradient.Parse("black@0,white@1,q4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	svg := GradientToSVG(g, 200, 20)
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("quantized rects = %d, want 4", got)
	}
}
