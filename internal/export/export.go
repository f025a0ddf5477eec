// Package export writes evaluated frames and gradient legends to
// interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/visset"
)

type FrameData struct {
	Name     string     `json:"name,omitempty"`
	Timestep int        `json:"timestep"`
	Sinks    []string   `json:"sinks"`
	Rows     []FrameRow `json:"rows"`
}

type FrameRow struct {
	NodeID uint32            `json:"nodeId"`
	Lat    float64           `json:"latitude"`
	Lon    float64           `json:"longitude"`
	Values map[string]string `json:"values"`
}

// frameData flattens one evaluated frame in node-record order.
func frameData(vs *visset.VisSet, sinkKeys []string, timestep int, frame visset.Frame) FrameData {
	data := FrameData{
		Name:     vs.Name,
		Timestep: timestep,
		Sinks:    sinkKeys,
		Rows:     make([]FrameRow, 0, len(vs.Nodes)),
	}
	for _, node := range vs.Nodes {
		values, ok := frame[node.ID]
		if !ok {
			continue
		}
		row := FrameRow{
			NodeID: node.ID,
			Lat:    node.Lat,
			Lon:    node.Lon,
			Values: make(map[string]string, len(sinkKeys)),
		}
		for _, key := range sinkKeys {
			row.Values[key] = values[key].String()
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// FrameJSON writes one evaluated frame as indented JSON.
func FrameJSON(w io.Writer, vs *visset.VisSet, sinkKeys []string, timestep int, frame visset.Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(frameData(vs, sinkKeys, timestep, frame))
}

// FrameCSV writes one evaluated frame as CSV, one row per node with a
// column per sink.
func FrameCSV(w io.Writer, vs *visset.VisSet, sinkKeys []string, timestep int, frame visset.Frame) error {
	data := frameData(vs, sinkKeys, timestep, frame)

	cw := csv.NewWriter(w)
	header := append([]string{"nodeId", "latitude", "longitude"}, sinkKeys...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range data.Rows {
		record := []string{
			fmt.Sprintf("%d", row.NodeID),
			fmt.Sprintf("%g", row.Lat),
			fmt.Sprintf("%g", row.Lon),
		}
		for _, key := range sinkKeys {
			record = append(record, row.Values[key])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
