package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/neurodyn/internal/analysis"
)

type ExportData struct {
	Meta EvalMetadata `json:"meta"`
	X    []float64    `json:"x"`
	Y    []float64    `json:"y"`
}

// ExportJSON writes a stored evaluation, metadata and samples, as
// indented JSON.
func ExportJSON(w io.Writer, meta *EvalMetadata, curve *analysis.Curve) error {
	data := ExportData{
		Meta: *meta,
		X:    curve.X,
		Y:    curve.Y,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
