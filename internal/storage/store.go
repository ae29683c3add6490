package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/neurodyn/internal/analysis"
)

// Store keeps saved evaluations (flow curves, transfer curves, sweeps)
// under a base directory, one subdirectory per evaluation with a
// metadata file and the sampled data as CSV.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type EvalMetadata struct {
	ID            string             `json:"id"`
	Kind          string             `json:"kind"`
	Model         string             `json:"model"`
	Timestamp     time.Time          `json:"timestamp"`
	Coupling      float64            `json:"coupling"`
	LocalCoupling float64            `json:"local_coupling"`
	Params        map[string]float64 `json:"params"`
	Samples       int                `json:"samples"`
}

// Save writes a curve evaluation and returns its id.
func (s *Store) Save(kind, model string, coupling, local float64, params map[string]float64, curve *analysis.Curve) (string, error) {
	id := fmt.Sprintf("%s_%s_%d", model, kind, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := EvalMetadata{
		ID:            id,
		Kind:          kind,
		Model:         model,
		Timestamp:     time.Now(),
		Coupling:      coupling,
		LocalCoupling: local,
		Params:        params,
		Samples:       len(curve.X),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "curve.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", err
	}
	for i := range curve.X {
		row := []string{
			strconv.FormatFloat(curve.X[i], 'g', -1, 64),
			strconv.FormatFloat(curve.Y[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return id, nil
}

func (s *Store) Load(id string) (*EvalMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta EvalMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadCurve(id string) (*analysis.Curve, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "curve.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("storage: %s has no samples", id)
	}

	curve := &analysis.Curve{
		X: make([]float64, 0, len(rows)-1),
		Y: make([]float64, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		curve.X = append(curve.X, x)
		curve.Y = append(curve.Y, y)
	}
	return curve, nil
}

func (s *Store) List() ([]EvalMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []EvalMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		metas = append(metas, *meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp.Before(metas[j].Timestamp)
	})
	return metas, nil
}
