package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/univar/solve"
)

// Store persists solve runs as one directory per run: metadata.json with
// the outcome and trace.csv with the recorded iterates.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Problem       string    `json:"problem"`
	Method        string    `json:"method"`
	Timestamp     time.Time `json:"timestamp"`
	Tolerance     float64   `json:"tolerance"`
	MaxIterations int       `json:"max_iterations"`
	Status        string    `json:"status"`
	Estimate      float64   `json:"estimate"`
	Value         float64   `json:"value"`
	Iterations    int       `json:"iterations"`
}

func (s *Store) Save(problem, method string, pol solve.Policy, res solve.Result, trace *solve.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", problem, method, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Problem:       problem,
		Method:        method,
		Timestamp:     time.Now(),
		Tolerance:     pol.Tolerance,
		MaxIterations: pol.MaxIterations,
		Status:        res.Status.String(),
		Estimate:      res.Estimate,
		Value:         res.Value,
		Iterations:    res.Iterations,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"iter", "x", "fx", "width"}); err != nil {
		return "", err
	}
	if trace != nil {
		for _, st := range trace.Steps {
			row := []string{
				strconv.Itoa(st.Iter),
				strconv.FormatFloat(st.X, 'g', 17, 64),
				strconv.FormatFloat(st.FX, 'g', 17, 64),
				strconv.FormatFloat(st.Width, 'g', 17, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]solve.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	steps := make([]solve.Step, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}
		iter, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		fx, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		width, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		steps = append(steps, solve.Step{Iter: iter, X: x, FX: fx, Width: width})
	}

	return steps, nil
}

// ExportJSON writes a run's metadata and trace as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, steps []solve.Step) error {
	doc := struct {
		RunMetadata
		Trace []solve.Step `json:"trace"`
	}{RunMetadata: *meta, Trace: steps}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
