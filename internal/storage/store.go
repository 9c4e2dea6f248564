// Package storage persists simulation runs as a metadata.json plus a
// states.csv per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrRunExists   = errors.New("storage: run already exists")
	ErrInvalidName = errors.New("storage: invalid run name")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	Numerator   []float64          `json:"numerator"`
	Denominator []float64          `json:"denominator"`
	Input       string             `json:"input"`
	MaxTime     float64            `json:"max_time"`
	Steps       int                `json:"steps"`
	Dt          float64            `json:"dt"`
	Integrator  string             `json:"integrator"`
	StateDim    int                `json:"state_dim"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes the run under a fresh ID and returns it. ID and Timestamp
// on meta are filled in. A run that fails part way is removed.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (runID string, err error) {
	name, err := runName(meta.Name)
	if err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	runID = fmt.Sprintf("%s_%s", name, id.String())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}
	if err := os.Mkdir(runDir, 0755); err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%s: %w", runID, ErrRunExists)
		}
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
			runID = ""
		}
	}()

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Metrics = result.Metrics
	if len(result.States) > 0 {
		meta.StateDim = len(result.States[0])
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeStates(filepath.Join(runDir, statesFile), result); err != nil {
		return "", err
	}
	return runID, nil
}

// runName checks that a run name stays a single path element under the
// store directory. An empty name becomes "run".
func runName(name string) (string, error) {
	if name == "" {
		return "run", nil
	}
	if name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) ||
		filepath.Base(name) != name || filepath.IsAbs(name) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return name, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeStates(path string, result *sim.Result) error {
	if len(result.Times) != len(result.States) {
		return fmt.Errorf("storage: %d states but %d times", len(result.States), len(result.Times))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if len(result.States) > 0 {
		header := []string{"time"}
		for i := range result.States[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
		numInputs := 0
		if len(result.Inputs) > 0 {
			numInputs = len(result.Inputs[0])
		}
		for i := 0; i < numInputs; i++ {
			header = append(header, fmt.Sprintf("u%d", i))
		}
		if err := w.Write(header); err != nil {
			f.Close()
			return err
		}

		for k, x := range result.States {
			row := []string{formatFloat(result.Times[k])}
			for _, val := range x {
				row = append(row, formatFloat(val))
			}
			for j := 0; j < numInputs; j++ {
				val := 0.0
				if k < len(result.Inputs) && j < len(result.Inputs[k]) {
					val = result.Inputs[k][j]
				}
				row = append(row, formatFloat(val))
			}
			if err := w.Write(row); err != nil {
				f.Close()
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every readable run, newest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads back the state trajectory of a run. Input columns are
// dropped using the state dimension recorded in metadata.
func (s *Store) LoadStates(runID string) ([]linalg.Vector, []float64, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []linalg.Vector{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([]linalg.Vector, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: %w", statesFile, i+1, err)
		}

		n := meta.StateDim
		if n == 0 || n > len(record)-1 {
			n = len(record) - 1
		}
		state := make(linalg.Vector, n)
		for j := 0; j < n; j++ {
			state[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s line %d: %w", statesFile, i+1, err)
			}
		}
		times = append(times, t)
		states = append(states, state)
	}

	return states, times, nil
}
