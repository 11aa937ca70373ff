// Package store persists completed runs. Each run gets a directory
// under the base path holding metadata.json, the probe series as CSV
// and any field snapshots saved from it.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jwseo/fdtdlab/internal/config"
	"github.com/jwseo/fdtdlab/internal/experiment"
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

type RunMetadata struct {
	ID         string             `json:"id"`
	Mode       string             `json:"mode"`
	Timestamp  time.Time          `json:"timestamp"`
	Size       [3]float64         `json:"size"`
	Resolution float64            `json:"resolution"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, dt float64, result *experiment.Result, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Mode, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Mode:       cfg.Mode,
		Timestamp:  time.Now(),
		Size:       cfg.Size,
		Resolution: cfg.Resolution,
		Dt:         dt,
		Steps:      cfg.Steps,
		Metrics:    metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "probes.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, result.Labels...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Time {
		row := []string{strconv.FormatFloat(result.Time[i], 'g', -1, 64)}
		for _, series := range result.Series {
			v := 0.0
			if i < len(series) {
				v = series[i]
			}
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SavePlane writes a field cross-section as a CSV grid alongside the
// run's other artifacts.
func (s *Store) SavePlane(runID, name string, plane [][]float64) error {
	file, err := os.Create(filepath.Join(s.baseDir, runID, name+".csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	for _, row := range plane {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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

// LoadProbes reads a run's probe series back. The returned slices are
// the sample times, one series per probe and the probe labels.
func (s *Store) LoadProbes(runID string) ([]float64, [][]float64, []string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "probes.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("run %s has an empty probe file", runID)
	}

	labels := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	series := make([][]float64, len(labels))

	for _, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for i := range labels {
			v := 0.0
			if i+1 < len(record) {
				v, _ = strconv.ParseFloat(record[i+1], 64)
			}
			series[i] = append(series[i], v)
		}
	}

	return times, series, labels, nil
}
