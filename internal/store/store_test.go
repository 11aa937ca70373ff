package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jwseo/fdtdlab/internal/config"
	"github.com/jwseo/fdtdlab/internal/experiment"
)

func testResult() *experiment.Result {
	return &experiment.Result{
		Time:   []float64{0.01, 0.02, 0.03},
		Labels: []string{"ez(0,0,0)", "ez(1,0,0)"},
		Series: [][]float64{
			{0.0, 0.5, 0.9},
			{0.0, 0.0, 0.1},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.DefaultConfig()
	metrics := map[string]float64{"energy": 1.5}

	runID, err := st.Save(cfg, 0.01, testResult(), metrics)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Mode != cfg.Mode {
		t.Errorf("expected mode %q, got %q", cfg.Mode, meta.Mode)
	}
	if meta.Metrics["energy"] != 1.5 {
		t.Errorf("expected energy 1.5, got %f", meta.Metrics["energy"])
	}

	times, series, labels, err := st.LoadProbes(runID)
	if err != nil {
		t.Fatalf("load probes failed: %v", err)
	}
	if len(times) != 3 {
		t.Errorf("expected 3 samples, got %d", len(times))
	}
	if len(series) != 2 || len(labels) != 2 {
		t.Errorf("expected 2 probe series, got %d series %d labels", len(series), len(labels))
	}
	if series[0][2] != 0.9 {
		t.Errorf("expected sample 0.9, got %f", series[0][2])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(config.DefaultConfig(), 0.01, testResult(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingBase(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestSavePlane(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(config.DefaultConfig(), 0.01, testResult(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	plane := [][]float64{{0, 1}, {2, 3}}
	if err := st.SavePlane(runID, "ez_z0", plane); err != nil {
		t.Fatalf("save plane failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(st.baseDir, runID, "ez_z0.csv"))
	if err != nil {
		t.Fatalf("read plane failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty snapshot file")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	cfg := config.DefaultConfig()

	if err := ExportJSON(path, cfg, 0.01, testResult(), map[string]float64{"peak_ez": 0.9}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Mode != cfg.Mode {
		t.Errorf("expected mode %q, got %q", cfg.Mode, got.Mode)
	}
	if got.Metrics["peak_ez"] != 0.9 {
		t.Errorf("expected peak 0.9, got %f", got.Metrics["peak_ez"])
	}
	if len(got.Series) != 2 {
		t.Errorf("expected 2 series, got %d", len(got.Series))
	}
}
