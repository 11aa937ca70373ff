package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jwseo/fdtdlab/internal/config"
	"github.com/jwseo/fdtdlab/internal/experiment"
)

type ExportData struct {
	Mode       string             `json:"mode"`
	Size       [3]float64         `json:"size"`
	Resolution float64            `json:"resolution"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Labels     []string           `json:"labels"`
	Series     [][]float64        `json:"series"`
	Metrics    map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, cfg *config.Config, dt float64, result *experiment.Result, metrics map[string]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, cfg, dt, result, metrics)
}

func ExportJSONStdout(cfg *config.Config, dt float64, result *experiment.Result, metrics map[string]float64) error {
	return exportJSON(os.Stdout, cfg, dt, result, metrics)
}

func exportJSON(w io.Writer, cfg *config.Config, dt float64, result *experiment.Result, metrics map[string]float64) error {
	data := ExportData{
		Mode:       cfg.Mode,
		Size:       cfg.Size,
		Resolution: cfg.Resolution,
		Dt:         dt,
		Steps:      cfg.Steps,
		Times:      result.Time,
		Labels:     result.Labels,
		Series:     result.Series,
		Metrics:    metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
