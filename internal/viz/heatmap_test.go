package viz

import (
	"strings"
	"testing"
)

func TestHeatmapDimensions(t *testing.T) {
	plane := [][]float64{
		{0, 1, 0},
		{-1, 0, 1},
	}
	out := Heatmap(plane, 10, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 rows, got %d", len(lines))
	}
}

func TestHeatmapDownsamples(t *testing.T) {
	plane := make([][]float64, 40)
	for i := range plane {
		plane[i] = make([]float64, 40)
	}
	out := Heatmap(plane, 10, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > 10 {
		t.Errorf("expected at most 10 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) > 10 {
			t.Errorf("expected at most 10 columns, got %d", len([]rune(line)))
		}
	}
}

func TestHeatmapPeakShade(t *testing.T) {
	plane := [][]float64{{0, 5}}
	out := Heatmap(plane, 1, 2)
	if !strings.Contains(out, "@") {
		t.Errorf("expected peak shade in %q", out)
	}
	if !strings.Contains(out, " ") {
		t.Errorf("expected blank shade for zero in %q", out)
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if Heatmap(nil, 10, 10) != "" {
		t.Error("expected empty output for nil plane")
	}
	if Heatmap([][]float64{{1}}, 0, 10) != "" {
		t.Error("expected empty output for zero rows")
	}
}

func TestProbePlot(t *testing.T) {
	series := make([]float64, 300)
	for i := range series {
		series[i] = float64(i % 7)
	}
	out := ProbePlot(series, 40, 8, "probe")
	if out == "" {
		t.Fatal("expected rendered plot")
	}
	if !strings.Contains(out, "probe") {
		t.Error("expected caption in plot")
	}

	if ProbePlot([]float64{1}, 40, 8, "") != "" {
		t.Error("expected empty plot for short series")
	}
	if ProbePlot(series, 4, 8, "") != "" {
		t.Error("expected empty plot for tiny width")
	}
}
