package viz

import "github.com/guptarohit/asciigraph"

// ProbePlot renders a probe series as a line graph. Long series are
// strided down to the requested width so the graph stays readable.
func ProbePlot(series []float64, width, height int, caption string) string {
	if len(series) < 2 || width < 8 || height < 2 {
		return ""
	}

	data := series
	if len(data) > width {
		stride := (len(data) + width - 1) / width
		sampled := make([]float64, 0, width)
		for i := 0; i < len(data); i += stride {
			sampled = append(sampled, data[i])
		}
		data = sampled
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
