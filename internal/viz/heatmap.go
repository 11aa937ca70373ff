package viz

import (
	"math"
	"strings"
)

var heatRamp = []rune(" .:-=+*#%@")

// Heatmap renders a field plane as shaded characters, at most maxRows
// by maxCols, downsampling by striding when the plane is larger. Shade
// tracks magnitude relative to the plane peak; color tracks sign.
func Heatmap(plane [][]float64, maxRows, maxCols int) string {
	if len(plane) == 0 || len(plane[0]) == 0 || maxRows < 1 || maxCols < 1 {
		return ""
	}

	rows, cols := len(plane), len(plane[0])
	strideR := (rows + maxRows - 1) / maxRows
	strideC := (cols + maxCols - 1) / maxCols

	peak := 0.0
	for _, row := range plane {
		for _, v := range row {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for i := 0; i < rows; i += strideR {
		for j := 0; j < cols; j += strideC {
			v := plane[i][j]
			level := int(math.Abs(v) / peak * float64(len(heatRamp)-1))
			if level >= len(heatRamp) {
				level = len(heatRamp) - 1
			}
			ch := string(heatRamp[level])
			switch {
			case level == 0:
				b.WriteString(ch)
			case v >= 0:
				b.WriteString(positiveStyle.Render(ch))
			default:
				b.WriteString(negativeStyle.Render(ch))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
