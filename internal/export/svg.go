package export

import (
	"fmt"
	"strings"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
)

// GradientToSVG renders a horizontal legend strip for a gradient. The
// strip is sampled column by column so quantized bands come out with
// hard edges.
func GradientToSVG(g *gradient.Gradient, width, height int) string {
	if g == nil || width < 2 || height < 1 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, height, width, height))

	// Merge adjacent columns of the same color into one rect.
	runStart := 0
	runColor := g.Sample(0).Hex()
	emit := func(from, to int, hex string) {
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="0" width="%d" height="%d" fill="%s"/>
`, from, to-from, height, hex))
	}
	for x := 1; x < width; x++ {
		hex := g.Sample(float64(x) / float64(width-1)).Hex()
		if hex != runColor {
			emit(runStart, x, runColor)
			runStart = x
			runColor = hex
		}
	}
	emit(runStart, width, runColor)

	// Tick marks at the stop locations.
	for _, stop := range g.Stops() {
		x := stop.Location * float64(width-1)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#ffffff" stroke-width="0.5" opacity="0.6"/>
`, x, x, height/4))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
