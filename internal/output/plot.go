package output

import (
	"fmt"
	"image/color"

	"github.com/EpicenterPrograms/codonoptimizer/internal/optimize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot saves a bar chart of the preference weight of each codon in the result.
// The image format follows filename's extension (.png, .svg, .pdf)
func Plot(filename string, r optimize.Result) error {
	if len(r.Weights) == 0 {
		return fmt.Errorf("failed to plot %s: result has no codons", filename)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Codon preference (score %.1f, GC %.1f%%)", r.Score, r.GC)
	p.X.Label.Text = "Codon"
	p.Y.Label.Text = "Preference weight"
	p.Y.Min, p.Y.Max = 0, 1

	bars, err := plotter.NewBarChart(plotter.Values(r.Weights), vg.Points(4))
	if err != nil {
		return fmt.Errorf("failed to plot %s: %w", filename, err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	p.Add(bars)

	width := vg.Points(float64(len(r.Weights))*5 + 80)
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	if err := p.Save(width, 3*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", filename, err)
	}
	return nil
}
