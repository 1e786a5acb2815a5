package chart

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"sciview/pkg/dataset"
)

// ExportPNG writes the series as a scatter chart PNG. The title usually
// carries the source file name.
func ExportPNG(s dataset.Series, title, filename string) error {
	if len(s) == 0 {
		return fmt.Errorf("no data points to export")
	}

	xs := make([]float64, len(s))
	ys := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
		ys[i] = p.Y
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1200,
		Height: 800,
		XAxis: chart.XAxis{
			Name: "x",
		},
		YAxis: chart.YAxis{
			Name: "y",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: fmt.Sprintf("%d pts", len(s)),
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColor:    drawing.ColorFromHex("56b6c2"),
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
