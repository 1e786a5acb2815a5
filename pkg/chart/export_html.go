package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sciview/pkg/dataset"
)

// ExportHTML writes the series as an interactive HTML scatter chart with
// zoom and save-as-image tooling enabled.
func ExportHTML(s dataset.Series, title, filename string) error {
	if len(s) == 0 {
		return fmt.Errorf("no data points to export")
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d data points", len(s)),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "y",
			Type: "value",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Title: "Save as Image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:  opts.Bool(true),
					Title: map[string]string{"zoom": "Zoom", "back": "Back"},
				},
			},
		}),
	)

	points := make([]opts.ScatterData, len(s))
	for i, p := range s {
		points[i] = opts.ScatterData{
			Value:      []interface{}{p.X, p.Y},
			SymbolSize: 5,
		}
	}
	scatter.AddSeries("data", points)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
