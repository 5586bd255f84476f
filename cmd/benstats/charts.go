package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// renderLabelChart writes an HTML bar chart of per-class sample counts.
func renderLabelChart(path, split string, names []string, counts []int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Label distribution",
			Subtitle: fmt.Sprintf("split: %s", split),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
	)

	data := make([]opts.BarData, len(counts))
	for i, n := range counts {
		data[i] = opts.BarData{Value: n}
	}
	bar.SetXAxis(names).AddSeries("samples", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	return bar.Render(f)
}

// renderBandHistogram writes a PNG histogram of the first band's pixel
// values.
func renderBandHistogram(path string, values []float64) error {
	p := plot.New()
	p.Title.Text = "Band 0 value distribution"
	p.X.Label.Text = "pixel value"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), 50)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}
