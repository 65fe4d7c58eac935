package logoclean

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const tickevery = 32

// histSeries creates a series from the bin counts of one channel's
// histogram
func histSeries(name string, bins []int, c drawing.Color) chart.ContinuousSeries {
	var xvalues, yvalues []float64
	for i, n := range bins {
		xvalues = append(xvalues, float64(i))
		yvalues = append(yvalues, float64(n))
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph draws the red, green and blue level histograms of img, with
// a dashed marker at threshold, and writes the chart to w as a PNG.
// A logo on a solid canvas shows up as a tall spike near one end of
// the histogram, which makes it easy to see where a wipe threshold
// should sit.
func Graph(img image.Image, title string, threshold int, w io.Writer) error {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return errors.New("empty image")
	}

	hist := histogram.NewRGBAHistogram(img)
	max := hist.R.Max()
	if m := hist.G.Max(); m > max {
		max = m
	}
	if m := hist.B.Max(); m > max {
		max = m
	}
	top := float64(max) * 1.05

	marker := chart.ContinuousSeries{
		XValues: []float64{float64(threshold), float64(threshold)},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     chart.ColorAlternateGray,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}

	var ticks []chart.Tick
	for i := 0; i < 256; i += tickevery {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
	}
	ticks = append(ticks, chart.Tick{Value: 255, Label: "255"})

	graph := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name: "Level",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: top,
			},
		},
		Series: []chart.Series{
			histSeries("Red", hist.R.Bins, chart.ColorRed),
			histSeries("Green", hist.G.Bins, chart.ColorGreen),
			histSeries("Blue", hist.B.Bins, chart.ColorBlue),
			marker,
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{Label: fmt.Sprintf("threshold %d", threshold), XValue: float64(threshold), YValue: top},
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
