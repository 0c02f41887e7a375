// Package plot renders the comparative LTP chart with go-chart.
package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/neudestifanoes/ltpsim/sim"
	"github.com/neudestifanoes/ltpsim/sim/trace"
)

// Fixed per-condition styles: Healthy solid blue, AD dashed red,
// AD + Treatment dotted green.
var conditionStyles = map[string]chart.Style{
	sim.ConditionHealthy: {
		StrokeColor: chart.ColorBlue,
		StrokeWidth: 2.5,
	},
	sim.ConditionAD: {
		StrokeColor:     chart.ColorRed,
		StrokeWidth:     2.5,
		StrokeDashArray: []float64{6.0, 4.0},
	},
	sim.ConditionADTreated: {
		StrokeColor:     chart.ColorGreen,
		StrokeWidth:     2.5,
		StrokeDashArray: []float64{2.0, 4.0},
	},
}

// defaultStyle covers conditions loaded from a presets file that are not one
// of the three built-ins.
var defaultStyle = chart.Style{
	StrokeColor: chart.ColorAlternateGray,
	StrokeWidth: 2.0,
}

// stimBandColor shades the tetanic stimulation window (translucent salmon).
var stimBandColor = drawing.Color{R: 250, G: 128, B: 114, A: 100}

// Comparative builds the chart: one series per trace plus a shaded vertical
// band over the stimulation window. yMax sets the top of the Y axis, normally
// the largest condition ceiling plus headroom.
func Comparative(traces []*trace.Trace, tetanusStart, tetanusEnd, yMax float64) chart.Chart {
	series := make([]chart.Series, 0, len(traces)+1)

	// The band draws first so the weight curves render on top of it. A
	// filled two-point series at yMax shades the full column over the window.
	series = append(series, chart.ContinuousSeries{
		Name:    "Tetanic Stimulation",
		XValues: []float64{tetanusStart, tetanusEnd},
		YValues: []float64{yMax, yMax},
		Style: chart.Style{
			StrokeColor: stimBandColor,
			StrokeWidth: 1.0,
			FillColor:   stimBandColor,
		},
	})

	for _, tr := range traces {
		style, ok := conditionStyles[tr.Condition]
		if !ok {
			style = defaultStyle
		}
		series = append(series, chart.ContinuousSeries{
			Name:    tr.Condition,
			XValues: tr.Times,
			YValues: tr.Weights,
			Style:   style,
		})
	}

	graph := chart.Chart{
		Title:  "Comparative Model of LTP Under Different Conditions",
		Width:  1200,
		Height: 800,
		XAxis: chart.XAxis{
			Name: "Time (s)",
		},
		YAxis: chart.YAxis{
			Name:  "Synaptic Weight (AU)",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// Render writes the chart to path. The format follows the file extension:
// .svg renders SVG, anything else PNG.
func Render(graph chart.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	provider := chart.PNG
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		provider = chart.SVG
	}
	if err := graph.Render(provider, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
