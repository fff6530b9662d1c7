package report

import (
	"fmt"
	"strconv"

	"github.com/fogleman/gg"
)

// Point is one session's position on a scatter plot.
type Point struct {
	X float64
	Y float64
}

// PlotOptions controls scatter plot rendering.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

const (
	marginLeft   = 70.0
	marginRight  = 25.0
	marginTop    = 45.0
	marginBottom = 55.0
	tickCount    = 5
	pointRadius  = 4.0
)

// ScatterPlot renders the points onto a titled, axis-labelled canvas and
// saves it as a PNG. The canvas is created, written, and released within
// this call.
func ScatterPlot(points []Point, opts PlotOptions, path string) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom

	xMin, xMax := valueRange(points, func(p Point) float64 { return p.X })
	yMin, yMax := valueRange(points, func(p Point) float64 { return p.Y })

	toCanvas := func(p Point) (float64, float64) {
		cx := marginLeft + (p.X-xMin)/(xMax-xMin)*plotW
		cy := float64(height) - marginBottom - (p.Y-yMin)/(yMax-yMin)*plotH
		return cx, cy
	}

	dc.SetRGB(0, 0, 0)

	// Title and axis labels.
	dc.DrawStringAnchored(opts.Title, float64(width)/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(opts.XLabel, marginLeft+plotW/2, float64(height)-15, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 18, marginTop+plotH/2)
	dc.DrawStringAnchored(opts.YLabel, 18, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// Axes.
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, float64(height)-marginBottom)
	dc.DrawLine(marginLeft, float64(height)-marginBottom, float64(width)-marginRight, float64(height)-marginBottom)
	dc.Stroke()

	// Ticks with numeric labels.
	dc.SetLineWidth(1)
	for i := 0; i <= tickCount; i++ {
		frac := float64(i) / tickCount

		xv := xMin + frac*(xMax-xMin)
		cx := marginLeft + frac*plotW
		baseY := float64(height) - marginBottom
		dc.DrawLine(cx, baseY, cx, baseY+5)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(xv), cx, baseY+14, 0.5, 0.5)

		yv := yMin + frac*(yMax-yMin)
		cy := baseY - frac*plotH
		dc.DrawLine(marginLeft-5, cy, marginLeft, cy)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(yv), marginLeft-10, cy, 1, 0.5)
	}

	// Points.
	dc.SetRGB(0.1, 0.3, 0.7)
	for _, p := range points {
		cx, cy := toCanvas(p)
		dc.DrawCircle(cx, cy, pointRadius)
		dc.Fill()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// valueRange returns a padded, never-degenerate axis range for the values.
func valueRange(points []Point, get func(Point) float64) (min, max float64) {
	if len(points) == 0 {
		return 0, 1
	}
	min, max = get(points[0]), get(points[0])
	for _, p := range points[1:] {
		v := get(p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	pad := (max - min) * 0.08
	if pad == 0 {
		pad = 1
	}
	return min - pad, max + pad
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
