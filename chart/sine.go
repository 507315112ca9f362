// Package chart renders demo plots to Base64-encoded PNG images.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	samples = 500
	xMax    = 10 * math.Pi
)

// SineWavePNG renders y = amplitude*sin(x) for x in [0, 10π] and returns the
// PNG as a Base64 string.
func SineWavePNG(amplitude float64) (string, error) {
	pts := make(plotter.XYs, samples)
	for i := range pts {
		x := xMax * float64(i) / float64(samples-1)
		pts[i].X = x
		pts[i].Y = amplitude * math.Sin(x)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sine Wave Plot: A = %.2f", amplitude)
	p.X.Label.Text = "X (radians)"
	p.Y.Label.Text = "Y (Amplitude)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("build line: %w", err)
	}
	line.Color = color.RGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Amplitude = %.2f", amplitude), line)
	p.Legend.Top = true

	// Keep small amplitudes readable on a fixed frame.
	limit := math.Max(5, math.Abs(amplitude)*1.2)
	p.Y.Min, p.Y.Max = -limit, limit

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return "", fmt.Errorf("render plot: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
