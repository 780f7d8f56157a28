// Package chart plots benchmark samples as a scatter chart in a PNG file.
package chart

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/metailurini/mex/harness"
)

// Image size in points.
const (
	width  vg.Length = 640
	height vg.Length = 480
)

// ErrNoSamples is returned when there is nothing to plot.
var ErrNoSamples = errors.New("no samples to plot")

var pointColor = color.RGBA{R: 255, A: 255}

// FileName returns the image name for the index-th variant, e.g.
// chart_01_via_sort.png.
func FileName(index int, variant string) string {
	return fmt.Sprintf("chart_%02d_via_%s.png", index, variant)
}

// Render writes a scatter chart of samples to filename. The x axis is the
// list length and the y axis the duration in milliseconds. The image format
// follows the file extension.
func Render(filename, title string, samples []harness.Sample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Length of List"
	p.Y.Label.Text = "Milliseconds"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(points(samples))
	if err != nil {
		return errors.Wrap(err, "building scatter")
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(5)
	p.Add(scatter)

	if err := p.Save(width, height, filename); err != nil {
		return errors.Wrapf(err, "saving chart %s", filename)
	}
	return nil
}

func points(samples []harness.Sample) plotter.XYs {
	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X = float64(s.Size)
		xys[i].Y = float64(s.Duration.Microseconds()) / 1000
	}
	return xys
}
