package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	// ErrNoPanels reports a render request without panels.
	ErrNoPanels = errors.New("chart: no panels")

	// ErrFormat reports an unsupported image format.
	ErrFormat = errors.New("chart: unsupported image format")

	// ErrLength reports X and Y slices of different length.
	ErrLength = errors.New("chart: x and y lengths differ")
)

// palette cycles through line colors within a panel.
var palette = []color.Color{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Seagreen,
	colornames.Firebrick,
	colornames.Darkmagenta,
	colornames.Darkcyan,
}

// Line is one labelled trace.
type Line struct {
	Label string
	X, Y  []float64
}

// Stems is a stem plot, used for amplitude spectra.
type Stems struct {
	Label string
	X, Y  []float64
}

// Panel is one plot in a stacked chart. A zero XMin/XMax pair autoscales the
// x axis.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
	Stems  *Stems

	XMin, XMax float64
}

type config struct {
	width, height vg.Length
	panelHeight   vg.Length
}

func defaultConfig() config {
	return config{
		width:       10 * vg.Inch,
		height:      6 * vg.Inch,
		panelHeight: 3 * vg.Inch,
	}
}

// Option configures rendering.
type Option func(*config)

// WithSize sets the total image size. Non-positive values are ignored.
func WithSize(width, height vg.Length) Option {
	return func(cfg *config) {
		if width > 0 {
			cfg.width = width
		}
		if height > 0 {
			cfg.height = height
			cfg.panelHeight = 0
		}
	}
}

// Save renders panels stacked vertically and writes the image to path. The
// extension selects the format: .png, .jpg/.jpeg or .tif/.tiff.
func Save(path string, panels []Panel, opts ...Option) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, err := encoder(format, nil); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	if err := Render(f, format, panels, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Render draws panels stacked vertically and encodes the image to w in the
// given format ("png", "jpg", "jpeg", "tif", "tiff").
func Render(w io.Writer, format string, panels []Panel, opts ...Option) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}

	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	// Keep panels readable when many filters are stacked.
	height := cfg.height
	if cfg.panelHeight > 0 {
		height = max(height, vg.Length(len(panels))*cfg.panelHeight)
	}

	plots := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		pl, err := p.build()
		if err != nil {
			return fmt.Errorf("chart: panel %d: %w", i, err)
		}
		plots[i] = []*plot.Plot{pl}
	}

	img := vgimg.New(cfg.width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(12),
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	enc, err := encoder(format, img)
	if err != nil {
		return err
	}

	if _, err := enc.WriteTo(w); err != nil {
		return fmt.Errorf("chart: encode %s: %w", format, err)
	}

	return nil
}

func encoder(format string, img *vgimg.Canvas) (io.WriterTo, error) {
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: img}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: img}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: img}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

func (p Panel) build() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel
	pl.Legend.Top = true
	pl.Add(plotter.NewGrid())

	for i, l := range p.Lines {
		pts, err := points(l.X, l.Y)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Label, err)
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Label, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)

		pl.Add(line)
		if l.Label != "" {
			pl.Legend.Add(l.Label, line)
		}
	}

	if p.Stems != nil {
		if err := addStems(pl, *p.Stems); err != nil {
			return nil, err
		}
	}

	if p.XMin != 0 || p.XMax != 0 {
		pl.X.Min = p.XMin
		pl.X.Max = p.XMax
	}

	return pl, nil
}

// addStems draws each (x, y) as a vertical segment from the baseline with a
// marker on top.
func addStems(pl *plot.Plot, s Stems) error {
	pts, err := points(s.X, s.Y)
	if err != nil {
		return fmt.Errorf("stems %q: %w", s.Label, err)
	}

	// One polyline visiting baseline, head, baseline for every stem.
	path := make(plotter.XYs, 0, 3*len(pts))
	for _, pt := range pts {
		path = append(path,
			plotter.XY{X: pt.X, Y: 0},
			plotter.XY{X: pt.X, Y: pt.Y},
			plotter.XY{X: pt.X, Y: 0},
		)
	}

	line, err := plotter.NewLine(path)
	if err != nil {
		return fmt.Errorf("stems %q: %w", s.Label, err)
	}
	line.Color = palette[0]
	line.Width = vg.Points(0.75)

	heads, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("stems %q: %w", s.Label, err)
	}
	heads.GlyphStyle.Color = palette[0]
	heads.GlyphStyle.Shape = draw.CircleGlyph{}
	heads.GlyphStyle.Radius = vg.Points(1.5)

	pl.Add(line, heads)
	if s.Label != "" {
		pl.Legend.Add(s.Label, line, heads)
	}

	return nil
}

// points converts x/y slices to plotter.XYs, dropping non-finite pairs.
func points(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w (%d != %d)", ErrLength, len(x), len(y))
	}

	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}

	return pts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
