package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-telemetry/chart"
	"github.com/cwbudde/algo-telemetry/dsp/filter/bank"
	"github.com/cwbudde/algo-telemetry/dsp/spectrum"
	timestats "github.com/cwbudde/algo-telemetry/stats/time"
	"github.com/cwbudde/algo-telemetry/telemetry"
)

// defaultEnd is one past [telemetry.OpenEnd] so an omitted END selects the
// whole log.
const defaultEnd = telemetry.OpenEnd + 1

var errNoFile = errors.New("a file must be given")

// window is the positional FILE [BEGIN [END]] argument triple.
type window struct {
	path       string
	begin, end float64
}

func parseWindow(args []string) (window, error) {
	w := window{end: defaultEnd}
	if len(args) == 0 || args[0] == "" {
		return w, errNoFile
	}
	w.path = args[0]

	if len(args) > 1 {
		s := args[1]
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return w, fmt.Errorf("invalid begin time %q: %w", s, err)
		}
		w.begin = v
	}

	if len(args) > 2 {
		s := args[2]
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return w, fmt.Errorf("invalid end time %q: %w", s, err)
		}
		w.end = v
	}

	return w, nil
}

// zoom returns the x limits for a zoomed panel, clipping an open end to the
// last sample.
func (w window) zoom(s telemetry.Series) (lo, hi float64) {
	hi = w.end
	if hi >= telemetry.OpenEnd {
		hi = s.End()
	}

	return w.begin, hi
}

// start parses the positional arguments and loads the log. A nil log with a
// nil error means usage was printed instead.
func (r *runner) start(c *cli.Context) (*telemetry.Log, window, error) {
	w, err := parseWindow(c.Args().Slice())
	if errors.Is(err, errNoFile) {
		fmt.Fprintln(r.out, "A file must be given")
		return nil, w, cli.ShowSubcommandHelp(c)
	}
	if err != nil {
		return nil, w, cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(r.out, "Using file %s\n", w.path)
	r.log.Debug("loading log", "path", w.path, "begin", w.begin, "end", w.end)

	log, err := telemetry.LoadFile(w.path)
	if err != nil {
		return nil, w, cli.Exit(fmt.Sprintf("could not read %s: %v", w.path, err), 1)
	}
	if log.BadFields > 0 {
		r.log.Warn("unparsable fields read as 0", "path", w.path, "count", log.BadFields)
	}

	cur := log.Current
	seconds := 0.0
	if cur.Len() > 0 {
		seconds = floats.Max(cur.Time)
	}
	fmt.Fprintf(r.out, "Records: %d, %g seconds\n", cur.Len(), seconds)

	return log, w, nil
}

func (r *runner) save(c *cli.Context, panels []chart.Panel) error {
	path := c.String("output")
	if err := chart.Save(path, panels); err != nil {
		return cli.Exit(fmt.Sprintf("could not write chart: %v", err), 1)
	}
	r.log.Info("chart written", "path", path, "panels", len(panels))

	return nil
}

func (r *runner) show(c *cli.Context) error {
	log, w, err := r.start(c)
	if log == nil || err != nil {
		return err
	}

	cur := log.Current
	printStats(r.out, "", timestats.Calculate(cur.Values))

	lo, hi := w.zoom(cur)
	panels := []chart.Panel{
		{
			Title:  "Current",
			XLabel: "Time, s",
			YLabel: "Current, A",
			Lines:  []chart.Line{{Label: "current", X: cur.Time, Y: cur.Values}},
		},
		{
			Title:  fmt.Sprintf("Current, %g..%g s", lo, hi),
			XLabel: "Time, s",
			YLabel: "Current, A",
			Lines:  []chart.Line{{Label: "current", X: cur.Time, Y: cur.Values}},
			XMin:   lo,
			XMax:   hi,
		},
	}

	if temp := log.Temperature; temp.Len() > 0 {
		panels = append(panels, chart.Panel{
			Title:  "Temperature",
			XLabel: "Time, s",
			YLabel: "Temperature, C",
			Lines:  []chart.Line{{Label: "temperature", X: temp.Time, Y: temp.Values}},
		})
	}

	return r.save(c, panels)
}

func (r *runner) fft(c *cli.Context) error {
	log, w, err := r.start(c)
	if log == nil || err != nil {
		return err
	}

	part := log.Current.Slice(w.begin, w.end)
	printStats(r.out, "", timestats.Calculate(part.Values))

	sampleRate := c.Float64("frequency")
	sp, err := spectrum.Amplitude(part.Values, sampleRate)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not compute spectrum: %v", err), 1)
	}
	if f, a, ok := sp.Peak(); ok {
		r.log.Debug("spectrum peak", "freq", f, "amp", a, "fft_size", sp.FFTSize)
	}

	panels := []chart.Panel{
		{
			Title:  "Signal",
			XLabel: "Time, s",
			YLabel: "Current, A",
			Lines:  []chart.Line{{Label: "current", X: part.Time, Y: part.Values}},
		},
		{
			Title:  fmt.Sprintf("Amplitude spectrum, fs = %g Hz", sampleRate),
			XLabel: "Frequency, Hz",
			YLabel: "Amplitude",
			Stems:  &chart.Stems{X: sp.Freqs, Y: sp.Amps},
		},
	}

	return r.save(c, panels)
}

func (r *runner) filter(c *cli.Context) error {
	ids, err := parseIDs(c.String("filter"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	b, err := r.loadBank(c)
	if err != nil {
		return err
	}

	log, w, err := r.start(c)
	if log == nil || err != nil {
		return err
	}

	for _, id := range ids {
		e, ok := b.Select(id)
		if !ok {
			r.log.Warn("filter not found, running without a filter", "id", id)
			fmt.Fprintf(r.out, "Filter %d not found\n", id)
		}
		if e.ID == bank.BypassID {
			fmt.Fprintln(r.out, "Working without a filter")
			printBank(r.out, b)
		}
	}

	cur := log.Current
	results, err := bank.RunAll(b, ids, cur.Values)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not build filter: %v", err), 1)
	}

	lo, hi := w.zoom(cur)
	panels := []chart.Panel{{
		Title:  "Raw current",
		XLabel: "Time, s",
		YLabel: "Current, A",
		Lines:  []chart.Line{{Label: "raw", X: cur.Time, Y: cur.Values}},
	}}

	for _, res := range results {
		printStats(r.out, res.Entry.Description, timestats.Calculate(res.Output))
		panels = append(panels, chart.Panel{
			Title:  fmt.Sprintf("%d) %s", res.Entry.ID, res.Entry.Description),
			XLabel: "Time, s",
			YLabel: "Current, A",
			Lines:  []chart.Line{{Label: res.Entry.Description, X: cur.Time, Y: res.Output}},
			XMin:   lo,
			XMax:   hi,
		})
	}

	return r.save(c, panels)
}

func (r *runner) filters(c *cli.Context) error {
	b, err := r.loadBank(c)
	if err != nil {
		return err
	}

	printBank(r.out, b)

	return nil
}

func (r *runner) loadBank(c *cli.Context) (*bank.Bank, error) {
	path := c.String("bank")
	if path == "" {
		return bank.Default(), nil
	}

	b, err := bank.LoadFile(path)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("could not load filter bank: %v", err), 1)
	}
	r.log.Debug("filter bank loaded", "path", path, "filters", b.Len())

	return b, nil
}

// parseIDs splits a comma separated id list. Empty items are skipped.
func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid filter id %q", part)
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		ids = []int{bank.BypassID}
	}

	return ids, nil
}
