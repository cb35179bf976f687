// Command telemetry inspects current and temperature logs recorded by the
// bench supply.
//
// Usage:
//
//	telemetry show    [-o IMAGE] FILE [BEGIN [END]]
//	telemetry fft     [-f HZ] [-o IMAGE] FILE [BEGIN [END]]
//	telemetry filter  [-f IDS] [--bank JSON] [-o IMAGE] FILE [BEGIN [END]]
//	telemetry filters [--bank JSON]
//
// BEGIN and END are times in seconds. show and filter draw the whole log and
// zoom the lower panels to [BEGIN, END); fft analyzes only that range.
//
// Examples:
//
//	telemetry show log.csv 10 20
//	telemetry fft -f 1000 log.csv
//	telemetry filter -f 1,3 log.csv 5 6
//	telemetry filters --bank lab.json
package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	r := newRunner(os.Stdout, os.Stderr)
	os.Exit(r.exitCode(newApp(r).Run(os.Args)))
}

// runner carries the output streams and logger shared by all commands.
type runner struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

func newRunner(out, errOut io.Writer) *runner {
	return &runner{
		out:    out,
		errOut: errOut,
		log:    slog.New(slog.NewTextHandler(errOut, nil)),
	}
}

// exitCode logs a failed run through the app's logger and returns the
// process exit status.
func (r *runner) exitCode(err error) int {
	if err == nil {
		return 0
	}

	r.log.Error("telemetry failed", "err", err)

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return 1
}

func newApp(r *runner) *cli.App {
	return &cli.App{
		Name:      "telemetry",
		Usage:     "plot, filter and analyze current/temperature logs",
		Version:   "1.0.0",
		Writer:    r.out,
		ErrWriter: r.errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log debug messages",
				EnvVars: []string{"TELEMETRY_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			r.log = slog.New(slog.NewTextHandler(r.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
		// Exit codes are handled by main so that tests can run the app.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "print statistics and plot the log with a zoomed panel",
				ArgsUsage: "FILE [BEGIN [END]]",
				Flags:     []cli.Flag{outputFlag("show.png")},
				Action:    r.show,
			},
			{
				Name:      "fft",
				Usage:     "print statistics and plot the amplitude spectrum of a time range",
				ArgsUsage: "FILE [BEGIN [END]]",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:    "frequency",
						Aliases: []string{"f"},
						Usage:   "sampling frequency, Hz",
						Value:   1000,
						EnvVars: []string{"TELEMETRY_SAMPLE_RATE"},
					},
					outputFlag("fft.png"),
				},
				Action: r.fft,
			},
			{
				Name:      "filter",
				Usage:     "run the current through one or more bank filters and plot each result",
				ArgsUsage: "FILE [BEGIN [END]]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "comma separated filter ids, 0 lists the bank",
						Value:   "0",
					},
					bankFlag(),
					outputFlag("filter.png"),
				},
				Action: r.filter,
			},
			{
				Name:   "filters",
				Usage:  "list the filter bank",
				Flags:  []cli.Flag{bankFlag()},
				Action: r.filters,
			},
		},
	}
}

func outputFlag(def string) cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "image file to write (.png, .jpg, .tif)",
		Value:   def,
		EnvVars: []string{"TELEMETRY_OUTPUT"},
	}
}

func bankFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "bank",
		Usage:   "JSON filter bank; the built-in bank is used when empty",
		EnvVars: []string{"TELEMETRY_BANK"},
	}
}
