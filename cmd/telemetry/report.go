package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-telemetry/dsp/filter/bank"
	timestats "github.com/cwbudde/algo-telemetry/stats/time"
)

// printStats writes mean, standard deviation and variance, optionally under a
// title line.
func printStats(w io.Writer, title string, s timestats.Stats) {
	if title != "" {
		fmt.Fprintf(w, "[%s]\n", title)
	}
	fmt.Fprintf(w, "Mean: %v\n", s.Mean)
	fmt.Fprintf(w, "Std: %v\n", s.StdDev)
	fmt.Fprintf(w, "var: %v\n", s.Variance)
}

func printBank(w io.Writer, b *bank.Bank) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tOrder\tDescription")
	fmt.Fprintln(tw, "--\t-----\t-----------")

	for _, e := range b.Entries() {
		order := "-"
		if !e.IsBypass() {
			order = fmt.Sprint(e.Order())
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.ID, order, e.Description)
	}

	tw.Flush()
}
