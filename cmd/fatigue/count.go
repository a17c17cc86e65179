package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/fatigue/extrema"
	"github.com/katalvlaran/fatigue/rainflow"
	"github.com/spf13/cobra"
)

var (
	flagCSV bool

	countCmd = &cobra.Command{
		Use:   "count",
		Short: "Count rainflow cycles of the input history",
		Long:  `Reduces the sample history to its turning points, runs ASTM E1049-85 three-point rainflow counting and prints the resulting cycle table in discovery order.`,
		Args:  cobra.NoArgs,
		RunE:  runCount,
	}
)

func init() {
	countCmd.Flags().BoolVar(&flagCSV, "csv", false, "emit the cycle table as CSV instead of an aligned table")
}

func runCount(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	samples, err := readSamples(flagInput, flagColumn)
	if err != nil {
		return err
	}

	tp, err := extrema.Reduce(samples)
	if err != nil {
		return err
	}
	cycles, err := rainflow.CountExtrema(tp)
	if err != nil {
		return err
	}
	slog.Debug("cycles counted", "samples", len(samples), "turning_points", len(tp), "cycles", len(cycles))

	if flagCSV {
		fmt.Fprintln(os.Stdout, "count,range,mean")
		for _, c := range cycles {
			fmt.Fprintf(os.Stdout, "%g,%g,%g\n", c.Count, c.Range, c.Mean)
		}

		return nil
	}

	fmt.Fprintf(os.Stdout, "%8s %12s %12s\n", "count", "range", "mean")
	var total float64
	for _, c := range cycles {
		fmt.Fprintf(os.Stdout, "%8.1f %12.6g %12.6g\n", c.Count, c.Range, c.Mean)
		total += c.Count
	}
	fmt.Fprintf(os.Stdout, "\n%d samples → %d turning points → %d records, Σcount=%g\n",
		len(samples), len(tp), len(cycles), total)

	return nil
}
