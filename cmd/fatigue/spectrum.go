package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fatigue/rainflow"
	"github.com/katalvlaran/fatigue/spectrum"
	"github.com/spf13/cobra"
)

var (
	flagRangeBins int
	flagMeanBins  int

	spectrumCmd = &cobra.Command{
		Use:   "spectrum",
		Short: "Print the range-mean rainflow matrix and exceedance spectrum",
		Args:  cobra.NoArgs,
		RunE:  runSpectrum,
	}
)

func init() {
	def := spectrum.DefaultOptions()
	spectrumCmd.Flags().IntVar(&flagRangeBins, "range-bins", def.RangeBins, "bins on the range axis")
	spectrumCmd.Flags().IntVar(&flagMeanBins, "mean-bins", def.MeanBins, "bins on the mean axis")
}

func runSpectrum(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	samples, err := readSamples(flagInput, flagColumn)
	if err != nil {
		return err
	}
	cycles, err := rainflow.Count(samples)
	if err != nil {
		return err
	}

	opts := spectrum.DefaultOptions()
	opts.RangeBins, opts.MeanBins = flagRangeBins, flagMeanBins
	x, err := spectrum.Matrix(cycles, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "rainflow matrix %dx%d, range [0,%.4g], mean [%.4g,%.4g], Σ=%g\n",
		x.RangeBins, x.MeanBins, x.RangeMax, x.MeanMin, x.MeanMax, x.Total())
	for r := x.RangeBins - 1; r >= 0; r-- {
		for m := 0; m < x.MeanBins; m++ {
			v, err := x.At(r, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%6.1f", v)
		}
		fmt.Fprintln(os.Stdout)
	}

	fmt.Fprintln(os.Stdout, "\nexceedance:")
	for _, lvl := range spectrum.Exceedance(cycles) {
		fmt.Fprintf(os.Stdout, "range >= %-10.6g %.1f cycles\n", lvl.Range, lvl.Cycles)
	}

	return nil
}
