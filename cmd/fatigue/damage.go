package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fatigue/damage"
	"github.com/katalvlaran/fatigue/rainflow"
	"github.com/spf13/cobra"
)

var (
	flagSNIntercept float64
	flagSNExponent  float64
	flagRefCycles   float64

	damageCmd = &cobra.Command{
		Use:   "damage",
		Short: "Accumulate Palmgren-Miner damage under a Basquin S-N curve",
		Args:  cobra.NoArgs,
		RunE:  runDamage,
	}
)

func init() {
	damageCmd.Flags().Float64Var(&flagSNIntercept, "sn-intercept", 0, "Basquin intercept C in N = C*S^-m (required)")
	damageCmd.Flags().Float64Var(&flagSNExponent, "sn-exponent", 0, "Basquin slope m (required)")
	damageCmd.Flags().Float64Var(&flagRefCycles, "ref-cycles", 0, "also report the equivalent range over this many cycles")
}

func runDamage(cmd *cobra.Command, _ []string) error {
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

	sn := damage.SNCurve{Intercept: flagSNIntercept, Exponent: flagSNExponent}
	d, err := damage.Miner(cycles, sn)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "cycles: %d records\nminer damage: %.6e\n", len(cycles), d)
	if d > 0 {
		fmt.Fprintf(os.Stdout, "repeats to failure: %.6g\n", 1/d)
	}

	if flagRefCycles > 0 {
		seq, err := damage.EquivalentRange(cycles, sn.Exponent, flagRefCycles)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "equivalent range over %g cycles: %.6g\n", flagRefCycles, seq)
	}

	return nil
}
