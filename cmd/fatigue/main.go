// Command fatigue runs rainflow cycle counting and the derived fatigue
// analyses over a numeric CSV column.
//
//	fatigue count    --input history.csv --column 0
//	fatigue spectrum --input history.csv --range-bins 8 --mean-bins 8
//	fatigue damage   --input history.csv --sn-intercept 1e12 --sn-exponent 3
//
// Results go to stdout; structured logs go to stderr. A YAML config file
// (--config) may preset any flag; explicit flags win.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	flagInput   string
	flagColumn  int
	flagConfig  string
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:           "fatigue",
		Short:         "Rainflow cycle counting and fatigue analysis for scalar load histories",
		Long:          `fatigue extracts load cycles from a stress/strain-versus-time history using the ASTM E1049-85 rainflow method, and derives load spectra and Miner damage estimates from them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: "15:04:05",
				}),
			))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "CSV file with the sample history (default: stdin)")
	rootCmd.PersistentFlags().IntVarP(&flagColumn, "column", "c", 0, "zero-based CSV column holding the samples")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config presetting flags")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(countCmd, spectrumCmd, damageCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatigue:", err)
		os.Exit(1)
	}
}
