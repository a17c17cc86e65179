package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config mirrors the CLI flags; a YAML file presets them and any flag set
// explicitly on the command line wins over the file.
type config struct {
	Input       string  `yaml:"input"`
	Column      int     `yaml:"column"`
	RangeBins   int     `yaml:"range_bins"`
	MeanBins    int     `yaml:"mean_bins"`
	SNIntercept float64 `yaml:"sn_intercept"`
	SNExponent  float64 `yaml:"sn_exponent"`
	RefCycles   float64 `yaml:"ref_cycles"`
}

// loadConfig parses the YAML file at path. An empty path yields a zero config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// applyConfig overlays file values onto flags the user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg config) {
	if cfg.Input != "" && !cmd.Flags().Changed("input") {
		flagInput = cfg.Input
	}
	if !cmd.Flags().Changed("column") && cfg.Column > 0 {
		flagColumn = cfg.Column
	}
	if cfg.RangeBins > 0 && !cmd.Flags().Changed("range-bins") {
		flagRangeBins = cfg.RangeBins
	}
	if cfg.MeanBins > 0 && !cmd.Flags().Changed("mean-bins") {
		flagMeanBins = cfg.MeanBins
	}
	if cfg.SNIntercept > 0 && !cmd.Flags().Changed("sn-intercept") {
		flagSNIntercept = cfg.SNIntercept
	}
	if cfg.SNExponent > 0 && !cmd.Flags().Changed("sn-exponent") {
		flagSNExponent = cfg.SNExponent
	}
	if cfg.RefCycles > 0 && !cmd.Flags().Changed("ref-cycles") {
		flagRefCycles = cfg.RefCycles
	}
}
