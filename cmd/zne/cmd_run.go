package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quno/zne"
	"github.com/quno/zne/circuit"
	"github.com/quno/zne/encoding"
)

var runFlags struct {
	trials     int
	scales     []float64
	noise      float64
	seed       int64
	outPath    string
	cborPath   string
	configPath string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark and write per-depth expectation values",
	Long: `Run the zero-noise extrapolation benchmark.

Each trial extends the benchmark circuit by one random identity block, so
trial k evaluates a circuit of depth 4(k+1). The output is one CSV row per
trial: circuit depth, the raw expectation value at every scale factor, and
the Richardson-extrapolated zero-noise value.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runFlags.trials, "trials", 75, "Number of trials")
	f.Float64SliceVar(&runFlags.scales, "scales", []float64{1, 2, 3, 4}, "Noise scale factors")
	f.Float64Var(&runFlags.noise, "noise", 0.01, "Per-gate depolarizing probability")
	f.Int64Var(&runFlags.seed, "seed", 0, "Random seed for circuit generation (0 = time-based)")
	f.StringVarP(&runFlags.outPath, "output", "o", "-", "CSV output path (- for stdout)")
	f.StringVar(&runFlags.cborPath, "cbor", "", "Also write the result as CBOR to this path")
	f.StringVar(&runFlags.configPath, "config", "", "YAML config file; explicit flags take precedence")
}

// runConfig mirrors the run flags for YAML configuration files.
type runConfig struct {
	Trials       int       `yaml:"trials"`
	ScaleFactors []float64 `yaml:"scale_factors"`
	Noise        *float64  `yaml:"noise"`
	Seed         int64     `yaml:"seed"`
}

func runRun(cmd *cobra.Command, args []string) error {
	if runFlags.configPath != "" {
		if err := applyConfig(cmd, runFlags.configPath); err != nil {
			return err
		}
	}

	opts := []zne.Option{
		zne.WithTrials(runFlags.trials),
		zne.WithScaleFactors(runFlags.scales...),
		zne.WithNoise(runFlags.noise),
	}
	if runFlags.seed != 0 {
		opts = append(opts, zne.WithSource(circuit.NewPseudoSource(runFlags.seed)))
	}
	exp, err := zne.New(opts...)
	if err != nil {
		return err
	}
	res, err := exp.Run()
	if err != nil {
		return err
	}

	if runFlags.cborPath != "" {
		if err := encoding.Write(runFlags.cborPath, res); err != nil {
			return fmt.Errorf("write cbor result: %w", err)
		}
	}

	var w io.Writer = cmd.OutOrStdout()
	if runFlags.outPath != "" && runFlags.outPath != "-" {
		f, err := os.Create(runFlags.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return writeCSV(w, res)
}

func applyConfig(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	f := cmd.Flags()
	if cfg.Trials > 0 && !f.Changed("trials") {
		runFlags.trials = cfg.Trials
	}
	if len(cfg.ScaleFactors) > 0 && !f.Changed("scales") {
		runFlags.scales = cfg.ScaleFactors
	}
	if cfg.Noise != nil && !f.Changed("noise") {
		runFlags.noise = *cfg.Noise
	}
	if cfg.Seed != 0 && !f.Changed("seed") {
		runFlags.seed = cfg.Seed
	}
	return nil
}

// writeCSV emits one row per trial: depth, raw expectation per scale factor,
// zero-noise extrapolation. This is the hand-off format for plotting.
func writeCSV(w io.Writer, res *zne.Result) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(res.ScaleFactors)+2)
	header = append(header, "depth")
	for _, s := range res.ScaleFactors {
		header = append(header, "scale_"+strconv.FormatFloat(s, 'g', -1, 64))
	}
	header = append(header, "zero_noise")
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for k, depth := range res.Depths {
		row[0] = strconv.Itoa(depth)
		for i := range res.ScaleFactors {
			row[i+1] = strconv.FormatFloat(res.PerScale[i][k], 'g', -1, 64)
		}
		row[len(row)-1] = strconv.FormatFloat(res.ZeroNoise[k], 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
