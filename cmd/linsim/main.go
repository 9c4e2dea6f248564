package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/linsim/internal/config"
	"github.com/san-kum/linsim/internal/signal"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	runName    string
	numCoeffs  []float64
	denCoeffs  []float64
	initState  []float64
	inputKind  string
	amplitude  float64
	frequency  float64
	delay      float64
	maxTime    float64
	steps      int
	bound      float64
	noSave     bool
	showPlot   bool
	dividend   []float64
	divisor    []float64
	outputPath string
	plotHeight int
	plotWidth  int
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	rootCmd := &cobra.Command{
		Use:           "linsim",
		Short:         "transfer function realization and linear system simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".linsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	realizeCmd := &cobra.Command{
		Use:   "realize",
		Short: "print the companion-form state-space realization of num/den",
		RunE:  realizeTF,
	}
	realizeCmd.Flags().Float64SliceVar(&numCoeffs, "num", []float64{1}, "numerator coefficients, ascending powers")
	realizeCmd.Flags().Float64SliceVar(&denCoeffs, "den", nil, "denominator coefficients, ascending powers")
	_ = realizeCmd.MarkFlagRequired("den")

	divideCmd := &cobra.Command{
		Use:   "divide",
		Short: "polynomial long division p / d",
		RunE:  dividePoly,
	}
	divideCmd.Flags().Float64SliceVar(&dividend, "p", nil, "dividend coefficients, ascending powers")
	divideCmd.Flags().Float64SliceVar(&divisor, "d", nil, "divisor coefficients, ascending powers")
	_ = divideCmd.MarkFlagRequired("p")
	_ = divideCmd.MarkFlagRequired("d")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a transfer function and store the run",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the output after the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate and replay the trajectory in the terminal",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "chart height")
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "chart width")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "render run states to an image (png, svg, pdf by extension)",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path (default <run_id>.png)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(realizeCmd, divideCmd, runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportPNGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&runName, "name", "", "run name")
	cmd.Flags().Float64SliceVar(&numCoeffs, "num", nil, "numerator coefficients, ascending powers")
	cmd.Flags().Float64SliceVar(&denCoeffs, "den", nil, "denominator coefficients, ascending powers")
	cmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state (default zeros)")
	cmd.Flags().StringVar(&inputKind, "input", config.DefaultInput, fmt.Sprintf("input signal %v", signal.Kinds()))
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1, "input amplitude (slope for ramp, area for impulse)")
	cmd.Flags().Float64Var(&frequency, "freq", 1, "sine frequency in Hz")
	cmd.Flags().Float64Var(&delay, "delay", 0, "input start time")
	cmd.Flags().Float64Var(&maxTime, "time", config.DefaultMaxTime, "simulation horizon")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of samples")
	cmd.Flags().Float64Var(&bound, "bound", config.DefaultBound, "state norm counted as divergence")
}

// resolveConfig layers defaults, preset, config file and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		logger.Debug("preset loaded", "preset", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("config loaded", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Name = runName
	}
	if flags.Changed("num") {
		cfg.Numerator = numCoeffs
	}
	if flags.Changed("den") {
		cfg.Denominator = denCoeffs
		if !flags.Changed("name") && preset == "" && configFile == "" {
			cfg.Name = "custom"
		}
	}
	if flags.Changed("x0") {
		cfg.InitialState = initState
	}
	if flags.Changed("input") {
		cfg.Input.Kind = inputKind
	}
	if flags.Changed("amplitude") {
		cfg.Input.Amplitude = amplitude
	}
	if flags.Changed("freq") {
		cfg.Input.Frequency = frequency
	}
	if flags.Changed("delay") {
		cfg.Input.Delay = delay
	}
	if flags.Changed("time") {
		cfg.MaxTime = maxTime
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("bound") {
		cfg.Bound = bound
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
