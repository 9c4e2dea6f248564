package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/san-kum/linsim/internal/analysis"
	"github.com/san-kum/linsim/internal/config"
	"github.com/san-kum/linsim/internal/experiment"
	"github.com/san-kum/linsim/internal/export"
	"github.com/san-kum/linsim/internal/format"
	"github.com/san-kum/linsim/internal/poly"
	"github.com/san-kum/linsim/internal/statespace"
	"github.com/san-kum/linsim/internal/storage"
	"github.com/san-kum/linsim/internal/tf"
	"github.com/san-kum/linsim/internal/viz"
	"github.com/spf13/cobra"
)

const integratorName = "euler"

func realizeTF(cmd *cobra.Command, args []string) error {
	g := tf.New(numCoeffs, denCoeffs)
	model, err := statespace.Realize(g)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header("transfer function"))
	fmt.Println(format.TransferFunction(g, "s"))
	fmt.Println()
	if gain, err := g.DCGain(); err == nil {
		fmt.Println(viz.Field("DC gain", format.Float(gain)))
	} else {
		fmt.Println(viz.Field("DC gain", "unbounded (pole at s = 0)"))
	}
	fmt.Println(viz.Field("order", fmt.Sprint(model.Order())))
	fmt.Println()

	for _, m := range []struct {
		name string
		mat  string
	}{
		{"A", format.Matrix(model.A)},
		{"B", format.Matrix(model.B)},
		{"C", format.Matrix(model.C)},
		{"D", format.Matrix(model.D)},
	} {
		fmt.Println(viz.Header(m.name))
		fmt.Println(m.mat)
	}
	return nil
}

func dividePoly(cmd *cobra.Command, args []string) error {
	p, d := poly.New(dividend...), poly.New(divisor...)
	q, r, err := poly.Divide(p, d)
	if err != nil {
		return err
	}

	fmt.Println(viz.Field("dividend", format.Poly(p, "s")))
	fmt.Println(viz.Field("divisor", format.Poly(d, "s")))
	fmt.Println(viz.Field("quotient", format.Poly(q, "s")))
	fmt.Println(viz.Field("remainder", format.Poly(r, "s")))
	return nil
}

func simulate(cmd *cobra.Command) (*config.Config, *experiment.Experiment, *experiment.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	registry := experiment.NewRegistry()
	integ, err := registry.GetIntegrator(integratorName)
	if err != nil {
		return nil, nil, nil, err
	}

	expCfg := experiment.FromConfig(cfg)
	exp := experiment.New(expCfg)
	if err := exp.Setup(integ, registry.DefaultMetrics(expCfg.MetricOptions())); err != nil {
		return nil, nil, nil, err
	}

	logger.Info("simulating", "name", cfg.Name, "order", exp.Model().Order(),
		"max_time", cfg.MaxTime, "steps", cfg.Steps, "input", cfg.Input.Kind)

	res, err := exp.Run()
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("simulation done", "samples", len(res.States), "dt", res.Dt)
	return cfg, exp, res, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, exp, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header(cfg.Name))
	fmt.Println(format.TransferFunction(exp.TransferFunction(), "s"))
	fmt.Println()
	fmt.Println(viz.Field("samples", fmt.Sprint(len(res.States))))
	fmt.Println(viz.Field("dt", format.Float(res.Dt)))
	fmt.Println(viz.Field("final x", format.Vector(res.Final())))
	fmt.Println(viz.Field("final y", format.Float(res.Outputs[len(res.Outputs)-1][0])))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range experiment.NewRegistry().ListMetrics() {
		fmt.Fprintf(w, "%s\t%.6g\n", name, res.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.Input.Kind == "step" {
		if info, err := analysis.Step(res.Times, res.Output(0)); err == nil {
			fmt.Println()
			fmt.Println(viz.Header("step response"))
			fmt.Println(viz.Field("final", fmt.Sprintf("%.6g", info.Final)))
			fmt.Println(viz.Field("peak", fmt.Sprintf("%.6g at %.4gs", info.Peak, info.PeakTime)))
			fmt.Println(viz.Field("overshoot", fmt.Sprintf("%.2f%%", info.Overshoot)))
			fmt.Println(viz.Field("rise", fmt.Sprintf("%.4gs", info.RiseTime)))
			fmt.Println(viz.Field("settling", fmt.Sprintf("%.4gs", info.SettlingTime)))
		}
	}

	if showPlot {
		fmt.Println()
		fmt.Println(viz.Chart(res.Output(0), 70, 12, "y(t)"))
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Name:        cfg.Name,
		Numerator:   cfg.Numerator,
		Denominator: cfg.Denominator,
		Input:       cfg.Input.Kind,
		MaxTime:     cfg.MaxTime,
		Steps:       cfg.Steps,
		Dt:          res.Dt,
		Integrator:  integratorName,
	}, res.Result)
	if err != nil {
		return err
	}
	logger.Debug("run stored", "id", runID, "dir", dataDir)

	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, _, res, err := simulate(cmd)
	if err != nil {
		return err
	}
	return viz.Play(viz.Trajectory{
		Name:    cfg.Name,
		Times:   res.Times,
		States:  res.States,
		Outputs: res.Output(0),
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tHORIZON\tSTEPS\tINPUT\tORDER")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%d\t%s\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.MaxTime,
			run.Steps,
			run.Input,
			run.StateDim,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return errors.New("no data to plot")
	}

	fmt.Println(viz.Header(meta.ID))
	fmt.Println(format.TransferFunction(tf.New(meta.Numerator, meta.Denominator), "s"))
	fmt.Println()
	fmt.Println(viz.Field("samples", fmt.Sprint(len(states))))
	fmt.Println(viz.Field("horizon", fmt.Sprintf("%gs", times[len(times)-1])))
	fmt.Println()

	const maxPlots = 6
	for i := 0; i < len(states[0]) && i < maxPlots; i++ {
		data := make([]float64, len(states))
		for k := range states {
			data[k] = states[k][i]
		}
		fmt.Println(viz.Chart(data, plotWidth, plotHeight, fmt.Sprintf("x%d vs time", i)))
		fmt.Println()
	}
	return nil
}

// outputWriter opens outputPath, or stdout when it is empty.
func outputWriter() (io.Writer, func() error, error) {
	if outputPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	w, closeFn, err := outputWriter()
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, times, states); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	data := export.NewData(meta.Name, times, states)
	data.Numerator = meta.Numerator
	data.Denominator = meta.Denominator
	data.Integrator = meta.Integrator
	data.Metrics = meta.Metrics
	data.Dt = meta.Dt
	data.MaxTime = meta.MaxTime

	w, closeFn, err := outputWriter()
	if err != nil {
		return err
	}
	if err := export.WriteJSON(w, data); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportPNG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = runID + ".png"
	}
	if err := export.SavePlot(path, meta.Name, times, states); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tG(s)\tINPUT\tHORIZON\tSTEPS")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		g := tf.New(cfg.Numerator, cfg.Denominator)
		fmt.Fprintf(w, "%s\t(%s)/(%s)\t%s\t%gs\t%d\n",
			name,
			format.Poly(g.Num, "s"),
			format.Poly(g.Den, "s"),
			cfg.Input.Kind,
			cfg.MaxTime,
			cfg.Steps,
		)
	}
	return w.Flush()
}
