package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/jwseo/fdtdlab/internal/analysis"
	"github.com/jwseo/fdtdlab/internal/config"
	"github.com/jwseo/fdtdlab/internal/experiment"
	"github.com/jwseo/fdtdlab/internal/export"
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
	"github.com/jwseo/fdtdlab/internal/metrics"
	"github.com/jwseo/fdtdlab/internal/store"
	"github.com/jwseo/fdtdlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	mode       string
	steps      int
	resolution float64
	courant    float64
	// Snapshot selection
	component string
	axis      string
	cut       int
	outFile   string
)

// main registers the fdtdlab commands and executes the root command. It
// exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fdtdlab",
		Short: "finite-difference time-domain electromagnetics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fdtdlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	addSetupFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with live visualization",
		RunE:  runLive,
	}
	addSetupFlags(liveCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run a simulation and export a field cross-section",
		RunE:  runSnapshot,
	}
	addSetupFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&component, "component", "ez", "field component")
	snapshotCmd.Flags().StringVar(&axis, "axis", "z", "cut axis")
	snapshotCmd.Flags().IntVar(&cut, "cut", 0, "cut index along the axis")
	snapshotCmd.Flags().StringVar(&outFile, "out", "snapshot.svg", "output file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot probe series of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a run's probes",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export probe data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export probe data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [group]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping throughput",
		RunE:  benchEngine,
	}

	rootCmd.AddCommand(runCmd, liveCmd, snapshotCmd, listCmd, plotCmd, analyzeCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset as group/name")
	cmd.Flags().StringVar(&mode, "mode", "", "dimensional mode (3d, tez, temx, ...)")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of full time steps")
	cmd.Flags().Float64Var(&resolution, "resolution", 0, "cells per unit length")
	cmd.Flags().Float64Var(&courant, "courant", 0, "courant factor")
}

// loadConfig resolves a configuration from the preset and config flags,
// with explicit flags overriding both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		group, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be group/name, got %q", preset)
		}
		cfg = config.GetPreset(group, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(group))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Resolution = resolution
	}
	if cmd.Flags().Changed("courant") {
		cfg.Courant = courant
	}
	return cfg, nil
}

func defaultMetrics(cfg *config.Config) []metrics.Metric {
	ms := []metrics.Metric{
		metrics.NewEnergy(),
		metrics.NewStability(),
	}
	seen := map[string]bool{}
	for _, pc := range cfg.Probes {
		c, err := fdtd.ParseComponent(pc.Component)
		if err != nil || seen[pc.Component] {
			continue
		}
		seen[pc.Component] = true
		ms = append(ms, metrics.NewPeak(c))
	}
	return ms
}

func metricValues(ms []metrics.Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return err
	}

	ms := defaultMetrics(cfg)

	fmt.Printf("running %s simulation, %d steps...\n", cfg.Mode, cfg.Steps)
	start := time.Now()

	result, err := exp.Run(context.Background(), metrics.Observers(ms)...)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	dt := exp.Engine().Space().Dt

	runID, err := st.Save(cfg, dt, result, metricValues(ms))
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("dt: %.6g  simulated time: %.6g\n", dt, exp.Engine().Clock().T)
	fmt.Println("\nmetrics:")
	for name, val := range metricValues(ms) {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return err
	}

	return viz.Run(exp)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	comp, err := fdtd.ParseComponent(component)
	if err != nil {
		return err
	}
	a, err := grid.ParseAxis(axis)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return err
	}
	if _, err := exp.Run(context.Background()); err != nil {
		return err
	}

	plane, err := exp.Engine().Plane(comp, a, cut)
	if err != nil {
		return err
	}

	svg := export.PlaneToSVG(plane, 4)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tSTEPS\tDT\tRESOLUTION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4g\t%.0f\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Resolution,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, series, labels, err := st.LoadProbes(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 || len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("samples: %d\n\n", len(times))

	for i, data := range series {
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(labels[i]+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, series, labels, err := st.LoadProbes(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 || len(series[0]) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("mode: %s\n\n", meta.Mode)

	data := series[0]
	ps := analysis.PowerSpectrum(data)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+labels[0]+")"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(data, meta.Dt)
	fmt.Printf("dominant frequency: %.4g\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.4g\n", 1.0/freq)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	times, series, labels, err := st.LoadProbes(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, labels...)); err != nil {
		return err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, s := range series {
			row = append(row, strconv.FormatFloat(s[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, series, labels, err := st.LoadProbes(args[0])
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Mode = meta.Mode
	cfg.Size = meta.Size
	cfg.Resolution = meta.Resolution
	cfg.Steps = meta.Steps

	result := &experiment.Result{
		Time:   times,
		Labels: labels,
		Series: series,
	}
	return store.ExportJSONStdout(cfg, meta.Dt, result, meta.Metrics)
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("preset groups:")
		for group := range config.Presets {
			fmt.Printf("  %s\n", group)
		}
		return nil
	}

	group := args[0]
	names := config.ListPresets(group)
	if len(names) == 0 {
		fmt.Printf("no presets for group: %s\n", group)
		return nil
	}
	fmt.Printf("presets for %s:\n", group)
	for _, name := range names {
		fmt.Printf("  %s/%s\n", group, name)
	}
	return nil
}

func benchEngine(cmd *cobra.Command, args []string) error {
	resolutions := []float64{10, 20, 40}
	modes := []string{"3d", "tez", "temx"}

	fmt.Println("benchmarking stepping throughput")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tRESOLUTION\tCELLS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, m := range modes {
		for _, res := range resolutions {
			cfg := config.DefaultConfig()
			cfg.Mode = m
			cfg.Resolution = res
			cfg.Steps = 50
			if m == "temx" {
				cfg.Size = [3]float64{1, 0, 0}
			} else if m == "tez" {
				cfg.Size = [3]float64{1, 1, 0}
			}

			exp := experiment.New(cfg)
			if err := exp.Setup(); err != nil {
				return err
			}

			s := exp.Engine().Space()
			cells := s.Nx * s.Ny * s.Nz

			start := time.Now()
			if _, err := exp.Run(context.Background()); err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(cfg.Steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%.0f\t%d\t%d\t%v\t%.0f\n",
				m, res, cells, cfg.Steps, elapsed.Round(time.Microsecond), stepsPerSec)
		}
	}

	return w.Flush()
}
