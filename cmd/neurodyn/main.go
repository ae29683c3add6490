package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/neurodyn/internal/analysis"
	"github.com/san-kum/neurodyn/internal/config"
	"github.com/san-kum/neurodyn/internal/neuro"
	"github.com/san-kum/neurodyn/internal/registry"
	"github.com/san-kum/neurodyn/internal/storage"
	"github.com/san-kum/neurodyn/internal/tui"
	"github.com/san-kum/neurodyn/internal/viz"
)

var (
	dataDir    string
	modelName  string
	configFile string
	preset     string
	paramFlags []string

	coupling float64
	local    float64

	gridMin   float64
	gridMax   float64
	gridSteps int

	xMin   float64
	xMax   float64
	noSave bool

	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int

	benchNodes int
	benchModes int
	benchIters int
	parallel   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neurodyn",
		Short: "neural population dynamics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".neurodyn", "data directory")

	flowCmd := &cobra.Command{
		Use:   "flow",
		Short: "plot dS/dt against S at fixed coupling",
		RunE:  runFlow,
	}
	addModelFlags(flowCmd)
	addGridFlags(flowCmd)
	flowCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the evaluation")

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "plot the firing-rate transfer function H(x)",
		RunE:  runTransfer,
	}
	addModelFlags(transferCmd)
	transferCmd.Flags().Float64Var(&xMin, "xmin", 0.0, "input current range start")
	transferCmd.Flags().Float64Var(&xMax, "xmax", 1.0, "input current range end")
	transferCmd.Flags().IntVar(&gridSteps, "steps", 200, "grid resolution")
	transferCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the evaluation")

	equilibriaCmd := &cobra.Command{
		Use:   "equilibria",
		Short: "locate fixed points of the flow",
		RunE:  runEquilibria,
	}
	addModelFlags(equilibriaCmd)
	addGridFlags(equilibriaCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "trace fixed-point branches across a parameter range",
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	addGridFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param-name", "w", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "from", 0.0, "sweep range start")
	sweepCmd.Flags().Float64Var(&sweepMax, "to", 1.0, "sweep range end")
	sweepCmd.Flags().IntVar(&sweepSteps, "values", 60, "number of parameter values")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark kernel throughput",
		RunE:  runBench,
	}
	addModelFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchNodes, "nodes", 1000, "number of nodes")
	benchCmd.Flags().IntVar(&benchModes, "modes", 1, "number of modes")
	benchCmd.Flags().IntVar(&benchIters, "iters", 10000, "evaluations to run")
	benchCmd.Flags().BoolVar(&parallel, "parallel", false, "partition nodes across workers")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved evaluations",
		RunE:  listEvals,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [eval_id]",
		Short: "replot a saved evaluation",
		Args:  cobra.ExactArgs(1),
		RunE:  plotEval,
	}

	exportCmd := &cobra.Command{
		Use:   "export [eval_id]",
		Short: "export a saved evaluation as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportEval,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list named parameter regimes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresetsCmd,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive parameter explorer",
		RunE:  runExplore,
	}
	addModelFlags(exploreCmd)
	addGridFlags(exploreCmd)

	rootCmd.AddCommand(flowCmd, transferCmd, equilibriaCmd, sweepCmd,
		benchCmd, listCmd, plotCmd, exportCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", "rww", "model name")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "parameter override (name=value, repeatable)")
	cmd.Flags().Float64Var(&coupling, "coupling", 0.0, "afferent coupling input")
	cmd.Flags().Float64Var(&local, "local", 0.0, "local coupling input")
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gridMin, "smin", 0.0, "state grid start")
	cmd.Flags().Float64Var(&gridMax, "smax", 1.0, "state grid end")
	cmd.Flags().IntVar(&gridSteps, "steps", 200, "state grid resolution")
}

// loadConfig merges file, preset and flag sources; flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(modelName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for model %q (try: %s)",
				preset, modelName, strings.Join(config.ListPresets(modelName), ", "))
		}
		cfg.Model = p.Model
		for k, v := range p.Params {
			if cfg.Params == nil {
				cfg.Params = map[string]float64{}
			}
			cfg.Params[k] = v
		}
		if p.Grid.Steps > 0 {
			cfg.Grid = p.Grid
		}
	}

	if cmd.Flags().Changed("model") || cfg.Model == "" {
		cfg.Model = modelName
	}
	if cmd.Flags().Changed("coupling") {
		cfg.Coupling = coupling
	}
	if cmd.Flags().Changed("local") {
		cfg.LocalCoupling = local
	}
	if f := cmd.Flags().Lookup("smin"); f != nil && f.Changed {
		cfg.Grid.Min = gridMin
	}
	if f := cmd.Flags().Lookup("smax"); f != nil && f.Changed {
		cfg.Grid.Max = gridMax
	}
	if f := cmd.Flags().Lookup("steps"); f != nil && f.Changed {
		cfg.Grid.Steps = gridSteps
	}

	for _, kv := range paramFlags {
		name, val, err := parseParamFlag(kv)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		cfg.Params[name] = val
	}

	return cfg, nil
}

func parseParamFlag(kv string) (string, float64, error) {
	parts := strings.SplitN(kv, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("bad --param %q, want name=value", kv)
	}
	v, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad --param %q: %w", kv, err)
	}
	return parts[0], v, nil
}

func buildModel(cfg *config.Config) (neuro.Model, error) {
	reg := registry.New()
	m, err := reg.Get(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(reg.Names(), ", "))
	}
	if err := registry.Apply(m, cfg.Params, cfg.NodeParams); err != nil {
		return nil, err
	}
	return m, nil
}

// buildGridModel builds a model for the state-grid analyses, which put
// grid points on the node axis. Per-node parameters cannot broadcast
// over that axis, so they are collapsed to their node-0 value first.
func buildGridModel(cfg *config.Config) (neuro.Model, error) {
	m, err := buildModel(cfg)
	if err != nil {
		return nil, err
	}
	collapsed, err := registry.CollapseNodeParams(m)
	if err != nil {
		return nil, err
	}
	if len(collapsed) > 0 {
		fmt.Println(viz.Hint.Render(fmt.Sprintf(
			" using node-0 value of per-node %s for the state grid",
			strings.Join(collapsed, ", "))))
	}
	return m, nil
}

func runFlow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildGridModel(cfg)
	if err != nil {
		return err
	}

	curve, err := analysis.Flow(m, 0, cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Steps,
		cfg.Coupling, cfg.LocalCoupling)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s: dS/dt vs S (coupling=%.4g)", cfg.Model, cfg.Coupling)
	fmt.Println(viz.PlotCurve(curve, caption, 80, 14))

	return saveEval(cfg, m, "flow", curve)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildModel(cfg)
	if err != nil {
		return err
	}

	tf, ok := m.(neuro.Transferer)
	if !ok {
		return fmt.Errorf("model %s has no transfer function", cfg.Model)
	}

	curve, err := analysis.Transfer(tf, xMin, xMax, gridSteps)
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotCurve(curve, fmt.Sprintf("%s: H(x)", cfg.Model), 80, 14))

	return saveEval(cfg, m, "transfer", curve)
}

func saveEval(cfg *config.Config, m neuro.Model, kind string, curve *analysis.Curve) error {
	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := map[string]float64{}
	if tunable, ok := m.(neuro.Configurable); ok {
		params = tunable.GetParams()
	}

	id, err := st.Save(kind, cfg.Model, cfg.Coupling, cfg.LocalCoupling, params, curve)
	if err != nil {
		return err
	}
	fmt.Println(viz.Label.Render("saved as " + id))
	return nil
}

func runEquilibria(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildGridModel(cfg)
	if err != nil {
		return err
	}

	eqs, err := analysis.Equilibria(m, 0, cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Steps,
		cfg.Coupling, cfg.LocalCoupling)
	if err != nil {
		return err
	}

	fmt.Printf("%s fixed points in [%g, %g], coupling=%.4g:\n\n",
		cfg.Model, cfg.Grid.Min, cfg.Grid.Max, cfg.Coupling)
	fmt.Println(viz.FormatEquilibria(eqs))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildGridModel(cfg)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("param-name") || cfg.Sweep.Param == "" {
		cfg.Sweep.Param = sweepParam
	}
	if cmd.Flags().Changed("from") {
		cfg.Sweep.Min = sweepMin
	}
	if cmd.Flags().Changed("to") {
		cfg.Sweep.Max = sweepMax
	}
	if cmd.Flags().Changed("values") || cfg.Sweep.Steps == 0 {
		cfg.Sweep.Steps = sweepSteps
	}

	points, err := analysis.EquilibriumSweep(m, cfg.Sweep.Param,
		cfg.Sweep.Min, cfg.Sweep.Max, cfg.Sweep.Steps,
		0, cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Steps,
		cfg.Coupling, cfg.LocalCoupling)
	if err != nil {
		return err
	}

	fmt.Printf("%s fixed-point branches, %s in [%g, %g]:\n\n",
		cfg.Model, cfg.Sweep.Param, cfg.Sweep.Min, cfg.Sweep.Max)
	fmt.Println(analysis.SweepToASCII(points, 80, 20))
	fmt.Println(viz.Hint.Render(" • stable   · unstable"))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildModel(cfg)
	if err != nil {
		return err
	}

	state := neuro.NewField(m.NVar(), benchNodes, benchModes)
	cpl := neuro.NewField(m.NVar(), benchNodes, benchModes)
	out := neuro.NewField(m.NVar(), benchNodes, benchModes)
	state.Fill(0.5)
	lc := neuro.Scalar(cfg.LocalCoupling)

	fmt.Printf("benchmarking %s: %d nodes x %d modes, %d evaluations (parallel=%v)\n",
		cfg.Model, benchNodes, benchModes, benchIters, parallel)

	start := time.Now()
	for i := 0; i < benchIters; i++ {
		if parallel {
			err = neuro.DfunParallel(m, out, state, cpl, lc, 256)
		} else {
			err = m.DfunInto(out, state, cpl, lc)
		}
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	perEval := elapsed / time.Duration(benchIters)
	rate := float64(benchIters) * float64(benchNodes*benchModes) / elapsed.Seconds()

	fmt.Printf("total: %v\n", elapsed)
	fmt.Printf("per evaluation: %v\n", perEval)
	fmt.Printf("element rate: %.3g derivatives/s\n", rate)
	return nil
}

func listEvals(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		fmt.Println("no saved evaluations")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tMODEL\tTIME\tCOUPLING\tSAMPLES")
	for _, meta := range metas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4g\t%d\n",
			meta.ID, meta.Kind, meta.Model,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.Coupling, meta.Samples)
	}
	return w.Flush()
}

func plotEval(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s %s", meta.Model, meta.Kind)
	fmt.Println(viz.PlotCurve(curve, caption, 80, 14))
	return nil
}

func exportEval(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, curve)
}

func listPresetsCmd(cmd *cobra.Command, args []string) error {
	model := "rww"
	if len(args) == 1 {
		model = args[0]
	}

	names := config.ListPresets(model)
	if len(names) == 0 {
		return fmt.Errorf("no presets for model %q", model)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPARAMS")
	for _, name := range names {
		p := config.GetPreset(model, name)
		parts := make([]string, 0, len(p.Params))
		for k, v := range p.Params {
			parts = append(parts, fmt.Sprintf("%s=%g", k, v))
		}
		desc := strings.Join(parts, " ")
		if desc == "" {
			desc = "(defaults)"
		}
		fmt.Fprintf(w, "%s\t%s\n", name, desc)
	}
	return w.Flush()
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildGridModel(cfg)
	if err != nil {
		return err
	}

	app, err := tui.NewExplorer(m, cfg.Model, cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Steps)
	if err != nil {
		return err
	}
	return tui.Run(app)
}
