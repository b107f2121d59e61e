package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/montanaflynn/stats"
	"github.com/san-kum/univar/bracket"
	"github.com/san-kum/univar/cheb"
	"github.com/san-kum/univar/internal/config"
	"github.com/san-kum/univar/internal/storage"
	"github.com/san-kum/univar/internal/viz"
	"github.com/san-kum/univar/minimize"
	"github.com/san-kum/univar/problems"
	"github.com/san-kum/univar/roots"
	"github.com/san-kum/univar/solve"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	tolerance  float64
	maxIter    int
	lo         float64
	hi         float64
	guess      float64
	guess2     float64
	searchStep float64
	grow       float64
	maxExpand  int
	degree     int
	samples    int
	order      float64
	// ITP tuning
	itpK1 float64
	itpK2 float64
	itpN0 int
	// Config file and preset
	configFile string
	preset     string
	// Bench repetitions
	benchRuns int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "univar",
		Short: "univariate root finding and minimization lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".univar", "data directory")

	solveCmd := &cobra.Command{
		Use:   "root [problem] [method]",
		Short: "find a root",
		Args:  cobra.ExactArgs(2),
		RunE:  runRoot,
	}
	addSolveFlags(solveCmd)
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	minCmd := &cobra.Command{
		Use:   "min [problem]",
		Short: "find a local minimum with Brent's method",
		Args:  cobra.ExactArgs(1),
		RunE:  runMin,
	}
	addSolveFlags(minCmd)
	minCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	minCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	chebCmd := &cobra.Command{
		Use:   "cheb [problem]",
		Short: "approximate by a Chebyshev series and extract its roots",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheb,
	}
	addSolveFlags(chebCmd)
	chebCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	chebCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	bracketCmd := &cobra.Command{
		Use:   "bracket [problem]",
		Short: "expand a root bracket from a starting point",
		Args:  cobra.ExactArgs(1),
		RunE:  runBracket,
	}
	addSolveFlags(bracketCmd)
	bracketCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	bracketCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [method1] [method2] ...",
		Short: "compare refiners on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMethods,
	}
	addSolveFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [problem] [method]",
		Short: "benchmark a refiner",
		Args:  cobra.ExactArgs(2),
		RunE:  benchMethod,
	}
	addSolveFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchRuns, "runs", 200, "repetitions")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs and problems",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's convergence",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem] [method]",
		Short: "solve and replay the iterates in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)

	rootCmd.AddCommand(solveCmd, minCmd, chebCmd, bracketCmd, compareCmd, benchCmd, listCmd, plotCmd, exportCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "convergence tolerance")
	cmd.Flags().IntVar(&maxIter, "maxiter", config.DefaultMaxIterations, "iteration cap")
	cmd.Flags().Float64Var(&lo, "lo", 0, "interval lower end (defaults to the problem's domain)")
	cmd.Flags().Float64Var(&hi, "hi", 0, "interval upper end (defaults to the problem's domain)")
	cmd.Flags().Float64Var(&guess, "guess", 0, "starting point for open methods")
	cmd.Flags().Float64Var(&guess2, "guess2", 0, "second starting point (secant)")
	cmd.Flags().Float64Var(&searchStep, "step", config.DefaultStep, "initial bracket expansion step")
	cmd.Flags().Float64Var(&grow, "grow", config.DefaultGrow, "bracket expansion growth factor")
	cmd.Flags().IntVar(&maxExpand, "max-expand", config.DefaultMaxExpand, "bracket expansion cap")
	cmd.Flags().IntVar(&degree, "degree", 0, "Chebyshev degree (defaults to the problem's suggestion)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count for seeding a minimum bracket")
	cmd.Flags().Float64Var(&order, "order", 1, "order hint for Laguerre")
	cmd.Flags().Float64Var(&itpK1, "k1", 0, "ITP truncation scale (0 = default)")
	cmd.Flags().Float64Var(&itpK2, "k2", 0, "ITP truncation exponent (0 = default)")
	cmd.Flags().IntVar(&itpN0, "n0", -1, "ITP slack iterations (-1 = default)")
}

// applyConfig folds preset and config-file values into the flag globals.
// Preset values apply unconditionally, config-file values only where the
// flag was not set on the command line.
func applyConfig(cmd *cobra.Command, problem string) (method string, err error) {
	if preset != "" {
		cfg := config.GetPreset(problem, preset)
		if cfg == nil {
			return "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		method = cfg.Method
		tolerance = cfg.Tolerance
		maxIter = cfg.MaxIterations
		if cfg.Interval.IsSet() {
			lo, hi = cfg.Interval.Lo, cfg.Interval.Hi
		}
		if cfg.Degree != 0 {
			degree = cfg.Degree
		}
		if cfg.Search.Guess != 0 {
			guess = cfg.Search.Guess
		}
		if cfg.Samples != 0 {
			samples = cfg.Samples
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return "", fmt.Errorf("failed to load config: %w", err)
		}
		if method == "" {
			method = cfg.Method
		}
		if !cmd.Flags().Changed("tol") {
			tolerance = cfg.Tolerance
		}
		if !cmd.Flags().Changed("maxiter") {
			maxIter = cfg.MaxIterations
		}
		if cfg.Interval.IsSet() && !cmd.Flags().Changed("lo") && !cmd.Flags().Changed("hi") {
			lo, hi = cfg.Interval.Lo, cfg.Interval.Hi
		}
		if cfg.Degree != 0 && !cmd.Flags().Changed("degree") {
			degree = cfg.Degree
		}
		if !cmd.Flags().Changed("guess") {
			guess = cfg.Search.Guess
		}
		if !cmd.Flags().Changed("guess2") {
			guess2 = cfg.Search.Guess2
		}
		if cfg.Search.Step != 0 && !cmd.Flags().Changed("step") {
			searchStep = cfg.Search.Step
		}
		if cfg.Search.Grow != 0 && !cmd.Flags().Changed("grow") {
			grow = cfg.Search.Grow
		}
		if cfg.Search.MaxExpand != 0 && !cmd.Flags().Changed("max-expand") {
			maxExpand = cfg.Search.MaxExpand
		}
		if cfg.Samples != 0 && !cmd.Flags().Changed("samples") {
			samples = cfg.Samples
		}
		if cfg.ITP.K1 != 0 && !cmd.Flags().Changed("k1") {
			itpK1 = cfg.ITP.K1
		}
		if cfg.ITP.K2 != 0 && !cmd.Flags().Changed("k2") {
			itpK2 = cfg.ITP.K2
		}
		if cfg.ITP.N0 != 0 && !cmd.Flags().Changed("n0") {
			itpN0 = cfg.ITP.N0
		}
	}

	return method, nil
}

// interval resolves the working interval: explicit flags win, otherwise the
// problem's natural domain.
func interval(cmd *cobra.Command, p problems.Problem) (float64, float64) {
	a, b := p.Lo, p.Hi
	if cmd.Flags().Changed("lo") {
		a = lo
	}
	if cmd.Flags().Changed("hi") {
		b = hi
	}
	return a, b
}

func policy(obs solve.Observer) solve.Policy {
	return solve.Policy{Tolerance: tolerance, MaxIterations: maxIter, Observer: obs}
}

// refine dispatches one root method by name. Bracketed methods build their
// bracket from the interval, open methods start from the guess flags.
func refine(cmd *cobra.Command, p problems.Problem, method string, pol solve.Policy) (solve.Result, error) {
	a, b := interval(cmd, p)

	switch method {
	case "bisect":
		br, err := bracket.NewRoot(p.F, a, b)
		if err != nil {
			return solve.Result{Status: solve.NotABracket}, err
		}
		return roots.Bisect(p.F, br, pol)

	case "itp":
		br, err := bracket.NewRoot(p.F, a, b)
		if err != nil {
			return solve.Result{Status: solve.NotABracket}, err
		}
		params := roots.DefaultITPParams(br)
		if itpK1 > 0 {
			params.K1 = itpK1
		}
		if itpK2 > 0 {
			params.K2 = itpK2
		}
		if itpN0 >= 0 {
			params.N0 = itpN0
		}
		return roots.ITPWith(p.F, br, pol, params)

	case "newton":
		if !p.HasDeriv() {
			return solve.Result{Status: solve.DomainError},
				fmt.Errorf("problem %s has no analytic derivative", p.Name)
		}
		x0 := guess
		if !cmd.Flags().Changed("guess") && guess == 0 {
			x0 = 0.5 * (a + b)
		}
		return roots.Newton(p.F, p.Deriv, x0, pol)

	case "secant":
		x0, x1 := guess, guess2
		if !cmd.Flags().Changed("guess") && guess == 0 {
			x0 = a
		}
		if !cmd.Flags().Changed("guess2") && guess2 == 0 {
			x1 = b
		}
		return roots.Secant(p.F, x0, x1, pol)

	case "laguerre":
		if p.Deriv == nil || p.Deriv2 == nil {
			return solve.Result{Status: solve.DomainError},
				fmt.Errorf("problem %s has no analytic second derivative", p.Name)
		}
		x0 := guess
		if !cmd.Flags().Changed("guess") && guess == 0 {
			x0 = 0.5 * (a + b)
		}
		return roots.Laguerre(p.F, p.Deriv, p.Deriv2, order, x0, pol)

	default:
		return solve.Result{Status: solve.DomainError},
			fmt.Errorf("unknown method: %s (available: bisect, itp, newton, secant, laguerre)", method)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	problem, method := args[0], args[1]

	// The positional method always wins; presets only contribute settings.
	if _, err := applyConfig(cmd, problem); err != nil {
		return err
	}

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	trace := &solve.Trace{}
	pol := policy(trace)

	start := time.Now()
	res, solveErr := refine(cmd, p, method, pol)
	elapsed := time.Since(start)

	runID, err := st.Save(problem, method, pol, res, trace)
	if err != nil {
		return err
	}

	printResult(p, method, res, elapsed)
	fmt.Printf("run id: %s\n", runID)

	if solveErr != nil && !res.Status.Ok() {
		return solveErr
	}
	return nil
}

func printResult(p problems.Problem, method string, res solve.Result, elapsed time.Duration) {
	fmt.Printf("problem: %s (%s)\n", p.Name, p.Desc)
	fmt.Printf("method: %s\n", method)
	fmt.Printf("status: %s\n", res.Status)
	fmt.Printf("estimate: %.17g\n", res.Estimate)
	fmt.Printf("residual: %.6e\n", res.Value)
	fmt.Printf("iterations: %d\n", res.Iterations)
	fmt.Printf("elapsed: %v\n", elapsed)

	if len(p.Roots) > 0 && res.Status.Ok() {
		best := math.Inf(1)
		for _, r := range p.Roots {
			if d := math.Abs(res.Estimate - r); d < best {
				best = d
			}
		}
		fmt.Printf("distance to reference: %.3e\n", best)
	}
}

// minBracket seeds a valley triple by sampling, falling back to downhill
// expansion when the argmin sits on a boundary sample.
func minBracket(f solve.Func, a, b float64, n int) (bracket.Min, error) {
	x, _, err := minimize.ByInspection(f, a, b, n)
	if err != nil {
		return bracket.Min{}, err
	}
	h := (b - a) / float64(n-1)
	if x-h > a-h/2 && x+h < b+h/2 {
		if m, err := bracket.NewMin(f, x-h, x, x+h); err == nil {
			return m, nil
		}
	}
	return bracket.FindMin(f, x, x+h, maxExpand)
}

func runMin(cmd *cobra.Command, args []string) error {
	problem := args[0]

	if _, err := applyConfig(cmd, problem); err != nil {
		return err
	}

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	a, b := interval(cmd, p)
	br, err := minBracket(p.F, a, b, samples)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	trace := &solve.Trace{}
	pol := policy(trace)

	start := time.Now()
	res, solveErr := minimize.Brent(p.F, br, pol)
	elapsed := time.Since(start)

	runID, err := st.Save(problem, "brent", pol, res, trace)
	if err != nil {
		return err
	}

	fmt.Printf("problem: %s (%s)\n", p.Name, p.Desc)
	fmt.Printf("bracket: (%.6g, %.6g, %.6g)\n", br.A, br.B, br.C)
	fmt.Printf("status: %s\n", res.Status)
	fmt.Printf("minimizer: %.17g\n", res.Estimate)
	fmt.Printf("minimum: %.17g\n", res.Value)
	fmt.Printf("iterations: %d\n", res.Iterations)
	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)

	if p.HasMin && res.Status.Ok() {
		fmt.Printf("distance to reference: %.3e\n", math.Abs(res.Estimate-p.MinAt))
	}

	if solveErr != nil && !res.Status.Ok() {
		return solveErr
	}
	return nil
}

func runCheb(cmd *cobra.Command, args []string) error {
	problem := args[0]

	if _, err := applyConfig(cmd, problem); err != nil {
		return err
	}

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	a, b := interval(cmd, p)
	deg := p.Degree
	if degree > 0 {
		// Set by flag, preset, or config file; the flag default is zero.
		deg = degree
	}

	start := time.Now()
	s, err := cheb.New(p.F, a, b, deg)
	if err != nil {
		return err
	}
	rs, err := s.Roots(policy(nil))
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Printf("problem: %s (%s)\n", p.Name, p.Desc)
	fmt.Printf("domain: [%.6g, %.6g]\n", a, b)
	fmt.Printf("requested degree: %d, after trimming: %d\n", deg, s.Degree())
	fmt.Printf("elapsed: %v\n\n", elapsed)

	data := make([]float64, 101)
	for i := range data {
		data[i] = s.Eval(a + (b-a)*float64(i)/100)
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("series"),
	))
	fmt.Println()

	if len(rs) == 0 {
		fmt.Println("no roots in the domain")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROOT\tSERIES RESIDUAL\tFUNCTION RESIDUAL")
	for _, r := range rs {
		fmt.Fprintf(w, "%.15g\t%.3e\t%.3e\n", r, s.Eval(r), p.F(r))
	}
	return w.Flush()
}

func runBracket(cmd *cobra.Command, args []string) error {
	problem := args[0]

	if _, err := applyConfig(cmd, problem); err != nil {
		return err
	}

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	x0 := guess
	if !cmd.Flags().Changed("guess") && guess == 0 {
		x0 = p.Lo
	}

	br, err := bracket.FindRoot(p.F, x0, searchStep, grow, maxExpand)
	if err != nil {
		return err
	}

	fmt.Printf("problem: %s (%s)\n", p.Name, p.Desc)
	if br.Degenerate() {
		fmt.Printf("exact root at %.17g\n", br.A)
		return nil
	}
	fmt.Printf("bracket: [%.15g, %.15g]\n", br.A, br.B)
	fmt.Printf("f(a) = %.6e, f(b) = %.6e\n", br.FA, br.FB)
	fmt.Printf("width: %.6e\n", br.Width())
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	problem := args[0]
	methods := args[1:]

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	fmt.Printf("comparing methods on %s (tol=%.1e)\n\n", problem, tolerance)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSTATUS\tESTIMATE\tRESIDUAL\tITERS\tTIME")

	for _, method := range methods {
		pol := policy(nil)
		start := time.Now()
		res, err := refine(cmd, p, method, pol)
		elapsed := time.Since(start)
		if err != nil && res.Status == solve.DomainError {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\n", method, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.15g\t%.2e\t%d\t%v\n",
			method, res.Status, res.Estimate, res.Value, res.Iterations, elapsed)
	}

	return w.Flush()
}

func benchMethod(cmd *cobra.Command, args []string) error {
	problem, method := args[0], args[1]

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	pol := policy(nil)

	// One untimed run to surface errors and warm caches.
	res, err := refine(cmd, p, method, pol)
	if err != nil && !res.Status.Ok() {
		return err
	}

	elapsed := make([]float64, benchRuns)
	for i := 0; i < benchRuns; i++ {
		start := time.Now()
		res, _ = refine(cmd, p, method, pol)
		elapsed[i] = float64(time.Since(start).Nanoseconds())
	}

	mean, _ := stats.Mean(elapsed)
	median, _ := stats.Median(elapsed)
	stdev, _ := stats.StandardDeviation(elapsed)
	p95, _ := stats.Percentile(elapsed, 95)

	fmt.Printf("benchmarking %s/%s (%d runs)\n\n", problem, method, benchRuns)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tITERS\tMEAN\tMEDIAN\tSTDDEV\tP95")
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
		res.Status, res.Iterations,
		time.Duration(mean), time.Duration(median),
		time.Duration(stdev), time.Duration(p95))
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	fmt.Println("problems:")
	for _, name := range registry.List() {
		p, _ := registry.Get(name)
		fmt.Printf("  %-14s %s\n", name, p.Desc)
	}
	fmt.Println()

	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tMETHOD\tTIME\tSTATUS\tESTIMATE\tITERS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.9g\t%d\n",
			run.ID,
			run.Problem,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Status,
			run.Estimate,
			run.Iterations,
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
	steps, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no trace to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s, method: %s\n", meta.Problem, meta.Method)
	fmt.Printf("status: %s, estimate: %.15g\n\n", meta.Status, meta.Estimate)

	xs := make([]float64, len(steps))
	for i, s := range steps {
		xs[i] = s.X
	}
	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("iterate"),
	))
	fmt.Println()

	widths := make([]float64, 0, len(steps))
	for _, s := range steps {
		if s.Width > 0 {
			widths = append(widths, math.Log10(s.Width))
		}
	}
	if len(widths) >= 2 {
		fmt.Println(asciigraph.Plot(widths,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("log10 width"),
		))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadTrace(runID)
	if err != nil {
		// A run without a trace is still exportable.
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}
	return storage.ExportJSON(os.Stdout, meta, steps)
}

func runLive(cmd *cobra.Command, args []string) error {
	problem, method := args[0], args[1]

	registry := problems.NewRegistry()
	p, err := registry.Get(problem)
	if err != nil {
		return err
	}

	trace := &solve.Trace{}
	res, solveErr := refine(cmd, p, method, policy(trace))
	if solveErr != nil && res.Status == solve.DomainError {
		return solveErr
	}

	a, b := interval(cmd, p)
	m := viz.NewModel(problem, method, p.F, a, b, trace.Steps, res)

	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}
