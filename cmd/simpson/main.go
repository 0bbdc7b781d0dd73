package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/san-kum/simpson/internal/chart"
	"github.com/san-kum/simpson/internal/config"
	"github.com/san-kum/simpson/internal/dataset"
	"github.com/san-kum/simpson/internal/experiment"
	"github.com/san-kum/simpson/internal/input"
	"github.com/san-kum/simpson/internal/logging"
	"github.com/san-kum/simpson/internal/models"
	"github.com/san-kum/simpson/internal/report"
	"github.com/san-kum/simpson/internal/storage"
	"github.com/san-kum/simpson/internal/tui"
)

var logger = logr.Discard()

var (
	storeDir string
	verbose  bool

	// plot
	dataSource string
	backend    string
	outPath    string
	format     string
	configFile string
	preset     string

	// integrate
	source    string
	dataFile  string
	points    []string
	tStart    float64
	tEnd      float64
	intervals int
	intRule   string
	save      bool

	// study
	integrand string
	params    map[string]string
	rule      string
	rangeA    float64
	rangeB    float64
	counts    []int
	round     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "simpson",
		Short:        "simpson's rule convergence charts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Long: "Integrates sampled data with Simpson's rules and charts how the\n" +
			"result and its error converge as the interval count grows.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(os.Stderr, verbose)
		},
		// no subcommand: show the published chart and save it
		RunE: showDefault,
	}

	rootCmd.PersistentFlags().StringVar(&storeDir, "store", ".simpson", "directory for saved runs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "diagnostic logging to stderr")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", config.DefaultOutput, "image file to write")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the convergence chart",
		Args:  cobra.NoArgs,
		RunE:  plotChart,
	}
	plotCmd.Flags().StringVar(&dataSource, "data", "published", "table to chart (published|study)")
	plotCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "renderer ("+strings.Join(chart.BackendNames(), "|")+")")
	plotCmd.Flags().StringVarP(&outPath, "out", "o", config.DefaultOutput, "output file")
	plotCmd.Flags().StringVar(&format, "format", "", "image format (png|svg|pdf); default from --out")
	addStudyFlags(plotCmd)

	integrateCmd := &cobra.Command{
		Use:   "integrate",
		Short: "integrate data points",
		Args:  cobra.NoArgs,
		RunE:  integratePoints,
	}
	integrateCmd.Flags().StringVar(&source, "source", "function", "data source (function|manual|file)")
	integrateCmd.Flags().StringVar(&dataFile, "file", "", "data file with one \"x y\" pair per line")
	integrateCmd.Flags().StringArrayVar(&points, "point", nil, "data point \"x,y\" (repeatable)")
	integrateCmd.Flags().StringVar(&integrand, "integrand", config.DefaultIntegrand, "function to sample")
	integrateCmd.Flags().Float64Var(&tStart, "t-start", config.DefaultStart, "sampling start time")
	integrateCmd.Flags().Float64Var(&tEnd, "t-end", config.DefaultEnd, "sampling end time")
	integrateCmd.Flags().IntVar(&intervals, "intervals", 8, "number of intervals")
	integrateCmd.Flags().StringVar(&intRule, "rule", "auto", "integration rule (auto|simpson13|simpson38|combined|trapezoid)")
	integrateCmd.Flags().BoolVar(&save, "save", false, "save the run")

	studyCmd := &cobra.Command{
		Use:   "study",
		Short: "run a convergence study",
		Args:  cobra.NoArgs,
		RunE:  runStudy,
	}
	addStudyFlags(studyCmd)
	studyCmd.Flags().BoolVar(&save, "save", false, "save the table")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the published table and its checks",
		Args:  cobra.NoArgs,
		RunE:  printTable,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list config presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(plotCmd, integrateCmd, studyCmd, tableCmd, listCmd, showCmd, tuiCmd, presetsCmd)
	return rootCmd
}

func addStudyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&integrand, "integrand", config.DefaultIntegrand, "function to integrate")
	cmd.Flags().StringToStringVar(&params, "param", nil, "integrand parameter name=value (repeatable)")
	cmd.Flags().Float64Var(&rangeA, "a", config.DefaultStart, "lower limit")
	cmd.Flags().Float64Var(&rangeB, "b", config.DefaultEnd, "upper limit")
	cmd.Flags().IntSliceVar(&counts, "n", experiment.DefaultIntervals, "interval counts")
	cmd.Flags().StringVar(&rule, "rule", config.DefaultRule, "integration rule")
	cmd.Flags().BoolVar(&round, "round", true, "round the table to the published six decimals")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig loads --config or --preset and lets explicitly set flags
// override it. Without either, the flag values are used as they are.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	case preset != "":
		c := config.GetPreset(preset)
		if c == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = c
	default:
		// nothing loaded: every flag value wins, default or not
		p, err := parseParams(params)
		if err != nil {
			return nil, err
		}
		cfg.Integrand, cfg.Params, cfg.Rule = integrand, p, rule
		cfg.Start, cfg.End, cfg.Intervals, cfg.Round = rangeA, rangeB, counts, round
		if f := cmd.Flags().Lookup("backend"); f != nil {
			cfg.Plot.Backend, cfg.Plot.Output, cfg.Plot.Format = backend, outPath, format
		}
		return cfg, nil
	}

	flags := cmd.Flags()
	if flags.Changed("integrand") {
		cfg.Integrand = integrand
	}
	if flags.Changed("param") {
		p, err := parseParams(params)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		for k, v := range p {
			cfg.Params[k] = v
		}
	}
	if flags.Changed("a") {
		cfg.Start = rangeA
	}
	if flags.Changed("b") {
		cfg.End = rangeB
	}
	if flags.Changed("n") {
		cfg.Intervals = counts
	}
	if flags.Changed("rule") {
		cfg.Rule = rule
	}
	if flags.Changed("round") {
		cfg.Round = round
	}
	if flags.Changed("backend") {
		cfg.Plot.Backend = backend
	}
	if flags.Changed("out") {
		cfg.Plot.Output = outPath
	}
	if flags.Changed("format") {
		cfg.Plot.Format = format
	}
	return cfg, nil
}

func parseParams(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	p := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", k, err)
		}
		p[k] = f
	}
	return p, nil
}

func newStudy(cfg *config.Config) (*experiment.Study, error) {
	registry := experiment.NewRegistry()

	fn, err := registry.GetIntegrand(cfg.Integrand, cfg.Params)
	if err != nil {
		return nil, err
	}
	r, err := registry.GetRule(cfg.Rule)
	if err != nil {
		return nil, err
	}

	return &experiment.Study{
		Integrand: fn,
		A:         cfg.Start,
		B:         cfg.End,
		Intervals: cfg.Intervals,
		Rule:      r,
		Round:     cfg.Round,
		Log:       logger.WithName("study"),
	}, nil
}

func showDefault(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fig, err := chart.Build(dataset.Published())
	if err != nil {
		return err
	}
	if err := chart.NewTerminal().Render(out, fig); err != nil {
		return err
	}
	return writeImage(out, fig, config.DefaultBackend, outPath, "")
}

func plotChart(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var tbl dataset.Table
	switch dataSource {
	case "published":
		tbl = dataset.Published()
	case "study":
		s, err := newStudy(cfg)
		if err != nil {
			return err
		}
		res, err := s.Run(cmd.Context())
		if err != nil {
			return err
		}
		tbl = res.Table
	default:
		return fmt.Errorf("unknown data: %s (available: published, study)", dataSource)
	}

	fig, err := chart.Build(tbl)
	if err != nil {
		return err
	}
	fig.Width, fig.Height = cfg.Plot.Width, cfg.Plot.Height

	if cfg.Plot.Backend == "terminal" {
		term := chart.NewTerminal()
		term.Width = cfg.Plot.Terminal.Width
		term.Height = cfg.Plot.Terminal.Height
		term.Plain = cfg.Plot.Terminal.Plain
		return term.Render(out, fig)
	}
	return writeImage(out, fig, cfg.Plot.Backend, cfg.Plot.Output, cfg.Plot.Format)
}

func writeImage(out io.Writer, fig *chart.Figure, backend, path, format string) error {
	if format == "" {
		format = chart.FormatFromPath(path)
	}
	r, err := chart.NewRenderer(backend, format)
	if err != nil {
		return err
	}

	// render fully before touching the file so a failure leaves nothing behind
	var buf bytes.Buffer
	if err := r.Render(&buf, fig); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}

	logger.Info("chart written", "backend", backend, "format", format, "path", path)
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}

func integratePoints(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	src, err := input.ParseSource(source)
	if err != nil {
		return err
	}
	registry := experiment.NewRegistry()
	r, err := registry.GetRule(intRule)
	if err != nil {
		return err
	}

	var (
		pts input.Points
		fn  models.Integrand
	)
	switch src {
	case input.SourceFunction:
		fn, err = registry.GetIntegrand(integrand, nil)
		if err != nil {
			return err
		}
		pts, err = input.FromFunction(fn, tStart, tEnd, intervals)
	case input.SourceManual:
		pts, err = input.ParsePairs(points)
	case input.SourceFile:
		if dataFile == "" {
			return fmt.Errorf("--file is required for the file source")
		}
		pts, err = input.LoadFile(dataFile)
	}
	if err != nil {
		return err
	}
	logger.V(1).Info("points loaded", "source", src.String(), "count", pts.Len())

	res, err := experiment.Integrate(pts.X, pts.Y, r)
	if err != nil {
		return err
	}
	if fn != nil {
		if exact, ok := fn.Exact(pts.X[0], pts.X[len(pts.X)-1]); ok {
			res.WithExact(exact)
		}
	}

	fmt.Fprintln(out, report.Points(pts.X, pts.Y, 20))
	fmt.Fprintln(out, report.Result(res))

	if save {
		st := storage.New(storeDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(src.String(), pts.X, pts.Y, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved: %s\n", id)
	}
	return nil
}

func runStudy(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newStudy(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s on [%g, %g], %s", s.Integrand.Describe(), s.A, s.B, s.Rule.Title())
	fmt.Fprintln(out, report.Table(title, res.Table))
	fmt.Fprintln(out, report.Checks(res.Table, res.Exact))
	fmt.Fprintf(out, "%s %s\n", report.Label.Render("exact"), report.Value.Render(fmt.Sprintf("%.6f", res.Exact)))
	fmt.Fprintf(out, "%s %v\n", report.Label.Render("elapsed"), time.Since(start).Round(time.Microsecond))

	if save {
		st := storage.New(storeDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.SaveTable(cfg.Integrand, s.Rule.String(), s.A, s.B, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved: %s\n", id)
	}
	return nil
}

func printTable(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	exact, _ := models.NewHeatTransfer().Exact(0, 8)
	fmt.Fprintln(out, report.Table("Published results", dataset.Published()))
	fmt.Fprint(out, report.Checks(dataset.Published(), exact))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	st := storage.New(storeDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSOURCE\tTIME\tRULE\tRANGE\tVALUE")

	for _, run := range runs {
		value := "-"
		if run.Result != nil {
			value = fmt.Sprintf("%.6f", run.Result.Value)
		} else if len(run.Intervals) > 0 {
			value = fmt.Sprintf("n=%v", run.Intervals)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t[%g, %g]\t%s\n",
			run.ID,
			run.Kind,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rule,
			run.Start,
			run.End,
			value,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	runID := args[0]

	st := storage.New(storeDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s  %s  %s\n\n", report.Title.Render(meta.ID), meta.Kind, meta.Timestamp.Format(time.RFC3339))

	switch meta.Kind {
	case storage.KindStudy:
		tbl, err := st.LoadTable(runID)
		if err != nil {
			return err
		}
		exact := math.NaN()
		if meta.Exact != 0 {
			exact = meta.Exact
		}
		fmt.Fprintln(out, report.Table(meta.Source, tbl))
		fmt.Fprintln(out, report.Checks(tbl, exact))
		fig, err := chart.Build(tbl)
		if err != nil {
			return err
		}
		return chart.NewTerminal().Render(out, fig)
	default:
		x, y, err := st.LoadPoints(runID)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, report.Points(x, y, 20))
		if meta.Result != nil {
			fmt.Fprintln(out, report.Result(meta.Result))
		}
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTEGRAND\tRULE\tRANGE\tINTERVALS")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%v\n", name, p.Integrand, p.Rule, p.Start, p.End, p.Intervals)
	}
	return w.Flush()
}
