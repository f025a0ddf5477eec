package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/binding"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/config"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/export"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/spatial"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/tui"
	"github.com/InstituteforDiseaseModeling/vis-tools/internal/visset"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	dropZeros    bool
	excludeNodes []uint

	combineOp  string
	combineOut string

	vissetPath string
	dataDir    string

	evalSource   string
	evalFunction string
	evalReturn   string
	evalTimestep int
	gradientSpec string

	gradientSteps   int
	gradientReverse bool
	gradientEmit    bool
	gradientSVG     string
	sampleCount     int

	exportLayer  string
	exportFormat string
	exportOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vistools",
		Short: "geospatial simulation data binding toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (text|json)")

	decodeCmd := &cobra.Command{
		Use:   "decode [report.bin]",
		Short: "decode a spatial report and show channel stats",
		Args:  cobra.ExactArgs(1),
		RunE:  decodeReport,
	}
	decodeCmd.Flags().BoolVar(&dropZeros, "drop-zeros", false, "store zero values sparsely")
	decodeCmd.Flags().UintSliceVar(&excludeNodes, "exclude", nil, "node ids to exclude")

	combineCmd := &cobra.Command{
		Use:   "combine [a.bin] [b.bin]",
		Short: "combine two spatial reports element-wise",
		Args:  cobra.ExactArgs(2),
		RunE:  combineReports,
	}
	combineCmd.Flags().StringVar(&combineOp, "op", "add", "operation (add|subtract|multiply|divide)")
	combineCmd.Flags().StringVar(&combineOut, "out", "", "write combined report to this path")

	reportsCmd := &cobra.Command{
		Use:   "reports [dir]",
		Short: "list spatial reports in a simulation output directory",
		Args:  cobra.ExactArgs(1),
		RunE:  listReports,
	}

	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "survey a visset's data sources",
		RunE:  surveySources,
	}
	surveyCmd.Flags().StringVar(&vissetPath, "visset", "visset.json", "visset description path")
	surveyCmd.Flags().StringVar(&dataDir, "dir", ".", "simulation output directory")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "bind a source to a function and evaluate per node",
		RunE:  evalBinding,
	}
	evalCmd.Flags().StringVar(&vissetPath, "visset", "visset.json", "visset description path")
	evalCmd.Flags().StringVar(&dataDir, "dir", ".", "simulation output directory")
	evalCmd.Flags().StringVar(&evalSource, "source", binding.NoneKey, "source key")
	evalCmd.Flags().StringVar(&evalFunction, "function", binding.DefaultFunctionText, "function text")
	evalCmd.Flags().StringVar(&evalReturn, "return", "", "declared return type (number|string|color)")
	evalCmd.Flags().IntVar(&evalTimestep, "timestep", 0, "timestep to evaluate")
	evalCmd.Flags().StringVar(&gradientSpec, "gradient", config.DefaultGradientSpec, "gradient for sampling functions")

	gradientCmd := &cobra.Command{
		Use:   "gradient [spec]",
		Short: "parse a gradient spec and show swatches",
		Args:  cobra.ExactArgs(1),
		RunE:  showGradient,
	}
	gradientCmd.Flags().IntVar(&gradientSteps, "steps", 0, "quantize to N bands")
	gradientCmd.Flags().BoolVar(&gradientReverse, "reverse", false, "reverse the gradient")
	gradientCmd.Flags().BoolVar(&gradientEmit, "emit", false, "print the canonical spec text")
	gradientCmd.Flags().IntVar(&sampleCount, "samples", 32, "number of swatch samples")
	gradientCmd.Flags().StringVar(&gradientSVG, "svg", "", "write a legend strip to this SVG file")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "evaluate a layer's sinks and export the frame",
		RunE:  exportFrame,
	}
	exportCmd.Flags().StringVar(&vissetPath, "visset", "visset.json", "visset description path")
	exportCmd.Flags().StringVar(&dataDir, "dir", ".", "simulation output directory")
	exportCmd.Flags().StringVar(&exportLayer, "layer", "points", "layer to evaluate (points|shapes|heatmap)")
	exportCmd.Flags().IntVar(&evalTimestep, "timestep", 0, "timestep to evaluate")
	exportCmd.Flags().StringVar(&gradientSpec, "gradient", config.DefaultGradientSpec, "gradient for sampling functions")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format (csv|json)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default stdout)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [report.bin]",
		Short: "interactive timestep scrubber over a channel",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectChannel,
	}
	inspectCmd.Flags().BoolVar(&dropZeros, "drop-zeros", false, "store zero values sparsely")

	rootCmd.AddCommand(decodeCmd, combineCmd, reportsCmd, surveyCmd, evalCmd, gradientCmd, exportCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) under explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
		logLevel = cfg.Log.Level
	}
	if !cmd.Flags().Changed("log-format") && cfg.Log.Format != "" {
		logFormat = cfg.Log.Format
	}
	if f := cmd.Flags().Lookup("dir"); f != nil && !f.Changed && cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}
	if f := cmd.Flags().Lookup("visset"); f != nil && !f.Changed && cfg.VisSetPath != "" {
		vissetPath = cfg.VisSetPath
	}
	if f := cmd.Flags().Lookup("gradient"); f != nil && !f.Changed && cfg.DefaultGradient != "" {
		gradientSpec = cfg.DefaultGradient
	}
	if f := cmd.Flags().Lookup("drop-zeros"); f != nil && !f.Changed {
		dropZeros = cfg.Decode.DropZeros
	}
	if f := cmd.Flags().Lookup("exclude"); f != nil && !f.Changed {
		for _, id := range cfg.Decode.ExcludedNodeIDs {
			excludeNodes = append(excludeNodes, uint(id))
		}
	}
	return cfg, nil
}

func decodeOptions() spatial.Options {
	opts := spatial.Options{DropZeros: dropZeros}
	for _, id := range excludeNodes {
		opts.ExcludedNodeIDs = append(opts.ExcludedNodeIDs, uint32(id))
	}
	return opts
}

func decodeFile(path string, opts spatial.Options) (*spatial.SpatialBinary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return spatial.Decode(spatial.ChannelName(path), data, opts)
}

func decodeReport(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	sb, err := decodeFile(args[0], decodeOptions())
	if err != nil {
		return err
	}

	stats := spatial.ChannelStats(sb)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tNODES\tTIMESTEPS\tMIN\tMAX\tMEAN\tSTDDEV")
	fmt.Fprintf(w, "%s\t%d\t%d\t%.6g\t%.6g\t%.6g\t%.6g\n",
		sb.ChannelName, sb.NodeCount, len(sb.Timesteps), sb.ValueMin, sb.ValueMax,
		stats.Mean(), stats.StdDev())
	if err := w.Flush(); err != nil {
		return err
	}

	series := meanSeries(sb)
	if len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("mean per timestep"),
		))
	}
	return nil
}

func meanSeries(sb *spatial.SpatialBinary) []float64 {
	series := make([]float64, len(sb.Timesteps))
	for t, nodes := range sb.Timesteps {
		var sum float64
		for _, v := range nodes {
			sum += v
		}
		if len(nodes) > 0 {
			series[t] = sum / float64(len(nodes))
		}
	}
	return series
}

func combineReports(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	fn, ok := spatial.Combiners[combineOp]
	if !ok {
		return fmt.Errorf("unknown operation: %s", combineOp)
	}

	a, err := decodeFile(args[0], spatial.Options{})
	if err != nil {
		return err
	}
	b, err := decodeFile(args[1], spatial.Options{})
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s_%s", a.ChannelName, combineOp, b.ChannelName)
	combined, err := spatial.Combine(a, b, name, fn)
	if err != nil {
		return err
	}

	if combineOut != "" {
		data, err := combined.Encode()
		if err != nil {
			return err
		}
		if err := os.WriteFile(combineOut, data, 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", combineOut, len(data))
		return nil
	}

	fmt.Printf("%s: range [%.6g, %.6g]\n", combined.ChannelName, combined.ValueMin, combined.ValueMax)
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	reports, err := spatial.SurveyDir(args[0])
	if err != nil {
		return err
	}
	if len(reports.Paths) == 0 {
		fmt.Println("no spatial reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tFILE\tSIZE")
	for _, path := range reports.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", spatial.ChannelName(path), filepath.Base(path), info.Size())
	}
	return w.Flush()
}

// loadShownChannels decodes every shown channel of the visset concurrently.
func loadShownChannels(cmd *cobra.Command, vs *visset.VisSet) (map[string]*spatial.SpatialBinary, error) {
	var paths []string
	for _, ch := range vs.Channels {
		if ch.Shown {
			paths = append(paths, filepath.Join(dataDir, ch.File))
		}
	}
	log := newLogger(logLevel, logFormat, os.Stderr)
	return spatial.LoadAll(context.Background(), paths, decodeOptions(), log)
}

func surveySources(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	vs, err := visset.Load(vissetPath)
	if err != nil {
		return err
	}
	channels, err := loadShownChannels(cmd, vs)
	if err != nil {
		return err
	}
	reg, err := vs.Survey(channels)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tKIND\tNAME\tMIN\tMAX")
	for _, key := range reg.Keys() {
		src, _ := reg.Get(key)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.6g\t%.6g\n",
			src.Key, src.Kind, src.FriendlyName, src.Min, src.Max)
	}
	return w.Flush()
}

func evalBinding(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	vs, err := visset.Load(vissetPath)
	if err != nil {
		return err
	}
	channels, err := loadShownChannels(cmd, vs)
	if err != nil {
		return err
	}
	reg, err := vs.Survey(channels)
	if err != nil {
		return err
	}
	grad, err := gradient.Parse(gradientSpec)
	if err != nil {
		return err
	}

	b := binding.New(reg.Resolve(evalSource), binding.ReturnType(evalReturn))
	if err := b.SetFunction(evalFunction); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using identity)\n", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NODE\tRAW\tVALUE")
	src := b.Source()
	for _, node := range vs.Nodes {
		raw, err := b.Datum(node, evalTimestep)
		if err != nil {
			w.Flush()
			return err
		}
		v, _ := b.Evaluate(binding.Context{
			Value:         raw,
			Min:           src.Min,
			Max:           src.Max,
			Entity:        node,
			Timestep:      evalTimestep,
			TimestepCount: vs.TimestepCount,
			Gradient:      grad,
			GradientHigh:  1,
		})
		fmt.Fprintf(w, "%d\t%.6g\t%s\n", node.ID, raw, v)
	}
	return w.Flush()
}

func showGradient(cmd *cobra.Command, args []string) error {
	g, err := gradient.Parse(args[0])
	if err != nil {
		return err
	}
	if gradientSteps > 0 {
		if err := g.SetSteps(gradientSteps); err != nil {
			return err
		}
	}
	if gradientReverse {
		g.Reverse()
	}
	if gradientEmit {
		fmt.Println(g.String())
		return nil
	}
	if gradientSVG != "" {
		svg := export.GradientToSVG(g, 512, 32)
		if err := os.WriteFile(gradientSVG, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", gradientSVG)
		return nil
	}

	var bar strings.Builder
	for i := 0; i < sampleCount; i++ {
		loc := float64(i) / float64(sampleCount-1)
		hex := g.Sample(loc).Hex()
		bar.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	fmt.Println(bar.String())

	for _, loc := range []float64{0, 0.25, 0.5, 0.75, 1} {
		c := g.Sample(loc)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		fmt.Printf("%s %.2f  %s\n", swatch, loc, c.Hex())
	}
	return nil
}

func exportFrame(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	vs, err := visset.Load(vissetPath)
	if err != nil {
		return err
	}
	channels, err := loadShownChannels(cmd, vs)
	if err != nil {
		return err
	}
	reg, err := vs.Survey(channels)
	if err != nil {
		return err
	}
	for _, adv := range vs.FixUp(reg) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", adv)
	}

	var sinks visset.SinkSet
	switch exportLayer {
	case "points":
		if vs.Options.Points != nil {
			sinks = vs.Options.Points.Sinks
		}
	case "shapes":
		if vs.Options.Shapes != nil {
			sinks = vs.Options.Shapes.Sinks
		}
	case "heatmap":
		if vs.Options.Heatmap != nil {
			sinks = vs.Options.Heatmap.Sinks
		}
	default:
		return fmt.Errorf("unknown layer: %s", exportLayer)
	}
	if len(sinks) == 0 {
		return fmt.Errorf("layer %s declares no sinks", exportLayer)
	}

	grad, err := gradient.Parse(gradientSpec)
	if err != nil {
		return err
	}
	frame, advisories, err := vs.EvaluateFrame(sinks, visset.FrameOptions{
		Timestep: evalTimestep,
		Gradient: grad,
	})
	if err != nil {
		return err
	}
	for _, adv := range advisories {
		fmt.Fprintf(os.Stderr, "warning: %v\n", adv)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	switch exportFormat {
	case "json":
		return export.FrameJSON(out, vs, sinks.Keys(), evalTimestep, frame)
	case "csv":
		return export.FrameCSV(out, vs, sinks.Keys(), evalTimestep, frame)
	}
	return fmt.Errorf("unknown format: %s", exportFormat)
}

func inspectChannel(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	sb, err := decodeFile(args[0], decodeOptions())
	if err != nil {
		return err
	}
	return tui.Run(sb)
}
