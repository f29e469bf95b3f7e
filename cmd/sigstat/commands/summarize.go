// Package commands implements the sigstat CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sigstat-io/sigstat/pkg/config"
	"github.com/sigstat-io/sigstat/pkg/stats"
)

// maxPrecision caps the --precision flag; more digits add no information
// for a float64.
const maxPrecision = 17

// SummarizeCommand holds the flags for the summarize command.
type SummarizeCommand struct {
	output     string
	format     string
	weighting  string
	precision  int
	noColor    bool
	configPath string
}

// NewSummarizeCommand creates and configures the summarize command.
func NewSummarizeCommand() *cobra.Command {
	cmd := &SummarizeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Compute summary statistics for a sample sequence",
		Long: `Summarize reads whitespace- or comma-separated floating-point samples
from a file (or stdin when no file is given) and prints count, min, max,
mean, median, p95, variance, and standard deviation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", config.FormatTable, "Output format: table, csv, or json")
	cobraCmd.Flags().StringVarP(&cmd.weighting, "weighting", "w", "", "Variance weighting: sample (divide by N-1) or population (divide by N)")
	cobraCmd.Flags().IntVarP(&cmd.precision, "precision", "p", 0, "Digits after the decimal point")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file (default: sigstat.yaml)")

	return cobraCmd
}

// Run executes the summarize command.
func (c *SummarizeCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	format := c.format
	if !cmd.Flags().Changed("format") {
		format = cfg.Output.Format
	}

	precision := c.precision
	if !cmd.Flags().Changed("precision") {
		precision = cfg.Output.Precision
	}

	precision = stats.Clamp(precision, 0, maxPrecision)

	weighting, err := c.resolveWeighting(cmd, cfg)
	if err != nil {
		return err
	}

	if c.noColor || cfg.Output.NoColor {
		color.NoColor = true
	}

	data, err := c.readInput(args)
	if err != nil {
		return err
	}

	samples, err := parseSamples(data)
	if err != nil {
		return err
	}

	result, err := summarize(samples, weighting)
	if err != nil {
		return err
	}

	writer, closeWriter, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeWriter()

	return result.render(writer, format, precision)
}

// resolveWeighting picks the weighting from the flag, falling back to config.
func (c *SummarizeCommand) resolveWeighting(cmd *cobra.Command, cfg *config.Config) (stats.Weighting, error) {
	if !cmd.Flags().Changed("weighting") {
		return cfg.Weighting()
	}

	w, err := stats.ParseWeighting(c.weighting)
	if err != nil {
		return stats.Sample, fmt.Errorf("%w: %q", err, c.weighting)
	}

	return w, nil
}

// readInput reads the raw sample text from the named file or stdin.
func (c *SummarizeCommand) readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read samples: %w", err)
		}

		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return data, nil
}

// openOutput returns the destination writer and a close function.
func (c *SummarizeCommand) openOutput() (io.Writer, func(), error) {
	if c.output == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(c.output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}

// parseSamples splits text on whitespace and commas and parses each token as
// a float64.
func parseSamples(data []byte) ([]float64, error) {
	tokens := strings.FieldsFunc(string(data), func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	samples := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %w", tok, err)
		}

		samples = append(samples, v)
	}

	return samples, nil
}

// summary holds the computed statistics for one sample sequence.
type summary struct {
	Weighting string  `json:"weighting"`
	Count     int     `json:"count"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
	P95       float64 `json:"p95"`
	Variance  float64 `json:"variance"`
	StdDev    float64 `json:"stddev"`
}

// summarize computes the full summary, failing on input too short for the
// chosen weighting.
func summarize(samples []float64, w stats.Weighting) (*summary, error) {
	mean, err := stats.MeanChecked(samples)
	if err != nil {
		return nil, err
	}

	variance, err := stats.VarianceChecked(samples, w)
	if err != nil {
		return nil, err
	}

	stddev, err := stats.StdDevChecked(samples, w)
	if err != nil {
		return nil, err
	}

	return &summary{
		Weighting: w.String(),
		Count:     len(samples),
		Min:       stats.Min(samples),
		Max:       stats.Max(samples),
		Mean:      mean,
		Median:    stats.Median(samples),
		P95:       stats.Percentile(samples, stats.PercentileP95),
		Variance:  variance,
		StdDev:    stddev,
	}, nil
}

// render writes the summary in the requested format.
func (s *summary) render(writer io.Writer, format string, precision int) error {
	switch format {
	case config.FormatJSON:
		return s.renderJSON(writer)
	case config.FormatCSV:
		return s.renderCSV(writer, precision)
	case config.FormatTable:
		return s.renderTable(writer, precision)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// rows returns the statistics in display order.
func (s *summary) rows(precision int) [][2]string {
	fmtFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	return [][2]string{
		{"count", strconv.Itoa(s.Count)},
		{"min", fmtFloat(s.Min)},
		{"max", fmtFloat(s.Max)},
		{"mean", fmtFloat(s.Mean)},
		{"median", fmtFloat(s.Median)},
		{"p95", fmtFloat(s.P95)},
		{"variance", fmtFloat(s.Variance)},
		{"stddev", fmtFloat(s.StdDev)},
	}
}

func (s *summary) renderTable(writer io.Writer, precision int) error {
	title := color.New(color.FgCyan, color.Bold)
	_, _ = title.Fprintf(writer, "Summary (%s weighting, n=%d)\n", s.Weighting, s.Count)

	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.AppendHeader(table.Row{"Statistic", "Value"})

	for _, row := range s.rows(precision) {
		tw.AppendRow(table.Row{row[0], row[1]})
	}

	tw.Render()

	return nil
}

func (s *summary) renderCSV(writer io.Writer, precision int) error {
	_, err := fmt.Fprintln(writer, "statistic,value")
	if err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	_, err = fmt.Fprintf(writer, "weighting,%s\n", s.Weighting)
	if err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	for _, row := range s.rows(precision) {
		_, err = fmt.Fprintf(writer, "%s,%s\n", row[0], row[1])
		if err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	return nil
}

func (s *summary) renderJSON(writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(s)
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}
