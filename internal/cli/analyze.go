package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	cfgpkg "github.com/ankestat/ankestat/internal/config"
	"github.com/ankestat/ankestat/internal/survey"
	"github.com/spf13/cobra"
)

var (
	anaMin        int
	anaMax        int
	anaLabelsPath string
	anaReverse    []string
	anaGroupBy    []string
	anaAutoDetect bool
	anaMaxRows    int
	anaMaxCols    int
	anaFormat     string
	anaOutputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.csv>",
	Short: "Analyze a survey CSV and report per-question and reliability statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		sc, err := buildScaleConfig()
		if err != nil {
			return err
		}
		report, err := survey.Process(raw, sc)
		if err != nil {
			if pe, ok := survey.AsProcessingError(err); ok {
				return fmt.Errorf("%s: %s", pe.Code, pe.Message)
			}
			return err
		}
		if debug {
			fmt.Fprintf(os.Stderr, "decoded as %s, %d rows, %d questions, %d warnings\n",
				report.Encoding, report.Rows, len(report.Questions), len(report.Warnings))
		}

		out, err := renderReport(report, sc, outputFormat())
		if err != nil {
			return err
		}
		if anaOutputPath != "" {
			return os.WriteFile(anaOutputPath, out, 0o644)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&anaMin, "min", 0, "scale minimum (overrides config)")
	analyzeCmd.Flags().IntVar(&anaMax, "max", 0, "scale maximum (overrides config)")
	analyzeCmd.Flags().StringVar(&anaLabelsPath, "labels", "", "YAML file mapping answer labels to numeric values")
	analyzeCmd.Flags().StringSliceVar(&anaReverse, "reverse", nil, "question labels to reverse score (repeatable)")
	analyzeCmd.Flags().StringSliceVar(&anaGroupBy, "group-by", nil, "columns to group statistics by (repeatable)")
	analyzeCmd.Flags().BoolVar(&anaAutoDetect, "auto-detect", false, "keep only columns whose answers look like scale values")
	analyzeCmd.Flags().IntVar(&anaMaxRows, "max-rows", 0, "maximum data rows accepted (overrides config)")
	analyzeCmd.Flags().IntVar(&anaMaxCols, "max-cols", 0, "maximum columns accepted (overrides config)")
	analyzeCmd.Flags().StringVar(&anaFormat, "format", "", "output format: text|json|csv")
	analyzeCmd.Flags().StringVar(&anaOutputPath, "out", "", "write output to file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}

// buildScaleConfig merges defaults, the loaded config file and flags into
// the scale configuration handed to the core. Flags win.
func buildScaleConfig() (survey.ScaleConfig, error) {
	sc := survey.DefaultScaleConfig()
	if cfg != nil {
		if cfg.ScaleMin != 0 || cfg.ScaleMax != 0 {
			sc.Min, sc.Max = cfg.ScaleMin, cfg.ScaleMax
		}
		if cfg.MaxRows > 0 {
			sc.MaxRows = cfg.MaxRows
		}
		if cfg.MaxColumns > 0 {
			sc.MaxColumns = cfg.MaxColumns
		}
		if cfg.MaxUploadBytes > 0 {
			sc.MaxBytes = cfg.MaxUploadBytes
		}
		sc.GroupBy = cfg.GroupingColumns
		sc.ReverseColumns = cfg.ReverseColumns
		sc.AutoDetect = cfg.AutoDetect
		if cfg.LabelMapFile != "" && anaLabelsPath == "" {
			anaLabelsPath = cfg.LabelMapFile
		}
	}
	if anaMin != 0 || anaMax != 0 {
		sc.Min, sc.Max = anaMin, anaMax
	}
	if anaMaxRows > 0 {
		sc.MaxRows = anaMaxRows
	}
	if anaMaxCols > 0 {
		sc.MaxColumns = anaMaxCols
	}
	if len(anaGroupBy) > 0 {
		sc.GroupBy = anaGroupBy
	}
	if len(anaReverse) > 0 {
		sc.ReverseColumns = anaReverse
	}
	if anaAutoDetect {
		sc.AutoDetect = true
	}
	if anaLabelsPath != "" {
		m, err := cfgpkg.LoadLabelMap(anaLabelsPath)
		if err != nil {
			return sc, err
		}
		sc.LabelMap = m
	}
	return sc, nil
}

func outputFormat() string {
	if anaFormat != "" {
		return anaFormat
	}
	if cfg != nil && cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return "text"
}

func renderReport(r *survey.Report, sc survey.ScaleConfig, format string) ([]byte, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "csv":
		return survey.WriteReportCSV(r, sc.Min, sc.Max)
	case "text", "":
		return renderText(r), nil
	default:
		return nil, fmt.Errorf("unsupported --format: %s (use text|json|csv)", format)
	}
}

// renderText prints the classic per-question table. Column abbreviations
// follow the usual survey-report conventions: N, AS (arithmetic mean), SD,
// Median, Ske(wness), Kur(tosis), Max D and K-S p for the
// Kolmogorov-Smirnov normality test.
func renderText(r *survey.Report) []byte {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Question\tN\tMissing\tAS\tSD\tMedian\tMode\tSke\tKur\tMax D\tK-S p")
	for _, q := range r.Questions {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			q.Label, q.ValidCount, q.MissingCount,
			fnum(q.Mean), fnum(q.StdDev), fnum(q.Median), inum(q.Mode),
			fnum(q.Skewness), fnum(q.Kurtosis), fnum(q.KSStatistic), fnum(q.KSPValue))
	}
	w.Flush()

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Respondents (accepted rows): %d\n", r.Rows)
	fmt.Fprintf(&sb, "Overall mean: %s\n", fnum(r.Aggregate.OverallMean))
	fmt.Fprintf(&sb, "Cronbach's alpha: %s (questions: %d, complete respondents: %d)\n",
		fnum(r.Aggregate.CronbachAlpha), r.Aggregate.Questions, r.Aggregate.CompleteRespondents)

	for _, warn := range r.Warnings {
		fmt.Fprintf(&sb, "warning: row %d skipped: %s\n", warn.Row, warn.Reason)
	}
	if len(r.GroupableColumns) > 0 {
		fmt.Fprintf(&sb, "Groupable columns: %s\n", strings.Join(r.GroupableColumns, ", "))
	}

	keys := make([]string, 0, len(r.Groupings))
	for key := range r.Groupings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool { return groupIndex(keys[a]) < groupIndex(keys[b]) })
	for _, key := range keys {
		info := r.Groupings[key]
		fmt.Fprintf(&sb, "\nGrouped by %s:\n", info.Label)
		for _, gv := range r.Groups[key] {
			fmt.Fprintf(&sb, "  %s (%d rows):\n", gv.Value, gv.Rows)
			for _, q := range gv.Questions {
				fmt.Fprintf(&sb, "    %s: N=%d AS=%s SD=%s\n", q.Label, q.ValidCount, fnum(q.Mean), fnum(q.StdDev))
			}
		}
	}
	return []byte(sb.String())
}

// groupIndex extracts the numeric suffix of a group_<idx> key so group_10
// sorts after group_2.
func groupIndex(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "group_"))
	if err != nil {
		return 0
	}
	return n
}

func fnum(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 3, 64)
}

func inum(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
