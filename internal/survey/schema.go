package survey

import (
	"fmt"
	"strings"
)

// normalizeLabel prepares a literal for label-map lookups.
func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DetectSchema turns a header row into the ordered list of question
// columns. Duplicate labels are suffixed with an ordinal counter so every
// column stays uniquely addressable; an empty header is fatal.
func DetectSchema(header []string, cfg ScaleConfig) ([]QuestionColumn, error) {
	cfg = cfg.withDefaults()
	if cfg.Min >= cfg.Max {
		return nil, NewSchemaError(fmt.Sprintf("invalid scale range %d..%d", cfg.Min, cfg.Max))
	}
	if len(header) == 0 {
		return nil, NewSchemaError("empty header row")
	}

	labelMap := make(map[string]int, len(cfg.LabelMap))
	for k, v := range cfg.LabelMap {
		labelMap[normalizeLabel(k)] = v
	}
	reverse := make(map[string]bool, len(cfg.ReverseColumns))
	for _, l := range cfg.ReverseColumns {
		reverse[strings.TrimSpace(l)] = true
	}

	seen := map[string]int{}
	cols := make([]QuestionColumn, 0, len(header))
	for i, cell := range header {
		label := strings.TrimSpace(cell)
		if label == "" {
			label = fmt.Sprintf("Column %d", i+1)
		}
		seen[label]++
		if n := seen[label]; n > 1 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		cols = append(cols, QuestionColumn{
			Index:    i,
			Label:    label,
			Min:      cfg.Min,
			Max:      cfg.Max,
			LabelMap: labelMap,
			Reverse:  reverse[label],
		})
	}
	return cols, nil
}

// DetectLikertColumns keeps only the question columns whose data rows look
// like scale answers: at least one parseable value, and every parseable
// value inside the scale range. Columns failing the test are dropped, not
// rejected, so free-text and demographic columns pass through untouched.
func DetectLikertColumns(header []string, rows [][]string, cfg ScaleConfig) ([]QuestionColumn, error) {
	cols, err := DetectSchema(header, cfg)
	if err != nil {
		return nil, err
	}
	out := make([]QuestionColumn, 0, len(cols))
	for _, col := range cols {
		if isLikertColumn(rows, col) {
			out = append(out, col)
		}
	}
	return out, nil
}

func isLikertColumn(rows [][]string, col QuestionColumn) bool {
	valid := 0
	for _, row := range rows {
		if col.Index >= len(row) {
			continue
		}
		lit := strings.TrimSpace(row[col.Index])
		if lit == "" {
			continue
		}
		v, ok := parseScaleValue(lit, col.LabelMap)
		if !ok {
			// Unparseable answers are skipped like blanks; they become
			// missing cells later, not grounds for dropping the column.
			continue
		}
		if v < col.Min || v > col.Max {
			return false
		}
		valid++
	}
	return valid > 0
}

const (
	multiSelectThreshold  = 0.1
	uniquePerRowThreshold = 0.9
)

// DetectGroupableColumns finds demographic-style columns suitable for
// grouped statistics. A column qualifies when it is not a question column,
// holds categorical (non scale-like) values, is not multi-select
// (semicolon-separated answers), and is not ID-like (unique per row).
// A dataset with a single data row has nothing to group.
func DetectGroupableColumns(header []string, rows [][]string, questions []QuestionColumn) []GroupColumn {
	if len(rows) <= 1 {
		return nil
	}
	questionIdx := make(map[int]bool, len(questions))
	var labelMap map[string]int
	for _, q := range questions {
		questionIdx[q.Index] = true
		labelMap = q.LabelMap
	}

	out := []GroupColumn{}
	for i, cell := range header {
		if questionIdx[i] {
			continue
		}
		values := columnValues(rows, i)
		if len(values) == 0 {
			continue
		}
		if !isCategorical(values, labelMap) {
			continue
		}
		if isMultiSelect(values) {
			continue
		}
		if isUniquePerRow(values) {
			continue
		}
		out = append(out, GroupColumn{Index: i, Label: strings.TrimSpace(cell)})
	}
	return out
}

func columnValues(rows [][]string, idx int) []string {
	out := []string{}
	for _, row := range rows {
		if idx >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[idx])
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// isCategorical reports whether a column holds non-numeric values. A single
// numeric outlier does not make a column numeric; the column counts as
// numeric only when every non-blank value parses.
func isCategorical(values []string, labelMap map[string]int) bool {
	for _, v := range values {
		if _, ok := parseScaleValue(v, labelMap); !ok {
			return true
		}
	}
	return false
}

func isMultiSelect(values []string) bool {
	n := 0
	for _, v := range values {
		if strings.Contains(v, ";") {
			n++
		}
	}
	return float64(n)/float64(len(values)) > multiSelectThreshold
}

func isUniquePerRow(values []string) bool {
	uniq := make(map[string]struct{}, len(values))
	for _, v := range values {
		uniq[v] = struct{}{}
	}
	return float64(len(uniq))/float64(len(values)) >= uniquePerRowThreshold
}
