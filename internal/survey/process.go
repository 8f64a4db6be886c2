package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Process is the single entry point of the core: raw CSV bytes in, report
// out. The pipeline is decode -> schema detection -> parse -> statistics
// -> assembly; every step allocates request-scoped values only, so
// concurrent callers need no locking. Fatal conditions return a
// *ProcessingError; row and cell level problems become warnings and
// missing cells inside the report.
func Process(raw []byte, cfg ScaleConfig) (*Report, error) {
	cfg = cfg.withDefaults()
	if len(raw) > cfg.MaxBytes {
		return nil, NewTooLargeError(fmt.Sprintf("input of %d bytes exceeds limit of %d", len(raw), cfg.MaxBytes))
	}

	text, encName, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	header, rows, err := readRecords(text)
	if err != nil {
		return nil, err
	}
	if len(rows) > cfg.MaxRows {
		return nil, NewTooLargeError(fmt.Sprintf("%d data rows exceed limit of %d", len(rows), cfg.MaxRows))
	}
	if len(header) > cfg.MaxColumns {
		return nil, NewTooLargeError(fmt.Sprintf("%d columns exceed limit of %d", len(header), cfg.MaxColumns))
	}

	questions, groupCols, err := resolveColumns(header, rows, cfg)
	if err != nil {
		return nil, err
	}

	m := ParseRows(rows, len(header), questions, groupCols)
	if len(m.Rows) == 0 {
		return nil, NewEmptyDataError("no data rows were accepted")
	}

	questionStats := ComputeQuestionStatistics(m)
	agg := ComputeAggregateStatistics(m)
	groupings, groups := ComputeGroupedStatistics(m)

	var groupable []string
	for _, gc := range DetectGroupableColumns(header, rows, questions) {
		groupable = append(groupable, gc.Label)
	}

	return AssembleReport(text, encName, m, questionStats, agg, groupings, groups, groupable), nil
}

// ProcessReader materializes the reader and processes its content. The
// caller keeps ownership of closing r.
func ProcessReader(r io.Reader, cfg ScaleConfig) (*Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, NewEncodingError(fmt.Sprintf("read input: %v", err))
	}
	return Process(raw, cfg)
}

// InspectColumns reports which columns of the input look like scale
// questions and which are usable for grouping, without computing any
// statistics. It backs the column-selection step of a two-phase upload.
func InspectColumns(raw []byte, cfg ScaleConfig) ([]QuestionColumn, []GroupColumn, error) {
	cfg = cfg.withDefaults()
	if len(raw) > cfg.MaxBytes {
		return nil, nil, NewTooLargeError(fmt.Sprintf("input of %d bytes exceeds limit of %d", len(raw), cfg.MaxBytes))
	}
	text, _, err := decodeText(raw)
	if err != nil {
		return nil, nil, err
	}
	header, rows, err := readRecords(text)
	if err != nil {
		return nil, nil, err
	}
	likert, err := DetectLikertColumns(header, rows, cfg)
	if err != nil {
		return nil, nil, err
	}
	return likert, DetectGroupableColumns(header, rows, likert), nil
}

func readRecords(text string) (header []string, rows [][]string, err error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // row width is validated during parsing
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, NewSchemaError(fmt.Sprintf("malformed csv: %v", err))
	}
	if len(records) == 0 {
		return nil, nil, NewSchemaError("empty header row")
	}
	return records[0], records[1:], nil
}

// resolveColumns picks the question and grouping columns for this request.
// Columns named in GroupBy are never questions; with AutoDetect set, only
// scale-like columns become questions.
func resolveColumns(header []string, rows [][]string, cfg ScaleConfig) ([]QuestionColumn, []GroupColumn, error) {
	var questions []QuestionColumn
	var err error
	if cfg.AutoDetect {
		questions, err = DetectLikertColumns(header, rows, cfg)
		if err != nil {
			return nil, nil, err
		}
		if len(questions) == 0 {
			return nil, nil, NewNoLikertError(fmt.Sprintf("no columns with %d-%d scale answers found", cfg.Min, cfg.Max))
		}
	} else {
		questions, err = DetectSchema(header, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(cfg.GroupBy) == 0 {
		return questions, nil, nil
	}

	selected := make(map[string]int, len(cfg.GroupBy)) // label -> selection order
	for i, l := range cfg.GroupBy {
		selected[strings.TrimSpace(l)] = i
	}
	kept := questions[:0]
	for _, q := range questions {
		if _, ok := selected[q.Label]; !ok {
			kept = append(kept, q)
		}
	}
	questions = kept
	if len(questions) == 0 {
		return nil, nil, NewSchemaError("every column was selected for grouping; nothing left to analyze")
	}

	groupCols := make([]GroupColumn, 0, len(selected))
	matched := make(map[string]bool, len(selected))
	for i, cell := range header {
		label := strings.TrimSpace(cell)
		if _, ok := selected[label]; ok {
			groupCols = append(groupCols, GroupColumn{Index: i, Label: label})
			matched[label] = true
		}
	}
	// A grouping label that matches no header column is a caller mistake,
	// most likely a typo; silently dropping it would hide the grouping.
	for _, l := range cfg.GroupBy {
		if label := strings.TrimSpace(l); !matched[label] {
			return nil, nil, NewSchemaError(fmt.Sprintf("grouping column %q not found in header", label))
		}
	}
	// group_0 always refers to the first requested grouping.
	sort.SliceStable(groupCols, func(a, b int) bool {
		return selected[groupCols[a].Label] < selected[groupCols[b].Label]
	})
	return questions, groupCols, nil
}
