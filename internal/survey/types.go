package survey

// ScaleConfig describes the response scale a survey export is expected to
// use, plus the resource guards applied before parsing.
type ScaleConfig struct {
	// Min and Max bound the contiguous integer scale (inclusive).
	Min int `json:"min"`
	Max int `json:"max"`
	// LabelMap maps textual Likert answers (e.g. "Strongly Agree") to
	// numeric values. Keys are matched after trimming and case folding.
	LabelMap map[string]int `json:"label_map,omitempty"`
	// ReverseColumns lists question labels whose values are reverse
	// scored: a valid value v is stored as (Min+Max)-v.
	ReverseColumns []string `json:"reverse_columns,omitempty"`
	// AutoDetect keeps only columns whose data looks like scale answers
	// instead of treating every header column as a question.
	AutoDetect bool `json:"auto_detect,omitempty"`
	// GroupBy names non-question columns used for grouped statistics.
	GroupBy []string `json:"group_by,omitempty"`
	// Guards enforced before parsing. Zero means default.
	MaxRows    int `json:"max_rows,omitempty"`
	MaxColumns int `json:"max_columns,omitempty"`
	MaxBytes   int `json:"max_bytes,omitempty"`
}

const (
	DefaultScaleMin   = 1
	DefaultScaleMax   = 5
	DefaultMaxRows    = 100000
	DefaultMaxColumns = 512
	DefaultMaxBytes   = 16 << 20
)

// DefaultScaleConfig returns the 1..5 scale with default guards.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		Min:        DefaultScaleMin,
		Max:        DefaultScaleMax,
		MaxRows:    DefaultMaxRows,
		MaxColumns: DefaultMaxColumns,
		MaxBytes:   DefaultMaxBytes,
	}
}

func (c ScaleConfig) withDefaults() ScaleConfig {
	if c.Min == 0 && c.Max == 0 {
		c.Min, c.Max = DefaultScaleMin, DefaultScaleMax
	}
	if c.MaxRows == 0 {
		c.MaxRows = DefaultMaxRows
	}
	if c.MaxColumns == 0 {
		c.MaxColumns = DefaultMaxColumns
	}
	if c.MaxBytes == 0 {
		c.MaxBytes = DefaultMaxBytes
	}
	return c
}

// QuestionColumn identifies a survey item detected in the header.
type QuestionColumn struct {
	Index    int            `json:"index"` // column index in the source CSV
	Label    string         `json:"label"`
	Min      int            `json:"min"`
	Max      int            `json:"max"`
	LabelMap map[string]int `json:"-"`
	Reverse  bool           `json:"reverse_scored,omitempty"`
}

// GroupColumn identifies a non-question column used for grouping.
type GroupColumn struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// Cell is one respondent's answer to one question. A cell is either a
// valid in-range value or Missing, never both.
type Cell struct {
	Value   int  // scored value (after reverse coding)
	Raw     int  // value as parsed, before reverse coding
	Missing bool
}

// Warning records a recoverable input problem, e.g. a skipped row.
type Warning struct {
	Row    int    `json:"row"` // 1-based data row index
	Reason string `json:"reason"`
}

// Matrix is the respondents x questions grid produced by parsing. It is
// owned by a single processing request and never mutated afterwards.
type Matrix struct {
	Columns  []QuestionColumn
	Rows     [][]Cell
	Warnings []Warning

	// Grouping columns and, per accepted row, their literal values.
	GroupColumns []GroupColumn
	GroupValues  [][]string
}
