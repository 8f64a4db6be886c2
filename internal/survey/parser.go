package survey

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// parseScaleValue resolves a cell literal to an integer scale value. The
// label map wins over numeric parsing so that exports mixing "Agree" and
// "4" stay consistent. Numeric literals must be whole numbers ("3.0" is
// accepted, "3.7" is not an ordinal answer).
func parseScaleValue(lit string, labelMap map[string]int) (int, bool) {
	if len(labelMap) > 0 {
		if v, ok := labelMap[normalizeLabel(lit)]; ok {
			return v, true
		}
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(lit))
	if err != nil {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// parseCell classifies one literal against its question column. A cell is
// Missing when the literal is blank, unparseable or out of range; it never
// fails the row.
func parseCell(lit string, col QuestionColumn) Cell {
	if strings.TrimSpace(lit) == "" {
		return Cell{Missing: true}
	}
	v, ok := parseScaleValue(lit, col.LabelMap)
	if !ok || v < col.Min || v > col.Max {
		return Cell{Missing: true}
	}
	scored := v
	if col.Reverse {
		scored = col.Min + col.Max - v
	}
	return Cell{Value: scored, Raw: v}
}

// ParseRows converts data rows into a response matrix. Rows whose column
// count differs from the header width are skipped and recorded as
// warnings; parsing always continues with the remaining rows. Accepted
// rows keep their original order.
func ParseRows(rows [][]string, width int, questions []QuestionColumn, groups []GroupColumn) *Matrix {
	m := &Matrix{
		Columns:      questions,
		Rows:         make([][]Cell, 0, len(rows)),
		Warnings:     []Warning{},
		GroupColumns: groups,
	}
	if len(groups) > 0 {
		m.GroupValues = make([][]string, 0, len(rows))
	}
	for i, row := range rows {
		if len(row) != width {
			m.Warnings = append(m.Warnings, Warning{
				Row:    i + 1,
				Reason: fmt.Sprintf("column count mismatch: got %d, want %d", len(row), width),
			})
			continue
		}
		cells := make([]Cell, len(questions))
		for j, col := range questions {
			cells[j] = parseCell(row[col.Index], col)
		}
		m.Rows = append(m.Rows, cells)
		if len(groups) > 0 {
			gv := make([]string, len(groups))
			for j, g := range groups {
				gv[j] = strings.TrimSpace(row[g.Index])
			}
			m.GroupValues = append(m.GroupValues, gv)
		}
	}
	return m
}
