package survey

import "testing"

func mustSchema(t *testing.T, header []string, cfg ScaleConfig) []QuestionColumn {
	t.Helper()
	cols, err := DetectSchema(header, cfg)
	if err != nil {
		t.Fatalf("DetectSchema error: %v", err)
	}
	return cols
}

func TestParseRowsBasic(t *testing.T) {
	cols := mustSchema(t, []string{"Q1", "Q2"}, DefaultScaleConfig())
	rows := [][]string{{"3", "5"}, {"", "2"}, {"1", "1"}}
	m := ParseRows(rows, 2, cols, nil)

	if len(m.Rows) != 3 {
		t.Fatalf("expected 3 accepted rows, got %d", len(m.Rows))
	}
	if len(m.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", m.Warnings)
	}
	if m.Rows[0][0].Value != 3 || m.Rows[0][1].Value != 5 {
		t.Fatalf("row 0 parsed wrong: %+v", m.Rows[0])
	}
	if !m.Rows[1][0].Missing {
		t.Fatalf("blank cell should be missing")
	}
	if m.Rows[1][1].Value != 2 {
		t.Fatalf("row 1 Q2 parsed wrong: %+v", m.Rows[1][1])
	}
}

func TestParseRowsColumnCountMismatch(t *testing.T) {
	cols := mustSchema(t, []string{"Q1", "Q2"}, DefaultScaleConfig())
	rows := [][]string{{"1", "2", "3"}, {"4", "5"}}
	m := ParseRows(rows, 2, cols, nil)

	if len(m.Rows) != 1 {
		t.Fatalf("expected 1 accepted row, got %d", len(m.Rows))
	}
	if len(m.Warnings) != 1 {
		t.Fatalf("expected exactly 1 warning, got %+v", m.Warnings)
	}
	if m.Warnings[0].Row != 1 {
		t.Fatalf("warning should reference data row 1, got %d", m.Warnings[0].Row)
	}
}

func TestParseCellMissingVariants(t *testing.T) {
	col := QuestionColumn{Label: "Q", Min: 1, Max: 5}
	for _, lit := range []string{"", "   ", "abc", "7", "0", "-1", "3.7"} {
		if c := parseCell(lit, col); !c.Missing {
			t.Fatalf("literal %q should be missing, got %+v", lit, c)
		}
	}
	for lit, want := range map[string]int{"3": 3, " 5 ": 5, "1": 1, "4.0": 4} {
		c := parseCell(lit, col)
		if c.Missing || c.Value != want {
			t.Fatalf("literal %q: expected %d, got %+v", lit, want, c)
		}
	}
}

func TestParseCellLabelMap(t *testing.T) {
	cfg := DefaultScaleConfig()
	cfg.LabelMap = map[string]int{
		"Strongly Disagree": 1,
		"Disagree":          2,
		"Neutral":           3,
		"Agree":             4,
		"Strongly Agree":    5,
	}
	cols := mustSchema(t, []string{"Q1"}, cfg)

	c := parseCell("  strongly agree ", cols[0])
	if c.Missing || c.Value != 5 {
		t.Fatalf("label lookup should fold case and trim, got %+v", c)
	}
	// Numeric literals still parse when a label map is present.
	if c := parseCell("2", cols[0]); c.Missing || c.Value != 2 {
		t.Fatalf("numeric fallback broken: %+v", c)
	}
	if c := parseCell("Whatever", cols[0]); !c.Missing {
		t.Fatalf("unknown label should be missing, got %+v", c)
	}
}

func TestParseCellReverseScoring(t *testing.T) {
	cfg := DefaultScaleConfig()
	cfg.ReverseColumns = []string{"Q1"}
	cols := mustSchema(t, []string{"Q1"}, cfg)

	c := parseCell("2", cols[0])
	if c.Missing || c.Value != 4 || c.Raw != 2 {
		t.Fatalf("expected 2 reverse scored to 4 with raw 2, got %+v", c)
	}
}

func TestParseRowsGroupValues(t *testing.T) {
	cols := mustSchema(t, []string{"Q1"}, DefaultScaleConfig())
	groups := []GroupColumn{{Index: 1, Label: "Gender"}}
	rows := [][]string{{"3", " f "}, {"4", "m"}}
	m := ParseRows(rows, 2, cols, groups)

	if len(m.GroupValues) != 2 {
		t.Fatalf("expected group values for both rows, got %+v", m.GroupValues)
	}
	if m.GroupValues[0][0] != "f" || m.GroupValues[1][0] != "m" {
		t.Fatalf("group values wrong: %+v", m.GroupValues)
	}
}
