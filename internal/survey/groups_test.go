package survey

import "testing"

func groupedMatrix(t *testing.T, header []string, rows [][]string, groupBy []string) *Matrix {
	t.Helper()
	cfg := DefaultScaleConfig()
	cfg.GroupBy = groupBy
	questions, groupCols, err := resolveColumns(header, rows, cfg)
	if err != nil {
		t.Fatalf("resolveColumns error: %v", err)
	}
	return ParseRows(rows, len(header), questions, groupCols)
}

func TestGroupedStatisticsSingleGroupMatchesOverall(t *testing.T) {
	header := []string{"Q1", "Q2", "Cohort"}
	rows := [][]string{
		{"1", "4", "a"},
		{"2", "3", "a"},
		{"5", "1", "a"},
	}
	m := groupedMatrix(t, header, rows, []string{"Cohort"})
	overall := ComputeQuestionStatistics(m)
	_, groups := ComputeGroupedStatistics(m)

	vals := groups["group_0"]
	if len(vals) != 1 || vals[0].Value != "a" {
		t.Fatalf("expected single group a, got %+v", vals)
	}
	for i, qs := range vals[0].Questions {
		if *qs.Mean != *overall[i].Mean || qs.ValidCount != overall[i].ValidCount {
			t.Fatalf("group statistics diverge from overall for %s", qs.Label)
		}
	}
}

func TestGroupedStatisticsSplitsRows(t *testing.T) {
	header := []string{"Q1", "Cohort"}
	rows := [][]string{
		{"1", "a"},
		{"2", "a"},
		{"4", "b"},
		{"5", "b"},
	}
	m := groupedMatrix(t, header, rows, []string{"Cohort"})
	_, groups := ComputeGroupedStatistics(m)

	vals := groups["group_0"]
	if len(vals) != 2 {
		t.Fatalf("expected 2 groups, got %+v", vals)
	}
	if *vals[0].Questions[0].Mean != 1.5 || *vals[1].Questions[0].Mean != 4.5 {
		t.Fatalf("group means wrong: %+v", vals)
	}
}

func TestGroupedStatisticsSkipsBlankGroupValues(t *testing.T) {
	header := []string{"Q1", "Cohort"}
	rows := [][]string{
		{"1", "a"},
		{"2", ""},
		{"3", "a"},
	}
	m := groupedMatrix(t, header, rows, []string{"Cohort"})
	groupings, groups := ComputeGroupedStatistics(m)

	if len(groupings["group_0"].Values) != 1 {
		t.Fatalf("blank value should not form a group: %+v", groupings)
	}
	if groups["group_0"][0].Rows != 2 {
		t.Fatalf("expected 2 rows in group a, got %+v", groups["group_0"])
	}
}

func TestGroupedStatisticsOmitsEmptyQuestions(t *testing.T) {
	header := []string{"Q1", "Q2", "Cohort"}
	rows := [][]string{
		{"1", "", "a"},
		{"2", "", "a"},
		{"3", "4", "b"},
	}
	m := groupedMatrix(t, header, rows, []string{"Cohort"})
	_, groups := ComputeGroupedStatistics(m)

	a := groups["group_0"][0]
	if len(a.Questions) != 1 || a.Questions[0].Label != "Q1" {
		t.Fatalf("Q2 has no valid data in group a and should be omitted: %+v", a.Questions)
	}
}

func TestNoGroupingColumns(t *testing.T) {
	m := matrixFrom(t, []string{"Q1"}, [][]string{{"1"}}, DefaultScaleConfig())
	groupings, groups := ComputeGroupedStatistics(m)
	if groupings != nil || groups != nil {
		t.Fatalf("expected no grouped output, got %+v %+v", groupings, groups)
	}
}
