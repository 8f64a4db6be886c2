package survey

import "sort"

// GroupValueStatistics holds per-question statistics for the subset of
// respondents sharing one value of a grouping column.
type GroupValueStatistics struct {
	Value     string               `json:"value"`
	Rows      int                  `json:"rows"`
	Questions []QuestionStatistics `json:"questions"`
}

// ComputeGroupedStatistics computes per-question statistics within each
// distinct value of every grouping column. Groups are keyed group_<idx> in
// selection order; values are sorted for stable output. Questions with no
// valid responses inside a group are omitted from that group (the overall
// statistics already report them with explicit nulls).
func ComputeGroupedStatistics(m *Matrix) (map[string]GroupingInfo, map[string][]GroupValueStatistics) {
	if len(m.GroupColumns) == 0 {
		return nil, nil
	}
	groupings := make(map[string]GroupingInfo, len(m.GroupColumns))
	groups := make(map[string][]GroupValueStatistics, len(m.GroupColumns))

	for gi, gc := range m.GroupColumns {
		byValue := map[string][]int{}
		for ri := range m.Rows {
			v := m.GroupValues[ri][gi]
			if v == "" {
				continue
			}
			byValue[v] = append(byValue[v], ri)
		}
		if len(byValue) == 0 {
			continue
		}
		values := make([]string, 0, len(byValue))
		for v := range byValue {
			values = append(values, v)
		}
		sort.Strings(values)

		key := groupKey(gi)
		groupings[key] = GroupingInfo{Label: gc.Label, Column: gc.Label, Values: values}

		out := make([]GroupValueStatistics, 0, len(values))
		for _, v := range values {
			sub := subMatrix(m, byValue[v])
			stats := ComputeQuestionStatistics(sub)
			kept := make([]QuestionStatistics, 0, len(stats))
			for _, qs := range stats {
				if qs.ValidCount > 0 {
					kept = append(kept, qs)
				}
			}
			if len(kept) == 0 {
				continue
			}
			out = append(out, GroupValueStatistics{Value: v, Rows: len(sub.Rows), Questions: kept})
		}
		groups[key] = out
	}
	return groupings, groups
}

func groupKey(idx int) string {
	return "group_" + itoa(idx)
}

func subMatrix(m *Matrix, rowIdx []int) *Matrix {
	sub := &Matrix{Columns: m.Columns, Rows: make([][]Cell, 0, len(rowIdx))}
	for _, ri := range rowIdx {
		sub.Rows = append(sub.Rows, m.Rows[ri])
	}
	return sub
}
