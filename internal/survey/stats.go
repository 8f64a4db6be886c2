package survey

import (
	"math"
	"sort"
)

// Minimum sample sizes for the higher moments, matching the thresholds the
// descriptive report has always used.
const (
	minSkewN     = 3
	minKurtosisN = 4
	minKSN       = 5

	// Below this the sample is effectively constant and the shape
	// statistics are numerically meaningless.
	lowVarianceEps = 1e-10
)

// QuestionStatistics is a read-only snapshot of one question's descriptive
// statistics. Undefined values are nil pointers so a serialized report
// carries an explicit null, never a silently omitted field.
type QuestionStatistics struct {
	Label        string      `json:"question"`
	ValidCount   int         `json:"valid_count"`
	MissingCount int         `json:"missing_count"`
	Mean         *float64    `json:"mean"`
	Median       *float64    `json:"median"`
	Mode         *int        `json:"mode"`
	StdDev       *float64    `json:"std_dev"`
	Skewness     *float64    `json:"skewness"`
	Kurtosis     *float64    `json:"kurtosis"`
	KSStatistic  *float64    `json:"ks_statistic"`
	KSPValue     *float64    `json:"ks_p_value"`
	Frequencies  map[int]int `json:"frequencies"`
}

// AggregateStatistics is derived from the full matrix.
type AggregateStatistics struct {
	OverallMean         *float64 `json:"overall_mean"`
	CronbachAlpha       *float64 `json:"cronbach_alpha"`
	Questions           int      `json:"questions"`
	CompleteRespondents int      `json:"complete_respondents"`
}

// ComputeQuestionStatistics computes descriptive statistics for every
// question column, in original column order.
func ComputeQuestionStatistics(m *Matrix) []QuestionStatistics {
	out := make([]QuestionStatistics, 0, len(m.Columns))
	for j, col := range m.Columns {
		cells := make([]Cell, 0, len(m.Rows))
		for _, row := range m.Rows {
			cells = append(cells, row[j])
		}
		out = append(out, computeQuestion(col, cells))
	}
	return out
}

func computeQuestion(col QuestionColumn, cells []Cell) QuestionStatistics {
	values := make([]float64, 0, len(cells))
	freq := make(map[int]int, col.Max-col.Min+1)
	for v := col.Min; v <= col.Max; v++ {
		freq[v] = 0
	}
	missing := 0
	for _, c := range cells {
		if c.Missing {
			missing++
			continue
		}
		values = append(values, float64(c.Value))
		freq[c.Value]++
	}

	qs := QuestionStatistics{
		Label:        col.Label,
		ValidCount:   len(values),
		MissingCount: missing,
		Frequencies:  freq,
	}
	if len(values) == 0 {
		return qs
	}

	mean := meanOf(values)
	qs.Mean = fptr(mean)
	qs.Median = fptr(medianOf(values))
	qs.Mode = iptr(modeOf(freq, col.Min, col.Max))

	if len(values) >= 2 {
		sd := math.Sqrt(sampleVariance(values, mean))
		qs.StdDev = fptr(sd)
		if sd > lowVarianceEps {
			if len(values) >= minSkewN {
				qs.Skewness = fptr(skewness(values, mean))
			}
			if len(values) >= minKurtosisN {
				qs.Kurtosis = fptr(kurtosis(values, mean))
			}
			if len(values) >= minKSN {
				d, p := ksNormal(values, mean, sd)
				qs.KSStatistic = fptr(d)
				qs.KSPValue = fptr(p)
			}
		}
	}
	return qs
}

// ComputeAggregateStatistics derives the overall mean and Cronbach's alpha
// from the full matrix. Alpha is defined only with at least two questions
// carrying valid responses and at least two respondents whose rows are
// complete across those questions.
func ComputeAggregateStatistics(m *Matrix) AggregateStatistics {
	agg := AggregateStatistics{}

	var sum float64
	var count int
	for _, row := range m.Rows {
		for _, c := range row {
			if c.Missing {
				continue
			}
			sum += float64(c.Value)
			count++
		}
	}
	if count > 0 {
		agg.OverallMean = fptr(sum / float64(count))
	}

	// Questions qualifying for alpha: at least one valid response.
	qualifying := []int{}
	for j := range m.Columns {
		for _, row := range m.Rows {
			if !row[j].Missing {
				qualifying = append(qualifying, j)
				break
			}
		}
	}
	agg.Questions = len(qualifying)

	// Alpha uses listwise deletion: only respondents with a complete row
	// across the qualifying questions enter the computation. Respondents
	// with missing answers still count in the per-question statistics.
	complete := make([][]float64, 0, len(m.Rows))
	for _, row := range m.Rows {
		vals := make([]float64, 0, len(qualifying))
		for _, j := range qualifying {
			if row[j].Missing {
				vals = nil
				break
			}
			vals = append(vals, float64(row[j].Value))
		}
		if vals != nil {
			complete = append(complete, vals)
		}
	}
	agg.CompleteRespondents = len(complete)

	if len(qualifying) < 2 {
		return agg
	}
	if alpha, ok := CronbachAlpha(complete); ok {
		agg.CronbachAlpha = fptr(alpha)
	}
	return agg
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func medianOf(values []float64) float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// modeOf scans the scale range in ascending order so ties deterministically
// resolve to the smallest value.
func modeOf(freq map[int]int, min, max int) int {
	mode, best := min, -1
	for v := min; v <= max; v++ {
		if freq[v] > best {
			mode, best = v, freq[v]
		}
	}
	return mode
}

// sampleVariance is Bessel-corrected; callers guarantee len(values) >= 2.
func sampleVariance(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

func populationVariance(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
