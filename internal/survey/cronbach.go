package survey

// CronbachAlpha computes Cronbach's alpha for a matrix of item responses
// shaped [nRespondents][nItems]. Rows must be complete: respondents with
// missing answers are excluded before this point (listwise deletion), so
// item variances and total-score variance come from the same sample.
// Population variance (divide by N) is used consistently, which yields
// alpha = 1.0 for perfectly correlated items. The result is not clamped;
// poor internal consistency legitimately produces negative values. ok is
// false when alpha is undefined: fewer than two items, fewer than two
// respondents, or zero total-score variance.
func CronbachAlpha(matrix [][]float64) (float64, bool) {
	n := len(matrix)
	if n < 2 {
		return 0, false
	}
	k := len(matrix[0])
	if k < 2 {
		return 0, false
	}

	means := make([]float64, k)
	totals := make([]float64, n)
	for i := 0; i < n; i++ {
		row := matrix[i]
		if len(row) != k {
			return 0, false
		}
		for j := 0; j < k; j++ {
			means[j] += row[j]
			totals[i] += row[j]
		}
	}
	for j := 0; j < k; j++ {
		means[j] /= float64(n)
	}

	var sumItemVars float64
	for j := 0; j < k; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			d := matrix[i][j] - means[j]
			sum += d * d
		}
		sumItemVars += sum / float64(n)
	}

	totalVar := populationVariance(totals, meanOf(totals))
	if totalVar == 0 {
		return 0, false
	}

	kf := float64(k)
	return (kf / (kf - 1.0)) * (1.0 - (sumItemVars / totalVar)), true
}
