package survey

import (
	"math"
	"sort"
)

// skewness returns the population skewness g1 = m3 / m2^(3/2).
func skewness(values []float64, mean float64) float64 {
	m2, m3, _ := centralMoments(values, mean)
	return m3 / math.Pow(m2, 1.5)
}

// kurtosis returns the excess kurtosis g2 = m4 / m2^2 - 3, so a normal
// distribution scores 0.
func kurtosis(values []float64, mean float64) float64 {
	m2, _, m4 := centralMoments(values, mean)
	return m4/(m2*m2) - 3
}

func centralMoments(values []float64, mean float64) (m2, m3, m4 float64) {
	n := float64(len(values))
	for _, v := range values {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	return m2 / n, m3 / n, m4 / n
}

// ksNormal runs a one-sample Kolmogorov-Smirnov test of the values against
// the normal distribution N(mean, sd). It returns the statistic D and the
// asymptotic two-sided p-value.
func ksNormal(values []float64, mean, sd float64) (d, p float64) {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	n := float64(len(s))

	for i, x := range s {
		cdf := normalCDF(x, mean, sd)
		lo := cdf - float64(i)/n
		hi := float64(i+1)/n - cdf
		if lo > d {
			d = lo
		}
		if hi > d {
			d = hi
		}
	}
	return d, ksPValue(d, len(s))
}

func normalCDF(x, mean, sd float64) float64 {
	return 0.5 * (1 + math.Erf((x-mean)/(sd*math.Sqrt2)))
}

// ksPValue approximates Q_KS via the asymptotic Kolmogorov distribution
// with the small-sample correction sqrt(n) + 0.12 + 0.11/sqrt(n).
func ksPValue(d float64, n int) float64 {
	sn := math.Sqrt(float64(n))
	lambda := (sn + 0.12 + 0.11/sn) * d
	if lambda <= 0 {
		return 1
	}
	var (
		sum  float64
		sign = 1.0
		prev = 0.0
	)
	for j := 1; j <= 100; j++ {
		term := sign * math.Exp(-2*float64(j*j)*lambda*lambda)
		sum += term
		a := math.Abs(term)
		if a <= 0.001*prev || a <= 1e-8*math.Abs(sum) {
			p := 2 * sum
			if p < 0 {
				return 0
			}
			if p > 1 {
				return 1
			}
			return p
		}
		prev = a
		sign = -sign
	}
	// No convergence: the statistic is so small the test is uninformative.
	return 1
}
