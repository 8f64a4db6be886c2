package survey

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// WriteReportCSV renders the per-question statistics table as CSV, one row
// per question in original column order. Undefined statistics render as
// "-". Frequency counts get one trailing column per scale value.
func WriteReportCSV(r *Report, scaleMin, scaleMax int) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"question", "valid_n", "missing", "mean", "median", "mode",
		"std_dev", "skewness", "kurtosis", "ks_d", "ks_p",
	}
	for v := scaleMin; v <= scaleMax; v++ {
		header = append(header, "freq_"+itoa(v))
	}
	_ = w.Write(header)

	for _, q := range r.Questions {
		rec := []string{
			q.Label,
			itoa(q.ValidCount),
			itoa(q.MissingCount),
			fcell(q.Mean),
			fcell(q.Median),
			icell(q.Mode),
			fcell(q.StdDev),
			fcell(q.Skewness),
			fcell(q.Kurtosis),
			fcell(q.KSStatistic),
			fcell(q.KSPValue),
		}
		for v := scaleMin; v <= scaleMax; v++ {
			rec = append(rec, itoa(q.Frequencies[v]))
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	_ = w.Write(nil)
	rec := []string{"overall_mean", fcell(r.Aggregate.OverallMean)}
	if err := w.Write(rec); err != nil {
		return nil, err
	}
	rec = []string{"cronbach_alpha", fcell(r.Aggregate.CronbachAlpha)}
	if err := w.Write(rec); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// fcell formats a nullable statistic rounded to three decimals.
func fcell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 3, 64)
}

func icell(v *int) string {
	if v == nil {
		return "-"
	}
	return itoa(*v)
}

// itoa handles the small ints typical for Likert scores and counts.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := false
	if i < 0 {
		neg = true
		i = -i
	}
	var b [20]byte
	bp := len(b)
	for i > 0 {
		bp--
		b[bp] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		bp--
		b[bp] = '-'
	}
	return string(b[bp:])
}
