package survey

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteReportCSV(t *testing.T) {
	report, err := Process([]byte("Q1,Q2\n3,5\n,2\n1,1\n"), DefaultScaleConfig())
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	out, err := WriteReportCSV(report, 1, 5)
	if err != nil {
		t.Fatalf("WriteReportCSV error: %v", err)
	}

	r := csv.NewReader(strings.NewReader(string(out)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-read error: %v", err)
	}

	header := records[0]
	if header[0] != "question" || header[len(header)-1] != "freq_5" {
		t.Fatalf("unexpected header: %+v", header)
	}
	q1 := records[1]
	if q1[0] != "Q1" || q1[1] != "2" || q1[2] != "1" {
		t.Fatalf("unexpected Q1 row: %+v", q1)
	}
	if q1[3] != "2.000" {
		t.Fatalf("mean should render rounded to 3 decimals, got %q", q1[3])
	}
}

func TestWriteReportCSVNullsRenderDash(t *testing.T) {
	// Q2 is entirely missing: its statistics are undefined.
	report, err := Process([]byte("Q1,Q2\n3,\n4,x\n"), DefaultScaleConfig())
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	out, err := WriteReportCSV(report, 1, 5)
	if err != nil {
		t.Fatalf("WriteReportCSV error: %v", err)
	}

	r := csv.NewReader(strings.NewReader(string(out)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-read error: %v", err)
	}
	q2 := records[2]
	for _, idx := range []int{3, 4, 5, 6} { // mean, median, mode, std_dev
		if q2[idx] != "-" {
			t.Fatalf("field %d should render as -, got %q (%+v)", idx, q2[idx], q2)
		}
	}
}
