package survey

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// GroupingInfo describes one grouping column offered in a report.
type GroupingInfo struct {
	Label  string   `json:"label"`
	Column string   `json:"column"`
	Values []string `json:"values"`
}

// Report is the top-level output of a processing request. It is a plain
// serializable value: every statistic field is present even when null, so
// consumers can render "N/A" uniformly.
type Report struct {
	// ID is derived from the input fingerprint, so re-processing the
	// same data yields an identical report.
	ID          string `json:"id"`
	Fingerprint string `json:"fingerprint"`
	Encoding    string `json:"encoding"`

	Rows      int                  `json:"rows"` // accepted respondent rows
	Questions []QuestionStatistics `json:"questions"`
	Aggregate AggregateStatistics  `json:"aggregate"`
	Warnings  []Warning            `json:"warnings"`

	// Grouped statistics keyed group_<idx>, mirroring the grouping
	// request order. Empty unless grouping columns were selected.
	Groupings map[string]GroupingInfo           `json:"groupings,omitempty"`
	Groups    map[string][]GroupValueStatistics `json:"groups,omitempty"`

	// Columns that could be used for grouping on a follow-up request.
	GroupableColumns []string `json:"groupable_columns,omitempty"`
}

// AssembleReport packages the derived statistics into the final report.
// Purely structural: no further computation happens here.
func AssembleReport(text, encoding string, m *Matrix, questions []QuestionStatistics, agg AggregateStatistics, groupings map[string]GroupingInfo, groups map[string][]GroupValueStatistics, groupable []string) *Report {
	fp := fingerprint(text)
	return &Report{
		ID:               uuid.NewSHA1(uuid.NameSpaceOID, []byte("ankestat:"+fp)).String(),
		Fingerprint:      fp,
		Encoding:         encoding,
		Rows:             len(m.Rows),
		Questions:        questions,
		Aggregate:        agg,
		Warnings:         m.Warnings,
		Groupings:        groupings,
		Groups:           groups,
		GroupableColumns: groupable,
	}
}

// fingerprint identifies the decoded input text so repeated uploads of the
// same data are recognizable across requests without retaining the data.
func fingerprint(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
