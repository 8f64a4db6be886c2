package survey

import (
	"testing"

	"github.com/google/uuid"
)

func TestReportIdentity(t *testing.T) {
	a, err := Process([]byte("Q1\n3\n4\n"), DefaultScaleConfig())
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	b, err := Process([]byte("Q1\n3\n4\n"), DefaultScaleConfig())
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	c, err := Process([]byte("Q1\n3\n5\n"), DefaultScaleConfig())
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if _, err := uuid.Parse(a.ID); err != nil {
		t.Fatalf("report id is not a uuid: %q", a.ID)
	}
	if a.ID != b.ID || a.Fingerprint != b.Fingerprint {
		t.Fatalf("identical input should produce identical identity: %+v vs %+v", a, b)
	}
	if a.ID == c.ID || a.Fingerprint == c.Fingerprint {
		t.Fatalf("different input should produce different identity")
	}
	if len(a.Fingerprint) != 64 {
		t.Fatalf("fingerprint should be 32 hex bytes, got %q", a.Fingerprint)
	}
}
