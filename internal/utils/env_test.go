package utils

import (
	"os"
	"testing"
)

func TestEnvOr(t *testing.T) {
	const key = "_ANKESTAT_TEST_ENVOR"
	os.Unsetenv(key)
	if got := EnvOr(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	os.Setenv(key, "value")
	if got := EnvOr(key, "fallback"); got != "value" {
		t.Fatalf("expected 'value', got %q", got)
	}
	os.Setenv(key, "  padded  ")
	if got := EnvOr(key, "fallback"); got != "padded" {
		t.Fatalf("expected trimmed 'padded', got %q", got)
	}
	os.Setenv(key, "   ")
	if got := EnvOr(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}
