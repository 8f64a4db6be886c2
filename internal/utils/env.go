package utils

import (
	"os"
	"strings"
)

// EnvOr returns the value of the environment variable key, or def when the
// variable is unset or blank. Surrounding whitespace is trimmed so an
// accidentally quoted or padded export still resolves cleanly.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
