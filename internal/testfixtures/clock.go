package testfixtures

import (
	"testing"
	"time"
)

// At parses "2006-01-02 15:04" in UTC. Keeps test times readable.
func At(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return ts
}

// Day parses "2006-01-02" in UTC.
func Day(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return ts
}
