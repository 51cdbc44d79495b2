package sync

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// parseDollars converts a fixed-point dollar string ("0.5250") to a float
// pointer. Empty or malformed input yields nil rather than an error, so bad
// provider data degrades to a missing value instead of aborting a sync.
func parseDollars(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseTime parses an ISO 8601 timestamp, tolerating a missing zone offset.
// Nil for empty or malformed input.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return nil
		}
	}
	t = t.UTC()
	return &t
}

// strPtr maps the empty string to nil so optional provider fields persist as
// NULL instead of "".
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// chunk splits items into consecutive slices of at most size elements.
// The returned slices share the backing array with items.
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return [][]T{items}
	}
	parts := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		parts = append(parts, items[start:end])
	}
	return parts
}
