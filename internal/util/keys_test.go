package util

import (
	"slices"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{
		"2025-01-20": 1,
		"2024-04-08": 2,
		"2025-01-01": 3,
	}

	got := SortedKeys(m)
	want := []string{"2024-04-08", "2025-01-01", "2025-01-20"}
	if !slices.Equal(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}

	if len(SortedKeys(map[string]int{})) != 0 {
		t.Error("expected no keys for an empty map")
	}
}
