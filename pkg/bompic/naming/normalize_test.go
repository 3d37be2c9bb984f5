package naming

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "image"},
		{"  ", "image"},
		{"X1", "X1"},
		{" padded ", "padded"},
		{"Part #1/2", "Part_#1_2"},
		{"multi  space\tname", "multi_space_name"},
		{"a<b", "a_b"},
		{`C:\parts\bolt`, "C_parts_bolt"},
		{`<>:"/\|?*`, "image"},
		{"Ø-ring 12mm", "Ø-ring_12mm"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 60)
	got := Normalize(long)
	if got != strings.Repeat("a", 50) {
		t.Errorf("Normalize(60 chars) = %q (len %d), expected 50 chars", got, len(got))
	}
}
