package database

import "testing"

func TestNormalizePassport(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "ab1234567", "AB1234567"},
		{"whitespace", "  AB1234567 ", "AB1234567"},
		{"diacritics", "čž123", "CZ123"},
		{"already canonical", "P-99001", "P-99001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePassport(tt.input); got != tt.expected {
				t.Errorf("NormalizePassport(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizePassportCollision(t *testing.T) {
	// Two spellings of the same document must canonicalize identically.
	if NormalizePassport("ab-123") != NormalizePassport("AB-123") {
		t.Error("case variants should normalize to the same passport")
	}
}
