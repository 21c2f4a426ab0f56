package ui

import (
	"testing"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"go", "msvc", "itanium"}

	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{
			name:     "close typo",
			target:   "msvcc",
			expected: []string{"msvc"},
		},
		{
			name:     "case insensitive",
			target:   "MSVC",
			expected: []string{"msvc"},
		},
		{
			name:     "transposed letters",
			target:   "og",
			expected: []string{"go"},
		},
		{
			name:     "no match within distance",
			target:   "armclang",
			expected: nil,
		},
		{
			name:     "empty target matches only short candidates",
			target:   "",
			expected: []string{"go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.target, candidates)
			if len(got) != len(tt.expected) {
				t.Fatalf("Suggest(%q) = %v, want %v", tt.target, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Suggest(%q)[%d] = %q, want %q", tt.target, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSuggestOrdersByDistance(t *testing.T) {
	candidates := []string{"show", "shave", "shot"}

	got := Suggest("shoe", candidates)
	if len(got) < 2 {
		t.Fatalf("expected at least 2 suggestions, got %v", got)
	}
	// "show" and "shot" are distance 1, "shave" is distance 2.
	if got[len(got)-1] != "shave" {
		t.Errorf("expected farthest candidate last, got %v", got)
	}
}

func TestSuggestCapsResults(t *testing.T) {
	candidates := []string{"aaa", "aab", "aba", "abb", "baa"}

	got := Suggest("aaa", candidates)
	if len(got) > maxSuggestions {
		t.Errorf("Suggest returned %d results, cap is %d", len(got), maxSuggestions)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"go", "og", 2},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.expected {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
