package catalog

import (
	"math"
	"testing"
)

func TestFilter(t *testing.T) {
	items := Sample().Items(Movies, "popular")

	tests := []struct {
		query string
		want  int
	}{
		{"", len(items)},
		{"   ", len(items)},
		{"dune", 1},
		{"DUNE", 1},
		{"zzz", 0},
	}

	for _, tt := range tests {
		if got := Filter(items, tt.query); len(got) != tt.want {
			t.Errorf("Filter(%q) returned %d items, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	items := Sample().Items(Movies, "popular")

	it, ok := Suggest(items, "dune part 2")
	if !ok || it.ID != 693134 {
		t.Fatalf("expected Dune: Part Two, got %+v (ok=%v)", it, ok)
	}

	if it, ok := Suggest(items, "zzz"); ok {
		t.Errorf("expected no suggestion, got %s", it.Title)
	}
	if _, ok := Suggest(items, "  "); ok {
		t.Error("expected no suggestion for a blank query")
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Dune: Part Two", "dune pt 2"},
		{"Deadpool & Wolverine", "deadpool & wolverine"},
		{"Gladiator II", "gladiator 2"},
		{"Spider-Man:  Into the Spider-Verse", "spider man into the spider verse"},
	}

	for _, tt := range tests {
		if got := NormalizeTitle(tt.input); got != tt.expected {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"abc", "abc", 1},
		{"", "abc", 0},
		{"abc", "abd", 2.0 / 3},
		{"kitten", "sitting", 4.0 / 7},
	}

	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
