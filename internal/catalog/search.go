package catalog

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// MinSimilarity is the lowest score Suggest accepts
const MinSimilarity = 0.6

var (
	punctRegex  = regexp.MustCompile(`[^\p{L}\p{N}&\s]+`)
	spacesRegex = regexp.MustCompile(`\s+`)

	// Spelled variations folded to one form before comparing
	substitutions = []struct{ old, new string }{
		{" and ", " & "},
		{" part ", " pt "},
		{" ii ", " 2 "},
		{" iii ", " 3 "},
		{" iv ", " 4 "},
		{" two ", " 2 "},
		{" three ", " 3 "},
	}
)

// Filter returns the items whose title contains query, ignoring case. An
// empty query matches everything.
func Filter(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	fold := cases.Fold()
	q := fold.String(query)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold.String(it.Title), q) {
			out = append(out, it)
		}
	}
	return out
}

// Suggest returns the item whose title is closest to query, for when Filter
// finds nothing. Near-misses such as "dune part 2" find "Dune: Part Two".
func Suggest(items []Item, query string) (Item, bool) {
	q := NormalizeTitle(query)
	if q == "" {
		return Item{}, false
	}

	best, bestScore := -1, 0.0
	for i, it := range items {
		s := Similarity(q, NormalizeTitle(it.Title))
		if s >= MinSimilarity && s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return Item{}, false
	}
	return items[best], true
}

// NormalizeTitle folds case, punctuation and common spelling variations
func NormalizeTitle(title string) string {
	s := " " + cases.Fold().String(title) + " "
	s = punctRegex.ReplaceAllString(s, " ")
	s = spacesRegex.ReplaceAllString(s, " ")

	for _, sub := range substitutions {
		s = strings.ReplaceAll(s, sub.old, sub.new)
	}
	return strings.TrimSpace(s)
}

// Similarity scores two strings from 0 to 1 by edit distance relative to the
// longer one
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	longer := max(len(ra), len(rb))
	return float64(longer-levenshtein(ra, rb)) / float64(longer)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
