// Package title provides title normalization and fuzzy matching for
// comparing media titles across scanarr and the media servers it notifies.
package title

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean normalizes a title for matching purposes.
// Lowercases, removes accents, strips leading articles and punctuation,
// and collapses whitespace.
func Clean(title string) string {
	s := strings.ToLower(title)

	// Remove accents
	s = removeAccents(s)

	// Normalize punctuation
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Split on colon to handle subtitles (e.g., "Léon: The Professional")
	// Strip leading articles from each part
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	// Remove other punctuation
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Collapse whitespace
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// Similarity returns the Jaro-Winkler similarity between two titles after
// normalization. Returns a value between 0.0 (no similarity) and 1.0 (identical).
func Similarity(a, b string) float64 {
	ca, cb := Clean(a), Clean(b)
	if ca == cb {
		return 1.0
	}
	return float64(edlib.JaroWinklerSimilarity(ca, cb))
}

// Match reports whether two titles refer to the same content.
// Exact normalized equality or Jaro-Winkler similarity >= 0.85.
func Match(a, b string) bool {
	return Similarity(a, b) >= 0.85
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	articles := []string{"the ", "a ", "an "}
	for _, art := range articles {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}

// Suggest returns the closest candidate to name by Levenshtein distance,
// or empty string if nothing is within a distance of 3.
// Used for did-you-mean hints on misspelled config values.
func Suggest(name string, candidates []string) string {
	best := ""
	bestDist := 4
	for _, c := range candidates {
		d := edlib.LevenshteinDistance(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
