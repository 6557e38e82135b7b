package match

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/scenarr/pkg/release"
)

// LexicalScore computes a Levenshtein-based similarity between two
// titles on a 0-100 scale. Both titles are normalized before
// comparison. Two titles that normalize to the empty string are
// defined as identical (100) rather than dividing by zero.
func LexicalScore(title1, title2 string) int {
	a := release.NormalizeTitle(title1)
	b := release.NormalizeTitle(title2)

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}

	distance := edlib.LevenshteinDistance(a, b)
	similarity := float64(maxLen-distance) / float64(maxLen) * 100

	if similarity < 0 {
		similarity = 0
	}
	if similarity > 100 {
		similarity = 100
	}
	return int(math.Round(similarity))
}
