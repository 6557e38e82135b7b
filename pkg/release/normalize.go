package release

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	resolutionTokens = []string{"2160p", "1080p", "720p", "480p", "4k", "uhd"}
	sourceTokens     = []string{"blu-ray", "bluray", "web-dl", "webdl", "webrip", "hdtv", "dvd"}
	videoExtensions  = []string{".mp4", ".mkv", ".avi", ".wmv", ".mov", ".m4v", ".mpg", ".mpeg", ".ts"}
)

// NormalizeTitle prepares a title for lexical comparison: accents are
// folded, everything non-alphanumeric except spaces is dropped, and
// whitespace is collapsed. Idempotent.
func NormalizeTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// PreprocessTitle prepares a title for semantic embedding: lowercase,
// resolution and source tokens removed, trailing video extension
// stripped, whitespace collapsed. Unlike NormalizeTitle it keeps
// punctuation, which carries meaning for embedding models.
func PreprocessTitle(title string) string {
	s := strings.ToLower(title)

	for _, ext := range videoExtensions {
		if strings.HasSuffix(s, ext) {
			s = strings.TrimSuffix(s, ext)
			break
		}
	}

	for _, tok := range resolutionTokens {
		s = strings.ReplaceAll(s, tok, " ")
	}
	for _, tok := range sourceTokens {
		s = strings.ReplaceAll(s, tok, " ")
	}

	return strings.Join(strings.Fields(s), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
