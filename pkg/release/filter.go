package release

import "strings"

const bytesPerGB = 1024 * 1024 * 1024

// Filters holds per-search word, seeder and size constraints. Zero
// values mean the constraint is not applied.
type Filters struct {
	RequiredWords  []string
	ForbiddenWords []string
	MinSeeders     int
	MaxSizeGB      float64
}

// MatchesFilters reports whether a parsed release passes every
// configured constraint. Word matching is a case-insensitive substring
// test against the original title.
func (p ParsedTorrent) MatchesFilters(f Filters) bool {
	title := strings.ToLower(p.OriginalTitle)

	for _, word := range f.RequiredWords {
		if !strings.Contains(title, strings.ToLower(word)) {
			return false
		}
	}
	for _, word := range f.ForbiddenWords {
		if strings.Contains(title, strings.ToLower(word)) {
			return false
		}
	}

	if f.MinSeeders > 0 && p.Seeders < f.MinSeeders {
		return false
	}
	if f.MaxSizeGB > 0 {
		sizeGB := float64(p.Size) / bytesPerGB
		if sizeGB > f.MaxSizeGB {
			return false
		}
	}

	return true
}
