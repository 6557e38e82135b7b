package match

import (
	"github.com/vmunix/scenarr/internal/search"
	"github.com/vmunix/scenarr/pkg/release"
)

// GroupTorrents clusters torrents presumed to refer to the same
// release when no scene metadata matched. A torrent joins the first
// existing group whose representative title scores at or above
// threshold (a raw similarity in [0,1]); otherwise it seeds a new
// group. Group titles are the cleaned form of their first member.
func GroupTorrents(torrents []search.TorrentResult, threshold float64) []search.UnmatchedGroup {
	cutoff := int(threshold * 100)

	var groups []search.UnmatchedGroup

	for _, t := range torrents {
		// Quality tokens would dominate the edit distance, so grouping
		// compares cleaned titles.
		cleaned := release.Parse(t.Title, t.Size, t.Seeders).Title

		placed := false
		for i := range groups {
			if LexicalScore(cleaned, groups[i].SceneTitle) >= cutoff {
				groups[i].Torrents = append(groups[i].Torrents, t)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, search.UnmatchedGroup{
				SceneTitle: cleaned,
				Torrents:   []search.TorrentResult{t},
			})
		}
	}
	return groups
}
