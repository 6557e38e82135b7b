package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/vmunix/scenarr/internal/events"
	"github.com/vmunix/scenarr/internal/profile"
)

const bytesPerGB = 1024 * 1024 * 1024

// Selector filters and ranks torrent candidates against a quality
// profile. It is stateless per call and safe to use concurrently.
type Selector struct {
	profiles profile.Provider
	bus      *events.Bus // optional progress channel
	log      *slog.Logger
}

// NewSelector creates a selector. The bus may be nil; progress events
// are best-effort and never affect selection.
func NewSelector(provider profile.Provider, bus *events.Bus, log *slog.Logger) *Selector {
	if log == nil {
		log = slog.Default()
	}
	return &Selector{profiles: provider, bus: bus, log: log.With("component", "selector")}
}

// SelectBest picks the best candidate for one scene or group.
//
// The two degraded paths both return the first input element unranked:
// when the profile cannot be loaded, and when filtering eliminates
// every candidate. This is input-order behavior, not a seeder
// heuristic, and is relied on by callers.
func (s *Selector) SelectBest(ctx context.Context, torrents []TorrentResult, profileID string) (TorrentResult, bool) {
	if len(torrents) == 0 {
		return TorrentResult{}, false
	}

	prof, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		s.log.Warn("quality profile unavailable, returning first candidate unranked",
			"profile_id", profileID, "error", err)
		return torrents[0], true
	}

	preferredQualities := prof.PreferredQualities()
	preferredSources := prof.PreferredSources()

	candidates := torrents
	if len(preferredQualities) > 0 {
		candidates = filterBy(candidates, func(t TorrentResult) bool {
			return indexOf(preferredQualities, t.Quality) >= 0
		})
	}
	if len(preferredSources) > 0 {
		candidates = filterBy(candidates, func(t TorrentResult) bool {
			return indexOf(preferredSources, t.Source) >= 0
		})
	}

	if ceiling := prof.MaxSizeCeilingGB(); ceiling > 0 {
		maxBytes := int64(ceiling * bytesPerGB)
		candidates = filterBy(candidates, func(t TorrentResult) bool {
			return t.Size <= maxBytes
		})
	}
	if floor := prof.MinSeedersFloor(); floor > 0 {
		candidates = filterBy(candidates, func(t TorrentResult) bool {
			return t.Seeders >= floor
		})
	}

	if len(candidates) == 0 {
		s.log.Info("all candidates filtered out, returning first unfiltered candidate",
			"profile_id", profileID, "total", len(torrents))
		return torrents[0], true
	}

	sorted := make([]TorrentResult, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j], preferredQualities, preferredSources)
	})
	return sorted[0], true
}

// less orders candidates best-first: quality preference, then source
// preference, then seeders, then indexer count. Preference indexes are
// only compared when both candidates have one.
func less(a, b TorrentResult, qualities, sources []string) bool {
	qa, qb := indexOf(qualities, a.Quality), indexOf(qualities, b.Quality)
	if qa >= 0 && qb >= 0 && qa != qb {
		return qa < qb
	}

	sa, sb := indexOf(sources, a.Source), indexOf(sources, b.Source)
	if sa >= 0 && sb >= 0 && sa != sb {
		return sa < sb
	}

	if a.Seeders != b.Seeders {
		return a.Seeders > b.Seeders
	}

	// More indexers reporting a release implies higher confidence.
	return indexerCount(a) > indexerCount(b)
}

func indexerCount(t TorrentResult) int {
	if t.IndexerCount <= 0 {
		return 1
	}
	return t.IndexerCount
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func filterBy(in []TorrentResult, keep func(TorrentResult) bool) []TorrentResult {
	var out []TorrentResult
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// ProcessMatched selects one torrent per matched scene. Winners carry
// the originating scene id; output follows input order.
func (s *Selector) ProcessMatched(ctx context.Context, groups []MatchedGroup, profileID string) []TorrentResult {
	var selected []TorrentResult
	for _, g := range groups {
		winner, ok := s.SelectBest(ctx, g.Torrents, profileID)
		if !ok {
			continue
		}
		winner.SceneID = g.Scene.ID
		selected = append(selected, winner)
		s.publish(ctx, events.NewTorrentSelected(g.Scene.ID, winner.Title, winner.Seeders))
	}
	return selected
}

// ProcessUnmatched selects one torrent per unmatched title group,
// dropping groups smaller than minGroupMembers. A release claimed by
// too few indexers without scene metadata is likely noise or
// mislabeling. Winners carry no scene id.
func (s *Selector) ProcessUnmatched(ctx context.Context, groups []UnmatchedGroup, profileID string, minGroupMembers int) []TorrentResult {
	var selected []TorrentResult
	for _, g := range groups {
		if len(g.Torrents) < minGroupMembers {
			s.log.Debug("dropping sparse unmatched group",
				"title", g.SceneTitle, "members", len(g.Torrents), "min", minGroupMembers)
			s.publish(ctx, events.NewGroupRejected(g.SceneTitle, len(g.Torrents)))
			continue
		}
		winner, ok := s.SelectBest(ctx, g.Torrents, profileID)
		if !ok {
			continue
		}
		selected = append(selected, winner)
		s.publish(ctx, events.NewTorrentSelected("", winner.Title, winner.Seeders))
	}
	return selected
}

// publish emits a progress event when a bus is attached. Event
// delivery failures never abort selection.
func (s *Selector) publish(ctx context.Context, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		s.log.Debug("event publish failed", "type", e.EventType(), "error", err)
	}
}
