package search_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/scenarr/internal/events"
	"github.com/vmunix/scenarr/internal/profile"
	"github.com/vmunix/scenarr/internal/search"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// hdProfile prefers [2160p,1080p] and [bluray,webdl].
func hdProfile() *profile.QualityProfile {
	return profile.FromSpec("hd", "HD", []profile.ItemSpec{
		{Quality: "1080p", Source: "webdl"},
		{Quality: "2160p", Source: "bluray"},
	})
}

func providerWith(profiles ...*profile.QualityProfile) profile.Provider {
	return profile.NewConfigProvider(profiles)
}

func TestSelectBest_EmptyInput(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	_, ok := s.SelectBest(context.Background(), nil, "hd")
	assert.False(t, ok)
}

func TestSelectBest_MissingProfileReturnsFirstUnranked(t *testing.T) {
	s := search.NewSelector(providerWith(), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "T1", Quality: "480p", Source: "dvd", Seeders: 1},
		{Title: "T2", Quality: "2160p", Source: "bluray", Seeders: 500},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "nonexistent-id")
	require.True(t, ok)
	assert.Equal(t, "T1", got.Title, "missing profile degrades to first candidate regardless of attributes")
}

func TestSelectBest_SourcePreferenceBeatsSeeders(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "A", Quality: "1080p", Source: "webdl", Seeders: 30},
		{Title: "B", Quality: "1080p", Source: "bluray", Seeders: 10},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "hd")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title, "bluray's preference index beats webdl despite fewer seeders")
}

func TestSelectBest_QualityPreferenceDominates(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "A", Quality: "1080p", Source: "bluray", Seeders: 900},
		{Title: "B", Quality: "2160p", Source: "webdl", Seeders: 3},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "hd")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)
}

func TestSelectBest_FiltersUnpreferredQualityAndSource(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "A", Quality: "480p", Source: "dvd", Seeders: 100},
		{Title: "B", Quality: "1080p", Source: "hdtv", Seeders: 100},
		{Title: "C", Quality: "1080p", Source: "webdl", Seeders: 5},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "hd")
	require.True(t, ok)
	assert.Equal(t, "C", got.Title)
}

func TestSelectBest_AllFilteredFallsBackToFirstUnfiltered(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "A", Quality: "480p", Source: "dvd", Seeders: 2},
		{Title: "B", Quality: "720p", Source: "hdtv", Seeders: 80},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "hd")
	require.True(t, ok)
	assert.Equal(t, "A", got.Title, "falls back to first element of the original list, not highest seeders")
}

func TestSelectBest_SeedersTieBreak(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "A", Quality: "1080p", Source: "webdl", Seeders: 10},
		{Title: "B", Quality: "1080p", Source: "webdl", Seeders: 40},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "hd")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)
}

func TestSelectBest_IndexerCountTieBreak(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	torrents := []search.TorrentResult{
		// IndexerCount 0 defaults to 1.
		{Title: "A", Quality: "1080p", Source: "webdl", Seeders: 10},
		{Title: "B", Quality: "1080p", Source: "webdl", Seeders: 10, IndexerCount: 3},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "hd")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)
}

func TestSelectBest_SizeCeilingIgnoresUnlimitedItems(t *testing.T) {
	// One item caps at 5 GB, the other is unlimited. The unlimited item
	// does not lift the ceiling: the whole profile filters at 5 GB.
	p := profile.FromSpec("mixed", "Mixed", []profile.ItemSpec{
		{Quality: "2160p", Source: "bluray", MaxSizeGB: 0},
		{Quality: "1080p", Source: "webdl", MaxSizeGB: 5},
	})
	s := search.NewSelector(providerWith(p), nil, testLogger())

	const gb = int64(1024 * 1024 * 1024)
	torrents := []search.TorrentResult{
		{Title: "big", Quality: "2160p", Source: "bluray", Size: 40 * gb, Seeders: 50},
		{Title: "small", Quality: "1080p", Source: "webdl", Size: 4 * gb, Seeders: 5},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "mixed")
	require.True(t, ok)
	assert.Equal(t, "small", got.Title, "40 GB candidate exceeds the 5 GB aggregate ceiling")
}

func TestSelectBest_MinSeedersFloor(t *testing.T) {
	p := profile.FromSpec("seeded", "Seeded", []profile.ItemSpec{
		{Quality: "1080p", Source: "webdl", MinSeeders: 20},
		{Quality: "720p", Source: "webdl"},
	})
	s := search.NewSelector(providerWith(p), nil, testLogger())

	torrents := []search.TorrentResult{
		{Title: "starved", Quality: "1080p", Source: "webdl", Seeders: 5},
		{Title: "seeded", Quality: "720p", Source: "webdl", Seeders: 25},
	}

	got, ok := s.SelectBest(context.Background(), torrents, "seeded")
	require.True(t, ok)
	assert.Equal(t, "seeded", got.Title, "the strictest per-item minimum applies profile-wide")
}

func TestProcessMatched_TagsWinnersWithSceneID(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	groups := []search.MatchedGroup{
		{
			Scene: search.SceneMetadata{ID: "scene-1", Title: "First Scene"},
			Torrents: []search.TorrentResult{
				{Title: "F1", Quality: "1080p", Source: "webdl", Seeders: 10},
			},
		},
		{
			Scene:    search.SceneMetadata{ID: "scene-2", Title: "Empty Group"},
			Torrents: nil,
		},
		{
			Scene: search.SceneMetadata{ID: "scene-3", Title: "Third Scene"},
			Torrents: []search.TorrentResult{
				{Title: "T1", Quality: "1080p", Source: "bluray", Seeders: 3},
				{Title: "T2", Quality: "1080p", Source: "webdl", Seeders: 99},
			},
		},
	}

	selected := s.ProcessMatched(context.Background(), groups, "hd")

	require.Len(t, selected, 2)
	assert.Equal(t, "F1", selected[0].Title)
	assert.Equal(t, "scene-1", selected[0].SceneID)
	assert.Equal(t, "T1", selected[1].Title, "bluray preferred within same quality")
	assert.Equal(t, "scene-3", selected[1].SceneID)
}

func TestProcessUnmatched_SpamFilter(t *testing.T) {
	s := search.NewSelector(providerWith(hdProfile()), nil, testLogger())

	groups := []search.UnmatchedGroup{
		{
			SceneTitle: "Lone Release",
			Torrents: []search.TorrentResult{
				{Title: "solo", Quality: "1080p", Source: "webdl", Seeders: 50},
			},
		},
		{
			SceneTitle: "Corroborated Release",
			Torrents: []search.TorrentResult{
				{Title: "U1", Quality: "1080p", Source: "webdl", Seeders: 10},
				{Title: "U2", Quality: "1080p", Source: "webdl", Seeders: 30},
			},
		},
	}

	selected := s.ProcessUnmatched(context.Background(), groups, "hd", 2)

	require.Len(t, selected, 1, "single-member group is dropped entirely")
	assert.Equal(t, "U2", selected[0].Title)
	assert.Empty(t, selected[0].SceneID, "unmatched winners carry no scene id")
}

func TestSelector_PublishesSelectionEvents(t *testing.T) {
	bus := events.NewBus(testLogger())
	ch := bus.Subscribe(events.TypeTorrentSelected, 4)

	s := search.NewSelector(providerWith(hdProfile()), bus, testLogger())

	groups := []search.MatchedGroup{{
		Scene: search.SceneMetadata{ID: "scene-1", Title: "Scene"},
		Torrents: []search.TorrentResult{
			{Title: "T1", Quality: "1080p", Source: "webdl", Seeders: 10},
		},
	}}
	s.ProcessMatched(context.Background(), groups, "hd")

	select {
	case e := <-ch:
		sel, isSel := e.(events.TorrentSelected)
		require.True(t, isSel)
		assert.Equal(t, "scene-1", sel.SceneID)
		assert.Equal(t, "T1", sel.Title)
	default:
		t.Fatal("expected a torrent.selected event")
	}
}
