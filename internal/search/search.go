// Package search holds torrent candidate types and the quality-profile
// driven selector that picks one release per scene or title group.
package search

import "time"

// TorrentResult is one candidate from a torrent search: the raw title
// plus the quality attributes and provenance reported by indexers.
type TorrentResult struct {
	Title        string
	Size         int64 // bytes
	Seeders      int
	Quality      string // 2160p, 1080p, 720p, 480p, any
	Source       string // bluray, webdl, webrip, hdtv, dvd, any
	IndexerCount int    // independent indexers reporting this release
	SceneID      string // set when the result was matched to a scene
}

// SceneMetadata identifies the piece of media a search is trying to
// fill. It is the matching target, never mutated by the pipeline.
type SceneMetadata struct {
	ID           string
	Title        string
	Date         time.Time
	PerformerIDs []string
	StudioID     string
}

// MatchedGroup pairs a known scene with its candidate torrents.
type MatchedGroup struct {
	Scene    SceneMetadata
	Torrents []TorrentResult
}

// UnmatchedGroup clusters torrents presumed to be the same release
// when no scene metadata matched. SceneTitle is the inferred title.
type UnmatchedGroup struct {
	SceneTitle string
	Torrents   []TorrentResult
}
