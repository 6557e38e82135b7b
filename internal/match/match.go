// Package match scores torrent titles against scene metadata using a
// semantic embedding backend with a lexical edit-distance fallback.
package match

import "github.com/vmunix/scenarr/internal/search"

// Method identifies which strategy produced a match.
type Method string

const (
	MethodExact       Method = "exact"
	MethodTruncated   Method = "truncated"
	MethodPartial     Method = "partial"
	MethodAI          Method = "ai"
	MethodLevenshtein Method = "levenshtein"
)

// Settings holds the similarity cutoffs for the matching pipeline.
// All thresholds are raw similarities in [0,1]. Injected from config;
// the matching core never owns these values.
type Settings struct {
	AIEnabled            bool
	AIThreshold          float64
	GroupingThreshold    float64
	LevenshteinThreshold float64
}

// DefaultSettings mirror the configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		AIEnabled:            true,
		AIThreshold:          0.7,
		GroupingThreshold:    0.8,
		LevenshteinThreshold: 0.8,
	}
}

// Result is a scored match of a torrent title against one scene.
type Result struct {
	Scene      search.SceneMetadata
	Score      int     // 0-100
	Method     Method
	Confidence float64 // raw similarity in [0,1]
}
