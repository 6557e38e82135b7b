package match

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/vmunix/scenarr/internal/search"
	"github.com/vmunix/scenarr/pkg/release"
)

// minTruncatedLength guards the prefix heuristic against trivially
// short normalized titles matching everything.
const minTruncatedLength = 10

// Orchestrator routes title scoring through the semantic matcher when
// one is attached, falling back to lexical edit distance on any
// semantic failure. Scoring never returns an error: a failed semantic
// path degrades, it does not abort.
type Orchestrator struct {
	semantic *Semantic // nil disables the semantic path
	log      *slog.Logger
}

// NewOrchestrator creates an orchestrator. Pass a nil semantic matcher
// to run lexical-only.
func NewOrchestrator(semantic *Semantic, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{semantic: semantic, log: log.With("component", "matcher")}
}

// AIAvailable reports whether a semantic backend is attached.
func (o *Orchestrator) AIAvailable() bool {
	return o.semantic.Available()
}

// MatchScore scores a torrent title against an expected title on a
// 0-100 scale. With useAI and an attached backend, both titles are
// preprocessed and scored semantically; any backend failure is logged
// and the score falls through to lexical edit distance over the raw
// titles.
func (o *Orchestrator) MatchScore(ctx context.Context, torrentTitle, expectedTitle string, useAI bool) int {
	if useAI && o.AIAvailable() {
		t1 := release.PreprocessTitle(torrentTitle)
		t2 := release.PreprocessTitle(expectedTitle)
		sim, err := o.semantic.CalculateSimilarity(ctx, t1, t2)
		if err == nil {
			return int(math.Round(sim * 100))
		}
		o.log.Warn("semantic scoring failed, falling back to levenshtein",
			"torrent", torrentTitle, "error", err)
	}
	return LexicalScore(torrentTitle, expectedTitle)
}

// BestSceneMatch finds the scene whose title best matches a torrent
// title. Cheap lexical heuristics run first (exact, truncated,
// partial); the semantic matcher handles the remainder, with
// edit-distance as the last resort. Returns ok=false when nothing
// clears the configured thresholds.
func (o *Orchestrator) BestSceneMatch(ctx context.Context, torrentTitle string, scenes []search.SceneMetadata, settings Settings) (Result, bool) {
	if len(scenes) == 0 {
		return Result{}, false
	}

	normalized := release.NormalizeTitle(torrentTitle)
	for _, scene := range scenes {
		sceneNorm := release.NormalizeTitle(scene.Title)
		if method, ok := heuristicMatch(normalized, sceneNorm); ok {
			return Result{Scene: scene, Score: 100, Method: method, Confidence: 1}, true
		}
	}

	if settings.AIEnabled && o.AIAvailable() {
		candidates := make([]string, len(scenes))
		for i, scene := range scenes {
			candidates[i] = release.PreprocessTitle(scene.Title)
		}
		best, ok, err := o.semantic.FindBestMatch(ctx, release.PreprocessTitle(torrentTitle), candidates, settings.AIThreshold)
		if err != nil {
			o.log.Warn("semantic scene matching failed, falling back to levenshtein",
				"torrent", torrentTitle, "error", err)
		} else if ok {
			return Result{
				Scene:      scenes[best.Index],
				Score:      int(math.Round(best.Score * 100)),
				Method:     MethodAI,
				Confidence: best.Score,
			}, true
		} else {
			return Result{}, false
		}
	}

	bestIdx, bestScore := -1, -1
	for i, scene := range scenes {
		if score := LexicalScore(torrentTitle, scene.Title); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestScore < int(math.Round(settings.LevenshteinThreshold*100)) {
		return Result{}, false
	}
	return Result{
		Scene:      scenes[bestIdx],
		Score:      bestScore,
		Method:     MethodLevenshtein,
		Confidence: float64(bestScore) / 100,
	}, true
}

// heuristicMatch classifies trivially equivalent normalized titles.
func heuristicMatch(torrent, scene string) (Method, bool) {
	if torrent == "" || scene == "" {
		return "", false
	}
	if torrent == scene {
		return MethodExact, true
	}
	shorter, longer := torrent, scene
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) < minTruncatedLength {
		return "", false
	}
	if strings.HasPrefix(longer, shorter) {
		return MethodTruncated, true
	}
	if strings.Contains(longer, shorter) {
		return MethodPartial, true
	}
	return "", false
}
