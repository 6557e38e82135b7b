package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrDimensionMismatch is returned when two embedding vectors of
// different lengths are compared. Embeddings from different models
// must never be compared; this is a programmer or data error.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// ErrNoBackend is returned when semantic scoring is requested without
// an attached embedding backend.
var ErrNoBackend = errors.New("no embedding backend attached")

// DefaultBestMatchThreshold is the minimum similarity FindBestMatch
// accepts when the caller passes no explicit threshold.
const DefaultBestMatchThreshold = 0.7

// Embedder maps text to a fixed-length vector. Implementations are
// expected to mean-pool and L2-normalize their outputs. Init may be
// expensive (model load); Semantic guarantees it runs at most once.
type Embedder interface {
	Init(ctx context.Context) error
	Embed(ctx context.Context, text string) ([]float32, error)
	Close() error
}

// Semantic wraps an embedding backend with lazy single-flight
// initialization and similarity queries. The zero value is not usable;
// construct with NewSemantic.
type Semantic struct {
	backend Embedder
	log     *slog.Logger

	initOnce sync.Once
	initErr  error
}

// NewSemantic creates a semantic matcher over the given backend. The
// backend's lifecycle is owned by the caller; Semantic only triggers
// Init on first use.
func NewSemantic(backend Embedder, log *slog.Logger) *Semantic {
	if log == nil {
		log = slog.Default()
	}
	return &Semantic{backend: backend, log: log.With("component", "semantic")}
}

// ensureInit initializes the backend exactly once. Concurrent callers
// block on the same attempt; later callers observe its result.
func (s *Semantic) ensureInit(ctx context.Context) error {
	if s.backend == nil {
		return ErrNoBackend
	}
	s.initOnce.Do(func() {
		s.log.Debug("initializing embedding backend")
		s.initErr = s.backend.Init(ctx)
		if s.initErr != nil {
			s.log.Warn("embedding backend initialization failed", "error", s.initErr)
		}
	})
	return s.initErr
}

// GenerateEmbedding embeds text, initializing the backend on demand.
func (s *Semantic) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if err := s.ensureInit(ctx); err != nil {
		return nil, fmt.Errorf("init embedding backend: %w", err)
	}
	vec, err := s.backend.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	return vec, nil
}

// CosineSimilarity returns dot(a,b)/(|a||b|) in [-1,1]. Vectors of
// different lengths fail fast; a zero-magnitude vector yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}

// CalculateSimilarity embeds both texts in parallel and returns their
// cosine similarity.
func (s *Semantic) CalculateSimilarity(ctx context.Context, text1, text2 string) (float64, error) {
	var v1, v2 []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v1, err = s.GenerateEmbedding(gctx, text1)
		return err
	})
	g.Go(func() error {
		var err error
		v2, err = s.GenerateEmbedding(gctx, text2)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return CosineSimilarity(v1, v2)
}

// BestMatch is the winner of a FindBestMatch query.
type BestMatch struct {
	Candidate string
	Index     int
	Score     float64
}

// FindBestMatch embeds the query once and every candidate in parallel,
// then returns the highest-scoring candidate at or above threshold.
// Equal top scores resolve to the first occurrence. Returns ok=false
// when no candidate clears the threshold.
func (s *Semantic) FindBestMatch(ctx context.Context, query string, candidates []string, threshold float64) (BestMatch, bool, error) {
	if len(candidates) == 0 {
		return BestMatch{}, false, nil
	}
	if threshold <= 0 {
		threshold = DefaultBestMatchThreshold
	}

	queryVec, err := s.GenerateEmbedding(ctx, query)
	if err != nil {
		return BestMatch{}, false, err
	}

	vecs := make([][]float32, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			vec, err := s.GenerateEmbedding(gctx, c)
			if err != nil {
				return err
			}
			vecs[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BestMatch{}, false, err
	}

	best := BestMatch{Index: -1, Score: -1}
	for i, vec := range vecs {
		score, err := CosineSimilarity(queryVec, vec)
		if err != nil {
			return BestMatch{}, false, err
		}
		// Strictly greater: ties keep the first occurrence.
		if score > best.Score {
			best = BestMatch{Candidate: candidates[i], Index: i, Score: score}
		}
	}

	if best.Score < threshold {
		return BestMatch{}, false, nil
	}
	return best, true, nil
}

// BatchCalculateSimilarity embeds every query and candidate once, then
// returns the full cross-product similarity matrix, indexed
// [query][candidate].
func (s *Semantic) BatchCalculateSimilarity(ctx context.Context, queries, candidates []string) ([][]float64, error) {
	queryVecs := make([][]float32, len(queries))
	candVecs := make([][]float32, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			vec, err := s.GenerateEmbedding(gctx, q)
			if err != nil {
				return err
			}
			queryVecs[i] = vec
			return nil
		})
	}
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			vec, err := s.GenerateEmbedding(gctx, c)
			if err != nil {
				return err
			}
			candVecs[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matrix := make([][]float64, len(queries))
	for i, qv := range queryVecs {
		matrix[i] = make([]float64, len(candidates))
		for j, cv := range candVecs {
			score, err := CosineSimilarity(qv, cv)
			if err != nil {
				return nil, err
			}
			matrix[i][j] = score
		}
	}
	return matrix, nil
}

// Available reports whether a backend is attached.
func (s *Semantic) Available() bool {
	return s != nil && s.backend != nil
}
