// Package profile defines quality profiles and the providers that load
// them. A profile is an ordered preference over resolution/source
// combinations plus optional seeder and size constraints.
package profile

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound is returned when no profile exists for the given id.
var ErrNotFound = errors.New("quality profile not found")

// Authoritative preference orders. Lower index is better. Profiles are
// always persisted sorted by these, resolution first.
var (
	qualityOrder = []string{"2160p", "1080p", "720p", "480p", "any"}
	sourceOrder  = []string{"bluray", "webdl", "webrip", "hdtv", "dvd", "any"}
)

// QualityItem is one entry of a profile's preference list. Nil
// MinSeeders or MaxSizeGB means the item imposes no such constraint;
// the zero sentinels of the wire form never reach this struct.
type QualityItem struct {
	Quality    string // 2160p, 1080p, 720p, 480p, any
	Source     string // bluray, webdl, webrip, hdtv, dvd, any
	MinSeeders *int
	MaxSizeGB  *float64
}

// QualityProfile is an ordered best-to-worst preference list.
type QualityProfile struct {
	ID    string
	Name  string
	Items []QualityItem
}

// Provider loads quality profiles by id.
type Provider interface {
	FindByID(ctx context.Context, id string) (*QualityProfile, error)
}

func orderIndex(order []string, v string) int {
	for i, o := range order {
		if o == v {
			return i
		}
	}
	return len(order)
}

// Sort orders items best-to-worst by the global quality order,
// tie-broken by the global source order. Resolution dominates source.
func (p *QualityProfile) Sort() {
	sort.SliceStable(p.Items, func(i, j int) bool {
		qi := orderIndex(qualityOrder, p.Items[i].Quality)
		qj := orderIndex(qualityOrder, p.Items[j].Quality)
		if qi != qj {
			return qi < qj
		}
		return orderIndex(sourceOrder, p.Items[i].Source) < orderIndex(sourceOrder, p.Items[j].Source)
	})
}

// PreferredQualities returns item qualities in preference order,
// excluding "any". Used by the selector as its ranking axis.
func (p *QualityProfile) PreferredQualities() []string {
	var out []string
	for _, item := range p.Items {
		if item.Quality != "any" {
			out = append(out, item.Quality)
		}
	}
	return out
}

// PreferredSources returns item sources in preference order, excluding
// "any".
func (p *QualityProfile) PreferredSources() []string {
	var out []string
	for _, item := range p.Items {
		if item.Source != "any" {
			out = append(out, item.Source)
		}
	}
	return out
}

// MaxSizeCeilingGB aggregates the per-item size caps into one ceiling:
// the largest positive cap across items. Items without a cap do not
// contribute, so one capped item constrains the whole profile even
// when other items are unlimited. Returns 0 when no item has a cap.
func (p *QualityProfile) MaxSizeCeilingGB() float64 {
	var ceiling float64
	for _, item := range p.Items {
		if item.MaxSizeGB != nil && *item.MaxSizeGB > ceiling {
			ceiling = *item.MaxSizeGB
		}
	}
	return ceiling
}

// MinSeedersFloor aggregates per-item seeder minimums into the
// strictest one. Unconstrained items do not contribute. Returns 0 when
// no item has a minimum.
func (p *QualityProfile) MinSeedersFloor() int {
	var floor int
	for _, item := range p.Items {
		if item.MinSeeders != nil && *item.MinSeeders > floor {
			floor = *item.MinSeeders
		}
	}
	return floor
}
