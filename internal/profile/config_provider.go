package profile

import "context"

// ItemSpec is the wire form of a quality item as it appears in
// configuration or API payloads: 0 means "no constraint" for both
// MinSeeders and MaxSizeGB. FromSpec converts the sentinels into the
// explicit optional fields of QualityItem.
type ItemSpec struct {
	Quality    string
	Source     string
	MinSeeders int
	MaxSizeGB  float64
}

// FromSpec builds a sorted profile from wire-form items.
func FromSpec(id, name string, items []ItemSpec) *QualityProfile {
	p := &QualityProfile{ID: id, Name: name}
	for _, spec := range items {
		item := QualityItem{Quality: spec.Quality, Source: spec.Source}
		if spec.MinSeeders > 0 {
			v := spec.MinSeeders
			item.MinSeeders = &v
		}
		if spec.MaxSizeGB > 0 {
			v := spec.MaxSizeGB
			item.MaxSizeGB = &v
		}
		p.Items = append(p.Items, item)
	}
	p.Sort()
	return p
}

// ConfigProvider serves profiles declared in the TOML config. It lets
// the CLI run without a profile database.
type ConfigProvider struct {
	profiles map[string]*QualityProfile
}

// NewConfigProvider indexes the given profiles by id.
func NewConfigProvider(profiles []*QualityProfile) *ConfigProvider {
	m := make(map[string]*QualityProfile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &ConfigProvider{profiles: m}
}

// FindByID implements Provider.
func (c *ConfigProvider) FindByID(_ context.Context, id string) (*QualityProfile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
