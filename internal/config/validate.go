package config

import "fmt"

var (
	validQualities = map[string]bool{"2160p": true, "1080p": true, "720p": true, "480p": true, "any": true}
	validSources   = map[string]bool{"bluray": true, "webdl": true, "webrip": true, "hdtv": true, "dvd": true, "any": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks the configuration and returns a list of problems.
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: unknown level %q", c.Server.LogLevel))
	}

	for name, field := range map[string]float64{
		"match.ai_threshold":          c.Match.AIThreshold,
		"match.grouping_threshold":    c.Match.GroupingThreshold,
		"match.levenshtein_threshold": c.Match.LevenshteinThreshold,
	} {
		if field < 0 || field > 1 {
			errs = append(errs, fmt.Sprintf("%s: must be in [0,1], got %v", name, field))
		}
	}

	if c.Match.MinGroupMembers < 1 {
		errs = append(errs, fmt.Sprintf("match.min_group_members: must be >= 1, got %d", c.Match.MinGroupMembers))
	}

	if c.Quality.Default != "" {
		if _, ok := c.Quality.Profiles[c.Quality.Default]; !ok {
			errs = append(errs, fmt.Sprintf("quality.default: profile %q not defined", c.Quality.Default))
		}
	}

	for name, prof := range c.Quality.Profiles {
		for i, item := range prof.Items {
			if !validQualities[item.Quality] {
				errs = append(errs, fmt.Sprintf("quality.profiles.%s.items[%d]: unknown quality %q", name, i, item.Quality))
			}
			if !validSources[item.Source] {
				errs = append(errs, fmt.Sprintf("quality.profiles.%s.items[%d]: unknown source %q", name, i, item.Source))
			}
			if item.MinSeeders < 0 {
				errs = append(errs, fmt.Sprintf("quality.profiles.%s.items[%d]: negative min_seeders", name, i))
			}
			if item.MaxSizeGB < 0 {
				errs = append(errs, fmt.Sprintf("quality.profiles.%s.items[%d]: negative max_size_gb", name, i))
			}
		}
	}

	return errs
}
