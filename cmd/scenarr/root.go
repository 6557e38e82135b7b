package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/scenarr/internal/config"
	"github.com/vmunix/scenarr/internal/profile"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "scenarr",
	Short: "Scene-oriented torrent matching and selection",
	Long: `scenarr - scene-oriented torrent matching and selection

Parses raw torrent titles, scores them against scene metadata using
semantic embeddings with a lexical fallback, and picks the best release
per quality profile.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("scenarr {{.Version}}\n")
}

// loadConfig reads the configured file, or returns defaults when no
// path is given.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// configProfiles converts the wire-form profiles from the config file
// into sorted domain profiles.
func configProfiles(cfg *config.Config) []*profile.QualityProfile {
	var out []*profile.QualityProfile
	for name, p := range cfg.Quality.Profiles {
		specs := make([]profile.ItemSpec, len(p.Items))
		for i, item := range p.Items {
			specs[i] = profile.ItemSpec{
				Quality:    item.Quality,
				Source:     item.Source,
				MinSeeders: item.MinSeeders,
				MaxSizeGB:  item.MaxSizeGB,
			}
		}
		out = append(out, profile.FromSpec(name, name, specs))
	}
	return out
}
