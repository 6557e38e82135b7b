package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/scenarr/internal/embed"
	"github.com/vmunix/scenarr/internal/match"
)

var (
	matchScene string
	matchNoAI  bool
)

var matchCmd = &cobra.Command{
	Use:   "match --scene <title> <torrent-title>...",
	Short: "Score torrent titles against a scene title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg.Server.LogLevel)

		var semantic *match.Semantic
		if cfg.Embedding.Enabled && !matchNoAI {
			backend := embed.NewOllamaClient(
				embed.WithBaseURL(cfg.Embedding.URL),
				embed.WithModel(cfg.Embedding.Model),
				embed.WithLogger(log),
			)
			defer backend.Close()
			semantic = match.NewSemantic(backend, log)
		}
		orch := match.NewOrchestrator(semantic, log)

		useAI := cfg.Match.AIEnabled && !matchNoAI
		for _, title := range args {
			score := orch.MatchScore(cmd.Context(), title, matchScene, useAI)
			fmt.Printf("%3d  %s\n", score, title)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchScene, "scene", "", "Scene title to match against")
	matchCmd.Flags().BoolVar(&matchNoAI, "no-ai", false, "Disable semantic matching")
	matchCmd.MarkFlagRequired("scene")
	rootCmd.AddCommand(matchCmd)
}
