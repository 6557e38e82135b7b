package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/scenarr/internal/match"
	"github.com/vmunix/scenarr/internal/profile"
	"github.com/vmunix/scenarr/internal/search"
	"github.com/vmunix/scenarr/pkg/release"
)

var (
	selectProfile   string
	selectUnmatched bool
)

var selectCmd = &cobra.Command{
	Use:   "select --profile <name> <torrent-title>...",
	Short: "Pick the best release for a quality profile",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg.Server.LogLevel)

		provider := profile.NewConfigProvider(configProfiles(cfg))
		selector := search.NewSelector(provider, nil, log)

		torrents := make([]search.TorrentResult, len(args))
		for i, title := range args {
			p := release.Parse(title, 0, 0)
			torrents[i] = search.TorrentResult{
				Title:   title,
				Seeders: p.Seeders,
				Quality: resolutionKey(p.Resolution),
				Source:  sourceKey(p.Source),
			}
		}

		if selectUnmatched {
			groups := match.GroupTorrents(torrents, cfg.Match.GroupingThreshold)
			winners := selector.ProcessUnmatched(cmd.Context(), groups, selectProfile, cfg.Match.MinGroupMembers)
			if len(winners) == 0 {
				fmt.Println("no candidate selected")
				return nil
			}
			for _, w := range winners {
				fmt.Printf("selected: %s\n", w.Title)
			}
			return nil
		}

		winner, ok := selector.SelectBest(cmd.Context(), torrents, selectProfile)
		if !ok {
			fmt.Println("no candidate selected")
			return nil
		}
		fmt.Printf("selected: %s\n", winner.Title)
		return nil
	},
}

func resolutionKey(r release.Resolution) string {
	if r == release.ResolutionUnknown {
		return "any"
	}
	return r.String()
}

func sourceKey(s release.Source) string {
	if s == release.SourceUnknown {
		return "any"
	}
	return s.Key()
}

func init() {
	selectCmd.Flags().StringVar(&selectProfile, "profile", "", "Quality profile name")
	selectCmd.Flags().BoolVar(&selectUnmatched, "unmatched", false, "Group titles lexically and apply the spam filter before selecting")
	selectCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(selectCmd)
}
