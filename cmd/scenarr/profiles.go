package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List quality profiles in preference order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		profiles := configProfiles(cfg)
		sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })

		for _, p := range profiles {
			marker := ""
			if p.ID == cfg.Quality.Default {
				marker = " (default)"
			}
			fmt.Printf("%s%s\n", p.Name, marker)
			for _, item := range p.Items {
				line := fmt.Sprintf("  %s %s", item.Quality, item.Source)
				if item.MinSeeders != nil {
					line += fmt.Sprintf("  min seeders %d", *item.MinSeeders)
				}
				if item.MaxSizeGB != nil {
					line += fmt.Sprintf("  max size %.1f GB", *item.MaxSizeGB)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
