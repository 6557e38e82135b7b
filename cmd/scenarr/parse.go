package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/scenarr/pkg/release"
)

var (
	parseSizeGB  float64
	parseSeeders int
)

var parseCmd = &cobra.Command{
	Use:   "parse <title>...",
	Short: "Parse torrent titles into structured attributes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, title := range args {
			p := release.Parse(title, int64(parseSizeGB*1024*1024*1024), parseSeeders)
			if jsonOutput {
				out, err := json.MarshalIndent(parsedView(p), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				continue
			}
			printParsed(p)
		}
		return nil
	},
}

type parsedJSON struct {
	Title      string `json:"title"`
	Quality    string `json:"quality"`
	Resolution string `json:"resolution"`
	Codec      string `json:"codec"`
	Source     string `json:"source"`
	HDR        bool   `json:"hdr"`
	Proper     bool   `json:"proper"`
	Repack     bool   `json:"repack"`
	Score      int    `json:"score"`
}

func parsedView(p release.ParsedTorrent) parsedJSON {
	return parsedJSON{
		Title:      p.Title,
		Quality:    string(p.Quality),
		Resolution: p.Resolution.String(),
		Codec:      p.Codec.String(),
		Source:     p.Source.String(),
		HDR:        p.HDR,
		Proper:     p.Proper,
		Repack:     p.Repack,
		Score:      p.QualityScore(),
	}
}

func printParsed(p release.ParsedTorrent) {
	w := os.Stdout
	fmt.Fprintf(w, "%s\n", p.OriginalTitle)
	fmt.Fprintf(w, "  title:      %s\n", p.Title)
	fmt.Fprintf(w, "  quality:    %s\n", p.Quality)
	fmt.Fprintf(w, "  resolution: %s\n", p.Resolution)
	fmt.Fprintf(w, "  codec:      %s\n", p.Codec)
	fmt.Fprintf(w, "  source:     %s\n", p.Source)
	fmt.Fprintf(w, "  hdr:        %v\n", p.HDR)
	fmt.Fprintf(w, "  proper:     %v  repack: %v\n", p.Proper, p.Repack)
	fmt.Fprintf(w, "  score:      %d\n", p.QualityScore())
}

func init() {
	parseCmd.Flags().Float64Var(&parseSizeGB, "size", 0, "Release size in GB")
	parseCmd.Flags().IntVar(&parseSeeders, "seeders", 0, "Seeder count")
	rootCmd.AddCommand(parseCmd)
}
