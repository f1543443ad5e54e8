package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mediashelf/internal/aggregate"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogStore, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer catalogStore.Close()

			aggregator, err := ctx.newAggregator(catalogStore)
			if err != nil {
				return err
			}

			stats, err := aggregator.Stats(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, stats)
			}

			rows := [][]string{
				statsRow("Books", stats.Books.KindStats, fmt.Sprintf("%d authors, %d pages", stats.Books.UniqueAuthors, stats.Books.TotalPages)),
				statsRow("Movies", stats.Movies.KindStats, fmt.Sprintf("%d TV series", stats.Movies.TotalTVSeries)),
				statsRow("Games", stats.Games, ""),
				statsRow("Music", stats.Music.KindStats, fmt.Sprintf("%d artists, %d tracks", stats.Music.UniqueArtists, stats.Music.TotalTracks)),
			}
			printRows(cmd, []string{"Kind", "Items", "Formats", "Details"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft})
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func statsRow(label string, kind aggregate.KindStats, detail string) []string {
	formats := strings.Join(kind.Formats, ", ")
	if kind.Total == 0 {
		detail = ""
	}
	return []string{label, strconv.Itoa(kind.Total), formats, detail}
}
