package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scrobbler/internal/diag"
	"scrobbler/internal/services/kodi"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Query the Kodi video library",
	}

	showsCmd := &cobra.Command{
		Use:   "shows",
		Short: "List TV shows with their external provider IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return diag.Observe(logger, "cli", func() error {
				client, err := ctx.kodiClient()
				if err != nil {
					return err
				}
				shows, err := client.TVShows(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(shows))
				for _, show := range shows {
					rows = append(rows, []string{
						strconv.Itoa(show.TVShowID),
						show.Label,
						formatUniqueIDs(show.UniqueID),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Provider IDs"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	episodesCmd := &cobra.Command{
		Use:   "episodes <tvshowid>",
		Short: "List episodes of a TV show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tvshowID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tvshowid %q", args[0])
			}
			client, err := ctx.kodiClient()
			if err != nil {
				return err
			}
			episodes, err := client.Episodes(cmd.Context(), tvshowID, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEpisodes(episodes))
			return nil
		},
	}

	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently added episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.kodiClient()
			if err != nil {
				return err
			}
			episodes, err := client.RecentEpisodes(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEpisodes(episodes))
			return nil
		},
	}

	libraryCmd.AddCommand(showsCmd)
	libraryCmd.AddCommand(episodesCmd)
	libraryCmd.AddCommand(recentCmd)
	return libraryCmd
}

func renderEpisodes(episodes []kodi.Episode) string {
	rows := make([][]string, 0, len(episodes))
	for _, episode := range episodes {
		watched := ""
		if episode.Playcount > 0 {
			watched = "watched"
		}
		rows = append(rows, []string{
			strconv.Itoa(episode.EpisodeID),
			fmt.Sprintf("S%02dE%02d", episode.Season, episode.Episode),
			episode.Label,
			watched,
		})
	}
	return renderTable(
		[]string{"ID", "Episode", "Title", "State"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}

func formatUniqueIDs(uniqueID map[string]string) string {
	if len(uniqueID) == 0 {
		return "-"
	}
	pairs := make([]string, 0, len(uniqueID))
	for provider, id := range uniqueID {
		pairs = append(pairs, provider+":"+id)
	}
	// Stable output regardless of map order.
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
