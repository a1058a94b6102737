package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/movieflix/movieflix-go/internal/client/catalog"
	"github.com/movieflix/movieflix-go/internal/model"
)

type listingFunc func(c *catalog.Client, ctx context.Context, page int) ([]model.Movie, error)

func newListingCommand(use, short string, fetch listingFunc) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			movies, err := fetch(a.catalog, cmd.Context(), page)
			if err != nil {
				return err
			}
			for _, m := range movies {
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  %-40s  %s  %.1f\n", m.ID, truncate(m.Title, 40), orDash(m.ReleaseDate), m.VoteAverage)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	return cmd
}

func newMovieCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "movie <id>",
		Short: "Show full details for one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			d, err := a.catalog.Details(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)  %.1f/10\n", d.Movie.Title, orDash(d.Movie.ReleaseDate), d.Movie.VoteAverage)
			if d.Movie.Tagline != "" {
				fmt.Fprintf(out, "%s\n", d.Movie.Tagline)
			}
			fmt.Fprintf(out, "\n%s\n", d.Movie.Overview)
			if len(d.Credits.Cast) > 0 {
				fmt.Fprintln(out, "\nCast:")
				for i, c := range d.Credits.Cast {
					if i == 10 {
						break
					}
					fmt.Fprintf(out, "  %s as %s\n", c.Name, orDash(c.Character))
				}
			}
			if len(d.Videos) > 0 {
				fmt.Fprintln(out, "\nVideos:")
				for _, v := range d.Videos {
					fmt.Fprintf(out, "  [%s] %s (%s %s)\n", v.Type, v.Name, v.Site, v.Key)
				}
			}
			return nil
		},
	}
}

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search movies, shows and people",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			results, err := a.catalog.SearchMulti(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  %-7s  %s\n", r.ID, r.MediaType, r.DisplayTitle())
			}
			return nil
		},
	}
}

// truncate shortens s to at most n display runes, never splitting a
// multi-byte character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
