package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/movieflix/movieflix-go/internal/client/backend"
	"github.com/movieflix/movieflix-go/internal/client/catalog"
	"github.com/movieflix/movieflix-go/internal/client/config"
	"github.com/movieflix/movieflix-go/internal/client/session"
	"github.com/movieflix/movieflix-go/internal/client/storage"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the client-side dependencies each command needs. Everything
// hangs off the one session manager; no ambient state.
type app struct {
	cfg     config.Config
	session *session.Manager
	catalog *catalog.Client
}

func newApp() (*app, error) {
	_ = godotenv.Load()
	cfg := config.Load()

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		p, err := storage.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
		tokenPath = p
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	api := backend.NewClient(cfg.BackendURL, httpClient)
	mgr := session.NewManager(api, storage.NewFileTokenStore(tokenPath))

	cat := catalog.NewClient(cfg.CatalogToken, catalog.Options{
		BaseURL:    cfg.CatalogURL,
		Language:   cfg.Language,
		HTTPClient: httpClient,
	})

	return &app{cfg: cfg, session: mgr, catalog: cat}, nil
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "movieflix",
		Short:         "Browse the movie catalog and manage your MovieFlix account",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRegisterCommand())
	cmd.AddCommand(newLoginCommand())
	cmd.AddCommand(newLogoutCommand())
	cmd.AddCommand(newWhoamiCommand())
	cmd.AddCommand(newTokenCommand())
	cmd.AddCommand(newListingCommand("popular", "List popular movies", (*catalog.Client).Popular))
	cmd.AddCommand(newListingCommand("now-playing", "List movies now playing", (*catalog.Client).NowPlaying))
	cmd.AddCommand(newListingCommand("top-rated", "List top rated movies", (*catalog.Client).TopRated))
	cmd.AddCommand(newListingCommand("upcoming", "List upcoming movies", (*catalog.Client).Upcoming))
	cmd.AddCommand(newMovieCommand())
	cmd.AddCommand(newSearchCommand())
	return cmd
}
