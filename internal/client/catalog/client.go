// Package catalog is the read-only client for the third-party
// movie-metadata API: paginated listings, full detail with credits and
// videos, and combined multi-type search. Requests carry the catalog
// provider's bearer credential, which is unrelated to the first-party
// session token.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/movieflix/movieflix-go/internal/model"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultImageURL = "https://image.tmdb.org/t/p"
	defaultTimeout  = 15 * time.Second

	placeholderImage = "https://via.placeholder.com/500x750/1C1C1C/FFFFFF?text=No+Image"
)

var (
	ErrTimeout     = errors.New("catalog request timed out")
	ErrUnavailable = errors.New("catalog unavailable")
)

// StatusError reports a non-2xx response from the catalog API.
type StatusError struct {
	Endpoint string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s: unexpected status %d", e.Endpoint, e.Status)
}

// Client queries the catalog API.
type Client struct {
	baseURL    string
	imageURL   string
	token      string
	language   string
	httpClient *http.Client
}

// Options overrides Client defaults; zero values keep them.
type Options struct {
	BaseURL    string
	ImageURL   string
	Language   string
	HTTPClient *http.Client
}

// NewClient creates a catalog Client authenticating with the given
// provider-issued read-only bearer token.
func NewClient(token string, opts Options) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		imageURL:   defaultImageURL,
		token:      token,
		language:   "en-US",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	if opts.ImageURL != "" {
		c.imageURL = opts.ImageURL
	}
	if opts.Language != "" {
		c.language = opts.Language
	}
	if opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
	}
	return c
}

// Popular returns one page of the popular-movies listing.
func (c *Client) Popular(ctx context.Context, page int) ([]model.Movie, error) {
	return c.listing(ctx, "/movie/popular", page)
}

// NowPlaying returns one page of the now-playing listing.
func (c *Client) NowPlaying(ctx context.Context, page int) ([]model.Movie, error) {
	return c.listing(ctx, "/movie/now_playing", page)
}

// TopRated returns one page of the top-rated listing.
func (c *Client) TopRated(ctx context.Context, page int) ([]model.Movie, error) {
	return c.listing(ctx, "/movie/top_rated", page)
}

// Upcoming returns one page of the upcoming listing.
func (c *Client) Upcoming(ctx context.Context, page int) ([]model.Movie, error) {
	return c.listing(ctx, "/movie/upcoming", page)
}

func (c *Client) listing(ctx context.Context, endpoint string, page int) ([]model.Movie, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))

	var pageResp model.MoviePage
	if err := c.get(ctx, endpoint, q, &pageResp); err != nil {
		return nil, err
	}
	return pageResp.Results, nil
}

// Details returns the full record of one movie together with its credits
// and promotional videos. The three requests run concurrently; the first
// failure wins.
func (c *Client) Details(ctx context.Context, movieID int64) (*model.MovieDetails, error) {
	base := fmt.Sprintf("/movie/%d", movieID)

	var (
		details model.MovieDetails
		videos  struct {
			Results []model.Video `json:"results"`
		}
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	fetch := func(endpoint string, out any) {
		defer wg.Done()
		if err := c.get(ctx, endpoint, nil, out); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}

	wg.Add(3)
	go fetch(base, &details.Movie)
	go fetch(base+"/credits", &details.Credits)
	go fetch(base+"/videos", &videos)
	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}

	details.Videos = videos.Results
	return &details, nil
}

// SearchMulti runs the combined movie/tv/person search, excluding adult
// content.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]model.SearchResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", "1")
	q.Set("include_adult", "false")

	var resp struct {
		Results []model.SearchResult `json:"results"`
	}
	if err := c.get(ctx, "/search/multi", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// ImageURL builds the full URL of a poster or backdrop; an empty path gets
// the placeholder image. size is a provider size tag like "w500".
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return placeholderImage
	}
	if size == "" {
		size = "w500"
	}
	return fmt.Sprintf("%s/%s%s", c.imageURL, size, path)
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return fmt.Errorf("%w: %s", ErrTimeout, endpoint)
		}
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding catalog response %s: %w", endpoint, err)
	}
	return nil
}
