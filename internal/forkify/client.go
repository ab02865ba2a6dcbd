// Package forkify is a client for the public Forkify recipe API.
package forkify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

// DefaultBaseURL is the public Forkify v1 endpoint.
const DefaultBaseURL = "https://forkify-api.herokuapp.com"

// Compile-time interface check.
var _ domain.RecipeSource = (*Client)(nil)

// ── Wire types ───────────────────────────────────────────────────

type searchResponse struct {
	Count   int          `json:"count"`
	Recipes []wireRecipe `json:"recipes"`
	Error   string       `json:"error,omitempty"`
}

type getResponse struct {
	Recipe *wireRecipe `json:"recipe"`
	Error  string      `json:"error,omitempty"`
}

type wireRecipe struct {
	ID          string   `json:"recipe_id"`
	Title       string   `json:"title"`
	Publisher   string   `json:"publisher"`
	ImageURL    string   `json:"image_url"`
	SourceURL   string   `json:"source_url"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// ── Client ───────────────────────────────────────────────────────

// Option configures the Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.http.SetBaseURL(url) }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithRateLimit paces outgoing requests. rps <= 0 disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// Client fetches search results and recipes. One request per call, no
// retries.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a Forkify client.
func NewClient(log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json"),
		limiter: rate.NewLimiter(rate.Limit(2), 1),
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search returns the recipes matching query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	var body searchResponse
	if err := c.do(ctx, "search", "/api/search", "q", query, &body); err != nil {
		return nil, err
	}
	if body.Error != "" {
		return nil, &domain.FetchError{Op: "search", Err: fmt.Errorf("%w: %s", domain.ErrNotFound, body.Error)}
	}

	out := make([]domain.RecipeSummary, 0, len(body.Recipes))
	for _, r := range body.Recipes {
		out = append(out, domain.RecipeSummary{
			ID:       r.ID,
			Title:    r.Title,
			Author:   r.Publisher,
			ImageURL: r.ImageURL,
		})
	}
	c.log.Debug("forkify: search %q returned %d recipes (count=%d)", query, len(out), body.Count)
	return out, nil
}

// Get returns the raw recipe with the given ID.
func (c *Client) Get(ctx context.Context, id string) (*domain.RawRecipe, error) {
	var body getResponse
	if err := c.do(ctx, "get", "/api/get", "rId", id, &body); err != nil {
		return nil, err
	}
	if body.Error != "" || body.Recipe == nil {
		return nil, &domain.FetchError{Op: "get", Err: fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)}
	}

	r := body.Recipe
	c.log.Debug("forkify: got recipe %s (%d ingredient lines)", r.ID, len(r.Ingredients))
	return &domain.RawRecipe{
		ID:              r.ID,
		Title:           r.Title,
		Author:          r.Publisher,
		ImageURL:        r.ImageURL,
		SourceURL:       r.SourceURL,
		IngredientLines: r.Ingredients,
	}, nil
}

func (c *Client) do(ctx context.Context, op, path, param, value string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.FetchError{Op: op, Err: err}
	}

	c.log.Debug("forkify: GET %s?%s=%s", path, param, value)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam(param, value).
		Get(path)
	if err != nil {
		return &domain.FetchError{Op: op, Err: err}
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return &domain.FetchError{Op: op, Err: fmt.Errorf("%s: %w", resp.Status(), domain.ErrNotFound)}
	case resp.IsError():
		return &domain.FetchError{Op: op, Err: errors.New(resp.Status())}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &domain.FetchError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
