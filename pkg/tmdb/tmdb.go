// Package tmdb is a small client for the TMDB v3 tv search endpoint.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mhttp "github.com/kasuboski/sceneid/pkg/http"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/names"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a search has no results.
var ErrNotFound = errors.New("show not found in tmdb")

const searchTVPath = "/3/search/tv"

// RequestEditorFn can change a request before it is sent
type RequestEditorFn func(ctx context.Context, req *http.Request) error

func SetRequestAPIKey(apiKey string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

type Client struct {
	baseURL  *url.URL
	apiKey   string
	language string
	http     mhttp.HTTPClient
}

type ClientOption func(*Client)

func WithHTTPClient(c mhttp.HTTPClient) ClientOption {
	return func(client *Client) {
		client.http = c
	}
}

// WithLanguage sets the locale searches are made in unless all locales are requested
func WithLanguage(language string) ClientOption {
	return func(client *Client) {
		client.language = language
	}
}

func New(baseURL, apiKey string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tmdb url %q: %w", baseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid tmdb url %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type SearchTVParams struct {
	Query    string
	Language string
	Page     int
}

type Series struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	OriginalName  string   `json:"original_name"`
	FirstAirDate  string   `json:"first_air_date"`
	OriginCountry []string `json:"origin_country"`
	Overview      string   `json:"overview"`
}

type SearchTVResponse struct {
	Page         int      `json:"page"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
	Results      []Series `json:"results"`
}

// SearchTV calls /3/search/tv
func (c *Client) SearchTV(ctx context.Context, params SearchTVParams, reqEditors ...RequestEditorFn) (*SearchTVResponse, error) {
	u := c.baseURL.JoinPath(searchTVPath)

	q := u.Query()
	q.Set("query", params.Query)
	q.Set("include_adult", "false")
	if params.Language != "" {
		q.Set("language", params.Language)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	editors := append([]RequestEditorFn{SetRequestAPIKey(c.apiKey)}, reqEditors...)
	for _, edit := range editors {
		if err := edit(ctx, req); err != nil {
			return nil, err
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseSearchTVResponse(res)
}

func parseSearchTVResponse(res *http.Response) (*SearchTVResponse, error) {
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, fmt.Errorf("unexpected status code %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var result SearchTVResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return &result, nil
}

// FindByName searches for a show by name. A result whose name matches the query
// is preferred over TMDB's ranking. When no result matches by name the top ranked
// result is returned, which may be an unrelated show.
// With searchAllLocales the configured language is not sent.
func (c *Client) FindByName(ctx context.Context, name string, searchAllLocales bool) (*Series, error) {
	log := logger.FromCtx(ctx, zap.String("name", name), zap.Bool("allLocales", searchAllLocales))

	params := SearchTVParams{Query: name}
	if !searchAllLocales {
		params.Language = c.language
	}

	resp, err := c.SearchTV(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		log.Debug("no tmdb results")
		return nil, ErrNotFound
	}

	wanted := names.FullSanitize(name)
	for _, s := range resp.Results {
		if names.FullSanitize(s.Name) == wanted || names.FullSanitize(s.OriginalName) == wanted {
			log.Debugw("found tmdb show", zap.Int64("id", s.ID))
			return &s, nil
		}
	}

	first := resp.Results[0]
	log.Debugw("using first tmdb result", zap.Int64("id", first.ID), zap.String("result", first.Name))
	return &first, nil
}
