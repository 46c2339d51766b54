package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/five82/shiki/internal/catalog"
)

// ErrRateLimited is returned when the API answers 429 Too Many Requests.
var ErrRateLimited = errors.New("jikan rate limit exceeded")

// StatusError reports a non-success HTTP status other than 429.
type StatusError struct {
	Path   string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

const (
	DefaultBaseURL   = "https://api.jikan.moe/v4"
	DefaultPageDelay = 300 * time.Millisecond
	defaultUserAgent = "shiki/0.1"
	requestTimeout   = 10 * time.Second
)

// Seasons lists the season names accepted by the seasonal endpoint.
var Seasons = []string{"winter", "spring", "summer", "fall"}

// ValidSeason reports whether name is one of Seasons.
func ValidSeason(name string) bool {
	for _, s := range Seasons {
		if s == name {
			return true
		}
	}
	return false
}

// Options configure a Client.
type Options struct {
	BaseURL   string
	Year      int
	Season    string
	PageDelay time.Duration // pause before every request; negative disables
	Timeout   time.Duration
	Logger    *slog.Logger
}

// Client talks to the Jikan v4 REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	year      int
	season    string
	delay     time.Duration
	logger    *slog.Logger
}

// NewClient builds a Client for one season listing.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	season := strings.ToLower(strings.TrimSpace(opts.Season))
	if !ValidSeason(season) {
		return nil, fmt.Errorf("unknown season %q", opts.Season)
	}
	if opts.Year <= 0 {
		return nil, fmt.Errorf("invalid year %d", opts.Year)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	delay := opts.PageDelay
	if delay < 0 {
		delay = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		year:      opts.Year,
		season:    season,
		delay:     delay,
		logger:    logger,
	}, nil
}

// FetchSeasonPage retrieves one page of the seasonal listing and normalizes it.
func (c *Client) FetchSeasonPage(ctx context.Context, page int) (catalog.Page, error) {
	if c == nil {
		return catalog.Page{}, fmt.Errorf("client is nil")
	}
	if page < 1 {
		return catalog.Page{}, fmt.Errorf("invalid page %d", page)
	}

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return catalog.Page{}, ctx.Err()
		case <-timer.C:
		}
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	rel := &url.URL{
		Path:     fmt.Sprintf("seasons/%d/%s", c.year, c.season),
		RawQuery: values.Encode(),
	}

	var payload SeasonResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		c.logger.Warn("season page fetch failed", "page", page, "error", err)
		return catalog.Page{}, err
	}

	result := MapPage(payload)
	c.logger.Debug("fetched season page",
		"page", page,
		"items", len(result.Items),
		"has_next", result.Pagination.HasNextPage,
	)
	return result, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("jikan request", "method", method, "url", reqURL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode >= 400 {
		return &StatusError{Path: rel.Path, Code: resp.StatusCode, Status: resp.Status}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
