package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/carbonhub-app/carbonhub/internal/cache"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
	"github.com/carbonhub-app/carbonhub/internal/logging"
	"github.com/carbonhub-app/carbonhub/pkg/version"
)

// DefaultBaseURL is the production API.
const DefaultBaseURL = "https://api.carbonhub.app"

const (
	defaultTimeout = 15 * time.Second
	statusSuccess  = "success"
	maxBodyBytes   = 16 << 20
)

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL string

	// Timeout bounds each attempt, not the whole call.
	Timeout time.Duration
	Retries int

	// RetryDelays is the backoff schedule; the last delay repeats.
	RetryDelays []time.Duration

	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Burst     int

	// Cache, when non-nil and enabled, serves and stores response payloads.
	Cache *cache.FileStore

	HTTPClient *http.Client
}

// Client talks to the CarbonHub API. It is safe for concurrent use.
type Client struct {
	baseURL     string
	timeout     time.Duration
	retries     int
	retryDelays []time.Duration
	limiter     *rate.Limiter
	cache       *cache.FileStore
	http        *http.Client
}

// New returns a Client for opts.
func New(opts Options) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		timeout:     opts.Timeout,
		retries:     opts.Retries,
		retryDelays: opts.RetryDelays,
		cache:       opts.Cache,
		http:        opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if opts.RateLimit > 0 {
		burst := max(opts.Burst, 1)
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c
}

// BaseURL returns the API root the client calls.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Companies lists every company with its annual emissions preview.
func (c *Client) Companies(ctx context.Context) ([]Company, error) {
	var companies []Company
	if err := c.get(ctx, "/emission/companies", &companies); err != nil {
		return nil, fmt.Errorf("fetching companies: %w", err)
	}
	if companies == nil {
		companies = []Company{}
	}
	return companies, nil
}

// Emissions returns the raw series of kind for a company.
func (c *Client) Emissions(ctx context.Context, kind emissions.PeriodKind, companyID string) ([]emissions.Record, error) {
	path := fmt.Sprintf("/emission/%s/%s", kind, url.PathEscape(companyID))

	var records []emissions.Record
	if err := c.get(ctx, path, &records); err != nil {
		return nil, fmt.Errorf("fetching %s emissions for company %s: %w", kind, companyID, err)
	}
	if records == nil {
		records = []emissions.Record{}
	}
	return records, nil
}

// CompanyDetail finds companyID in the company list (ids compared as
// strings) and attaches its annual series.
func (c *Client) CompanyDetail(ctx context.Context, companyID string) (*CompanyDetail, error) {
	companies, err := c.Companies(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.TrimSpace(companyID)
	for _, company := range companies {
		if company.ID != want {
			continue
		}
		annual, annualErr := c.Emissions(ctx, emissions.PeriodAnnual, company.ID)
		if annualErr != nil {
			return nil, annualErr
		}
		return &CompanyDetail{Company: company, Annual: annual}, nil
	}
	return nil, fmt.Errorf("%w: id %s", ErrCompanyNotFound, companyID)
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type decodeError struct {
	path string
	err  error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.path, e.err)
}

func (e *decodeError) Unwrap() error { return e.err }

// get fetches path, unwraps the envelope and decodes data into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	log := logging.FromContext(ctx).With().Str("component", "api").Str("path", path).Logger()

	key := cache.Key(c.baseURL, path)
	if payload, ok := c.cached(ctx, key); ok {
		log.Debug().Ctx(ctx).Msg("cache hit")
		return decodeInto(path, payload, out)
	}

	start := time.Now()
	payload, err := withRetry(ctx, c.retries, c.retryDelays, c.timeout,
		func(attempt uint, err error) {
			log.Warn().Ctx(ctx).Uint("attempt", attempt+1).Err(err).Msg("request failed, retrying")
		},
		func(actx context.Context) (json.RawMessage, error) {
			return c.fetch(actx, path)
		},
	)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return err
	}
	log.Debug().Ctx(ctx).Dur("elapsed", time.Since(start)).Int("bytes", len(payload)).Msg("request succeeded")

	if err = decodeInto(path, payload, out); err != nil {
		return err
	}
	c.store(ctx, key, path, payload)
	return nil
}

// fetch performs one request and returns the envelope's data.
func (c *Client) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &decodeError{path: path, err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if id := logging.TraceIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var env envelope
	if err = json.Unmarshal(body, &env); err != nil {
		return nil, &decodeError{path: path, err: err}
	}
	if env.Status != statusSuccess {
		return nil, &APIError{Status: env.Status, Message: env.Message}
	}
	return env.Data, nil
}

func decodeInto(path string, payload json.RawMessage, out any) error {
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &decodeError{path: path, err: err}
	}
	return nil
}

func (c *Client) cached(ctx context.Context, key string) (json.RawMessage, bool) {
	if c.cache == nil || !c.cache.IsEnabled() {
		return nil, false
	}
	entry, err := c.cache.Get(key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheExpired) {
			logging.FromContext(ctx).Warn().Ctx(ctx).Str("component", "api").Err(err).Msg("cache read failed")
		}
		return nil, false
	}
	return entry.Data, true
}

func (c *Client) store(ctx context.Context, key, path string, payload json.RawMessage) {
	if c.cache == nil || !c.cache.IsEnabled() {
		return
	}
	if err := c.cache.Set(key, path, payload); err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).Str("component", "api").Err(err).Msg("cache write failed")
	}
}
