package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/api"
	"github.com/carbonhub-app/carbonhub/internal/cache"
	"github.com/carbonhub-app/carbonhub/internal/config"
)

// retryDelays is the backoff schedule between API attempts.
var retryDelays = []time.Duration{ //nolint:gochecknoglobals // fixed schedule
	500 * time.Millisecond,
	time.Second,
	2 * time.Second,
}

// newCacheStore builds the response cache from config, env and flags.
func newCacheStore(cmd *cobra.Command, cfg *config.Config) (*cache.FileStore, error) {
	dir, err := cfg.GetCacheDir()
	if err != nil {
		return nil, err
	}

	opts := cache.ApplyEnv(cache.Options{
		Directory: dir,
		Enabled:   cfg.Cache.Enabled,
		TTL:       time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	})

	if ttl, _ := cmd.Flags().GetString("cache-ttl"); ttl != "" {
		seconds, parseErr := cache.ParseTTL(ttl)
		if parseErr != nil {
			return nil, usageErrorf("invalid --cache-ttl: %w", parseErr)
		}
		opts.TTL = time.Duration(seconds) * time.Second
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		opts.Enabled = false
	}

	return cache.NewFileStore(opts)
}

// newClient builds the API client for cmd. A cache that cannot be opened is
// logged and skipped.
func newClient(cmd *cobra.Command) *api.Client {
	cfg := config.GetGlobalConfig()

	baseURL := cfg.API.BaseURL
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		baseURL = v
	}

	store, err := newCacheStore(cmd, cfg)
	if err != nil {
		logger.Warn().Ctx(cmd.Context()).Err(err).Msg("response cache unavailable")
		store = nil
	}

	return api.New(api.Options{
		BaseURL:     baseURL,
		Timeout:     time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		Retries:     cfg.API.Retries,
		RetryDelays: retryDelays,
		RateLimit:   cfg.API.RateLimit,
		Burst:       cfg.API.Burst,
		Cache:       store,
	})
}
