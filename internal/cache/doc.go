// Package cache stores API responses on disk with TTL expiration.
//
// Repeated CLI invocations (listing companies, then opening one) reuse the
// responses fetched moments earlier instead of calling the API again:
//   - one JSON file per entry under <config dir>/cache
//   - SHA-256 keys derived from the request path
//   - TTL between one minute and seven days, one hour by default
//   - CARBONHUB_CACHE_* environment overrides
package cache
