// Package api is the HTTP client for the CarbonHub emissions API.
//
// Every endpoint returns an envelope {status, data, message}; the client
// unwraps it and decodes data. Requests are rate limited on the client side,
// retried on transient failures, and optionally served from a file cache.
package api
