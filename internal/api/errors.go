package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCompanyNotFound is returned by CompanyDetail when the id is not listed.
var ErrCompanyNotFound = errors.New("company not found")

// DefaultAPIErrorMessage is used when a failed envelope carries no message.
const DefaultAPIErrorMessage = "API request failed"

// HTTPError is a non-2xx response.
type HTTPError struct {
	StatusCode int
	Path       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Temporary reports whether retrying may succeed.
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// APIError is a 2xx response whose envelope status is not "success".
//
//nolint:revive // APIError reads better than Error at call sites.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return DefaultAPIErrorMessage
	}
	return e.Message
}
