package cli_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carbonhub-app/carbonhub/internal/cli"
	"github.com/carbonhub-app/carbonhub/internal/config"
)

const (
	companiesJSON = `{"status":"success","data":[
		{"id":1,"name":"Acme Steel","industry":"Steel","location":"Ohio","annual_emissions":120.5},
		{"id":"2","name":"Blue Energy","industry":"Energy","location":"Texas","annual_emissions":"300"},
		{"id":3,"name":"cedar Foods","industry":"Food","location":"Oregon","annual_emissions":[{"year":2023,"totalTon":40}]}
	]}`
	annualJSON  = `{"status":"success","data":[{"year":2022,"totalTon":110},{"year":2021,"totalTon":100},{"year":2023,"totalTon":120}]}`
	monthlyJSON = `{"status":"success","data":[{"month":"2024-02","totalTon":11},{"month":"2024-01","totalTon":9}]}`
	emptyJSON   = `{"status":"success","data":[]}`
)

// apiServer serves a fixed CarbonHub API and counts requests.
type apiServer struct {
	*httptest.Server
	requests atomic.Int64
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()
	s := &apiServer{}
	routes := map[string]string{
		"/emission/companies": companiesJSON,
		"/emission/annual/1":  annualJSON,
		"/emission/monthly/1": monthlyJSON,
		"/emission/daily/1":   emptyJSON,
		"/emission/annual/3":  annualJSON,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

// setupCLITest isolates config, cache and preferences in a temp home.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvRetries, "0")
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvExportDir, "")
	t.Setenv(config.EnvTheme, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustExecute runs args against srv and fails the test on error.
func mustExecute(t *testing.T, srv *apiServer, args ...string) string {
	t.Helper()
	out, stderr, err := execute(t, append(args, "--base-url", srv.URL)...)
	require.NoError(t, err, "stderr: %s", stderr)
	return out
}
