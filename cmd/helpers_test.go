package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bacalhau-project/amiaudit/internal/testdata"
)

func newStreamsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testdata.TestStreams))
	}))
	t.Cleanup(srv.Close)
	return srv
}
