package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/eventdesk/pkg/eventdesk/fetch"
)

type holiday struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// TestGet verifies a successful typed fetch.
func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`[{"name":"New Year","date":"2027-01-01"}]`))
	}))
	defer server.Close()

	got, err := fetch.Get[[]holiday](context.Background(), server.Client(), server.URL)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New Year", got[0].Name)
}

// TestGet_StatusError verifies non-2xx responses surface a StatusError.
func TestGet_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := fetch.Get[holiday](context.Background(), server.Client(), server.URL)

	var statusErr *fetch.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "HTTP 404")
}

// TestGet_DecodeError verifies malformed bodies are reported.
func TestGet_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := fetch.Get[holiday](context.Background(), server.Client(), server.URL)
	assert.ErrorContains(t, err, "decode response")
}

// TestGet_ContextCancelled verifies cancellation propagates.
func TestGet_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetch.Get[holiday](ctx, server.Client(), server.URL)
	assert.Error(t, err)
}

// TestGet_NilClient verifies the default client fallback.
func TestGet_NilClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"X","date":"2027-01-01"}`))
	}))
	defer server.Close()

	got, err := fetch.Get[holiday](context.Background(), nil, server.URL)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
}
