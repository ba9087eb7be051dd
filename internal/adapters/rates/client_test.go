package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest.json", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "test-key", r.URL.Query().Get("app_id"))
		_, _ = w.Write([]byte(`{"rates":{"EUR":0.92,"INR":83.25,"JPY":155.0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 2*time.Second)
	rates, err := c.FetchRates(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 3)
	assert.Equal(t, "83.25", rates["INR"].String())
}

func TestClient_FetchRates_MissingRatesField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"disclaimer":"nope"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 2*time.Second)
	_, err := c.FetchRates(context.Background())
	assert.Error(t, err)
}

func TestClient_FetchRates_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 2*time.Second)
	_, err := c.FetchRates(context.Background())
	assert.Error(t, err)
}
