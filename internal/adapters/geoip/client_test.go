package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Locate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.7/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"country_code":"IN","country_name":"India","currency":"INR"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	loc, err := c.Locate(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, "IN", loc.CountryCode)
	assert.Equal(t, "India", loc.CountryName)
	assert.Equal(t, "INR", loc.Currency)
}

func TestClient_Locate_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Locate(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}

func TestClient_Locate_MissingCountryCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"currency":"USD"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Locate(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}

func TestClient_Locate_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Locate(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}
