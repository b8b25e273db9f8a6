package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joyamit/leave-manager/weather"
)

func TestClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/kolkata", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("format"))
		w.Write([]byte("kolkata: +31°C\n"))
	}))
	defer srv.Close()

	c := weather.New(weather.WithBaseURL(srv.URL))
	report, err := c.Current(context.Background(), "kolkata")
	require.NoError(t, err)
	assert.Equal(t, "kolkata: +31°C", report)
}

func TestClient_Current_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := weather.New(weather.WithBaseURL(srv.URL))
	_, err := c.Current(context.Background(), "kolkata")
	assert.Error(t, err)
}

func TestClient_Current_TimesOut(t *testing.T) {
	// The fetch is bounded: a stalled upstream yields an error instead
	// of a hang.

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := weather.New(weather.WithBaseURL(srv.URL), weather.WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := c.Current(context.Background(), "kolkata")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
