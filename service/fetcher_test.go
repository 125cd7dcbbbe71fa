package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"text-summarizer/config"
	"text-summarizer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(timeout time.Duration) Fetcher {
	return NewHTTPFetcher(config.FetchConfig{
		Timeout:      timeout,
		UserAgent:    "TextSummarizerBot/test",
		MaxBodyBytes: 1 << 20,
	}, testLogger())
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TextSummarizerBot/test", r.Header.Get("User-Agent"))
		w.Write([]byte("<html><body><p>hello</p></body></html>"))
	}))
	defer server.Close()

	f := newTestFetcher(5 * time.Second)

	body, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hello")
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	tests := map[string]int{
		"should fail on 404": http.StatusNotFound,
		"should fail on 500": http.StatusInternalServerError,
		"should fail on 403": http.StatusForbidden,
	}

	for name, status := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			f := newTestFetcher(5 * time.Second)

			body, err := f.Fetch(context.Background(), server.URL)
			assert.ErrorIs(t, err, domain.ErrFetchFailed)
			assert.Nil(t, body)
		})
	}
}

func TestFetch_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f := newTestFetcher(2 * time.Second)

	body, err := f.Fetch(context.Background(), url)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, body)
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	f := newTestFetcher(50 * time.Millisecond)

	body, err := f.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, body)
}

func TestFetch_InvalidURL(t *testing.T) {
	f := newTestFetcher(time.Second)

	tests := map[string]string{
		"should reject relative url": "/just/a/path",
		"should reject ftp scheme":   "ftp://example.com/file",
		"should reject empty url":    "",
	}

	for name, rawURL := range tests {
		t.Run(name, func(t *testing.T) {
			body, err := f.Fetch(context.Background(), rawURL)
			assert.ErrorIs(t, err, domain.ErrInvalidURL)
			assert.Nil(t, body)
		})
	}
}

func TestFetch_BodySizeCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 1024; i++ {
			w.Write([]byte("0123456789"))
		}
	}))
	defer server.Close()

	f := NewHTTPFetcher(config.FetchConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "TextSummarizerBot/test",
		MaxBodyBytes: 100,
	}, testLogger())

	body, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, body, 100)
}
