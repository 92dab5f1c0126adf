package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reddit-radar/internal/client"
	"reddit-radar/internal/config"
)

func newTestClient(t *testing.T, baseURL, tokenURL string) *client.RedditClient {
	t.Helper()

	c, err := client.NewRedditClient(&config.Config{
		ClientID:       "test-id",
		ClientSecret:   "test-secret",
		UserAgent:      "radar-test/1.0",
		APIBaseURL:     baseURL,
		TokenURL:       tokenURL,
		MaxRetries:     1,
		RequestTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

func TestListingURL(t *testing.T) {
	c := newTestClient(t, "https://oauth.reddit.com", "https://example.com/token")

	url := c.ListingURL("golang", "top", "week", 50, "t3_after1")
	if !strings.HasPrefix(url, "https://oauth.reddit.com/r/golang/top.json?raw_json=1") {
		t.Errorf("Unexpected base URL: %s", url)
	}
	if !strings.Contains(url, "limit=50") || !strings.Contains(url, "after=t3_after1") {
		t.Errorf("Expected limit and after params, got: %s", url)
	}
	if !strings.Contains(url, "t=week") {
		t.Errorf("Expected time filter for top sort, got: %s", url)
	}

	// The time filter only applies to top.
	url = c.ListingURL("golang", "hot", "week", 50, "")
	if strings.Contains(url, "t=week") {
		t.Errorf("Time filter must not apply to hot sort, got: %s", url)
	}
	if strings.Contains(url, "after=") {
		t.Errorf("Empty cursor must not produce an after param, got: %s", url)
	}
}

func TestCommentTreeURL(t *testing.T) {
	c := newTestClient(t, "https://oauth.reddit.com", "https://example.com/token")

	url := c.CommentTreeURL("abc123", "top", 100)
	if !strings.HasPrefix(url, "https://oauth.reddit.com/comments/abc123.json?raw_json=1") {
		t.Errorf("Unexpected base URL: %s", url)
	}
	if !strings.Contains(url, "sort=top") || !strings.Contains(url, "limit=100") {
		t.Errorf("Expected sort and limit params, got: %s", url)
	}
}

func TestFetchJSONTokenFlow(t *testing.T) {
	tokenCalls := 0
	var seenAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if user, pass, ok := r.BasicAuth(); !ok || user != "test-id" || pass != "test-secret" {
			t.Errorf("Expected basic auth with client credentials, got %q/%q", user, pass)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/r/golang/hot.json", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"children":[]}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL+"/api/v1/access_token")

	ctx := context.Background()
	if _, err := c.FetchJSON(ctx, c.ListingURL("golang", "hot", "", 10, "")); err != nil {
		t.Fatalf("FetchJSON returned error: %v", err)
	}
	if _, err := c.FetchJSON(ctx, c.ListingURL("golang", "hot", "", 10, "")); err != nil {
		t.Fatalf("FetchJSON returned error: %v", err)
	}

	if seenAuth != "Bearer tok-1" {
		t.Errorf("Expected bearer token on data requests, got %q", seenAuth)
	}

	// The cached token serves both requests.
	if tokenCalls != 1 {
		t.Errorf("Expected 1 token request, got %d", tokenCalls)
	}
}

func TestFetchJSONRefreshesRejectedToken(t *testing.T) {
	tokenCalls := 0
	dataCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		w.Write([]byte(`{"access_token":"tok-` + string(rune('0'+tokenCalls)) + `","expires_in":3600}`))
	})
	mux.HandleFunc("/r/golang/hot.json", func(w http.ResponseWriter, r *http.Request) {
		dataCalls++
		if dataCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"data":{"children":[]}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL+"/api/v1/access_token")

	if _, err := c.FetchJSON(context.Background(), c.ListingURL("golang", "hot", "", 10, "")); err != nil {
		t.Fatalf("FetchJSON returned error after token refresh: %v", err)
	}

	if tokenCalls != 2 {
		t.Errorf("Expected a second token request after a 401, got %d", tokenCalls)
	}
	if dataCalls != 2 {
		t.Errorf("Expected the data request to be retried once, got %d", dataCalls)
	}
}

func TestFetchJSONErrorStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok-1","expires_in":3600}`))
	})
	mux.HandleFunc("/r/nope/hot.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL+"/api/v1/access_token")

	if _, err := c.FetchJSON(context.Background(), c.ListingURL("nope", "hot", "", 10, "")); err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}
}
