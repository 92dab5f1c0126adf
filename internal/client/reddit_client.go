// internal/client/reddit_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"reddit-radar/internal/config"
	"reddit-radar/pkg/utils"
)

// RedditClient talks to the Reddit API with app-only OAuth credentials. The
// token is cached and refreshed shortly before expiry; retries, backoff and
// proxy handling live in the underlying RetryableClient.
type RedditClient struct {
	client       *utils.RetryableClient
	userAgent    string
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewRedditClient(cfg *config.Config) (*RedditClient, error) {
	httpClient, err := utils.NewRetryableClient(
		cfg.ProxyURLs,
		cfg.MaxRetries,
		cfg.UserAgent,
		cfg.RequestTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("create HTTP client: %w", err)
	}

	return &RedditClient{
		client:       httpClient,
		userAgent:    cfg.UserAgent,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      cfg.APIBaseURL,
		tokenURL:     cfg.TokenURL,
	}, nil
}

// ensureToken returns a valid access token, requesting a fresh one through
// the client-credentials grant when the cached token is missing or within a
// minute of expiring.
func (r *RedditClient) ensureToken(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.accessToken != "" && time.Now().Before(r.tokenExpiry.Add(-time.Minute)) {
		return r.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(r.clientID, r.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, body, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request: status %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	r.accessToken = token.AccessToken
	r.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	slog.Debug("refreshed API token", "expires_in", token.ExpiresIn)

	return r.accessToken, nil
}

func (r *RedditClient) invalidateToken() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accessToken = ""
	r.tokenExpiry = time.Time{}
}

func (r *RedditClient) FetchJSON(ctx context.Context, rawURL string) (json.RawMessage, error) {
	resp, body, err := r.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	// A rejected token gets one refresh-and-retry before giving up.
	if resp.StatusCode == http.StatusUnauthorized {
		slog.Debug("token rejected, refreshing", "url", rawURL)
		r.invalidateToken()

		resp, body, err = r.get(ctx, rawURL)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchJSON request: status %d", resp.StatusCode)
	}

	return body, nil
}

func (r *RedditClient) get(ctx context.Context, rawURL string) (*http.Response, []byte, error) {
	token, err := r.ensureToken(ctx)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, body, err := r.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetchJSON request: %w", err)
	}

	return resp, body, nil
}

// ListingURL builds one page of a subreddit listing under the given sort.
// The time filter is only meaningful for top.
func (r *RedditClient) ListingURL(subreddit, sort, timeFilter string, limit int, after string) string {
	baseURL := fmt.Sprintf("%s/r/%s/%s.json?raw_json=1", r.baseURL, subreddit, sort)

	params := url.Values{}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	if after != "" {
		params.Set("after", after)
	}
	if sort == "top" && timeFilter != "" {
		params.Set("t", timeFilter)
	}

	paramsStr := params.Encode()
	if paramsStr != "" {
		baseURL += "&" + paramsStr
	}

	return baseURL
}

// CommentTreeURL builds the comments endpoint for one post. Branches the
// server leaves unexpanded come back as "more" stubs; nothing here ever
// requests their expansion.
func (r *RedditClient) CommentTreeURL(postID, sort string, limit int) string {
	baseURL := fmt.Sprintf("%s/comments/%s.json?raw_json=1", r.baseURL, postID)

	params := url.Values{}
	if sort != "" {
		params.Set("sort", sort)
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	paramsStr := params.Encode()
	if paramsStr != "" {
		baseURL += "&" + paramsStr
	}

	return baseURL
}
