package collector_test

import (
	"context"
	"encoding/json"

	"reddit-radar/internal/models"
)

type MockRedditClient struct {
	FetchJSONFunc      func(ctx context.Context, url string) (json.RawMessage, error)
	ListingURLFunc     func(subreddit, sort, timeFilter string, limit int, after string) string
	CommentTreeURLFunc func(postID, sort string, limit int) string
}

func (m *MockRedditClient) FetchJSON(ctx context.Context, url string) (json.RawMessage, error) {
	return m.FetchJSONFunc(ctx, url)
}

func (m *MockRedditClient) ListingURL(subreddit, sort, timeFilter string, limit int, after string) string {
	if m.ListingURLFunc == nil {
		return "listing"
	}
	return m.ListingURLFunc(subreddit, sort, timeFilter, limit, after)
}

func (m *MockRedditClient) CommentTreeURL(postID, sort string, limit int) string {
	if m.CommentTreeURLFunc == nil {
		return "tree"
	}
	return m.CommentTreeURLFunc(postID, sort, limit)
}

type MockParser struct {
	ParseListingFunc     func(ctx context.Context, data json.RawMessage) ([]models.Submission, string, error)
	ParseCommentTreeFunc func(ctx context.Context, data json.RawMessage) ([]models.CommentNode, error)
}

func (m *MockParser) ParseListing(ctx context.Context, data json.RawMessage) ([]models.Submission, string, error) {
	return m.ParseListingFunc(ctx, data)
}

func (m *MockParser) ParseCommentTree(ctx context.Context, data json.RawMessage) ([]models.CommentNode, error) {
	return m.ParseCommentTreeFunc(ctx, data)
}
