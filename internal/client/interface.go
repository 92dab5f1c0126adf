// internal/client/interface.go
package client

import (
	"context"
	"encoding/json"
)

type RedditClientInterface interface {
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)
	ListingURL(subreddit, sort, timeFilter string, limit int, after string) string
	CommentTreeURL(postID, sort string, limit int) string
}
