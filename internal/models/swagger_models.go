package models

// HTTPError represents an HTTP error response
// swagger:model HTTPError
type HTTPError struct {
	// HTTP status code
	Code int `json:"code"`
	// Error message
	Message string `json:"message"`
}

// CollectMeta carries metadata about one collection run
// swagger:model CollectMeta
type CollectMeta struct {
	// Run identifier
	RunID string `json:"run_id"`
	// Subreddit collected (single-subreddit runs)
	Subreddit string `json:"subreddit,omitempty"`
	// Subreddits collected (multi-subreddit runs)
	Subreddits []string `json:"subreddits,omitempty"`
	// Listing sort mode used
	Sort string `json:"sort"`
	// Time window, only meaningful for top
	TimeFilter string `json:"time_filter,omitempty"`
	// Requested post limit
	RequestedLimit int `json:"requested_limit"`
	// Actual count of posts returned
	PostCount int `json:"post_count"`
	// Actual count of comments returned
	CommentCount int `json:"comment_count"`
	// Processing time in milliseconds
	ProcessingTimeMs int64 `json:"processing_time_ms"`
	// Files written when export was requested
	Files []string `json:"files,omitempty"`
	// Telemetry snapshot after the run
	Stats RunStats `json:"stats"`
}

// CollectResponse is the response for a single-subreddit collection run
// swagger:model CollectResponse
type CollectResponse struct {
	// Collected posts
	Posts []Post `json:"posts"`
	// Collected comments
	Comments []Comment `json:"comments"`
	// Metadata about the run
	Meta CollectMeta `json:"meta"`
}

// MultiCollectResponse is the response for a multi-subreddit collection run
// swagger:model MultiCollectResponse
type MultiCollectResponse struct {
	// Collected posts keyed by subreddit
	Posts map[string][]Post `json:"posts"`
	// Collected comments across all subreddits
	Comments []Comment `json:"comments"`
	// Metadata about the run
	Meta CollectMeta `json:"meta"`
}
