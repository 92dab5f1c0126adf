package models

import "encoding/json"

// Post represents a collected Reddit submission
// swagger:model Post
type Post struct {
	// Reddit post ID
	ID string `json:"id" csv:"id"`
	// Post title
	Title string `json:"title" csv:"title"`
	// Self-text body (empty for link posts)
	Selftext string `json:"selftext" csv:"selftext"`
	// Subreddit the post belongs to
	Subreddit string `json:"subreddit" csv:"subreddit"`
	// Author's username, "[deleted]" when the account is gone
	Author string `json:"author" csv:"author"`
	// Post score (upvotes minus downvotes)
	Score int `json:"score" csv:"score"`
	// Ratio of upvotes to total votes
	UpvoteRatio float64 `json:"upvote_ratio" csv:"upvote_ratio"`
	// Comment count reported by the API
	NumComments int `json:"num_comments" csv:"num_comments"`
	// Creation timestamp in epoch seconds
	CreatedUTC float64 `json:"created_utc" csv:"created_utc"`
	// Link URL (external target or the post itself for self posts)
	URL string `json:"url" csv:"url"`
	// Full permalink URL
	Permalink string `json:"permalink" csv:"permalink"`
	// Link flair text
	LinkFlairText string `json:"link_flair_text,omitempty" csv:"link_flair_text"`
	// Whether this is a self (text) post
	IsSelf bool `json:"is_self" csv:"is_self"`
	// NSFW flag
	Over18 bool `json:"over_18" csv:"over_18"`
	// Spoiler flag
	Spoiler bool `json:"spoiler" csv:"spoiler"`
	// Whether the post is stickied in its subreddit
	Stickied bool `json:"stickied" csv:"stickied"`
	// Whether the post is locked against new comments
	Locked bool `json:"locked" csv:"locked"`
	// Moderator/admin distinguish marker
	Distinguished string `json:"distinguished,omitempty" csv:"distinguished"`
	// Retrieval timestamp, ISO-8601 UTC
	RetrievedAt string `json:"retrieved_at" csv:"retrieved_at"`
	// Number of comments retained for this post in this run
	CommentsCollected int `json:"comments_collected" csv:"comments_collected"`
	// Highest score among retained comments, absent when none were retained
	TopCommentScore *int `json:"top_comment_score,omitempty" csv:"top_comment_score"`
	// Mean score of retained comments, absent when none were retained
	AvgCommentScore *float64 `json:"avg_comment_score,omitempty" csv:"avg_comment_score"`
}

// Comment represents a collected Reddit comment
// swagger:model Comment
type Comment struct {
	// Comment ID
	ID string `json:"id" csv:"id"`
	// ID of the post the comment belongs to
	PostID string `json:"post_id" csv:"post_id"`
	// ID of the parent comment, or the post ID for top-level comments
	ParentID string `json:"parent_id" csv:"parent_id"`
	// Subreddit the comment was posted in
	Subreddit string `json:"subreddit" csv:"subreddit"`
	// Comment author's username, "[deleted]" when the account is gone
	Author string `json:"author" csv:"author"`
	// Comment body text
	Body string `json:"body" csv:"body"`
	// Comment score
	Score int `json:"score" csv:"score"`
	// Creation timestamp in epoch seconds
	CreatedUTC float64 `json:"created_utc" csv:"created_utc"`
	// Full permalink URL
	Permalink string `json:"permalink" csv:"permalink"`
	// Whether the comment author is the post author
	IsSubmitter bool `json:"is_submitter" csv:"is_submitter"`
	// Nesting depth, 0 for top-level comments
	Depth int `json:"depth" csv:"depth"`
	// Controversiality indicator from the API (0 or 1)
	Controversiality int `json:"controversiality" csv:"controversiality"`
	// Moderator/admin distinguish marker
	Distinguished string `json:"distinguished,omitempty" csv:"distinguished"`
	// Whether the comment was edited after posting
	Edited bool `json:"edited" csv:"edited"`
	// Retrieval timestamp, ISO-8601 UTC
	RetrievedAt string `json:"retrieved_at" csv:"retrieved_at"`
}

// Submission is the raw listing payload for a single post, as returned by
// the API before any normalization.
type Submission struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Selftext      string  `json:"selftext"`
	Subreddit     string  `json:"subreddit"`
	Author        string  `json:"author"`
	Score         int     `json:"score"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	LinkFlairText string  `json:"link_flair_text"`
	IsSelf        bool    `json:"is_self"`
	Over18        bool    `json:"over_18"`
	Spoiler       bool    `json:"spoiler"`
	Stickied      bool    `json:"stickied"`
	Locked        bool    `json:"locked"`
	Distinguished string  `json:"distinguished"`
}

// CommentNode is one node of a fetched comment tree. Depth is the value the
// API reported, or -1 when it was omitted. ParentID keeps the raw fullname
// (t1_/t3_ prefixed). Placeholder nodes stand in for unexpanded branches and
// carry the count of comments hidden behind them.
type CommentNode struct {
	ID               string
	Author           string
	Body             string
	Score            int
	CreatedUTC       float64
	Permalink        string
	IsSubmitter      bool
	Depth            int
	Controversiality int
	Distinguished    string
	Edited           bool
	ParentID         string
	Replies          []CommentNode
	IsPlaceholder    bool
	MoreCount        int
}

// RunStats is a snapshot of one collection run's telemetry
// swagger:model RunStats
type RunStats struct {
	// Total rate-limited requests granted
	TotalRequests int `json:"total_requests"`
	// Comment-class requests granted
	CommentRequests int `json:"comment_requests"`
	// Listing or tree fetches that failed upstream
	FailedRequests int `json:"failed_requests"`
	// Comments retained across all posts
	CommentsCollected int `json:"comments_collected"`
	// Comments dropped by the filter
	CommentsSkipped int `json:"comments_skipped"`
	// (total - failed) / max(total, 1)
	SuccessRate float64 `json:"success_rate"`
}

// RawChild is an internal structure used for parsing Reddit API responses
type RawChild struct {
	Kind string `json:"kind"`
	Data struct {
		ID               string          `json:"id"`
		Author           string          `json:"author"`
		Body             string          `json:"body"`
		Score            int             `json:"score"`
		CreatedUTC       float64         `json:"created_utc"`
		Permalink        string          `json:"permalink"`
		IsSubmitter      bool            `json:"is_submitter"`
		Depth            *int            `json:"depth"`
		Controversiality int             `json:"controversiality"`
		Distinguished    string          `json:"distinguished"`
		Edited           json.RawMessage `json:"edited"`
		Replies          json.RawMessage `json:"replies"`
		Children         []string        `json:"children"`
		ParentID         string          `json:"parent_id"`
		Count            int             `json:"count"`
	} `json:"data"`
}
