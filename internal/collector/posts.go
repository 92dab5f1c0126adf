// internal/collector/posts.go
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reddit-radar/internal/client"
	"reddit-radar/internal/models"
	"reddit-radar/internal/parser"
)

// apiPageLimit is the maximum listing page size the API allows.
const apiPageLimit = 100

// DefaultSubredditPause is the wait inserted between subreddits in a
// multi-subreddit run.
const DefaultSubredditPause = 2 * time.Second

// ErrInvalidSortMode is returned before any network activity when the
// requested listing sort is not one the API offers.
var ErrInvalidSortMode = errors.New("invalid sort mode")

var validSortModes = map[string]bool{
	"hot":    true,
	"new":    true,
	"top":    true,
	"rising": true,
}

// PostCollector pages through subreddit listings, normalizes submissions
// into Post records, and optionally pulls each post's comments.
type PostCollector struct {
	client   client.RedditClientInterface
	parser   parser.ParserInterface
	limiter  *RateLimiter
	counters *RunCounters
	comments *CommentCollector
	pause    time.Duration
}

func NewPostCollector(cl client.RedditClientInterface, p parser.ParserInterface, limiter *RateLimiter, counters *RunCounters, comments *CommentCollector, pause time.Duration) *PostCollector {
	if pause <= 0 {
		pause = DefaultSubredditPause
	}

	return &PostCollector{
		client:   cl,
		parser:   p,
		limiter:  limiter,
		counters: counters,
		comments: comments,
		pause:    pause,
	}
}

// Collect gathers up to limit posts from one subreddit under the given sort
// mode. timeFilter applies only when sortMode is "top". An upstream failure
// of the listing fetch is counted once and ends the run with whatever was
// already collected; the error return is reserved for an invalid sort mode
// and for cancellation.
func (p *PostCollector) Collect(ctx context.Context, subreddit string, limit int, sortMode, timeFilter string, collectComments bool) ([]models.Post, []models.Comment, error) {
	if !validSortModes[sortMode] {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidSortMode, sortMode)
	}

	if limit <= 0 {
		limit = apiPageLimit
	}

	startTime := time.Now()
	slog.Info("collecting subreddit", "subreddit", subreddit, "sort", sortMode, "limit", limit, "comments", collectComments)

	var posts []models.Post
	var comments []models.Comment

	apiLimit := apiPageLimit
	if limit < apiLimit {
		apiLimit = limit
	}

	after := ""
	pageCount := 0
	maxPages := (limit + apiPageLimit - 1) / apiPageLimit

	for pageCount < maxPages && len(posts) < limit {
		if ctx.Err() != nil {
			return posts, comments, ctx.Err()
		}

		pageCount++

		apiURL := p.client.ListingURL(subreddit, sortMode, timeFilter, apiLimit, after)
		slog.Debug("fetching listing page", "subreddit", subreddit, "page", pageCount)

		data, err := p.client.FetchJSON(ctx, apiURL)
		if err != nil {
			p.counters.addFailure()
			slog.Error("listing fetch failed", "subreddit", subreddit, "page", pageCount, "error", err)
			return posts, comments, nil
		}

		subs, nextAfter, err := p.parser.ParseListing(ctx, data)
		if err != nil {
			p.counters.addFailure()
			slog.Error("listing parse failed", "subreddit", subreddit, "page", pageCount, "error", err)
			return posts, comments, nil
		}

		for i := range subs {
			if len(posts) >= limit {
				break
			}

			if err := p.limiter.AwaitTurn(ctx, false); err != nil {
				return posts, comments, err
			}

			if subs[i].ID == "" {
				slog.Warn("dropping submission without id", "subreddit", subreddit)
				continue
			}

			post := extractPost(&subs[i], subreddit)

			if collectComments && !post.Locked {
				postComments, err := p.comments.Collect(ctx, post.ID, post.Subreddit)
				if err != nil {
					return posts, comments, err
				}

				applyCommentAggregates(&post, postComments)
				comments = append(comments, postComments...)
			}

			posts = append(posts, post)
		}

		if nextAfter == "" || len(subs) == 0 {
			break
		}
		after = nextAfter
	}

	slog.Info("collected subreddit",
		"subreddit", subreddit,
		"posts", len(posts),
		"comments", len(comments),
		"elapsed", time.Since(startTime))

	return posts, comments, nil
}

// CollectMultiple runs Collect for each subreddit in order, pausing between
// them. A failed subreddit keeps an empty entry in the result map and the
// loop continues; only cancellation and an invalid sort mode abort the run.
func (p *PostCollector) CollectMultiple(ctx context.Context, subreddits []string, limit int, sortMode, timeFilter string, collectComments bool) (map[string][]models.Post, []models.Comment, error) {
	if !validSortModes[sortMode] {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidSortMode, sortMode)
	}

	allPosts := make(map[string][]models.Post, len(subreddits))
	var allComments []models.Comment

	for i, subreddit := range subreddits {
		if i > 0 {
			timer := time.NewTimer(p.pause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return allPosts, allComments, ctx.Err()
			case <-timer.C:
			}
		}

		posts, comments, err := p.Collect(ctx, subreddit, limit, sortMode, timeFilter, collectComments)
		if err != nil {
			if ctx.Err() != nil {
				return allPosts, allComments, err
			}

			slog.Error("subreddit collection failed", "subreddit", subreddit, "error", err)
			allPosts[subreddit] = []models.Post{}
			continue
		}

		if posts == nil {
			posts = []models.Post{}
		}

		allPosts[subreddit] = posts
		allComments = append(allComments, comments...)
	}

	return allPosts, allComments, nil
}

// Stats returns the run's telemetry snapshot.
func (p *PostCollector) Stats() models.RunStats {
	return p.counters.Snapshot()
}

// extractPost is the single translation point from a raw submission payload
// into a Post record. Every field carries an explicit default so a sparse
// payload still produces a usable record.
func extractPost(sub *models.Submission, subreddit string) models.Post {
	author := sub.Author
	if author == "" {
		author = deletedAuthor
	}

	community := sub.Subreddit
	if community == "" {
		community = subreddit
	}

	return models.Post{
		ID:            sub.ID,
		Title:         sub.Title,
		Selftext:      sub.Selftext,
		Subreddit:     community,
		Author:        author,
		Score:         sub.Score,
		UpvoteRatio:   sub.UpvoteRatio,
		NumComments:   sub.NumComments,
		CreatedUTC:    sub.CreatedUTC,
		URL:           sub.URL,
		Permalink:     absoluteURL(sub.Permalink),
		LinkFlairText: sub.LinkFlairText,
		IsSelf:        sub.IsSelf,
		Over18:        sub.Over18,
		Spoiler:       sub.Spoiler,
		Stickied:      sub.Stickied,
		Locked:        sub.Locked,
		Distinguished: sub.Distinguished,
		RetrievedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

// applyCommentAggregates sets the derived comment stats, once, and only
// when at least one comment was retained.
func applyCommentAggregates(post *models.Post, comments []models.Comment) {
	if len(comments) == 0 {
		return
	}

	top := comments[0].Score
	sum := 0
	for _, c := range comments {
		if c.Score > top {
			top = c.Score
		}
		sum += c.Score
	}

	avg := float64(sum) / float64(len(comments))

	post.CommentsCollected = len(comments)
	post.TopCommentScore = &top
	post.AvgCommentScore = &avg
}

func absoluteURL(permalink string) string {
	if permalink == "" {
		return ""
	}

	return "https://reddit.com" + permalink
}
