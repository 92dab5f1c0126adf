// internal/collector/comments.go
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reddit-radar/internal/client"
	"reddit-radar/internal/config"
	"reddit-radar/internal/models"
	"reddit-radar/internal/parser"
)

// commentPageLimit is the most comments one tree fetch asks the API for.
// Truncation to the configured per-post maximum happens after filtering, so
// skipped comments stay countable.
const commentPageLimit = 100

// CommentCollector fetches one post's comment tree and turns it into
// filtered, flattened Comment records.
type CommentCollector struct {
	client   client.RedditClientInterface
	parser   parser.ParserInterface
	limiter  *RateLimiter
	counters *RunCounters
	filter   *CommentFilter
	cfg      config.FilterConfig
}

func NewCommentCollector(cl client.RedditClientInterface, p parser.ParserInterface, limiter *RateLimiter, counters *RunCounters, cfg config.FilterConfig) *CommentCollector {
	return &CommentCollector{
		client:   cl,
		parser:   p,
		limiter:  limiter,
		counters: counters,
		filter:   NewCommentFilter(cfg),
		cfg:      cfg,
	}
}

// Collect returns the retained comments for one post, parents ahead of
// their children. Upstream failures are logged and counted, never raised:
// the caller gets an empty result and moves on to the next post. The error
// return is reserved for cancellation.
func (c *CommentCollector) Collect(ctx context.Context, postID, subreddit string) ([]models.Comment, error) {
	if err := c.limiter.AwaitTurn(ctx, true); err != nil {
		return nil, err
	}

	nodes, err := c.fetchTree(ctx, postID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		c.counters.addFailure()
		slog.Error("comment tree fetch failed", "post_id", postID, "subreddit", subreddit, "error", err)
		return nil, nil
	}

	flat := flattenNodes(nodes, c.cfg.CollectReplies)
	byID := indexNodes(flat)

	var comments []models.Comment
	skipped := 0

	for _, node := range flat {
		if len(comments) >= c.cfg.MaxCommentsPerPost {
			break
		}

		if skip, reason := c.filter.ShouldSkip(node, byID); skip {
			skipped++
			slog.Debug("skipping comment", "comment_id", node.ID, "reason", reason)
			continue
		}

		comments = append(comments, c.buildComment(node, postID, subreddit, byID))
	}

	c.counters.addCollected(len(comments))
	c.counters.addSkipped(skipped)

	slog.Info("collected comments", "post_id", postID, "kept", len(comments), "skipped", skipped)

	return comments, nil
}

// fetchTree pulls the comments listing for one post. The endpoint returns a
// two-element array: the post's own listing, then the comment tree.
func (c *CommentCollector) fetchTree(ctx context.Context, postID string) ([]models.CommentNode, error) {
	apiURL := c.client.CommentTreeURL(postID, c.cfg.CommentSort, commentPageLimit)

	data, err := c.client.FetchJSON(ctx, apiURL)
	if err != nil {
		return nil, fmt.Errorf("fetch comment tree: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid comment tree format: %w", err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("comment tree response has %d listings, want 2", len(raw))
	}

	return c.parser.ParseCommentTree(ctx, raw[1])
}

// flattenNodes lays the tree out in traversal order, every parent ahead of
// its children. With replies disabled only the top level survives.
func flattenNodes(nodes []models.CommentNode, withReplies bool) []*models.CommentNode {
	var flat []*models.CommentNode

	var walk func(nodes []models.CommentNode)
	walk = func(nodes []models.CommentNode) {
		for i := range nodes {
			node := &nodes[i]
			flat = append(flat, node)
			if withReplies {
				walk(node.Replies)
			}
		}
	}
	walk(nodes)

	return flat
}

// indexNodes maps comment ids to nodes for parent walks. Placeholders never
// enter the index; a walk reaching one stops there.
func indexNodes(flat []*models.CommentNode) map[string]*models.CommentNode {
	byID := make(map[string]*models.CommentNode, len(flat))
	for _, node := range flat {
		if !node.IsPlaceholder {
			byID[node.ID] = node
		}
	}

	return byID
}

// buildComment converts a kept node into its output record. Every field
// gets an explicit default so a sparse payload produces a usable record.
func (c *CommentCollector) buildComment(node *models.CommentNode, postID, subreddit string, byID map[string]*models.CommentNode) models.Comment {
	author := node.Author
	if author == "" {
		author = deletedAuthor
	}

	return models.Comment{
		ID:               node.ID,
		PostID:           postID,
		ParentID:         resolveParent(node, postID),
		Subreddit:        subreddit,
		Author:           author,
		Body:             node.Body,
		Score:            node.Score,
		CreatedUTC:       node.CreatedUTC,
		Permalink:        absoluteURL(node.Permalink),
		IsSubmitter:      node.IsSubmitter,
		Depth:            resolveDepth(node, byID),
		Controversiality: node.Controversiality,
		Distinguished:    node.Distinguished,
		Edited:           node.Edited,
		RetrievedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// resolveParent maps the raw parent fullname onto a record id: the post id
// for top-level comments, the bare comment id for replies. An unrecognized
// parent kind is kept as-is rather than silently treated as top-level.
func resolveParent(node *models.CommentNode, postID string) string {
	switch {
	case strings.HasPrefix(node.ParentID, "t3_"):
		return postID
	case strings.HasPrefix(node.ParentID, "t1_"):
		return strings.TrimPrefix(node.ParentID, "t1_")
	default:
		slog.Warn("unrecognized parent kind", "comment_id", node.ID, "parent_id", node.ParentID)
		return node.ParentID
	}
}
