// internal/parser/parser.go
package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"reddit-radar/internal/models"

	"github.com/google/uuid"
)

type RedditParser struct{}

func NewRedditParser() *RedditParser {
	return &RedditParser{}
}

// ParseListing extracts submission payloads and the pagination cursor from a
// subreddit listing document. A child that fails to decode is dropped with a
// warning so one malformed item never loses the rest of the page.
func (p *RedditParser) ParseListing(ctx context.Context, data json.RawMessage) ([]models.Submission, string, error) {
	var listing struct {
		Data struct {
			Children []struct {
				Kind string          `json:"kind"`
				Data json.RawMessage `json:"data"`
			} `json:"children"`
			After string `json:"after"`
		} `json:"data"`
	}

	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, "", fmt.Errorf("parse listing JSON: %w", err)
	}

	var subs []models.Submission
	for _, child := range listing.Data.Children {
		if ctx.Err() != nil {
			return subs, listing.Data.After, nil
		}
		if child.Kind != "t3" {
			continue
		}

		var sub models.Submission
		if err := json.Unmarshal(child.Data, &sub); err != nil {
			slog.Warn("dropping malformed listing child", "error", err)
			continue
		}

		subs = append(subs, sub)
	}

	return subs, listing.Data.After, nil
}

// ParseCommentTree builds the nested comment tree from the comments listing
// of a post. Unexpanded "more" branches become placeholder nodes; nothing is
// ever fetched to expand them.
func (p *RedditParser) ParseCommentTree(ctx context.Context, data json.RawMessage) ([]models.CommentNode, error) {
	var commentsBlock struct {
		Data struct {
			Children []models.RawChild `json:"children"`
		} `json:"data"`
	}

	if err := json.Unmarshal(data, &commentsBlock); err != nil {
		return nil, fmt.Errorf("parse comment tree JSON: %w", err)
	}

	return p.processNodes(ctx, commentsBlock.Data.Children), nil
}

func (p *RedditParser) processNodes(ctx context.Context, children []models.RawChild) []models.CommentNode {
	var nodes []models.CommentNode

	for _, child := range children {
		if ctx.Err() != nil {
			return nodes
		}

		switch child.Kind {
		case "t1": // Regular comment
			node := models.CommentNode{
				ID:               child.Data.ID,
				Author:           child.Data.Author,
				Body:             child.Data.Body,
				Score:            child.Data.Score,
				CreatedUTC:       child.Data.CreatedUTC,
				Permalink:        child.Data.Permalink,
				IsSubmitter:      child.Data.IsSubmitter,
				Depth:            -1,
				Controversiality: child.Data.Controversiality,
				Distinguished:    child.Data.Distinguished,
				Edited:           editedFlag(child.Data.Edited),
				ParentID:         child.Data.ParentID,
			}
			if child.Data.Depth != nil {
				node.Depth = *child.Data.Depth
			}

			// Replies is the empty string when a comment has none.
			if len(child.Data.Replies) > 0 {
				var replies struct {
					Data struct {
						Children []models.RawChild `json:"children"`
					} `json:"data"`
				}

				if err := json.Unmarshal(child.Data.Replies, &replies); err == nil {
					node.Replies = p.processNodes(ctx, replies.Data.Children)
				}
			}

			nodes = append(nodes, node)

		case "more": // Unexpanded branch
			id := child.Data.ID
			if id == "" {
				id = "more_" + uuid.New().String()
			}

			node := models.CommentNode{
				ID:            id,
				ParentID:      child.Data.ParentID,
				Depth:         -1,
				IsPlaceholder: true,
				MoreCount:     child.Data.Count,
			}
			if child.Data.Depth != nil {
				node.Depth = *child.Data.Depth
			}

			nodes = append(nodes, node)
		}
	}

	return nodes
}

// editedFlag normalizes the API's edited field, which is either false or the
// epoch timestamp of the last edit.
func editedFlag(raw json.RawMessage) bool {
	s := string(raw)
	return len(s) > 0 && s != "false" && s != "null"
}
