// internal/parser/interface.go
package parser

import (
	"context"
	"encoding/json"

	"reddit-radar/internal/models"
)

type ParserInterface interface {
	ParseListing(ctx context.Context, data json.RawMessage) ([]models.Submission, string, error)
	ParseCommentTree(ctx context.Context, data json.RawMessage) ([]models.CommentNode, error)
}
