// internal/collector/filter.go
package collector

import (
	"strings"

	"reddit-radar/internal/config"
	"reddit-radar/internal/models"
)

// automodAuthor is the platform's automated moderator account.
const automodAuthor = "AutoModerator"

const deletedAuthor = "[deleted]"

// maxParentHops bounds the parent walk for trees with broken parent chains.
const maxParentHops = 10

// Skip reasons reported by the filter.
const (
	ReasonPlaceholder = "placeholder"
	ReasonDeleted     = "deleted"
	ReasonAutomod     = "automod"
	ReasonLowScore    = "low_score"
	ReasonTooDeep     = "too_deep"
)

// CommentFilter decides whether a tree node is worth keeping. Checks run in
// a fixed priority order and the first match wins, so a node that is both a
// placeholder and low-score always reports "placeholder".
type CommentFilter struct {
	cfg config.FilterConfig
}

func NewCommentFilter(cfg config.FilterConfig) *CommentFilter {
	return &CommentFilter{cfg: cfg}
}

// ShouldSkip reports whether node should be dropped, and the reason label
// when it should. The depth walk is the most expensive check and only runs
// once everything cheaper has passed.
func (f *CommentFilter) ShouldSkip(node *models.CommentNode, byID map[string]*models.CommentNode) (bool, string) {
	if node.IsPlaceholder {
		return true, ReasonPlaceholder
	}

	if f.cfg.SkipDeleted && isDeleted(node) {
		return true, ReasonDeleted
	}

	if f.cfg.SkipAutomod && strings.EqualFold(node.Author, automodAuthor) {
		return true, ReasonAutomod
	}

	if node.Score < f.cfg.MinCommentScore {
		return true, ReasonLowScore
	}

	if resolveDepth(node, byID) > f.cfg.MaxCommentDepth {
		return true, ReasonTooDeep
	}

	return false, ""
}

func isDeleted(node *models.CommentNode) bool {
	if node.Author == "" || node.Author == deletedAuthor {
		return true
	}

	return node.Body == "[deleted]" || node.Body == "[removed]"
}

// resolveDepth returns the node's nesting depth. The API's own depth value
// wins when it is present and nonnegative; otherwise the parent chain is
// walked through the tree index, at most maxParentHops steps. A parent
// missing from the index ends the walk with the count so far, so the result
// is never negative.
func resolveDepth(node *models.CommentNode, byID map[string]*models.CommentNode) int {
	if node.Depth >= 0 {
		return node.Depth
	}

	depth := 0
	parent := node.ParentID

	for hops := 0; hops < maxParentHops; hops++ {
		if !strings.HasPrefix(parent, "t1_") {
			break
		}

		p, ok := byID[strings.TrimPrefix(parent, "t1_")]
		if !ok {
			break
		}

		depth++
		parent = p.ParentID
	}

	return depth
}
