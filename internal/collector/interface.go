// internal/collector/interface.go
package collector

import (
	"context"

	"reddit-radar/internal/models"
)

// CollectorService is the surface handlers and the scheduler depend on.
type CollectorService interface {
	Collect(ctx context.Context, subreddit string, limit int, sortMode, timeFilter string, collectComments bool) ([]models.Post, []models.Comment, error)
	CollectMultiple(ctx context.Context, subreddits []string, limit int, sortMode, timeFilter string, collectComments bool) (map[string][]models.Post, []models.Comment, error)
	Stats() models.RunStats
}
