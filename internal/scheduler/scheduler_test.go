package scheduler_test

import (
	"context"
	"testing"

	"reddit-radar/internal/config"
	"reddit-radar/internal/export"
	"reddit-radar/internal/models"
	"reddit-radar/internal/scheduler"
)

type MockCollectorService struct {
	CollectMultipleFunc func(ctx context.Context, subreddits []string, limit int, sortMode, timeFilter string, collectComments bool) (map[string][]models.Post, []models.Comment, error)
}

func (m *MockCollectorService) Collect(ctx context.Context, subreddit string, limit int, sortMode, timeFilter string, collectComments bool) ([]models.Post, []models.Comment, error) {
	return nil, nil, nil
}

func (m *MockCollectorService) CollectMultiple(ctx context.Context, subreddits []string, limit int, sortMode, timeFilter string, collectComments bool) (map[string][]models.Post, []models.Comment, error) {
	return m.CollectMultipleFunc(ctx, subreddits, limit, sortMode, timeFilter, collectComments)
}

func (m *MockCollectorService) Stats() models.RunStats {
	return models.RunStats{}
}

func TestSchedulerNoScheduleIsNoop(t *testing.T) {
	cfg := &config.Config{CollectSchedule: ""}
	s := scheduler.New(&MockCollectorService{}, export.NewWriter(t.TempDir()), cfg)

	if err := s.Start(); err != nil {
		t.Fatalf("Start with no schedule returned error: %v", err)
	}
	s.Stop()
}

func TestSchedulerStartStop(t *testing.T) {
	cfg := &config.Config{
		CollectSchedule:   "0 * * * *",
		TargetSubreddits:  []string{"golang"},
		DefaultPostLimit:  10,
		DefaultSortMode:   "hot",
		DefaultTimeFilter: "day",
	}
	s := scheduler.New(&MockCollectorService{}, export.NewWriter(t.TempDir()), cfg)

	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	s.Stop()
}

func TestSchedulerInvalidSchedule(t *testing.T) {
	cfg := &config.Config{CollectSchedule: "not a schedule"}
	s := scheduler.New(&MockCollectorService{}, export.NewWriter(t.TempDir()), cfg)

	if err := s.Start(); err == nil {
		t.Fatal("Expected error for invalid schedule, got nil")
	}
}
