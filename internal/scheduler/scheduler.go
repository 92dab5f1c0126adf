// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"reddit-radar/internal/collector"
	"reddit-radar/internal/config"
	"reddit-radar/internal/export"
	"reddit-radar/internal/models"
)

// runTimeout bounds a single scheduled run.
const runTimeout = time.Hour

// Scheduler fires recurring collection runs over the configured target
// subreddits and persists the results.
type Scheduler struct {
	cron   *cron.Cron
	svc    collector.CollectorService
	writer *export.Writer
	cfg    *config.Config
}

func New(svc collector.CollectorService, writer *export.Writer, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		writer: writer,
		cfg:    cfg,
	}
}

// Start registers the configured schedule and launches the cron loop. It is
// a no-op when no schedule is configured.
func (s *Scheduler) Start() error {
	if s.cfg.CollectSchedule == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.CollectSchedule, s.runOnce); err != nil {
		return fmt.Errorf("registering collection schedule: %w", err)
	}

	s.cron.Start()
	slog.Info("collection schedule registered", "schedule", s.cfg.CollectSchedule, "subreddits", len(s.cfg.TargetSubreddits))
	return nil
}

// Stop halts the cron loop and waits for any in-flight run to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runOnce() {
	runID := uuid.New().String()
	start := time.Now()

	slog.Info("scheduled collection starting", "run_id", runID, "subreddits", s.cfg.TargetSubreddits)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	posts, comments, err := s.svc.CollectMultiple(ctx, s.cfg.TargetSubreddits, s.cfg.DefaultPostLimit, s.cfg.DefaultSortMode, s.cfg.DefaultTimeFilter, s.cfg.CollectComments)
	if err != nil {
		slog.Error("scheduled collection failed", "run_id", runID, "error", err)
		return
	}

	files, err := s.writer.SaveRun(posts, comments)
	if err != nil {
		slog.Error("saving scheduled collection results", "run_id", runID, "error", err)
	}

	stats := s.svc.Stats()
	slog.Info("scheduled collection complete",
		"run_id", runID,
		"posts", countPosts(posts),
		"comments", len(comments),
		"files", len(files),
		"duration", time.Since(start).Round(time.Millisecond),
		"success_rate", stats.SuccessRate,
	)
}

func countPosts(posts map[string][]models.Post) int {
	total := 0
	for _, subredditPosts := range posts {
		total += len(subredditPosts)
	}
	return total
}
