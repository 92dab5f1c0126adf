package config_test

import (
	"strings"
	"testing"
	"time"

	"reddit-radar/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("REDDIT_CLIENT_ID", "test-id")
	t.Setenv("REDDIT_CLIENT_SECRET", "test-secret")
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "")
	t.Setenv("REDDIT_CLIENT_SECRET", "")

	_, err := config.LoadConfig()
	if err == nil {
		t.Fatal("Expected error for missing credentials, got nil")
	}

	// Both missing variables are named together.
	if !strings.Contains(err.Error(), "REDDIT_CLIENT_ID") || !strings.Contains(err.Error(), "REDDIT_CLIENT_SECRET") {
		t.Errorf("Expected both variable names in the error, got: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.DefaultPostLimit != 100 {
		t.Errorf("Expected default post limit 100, got %d", cfg.DefaultPostLimit)
	}
	if cfg.DefaultSortMode != "hot" {
		t.Errorf("Expected default sort 'hot', got %q", cfg.DefaultSortMode)
	}
	if cfg.ListingDelay != time.Second {
		t.Errorf("Expected 1s listing delay, got %v", cfg.ListingDelay)
	}
	if cfg.CommentDelay != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s comment delay, got %v", cfg.CommentDelay)
	}
	if len(cfg.TargetSubreddits) != len(config.DefaultSubreddits) {
		t.Errorf("Expected the default subreddit list, got %v", cfg.TargetSubreddits)
	}

	f := cfg.Filter
	if f.MaxCommentsPerPost != 50 || f.MinCommentScore != 1 || f.MaxCommentDepth != 3 {
		t.Errorf("Unexpected filter defaults: %+v", f)
	}
	if f.CommentSort != "top" || !f.SkipDeleted || !f.SkipAutomod || !f.CollectReplies {
		t.Errorf("Unexpected filter defaults: %+v", f)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TARGET_SUBREDDITS", "golang, rust ,")
	t.Setenv("DEFAULT_POSTS_LIMIT", "25")
	t.Setenv("MAX_COMMENTS_PER_POST", "10")
	t.Setenv("MIN_COMMENT_SCORE", "-5")
	t.Setenv("COMMENT_SORT_BY", "new")
	t.Setenv("SKIP_AUTOMOD_COMMENTS", "false")
	t.Setenv("RATE_LIMIT_DELAY", "250ms")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if len(cfg.TargetSubreddits) != 2 || cfg.TargetSubreddits[0] != "golang" || cfg.TargetSubreddits[1] != "rust" {
		t.Errorf("Expected [golang rust], got %v", cfg.TargetSubreddits)
	}
	if cfg.DefaultPostLimit != 25 {
		t.Errorf("Expected post limit 25, got %d", cfg.DefaultPostLimit)
	}
	if cfg.Filter.MaxCommentsPerPost != 10 {
		t.Errorf("Expected max comments 10, got %d", cfg.Filter.MaxCommentsPerPost)
	}
	if cfg.Filter.MinCommentScore != -5 {
		t.Errorf("Expected min score -5, got %d", cfg.Filter.MinCommentScore)
	}
	if cfg.Filter.CommentSort != "new" {
		t.Errorf("Expected comment sort 'new', got %q", cfg.Filter.CommentSort)
	}
	if cfg.Filter.SkipAutomod {
		t.Error("Expected skip_automod to be disabled")
	}
	if cfg.ListingDelay != 250*time.Millisecond {
		t.Errorf("Expected 250ms listing delay, got %v", cfg.ListingDelay)
	}
}

func TestLoadConfigInvalidCommentSort(t *testing.T) {
	setRequired(t)
	t.Setenv("COMMENT_SORT_BY", "spiciest")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatal("Expected error for invalid comment sort, got nil")
	}
}

func TestLoadConfigInvalidSortType(t *testing.T) {
	setRequired(t)
	t.Setenv("DEFAULT_SORT_TYPE", "upvotes")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatal("Expected error for invalid sort type, got nil")
	}
}

func TestLoadConfigInvalidSchedule(t *testing.T) {
	setRequired(t)
	t.Setenv("COLLECT_SCHEDULE", "every tuesday maybe")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatal("Expected error for invalid cron schedule, got nil")
	}
}

func TestLoadConfigInvalidProxyURL(t *testing.T) {
	setRequired(t)
	t.Setenv("REDDIT_PROXY_URLS", "ftp://proxy.example.com:8080")

	if _, err := config.LoadConfig(); err == nil {
		t.Fatal("Expected error for unsupported proxy scheme, got nil")
	}
}
