package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gocarina/gocsv"

	"reddit-radar/internal/export"
	"reddit-radar/internal/models"
)

func samplePost() models.Post {
	top := 7
	avg := 5.0
	return models.Post{
		ID:                "abc123",
		Title:             "Test post",
		Selftext:          "Body text",
		Subreddit:         "golang",
		Author:            "testuser",
		Score:             42,
		UpvoteRatio:       0.97,
		NumComments:       17,
		CreatedUTC:        1620000000,
		URL:               "https://reddit.com/r/golang/comments/abc123/test_post",
		Permalink:         "https://reddit.com/r/golang/comments/abc123/test_post",
		LinkFlairText:     "Discussion",
		IsSelf:            true,
		Locked:            false,
		RetrievedAt:       "2026-08-25T12:00:00Z",
		CommentsCollected: 3,
		TopCommentScore:   &top,
		AvgCommentScore:   &avg,
	}
}

func TestPostJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "posts.json")
	posts := []models.Post{samplePost(), {ID: "def456", Title: "No comments", Subreddit: "golang", Author: "[deleted]"}}

	if err := export.WritePostsJSON(path, posts); err != nil {
		t.Fatalf("Failed to write JSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back JSON: %v", err)
	}

	var got []models.Post
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to parse written JSON: %v", err)
	}

	if !reflect.DeepEqual(posts, got) {
		t.Errorf("Round trip mismatch:\nwrote %+v\nread  %+v", posts, got)
	}

	// Aggregates absent when never set.
	if got[1].TopCommentScore != nil || got[1].AvgCommentScore != nil {
		t.Errorf("Expected nil aggregates on the second post, got %+v", got[1])
	}
}

func TestPostCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.csv")
	posts := []models.Post{samplePost()}

	if err := export.WritePostsCSV(path, posts); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written CSV: %v", err)
	}
	defer file.Close()

	var got []models.Post
	if err := gocsv.UnmarshalFile(file, &got); err != nil {
		t.Fatalf("Failed to parse written CSV: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(got))
	}
	if !reflect.DeepEqual(posts[0], got[0]) {
		t.Errorf("Round trip mismatch:\nwrote %+v\nread  %+v", posts[0], got[0])
	}
}

func TestCommentJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")
	comments := []models.Comment{
		{
			ID:          "c1",
			PostID:      "abc123",
			ParentID:    "abc123",
			Subreddit:   "golang",
			Author:      "alice",
			Body:        "top level",
			Score:       12,
			CreatedUTC:  1620000100,
			Permalink:   "https://reddit.com/r/golang/comments/abc123/test_post/c1",
			IsSubmitter: true,
			Depth:       0,
			Edited:      true,
			RetrievedAt: "2026-08-25T12:00:00Z",
		},
	}

	if err := export.WriteCommentsJSON(path, comments); err != nil {
		t.Fatalf("Failed to write JSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back JSON: %v", err)
	}

	var got []models.Comment
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to parse written JSON: %v", err)
	}

	if !reflect.DeepEqual(comments, got) {
		t.Errorf("Round trip mismatch:\nwrote %+v\nread  %+v", comments, got)
	}
}

func TestWriterSaveRun(t *testing.T) {
	dir := t.TempDir()
	w := export.NewWriter(dir)

	posts := map[string][]models.Post{
		"golang": {samplePost()},
		"rust":   {},
	}
	comments := []models.Comment{{ID: "c1", PostID: "abc123", ParentID: "abc123", Subreddit: "golang"}}

	files, err := w.SaveRun(posts, comments)
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	// One CSV+JSON pair per subreddit plus the combined comments pair.
	if len(files) != 6 {
		t.Fatalf("Expected 6 files, got %d: %v", len(files), files)
	}

	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected file %s to exist: %v", path, err)
		}
	}
}
